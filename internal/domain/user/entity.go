package user

// User represents a row of the users table.
type User struct {
	ID    int64  // ID is assigned by the store and never changes
	Name  string // Name is the full name of the user
	Email string // Email is the email address of the user
	Age   int    // Age is the age of the user in years
}

// Changes is a partial set of fields to apply to an existing user.
// A nil field is left untouched.
type Changes struct {
	Name  *string
	Email *string
	Age   *int
}

// IsEmpty reports whether no field is set.
func (c Changes) IsEmpty() bool {
	return c.Name == nil && c.Email == nil && c.Age == nil
}
