package user

// CreateUserRequest represents the request payload for creating a new user.
// Fields are pointers so that presence can be told apart from zero values.
type CreateUserRequest struct {
	Name  *string `validate:"required"`
	Email *string `validate:"required"`
	Age   *int    `validate:"required"`
}

// CreateUserResponse holds the rows returned by the store after the insert.
type CreateUserResponse struct {
	Users []User
}

// UpdateUserRequest represents the request payload for updating an existing user.
// Only the non-nil fields are written.
type UpdateUserRequest struct {
	ID    int64
	Name  *string
	Email *string
	Age   *int
}

// UpdateUserResponse holds the rows returned by the store after the update.
type UpdateUserResponse struct {
	Users []User
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	ID int64
}

// DeleteUserResponse represents the response payload after deleting a user.
type DeleteUserResponse struct {
	ID int64
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID int64
}

// GetUserResponse holds the rows matching the requested id, possibly none.
type GetUserResponse struct {
	Users []User
}

// ListUsersResponse holds every row of the users table.
type ListUsersResponse struct {
	Users []User
}

// User represents a user DTO (Data Transfer Object) for API responses.
type User struct {
	ID    int64
	Name  string
	Email string
	Age   int
}
