package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"users-api/internal/domain/user"
	"users-api/pkg/logger"
)

// UserRepoPG implements the user Repository on the remote PostgreSQL store using GORM.
type UserRepoPG struct {
	db  *gorm.DB    // GORM database connection, shared read-only
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Email string `gorm:"not null"`
	Age   int    `gorm:"not null"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// Create inserts a new user and returns the stored row.
func (r *UserRepoPG) Create(ctx context.Context, u *user.User) ([]user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	model := UserSchema{
		Name:  u.Name,
		Email: u.Email,
		Age:   u.Age,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		logger.WithContext(ctx, r.log).Error("failed to create user in db", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx, r.log).Info("user created in db", zap.Int64("id", model.ID))
	return []user.User{toDomain(model)}, nil
}

// List returns every row of the users table.
func (r *UserRepoPG) List(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		logger.WithContext(ctx, r.log).Error("failed to list users from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return toDomainSlice(models), nil
}

// GetByID returns the rows whose id matches; an unknown id yields an empty slice.
func (r *UserRepoPG) GetByID(ctx context.Context, id int64) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&models).Error; err != nil {
		logger.WithContext(ctx, r.log).Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toDomainSlice(models), nil
}

// Update writes the set fields of changes to the row with the given id and
// returns the updated rows in the same statement. It returns an empty slice
// when no row matched.
func (r *UserRepoPG) Update(ctx context.Context, id int64, changes user.Changes) ([]user.User, error) {
	columns := toColumns(changes)
	if len(columns) == 0 {
		return nil, errors.New("no columns to update")
	}

	var models []UserSchema
	res := r.db.WithContext(ctx).
		Model(&models).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(columns)
	if res.Error != nil {
		logger.WithContext(ctx, r.log).Error("failed to update user in db", zap.Error(res.Error), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to update user: %w", res.Error)
	}

	logger.WithContext(ctx, r.log).Info("user updated in db", zap.Int64("id", id), zap.Int64("rows", res.RowsAffected))
	return toDomainSlice(models), nil
}

// Delete removes the row with the given id and returns the number of deleted rows.
func (r *UserRepoPG) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserSchema{})
	if res.Error != nil {
		logger.WithContext(ctx, r.log).Error("failed to delete user in db", zap.Error(res.Error), zap.Int64("id", id))
		return 0, fmt.Errorf("failed to delete user: %w", res.Error)
	}

	logger.WithContext(ctx, r.log).Info("user deleted in db", zap.Int64("id", id), zap.Int64("rows", res.RowsAffected))
	return res.RowsAffected, nil
}

// toColumns maps the set fields of changes onto column names.
func toColumns(changes user.Changes) map[string]any {
	columns := make(map[string]any, 3)
	if changes.Name != nil {
		columns["name"] = *changes.Name
	}
	if changes.Email != nil {
		columns["email"] = *changes.Email
	}
	if changes.Age != nil {
		columns["age"] = *changes.Age
	}
	return columns
}

func toDomain(m UserSchema) user.User {
	return user.User{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Age:   m.Age,
	}
}

func toDomainSlice(models []UserSchema) []user.User {
	users := make([]user.User, len(models))
	for i, m := range models {
		users[i] = toDomain(m)
	}
	return users
}
