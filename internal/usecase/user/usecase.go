package user

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "users-api/internal/domain/user"
	apperrors "users-api/pkg/errors"
	"users-api/pkg/logger"
)

// Repository defines the data access operations on the users table.
// Each method maps onto exactly one store call.
type Repository interface {
	Create(ctx context.Context, u *domain.User) ([]domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// GetByID returns the rows matching id, possibly none.
	GetByID(ctx context.Context, id int64) ([]domain.User, error)
	// Update returns the updated rows; none means the id matched nothing.
	Update(ctx context.Context, id int64, changes domain.Changes) ([]domain.User, error)
	// Delete returns the number of deleted rows.
	Delete(ctx context.Context, id int64) (int64, error)
}

// Service implements Usecase on top of a Repository.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

var _ Usecase = (*Service)(nil)

// New creates a new Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// CreateUser inserts a user once name, email and age are all present.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*CreateUserResponse, error) {
	log := logger.WithContext(ctx, s.log)

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			log.Warn("create user missing fields", zap.Strings("fields", fields))
			return nil, apperrors.ErrMissingFields
		}
		return nil, apperrors.NewInternalError("failed to validate request", err)
	}

	rows, err := s.repo.Create(ctx, &domain.User{
		Name:  *in.Name,
		Email: *in.Email,
		Age:   *in.Age,
	})
	if err != nil {
		log.Error("Error creating user", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to create user", err)
	}

	return &CreateUserResponse{Users: toDTOs(rows)}, nil
}

// UpdateUser applies the present fields to the user with the given id.
func (s *Service) UpdateUser(ctx context.Context, in UpdateUserRequest) (*UpdateUserResponse, error) {
	log := logger.WithContext(ctx, s.log)

	changes := domain.Changes{Name: in.Name, Email: in.Email, Age: in.Age}
	if changes.IsEmpty() {
		log.Warn("update user without data", zap.Int64("id", in.ID))
		return nil, apperrors.ErrNoUpdateData
	}

	rows, err := s.repo.Update(ctx, in.ID, changes)
	if err != nil {
		log.Error("Error updating user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to update user", err)
	}
	if len(rows) == 0 {
		log.Info("update matched no user", zap.Int64("id", in.ID))
		return nil, apperrors.ErrUserNotFound
	}

	return &UpdateUserResponse{Users: toDTOs(rows)}, nil
}

// DeleteUser removes the user with the given id.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error) {
	log := logger.WithContext(ctx, s.log)

	affected, err := s.repo.Delete(ctx, in.ID)
	if err != nil {
		log.Error("Error deleting user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to delete user", err)
	}
	if affected == 0 {
		log.Info("delete matched no user", zap.Int64("id", in.ID))
		return nil, apperrors.ErrUserNotFound
	}

	return &DeleteUserResponse{ID: in.ID}, nil
}

// GetUser returns the rows matching the id. An unknown id yields an empty
// result rather than an error.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error) {
	rows, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		logger.WithContext(ctx, s.log).Error("Error fetching user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	return &GetUserResponse{Users: toDTOs(rows)}, nil
}

// ListUsers returns every user.
func (s *Service) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		logger.WithContext(ctx, s.log).Error("Error fetching users", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to list users", err)
	}

	return &ListUsersResponse{Users: toDTOs(rows)}, nil
}

// toDTOs never returns nil so that empty results encode as [].
func toDTOs(rows []domain.User) []User {
	users := make([]User, len(rows))
	for i, r := range rows {
		users[i] = User{
			ID:    r.ID,
			Name:  r.Name,
			Email: r.Email,
			Age:   r.Age,
		}
	}
	return users
}
