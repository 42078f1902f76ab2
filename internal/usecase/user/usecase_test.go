package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "users-api/internal/domain/user"
	apperrors "users-api/pkg/errors"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *domain.User) ([]domain.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) ([]domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, changes domain.Changes) ([]domain.User, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func setupTestService(t *testing.T) (*Service, *MockRepository) {
	mockRepo := new(MockRepository)
	return New(mockRepo, zaptest.NewLogger(t)), mockRepo
}

func ptr[T any](v T) *T {
	return &v
}

// ==================== CREATE USER TESTS ====================

func TestCreateUser_Success(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("Create", ctx, &domain.User{Name: "Vy", Email: "vy@x.com", Age: 20}).
		Return([]domain.User{{ID: 1, Name: "Vy", Email: "vy@x.com", Age: 20}}, nil)

	resp, err := svc.CreateUser(ctx, CreateUserRequest{Name: ptr("Vy"), Email: ptr("vy@x.com"), Age: ptr(20)})

	require.NoError(t, err)
	assert.Equal(t, []User{{ID: 1, Name: "Vy", Email: "vy@x.com", Age: 20}}, resp.Users)
	mockRepo.AssertExpectations(t)
}

func TestCreateUser_ZeroValuesCountAsPresent(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("Create", ctx, &domain.User{}).Return([]domain.User{{ID: 2}}, nil)

	resp, err := svc.CreateUser(ctx, CreateUserRequest{Name: ptr(""), Email: ptr(""), Age: ptr(0)})

	require.NoError(t, err)
	assert.Len(t, resp.Users, 1)
	mockRepo.AssertExpectations(t)
}

func TestCreateUser_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  CreateUserRequest
	}{
		{name: "missing name", req: CreateUserRequest{Email: ptr("vy@x.com"), Age: ptr(20)}},
		{name: "missing email", req: CreateUserRequest{Name: ptr("Vy"), Age: ptr(20)}},
		{name: "missing age", req: CreateUserRequest{Name: ptr("Vy"), Email: ptr("vy@x.com")}},
		{name: "empty request", req: CreateUserRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := setupTestService(t)

			resp, err := svc.CreateUser(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, apperrors.ErrMissingFields)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateUser_StoreError(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	resp, err := svc.CreateUser(ctx, CreateUserRequest{Name: ptr("Vy"), Email: ptr("vy@x.com"), Age: ptr(20)})

	assert.Nil(t, resp)
	var internal *apperrors.InternalError
	require.ErrorAs(t, err, &internal)
	assert.Contains(t, err.Error(), "connection refused")
}

// ==================== UPDATE USER TESTS ====================

func TestUpdateUser_Success(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	changes := domain.Changes{Age: ptr(31)}
	mockRepo.On("Update", ctx, int64(1), changes).
		Return([]domain.User{{ID: 1, Name: "Vy", Email: "vy@x.com", Age: 31}}, nil)

	resp, err := svc.UpdateUser(ctx, UpdateUserRequest{ID: 1, Age: ptr(31)})

	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, 31, resp.Users[0].Age)
	mockRepo.AssertExpectations(t)
}

func TestUpdateUser_NoData(t *testing.T) {
	svc, mockRepo := setupTestService(t)

	resp, err := svc.UpdateUser(context.Background(), UpdateUserRequest{ID: 1})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrNoUpdateData)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("Update", ctx, int64(999), mock.Anything).Return([]domain.User{}, nil)

	resp, err := svc.UpdateUser(ctx, UpdateUserRequest{ID: 999, Name: ptr("Ghost")})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateUser_StoreError(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("Update", ctx, int64(1), mock.Anything).Return(nil, errors.New("permission denied"))

	resp, err := svc.UpdateUser(ctx, UpdateUserRequest{ID: 1, Email: ptr("new@x.com")})

	assert.Nil(t, resp)
	status, msg := apperrors.ToHTTP(err)
	assert.Equal(t, 500, status)
	assert.Equal(t, "Internal server error", msg)
}

// ==================== DELETE USER TESTS ====================

func TestDeleteUser_Success(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(1)).Return(int64(1), nil)

	resp, err := svc.DeleteUser(ctx, DeleteUserRequest{ID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	mockRepo.AssertExpectations(t)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(42)).Return(int64(0), nil)

	resp, err := svc.DeleteUser(ctx, DeleteUserRequest{ID: 42})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestDeleteUser_StoreError(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(1)).Return(int64(0), errors.New("timeout"))

	resp, err := svc.DeleteUser(ctx, DeleteUserRequest{ID: 1})

	assert.Nil(t, resp)
	var internal *apperrors.InternalError
	assert.ErrorAs(t, err, &internal)
}

// ==================== GET / LIST TESTS ====================

func TestGetUser_Found(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(1)).Return([]domain.User{{ID: 1, Name: "Vy", Email: "vy@x.com", Age: 20}}, nil)

	resp, err := svc.GetUser(ctx, GetUserRequest{ID: 1})

	require.NoError(t, err)
	assert.Equal(t, []User{{ID: 1, Name: "Vy", Email: "vy@x.com", Age: 20}}, resp.Users)
}

func TestGetUser_UnknownIDIsEmpty(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(404)).Return(nil, nil)

	resp, err := svc.GetUser(ctx, GetUserRequest{ID: 404})

	require.NoError(t, err)
	assert.NotNil(t, resp.Users)
	assert.Empty(t, resp.Users)
}

func TestGetUser_StoreError(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(1)).Return(nil, errors.New("boom"))

	resp, err := svc.GetUser(ctx, GetUserRequest{ID: 1})

	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestListUsers(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return([]domain.User{
		{ID: 1, Name: "A", Email: "a@x.com", Age: 1},
		{ID: 2, Name: "B", Email: "b@x.com", Age: 2},
	}, nil)

	resp, err := svc.ListUsers(ctx)

	require.NoError(t, err)
	assert.Len(t, resp.Users, 2)
}

func TestListUsers_StoreError(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return(nil, errors.New("boom"))

	resp, err := svc.ListUsers(ctx)

	assert.Nil(t, resp)
	assert.Error(t, err)
}
