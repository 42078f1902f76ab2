package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"users-api/internal/usecase/user"
	apperrors "users-api/pkg/errors"
	"users-api/pkg/logger"
)

// MsgUserDeleted is returned after a successful delete
const MsgUserDeleted = "User deleted successfully"

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// CreateUserRequest represents the HTTP request body for creating a user.
// Presence of every field is checked by the usecase.
type CreateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Age   *int    `json:"age"`
}

// UpdateUserRequest represents the HTTP request body for updating a user.
// Unknown keys, including id, are ignored.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Age   *int    `json:"age"`
}

// UserResponse represents one row in HTTP responses
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse represents a plain confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			h.respondError(c, apperrors.ErrMissingFields)
			return
		}
		h.invalidBody(c, err)
		return
	}

	resp, err := h.uc.CreateUser(c.Request.Context(), user.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResponses(resp.Users))
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	resp, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(resp.Users))
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetUser(c.Request.Context(), user.GetUserRequest{ID: id})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(resp.Users))
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		h.invalidBody(c, err)
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		h.respondError(c, apperrors.ErrNoUpdateData)
		return
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		h.invalidBody(c, err)
		return
	}
	if isEmptyValue(data) {
		h.respondError(c, apperrors.ErrNoUpdateData)
		return
	}
	if _, ok := data.(map[string]any); !ok {
		h.invalidBody(c, errors.New("update body must be a JSON object"))
		return
	}

	var req UpdateUserRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.invalidBody(c, err)
		return
	}

	resp, err := h.uc.UpdateUser(c.Request.Context(), user.UpdateUserRequest{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(resp.Users))
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if _, err := h.uc.DeleteUser(c.Request.Context(), user.DeleteUserRequest{ID: id}); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: MsgUserDeleted})
}

// pathID parses the :id segment. Anything but a non-negative integer is
// treated as an unmatched route.
func (h *UserHandler) pathID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	for _, r := range raw {
		if r < '0' || r > '9' {
			raw = ""
			break
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.WithContext(c.Request.Context(), h.log).Debug("unmatched user id", zap.String("id", c.Param("id")))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: apperrors.MsgNotFound})
		return 0, false
	}
	return id, true
}

func (h *UserHandler) invalidBody(c *gin.Context, err error) {
	logger.WithContext(c.Request.Context(), h.log).Warn("invalid request body",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.MsgInvalidBody})
}

// respondError converts usecase errors to HTTP responses
func (h *UserHandler) respondError(c *gin.Context, err error) {
	status, msg := apperrors.ToHTTP(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context(), h.log).Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

// isEmptyValue reports whether a decoded JSON body carries nothing: null,
// an empty object or array, an empty string, zero or false.
func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	default:
		return false
	}
}

// toResponses never returns nil so that empty results encode as [].
func toResponses(users []user.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = UserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Age:   u.Age,
		}
	}
	return out
}
