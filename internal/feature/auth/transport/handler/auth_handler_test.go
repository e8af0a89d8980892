package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/domain/entity"
	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/usecase"
	jwtmw "github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, email, name, password string) error
	SignInFunc func(ctx context.Context, email, password string) (*usecase.SignInResult, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, email, name, password string) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, name, password)
	}
	return nil // Default: success
}

func (m *mockAuthUsecase) SignIn(ctx context.Context, email, password string) (*usecase.SignInResult, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	return nil, usecase.ErrInvalidCredentials // Default: failure
}

// mockResetUsecase is a mock implementation of the ResetUsecase interface.
type mockResetUsecase struct {
	RequestResetFunc       func(ctx context.Context, email string) (bool, error)
	ValidateResetTokenFunc func(ctx context.Context, token string) bool
	CommitResetFunc        func(ctx context.Context, token, newPassword string) (bool, error)
}

func (m *mockResetUsecase) RequestReset(ctx context.Context, email string) (bool, error) {
	if m.RequestResetFunc != nil {
		return m.RequestResetFunc(ctx, email)
	}
	return true, nil
}

func (m *mockResetUsecase) ValidateResetToken(ctx context.Context, token string) bool {
	if m.ValidateResetTokenFunc != nil {
		return m.ValidateResetTokenFunc(ctx, token)
	}
	return false
}

func (m *mockResetUsecase) CommitReset(ctx context.Context, token, newPassword string) (bool, error) {
	if m.CommitResetFunc != nil {
		return m.CommitResetFunc(ctx, token, newPassword)
	}
	return false, usecase.ErrTokenInvalidOrExpired
}

func postJSON(router *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, email, name, password string) error
		expectedStatus int
	}{
		{
			name:           "success: user registration",
			requestBody:    gin.H{"email": "alice@example.com", "name": "Alice", "password": "secret1"},
			mockSignupFunc: func(ctx context.Context, email, name, password string) error { return nil },
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "name": "Alice", "password": "secret1"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"email": "alice@example.com", "name": "Alice", "password": "five5"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate email (usecase error)",
			requestBody: gin.H{"email": "existing@example.com", "name": "Alice", "password": "secret1"},
			mockSignupFunc: func(ctx context.Context, email, name, password string) error {
				return usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "failure: infrastructure error is not a conflict",
			requestBody: gin.H{"email": "alice@example.com", "name": "Alice", "password": "secret1"},
			mockSignupFunc: func(ctx context.Context, email, name, password string) error {
				return errors.New("connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{SignupFunc: tt.mockSignupFunc}, &mockResetUsecase{})

			router := gin.New()
			router.POST("/auth/signup", handler.Signup)

			w := postJSON(router, "/auth/signup", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_SignIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns profile and token", func(t *testing.T) {
		mockAuth := &mockAuthUsecase{
			SignInFunc: func(ctx context.Context, email, password string) (*usecase.SignInResult, error) {
				return &usecase.SignInResult{ID: 1, Name: "Alice", Avatar: "a.png", AccessToken: "signed-token"}, nil
			},
		}
		handler := NewAuthHandler(mockAuth, &mockResetUsecase{})

		router := gin.New()
		router.POST("/auth/signin", handler.SignIn)

		w := postJSON(router, "/auth/signin", gin.H{"email": "alice@example.com", "password": "secret1"})

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "signed-token", body["access_token"])
		assert.Equal(t, "Alice", body["name"])
		assert.NotContains(t, body, "password")
	})

	t.Run("invalid credentials return generic 401", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{}, &mockResetUsecase{})

		router := gin.New()
		router.POST("/auth/signin", handler.SignIn)

		w := postJSON(router, "/auth/signin", gin.H{"email": "alice@example.com", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
	})

	t.Run("infrastructure error returns 500", func(t *testing.T) {
		mockAuth := &mockAuthUsecase{
			SignInFunc: func(ctx context.Context, email, password string) (*usecase.SignInResult, error) {
				return nil, errors.New("connection refused")
			},
		}
		handler := NewAuthHandler(mockAuth, &mockResetUsecase{})

		router := gin.New()
		router.POST("/auth/signin", handler.SignIn)

		w := postJSON(router, "/auth/signin", gin.H{"email": "alice@example.com", "password": "secret1"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("always succeeds for a well-formed email", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{}, &mockResetUsecase{})

		router := gin.New()
		router.POST("/auth/forgot-password", handler.ForgotPassword)

		w := postJSON(router, "/auth/forgot-password", gin.H{"email": "nobody@example.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{}, &mockResetUsecase{})

		router := gin.New()
		router.POST("/auth/forgot-password", handler.ForgotPassword)

		w := postJSON(router, "/auth/forgot-password", gin.H{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("notifier failure surfaces as 500", func(t *testing.T) {
		mockReset := &mockResetUsecase{
			RequestResetFunc: func(ctx context.Context, email string) (bool, error) {
				return false, errors.New("mail channel down")
			},
		}
		handler := NewAuthHandler(&mockAuthUsecase{}, mockReset)

		router := gin.New()
		router.POST("/auth/forgot-password", handler.ForgotPassword)

		w := postJSON(router, "/auth/forgot-password", gin.H{"email": "alice@example.com"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "mail channel down")
	})
}

func TestAuthHandler_ValidateResetToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		valid          bool
		expectedStatus int
		expectedBody   string
	}{
		{"valid token", "?token=token-1", true, http.StatusOK, `"valid":true`},
		{"invalid token", "?token=token-1", false, http.StatusOK, `"valid":false`},
		{"missing token", "", false, http.StatusBadRequest, `"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReset := &mockResetUsecase{
				ValidateResetTokenFunc: func(ctx context.Context, token string) bool {
					return tt.valid
				},
			}
			handler := NewAuthHandler(&mockAuthUsecase{}, mockReset)

			router := gin.New()
			router.GET("/auth/validate-reset-token", handler.ValidateResetToken)

			req, _ := http.NewRequest(http.MethodGet, "/auth/validate-reset-token"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		requestBody     gin.H
		mockCommitFunc  func(ctx context.Context, token, newPassword string) (bool, error)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:        "success",
			requestBody: gin.H{"token": "token-1", "new_password": "secret2"},
			mockCommitFunc: func(ctx context.Context, token, newPassword string) (bool, error) {
				return true, nil
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: `"success":true`,
		},
		{
			name:            "short password rejected by binding",
			requestBody:     gin.H{"token": "token-1", "new_password": "five5"},
			mockCommitFunc:  nil, // Usecase is not called
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid request",
		},
		{
			name:            "missing token rejected by binding",
			requestBody:     gin.H{"new_password": "secret2"},
			mockCommitFunc:  nil, // Usecase is not called
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid request",
		},
		{
			name:        "invalid or expired token",
			requestBody: gin.H{"token": "token-1", "new_password": "secret2"},
			mockCommitFunc: func(ctx context.Context, token, newPassword string) (bool, error) {
				return false, usecase.ErrTokenInvalidOrExpired
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid or expired reset token",
		},
		{
			name:        "infrastructure failure",
			requestBody: gin.H{"token": "token-1", "new_password": "secret2"},
			mockCommitFunc: func(ctx context.Context, token, newPassword string) (bool, error) {
				return false, errors.New("connection refused")
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{}, &mockResetUsecase{CommitResetFunc: tt.mockCommitFunc})

			router := gin.New()
			router.POST("/auth/reset-password", handler.ResetPassword)

			w := postJSON(router, "/auth/reset-password", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedMessage)
		})
	}
}

func TestAuthHandler_VerifyToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the resolved identity", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{}, &mockResetUsecase{})

		router := gin.New()
		router.GET("/auth/verify-token", func(c *gin.Context) {
			// Simulate the session middleware having resolved the subject
			c.Set(jwtmw.ContextIdentity, &entity.Identity{ID: 1, Name: "Alice", Email: "alice@example.com"})
			handler.VerifyToken(c)
		})

		req, _ := http.NewRequest(http.MethodGet, "/auth/verify-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])

		user, ok := body["user"].(map[string]any)
		assert.True(t, ok, "expected user object")
		assert.Equal(t, "Alice", user["name"])
		assert.Equal(t, "alice@example.com", user["email"])
		assert.NotContains(t, user, "password")
	})

	t.Run("missing identity yields 401", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{}, &mockResetUsecase{})

		router := gin.New()
		router.GET("/auth/verify-token", handler.VerifyToken)

		req, _ := http.NewRequest(http.MethodGet, "/auth/verify-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
