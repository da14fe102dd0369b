package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/abdurrahmanrahat/grocery-store-server/common/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock Service ---

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) error {
	args := m.Called(ctx, name, email, password)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

// --- Tests ---

func TestRegisterController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 201 Created", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService)

		mockService.On("Register", mock.Anything, "A", "a@x.com", "pw1").Return(nil).Once()

		router := gin.New()
		router.POST("/register", authController.Register)

		payload := `{"name": "A", "email": "a@x.com", "password": "pw1"}`
		req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "User registered successfully")
		mockService.AssertExpectations(t)
	})

	t.Run("Duplicate Email - 409 Conflict", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService)

		mockService.On("Register", mock.Anything, "A", "a@x.com", "pw1").
			Return(apperrors.ErrEmailExists).Once()

		router := gin.New()
		router.POST("/register", authController.Register)

		payload := `{"name": "A", "email": "a@x.com", "password": "pw1"}`
		req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Email already registered")
		mockService.AssertExpectations(t)
	})

	t.Run("Missing Fields - 400 Bad Request", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService)

		router := gin.New()
		router.POST("/register", authController.Register)

		payload := `{"email": "a@x.com"}`
		req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Register")
	})
}

func TestLoginController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 200 OK With Token", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService)

		mockService.On("Login", mock.Anything, "a@x.com", "pw1").Return("signed-token", nil).Once()

		router := gin.New()
		router.POST("/login", authController.Login)

		payload := `{"email": "a@x.com", "password": "pw1"}`
		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "signed-token")
		mockService.AssertExpectations(t)
	})

	t.Run("Bad Credentials - 401 Unauthorized", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService)

		mockService.On("Login", mock.Anything, "a@x.com", "wrong").
			Return("", apperrors.ErrInvalidCredentials).Once()

		router := gin.New()
		router.POST("/login", authController.Login)

		payload := `{"email": "a@x.com", "password": "wrong"}`
		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid email or password")
		mockService.AssertExpectations(t)
	})
}
