package services

import (
	"context"
	"testing"

	apperrors "github.com/abdurrahmanrahat/grocery-store-server/common/errors"
	"github.com/abdurrahmanrahat/grocery-store-server/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// --- Mocks ---

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) Generate(userID, name, email, role string) (string, error) {
	args := m.Called(userID, name, email, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenStr string) (jwt.MapClaims, error) {
	args := m.Called(tokenStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(jwt.MapClaims), args.Error(1)
}

// --- Tests ---

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		authService := NewAuthService(mockRepo, new(MockTokenService))

		mockRepo.On("FindByEmail", ctx, "a@x.com").Return(nil, mongo.ErrNoDocuments).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

		err := authService.Register(ctx, "A", "a@x.com", "pw1")

		assert.NoError(t, err)
		created := mockRepo.Calls[1].Arguments.Get(1).(*models.User)
		assert.Equal(t, "A", created.Name)
		assert.Equal(t, "a@x.com", created.Email)
		assert.Equal(t, "user", created.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("pw1")))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		authService := NewAuthService(mockRepo, new(MockTokenService))

		existing := &models.User{ID: primitive.NewObjectID(), Email: "a@x.com"}
		mockRepo.On("FindByEmail", ctx, "a@x.com").Return(existing, nil).Once()

		err := authService.Register(ctx, "A", "a@x.com", "pw1")

		assert.ErrorIs(t, err, apperrors.ErrEmailExists)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Duplicate Key From Concurrent Register", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		authService := NewAuthService(mockRepo, new(MockTokenService))

		dupErr := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		mockRepo.On("FindByEmail", ctx, "a@x.com").Return(nil, mongo.ErrNoDocuments).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(dupErr).Once()

		err := authService.Register(ctx, "A", "a@x.com", "pw1")

		assert.ErrorIs(t, err, apperrors.ErrEmailExists)
		mockRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	password := "pw1"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	testUser := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "A",
		Email:    "a@x.com",
		Password: string(hashedPassword),
		Role:     "user",
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenService)
		authService := NewAuthService(mockRepo, mockTokens)

		mockRepo.On("FindByEmail", ctx, testUser.Email).Return(testUser, nil).Once()
		mockTokens.On("Generate", testUser.ID.Hex(), testUser.Name, testUser.Email, testUser.Role).
			Return("signed-token", nil).Once()

		token, err := authService.Login(ctx, testUser.Email, password)

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		mockRepo.AssertExpectations(t)
		mockTokens.AssertExpectations(t)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		authService := NewAuthService(mockRepo, new(MockTokenService))

		mockRepo.On("FindByEmail", ctx, "nobody@x.com").Return(nil, mongo.ErrNoDocuments).Once()

		_, err := authService.Login(ctx, "nobody@x.com", password)

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenService)
		authService := NewAuthService(mockRepo, mockTokens)

		mockRepo.On("FindByEmail", ctx, testUser.Email).Return(testUser, nil).Once()

		_, err := authService.Login(ctx, testUser.Email, "wrong")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		mockTokens.AssertNotCalled(t, "Generate")
	})
}
