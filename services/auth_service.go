package services

import (
	"context"

	apperrors "github.com/abdurrahmanrahat/grocery-store-server/common/errors"
	"github.com/abdurrahmanrahat/grocery-store-server/models"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type ITokenService interface {
	Generate(userID, name, email, role string) (string, error)
	ValidateToken(tokenStr string) (jwt.MapClaims, error)
}

type AuthService struct {
	userRepo     IUserRepository
	tokenService ITokenService
}

func NewAuthService(ur IUserRepository, ts ITokenService) *AuthService {
	return &AuthService{userRepo: ur, tokenService: ts}
}

// Register creates a new user with a bcrypt-hashed password. Registration is
// acknowledgment-only; no token is issued.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return apperrors.ErrEmailExists
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	newUser := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     models.DefaultRole,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent registration can slip past the pre-check; the unique
		// index on email reports it here.
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailExists
		}
		return err
	}
	return nil
}

// Login verifies the credentials and issues a signed, time-limited token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.tokenService.Generate(user.ID.Hex(), user.Name, user.Email, user.Role)
}
