package services

import (
	"context"

	apperrors "github.com/abdurrahmanrahat/grocery-store-server/common/errors"
	"github.com/abdurrahmanrahat/grocery-store-server/models"
	"github.com/abdurrahmanrahat/grocery-store-server/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ICartRepository interface {
	AddOrIncrement(ctx context.Context, line models.CartLine) error
	SetQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	Find(ctx context.Context, filter bson.M) ([]models.CartLine, error)
}

var _ ICartRepository = (*repository.CartRepository)(nil)

type CartService struct {
	repo ICartRepository
}

func NewCartService(repo ICartRepository) *CartService {
	return &CartService{repo: repo}
}

// AddToCart merges the line into the owner's cart. A repeat add for the same
// (title, price, email) triple increments the existing line's quantity by one;
// any quantity supplied by the caller is ignored.
func (s *CartService) AddToCart(ctx context.Context, line models.CartLine) error {
	if line.Title == "" || line.Email == "" {
		return apperrors.ErrBadRequest
	}
	// Inbound identifiers never survive; the store assigns line ids.
	line.ID = primitive.NilObjectID
	return s.repo.AddOrIncrement(ctx, line)
}

// UpdateQuantity sets the line's quantity to an absolute value. Zero deletes
// the line.
func (s *CartService) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) error {
	if quantity < 0 {
		return apperrors.ErrInvalidQuantity
	}

	if quantity == 0 {
		deleted, err := s.repo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return apperrors.ErrCartLineNotFound
		}
		return nil
	}

	matched, err := s.repo.SetQuantity(ctx, id, quantity)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperrors.ErrCartLineNotFound
	}
	return nil
}

// ListCart returns all lines, optionally filtered by exact owner email.
func (s *CartService) ListCart(ctx context.Context, email string) ([]models.CartLine, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	return s.repo.Find(ctx, filter)
}
