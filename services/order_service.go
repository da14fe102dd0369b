package services

import (
	"context"
	"time"

	apperrors "github.com/abdurrahmanrahat/grocery-store-server/common/errors"
	"github.com/abdurrahmanrahat/grocery-store-server/models"
	"github.com/abdurrahmanrahat/grocery-store-server/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type IOrderRepository interface {
	CreateMany(ctx context.Context, orders []models.Order) ([]primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Find(ctx context.Context, filter bson.M) ([]models.Order, error)
	UpdateStatusGuard(ctx context.Context, id primitive.ObjectID, from, to string) (int64, error)
}

var _ IOrderRepository = (*repository.OrderRepository)(nil)

// IEventProducer publishes order lifecycle events.
type IEventProducer interface {
	SendOrderPlacedEvent(ctx context.Context, event models.OrderPlacedEvent) error
}

type OrderService struct {
	repo     IOrderRepository
	cartRepo ICartRepository
	events   IEventProducer
}

// NewOrderService wires the order store, the cart store consumed at checkout,
// and an optional event producer (nil disables publishing).
func NewOrderService(repo IOrderRepository, cartRepo ICartRepository, events IEventProducer) *OrderService {
	return &OrderService{repo: repo, cartRepo: cartRepo, events: events}
}

// Checkout converts the supplied cart lines into Pending orders and clears the
// owner's cart. Orders are inserted before the cart is cleared: a failure
// between the two steps leaves both sets behind rather than neither, so the
// loss window becomes a duplicate window.
func (s *OrderService) Checkout(ctx context.Context, lines []models.CartLine) ([]primitive.ObjectID, error) {
	if len(lines) == 0 {
		return nil, apperrors.ErrEmptyOrder
	}

	// All lines must belong to one owner; a line carrying a different email
	// is a caller error, not something to re-attribute.
	email := ""
	for _, line := range lines {
		if line.Email == "" {
			continue
		}
		if email == "" {
			email = line.Email
			continue
		}
		if line.Email != email {
			return nil, apperrors.ErrBadRequest
		}
	}
	if email == "" {
		return nil, apperrors.ErrBadRequest
	}

	now := time.Now().UTC()
	orders := make([]models.Order, 0, len(lines))
	for _, line := range lines {
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		orders = append(orders, models.Order{
			Title:     line.Title,
			Price:     line.Price,
			Image:     line.Image,
			Category:  line.Category,
			Email:     email,
			Quantity:  quantity,
			Status:    models.StatusPending,
			CreatedAt: now,
		})
	}

	ids, err := s.repo.CreateMany(ctx, orders)
	if err != nil {
		return nil, err
	}

	if _, err := s.cartRepo.DeleteByEmail(ctx, email); err != nil {
		zap.L().Error("Cart cleanup after checkout failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	s.publishOrderPlaced(ctx, email, ids)
	return ids, nil
}

// ListOrders returns all orders, optionally filtered by exact owner email.
func (s *OrderService) ListOrders(ctx context.Context, email string) ([]models.Order, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	return s.repo.Find(ctx, filter)
}

// UpdateStatus moves the order to the given status. The status must belong to
// the closed set and the move must follow the transition graph; the final
// write is guarded on the status read here, so a concurrent transition loses.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if !models.ValidStatus(status) {
		return apperrors.ErrInvalidStatus
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperrors.ErrOrderNotFound
		}
		return err
	}

	if !models.CanTransition(order.Status, status) {
		return apperrors.ErrInvalidTransition
	}

	matched, err := s.repo.UpdateStatusGuard(ctx, id, order.Status, status)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperrors.ErrInvalidTransition
	}
	return nil
}

func (s *OrderService) publishOrderPlaced(ctx context.Context, email string, ids []primitive.ObjectID) {
	if s.events == nil {
		return
	}

	orderIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		orderIDs = append(orderIDs, id.Hex())
	}

	event := models.OrderPlacedEvent{
		Event:     "order.placed",
		Email:     email,
		OrderIDs:  orderIDs,
		Timestamp: time.Now().UTC(),
	}
	if err := s.events.SendOrderPlacedEvent(ctx, event); err != nil {
		zap.L().Warn("Failed to publish order placed event",
			zap.String("email", email),
			zap.Error(err),
		)
	}
}
