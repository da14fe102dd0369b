package controllers

import (
	"context"
	"net/http"

	apperrors "github.com/abdurrahmanrahat/grocery-store-server/common/errors"
	"github.com/abdurrahmanrahat/grocery-store-server/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IOrderService interface {
	Checkout(ctx context.Context, lines []models.CartLine) ([]primitive.ObjectID, error)
	ListOrders(ctx context.Context, email string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

type OrderController struct {
	service IOrderService
}

func NewOrderController(service IOrderService) *OrderController {
	return &OrderController{service: service}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrders converts the posted cart lines into orders.
func (oc *OrderController) CreateOrders(c *gin.Context) {
	var lines []models.CartLine
	if err := c.ShouldBindJSON(&lines); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}

	ids, err := oc.service.Checkout(c.Request.Context(), lines)
	if err != nil {
		apperrors.Handle(c, err)
		return
	}

	orderIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		orderIDs = append(orderIDs, id.Hex())
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Orders placed successfully",
		"data": gin.H{
			"count":     len(orderIDs),
			"order_ids": orderIDs,
		},
	})
}

// GetOrders lists orders; ?email= filters by owner.
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.service.ListOrders(c.Request.Context(), c.Query("email"))
	if err != nil {
		apperrors.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}

// UpdateOrder moves an order to a new status.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("fishId"))
	if err != nil {
		apperrors.Handle(c, apperrors.ErrInvalidID)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}

	if err := oc.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		apperrors.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated successfully",
	})
}
