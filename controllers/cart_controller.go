package controllers

import (
	"context"
	"net/http"

	apperrors "github.com/abdurrahmanrahat/grocery-store-server/common/errors"
	"github.com/abdurrahmanrahat/grocery-store-server/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ICartService interface {
	AddToCart(ctx context.Context, line models.CartLine) error
	UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) error
	ListCart(ctx context.Context, email string) ([]models.CartLine, error)
}

type CartController struct {
	service ICartService
}

func NewCartController(service ICartService) *CartController {
	return &CartController{service: service}
}

type UpdateQuantityRequest struct {
	// Pointer so an explicit zero (delete the line) passes binding.
	Quantity *int `json:"quantity" binding:"required"`
}

// AddCartFish merges a line into the owner's cart.
func (cc *CartController) AddCartFish(c *gin.Context) {
	var line models.CartLine
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}

	if err := cc.service.AddToCart(c.Request.Context(), line); err != nil {
		apperrors.Handle(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Fish added to cart successfully",
	})
}

// UpdateCartFish sets a line's quantity; zero removes the line.
func (cc *CartController) UpdateCartFish(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("fishId"))
	if err != nil {
		apperrors.Handle(c, apperrors.ErrInvalidID)
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}

	if err := cc.service.UpdateQuantity(c.Request.Context(), id, *req.Quantity); err != nil {
		apperrors.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart updated successfully",
	})
}

// GetCartFishes lists cart lines; ?email= filters by owner.
func (cc *CartController) GetCartFishes(c *gin.Context) {
	lines, err := cc.service.ListCart(c.Request.Context(), c.Query("email"))
	if err != nil {
		apperrors.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart fishes retrieved successfully",
		"data":    lines,
	})
}
