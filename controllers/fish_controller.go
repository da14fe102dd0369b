package controllers

import (
	"context"
	"net/http"

	apperrors "github.com/abdurrahmanrahat/grocery-store-server/common/errors"
	"github.com/abdurrahmanrahat/grocery-store-server/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IFishService interface {
	Create(ctx context.Context, fish *models.Fish) (primitive.ObjectID, error)
	List(ctx context.Context, discountOnly bool) ([]models.Fish, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Fish, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type FishController struct {
	service IFishService
}

func NewFishController(service IFishService) *FishController {
	return &FishController{service: service}
}

// CreateFish inserts a new catalog entry.
func (fc *FishController) CreateFish(c *gin.Context) {
	var fish models.Fish
	if err := c.ShouldBindJSON(&fish); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}

	if _, err := fc.service.Create(c.Request.Context(), &fish); err != nil {
		apperrors.Handle(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Fish inserted successfully",
	})
}

// GetFishes lists the catalog; ?discount=true restricts to discounted fishes.
func (fc *FishController) GetFishes(c *gin.Context) {
	discountOnly := c.Query("discount") == "true"

	fishes, err := fc.service.List(c.Request.Context(), discountOnly)
	if err != nil {
		apperrors.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Fishes retrieved successfully",
		"data":    fishes,
	})
}

// GetFishByID returns a single catalog entry.
func (fc *FishController) GetFishByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("fishId"))
	if err != nil {
		apperrors.Handle(c, apperrors.ErrInvalidID)
		return
	}

	fish, err := fc.service.GetByID(c.Request.Context(), id)
	if err != nil {
		apperrors.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Fish retrieved successfully",
		"data":    fish,
	})
}

// UpdateFish applies a partial update to a catalog entry.
func (fc *FishController) UpdateFish(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("fishId"))
	if err != nil {
		apperrors.Handle(c, apperrors.ErrInvalidID)
		return
	}

	var updates bson.M
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}

	if err := fc.service.Update(c.Request.Context(), id, updates); err != nil {
		apperrors.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Fish updated successfully",
	})
}

// DeleteFish removes a catalog entry.
func (fc *FishController) DeleteFish(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("fishId"))
	if err != nil {
		apperrors.Handle(c, apperrors.ErrInvalidID)
		return
	}

	if err := fc.service.Delete(c.Request.Context(), id); err != nil {
		apperrors.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Fish deleted successfully",
	})
}
