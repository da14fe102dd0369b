package services

import (
	"context"
	"encoding/json"
	"time"

	apperrors "github.com/abdurrahmanrahat/grocery-store-server/common/errors"
	"github.com/abdurrahmanrahat/grocery-store-server/models"
	"github.com/abdurrahmanrahat/grocery-store-server/repository"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	cacheKeyAllFishes      = "fishes:all"
	cacheKeyDiscountFishes = "fishes:discount"
)

type IFishRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Fish, error)
	Find(ctx context.Context, filter bson.M) ([]models.Fish, error)
	Create(ctx context.Context, fish *models.Fish) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

var _ IFishRepository = (*repository.FishRepository)(nil)

type FishService struct {
	repo     IFishRepository
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewFishService(repo IFishRepository, cache *redis.Client, cacheTTL time.Duration) *FishService {
	return &FishService{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

func (s *FishService) Create(ctx context.Context, fish *models.Fish) (primitive.ObjectID, error) {
	fish.ID = primitive.NilObjectID
	id, err := s.repo.Create(ctx, fish)
	if err != nil {
		return primitive.NilObjectID, err
	}
	s.invalidateCache(ctx)
	return id, nil
}

// List returns the catalog, optionally restricted to discounted fishes.
// Results are served from Redis when a fresh copy exists.
func (s *FishService) List(ctx context.Context, discountOnly bool) ([]models.Fish, error) {
	cacheKey := cacheKeyAllFishes
	filter := bson.M{}
	if discountOnly {
		cacheKey = cacheKeyDiscountFishes
		filter["discount"] = true
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var fishes []models.Fish
			if err := json.Unmarshal([]byte(cached), &fishes); err == nil {
				return fishes, nil
			}
		} else if err != redis.Nil {
			zap.L().Warn("Fish cache read failed", zap.Error(err))
		}
	}

	fishes, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(fishes); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				zap.L().Warn("Fish cache write failed", zap.Error(err))
			}
		}
	}
	return fishes, nil
}

func (s *FishService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Fish, error) {
	fish, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrFishNotFound
		}
		return nil, err
	}
	return fish, nil
}

func (s *FishService) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	delete(updates, "_id")
	delete(updates, "created_at")
	if len(updates) == 0 {
		return apperrors.ErrBadRequest
	}

	matched, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperrors.ErrFishNotFound
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *FishService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.ErrFishNotFound
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *FishService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKeyAllFishes, cacheKeyDiscountFishes).Err(); err != nil {
		zap.L().Warn("Fish cache invalidation failed", zap.Error(err))
	}
}
