package repository

import (
	"context"
	"time"

	"github.com/abdurrahmanrahat/grocery-store-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FishRepository struct {
	collection *mongo.Collection
}

func NewFishRepository(db *mongo.Database) *FishRepository {
	return &FishRepository{
		collection: db.Collection("fishes"),
	}
}

func (r *FishRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Fish, error) {
	var fish models.Fish
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&fish)
	if err != nil {
		return nil, err
	}
	return &fish, nil
}

func (r *FishRepository) Find(ctx context.Context, filter bson.M) ([]models.Fish, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	fishes := []models.Fish{}
	if err := cursor.All(ctx, &fishes); err != nil {
		return nil, err
	}
	return fishes, nil
}

func (r *FishRepository) Create(ctx context.Context, fish *models.Fish) (primitive.ObjectID, error) {
	fish.CreatedAt = time.Now().UTC()
	result, err := r.collection.InsertOne(ctx, fish)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Update applies a partial $set. The caller strips immutable fields first.
func (r *FishRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (int64, error) {
	updates["updated_at"] = time.Now().UTC()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *FishRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
