package repository

import (
	"context"

	"github.com/abdurrahmanrahat/grocery-store-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{
		collection: db.Collection("carts"),
	}
}

// EnsureIndexes creates the compound index backing identity-triple lookups.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "email", Value: 1},
			{Key: "title", Value: 1},
			{Key: "price", Value: 1},
		},
	})
	return err
}

// AddOrIncrement merges line into the owner's cart as a single atomic upsert
// on the identity triple: an existing line gets its quantity incremented by
// one, otherwise the line is inserted with quantity one. Two concurrent adds
// for the same triple therefore end up in one line.
func (r *CartRepository) AddOrIncrement(ctx context.Context, line models.CartLine) error {
	identity := line.Identity()
	filter := bson.M{
		"title": identity.Title,
		"price": identity.Price,
		"email": identity.Email,
	}
	update := bson.M{
		"$inc": bson.M{"quantity": 1},
		"$setOnInsert": bson.M{
			"image":    line.Image,
			"category": line.Category,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// SetQuantity sets the line's quantity to an absolute value and returns the
// number of matched lines.
func (r *CartRepository) SetQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteByEmail removes all of an owner's lines, as happens at checkout.
func (r *CartRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *CartRepository) Find(ctx context.Context, filter bson.M) ([]models.CartLine, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	lines := []models.CartLine{}
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
