package repository

import (
	"context"
	"testing"

	"github.com/abdurrahmanrahat/grocery-store-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// updateCommand mirrors the wire shape of an update command so the statements
// the driver actually sends can be asserted on.
type updateCommand struct {
	Collection string `bson:"update"`
	Updates    []struct {
		Filter struct {
			Title string  `bson:"title"`
			Price float64 `bson:"price"`
			Email string  `bson:"email"`
		} `bson:"q"`
		Update struct {
			Inc         map[string]int    `bson:"$inc"`
			SetOnInsert map[string]string `bson:"$setOnInsert"`
		} `bson:"u"`
		Upsert bool `bson:"upsert"`
	} `bson:"updates"`
}

func TestCartRepositoryAddOrIncrement(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	line := models.CartLine{
		Title:    "Salmon",
		Price:    10.5,
		Image:    "https://cdn.example.com/salmon.jpg",
		Category: "Freshwater",
		Email:    "a@x.com",
		Quantity: 1,
	}

	mt.Run("Upserts On The Identity Triple", func(mt *mtest.T) {
		repo := &CartRepository{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := repo.AddOrIncrement(context.Background(), line)
		assert.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)

		var cmd updateCommand
		require.NoError(mt, bson.Unmarshal(started.Command, &cmd))
		require.Len(mt, cmd.Updates, 1)

		statement := cmd.Updates[0]
		assert.Equal(mt, "Salmon", statement.Filter.Title)
		assert.Equal(mt, 10.5, statement.Filter.Price)
		assert.Equal(mt, "a@x.com", statement.Filter.Email)

		assert.Equal(mt, map[string]int{"quantity": 1}, statement.Update.Inc,
			"a matched line must gain exactly one")
		assert.Equal(mt, map[string]string{
			"image":    "https://cdn.example.com/salmon.jpg",
			"category": "Freshwater",
		}, statement.Update.SetOnInsert)

		assert.True(mt, statement.Upsert, "a missing line must be inserted, not dropped")
	})

	mt.Run("Repeat Add Sends The Same Statement", func(mt *mtest.T) {
		repo := &CartRepository{collection: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		require.NoError(mt, repo.AddOrIncrement(context.Background(), line))
		require.NoError(mt, repo.AddOrIncrement(context.Background(), line))

		var first, second updateCommand
		require.NoError(mt, bson.Unmarshal(mt.GetStartedEvent().Command, &first))
		require.NoError(mt, bson.Unmarshal(mt.GetStartedEvent().Command, &second))

		// Identical filter and increment both times, so the second add lands
		// on the line the first one created instead of opening a new one.
		assert.Equal(mt, first.Updates, second.Updates)
	})
}
