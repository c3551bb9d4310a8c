package docstore

import (
	"mindcare-service/internal/app/contracts"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildMongoFilter(t *testing.T) {
	t.Run("top level collection", func(t *testing.T) {
		collection, filter, err := buildMongoFilter(contracts.Query{
			Path: []string{"appointments"},
			Filters: []contracts.Filter{
				{Field: "therapistId", Op: contracts.FilterOpEqual, Value: "t1"},
				{Field: "date", Op: contracts.FilterOpGreaterOrEqual, Value: "2024-05-01"},
				{Field: "status", Op: contracts.FilterOpIn, Value: []string{"scheduled", "accepted"}},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "appointments", collection)
		assert.Equal(t, bson.D{
			{Key: "therapistId", Value: "t1"},
			{Key: "date", Value: bson.D{{Key: "$gte", Value: "2024-05-01"}}},
			{Key: "status", Value: bson.D{{Key: "$in", Value: bson.A{"scheduled", "accepted"}}}},
		}, filter)
	})

	t.Run("sub-collection", func(t *testing.T) {
		collection, filter, err := buildMongoFilter(contracts.Query{
			Path:    []string{"chats", "p1_t1", "messages"},
			Filters: []contracts.Filter{{Field: "participants", Op: contracts.FilterOpArrayContains, Value: "t1"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "chats_messages", collection)
		assert.Equal(t, bson.D{
			{Key: "parentId", Value: "p1_t1"},
			{Key: "participants", Value: "t1"},
		}, filter)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, _, err := buildMongoFilter(contracts.Query{Path: []string{"chats", "p1"}})
		require.Error(t, err)

		_, _, err = buildMongoFilter(contracts.Query{Path: []string{"a", "b", "c", "d", "e"}})
		require.Error(t, err)

		_, _, err = buildMongoFilter(contracts.Query{
			Path:    []string{"appointments"},
			Filters: []contracts.Filter{{Field: "status", Op: contracts.FilterOpIn, Value: "pending"}},
		})
		require.Error(t, err)
	})
}

func TestBuildMongoSort(t *testing.T) {
	sort := buildMongoSort([]contracts.Order{{Field: "date"}, {Field: "id", Descending: true}})

	assert.Equal(t, bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: -1}}, sort)
}

func TestDocumentFromBSON(t *testing.T) {
	objectID := primitive.NewObjectID()
	createdAt := time.Date(2024, 4, 20, 8, 0, 0, 0, time.UTC)

	doc := documentFromBSON(bson.M{
		"_id":          objectID,
		"parentId":     "p1_t1",
		"createdAt":    primitive.NewDateTimeFromTime(createdAt),
		"participants": primitive.A{"p1", "t1"},
		"read":         true,
	})

	assert.Equal(t, objectID.Hex(), doc.ID)
	assert.NotContains(t, doc.Data, "_id")
	assert.NotContains(t, doc.Data, "parentId")
	got, ok := doc.Time("createdAt")
	require.True(t, ok)
	assert.True(t, createdAt.Equal(got))
	assert.Equal(t, []string{"p1", "t1"}, doc.Strings("participants"))
	assert.True(t, doc.Bool("read"))
}
