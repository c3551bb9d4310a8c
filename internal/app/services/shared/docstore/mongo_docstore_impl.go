package docstore

import (
	"context"
	"errors"
	"fmt"
	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const mongoIDField = "_id"

type MongoDocumentStore struct {
	Database *mongo.Database
	Log      *zap.Logger
}

func NewMongoDocumentStore(db *mongo.Database, logger *zap.Logger) *MongoDocumentStore {
	return &MongoDocumentStore{
		Database: db,
		Log:      logger,
	}
}

func (s *MongoDocumentStore) SupportsCompoundOrder() bool {
	return true
}

func (s *MongoDocumentStore) Find(ctx context.Context, query contracts.Query) ([]models.Document, error) {
	collectionName, filter, err := buildMongoFilter(query)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find()
	if sort := buildMongoSort(query.OrderBy); len(sort) > 0 {
		findOptions.SetSort(sort)
	}
	if query.Limit > 0 {
		findOptions.SetLimit(int64(query.Limit))
	}

	s.Log.Debug("MongoDocumentStore.Find called",
		zap.String(constvars.LoggingCollectionPathKey, query.PathString()),
		zap.String(constvars.LoggingQueryKey, fmt.Sprintf("%v", filter)),
	)

	cursor, err := s.Database.Collection(collectionName).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrDocstoreQuery(exceptions.ErrMongoDBFindDocument(err), query.PathString())
	}
	defer cursor.Close(ctx)

	var documents []models.Document
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, exceptions.ErrDocstoreQuery(exceptions.ErrMongoDBIterateDocuments(err), query.PathString())
		}
		documents = append(documents, documentFromBSON(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrDocstoreQuery(exceptions.ErrMongoDBIterateDocuments(err), query.PathString())
	}

	return documents, nil
}

// buildMongoFilter maps a query path onto a collection. Sub-collections live
// in "<parent>_<child>" collections keyed by the parent id.
func buildMongoFilter(query contracts.Query) (string, bson.D, error) {
	if err := validatePath(query.Path); err != nil {
		return "", nil, exceptions.ErrDocstoreInvalidPath(err, query.PathString())
	}

	filter := bson.D{}
	var collectionName string
	switch len(query.Path) {
	case 1:
		collectionName = query.Path[0]
	case 3:
		collectionName = query.Path[0] + constvars.MongoSubCollectionSeparator + query.Path[2]
		filter = append(filter, bson.E{Key: constvars.MongoParentIDField, Value: query.Path[1]})
	default:
		return "", nil, exceptions.ErrDocstoreInvalidPath(errors.New("nested sub-collections are not supported"), query.PathString())
	}

	for _, f := range query.Filters {
		field := mongoField(f.Field)

		switch f.Op {
		case contracts.FilterOpEqual, contracts.FilterOpArrayContains:
			filter = append(filter, bson.E{Key: field, Value: f.Value})
		case contracts.FilterOpGreaterOrEqual:
			filter = append(filter, bson.E{Key: field, Value: bson.D{{Key: "$gte", Value: f.Value}}})
		case contracts.FilterOpIn:
			values, ok := toSlice(f.Value)
			if !ok {
				return "", nil, exceptions.ErrDocstoreInvalidFilter(errors.New("'in' requires a list value"), string(f.Op))
			}
			filter = append(filter, bson.E{Key: field, Value: bson.D{{Key: "$in", Value: bson.A(values)}}})
		default:
			return "", nil, exceptions.ErrDocstoreInvalidFilter(errors.New(constvars.ErrDevInvalidInput), string(f.Op))
		}
	}

	return collectionName, filter, nil
}

func buildMongoSort(orders []contracts.Order) bson.D {
	sort := bson.D{}
	for _, order := range orders {
		direction := 1
		if order.Descending {
			direction = -1
		}
		sort = append(sort, bson.E{Key: mongoField(order.Field), Value: direction})
	}
	return sort
}

func mongoField(field string) string {
	if field == "id" {
		return mongoIDField
	}
	return field
}

func documentFromBSON(raw bson.M) models.Document {
	doc := models.Document{Data: make(map[string]interface{}, len(raw))}

	switch id := raw[mongoIDField].(type) {
	case primitive.ObjectID:
		doc.ID = id.Hex()
	case string:
		doc.ID = id
	case nil:
	default:
		doc.ID = fmt.Sprintf("%v", id)
	}

	for field, value := range raw {
		if field == mongoIDField || field == constvars.MongoParentIDField {
			continue
		}
		doc.Data[field] = fromBSONValue(value)
	}
	return doc
}

func fromBSONValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.DateTime:
		return v.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(v.T), 0).UTC()
	case primitive.A:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = fromBSONValue(item)
		}
		return result
	case int32:
		return int64(v)
	default:
		return v
	}
}
