package mongo_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPropertyStore keeps every property record in a single collection.
type MongoPropertyStore struct {
	collection *mongo.Collection
}

var _ port.PropertyStorePort = (*MongoPropertyStore)(nil)

func NewMongoPropertyStore(collection *mongo.Collection) (*MongoPropertyStore, error) {
	if collection == nil {
		return nil, fmt.Errorf("mongo collection cannot be nil")
	}
	return &MongoPropertyStore{collection: collection}, nil
}

// EnsureIndexes creates the indexes the listing, moderation and agent queries rely on.
func (s *MongoPropertyStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "requestType", Value: 1}}},
		{Keys: bson.D{{Key: "postedByAgent", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "district", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create property indexes: %w", err)
	}
	return nil
}

func (s *MongoPropertyStore) logger(ctx context.Context, method string, fields port.Fields) port.LoggerPort {
	l := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MongoPropertyStore",
		"method":    method,
	})
	if len(fields) > 0 {
		l = l.WithFields(fields)
	}
	return l
}

// objectID maps a malformed id to ErrNotFound: no document can carry it.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return oid, nil
}

func (s *MongoPropertyStore) Create(ctx context.Context, property *domain.Property) error {
	repoLogger := s.logger(ctx, "Create", nil)

	doc := toDocument(property)
	doc.ID = primitive.NewObjectID()
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			repoLogger.Error("Property id collision", err, nil)
			return fmt.Errorf("property %s already exists: %w", doc.ID.Hex(), err)
		}
		repoLogger.Error("Failed to insert property", err, nil)
		return fmt.Errorf("failed to insert property: %w", err)
	}

	property.ID = doc.ID.Hex()
	repoLogger.Debug("Property inserted", port.Fields{"property_id": property.ID})
	return nil
}

func (s *MongoPropertyStore) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	repoLogger := s.logger(ctx, "FindByID", port.Fields{"property_id": id})

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc propertyDocument
	if err := s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			repoLogger.Debug("Property not found", nil)
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		repoLogger.Error("Failed to load property", err, nil)
		return nil, fmt.Errorf("failed to load property: %w", err)
	}

	p := doc.toDomain()
	return &p, nil
}

func (s *MongoPropertyStore) FindMany(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	repoLogger := s.logger(ctx, "FindMany", nil)

	query, sort := buildFilter(filter)
	cursor, err := s.collection.Find(ctx, query, options.Find().SetSort(sort))
	if err != nil {
		repoLogger.Error("Failed to query properties", err, nil)
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer cursor.Close(ctx)

	properties := make([]domain.Property, 0)
	for cursor.Next(ctx) {
		var doc propertyDocument
		if err := cursor.Decode(&doc); err != nil {
			repoLogger.Error("Failed to decode property document", err, nil)
			return nil, fmt.Errorf("failed to decode property: %w", err)
		}
		properties = append(properties, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		repoLogger.Error("Cursor error while reading properties", err, nil)
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}

	repoLogger.Debug("Properties loaded", port.Fields{"count": len(properties)})
	return properties, nil
}

// UpdateByID never touches _id and createdAt.
func (s *MongoPropertyStore) UpdateByID(ctx context.Context, id string, property *domain.Property) error {
	repoLogger := s.logger(ctx, "UpdateByID", port.Fields{"property_id": id})

	oid, err := objectID(id)
	if err != nil {
		return err
	}

	doc := toDocument(property)
	set := bson.D{
		{Key: "title", Value: doc.Title},
		{Key: "description", Value: doc.Description},
		{Key: "contactName", Value: doc.ContactName},
		{Key: "contactNumber", Value: doc.ContactNumber},
		{Key: "propertyType", Value: doc.PropertyType},
		{Key: "district", Value: doc.District},
		{Key: "price", Value: doc.Price},
		{Key: "image", Value: doc.Image},
		{Key: "status", Value: doc.Status},
		{Key: "requestType", Value: doc.RequestType},
		{Key: "postedByAgent", Value: doc.PostedByAgent},
		{Key: "updatedAt", Value: doc.UpdatedAt},
	}
	update := bson.D{{Key: "$set", Value: set}}
	if doc.OriginalPropertyID == "" {
		update = append(update, bson.E{Key: "$unset", Value: bson.D{{Key: "originalPropertyId", Value: ""}}})
	} else {
		set = append(set, bson.E{Key: "originalPropertyId", Value: doc.OriginalPropertyID})
		update[0].Value = set
	}

	res, err := s.collection.UpdateByID(ctx, oid, update)
	if err != nil {
		repoLogger.Error("Failed to update property", err, nil)
		return fmt.Errorf("failed to update property: %w", err)
	}
	if res.MatchedCount == 0 {
		repoLogger.Warn("Update failed: property not found", nil)
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return nil
}

func (s *MongoPropertyStore) DeleteByID(ctx context.Context, id string) error {
	repoLogger := s.logger(ctx, "DeleteByID", port.Fields{"property_id": id})

	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := s.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		repoLogger.Error("Failed to delete property", err, nil)
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if res.DeletedCount == 0 {
		repoLogger.Warn("Delete failed: property not found", nil)
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return nil
}
