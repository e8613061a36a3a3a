package mongo_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookingDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	PropertyID string             `bson:"property"`
	UserID     string             `bson:"user"`
	Price      float64            `bson:"price"`
	StartDate  time.Time          `bson:"startDate"`
	EndDate    time.Time          `bson:"endDate"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func toBookingDocument(b *domain.Booking) bookingDocument {
	return bookingDocument{
		PropertyID: b.PropertyID,
		UserID:     b.UserID,
		Price:      b.Price,
		StartDate:  b.StartDate.UTC(),
		EndDate:    b.EndDate.UTC(),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.UTC(),
		UpdatedAt:  b.UpdatedAt.UTC(),
	}
}

func (d bookingDocument) toDomain() domain.Booking {
	return domain.Booking{
		ID:         d.ID.Hex(),
		PropertyID: d.PropertyID,
		UserID:     d.UserID,
		Price:      d.Price,
		StartDate:  d.StartDate,
		EndDate:    d.EndDate,
		Status:     domain.BookingStatus(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// buildBookingFilter returns the query and the start-date sort.
func buildBookingFilter(filter domain.BookingFilter) (bson.D, bson.D) {
	query := bson.D{}
	if filter.PropertyID != "" {
		query = append(query, bson.E{Key: "property", Value: filter.PropertyID})
	}
	if filter.UserID != "" {
		query = append(query, bson.E{Key: "user", Value: filter.UserID})
	}
	switch {
	case filter.Status != "":
		query = append(query, bson.E{Key: "status", Value: string(filter.Status)})
	case filter.ExcludeRejected:
		query = append(query, bson.E{Key: "status", Value: bson.D{{Key: "$ne", Value: string(domain.BookingRejected)}}})
	}
	return query, bson.D{{Key: "startDate", Value: 1}, {Key: "_id", Value: 1}}
}

type MongoBookingStore struct {
	collection *mongo.Collection
}

var _ port.BookingStorePort = (*MongoBookingStore)(nil)

func NewMongoBookingStore(collection *mongo.Collection) (*MongoBookingStore, error) {
	if collection == nil {
		return nil, fmt.Errorf("mongo collection cannot be nil")
	}
	return &MongoBookingStore{collection: collection}, nil
}

func (s *MongoBookingStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "property", Value: 1}, {Key: "startDate", Value: 1}}},
		{Keys: bson.D{{Key: "user", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

func (s *MongoBookingStore) logger(ctx context.Context, method string, fields port.Fields) port.LoggerPort {
	l := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MongoBookingStore",
		"method":    method,
	})
	if len(fields) > 0 {
		l = l.WithFields(fields)
	}
	return l
}

func (s *MongoBookingStore) Create(ctx context.Context, booking *domain.Booking) error {
	doc := toBookingDocument(booking)
	doc.ID = primitive.NewObjectID()
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		s.logger(ctx, "Create", nil).Error("Failed to insert booking", err, nil)
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	booking.ID = doc.ID.Hex()
	return nil
}

func (s *MongoBookingStore) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc bookingDocument
	if err := s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
		}
		s.logger(ctx, "FindByID", port.Fields{"booking_id": id}).Error("Failed to load booking", err, nil)
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	b := doc.toDomain()
	return &b, nil
}

func (s *MongoBookingStore) FindMany(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	repoLogger := s.logger(ctx, "FindMany", nil)

	query, sort := buildBookingFilter(filter)
	cursor, err := s.collection.Find(ctx, query, options.Find().SetSort(sort))
	if err != nil {
		repoLogger.Error("Failed to query bookings", err, nil)
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := make([]domain.Booking, 0)
	for cursor.Next(ctx) {
		var doc bookingDocument
		if err := cursor.Decode(&doc); err != nil {
			repoLogger.Error("Failed to decode booking document", err, nil)
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}

func (s *MongoBookingStore) UpdateByID(ctx context.Context, id string, booking *domain.Booking) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	doc := toBookingDocument(booking)
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "property", Value: doc.PropertyID},
		{Key: "user", Value: doc.UserID},
		{Key: "price", Value: doc.Price},
		{Key: "startDate", Value: doc.StartDate},
		{Key: "endDate", Value: doc.EndDate},
		{Key: "status", Value: doc.Status},
		{Key: "updatedAt", Value: doc.UpdatedAt},
	}}}

	res, err := s.collection.UpdateByID(ctx, oid, update)
	if err != nil {
		s.logger(ctx, "UpdateByID", nil).Error("Failed to update booking", err, port.Fields{"booking_id": id})
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}
	return nil
}

func (s *MongoBookingStore) DeleteByID(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := s.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		s.logger(ctx, "DeleteByID", nil).Error("Failed to delete booking", err, port.Fields{"booking_id": id})
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}
	return nil
}
