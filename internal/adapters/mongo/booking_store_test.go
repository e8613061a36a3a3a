package mongo_adapter

import (
	"reflect"
	"testing"

	"github.com/MaryChris21/Estify/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildBookingFilter(t *testing.T) {
	query, sort := buildBookingFilter(domain.BookingFilter{PropertyID: "p-1", ExcludeRejected: true})
	want := bson.D{
		{Key: "property", Value: "p-1"},
		{Key: "status", Value: bson.D{{Key: "$ne", Value: "rejected"}}},
	}
	if !reflect.DeepEqual(query, want) {
		t.Fatalf("unexpected query: %v", query)
	}
	if !reflect.DeepEqual(sort, bson.D{{Key: "startDate", Value: 1}, {Key: "_id", Value: 1}}) {
		t.Fatalf("unexpected sort: %v", sort)
	}

	query, _ = buildBookingFilter(domain.BookingFilter{UserID: "u-1", Status: domain.BookingPending, ExcludeRejected: true})
	want = bson.D{{Key: "user", Value: "u-1"}, {Key: "status", Value: "pending"}}
	if !reflect.DeepEqual(query, want) {
		t.Fatalf("explicit status must replace the exclusion: %v", query)
	}
}
