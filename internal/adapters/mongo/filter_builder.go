package mongo_adapter

import (
	"regexp"
	"strings"

	"github.com/MaryChris21/Estify/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildFilter translates a PropertyFilter into a query document and a sort spec.
func buildFilter(filter domain.PropertyFilter) (bson.D, bson.D) {
	query := bson.D{}

	if filter.Status != "" {
		query = append(query, bson.E{Key: "status", Value: string(filter.Status)})
	}
	if filter.RequestType != "" {
		query = append(query, bson.E{Key: "requestType", Value: string(filter.RequestType)})
	}
	if filter.PropertyType != "" {
		query = append(query, bson.E{Key: "propertyType", Value: string(filter.PropertyType)})
	}
	if filter.PostedByAgent != "" {
		query = append(query, bson.E{Key: "postedByAgent", Value: filter.PostedByAgent})
	}

	switch {
	case strings.TrimSpace(filter.DistrictEquals) != "":
		pattern := "^" + regexp.QuoteMeta(strings.TrimSpace(filter.DistrictEquals)) + "$"
		query = append(query, bson.E{Key: "district", Value: primitive.Regex{Pattern: pattern, Options: "i"}})
	case filter.DistrictContains != "":
		query = append(query, bson.E{Key: "district", Value: primitive.Regex{Pattern: regexp.QuoteMeta(filter.DistrictContains), Options: "i"}})
	}

	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.D{}
		if filter.MinPrice != nil {
			price = append(price, bson.E{Key: "$gte", Value: *filter.MinPrice})
		}
		if filter.MaxPrice != nil {
			price = append(price, bson.E{Key: "$lte", Value: *filter.MaxPrice})
		}
		query = append(query, bson.E{Key: "price", Value: price})
	}

	direction := 1
	if filter.NewestFirst {
		direction = -1
	}
	sort := bson.D{{Key: "createdAt", Value: direction}, {Key: "_id", Value: direction}}
	return query, sort
}
