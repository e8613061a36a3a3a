package mongo_adapter

import (
	"time"

	"github.com/MaryChris21/Estify/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// propertyDocument is one flat document per listing or request, the same shape for both.
type propertyDocument struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Title              string             `bson:"title"`
	Description        string             `bson:"description"`
	ContactName        string             `bson:"contactName"`
	ContactNumber      string             `bson:"contactNumber"`
	PropertyType       string             `bson:"propertyType"`
	District           string             `bson:"district"`
	Price              float64            `bson:"price"`
	Image              string             `bson:"image,omitempty"`
	Status             string             `bson:"status"`
	RequestType        string             `bson:"requestType"`
	OriginalPropertyID string             `bson:"originalPropertyId,omitempty"`
	PostedByAgent      string             `bson:"postedByAgent"`
	CreatedAt          time.Time          `bson:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt"`
}

func toDocument(p *domain.Property) propertyDocument {
	return propertyDocument{
		Title:              p.Title,
		Description:        p.Description,
		ContactName:        p.ContactName,
		ContactNumber:      p.ContactNumber,
		PropertyType:       string(p.PropertyType),
		District:           p.District,
		Price:              p.Price,
		Image:              p.Image,
		Status:             string(p.Status),
		RequestType:        string(p.RequestType),
		OriginalPropertyID: p.OriginalPropertyID,
		PostedByAgent:      p.PostedByAgent,
		CreatedAt:          p.CreatedAt.UTC(),
		UpdatedAt:          p.UpdatedAt.UTC(),
	}
}

func (d propertyDocument) toDomain() domain.Property {
	return domain.Property{
		ID: d.ID.Hex(),
		PropertyFields: domain.PropertyFields{
			Title:         d.Title,
			Description:   d.Description,
			ContactName:   d.ContactName,
			ContactNumber: d.ContactNumber,
			PropertyType:  domain.PropertyType(d.PropertyType),
			District:      d.District,
			Price:         d.Price,
			Image:         d.Image,
		},
		Status:             domain.Status(d.Status),
		RequestType:        domain.RequestType(d.RequestType),
		OriginalPropertyID: d.OriginalPropertyID,
		PostedByAgent:      d.PostedByAgent,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
