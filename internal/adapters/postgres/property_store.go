package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresPropertyStore keeps live listings and pending requests in one properties table.
type PostgresPropertyStore struct {
	pool *pgxpool.Pool
}

var _ port.PropertyStorePort = (*PostgresPropertyStore)(nil)

func NewPostgresPropertyStore(pool *pgxpool.Pool) (*PostgresPropertyStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresPropertyStore{pool: pool}, nil
}

func (r *PostgresPropertyStore) logger(ctx context.Context, method string, fields port.Fields) port.LoggerPort {
	l := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresPropertyStore",
		"method":    method,
	})
	if len(fields) > 0 {
		l = l.WithFields(fields)
	}
	return l
}

func (r *PostgresPropertyStore) Create(ctx context.Context, property *domain.Property) error {
	property.ID = uuid.NewString()
	repoLogger := r.logger(ctx, "Create", port.Fields{"property_id": property.ID})

	query := `
		INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.pool.Exec(ctx, query,
		property.ID,
		property.Title,
		property.Description,
		property.ContactName,
		property.ContactNumber,
		string(property.PropertyType),
		property.District,
		property.Price,
		property.Image,
		string(property.Status),
		string(property.RequestType),
		nullableString(property.OriginalPropertyID),
		property.PostedByAgent,
		property.CreatedAt,
		property.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			repoLogger.Error("Property id collision", err, nil)
			return fmt.Errorf("property %s already exists: %w", property.ID, err)
		}
		repoLogger.Error("Failed to insert property", err, nil)
		return fmt.Errorf("failed to insert property: %w", err)
	}

	repoLogger.Debug("Property inserted", nil)
	return nil
}

func (r *PostgresPropertyStore) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	repoLogger := r.logger(ctx, "FindByID", port.Fields{"property_id": id})

	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	property, err := scanProperty(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Property not found", nil)
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		repoLogger.Error("Failed to load property", err, nil)
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	return property, nil
}

func (r *PostgresPropertyStore) FindMany(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	repoLogger := r.logger(ctx, "FindMany", nil)

	query, args := buildFindManyQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			repoLogger.Error("Failed to scan property row", err, nil)
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error while iterating property rows", err, nil)
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}

	repoLogger.Debug("Properties loaded", port.Fields{"count": len(properties)})
	return properties, nil
}

// UpdateByID never touches id and created_at.
func (r *PostgresPropertyStore) UpdateByID(ctx context.Context, id string, property *domain.Property) error {
	repoLogger := r.logger(ctx, "UpdateByID", port.Fields{"property_id": id})

	query := `
		UPDATE properties SET
			title = $2,
			description = $3,
			contact_name = $4,
			contact_number = $5,
			property_type = $6,
			district = $7,
			price = $8,
			image = $9,
			status = $10,
			request_type = $11,
			original_property_id = $12,
			posted_by_agent = $13,
			updated_at = $14
		WHERE id = $1
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		id,
		property.Title,
		property.Description,
		property.ContactName,
		property.ContactNumber,
		string(property.PropertyType),
		property.District,
		property.Price,
		property.Image,
		string(property.Status),
		string(property.RequestType),
		nullableString(property.OriginalPropertyID),
		property.PostedByAgent,
		property.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to update property", err, nil)
		return fmt.Errorf("failed to update property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Update failed: property not found", nil)
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return nil
}

func (r *PostgresPropertyStore) DeleteByID(ctx context.Context, id string) error {
	repoLogger := r.logger(ctx, "DeleteByID", port.Fields{"property_id": id})

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		repoLogger.Error("Failed to delete property", err, nil)
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Delete failed: property not found", nil)
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return nil
}

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var (
		p            domain.Property
		propertyType string
		status       string
		requestType  string
		originalID   *string
	)
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.ContactName,
		&p.ContactNumber,
		&propertyType,
		&p.District,
		&p.Price,
		&p.Image,
		&status,
		&requestType,
		&originalID,
		&p.PostedByAgent,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.PropertyType = domain.PropertyType(propertyType)
	p.Status = domain.Status(status)
	p.RequestType = domain.RequestType(requestType)
	if originalID != nil {
		p.OriginalPropertyID = *originalID
	}
	return &p, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
