package postgres_adapter

import (
	"fmt"
	"strings"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

const propertyColumns = `id, title, description, contact_name, contact_number, property_type, district,
	price, image, status, request_type, original_property_id, posted_by_agent, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildFindManyQuery turns a filter into a parameterized SELECT.
func buildFindManyQuery(filter domain.PropertyFilter) (string, []interface{}) {
	conditions := make([]string, 0, 8)
	args := make([]interface{}, 0, 8)
	argID := 1

	add := func(cond string, arg interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argID))
		args = append(args, arg)
		argID++
	}

	if filter.Status != "" {
		add("status = $%d", string(filter.Status))
	}
	if filter.RequestType != "" {
		add("request_type = $%d", string(filter.RequestType))
	}
	if filter.PropertyType != "" {
		add("property_type = $%d", string(filter.PropertyType))
	}
	if filter.PostedByAgent != "" {
		add("posted_by_agent = $%d", filter.PostedByAgent)
	}
	if filter.DistrictContains != "" {
		add(`district ILIKE $%d ESCAPE '\'`, "%"+likeEscaper.Replace(filter.DistrictContains)+"%")
	}
	if d := strings.TrimSpace(filter.DistrictEquals); d != "" {
		add("lower(district) = lower($%d)", d)
	}
	if filter.MinPrice != nil {
		add("price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add("price <= $%d", *filter.MaxPrice)
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(propertyColumns)
	sb.WriteString(" FROM properties")
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	if filter.NewestFirst {
		sb.WriteString(" ORDER BY created_at DESC, id DESC")
	} else {
		sb.WriteString(" ORDER BY created_at ASC, id ASC")
	}
	return sb.String(), args
}
