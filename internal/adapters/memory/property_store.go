// Package memory keeps properties in process memory. It backs STORE_DRIVER=memory and the tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

type PropertyStore struct {
	mu      sync.RWMutex
	records map[string]domain.Property
	seq     int64
	order   map[string]int64
}

var _ port.PropertyStorePort = (*PropertyStore)(nil)

func NewPropertyStore() *PropertyStore {
	return &PropertyStore{
		records: make(map[string]domain.Property),
		order:   make(map[string]int64),
	}
}

func (s *PropertyStore) Create(ctx context.Context, property *domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	property.ID = uuid.NewString()
	s.seq++
	s.records[property.ID] = *property
	s.order[property.ID] = s.seq

	contextkeys.LoggerFromContext(ctx).Debug("Property stored", port.Fields{
		"component":   "MemoryPropertyStore",
		"property_id": property.ID,
	})
	return nil
}

func (s *PropertyStore) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return &p, nil
}

func (s *PropertyStore) FindMany(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type row struct {
		p   domain.Property
		seq int64
	}
	rows := make([]row, 0, len(s.records))
	for id, p := range s.records {
		if s.matches(p, filter) {
			rows = append(rows, row{p: p, seq: s.order[id]})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.p.CreatedAt.Equal(b.p.CreatedAt) {
			if filter.NewestFirst {
				return a.p.CreatedAt.After(b.p.CreatedAt)
			}
			return a.p.CreatedAt.Before(b.p.CreatedAt)
		}
		if filter.NewestFirst {
			return a.seq > b.seq
		}
		return a.seq < b.seq
	})

	result := make([]domain.Property, len(rows))
	for i, r := range rows {
		result[i] = r.p
	}
	return result, nil
}

func (s *PropertyStore) UpdateByID(ctx context.Context, id string, property *domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	updated := *property
	updated.ID = id
	updated.CreatedAt = current.CreatedAt
	s.records[id] = updated
	return nil
}

func (s *PropertyStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	delete(s.records, id)
	delete(s.order, id)
	return nil
}

// Len is used by tests to assert that nothing else was written.
func (s *PropertyStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *PropertyStore) matches(p domain.Property, f domain.PropertyFilter) bool {
	fold := cases.Fold()
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.RequestType != "" && p.RequestType != f.RequestType {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.PostedByAgent != "" && p.PostedByAgent != f.PostedByAgent {
		return false
	}
	if f.DistrictContains != "" && !strings.Contains(fold.String(p.District), fold.String(f.DistrictContains)) {
		return false
	}
	if f.DistrictEquals != "" && fold.String(p.District) != fold.String(strings.TrimSpace(f.DistrictEquals)) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

