package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
	"github.com/google/uuid"
)

type BookingStore struct {
	mu      sync.RWMutex
	records map[string]domain.Booking
	seq     int64
	order   map[string]int64
}

var _ port.BookingStorePort = (*BookingStore)(nil)

func NewBookingStore() *BookingStore {
	return &BookingStore{
		records: make(map[string]domain.Booking),
		order:   make(map[string]int64),
	}
}

func (s *BookingStore) Create(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = uuid.NewString()
	s.seq++
	s.records[booking.ID] = *booking
	s.order[booking.ID] = s.seq
	return nil
}

func (s *BookingStore) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}
	return &b, nil
}

func (s *BookingStore) FindMany(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for id, b := range s.records {
		if bookingMatches(b, filter) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := s.records[ids[i]], s.records[ids[j]]
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		return s.order[ids[i]] < s.order[ids[j]]
	})

	result := make([]domain.Booking, len(ids))
	for i, id := range ids {
		result[i] = s.records[id]
	}
	return result, nil
}

func (s *BookingStore) UpdateByID(ctx context.Context, id string, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}
	updated := *booking
	updated.ID = id
	updated.CreatedAt = current.CreatedAt
	s.records[id] = updated
	return nil
}

func (s *BookingStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}
	delete(s.records, id)
	delete(s.order, id)
	return nil
}

func (s *BookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func bookingMatches(b domain.Booking, f domain.BookingFilter) bool {
	if f.PropertyID != "" && b.PropertyID != f.PropertyID {
		return false
	}
	if f.UserID != "" && b.UserID != f.UserID {
		return false
	}
	if f.Status != "" {
		return b.Status == f.Status
	}
	return !(f.ExcludeRejected && b.Status == domain.BookingRejected)
}
