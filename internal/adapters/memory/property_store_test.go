package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

func seed(t *testing.T, s *PropertyStore, p domain.Property) string {
	t.Helper()
	if err := s.Create(context.Background(), &p); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return p.ID
}

func TestCreateAssignsIDAndFindByIDReturnsCopy(t *testing.T) {
	s := NewPropertyStore()
	id := seed(t, s, domain.Property{PropertyFields: domain.PropertyFields{Title: "Flat"}})
	if id == "" {
		t.Fatalf("expected an id")
	}

	got, err := s.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	got.Title = "changed"

	again, _ := s.FindByID(context.Background(), id)
	if again.Title != "Flat" {
		t.Fatalf("store must not hand out shared records, got %q", again.Title)
	}
}

func TestUnknownIDsReturnNotFound(t *testing.T) {
	s := NewPropertyStore()
	ctx := context.Background()

	if _, err := s.FindByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("find: expected ErrNotFound, got %v", err)
	}
	if err := s.UpdateByID(ctx, "missing", &domain.Property{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestUpdateKeepsIDAndCreatedAt(t *testing.T) {
	s := NewPropertyStore()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	id := seed(t, s, domain.Property{CreatedAt: created})

	if err := s.UpdateByID(context.Background(), id, &domain.Property{ID: "other", Status: domain.StatusApproved}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ := s.FindByID(context.Background(), id)
	if got.ID != id || !got.CreatedAt.Equal(created) || got.Status != domain.StatusApproved {
		t.Fatalf("unexpected record after update: %+v", got)
	}
}

func TestFindManyFilters(t *testing.T) {
	s := NewPropertyStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mk := func(title, district, agent string, pt domain.PropertyType, status domain.Status, price float64, offset int) domain.Property {
		return domain.Property{
			PropertyFields: domain.PropertyFields{Title: title, District: district, PropertyType: pt, Price: price},
			Status:         status,
			RequestType:    domain.RequestAdd,
			PostedByAgent:  agent,
			CreatedAt:      base.Add(time.Duration(offset) * time.Hour),
		}
	}
	seed(t, s, mk("a", "Galle Fort", "ag-1", domain.PropertyTypeSelling, domain.StatusApproved, 100, 0))
	seed(t, s, mk("b", "galle", "ag-2", domain.PropertyTypeRent, domain.StatusApproved, 200, 1))
	seed(t, s, mk("c", "Kandy", "ag-1", domain.PropertyTypeRent, domain.StatusPending, 300, 2))

	lo, hi := 150.0, 300.0
	cases := []struct {
		name   string
		filter domain.PropertyFilter
		want   []string
	}{
		{"all oldest first", domain.PropertyFilter{}, []string{"a", "b", "c"}},
		{"newest first", domain.PropertyFilter{NewestFirst: true}, []string{"c", "b", "a"}},
		{"status", domain.PropertyFilter{Status: domain.StatusApproved}, []string{"a", "b"}},
		{"district substring ignores case", domain.PropertyFilter{DistrictContains: "GALLE"}, []string{"a", "b"}},
		{"district equals", domain.PropertyFilter{DistrictEquals: "Galle"}, []string{"b"}},
		{"agent", domain.PropertyFilter{PostedByAgent: "ag-1"}, []string{"a", "c"}},
		{"type", domain.PropertyFilter{PropertyType: domain.PropertyTypeRent}, []string{"b", "c"}},
		{"price range", domain.PropertyFilter{MinPrice: &lo, MaxPrice: &hi}, []string{"b", "c"}},
	}

	for _, tc := range cases {
		got, err := s.FindMany(context.Background(), tc.filter)
		if err != nil {
			t.Fatalf("%s: find failed: %v", tc.name, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %v, got %d records", tc.name, tc.want, len(got))
		}
		for i, p := range got {
			if p.Title != tc.want[i] {
				t.Fatalf("%s: position %d expected %q, got %q", tc.name, i, tc.want[i], p.Title)
			}
		}
	}
}
