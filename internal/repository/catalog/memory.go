package catalog

import (
	"context"
	"strings"

	"retify/internal/domain"
)

type memoryRepo struct {
	properties  []domain.Listing
	electronics []domain.Listing
	vehicles    []domain.Listing
}

// NewMemory builds an in-memory repository over the given collections. The
// slices are copied so later mutation by the caller cannot leak in.
func NewMemory(properties, electronics, vehicles []domain.Listing) Repository {
	return &memoryRepo{
		properties:  append([]domain.Listing(nil), properties...),
		electronics: append([]domain.Listing(nil), electronics...),
		vehicles:    append([]domain.Listing(nil), vehicles...),
	}
}

func (r *memoryRepo) List(_ context.Context, collection domain.Collection, category string) ([]domain.Listing, error) {
	items, err := r.collection(collection)
	if err != nil {
		return nil, err
	}
	if category == "" || strings.EqualFold(category, "all") {
		return append([]domain.Listing(nil), items...), nil
	}
	out := make([]domain.Listing, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.Kind(), category) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memoryRepo) Get(_ context.Context, collection domain.Collection, id int) (*domain.Listing, error) {
	items, err := r.collection(collection)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Search(_ context.Context, query, scope string) (*domain.SearchResults, error) {
	q := strings.ToLower(query)
	results := &domain.SearchResults{
		Properties:  []domain.Listing{},
		Electronics: []domain.Listing{},
		Vehicles:    []domain.Listing{},
	}
	if scope == "" {
		scope = ScopeAll
	}
	if scope == ScopeAll || scope == ScopeProperties {
		results.Properties = match(r.properties, q, func(l domain.Listing) string { return l.Location })
	}
	if scope == ScopeAll || scope == ScopeElectronics {
		results.Electronics = match(r.electronics, q, func(l domain.Listing) string { return l.Brand })
	}
	if scope == ScopeAll || scope == ScopeVehicles {
		results.Vehicles = match(r.vehicles, q, func(l domain.Listing) string { return l.Brand })
	}
	return results, nil
}

// match filters by case-insensitive substring on the title plus one
// secondary field per collection (location or brand).
func match(items []domain.Listing, query string, secondary func(domain.Listing) string) []domain.Listing {
	out := []domain.Listing{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), query) ||
			strings.Contains(strings.ToLower(secondary(item)), query) {
			out = append(out, item)
		}
	}
	return out
}

func (r *memoryRepo) collection(collection domain.Collection) ([]domain.Listing, error) {
	switch collection {
	case domain.CollectionProperty:
		return r.properties, nil
	case domain.CollectionElectronic:
		return r.electronics, nil
	case domain.CollectionVehicle:
		return r.vehicles, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}
