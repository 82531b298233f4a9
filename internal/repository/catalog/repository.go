package catalog

import (
	"context"

	"retify/internal/domain"
)

// Scope selects which collections a search covers.
const (
	ScopeAll         = "all"
	ScopeProperties  = "properties"
	ScopeElectronics = "electronics"
	ScopeVehicles    = "vehicles"
)

// Repository serves read-only catalog listings. Implementations are seeded
// once at construction and never mutated afterwards.
type Repository interface {
	List(ctx context.Context, collection domain.Collection, category string) ([]domain.Listing, error)
	Get(ctx context.Context, collection domain.Collection, id int) (*domain.Listing, error)
	Search(ctx context.Context, query, scope string) (*domain.SearchResults, error)
}
