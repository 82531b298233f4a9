package catalog

import (
	"context"
	"fmt"

	"retify/internal/domain"
	catalogrepo "retify/internal/repository/catalog"
)

// Service exposes read-only catalog browsing and search.
type Service struct {
	repo catalogrepo.Repository
}

func New(repo catalogrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns a collection, optionally filtered by category. The filter is
// a case-insensitive equality match; "all" or empty means no filter.
func (s *Service) List(ctx context.Context, collection domain.Collection, category string) ([]domain.Listing, error) {
	return s.repo.List(ctx, collection, category)
}

// Get resolves a single listing. An unknown collection tag is an input
// error; an unknown id within a known collection is not-found.
func (s *Service) Get(ctx context.Context, tag string, id int) (*domain.Listing, error) {
	col, ok := domain.ParseCollection(tag)
	if !ok {
		return nil, fmt.Errorf("%w: unknown item type %q", domain.ErrInvalidInput, tag)
	}
	return s.repo.Get(ctx, col, id)
}

// Search matches the query against titles plus location (properties) or
// brand (electronics, vehicles), grouped per collection.
func (s *Service) Search(ctx context.Context, query, scope string) (*domain.SearchResults, error) {
	return s.repo.Search(ctx, query, scope)
}
