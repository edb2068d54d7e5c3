package usecase

import (
	"context"
	"strings"

	"github.com/arbitragevault/backend/internal/domain"
)

// SavedSearchService manages persisted snapshots of normalized product
// lists. Saving is deliberately dumb: the list arriving from the caller is
// already adapted, so this layer only validates ownership and hands off to
// the repository.
type SavedSearchService struct {
	repo domain.SavedSearchRepository
}

// NewSavedSearchService creates a new saved-search service
func NewSavedSearchService(repo domain.SavedSearchRepository) *SavedSearchService {
	return &SavedSearchService{repo: repo}
}

// Save persists a named snapshot of a product list for an owner.
func (s *SavedSearchService) Save(ctx context.Context, ownerUID, name string, source domain.Source, products []domain.DisplayableProduct) (*domain.SavedSearch, error) {
	if ownerUID == "" || strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidRequest
	}

	search := &domain.SavedSearch{
		OwnerUID: ownerUID,
		Name:     strings.TrimSpace(name),
		Source:   source,
		Products: products,
	}
	if err := s.repo.Create(ctx, search); err != nil {
		return nil, err
	}
	return search, nil
}

// Get fetches one saved search, enforcing ownership. A search owned by
// someone else reads as not-found rather than forbidden, so ids cannot be
// probed.
func (s *SavedSearchService) Get(ctx context.Context, id, ownerUID string) (*domain.SavedSearch, error) {
	if id == "" || ownerUID == "" {
		return nil, domain.ErrInvalidRequest
	}

	search, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if search.OwnerUID != ownerUID {
		return nil, domain.ErrNotFound
	}
	return search, nil
}

// List returns an owner's saved searches, newest first.
func (s *SavedSearchService) List(ctx context.Context, ownerUID string, limit, offset int) ([]domain.SavedSearch, int, error) {
	if ownerUID == "" {
		return nil, 0, domain.ErrInvalidRequest
	}
	return s.repo.ListByOwner(ctx, ownerUID, limit, offset)
}

// Delete removes an owner's saved search.
func (s *SavedSearchService) Delete(ctx context.Context, id, ownerUID string) error {
	if id == "" || ownerUID == "" {
		return domain.ErrInvalidRequest
	}

	deleted, err := s.repo.Delete(ctx, id, ownerUID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
