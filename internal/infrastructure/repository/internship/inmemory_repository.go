package internship

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	domain "internhub/board-api/internal/domain/internship"
	"internhub/board-api/internal/utils/platformerrors"
)

// InMemoryRepository is a thread-safe listing store useful for demos/tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	listings map[string]domain.Internship
}

// NewInMemoryRepository creates an empty in-memory listing store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{listings: map[string]domain.Internship{}}
}

// Create inserts a new listing, assigning an id when absent.
func (r *InMemoryRepository) Create(ctx context.Context, listing *domain.Internship) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	r.listings[listing.ID] = *listing
	return nil
}

// Update replaces a stored listing.
func (r *InMemoryRepository) Update(ctx context.Context, listing *domain.Internship) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[listing.ID]; !ok {
		return r.notFound(ctx)
	}
	r.listings[listing.ID] = *listing
	return nil
}

// FindByID returns a listing by id.
func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*domain.Internship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if listing, ok := r.listings[id]; ok {
		copied := listing
		return &copied, nil
	}
	return nil, r.notFound(ctx)
}

// List browses stored listings with the same filter semantics as the
// postgres implementation.
func (r *InMemoryRepository) List(ctx context.Context, filter *domain.Filter) ([]*domain.Internship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Internship
	for _, listing := range r.listings {
		if filter.Location != "" && !containsFold(listing.Location, filter.Location) {
			continue
		}
		if filter.Search != "" && !matchesSearch(listing, filter.Search) {
			continue
		}
		copied := listing
		out = append(out, &copied)
	}

	sortListings(out, filter.Sort)
	return paginate(out, filter.Limit, filter.Offset), nil
}

// ListByPoster returns an employer's listings, newest first.
func (r *InMemoryRepository) ListByPoster(ctx context.Context, posterID string) ([]*domain.Internship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Internship
	for _, listing := range r.listings {
		if listing.PostedBy == posterID {
			copied := listing
			out = append(out, &copied)
		}
	}
	sortListings(out, domain.SortNewest)
	return out, nil
}

// Delete removes a listing.
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[id]; !ok {
		return r.notFound(ctx)
	}
	delete(r.listings, id)
	return nil
}

func (r *InMemoryRepository) notFound(ctx context.Context) error {
	return platformerrors.NewError(
		ctx,
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound,
		"internship not found",
		nil,
		"internship-find-404",
	)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchesSearch(listing domain.Internship, search string) bool {
	return containsFold(listing.Title, search) ||
		containsFold(listing.Company, search) ||
		containsFold(listing.Location, search) ||
		containsFold(listing.Description, search)
}

func sortListings(listings []*domain.Internship, order string) {
	sort.SliceStable(listings, func(i, j int) bool {
		if order == domain.SortOldest {
			return listings[i].CreatedAt.Before(listings[j].CreatedAt)
		}
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
}

func paginate(listings []*domain.Internship, limit, offset int) []*domain.Internship {
	if offset > 0 {
		if offset >= len(listings) {
			return nil
		}
		listings = listings[offset:]
	}
	if limit > 0 && limit < len(listings) {
		listings = listings[:limit]
	}
	return listings
}
