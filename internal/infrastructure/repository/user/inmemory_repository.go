package user

import (
	"context"
	"sync"

	domainuser "internhub/board-api/internal/domain/user"
	"internhub/board-api/internal/utils/platformerrors"
)

// InMemoryRepository is a thread-safe user store useful for demos/tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]domainuser.User
}

// NewInMemoryRepository creates an empty in-memory user store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: map[string]domainuser.User{}}
}

// Put stores or replaces a user.
func (r *InMemoryRepository) Put(u domainuser.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

// FindByID returns the user with the given id.
func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*domainuser.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, platformerrors.NewError(
		ctx,
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound,
		"user not found",
		nil,
		"user-find-404",
	)
}

// FindBySubject returns the user bound to the given token subject.
func (r *InMemoryRepository) FindBySubject(ctx context.Context, subject string) (*domainuser.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Subject == subject {
			copied := u
			return &copied, nil
		}
	}
	return nil, platformerrors.NewError(
		ctx,
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound,
		"user not found",
		nil,
		"user-find-404",
	)
}
