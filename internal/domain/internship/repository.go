package internship

import "context"

// Repository defines the interface for listing persistence.
type Repository interface {
	Create(ctx context.Context, listing *Internship) error
	Update(ctx context.Context, listing *Internship) error
	FindByID(ctx context.Context, id string) (*Internship, error)
	List(ctx context.Context, filter *Filter) ([]*Internship, error)
	ListByPoster(ctx context.Context, posterID string) ([]*Internship, error)
	Delete(ctx context.Context, id string) error
}
