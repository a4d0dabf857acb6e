// Package internship defines the listing domain entities and services.
package internship

import (
	"time"

	"internhub/board-api/internal/domain/user"
)

// Internship represents a posted listing. A listing is owned by the employer
// whose id is PostedBy; only the owner may mutate or delete it.
type Internship struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Stipend      string    `json:"stipend,omitempty"`
	Duration     string    `json:"duration"`
	PostedBy     string    `json:"posted_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Poster is loaded conditionally for enriched reads.
	Poster *user.PublicProfile `json:"poster,omitempty"`
}

// Summary is the public projection of a listing embedded in application
// listings.
type Summary struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Company   string              `json:"company"`
	Location  string              `json:"location"`
	CreatedAt time.Time           `json:"created_at"`
	Poster    *user.PublicProfile `json:"poster,omitempty"`
}

// Summarize returns the public summary of the listing.
func (i *Internship) Summarize() Summary {
	return Summary{
		ID:        i.ID,
		Title:     i.Title,
		Company:   i.Company,
		Location:  i.Location,
		CreatedAt: i.CreatedAt,
		Poster:    i.Poster,
	}
}

// Sort orders for listing queries.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// Filter contains criteria for browsing listings.
type Filter struct {
	Location string
	Search   string
	Sort     string

	Limit  int
	Offset int
}

// NewFilter creates a filter with default ordering and pagination.
func NewFilter() *Filter {
	return &Filter{
		Sort:  SortNewest,
		Limit: 50,
	}
}

// WithLocation sets the location substring filter.
func (f *Filter) WithLocation(location string) *Filter {
	f.Location = location
	return f
}

// WithSearch sets the free-text search filter.
func (f *Filter) WithSearch(search string) *Filter {
	f.Search = search
	return f
}

// WithSort sets the sort order, keeping the default for unknown values.
func (f *Filter) WithSort(sort string) *Filter {
	if sort == SortNewest || sort == SortOldest {
		f.Sort = sort
	}
	return f
}

// CreateParams contains the caller supplied fields for a new listing. Company
// is stamped from the employer profile, never taken from the request.
type CreateParams struct {
	Title        string
	Location     string
	Description  string
	Requirements string
	Stipend      string
	Duration     string
}

// UpdateParams carries a partial update. Nil fields keep the stored value;
// this is how "absent" stays distinguishable from an explicit empty string.
type UpdateParams struct {
	Title        *string
	Location     *string
	Description  *string
	Requirements *string
	Stipend      *string
	Duration     *string
}
