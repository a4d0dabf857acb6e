package internship_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub/board-api/internal/domain"
	"internhub/board-api/internal/domain/internship"
	"internhub/board-api/internal/domain/user"
	internshiprepo "internhub/board-api/internal/infrastructure/repository/internship"
	userrepo "internhub/board-api/internal/infrastructure/repository/user"
	"internhub/board-api/internal/utils/platformerrors"
)

var (
	owner   = domain.Principal{UserID: "emp-1", Role: domain.RoleEmployer}
	rival   = domain.Principal{UserID: "emp-2", Role: domain.RoleEmployer}
	student = domain.Principal{UserID: "app-1", Role: domain.RoleApplicant}
)

func newFixture(t *testing.T) (internship.Service, *internshiprepo.InMemoryRepository) {
	t.Helper()
	listings := internshiprepo.NewInMemoryRepository()
	users := userrepo.NewInMemoryRepository()
	users.Put(user.User{ID: owner.UserID, Name: "Ada", Email: "ada@acme.test", Role: domain.RoleEmployer, CompanyName: "Acme"})
	users.Put(user.User{ID: rival.UserID, Name: "Bob", Email: "bob@rival.test", Role: domain.RoleEmployer, CompanyName: "Rival"})
	service := internship.NewService(listings, users, zerolog.Nop())
	return service, listings
}

func TestCreate_StampsCompanyFromProfile(t *testing.T) {
	service, _ := newFixture(t)

	listing, err := service.Create(context.Background(), owner, internship.CreateParams{
		Title:       "Backend Intern",
		Location:    "Remote",
		Description: "Build APIs",
		Duration:    "3 months",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "Acme", listing.Company)
	assert.Equal(t, owner.UserID, listing.PostedBy)
}

func TestCreate_ApplicantForbidden(t *testing.T) {
	service, _ := newFixture(t)

	_, err := service.Create(context.Background(), student, internship.CreateParams{Title: "x"})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeForbidden))
}

func TestUpdate_PartialKeepsAbsentFields(t *testing.T) {
	service, _ := newFixture(t)

	listing, err := service.Create(context.Background(), owner, internship.CreateParams{
		Title:       "Backend Intern",
		Location:    "Remote",
		Description: "Build APIs",
		Stipend:     "1000",
		Duration:    "3 months",
	})
	require.NoError(t, err)

	title := "Senior Backend Intern"
	empty := ""
	updated, err := service.Update(context.Background(), owner, listing.ID, internship.UpdateParams{
		Title:   &title,
		Stipend: &empty, // explicit empty clears, unlike an absent field
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Intern", updated.Title)
	assert.Equal(t, "", updated.Stipend)
	assert.Equal(t, "Remote", updated.Location)
	assert.Equal(t, "Build APIs", updated.Description)
	assert.Equal(t, "3 months", updated.Duration)
}

func TestUpdate_EmptyRequiredFieldRejected(t *testing.T) {
	service, _ := newFixture(t)

	listing, err := service.Create(context.Background(), owner, internship.CreateParams{
		Title:    "Backend Intern",
		Location: "Remote",
		Duration: "3 months",
	})
	require.NoError(t, err)

	empty := ""
	for _, params := range []internship.UpdateParams{
		{Title: &empty},
		{Location: &empty},
		{Description: &empty},
		{Duration: &empty},
	} {
		_, err = service.Update(context.Background(), owner, listing.ID, params)
		require.Error(t, err)
		assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	}

	// Whitespace does not smuggle an empty value past the check.
	blank := "   "
	_, err = service.Update(context.Background(), owner, listing.ID, internship.UpdateParams{Title: &blank})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))

	// The listing is untouched.
	stored, err := service.Get(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Intern", stored.Title)
	assert.Equal(t, "Remote", stored.Location)
}

func TestUpdate_NonOwnerForbidden(t *testing.T) {
	service, _ := newFixture(t)

	listing, err := service.Create(context.Background(), owner, internship.CreateParams{Title: "Backend Intern"})
	require.NoError(t, err)

	title := "Hijacked"
	_, err = service.Update(context.Background(), rival, listing.ID, internship.UpdateParams{Title: &title})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeForbidden))
}

func TestUpdate_MissingListingBeatsOwnership(t *testing.T) {
	service, _ := newFixture(t)

	title := "x"
	_, err := service.Update(context.Background(), rival, "ghost", internship.UpdateParams{Title: &title})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestDelete_OwnerOnly(t *testing.T) {
	service, _ := newFixture(t)

	listing, err := service.Create(context.Background(), owner, internship.CreateParams{Title: "Backend Intern"})
	require.NoError(t, err)

	err = service.Delete(context.Background(), rival, listing.ID)
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeForbidden))

	require.NoError(t, service.Delete(context.Background(), owner, listing.ID))

	_, err = service.Get(context.Background(), listing.ID)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestListMine_OnlyOwnListingsNewestFirst(t *testing.T) {
	service, listings := newFixture(t)

	require.NoError(t, listings.Create(context.Background(), &internship.Internship{
		ID: "old", Title: "Old", PostedBy: owner.UserID,
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}))
	require.NoError(t, listings.Create(context.Background(), &internship.Internship{
		ID: "new", Title: "New", PostedBy: owner.UserID,
		CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, listings.Create(context.Background(), &internship.Internship{
		ID: "other", Title: "Other", PostedBy: rival.UserID,
		CreatedAt: time.Now().UTC(),
	}))

	got, err := service.ListMine(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
}

func TestList_Filters(t *testing.T) {
	service, listings := newFixture(t)

	require.NoError(t, listings.Create(context.Background(), &internship.Internship{
		ID: "a", Title: "Backend Intern", Company: "Acme", Location: "Berlin",
		Description: "Go services", PostedBy: owner.UserID, CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, listings.Create(context.Background(), &internship.Internship{
		ID: "b", Title: "Design Intern", Company: "Rival", Location: "Remote",
		Description: "Figma all day", PostedBy: rival.UserID, CreatedAt: time.Now().UTC(),
	}))

	got, err := service.List(context.Background(), internship.NewFilter().WithLocation("berlin"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	got, err = service.List(context.Background(), internship.NewFilter().WithSearch("figma"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	// nil filter falls back to defaults and returns everything
	got, err = service.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
