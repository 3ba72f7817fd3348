package services_test

import (
	"testing"

	"linkbio/internal/models"
	"linkbio/internal/repositories"
	"linkbio/internal/services"

	"github.com/stretchr/testify/assert"
)

// fakeBlobStore returns a deterministic URL and remembers the last upload.
type fakeBlobStore struct {
	lastName string
	lastMime string
}

func (s *fakeBlobStore) Put(name, contentType string, data []byte) (string, error) {
	s.lastName = name
	s.lastMime = contentType
	return "/uploads/" + name + ".png", nil
}

func newProfileFixture() (*services.ProfileService, *repositories.MockUserRepository, *repositories.MockLinkRepository, *fakeBlobStore) {
	profileRepo := repositories.NewMockProfileRepository()
	usernameRepo := repositories.NewMockUsernameRepository()
	userRepo := repositories.NewMockUserRepository()
	linkRepo := repositories.NewMockLinkRepository()
	blobs := &fakeBlobStore{}
	service := services.NewProfileService(profileRepo, usernameRepo, userRepo, linkRepo, blobs)
	return service, userRepo, linkRepo, blobs
}

func TestProfileService_GetProfile_LazyCreateDefaults(t *testing.T) {
	service, _, _, _ := newProfileFixture()

	view, err := service.GetProfile("user-1")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", view.UserID)
	assert.Equal(t, "", view.Username) // Onboarding not done yet

	profile := view.Profile
	assert.Equal(t, "", profile.Image)
	assert.Equal(t, "Bio", profile.Bio)
	assert.Equal(t, "#000000", profile.BackgroundColor)
	assert.Equal(t, "air-snow", profile.Theme)
	assert.Equal(t, "fill", profile.ButtonStyle)
	assert.Equal(t, "#000000", profile.ButtonColor)
	assert.Equal(t, "#FFFFFF", profile.ButtonFontColor)
	assert.Equal(t, "list", profile.Layout)
	assert.Equal(t, "DM Sans", profile.Font)
}

func TestProfileService_SaveUsername(t *testing.T) {
	service, _, _, _ := newProfileFixture()

	assert.NoError(t, service.SaveUsername("user-1", "alice", "Music"))

	// The handle is globally unique.
	err := service.SaveUsername("user-2", "alice", "Sports")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	view, err := service.GetProfile("user-1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", view.Username)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	service, _, _, blobs := newProfileFixture()

	view, err := service.UpdateProfile("user-1", services.ProfileUpdate{
		Bio:             "Hello there",
		BackgroundColor: "#112233",
		Theme:           "mineral-blue",
		ButtonStyle:     "outline",
		ButtonColor:     "#445566",
		ButtonFontColor: "#000000",
		Layout:          "grid",
		Font:            "Inter",
		Image:           []byte{0x89, 0x50, 0x4e, 0x47},
		ImageMime:       "image/png",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Hello there", view.Profile.Bio)
	assert.Equal(t, "mineral-blue", view.Profile.Theme)
	assert.Equal(t, "/uploads/user-1.png", view.Profile.Image)
	assert.Equal(t, "user-1", blobs.lastName)
	assert.Equal(t, "image/png", blobs.lastMime)

	// Removing the image clears the stored URL.
	view, err = service.UpdateProfile("user-1", services.ProfileUpdate{
		Bio:         "Hello there",
		RemoveImage: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "", view.Profile.Image)
}

func TestProfileService_GetPublicProfile(t *testing.T) {
	service, userRepo, linkRepo, _ := newProfileFixture()

	// Unknown users are not found.
	_, err := service.GetPublicProfile("ghost")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	user := &models.User{ID: "user-1", Firstname: "A", Lastname: "B", Email: "a@example.com", Password: "x"}
	assert.NoError(t, userRepo.Create(user))
	assert.NoError(t, linkRepo.Create(&models.Link{UserID: "user-1", Type: models.LinkTypeLink, Title: "Blog", URL: "https://example.com"}))
	assert.NoError(t, service.SaveUsername("user-1", "alice", "Music"))

	// A user whose profile was never created still renders with defaults.
	public, err := service.GetPublicProfile("user-1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", public.Username)
	assert.Equal(t, "Bio", public.Bio)
	assert.Equal(t, "air-snow", public.Settings.Theme)
	assert.Len(t, public.Links, 1)
}
