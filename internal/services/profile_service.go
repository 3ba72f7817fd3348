package services

import (
	"fmt"

	"linkbio/internal/models"
	"linkbio/internal/repositories"
	"linkbio/pkg/blobstore"
)

// ProfileView is the owner-facing profile payload: the appearance settings
// plus the claimed username (empty until onboarding completes).
type ProfileView struct {
	Username string          `json:"username"`
	Profile  *models.Profile `json:"profile"`
	UserID   string          `json:"userId"`
}

// PageSettings is the appearance subset exposed on the public page.
type PageSettings struct {
	BackgroundColor string `json:"backgroundColor"`
	Theme           string `json:"theme"`
	ButtonStyle     string `json:"buttonStyle"`
	ButtonColor     string `json:"buttonColor"`
	ButtonFontColor string `json:"buttonFontColor"`
	Layout          string `json:"layout"`
	Font            string `json:"font"`
}

// PublicProfile is everything an anonymous visitor needs to render a
// user's page.
type PublicProfile struct {
	Username string        `json:"username"`
	Image    string        `json:"image"`
	Bio      string        `json:"bio"`
	Links    []models.Link `json:"links"`
	Settings PageSettings  `json:"settings"`
}

// ProfileUpdate carries the mutable profile fields. Image holds new image
// bytes (with ImageMime set) when the client uploaded one; RemoveImage
// clears the stored image; otherwise the existing image URL is kept.
type ProfileUpdate struct {
	Username        string
	Bio             string
	BackgroundColor string
	Theme           string
	ButtonStyle     string
	ButtonColor     string
	ButtonFontColor string
	Layout          string
	Font            string
	Image           []byte
	ImageMime       string
	RemoveImage     bool
}

// ProfileService handles profile appearance, username bindings and the
// public page view.
type ProfileService struct {
	profileRepo  repositories.ProfileRepository
	usernameRepo repositories.UsernameRepository
	userRepo     repositories.UserRepository
	linkRepo     repositories.LinkRepository
	blobs        blobstore.Store
}

// NewProfileService creates a new ProfileService.
func NewProfileService(
	profileRepo repositories.ProfileRepository,
	usernameRepo repositories.UsernameRepository,
	userRepo repositories.UserRepository,
	linkRepo repositories.LinkRepository,
	blobs blobstore.Store,
) *ProfileService {
	return &ProfileService{
		profileRepo:  profileRepo,
		usernameRepo: usernameRepo,
		userRepo:     userRepo,
		linkRepo:     linkRepo,
		blobs:        blobs,
	}
}

// GetProfile returns the owner's profile, creating it with defaults on
// first access.
func (s *ProfileService) GetProfile(userID string) (*ProfileView, error) {
	profile, err := s.profileRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	username := ""
	if binding, err := s.usernameRepo.GetByUser(userID); err == nil && binding != nil {
		username = binding.Username
	}

	return &ProfileView{
		Username: username,
		Profile:  profile,
		UserID:   userID,
	}, nil
}

// SaveUsername claims a username and category for the user during
// onboarding. Usernames are globally unique.
func (s *ProfileService) SaveUsername(userID, username, category string) error {
	if existing, err := s.usernameRepo.GetByName(username); err == nil && existing != nil {
		return fmt.Errorf("username '%s' already exists", username)
	}
	binding := &models.Username{
		Username: username,
		Category: category,
		UserID:   userID,
	}
	if err := s.usernameRepo.Create(binding); err != nil {
		return fmt.Errorf("failed to save username: %w", err)
	}
	return nil
}

// UpdateProfile applies appearance changes, stores an uploaded image in the
// blob store and optionally renames the user's username binding.
func (s *ProfileService) UpdateProfile(userID string, update ProfileUpdate) (*ProfileView, error) {
	profile, err := s.profileRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	switch {
	case len(update.Image) > 0:
		// Blob name is the user ID so re-uploads overwrite in place.
		url, err := s.blobs.Put(userID, update.ImageMime, update.Image)
		if err != nil {
			return nil, fmt.Errorf("failed to store profile image: %w", err)
		}
		profile.Image = url
	case update.RemoveImage:
		profile.Image = ""
	}

	if update.Username != "" {
		if err := s.renameUsername(userID, update.Username); err != nil {
			return nil, err
		}
	}

	profile.Bio = update.Bio
	profile.BackgroundColor = update.BackgroundColor
	profile.Theme = update.Theme
	profile.ButtonStyle = update.ButtonStyle
	profile.ButtonColor = update.ButtonColor
	profile.ButtonFontColor = update.ButtonFontColor
	profile.Layout = update.Layout
	profile.Font = update.Font

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return s.GetProfile(userID)
}

// renameUsername points the user's binding at a new handle, creating the
// binding if onboarding never completed. The old category is kept.
func (s *ProfileService) renameUsername(userID, newName string) error {
	if other, err := s.usernameRepo.GetByName(newName); err == nil && other != nil && other.UserID != userID {
		return fmt.Errorf("username '%s' already exists", newName)
	}

	binding, err := s.usernameRepo.GetByUser(userID)
	if err != nil {
		return s.usernameRepo.Create(&models.Username{
			Username: newName,
			Category: "Other",
			UserID:   userID,
		})
	}
	binding.Username = newName
	return s.usernameRepo.Update(binding)
}

// GetPublicProfile assembles the anonymous visitor view of a user's page.
// Appearance falls back to defaults when the profile was never created.
func (s *ProfileService) GetPublicProfile(userID string) (*PublicProfile, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUser(userID)
	if err != nil {
		profile = models.DefaultProfile(userID)
	}

	username := ""
	if binding, err := s.usernameRepo.GetByUser(userID); err == nil && binding != nil {
		username = binding.Username
	}

	links, err := s.linkRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}

	return &PublicProfile{
		Username: username,
		Image:    profile.Image,
		Bio:      profile.Bio,
		Links:    links,
		Settings: PageSettings{
			BackgroundColor: profile.BackgroundColor,
			Theme:           profile.Theme,
			ButtonStyle:     profile.ButtonStyle,
			ButtonColor:     profile.ButtonColor,
			ButtonFontColor: profile.ButtonFontColor,
			Layout:          profile.Layout,
			Font:            profile.Font,
		},
	}, nil
}
