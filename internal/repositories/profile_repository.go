package repositories

import "linkbio/internal/models"

// ProfileRepository defines the interface for profile data access.
type ProfileRepository interface {
	// GetOrCreate returns the user's profile, creating one with default
	// appearance values if none exists yet.
	GetOrCreate(userID string) (*models.Profile, error)
	GetByUser(userID string) (*models.Profile, error)
	Update(profile *models.Profile) error
}

// UsernameRepository defines the interface for username binding data access.
type UsernameRepository interface {
	Create(username *models.Username) error
	GetByName(name string) (*models.Username, error)
	GetByUser(userID string) (*models.Username, error)
	Update(username *models.Username) error
}
