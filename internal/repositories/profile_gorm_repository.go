package repositories

import (
	"fmt"

	"linkbio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProfileRepository is a GORM implementation of ProfileRepository.
type GORMProfileRepository struct {
	db *gorm.DB
}

// NewGORMProfileRepository creates a new instance of GORMProfileRepository.
func NewGORMProfileRepository(db *gorm.DB) *GORMProfileRepository {
	return &GORMProfileRepository{
		db: db,
	}
}

// GetOrCreate returns the user's profile, lazily creating one with default
// appearance values on first access.
func (r *GORMProfileRepository) GetOrCreate(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err == nil {
		return &profile, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to get profile for user %s: %w", userID, err)
	}

	fresh := models.DefaultProfile(userID)
	fresh.ID = uuid.New().String()
	if err := r.db.Create(fresh).Error; err != nil {
		return nil, fmt.Errorf("failed to create default profile for user %s: %w", userID, err)
	}
	return fresh, nil
}

// GetByUser retrieves a profile without creating one.
func (r *GORMProfileRepository) GetByUser(userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("profile for user %s not found", userID)
		}
		return nil, fmt.Errorf("failed to get profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// Update saves changes to an existing profile.
func (r *GORMProfileRepository) Update(profile *models.Profile) error {
	if err := r.db.Save(profile).Error; err != nil {
		return fmt.Errorf("failed to update profile for user %s: %w", profile.UserID, err)
	}
	return nil
}
