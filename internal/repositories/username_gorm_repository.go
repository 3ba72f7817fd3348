package repositories

import (
	"fmt"

	"linkbio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUsernameRepository is a GORM implementation of UsernameRepository.
type GORMUsernameRepository struct {
	db *gorm.DB
}

// NewGORMUsernameRepository creates a new instance of GORMUsernameRepository.
func NewGORMUsernameRepository(db *gorm.DB) *GORMUsernameRepository {
	return &GORMUsernameRepository{
		db: db,
	}
}

// Create creates a new username binding.
func (r *GORMUsernameRepository) Create(username *models.Username) error {
	if username.ID == "" {
		username.ID = uuid.New().String()
	}
	if err := r.db.Create(username).Error; err != nil {
		return fmt.Errorf("failed to create username: %w", err)
	}
	return nil
}

// GetByName retrieves a username binding by the public handle.
func (r *GORMUsernameRepository) GetByName(name string) (*models.Username, error) {
	var username models.Username
	if err := r.db.First(&username, "username = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("username %s not found", name)
		}
		return nil, fmt.Errorf("failed to get username %s: %w", name, err)
	}
	return &username, nil
}

// GetByUser retrieves the username binding owned by the user.
func (r *GORMUsernameRepository) GetByUser(userID string) (*models.Username, error) {
	var username models.Username
	if err := r.db.First(&username, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("username for user %s not found", userID)
		}
		return nil, fmt.Errorf("failed to get username for user %s: %w", userID, err)
	}
	return &username, nil
}

// Update saves changes to an existing username binding.
func (r *GORMUsernameRepository) Update(username *models.Username) error {
	if err := r.db.Save(username).Error; err != nil {
		return fmt.Errorf("failed to update username for user %s: %w", username.UserID, err)
	}
	return nil
}
