package repositories

import (
	"fmt"
	"sync"

	"linkbio/internal/models"

	"github.com/google/uuid"
)

// MockProfileRepository is an in-memory implementation of ProfileRepository.
type MockProfileRepository struct {
	profiles map[string]models.Profile // keyed by user ID
	mu       sync.RWMutex
}

// NewMockProfileRepository creates a new instance of MockProfileRepository.
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[string]models.Profile),
	}
}

// GetOrCreate returns the user's profile, creating a default one if absent.
func (r *MockProfileRepository) GetOrCreate(userID string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if profile, ok := r.profiles[userID]; ok {
		return &profile, nil
	}
	fresh := models.DefaultProfile(userID)
	fresh.ID = uuid.New().String()
	r.profiles[userID] = *fresh
	return fresh, nil
}

// GetByUser returns a profile without creating one.
func (r *MockProfileRepository) GetByUser(userID string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile for user %s not found", userID)
	}
	return &profile, nil
}

// Update modifies an existing profile.
func (r *MockProfileRepository) Update(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.UserID]; !ok {
		return fmt.Errorf("profile for user %s not found for update", profile.UserID)
	}
	r.profiles[profile.UserID] = *profile
	return nil
}

// MockUsernameRepository is an in-memory implementation of UsernameRepository.
type MockUsernameRepository struct {
	usernames map[string]models.Username // keyed by user ID
	mu        sync.RWMutex
}

// NewMockUsernameRepository creates a new instance of MockUsernameRepository.
func NewMockUsernameRepository() *MockUsernameRepository {
	return &MockUsernameRepository{
		usernames: make(map[string]models.Username),
	}
}

// Create adds a new username binding.
func (r *MockUsernameRepository) Create(username *models.Username) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if username.ID == "" {
		username.ID = uuid.New().String()
	}
	for _, u := range r.usernames {
		if u.Username == username.Username {
			return fmt.Errorf("username %s already exists", username.Username)
		}
	}
	r.usernames[username.UserID] = *username
	return nil
}

// GetByName returns a username binding by the public handle.
func (r *MockUsernameRepository) GetByName(name string) (*models.Username, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.usernames {
		if u.Username == name {
			username := u
			return &username, nil
		}
	}
	return nil, fmt.Errorf("username %s not found", name)
}

// GetByUser returns the username binding owned by the user.
func (r *MockUsernameRepository) GetByUser(userID string) (*models.Username, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	username, ok := r.usernames[userID]
	if !ok {
		return nil, fmt.Errorf("username for user %s not found", userID)
	}
	return &username, nil
}

// Update modifies an existing username binding.
func (r *MockUsernameRepository) Update(username *models.Username) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.usernames[username.UserID]; !ok {
		return fmt.Errorf("username for user %s not found for update", username.UserID)
	}
	r.usernames[username.UserID] = *username
	return nil
}
