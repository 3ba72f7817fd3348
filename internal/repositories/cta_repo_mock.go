package repositories

import (
	"fmt"
	"sync"

	"linkbio/internal/models"
)

// MockCTARepository is an in-memory implementation of CTARepository.
type MockCTARepository struct {
	clicks map[string]models.CTAClick // keyed by (user, visitor, platform)
	nextID uint
	mu     sync.RWMutex
}

// NewMockCTARepository creates a new instance of MockCTARepository.
func NewMockCTARepository() *MockCTARepository {
	return &MockCTARepository{
		clicks: make(map[string]models.CTAClick),
	}
}

func ctaKey(click *models.CTAClick) string {
	return fmt.Sprintf("%s|%s|%s", click.UserID, click.VisitorID, click.Platform)
}

// RecordClick stores the CTA click unless the triple already exists.
func (r *MockCTARepository) RecordClick(click *models.CTAClick) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ctaKey(click)
	if _, ok := r.clicks[key]; ok {
		return false, nil
	}
	r.nextID++
	click.ID = r.nextID
	r.clicks[key] = *click
	return true, nil
}

// GetAllByUser returns every CTA click recorded against the user's page.
func (r *MockCTARepository) GetAllByUser(userID string) ([]models.CTAClick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clickList := make([]models.CTAClick, 0)
	for _, c := range r.clicks {
		if c.UserID == userID {
			clickList = append(clickList, c)
		}
	}
	return clickList, nil
}
