package repositories

import (
	"fmt"
	"sync"

	"linkbio/internal/models"

	"github.com/google/uuid"
)

// MockLinkRepository is an in-memory implementation of LinkRepository.
type MockLinkRepository struct {
	links map[string]models.Link
	mu    sync.RWMutex
}

// NewMockLinkRepository creates a new instance of MockLinkRepository.
func NewMockLinkRepository() *MockLinkRepository {
	return &MockLinkRepository{
		links: make(map[string]models.Link),
	}
}

// GetAllByUser returns all links owned by the user.
func (r *MockLinkRepository) GetAllByUser(userID string) ([]models.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	linkList := make([]models.Link, 0)
	for _, l := range r.links {
		if l.UserID == userID {
			linkList = append(linkList, l)
		}
	}
	return linkList, nil
}

// GetByID returns a link by its ID.
func (r *MockLinkRepository) GetByID(id string) (*models.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	link, ok := r.links[id]
	if !ok {
		return nil, fmt.Errorf("link with ID %s not found", id)
	}
	return &link, nil
}

// Create adds a new link.
func (r *MockLinkRepository) Create(link *models.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	r.links[link.ID] = *link
	return nil
}

// Update modifies an existing link.
func (r *MockLinkRepository) Update(link *models.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.links[link.ID]
	if !ok {
		return fmt.Errorf("link with ID %s not found for update", link.ID)
	}
	r.links[link.ID] = *link
	return nil
}

// Delete removes a link by its ID.
func (r *MockLinkRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.links[id]
	if !ok {
		return fmt.Errorf("link with ID %s not found for deletion", id)
	}
	delete(r.links, id)
	return nil
}

// RecordClick appends the event and bumps the counter unless the (visitor,
// platform) pair is already present in the link's ledger.
func (r *MockLinkRepository) RecordClick(linkID string, event models.ClickEvent) (*models.Link, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.links[linkID]
	if !ok {
		return nil, false, fmt.Errorf("link with ID %s not found", linkID)
	}

	for _, existing := range link.ClickHistory {
		if existing.VisitorID == event.VisitorID && existing.Platform == event.Platform {
			return &link, false, nil
		}
	}

	event.LinkID = linkID
	link.ClickHistory = append(link.ClickHistory, event)
	link.Clicks++
	r.links[linkID] = link
	return &link, true, nil
}
