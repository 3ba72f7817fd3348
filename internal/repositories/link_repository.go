package repositories

import "linkbio/internal/models"

// LinkRepository defines the interface for link data access.
type LinkRepository interface {
	GetAllByUser(userID string) ([]models.Link, error)
	GetByID(id string) (*models.Link, error)
	Create(link *models.Link) error
	Update(link *models.Link) error
	Delete(id string) error
	// RecordClick appends the event to the link's ledger and increments the
	// click counter, unless an event with the same (visitor, platform) pair
	// already exists for the link. It returns the link and whether a new
	// event was stored.
	RecordClick(linkID string, event models.ClickEvent) (*models.Link, bool, error)
}
