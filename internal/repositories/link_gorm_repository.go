package repositories

import (
	"fmt"

	"linkbio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMLinkRepository is a GORM implementation of LinkRepository.
type GORMLinkRepository struct {
	db *gorm.DB
}

// NewGORMLinkRepository creates a new instance of GORMLinkRepository.
func NewGORMLinkRepository(db *gorm.DB) *GORMLinkRepository {
	return &GORMLinkRepository{
		db: db,
	}
}

// GetAllByUser returns all links owned by the user, click ledgers included.
func (r *GORMLinkRepository) GetAllByUser(userID string) ([]models.Link, error) {
	var links []models.Link
	if err := r.db.Preload("ClickHistory").Find(&links, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get links for user %s: %w", userID, err)
	}
	return links, nil
}

// GetByID returns a single link with its click ledger.
func (r *GORMLinkRepository) GetByID(id string) (*models.Link, error) {
	var link models.Link
	if err := r.db.Preload("ClickHistory").First(&link, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("link with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get link by ID %s: %w", id, err)
	}
	return &link, nil
}

// Create creates a new link in the database.
func (r *GORMLinkRepository) Create(link *models.Link) error {
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	if err := r.db.Create(link).Error; err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

// Update saves changes to an existing link.
func (r *GORMLinkRepository) Update(link *models.Link) error {
	if err := r.db.Save(link).Error; err != nil {
		return fmt.Errorf("failed to update link %s: %w", link.ID, err)
	}
	return nil
}

// Delete removes a link by its ID.
func (r *GORMLinkRepository) Delete(id string) error {
	result := r.db.Delete(&models.Link{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete link %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("link with ID %s not found for deletion", id)
	}
	return nil
}

// RecordClick performs the conditional append to the click ledger. The
// unique (link, visitor, platform) index turns the dedup check into a
// single conditional insert, so concurrent duplicate clicks cannot both
// pass; the counter increment happens in the same transaction as the
// accepted insert.
func (r *GORMLinkRepository) RecordClick(linkID string, event models.ClickEvent) (*models.Link, bool, error) {
	var link models.Link
	if err := r.db.Preload("ClickHistory").First(&link, "id = ?", linkID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("link with ID %s not found", linkID)
		}
		return nil, false, fmt.Errorf("failed to get link by ID %s: %w", linkID, err)
	}

	event.LinkID = linkID
	recorded := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&event)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Same (visitor, platform) pair already recorded; no-op.
			return nil
		}
		recorded = true
		return tx.Model(&models.Link{}).Where("id = ?", linkID).
			UpdateColumn("clicks", gorm.Expr("clicks + ?", 1)).Error
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to record click for link %s: %w", linkID, err)
	}

	if recorded {
		link.Clicks++
		link.ClickHistory = append(link.ClickHistory, event)
	}
	return &link, recorded, nil
}
