package repositories

import (
	"fmt"

	"linkbio/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCTARepository is a GORM implementation of CTARepository.
type GORMCTARepository struct {
	db *gorm.DB
}

// NewGORMCTARepository creates a new instance of GORMCTARepository.
func NewGORMCTARepository(db *gorm.DB) *GORMCTARepository {
	return &GORMCTARepository{
		db: db,
	}
}

// RecordClick inserts the CTA click. The unique (user, visitor, platform)
// index makes the insert conditional; an existing triple is a silent no-op.
func (r *GORMCTARepository) RecordClick(click *models.CTAClick) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(click)
	if res.Error != nil {
		return false, fmt.Errorf("failed to record CTA click for user %s: %w", click.UserID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GetAllByUser returns every CTA click recorded against the user's page.
func (r *GORMCTARepository) GetAllByUser(userID string) ([]models.CTAClick, error) {
	var clicks []models.CTAClick
	if err := r.db.Find(&clicks, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get CTA clicks for user %s: %w", userID, err)
	}
	return clicks, nil
}
