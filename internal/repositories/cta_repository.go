package repositories

import "linkbio/internal/models"

// CTARepository defines the interface for CTA click data access.
type CTARepository interface {
	// RecordClick stores the CTA click unless the (user, visitor, platform)
	// triple already exists. It returns whether a new row was stored.
	RecordClick(click *models.CTAClick) (bool, error)
	GetAllByUser(userID string) ([]models.CTAClick, error)
}
