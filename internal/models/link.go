package models

import (
	"time"

	"gorm.io/gorm"
)

// Link kinds. A "shop" link is rendered in the shop section of the owner's
// page but shares all click semantics with a regular link.
const (
	LinkTypeLink = "link"
	LinkTypeShop = "shop"
)

// Link represents a single outbound URL entry on a user's page.
type Link struct {
	ID           string       `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID       string       `json:"user_id" gorm:"index;type:varchar(36)"`
	Type         string       `json:"type" validate:"required,oneof=link shop"`
	Title        string       `json:"title" validate:"required,max=200"`
	URL          string       `json:"url" validate:"required,url"`
	IsActive     bool         `json:"is_active" gorm:"default:false"`
	Clicks       int          `json:"clicks" gorm:"default:0"`
	ClickHistory []ClickEvent `json:"click_history,omitempty" gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE"`
	gorm.Model
}

// ClickEvent is one accepted, deduplicated visit to a Link. The composite
// unique index backs the insert-if-absent dedup on (visitor, platform).
type ClickEvent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	LinkID    string    `json:"link_id" gorm:"type:varchar(36);uniqueIndex:idx_click_link_visitor_platform"`
	VisitorID string    `json:"visitor_id" gorm:"type:varchar(255);uniqueIndex:idx_click_link_visitor_platform"`
	Date      time.Time `json:"date"`
	Platform  string    `json:"platform" gorm:"type:varchar(20);uniqueIndex:idx_click_link_visitor_platform"`
	App       string    `json:"app"`
}
