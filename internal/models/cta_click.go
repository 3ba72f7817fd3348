package models

import "time"

// CTAClick is one recorded "connect" action on a user's public page. The
// composite unique index enforces at most one row per (user, visitor,
// platform) triple.
type CTAClick struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_cta_user_visitor_platform"`
	VisitorID string    `json:"visitor_id" gorm:"type:varchar(255);uniqueIndex:idx_cta_user_visitor_platform"`
	Date      time.Time `json:"date"`
	Platform  string    `json:"platform" gorm:"type:varchar(20);uniqueIndex:idx_cta_user_visitor_platform"`
}
