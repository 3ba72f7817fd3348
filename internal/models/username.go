package models

import "gorm.io/gorm"

// Username binds a globally unique public handle and a page category to a
// user. It is claimed once during onboarding and may be changed later via
// the profile update flow.
type Username struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Category string `json:"category" validate:"required,max=100"`
	UserID   string `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	gorm.Model
}
