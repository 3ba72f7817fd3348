package models

import "gorm.io/gorm"

// Profile holds the visual customization of a user's public page. It is
// one-to-one with User and created lazily with these defaults on first
// access.
type Profile struct {
	ID              string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Image           string `json:"image"` // Blob store URL, empty when unset
	Bio             string `json:"bio"`
	BackgroundColor string `json:"backgroundColor"`
	Theme           string `json:"theme"`
	ButtonStyle     string `json:"buttonStyle"`
	ButtonColor     string `json:"buttonColor"`
	ButtonFontColor string `json:"buttonFontColor"`
	Layout          string `json:"layout"`
	Font            string `json:"font"`
	gorm.Model
}

// DefaultProfile returns a fresh Profile for the user with the documented
// default appearance.
func DefaultProfile(userID string) *Profile {
	return &Profile{
		UserID:          userID,
		Image:           "",
		Bio:             "Bio",
		BackgroundColor: "#000000",
		Theme:           "air-snow",
		ButtonStyle:     "fill",
		ButtonColor:     "#000000",
		ButtonFontColor: "#FFFFFF",
		Layout:          "list",
		Font:            "DM Sans",
	}
}
