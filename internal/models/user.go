package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultProfilePicture is used when no template picture is available
const DefaultProfilePicture = "profile_pictures/default.png"

// User represents a SciBind account, keyed by its Firebase UID
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Username       string `gorm:"type:varchar(150)" json:"username"`
	Email          string `gorm:"type:varchar(255);index" json:"email"`
	FirebaseUID    string `gorm:"type:varchar(128);uniqueIndex" json:"firebase_uid"`
	ProfilePicture string `gorm:"type:varchar(255)" json:"profile_picture"`

	// Relationships
	ChosenEvents  []Event  `gorm:"many2many:user_chosen_events;" json:"chosen_events,omitempty"`
	SharedBinders []Binder `gorm:"many2many:binder_shared_with;" json:"shared_binders,omitempty"`
}

// BeforeCreate fills in the default profile picture
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ProfilePicture == "" {
		u.ProfilePicture = DefaultProfilePicture
	}
	return nil
}
