package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Binder is a user's study binder for one event
type Binder struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Slug         string       `gorm:"type:varchar(36);uniqueIndex" json:"slug"`
	OwnerID      uint         `gorm:"index" json:"owner_id"`
	EventID      uint         `gorm:"index" json:"event_id"`
	Date         time.Time    `gorm:"type:date" json:"date"`
	MaterialType MaterialType `gorm:"type:varchar(100)" json:"material_type"`
	Division     Division     `gorm:"type:varchar(1)" json:"division"`
	Old          bool         `gorm:"default:false" json:"old"`

	// Relationships
	Owner       User   `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Event       Event  `gorm:"foreignKey:EventID" json:"event,omitempty"`
	SharedWith  []User `gorm:"many2many:binder_shared_with;" json:"shared_with,omitempty"`
	OnlineUsers []User `gorm:"many2many:binder_online_users;" json:"online_users,omitempty"`
}

// BeforeCreate assigns the public slug and creation date
func (b *Binder) BeforeCreate(tx *gorm.DB) error {
	if b.Slug == "" {
		b.Slug = uuid.NewString()
	}
	if b.Date.IsZero() {
		b.Date = time.Now()
	}
	return nil
}

// BeforeSave copies material type and division from the binder's event
func (b *Binder) BeforeSave(tx *gorm.DB) error {
	event := b.Event
	if event.ID == 0 && b.EventID != 0 && tx != nil {
		if err := tx.Session(&gorm.Session{NewDB: true}).First(&event, b.EventID).Error; err != nil {
			return fmt.Errorf("failed to load event %d: %w", b.EventID, err)
		}
	}
	b.ApplyEvent(event)
	return nil
}

// ApplyEvent copies the event's material type and division onto the binder.
// A zero event leaves the binder unchanged.
func (b *Binder) ApplyEvent(event Event) {
	if event.ID == 0 && event.Name == "" {
		return
	}
	b.MaterialType = event.MaterialType
	b.Division = event.Division
}

// Label is the display name, e.g. "Anatomy Binder - alice"
func (b Binder) Label() string {
	return fmt.Sprintf("%s Binder - %s", b.Event.Name, b.Owner.Username)
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
