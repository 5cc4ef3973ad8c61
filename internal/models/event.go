package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// MaterialType is the kind of study material an event allows
type MaterialType string

const (
	MaterialTypeBinder     MaterialType = "binder"
	MaterialTypeCheatSheet MaterialType = "cheat sheet"
	MaterialTypeNone       MaterialType = "none"
)

// Division is the competition division of an event
type Division string

const (
	DivisionA Division = "a"
	DivisionB Division = "b"
	DivisionC Division = "c"
)

// ParseMaterialType accepts the stored value or its display label ("Cheat Sheet")
func ParseMaterialType(s string) (MaterialType, error) {
	switch MaterialType(lower(s)) {
	case MaterialTypeBinder:
		return MaterialTypeBinder, nil
	case MaterialTypeCheatSheet:
		return MaterialTypeCheatSheet, nil
	case MaterialTypeNone:
		return MaterialTypeNone, nil
	}
	return "", fmt.Errorf("unknown material type %q", s)
}

// ParseDivision accepts a, b or c in either case
func ParseDivision(s string) (Division, error) {
	switch d := Division(lower(s)); d {
	case DivisionA, DivisionB, DivisionC:
		return d, nil
	}
	return "", fmt.Errorf("unknown division %q", s)
}

// Event is a competition event that binders are written for
type Event struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name         string       `gorm:"type:varchar(100)" json:"name"`
	MaterialType MaterialType `gorm:"type:varchar(100)" json:"material_type"`
	Division     Division     `gorm:"type:varchar(1)" json:"division"`

	Binders []Binder `gorm:"foreignKey:EventID" json:"binders,omitempty"`
}

func (e Event) String() string {
	return e.Name
}
