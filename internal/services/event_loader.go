package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"scibind/internal/models"
)

// ErrEventsAlreadyLoaded is returned by LoadEvents when the events table is not empty
var ErrEventsAlreadyLoaded = errors.New("events already loaded")

var eventColumns = []string{"Name", "Material Type", "Division"}

// ParseEventsCSV reads events from a CSV with a Name, Material Type, Division header
func ParseEventsCSV(r io.Reader) ([]models.Event, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, col := range eventColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var events []models.Event
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		materialType, err := models.ParseMaterialType(record[index["Material Type"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		division, err := models.ParseDivision(record[index["Division"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		events = append(events, models.Event{
			Name:         strings.TrimSpace(record[index["Name"]]),
			MaterialType: materialType,
			Division:     division,
		})
	}
	return events, nil
}

// LoadEvents inserts the events in one transaction unless events already exist
func LoadEvents(db *gorm.DB, events []models.Event) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Event{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEventsAlreadyLoaded
		}
		if len(events) == 0 {
			return nil
		}
		return tx.Create(&events).Error
	})
}
