package models

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrMovieIDRequired    = errors.New("movie id is required")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// Movie represents a single catalog entry. Values are never mutated after the
// catalog is loaded.
type Movie struct {
	Ordinal  int    `gorm:"primaryKey;autoIncrement:false" json:"-"`
	ID       string `gorm:"type:varchar(64);not null;index" json:"id"`
	Title    string `gorm:"type:text;not null;default:''" json:"title"`
	Year     int    `gorm:"not null;default:0" json:"year"`
	Category string `gorm:"type:text;not null;default:''" json:"category"`
	Rating   string `gorm:"type:varchar(32);not null;default:''" json:"rating"`
	Overview string `gorm:"type:text;not null;default:''" json:"overview"`
}

// TableName overrides the table name used by Movie
func (Movie) TableName() string {
	return "movies"
}

// Validate checks the catalog invariants for a movie
func (m *Movie) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return ErrMovieIDRequired
	}
	return nil
}

// ParseYear converts a raw release year cell into an int.
// Blank or malformed cells yield 0.
func ParseYear(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	if year, err := strconv.Atoi(raw); err == nil {
		return year
	}

	// Spreadsheet exports sometimes write years as floats ("2019.0")
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}

	return 0
}
