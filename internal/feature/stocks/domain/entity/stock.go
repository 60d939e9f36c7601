package entity

import "time"

// Stock represents a tradable equity belonging to exactly one economic sector.
// Bluetip marks blue-chip (large, stable company) stocks.
type Stock struct {
	ID        uint    `gorm:"primaryKey"`
	Ticker    string  `gorm:"size:20;not null;uniqueIndex"`
	ShortName string  `gorm:"size:255;not null"`
	Price     float64 `gorm:"not null"`
	Bluetip   bool    `gorm:"not null;default:false"`

	// SectorID references the stock's sector. The reference is taken from the
	// client payload on save and is not validated against the sectors table.
	SectorID uint
	Sector   Sector

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
