// Package entity defines the domain models for the stocks feature.
package entity

// Sector represents an economic sector used to group stocks (e.g. "Energy").
// Sectors are created out of band by the seed command; the API only reads them.
type Sector struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null;uniqueIndex"`
}
