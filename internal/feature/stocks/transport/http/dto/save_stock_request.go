// Package dto defines data transfer objects for the stocks HTTP API.
package dto

// SectorRef identifies the sector a stock belongs to in a save request.
// Only the id is carried; the name is resolved on reads.
type SectorRef struct {
	ID uint `json:"id" binding:"required"`
}

// SaveStockPayload is the statically bound stock payload of a save request.
// A non-zero ID means update, a zero ID means create.
type SaveStockPayload struct {
	ID        uint      `json:"id"`
	Ticker    string    `json:"ticker" binding:"required"`
	ShortName string    `json:"shortName" binding:"required"`
	Price     float64   `json:"price"`
	Bluetip   bool      `json:"bluetip"`
	Sector    SectorRef `json:"sector" binding:"required"`
}

// SaveStockReq represents the request body for the /api/stocks/savestock endpoint.
type SaveStockReq struct {
	Stock SaveStockPayload `json:"stock" binding:"required"`
}
