package dto

// SectorItem represents a sector in API responses.
type SectorItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SectorsRes represents the response of the /api/stocks/sectors endpoint.
type SectorsRes struct {
	Sectors []SectorItem `json:"sectors"`
}

// StockItem represents a stock with its sector inlined.
type StockItem struct {
	ID        uint       `json:"id"`
	Ticker    string     `json:"ticker"`
	ShortName string     `json:"shortName"`
	Price     float64    `json:"price"`
	Sector    SectorItem `json:"sector"`
	Bluetip   bool       `json:"bluetip"`
}

// StocksRes represents the response of the stock list endpoint.
type StocksRes struct {
	Stocks []StockItem `json:"stocks"`
}

// StockRes represents the response of the single stock endpoint.
type StockRes struct {
	Stock StockItem `json:"stock"`
}

// SaveStockRes carries the id of the created or updated stock.
type SaveStockRes struct {
	ID uint `json:"id"`
}
