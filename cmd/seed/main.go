// Command seed creates the economic sector catalog and a few demo stocks.
// Sectors have no create endpoint; this command is the out-of-band path.
// It is idempotent: existing rows are left untouched.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"stockmarket_backend/internal/feature/stocks/domain/entity"
	"stockmarket_backend/internal/platform/db"
)

var sectorNames = []string{
	"Energy",
	"Financials",
	"Health Care",
	"Industrials",
	"Information Technology",
	"Consumer Staples",
	"Utilities",
}

var demoStocks = []struct {
	ticker    string
	shortName string
	price     float64
	bluetip   bool
	sector    string
}{
	{"XOM", "Exxon", 100, true, "Energy"},
	{"CVX", "Chevron", 150.40, true, "Energy"},
	{"JPM", "JPMorgan", 195.30, true, "Financials"},
	{"PLTR", "Palantir", 24.85, false, "Information Technology"},
}

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	database := db.OpenDB()
	defer db.CloseDB(database)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// シードはスキーマが前提なので常にマイグレーションする
	if err := database.WithContext(ctx).AutoMigrate(&entity.Sector{}, &entity.Stock{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	sectorIDs := make(map[string]uint, len(sectorNames))
	for _, name := range sectorNames {
		sector := entity.Sector{Name: name}
		if err := database.WithContext(ctx).
			Where("name = ?", name).
			FirstOrCreate(&sector).Error; err != nil {
			log.Fatalf("failed to seed sector %q: %v", name, err)
		}
		sectorIDs[name] = sector.ID
	}

	for _, d := range demoStocks {
		stock := entity.Stock{
			Ticker:    d.ticker,
			ShortName: d.shortName,
			Price:     d.price,
			Bluetip:   d.bluetip,
			SectorID:  sectorIDs[d.sector],
		}
		if err := database.WithContext(ctx).
			Where("ticker = ?", d.ticker).
			FirstOrCreate(&stock).Error; err != nil {
			log.Fatalf("failed to seed stock %q: %v", d.ticker, err)
		}
	}

	log.Println("seed ok")
}
