// Package adapters はstocksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stockmarket_backend/internal/feature/stocks/domain/entity"
	"stockmarket_backend/internal/feature/stocks/usecase"
)

// topStocksLimit は一覧取得で返す株式の上限数です。
const topStocksLimit = 16

// stockPostgres はStockRepositoryインターフェースのPostgreSQL実装です。
type stockPostgres struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockPostgres)(nil)

// NewStockRepository は指定されたDB接続でstockPostgresリポジトリの新しいインスタンスを生成します。
func NewStockRepository(db *gorm.DB) *stockPostgres {
	return &stockPostgres{db: db}
}

// ListTop はセクターを結合した株式を最大16件返します。
// 並び順は保証されません。
func (r *stockPostgres) ListTop(ctx context.Context, onlyBluetip bool) ([]entity.Stock, error) {
	q := r.db.WithContext(ctx).
		Preload("Sector").
		Limit(topStocksLimit)
	if onlyBluetip {
		q = q.Where("bluetip = ?", true)
	}
	var stocks []entity.Stock
	if err := q.Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindByID はセクターを結合した株式をIDで取得します。
// 株式が存在しない場合、usecase.ErrStockNotFoundを返します。
func (r *stockPostgres) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	var s entity.Stock
	if err := r.db.WithContext(ctx).Preload("Sector").First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create は新しい株式をデータベースに追加します。
func (r *stockPostgres) Create(ctx context.Context, s *entity.Stock) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// Update は指定されたIDの株式のフィールドを上書きします。
// ゼロ値（bluetip=false等）も書き込むため、構造体ではなくマップで更新します。
// 一致する行が存在しない場合は何もせず成功します。
func (r *stockPostgres) Update(ctx context.Context, s *entity.Stock) error {
	return r.db.WithContext(ctx).
		Model(&entity.Stock{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"ticker":     s.Ticker,
			"short_name": s.ShortName,
			"price":      s.Price,
			"bluetip":    s.Bluetip,
			"sector_id":  s.SectorID,
		}).Error
}
