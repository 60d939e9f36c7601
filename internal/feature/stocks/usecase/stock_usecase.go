// Package usecase はstocksフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"stockmarket_backend/internal/feature/stocks/domain/entity"
)

// StockRepository は株式エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type StockRepository interface {
	// ListTop はセクターを結合した株式を最大16件返します。
	// onlyBluetipがtrueの場合、ブルーチップ銘柄のみに絞り込みます。
	ListTop(ctx context.Context, onlyBluetip bool) ([]entity.Stock, error)

	// FindByID はセクターを結合した株式をIDで取得します。
	// 株式が存在しない場合、ErrStockNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Stock, error)

	// Create は新しい株式を永続化し、生成されたIDをエンティティに設定します。
	Create(ctx context.Context, stock *entity.Stock) error

	// Update は指定されたIDの株式のフィールドを上書きします。
	// 一致する行が存在しない場合でもエラーにはなりません。
	Update(ctx context.Context, stock *entity.Stock) error
}

// SectorRepository は経済セクターの永続化層を抽象化します。
type SectorRepository interface {
	// ListAll はすべてのセクターを返します。ページネーションはありません。
	ListAll(ctx context.Context) ([]entity.Sector, error)
}

// StockUsecase は株式・セクター操作のビジネスロジックを提供します。
type StockUsecase struct {
	stocks  StockRepository
	sectors SectorRepository
}

// NewStockUsecase は指定されたリポジトリでStockUsecaseの新しいインスタンスを生成します。
func NewStockUsecase(stocks StockRepository, sectors SectorRepository) *StockUsecase {
	return &StockUsecase{stocks: stocks, sectors: sectors}
}

// ListSectors はすべてのセクターを返します。
func (u *StockUsecase) ListSectors(ctx context.Context) ([]entity.Sector, error) {
	return u.sectors.ListAll(ctx)
}

// ListTop はセクターを結合した株式を最大16件返します。
func (u *StockUsecase) ListTop(ctx context.Context, onlyBluetip bool) ([]entity.Stock, error) {
	return u.stocks.ListTop(ctx, onlyBluetip)
}

// GetByID はセクターを結合した株式をIDで取得します。
func (u *StockUsecase) GetByID(ctx context.Context, id uint) (*entity.Stock, error) {
	return u.stocks.FindByID(ctx, id)
}

// Save は株式を登録または更新します。
// IDが設定されている場合は既存行のフィールドを上書きし、createdはfalseになります。
// 一致する行が存在しなくても成功扱いです（既存仕様の踏襲）。
// IDが未設定の場合は新規作成し、生成されたIDとcreated=trueを返します。
// SectorIDはペイロードの値をそのまま使用し、セクターの存在は検証しません。
func (u *StockUsecase) Save(ctx context.Context, stock *entity.Stock) (uint, bool, error) {
	if stock.ID != 0 {
		if err := u.stocks.Update(ctx, stock); err != nil {
			return 0, false, err
		}
		return stock.ID, false, nil
	}
	if err := u.stocks.Create(ctx, stock); err != nil {
		return 0, false, err
	}
	return stock.ID, true, nil
}
