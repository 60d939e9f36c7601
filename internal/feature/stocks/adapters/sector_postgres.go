package adapters

import (
	"context"

	"gorm.io/gorm"

	"stockmarket_backend/internal/feature/stocks/domain/entity"
	"stockmarket_backend/internal/feature/stocks/usecase"
)

// sectorPostgres はSectorRepositoryインターフェースのPostgreSQL実装です。
type sectorPostgres struct {
	db *gorm.DB
}

var _ usecase.SectorRepository = (*sectorPostgres)(nil)

// NewSectorRepository は指定されたDB接続でsectorPostgresリポジトリの新しいインスタンスを生成します。
func NewSectorRepository(db *gorm.DB) *sectorPostgres {
	return &sectorPostgres{db: db}
}

// ListAll はすべてのセクターを返します。
func (r *sectorPostgres) ListAll(ctx context.Context) ([]entity.Sector, error) {
	var sectors []entity.Sector
	if err := r.db.WithContext(ctx).Find(&sectors).Error; err != nil {
		return nil, err
	}
	return sectors, nil
}
