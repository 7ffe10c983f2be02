package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetrental/internal/domain"
)

type WarehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

func (r *WarehouseRepository) CreateItem(ctx context.Context, item *domain.WarehouseItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *WarehouseRepository) GetItemByID(ctx context.Context, id int64) (*domain.WarehouseItem, error) {
	var item domain.WarehouseItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *WarehouseRepository) ListItems(ctx context.Context) ([]domain.WarehouseItem, error) {
	var items []domain.WarehouseItem
	if err := r.db.WithContext(ctx).Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *WarehouseRepository) SaveItem(ctx context.Context, item *domain.WarehouseItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *WarehouseRepository) DeleteItem(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.WarehouseItem{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WarehouseRepository) DeleteItems(ctx context.Context, ids []int64) error {
	return r.db.WithContext(ctx).Delete(&domain.WarehouseItem{}, ids).Error
}

func (r *WarehouseRepository) CountItemsBelow(ctx context.Context, threshold int) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.WarehouseItem{}).
		Where("quantity < ?", threshold).
		Count(&cnt).Error
	return cnt, err
}

func (r *WarehouseRepository) AppendLog(ctx context.Context, log *domain.WarehouseLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *WarehouseRepository) ListLogs(ctx context.Context) ([]domain.WarehouseLog, error) {
	var logs []domain.WarehouseLog
	err := r.db.WithContext(ctx).
		Preload("Item").
		Order("timestamp DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
