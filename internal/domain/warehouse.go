package domain

import "time"

type WarehouseItem struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null" validate:"required"`
	Quantity  int       `json:"quantity" gorm:"not null;default:0" validate:"gte=0"`
	DateState time.Time `json:"date_state" gorm:"not null" validate:"required"`
	Comment   string    `json:"comment,omitempty" gorm:"type:text"`
}

func (WarehouseItem) TableName() string { return "warehouse_items" }

// WarehouseLog records every stock mutation. QuantityTaken is the signed
// delta applied to the item (positive for additions).
type WarehouseLog struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Timestamp     time.Time `json:"timestamp" gorm:"autoCreateTime"`
	ItemID        int64     `json:"item_id" gorm:"index;not null"`
	UserID        *int64    `json:"user_id,omitempty"`
	QuantityTaken int       `json:"quantity_taken"`
	Message       string    `json:"message" gorm:"type:text"`

	Item *WarehouseItem `json:"item,omitempty" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

func (WarehouseLog) TableName() string { return "warehouse_logs" }
