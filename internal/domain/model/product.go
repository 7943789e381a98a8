package model

import "time"

type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Category    string    `gorm:"type:varchar(100);not null" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	SKU         string    `gorm:"type:varchar(100)" json:"sku"`
	Price       float64   `gorm:"not null" json:"price"`
	CostPrice   float64   `json:"cost_price"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	ReorderAt   int64     `gorm:"not null;default:0" json:"reorder_at"`
	SupplierID  *int64    `gorm:"index" json:"supplier_id"`
	ImagePath   string    `gorm:"type:varchar(512)" json:"image_path"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	// supplier削除時はNULLに落とす
	Supplier *Supplier `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
