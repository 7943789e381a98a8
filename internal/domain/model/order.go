package model

import "time"

type Order struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	Notes        string    `gorm:"type:text" json:"notes"`
	Total        float64   `gorm:"not null" json:"total"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	// 注文と一緒に消す
	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
