package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchases table. Append-only: rows are never updated or deleted.
type Purchase struct {
	PurchaseID uint            `json:"purchase_id" gorm:"column:purchase_id;primaryKey;autoIncrement"`
	Item       string          `json:"item"        gorm:"column:item;not null"`
	Quantity   uint            `json:"quantity"    gorm:"column:quantity;not null"`
	Price      decimal.Decimal `json:"price"       gorm:"column:price;type:decimal(15,2);not null"`
	Date       time.Time       `json:"date"        gorm:"column:date;type:date;not null"`
}

func (Purchase) TableName() string { return "purchases" }
