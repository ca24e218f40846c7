package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sales table. Same shape as purchases but fully independent of them.
type Sale struct {
	SaleID   uint            `json:"sale_id"  gorm:"column:sale_id;primaryKey;autoIncrement"`
	Item     string          `json:"item"     gorm:"column:item;not null"`
	Quantity uint            `json:"quantity" gorm:"column:quantity;not null"`
	Price    decimal.Decimal `json:"price"    gorm:"column:price;type:decimal(15,2);not null"`
	Date     time.Time       `json:"date"     gorm:"column:date;type:date;not null"`
}

func (Sale) TableName() string { return "sales" }
