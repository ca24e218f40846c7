package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payments table: money paid out to a supplier. Append-only.
type Payment struct {
	PaymentID   uint            `json:"payment_id"   gorm:"column:payment_id;primaryKey;autoIncrement"`
	SupplierID  uint            `json:"supplier_id"  gorm:"column:supplier_id;not null;index"`
	Date        time.Time       `json:"date"         gorm:"column:date;type:date;not null"`
	Amount      decimal.Decimal `json:"amount"       gorm:"column:amount;type:decimal(15,2);not null"`
	PaymentMode string          `json:"payment_mode" gorm:"column:payment_mode;not null"`
	ReferenceNo string          `json:"reference_no" gorm:"column:reference_no"`
	Notes       string          `json:"notes"        gorm:"column:notes"`

	// relations
	Supplier *Supplier `json:"-" gorm:"belongsTo;foreignKey:SupplierID;references:SupplierID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (Payment) TableName() string { return "payments" }
