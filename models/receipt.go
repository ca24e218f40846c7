package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipts table: money received from a customer. Append-only.
type Receipt struct {
	ReceiptID   uint            `json:"receipt_id"   gorm:"column:receipt_id;primaryKey;autoIncrement"`
	CustomerID  uint            `json:"customer_id"  gorm:"column:customer_id;not null;index"`
	Date        time.Time       `json:"date"         gorm:"column:date;type:date;not null"`
	Amount      decimal.Decimal `json:"amount"       gorm:"column:amount;type:decimal(15,2);not null"`
	PaymentMode string          `json:"payment_mode" gorm:"column:payment_mode;not null"`
	ReferenceNo string          `json:"reference_no" gorm:"column:reference_no"`
	Notes       string          `json:"notes"        gorm:"column:notes"`

	// relations
	Customer *Customer `json:"-" gorm:"belongsTo;foreignKey:CustomerID;references:CustomerID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (Receipt) TableName() string { return "receipts" }
