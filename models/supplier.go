package models

import "time"

// Suppliers table
type Supplier struct {
	SupplierID uint      `json:"supplier_id" gorm:"column:supplier_id;primaryKey;autoIncrement"`
	Name       string    `json:"name"        gorm:"column:name;not null;unique"`
	Contact    string    `json:"contact"     gorm:"column:contact"`
	Address    string    `json:"address"     gorm:"column:address"`
	CreatedAt  time.Time `json:"created_at"  gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at"  gorm:"column:updated_at;autoUpdateTime"`
}

func (Supplier) TableName() string { return "suppliers" }
