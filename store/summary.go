package store

import (
	"github.com/ansel1/merry"
	"github.com/shopspring/decimal"

	"github.com/Hasnainlakhani01/business-management/models"
)

// Summary holds the dashboard numbers plus the latest activity on each side.
type Summary struct {
	SupplierCount int64           `json:"supplier_count"`
	CustomerCount int64           `json:"customer_count"`
	PurchaseCount int64           `json:"purchase_count"`
	PurchaseTotal decimal.Decimal `json:"purchase_total"`
	SaleCount     int64           `json:"sale_count"`
	SaleTotal     decimal.Decimal `json:"sale_total"`

	RecentPurchases []models.Purchase `json:"recent_purchases"`
	RecentSales     []models.Sale     `json:"recent_sales"`
}

const recentLimit = 5

// Summary computes counts and value totals across all tables. Totals are
// Σ price×quantity over the whole table.
func (s *Store) Summary() (Summary, error) {
	var sum Summary

	counts := []struct {
		model any
		dst   *int64
	}{
		{&models.Supplier{}, &sum.SupplierCount},
		{&models.Customer{}, &sum.CustomerCount},
		{&models.Purchase{}, &sum.PurchaseCount},
		{&models.Sale{}, &sum.SaleCount},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dst).Error; err != nil {
			return Summary{}, merry.Prepend(err, "summary count")
		}
	}

	if err := s.total(&models.Purchase{}, &sum.PurchaseTotal); err != nil {
		return Summary{}, err
	}
	if err := s.total(&models.Sale{}, &sum.SaleTotal); err != nil {
		return Summary{}, err
	}

	if err := s.db.Order("purchase_id DESC").Limit(recentLimit).Find(&sum.RecentPurchases).Error; err != nil {
		return Summary{}, merry.Prepend(err, "summary recent purchases")
	}
	if err := s.db.Order("sale_id DESC").Limit(recentLimit).Find(&sum.RecentSales).Error; err != nil {
		return Summary{}, merry.Prepend(err, "summary recent sales")
	}

	return sum, nil
}

func (s *Store) total(model any, dst *decimal.Decimal) error {
	row := s.db.Model(model).Select("COALESCE(SUM(price * quantity), 0)").Row()
	if err := row.Scan(dst); err != nil {
		return merry.Prepend(err, "summary total")
	}
	return nil
}
