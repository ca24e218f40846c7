package store

import (
	"time"

	"github.com/ansel1/merry"
	"github.com/shopspring/decimal"

	"github.com/Hasnainlakhani01/business-management/models"
)

// AddPurchase appends a purchase row and returns it with the assigned id.
func (s *Store) AddPurchase(item string, quantity uint, price decimal.Decimal, date time.Time) (models.Purchase, error) {
	p := models.Purchase{
		Item:     item,
		Quantity: quantity,
		Price:    price,
		Date:     date,
	}
	if err := s.db.Create(&p).Error; err != nil {
		return models.Purchase{}, merry.Prepend(err, "add purchase")
	}
	return p, nil
}

// ListPurchases returns all purchases in insertion order.
func (s *Store) ListPurchases() ([]models.Purchase, error) {
	var items []models.Purchase
	if err := s.db.Order("purchase_id ASC").Find(&items).Error; err != nil {
		return nil, merry.Prepend(err, "list purchases")
	}
	return items, nil
}

// AddSale appends a sale row and returns it with the assigned id.
func (s *Store) AddSale(item string, quantity uint, price decimal.Decimal, date time.Time) (models.Sale, error) {
	sale := models.Sale{
		Item:     item,
		Quantity: quantity,
		Price:    price,
		Date:     date,
	}
	if err := s.db.Create(&sale).Error; err != nil {
		return models.Sale{}, merry.Prepend(err, "add sale")
	}
	return sale, nil
}

// ListSales returns all sales in insertion order.
func (s *Store) ListSales() ([]models.Sale, error) {
	var items []models.Sale
	if err := s.db.Order("sale_id ASC").Find(&items).Error; err != nil {
		return nil, merry.Prepend(err, "list sales")
	}
	return items, nil
}
