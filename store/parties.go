package store

import (
	"github.com/ansel1/merry"

	"github.com/Hasnainlakhani01/business-management/models"
)

// Suppliers and customers are the two counterparty tables. They share a
// shape but stay independent, so the operations are written out per table.

func (s *Store) CreateSupplier(name, contact, address string) (models.Supplier, error) {
	sup := models.Supplier{Name: name, Contact: contact, Address: address}
	if err := s.db.Create(&sup).Error; err != nil {
		return models.Supplier{}, merry.Prepend(err, "create supplier")
	}
	return sup, nil
}

func (s *Store) GetSupplier(id uint) (models.Supplier, error) {
	var sup models.Supplier
	if err := s.db.First(&sup, "supplier_id = ?", id).Error; err != nil {
		return models.Supplier{}, err
	}
	return sup, nil
}

func (s *Store) UpdateSupplier(id uint, name, contact, address string) error {
	r := s.db.Model(&models.Supplier{}).Where("supplier_id = ?", id).Updates(map[string]any{
		"name":    name,
		"contact": contact,
		"address": address,
	})
	if r.Error != nil {
		return merry.Prepend(r.Error, "update supplier")
	}
	if r.RowsAffected != 1 {
		return merry.Errorf("update supplier %d: expected 1 row affected, got %d", id, r.RowsAffected)
	}
	return nil
}

func (s *Store) ListSuppliers() ([]models.Supplier, error) {
	var items []models.Supplier
	if err := s.db.Order("supplier_id ASC").Find(&items).Error; err != nil {
		return nil, merry.Prepend(err, "list suppliers")
	}
	return items, nil
}

func (s *Store) CreateCustomer(name, contact, address string) (models.Customer, error) {
	cus := models.Customer{Name: name, Contact: contact, Address: address}
	if err := s.db.Create(&cus).Error; err != nil {
		return models.Customer{}, merry.Prepend(err, "create customer")
	}
	return cus, nil
}

func (s *Store) GetCustomer(id uint) (models.Customer, error) {
	var cus models.Customer
	if err := s.db.First(&cus, "customer_id = ?", id).Error; err != nil {
		return models.Customer{}, err
	}
	return cus, nil
}

func (s *Store) UpdateCustomer(id uint, name, contact, address string) error {
	r := s.db.Model(&models.Customer{}).Where("customer_id = ?", id).Updates(map[string]any{
		"name":    name,
		"contact": contact,
		"address": address,
	})
	if r.Error != nil {
		return merry.Prepend(r.Error, "update customer")
	}
	if r.RowsAffected != 1 {
		return merry.Errorf("update customer %d: expected 1 row affected, got %d", id, r.RowsAffected)
	}
	return nil
}

func (s *Store) ListCustomers() ([]models.Customer, error) {
	var items []models.Customer
	if err := s.db.Order("customer_id ASC").Find(&items).Error; err != nil {
		return nil, merry.Prepend(err, "list customers")
	}
	return items, nil
}
