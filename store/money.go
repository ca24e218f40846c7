package store

import (
	"time"

	"github.com/ansel1/merry"
	"github.com/shopspring/decimal"

	"github.com/Hasnainlakhani01/business-management/models"
)

// PaymentRow is a payment joined with the supplier it was made to.
type PaymentRow struct {
	PaymentID    uint            `json:"payment_id"`
	SupplierID   uint            `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentMode  string          `json:"payment_mode"`
	ReferenceNo  string          `json:"reference_no"`
	Notes        string          `json:"notes"`
}

// ReceiptRow is a receipt joined with the customer it came from.
type ReceiptRow struct {
	ReceiptID    uint            `json:"receipt_id"`
	CustomerID   uint            `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentMode  string          `json:"payment_mode"`
	ReferenceNo  string          `json:"reference_no"`
	Notes        string          `json:"notes"`
}

// AddPayment records money paid out to an existing supplier.
func (s *Store) AddPayment(supplierID uint, date time.Time, amount decimal.Decimal, mode, referenceNo, notes string) (models.Payment, error) {
	p := models.Payment{
		SupplierID:  supplierID,
		Date:        date,
		Amount:      amount,
		PaymentMode: mode,
		ReferenceNo: referenceNo,
		Notes:       notes,
	}
	if err := s.db.Create(&p).Error; err != nil {
		return models.Payment{}, merry.Prepend(err, "add payment")
	}
	return p, nil
}

func (s *Store) ListPayments() ([]PaymentRow, error) {
	var rows []PaymentRow
	err := s.db.Table("payments").
		Select("payments.payment_id, payments.supplier_id, suppliers.name AS supplier_name, payments.date, payments.amount, payments.payment_mode, payments.reference_no, payments.notes").
		Joins("JOIN suppliers ON suppliers.supplier_id = payments.supplier_id").
		Order("payments.payment_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, merry.Prepend(err, "list payments")
	}
	return rows, nil
}

// AddReceipt records money received from an existing customer.
func (s *Store) AddReceipt(customerID uint, date time.Time, amount decimal.Decimal, mode, referenceNo, notes string) (models.Receipt, error) {
	r := models.Receipt{
		CustomerID:  customerID,
		Date:        date,
		Amount:      amount,
		PaymentMode: mode,
		ReferenceNo: referenceNo,
		Notes:       notes,
	}
	if err := s.db.Create(&r).Error; err != nil {
		return models.Receipt{}, merry.Prepend(err, "add receipt")
	}
	return r, nil
}

func (s *Store) ListReceipts() ([]ReceiptRow, error) {
	var rows []ReceiptRow
	err := s.db.Table("receipts").
		Select("receipts.receipt_id, receipts.customer_id, customers.name AS customer_name, receipts.date, receipts.amount, receipts.payment_mode, receipts.reference_no, receipts.notes").
		Joins("JOIN customers ON customers.customer_id = receipts.customer_id").
		Order("receipts.receipt_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, merry.Prepend(err, "list receipts")
	}
	return rows, nil
}
