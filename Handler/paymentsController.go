package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Hasnainlakhani01/business-management/store"
)

// GET /payments
func ListPayments(c *gin.Context, s *store.Store) {
	payments, err := s.ListPayments()
	if err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}

	c.HTML(http.StatusOK, "payments.html", gin.H{
		"Payments": payments,
	})
}

// GET /payments/new/:supplier_id
func NewPaymentForm(c *gin.Context, s *store.Store) {
	id, err := strconv.ParseUint(c.Param("supplier_id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid supplier id")
		return
	}

	sup, err := s.GetSupplier(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Redirect(http.StatusSeeOther, "/suppliers")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}

	c.HTML(http.StatusOK, "payment_form.html", gin.H{
		"Supplier": sup,
		"Today":    time.Now().Format(dateLayout),
	})
}

// POST /payments
func CreatePayment(c *gin.Context, s *store.Store) {
	supplierID, err := strconv.ParseUint(c.PostForm("supplier_id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}
	amount, err := decimal.NewFromString(c.PostForm("amount"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}
	date, err := time.Parse(dateLayout, c.PostForm("date"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}

	_, err = s.AddPayment(uint(supplierID), date, amount,
		c.PostForm("payment_mode"), c.PostForm("reference_no"), c.PostForm("notes"))
	if err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/suppliers")
}
