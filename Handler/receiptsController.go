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

// GET /receipts
func ListReceipts(c *gin.Context, s *store.Store) {
	receipts, err := s.ListReceipts()
	if err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}

	c.HTML(http.StatusOK, "receipts.html", gin.H{
		"Receipts": receipts,
	})
}

// GET /receipts/new/:customer_id
func NewReceiptForm(c *gin.Context, s *store.Store) {
	id, err := strconv.ParseUint(c.Param("customer_id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid customer id")
		return
	}

	cus, err := s.GetCustomer(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Redirect(http.StatusSeeOther, "/customers")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}

	c.HTML(http.StatusOK, "receipt_form.html", gin.H{
		"Customer": cus,
		"Today":    time.Now().Format(dateLayout),
	})
}

// POST /receipts
func CreateReceipt(c *gin.Context, s *store.Store) {
	customerID, err := strconv.ParseUint(c.PostForm("customer_id"), 10, 32)
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

	_, err = s.AddReceipt(uint(customerID), date, amount,
		c.PostForm("payment_mode"), c.PostForm("reference_no"), c.PostForm("notes"))
	if err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/customers")
}
