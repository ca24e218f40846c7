package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Hasnainlakhani01/business-management/store"
)

const dateLayout = "2006-01-02"

// entryForm is the parsed purchase/sale entry form. Both record types share
// the same shape.
type entryForm struct {
	Item     string
	Quantity uint
	Price    decimal.Decimal
	Date     time.Time
}

// parseEntryForm coerces the posted fields. No validation beyond coercion:
// anything that fails to parse surfaces as a generic bad-request error.
func parseEntryForm(c *gin.Context) (entryForm, error) {
	var f entryForm
	f.Item = c.PostForm("item")

	quantity, err := strconv.ParseUint(c.PostForm("quantity"), 10, 32)
	if err != nil {
		return f, err
	}
	f.Quantity = uint(quantity)

	f.Price, err = decimal.NewFromString(c.PostForm("price"))
	if err != nil {
		return f, err
	}

	f.Date, err = time.Parse(dateLayout, c.PostForm("date"))
	return f, err
}

// GET /purchases/new
func NewPurchaseForm(c *gin.Context, s *store.Store) {
	c.HTML(http.StatusOK, "purchase_form.html", gin.H{
		"Today": time.Now().Format(dateLayout),
	})
}

// POST /purchases
func CreatePurchase(c *gin.Context, s *store.Store) {
	f, err := parseEntryForm(c)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}

	if _, err := s.AddPurchase(f.Item, f.Quantity, f.Price, f.Date); err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/purchases")
}

// GET /purchases
func ListPurchases(c *gin.Context, s *store.Store) {
	purchases, err := s.ListPurchases()
	if err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}

	c.HTML(http.StatusOK, "purchases.html", gin.H{
		"Purchases": purchases,
	})
}
