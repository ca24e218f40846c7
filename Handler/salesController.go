package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hasnainlakhani01/business-management/store"
)

// GET /sales/new
func NewSaleForm(c *gin.Context, s *store.Store) {
	c.HTML(http.StatusOK, "sale_form.html", gin.H{
		"Today": time.Now().Format(dateLayout),
	})
}

// POST /sales
func CreateSale(c *gin.Context, s *store.Store) {
	f, err := parseEntryForm(c)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}

	if _, err := s.AddSale(f.Item, f.Quantity, f.Price, f.Date); err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/sales")
}

// GET /sales
func ListSales(c *gin.Context, s *store.Store) {
	sales, err := s.ListSales()
	if err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}

	c.HTML(http.StatusOK, "sales.html", gin.H{
		"Sales": sales,
	})
}
