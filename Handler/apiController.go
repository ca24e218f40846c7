package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Hasnainlakhani01/business-management/store"
)

// ---------- Request Models ----------
type EntryRequest struct {
	Item     string          `json:"item" binding:"required"`
	Quantity uint            `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Date     string          `json:"date" binding:"required"` // 2006-01-02
}

// GET /api/purchases
func APIListPurchases(c *gin.Context, s *store.Store) {
	purchases, err := s.ListPurchases()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(purchases),
		"data":   purchases,
	})
}

// POST /api/purchases
func APICreatePurchase(c *gin.Context, s *store.Store) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request"})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid date"})
		return
	}

	p, err := s.AddPurchase(req.Item, req.Quantity, req.Price, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"purchase_id": p.PurchaseID,
	})
}

// GET /api/sales
func APIListSales(c *gin.Context, s *store.Store) {
	sales, err := s.ListSales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(sales),
		"data":   sales,
	})
}

// POST /api/sales
func APICreateSale(c *gin.Context, s *store.Store) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request"})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid date"})
		return
	}

	sale, err := s.AddSale(req.Item, req.Quantity, req.Price, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"sale_id": sale.SaleID,
	})
}

// GET /api/summary
func APISummary(c *gin.Context, s *store.Store) {
	summary, err := s.Summary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   summary,
	})
}
