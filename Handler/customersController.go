package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hasnainlakhani01/business-management/store"
)

// GET /customers
func ListCustomers(c *gin.Context, s *store.Store) {
	customers, err := s.ListCustomers()
	if err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}

	c.HTML(http.StatusOK, "customers.html", gin.H{
		"Customers": customers,
	})
}

// GET /customers/new
func NewCustomerForm(c *gin.Context, s *store.Store) {
	c.HTML(http.StatusOK, "customer_form.html", gin.H{})
}

// POST /customers
func CreateCustomer(c *gin.Context, s *store.Store) {
	if _, err := s.CreateCustomer(c.PostForm("name"), c.PostForm("contact"), c.PostForm("address")); err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/customers")
}

// GET /customers/edit/:id
func EditCustomerForm(c *gin.Context, s *store.Store) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
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

	c.HTML(http.StatusOK, "customer_form.html", gin.H{
		"Customer": cus,
	})
}

// POST /customers/edit/:id
func UpdateCustomer(c *gin.Context, s *store.Store) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid customer id")
		return
	}

	if err := s.UpdateCustomer(uint(id), c.PostForm("name"), c.PostForm("contact"), c.PostForm("address")); err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/customers")
}
