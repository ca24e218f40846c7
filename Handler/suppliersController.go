package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hasnainlakhani01/business-management/store"
)

// GET /suppliers
func ListSuppliers(c *gin.Context, s *store.Store) {
	suppliers, err := s.ListSuppliers()
	if err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}

	c.HTML(http.StatusOK, "suppliers.html", gin.H{
		"Suppliers": suppliers,
	})
}

// GET /suppliers/new
func NewSupplierForm(c *gin.Context, s *store.Store) {
	c.HTML(http.StatusOK, "supplier_form.html", gin.H{})
}

// POST /suppliers
func CreateSupplier(c *gin.Context, s *store.Store) {
	if _, err := s.CreateSupplier(c.PostForm("name"), c.PostForm("contact"), c.PostForm("address")); err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/suppliers")
}

// GET /suppliers/edit/:id
func EditSupplierForm(c *gin.Context, s *store.Store) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
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

	c.HTML(http.StatusOK, "supplier_form.html", gin.H{
		"Supplier": sup,
	})
}

// POST /suppliers/edit/:id
func UpdateSupplier(c *gin.Context, s *store.Store) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid supplier id")
		return
	}

	if err := s.UpdateSupplier(uint(id), c.PostForm("name"), c.PostForm("contact"), c.PostForm("address")); err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/suppliers")
}
