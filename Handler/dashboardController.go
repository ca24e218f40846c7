package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hasnainlakhani01/business-management/store"
)

// GET /
func Dashboard(c *gin.Context, s *store.Store) {
	summary, err := s.Summary()
	if err != nil {
		c.String(http.StatusInternalServerError, "error: %v", err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Summary": summary,
	})
}
