package routers

import (
	handlers "github.com/Hasnainlakhani01/business-management/Handler"

	"github.com/gin-gonic/gin"

	"github.com/Hasnainlakhani01/business-management/store"
)

// SetupRouter wires every route to its handler.
func SetupRouter(r *gin.Engine, s *store.Store) {
	r.GET("/", func(c *gin.Context) { handlers.Dashboard(c, s) })

	r.GET("/purchases", func(c *gin.Context) { handlers.ListPurchases(c, s) })
	r.GET("/purchases/new", func(c *gin.Context) { handlers.NewPurchaseForm(c, s) })
	r.POST("/purchases", func(c *gin.Context) { handlers.CreatePurchase(c, s) })

	r.GET("/sales", func(c *gin.Context) { handlers.ListSales(c, s) })
	r.GET("/sales/new", func(c *gin.Context) { handlers.NewSaleForm(c, s) })
	r.POST("/sales", func(c *gin.Context) { handlers.CreateSale(c, s) })

	r.GET("/suppliers", func(c *gin.Context) { handlers.ListSuppliers(c, s) })
	r.GET("/suppliers/new", func(c *gin.Context) { handlers.NewSupplierForm(c, s) })
	r.POST("/suppliers", func(c *gin.Context) { handlers.CreateSupplier(c, s) })
	r.GET("/suppliers/edit/:id", func(c *gin.Context) { handlers.EditSupplierForm(c, s) })
	r.POST("/suppliers/edit/:id", func(c *gin.Context) { handlers.UpdateSupplier(c, s) })

	r.GET("/customers", func(c *gin.Context) { handlers.ListCustomers(c, s) })
	r.GET("/customers/new", func(c *gin.Context) { handlers.NewCustomerForm(c, s) })
	r.POST("/customers", func(c *gin.Context) { handlers.CreateCustomer(c, s) })
	r.GET("/customers/edit/:id", func(c *gin.Context) { handlers.EditCustomerForm(c, s) })
	r.POST("/customers/edit/:id", func(c *gin.Context) { handlers.UpdateCustomer(c, s) })

	r.GET("/payments", func(c *gin.Context) { handlers.ListPayments(c, s) })
	r.GET("/payments/new/:supplier_id", func(c *gin.Context) { handlers.NewPaymentForm(c, s) })
	r.POST("/payments", func(c *gin.Context) { handlers.CreatePayment(c, s) })

	r.GET("/receipts", func(c *gin.Context) { handlers.ListReceipts(c, s) })
	r.GET("/receipts/new/:customer_id", func(c *gin.Context) { handlers.NewReceiptForm(c, s) })
	r.POST("/receipts", func(c *gin.Context) { handlers.CreateReceipt(c, s) })

	r.GET("/api/purchases", func(c *gin.Context) { handlers.APIListPurchases(c, s) })
	r.POST("/api/purchases", func(c *gin.Context) { handlers.APICreatePurchase(c, s) })
	r.GET("/api/sales", func(c *gin.Context) { handlers.APIListSales(c, s) })
	r.POST("/api/sales", func(c *gin.Context) { handlers.APICreateSale(c, s) })
	r.GET("/api/summary", func(c *gin.Context) { handlers.APISummary(c, s) })
}
