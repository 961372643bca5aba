package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"invoicegen/internal/config"
	"invoicegen/internal/handler"
	"invoicegen/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	invoiceH *handler.InvoiceHandler,
	gstH *handler.GSTInvoiceHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Generic invoice routes
	invoice := v1.Group("/invoice")
	invoice.GET("", invoiceH.Get)
	invoice.PATCH("", invoiceH.Update)
	invoice.PATCH("/company", invoiceH.UpdateCompany)
	invoice.PATCH("/client", invoiceH.UpdateClient)
	invoice.PATCH("/payment", invoiceH.UpdatePayment)
	invoice.POST("/items", invoiceH.AddItem)
	invoice.PATCH("/items/:id", invoiceH.UpdateItem)
	invoice.DELETE("/items/:id", invoiceH.RemoveItem)
	invoice.POST("/recalculate", invoiceH.Recalculate)
	invoice.POST("/reset", invoiceH.Reset)
	invoice.GET("/validation", invoiceH.Validation)
	invoice.GET("/export/csv", invoiceH.ExportCSV)

	// GST invoice routes
	gst := v1.Group("/gst-invoice")
	gst.GET("", gstH.Get)
	gst.PATCH("", gstH.Update)
	gst.POST("/items", gstH.AddItem)
	gst.PATCH("/items/:id", gstH.UpdateItem)
	gst.DELETE("/items/:id", gstH.RemoveItem)
	gst.POST("/recalculate", gstH.Recalculate)
	gst.POST("/reset", gstH.Reset)
	gst.GET("/validation", gstH.Validation)
	gst.GET("/export/csv", gstH.ExportCSV)
	gst.GET("/export/xlsx", gstH.ExportXLSX)

	return r
}
