package main

import (
	"fmt"
	"log"

	_ "invoicegen/docs"
	"invoicegen/internal/config"
	"invoicegen/internal/handler"
	"invoicegen/internal/router"
	"invoicegen/internal/service"
	"invoicegen/internal/validator"
)

// @title Invoice Generator API
// @version 1.0
// @description Invoice authoring service with GST support, validation and export.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize services
	invoiceSvc := service.NewInvoiceService(cfg.Invoice)
	gstSvc := service.NewGSTInvoiceService(cfg.Invoice)
	engine := validator.NewEngine(validator.NewDefaultRegistry())

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	gstH := handler.NewGSTInvoiceHandler(gstSvc, engine)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, invoiceH, gstH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
