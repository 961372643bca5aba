package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicegen/internal/domain"
	"invoicegen/internal/export"
	"invoicegen/internal/service"
)

// InvoiceHandler handles the generic invoice editing endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Get handles GET /api/v1/invoice
// @Summary Get the invoice under edit
// @Description Get the current generic invoice record with all derived fields
// @Tags invoice
// @Produce json
// @Success 200 {object} APIResponse{data=domain.Invoice} "Current invoice"
// @Router /invoice [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	RespondOK(c, h.invoiceService.Get())
}

// Update handles PATCH /api/v1/invoice
// @Summary Update invoice header fields
// @Description Merge partial header fields (number, dates, notes) into the invoice
// @Tags invoice
// @Accept json
// @Produce json
// @Param request body service.InvoicePatch true "Fields to update"
// @Success 200 {object} APIResponse{data=domain.Invoice} "Updated invoice"
// @Failure 400 {object} APIResponse "Validation error"
// @Router /invoice [patch]
func (h *InvoiceHandler) Update(c *gin.Context) {
	var patch service.InvoicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	RespondOK(c, h.invoiceService.UpdateInvoice(patch))
}

// UpdateCompany handles PATCH /api/v1/invoice/company
// @Summary Update company details
// @Tags invoice
// @Accept json
// @Produce json
// @Param request body service.CompanyPatch true "Fields to update"
// @Success 200 {object} APIResponse{data=domain.Invoice} "Updated invoice"
// @Failure 400 {object} APIResponse "Validation error"
// @Router /invoice/company [patch]
func (h *InvoiceHandler) UpdateCompany(c *gin.Context) {
	var patch service.CompanyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	RespondOK(c, h.invoiceService.UpdateCompany(patch))
}

// UpdateClient handles PATCH /api/v1/invoice/client
// @Summary Update client details
// @Tags invoice
// @Accept json
// @Produce json
// @Param request body service.ClientPatch true "Fields to update"
// @Success 200 {object} APIResponse{data=domain.Invoice} "Updated invoice"
// @Failure 400 {object} APIResponse "Validation error"
// @Router /invoice/client [patch]
func (h *InvoiceHandler) UpdateClient(c *gin.Context) {
	var patch service.ClientPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	RespondOK(c, h.invoiceService.UpdateClient(patch))
}

// UpdatePayment handles PATCH /api/v1/invoice/payment
// @Summary Update payment fields
// @Description Merge tax rate, amount paid or currency; derived totals recompute
// @Tags invoice
// @Accept json
// @Produce json
// @Param request body service.PaymentPatch true "Fields to update"
// @Success 200 {object} APIResponse{data=domain.Invoice} "Updated invoice"
// @Failure 400 {object} APIResponse "Validation error"
// @Router /invoice/payment [patch]
func (h *InvoiceHandler) UpdatePayment(c *gin.Context) {
	var patch service.PaymentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	RespondOK(c, h.invoiceService.UpdatePayment(patch))
}

// AddItem handles POST /api/v1/invoice/items
// @Summary Add a line item
// @Description Append a line item; its amount and the invoice totals are derived
// @Tags invoice
// @Accept json
// @Produce json
// @Param request body service.LineItemInput true "Item to add"
// @Success 201 {object} APIResponse{data=domain.Invoice} "Updated invoice"
// @Failure 400 {object} APIResponse "Validation error"
// @Router /invoice/items [post]
func (h *InvoiceHandler) AddItem(c *gin.Context) {
	var input service.LineItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	RespondCreated(c, h.invoiceService.AddItem(input))
}

// UpdateItem handles PATCH /api/v1/invoice/items/:id
// @Summary Update a line item
// @Tags invoice
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body service.LineItemPatch true "Fields to update"
// @Success 200 {object} APIResponse{data=domain.Invoice} "Updated invoice"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 404 {object} APIResponse "Item not found"
// @Router /invoice/items/{id} [patch]
func (h *InvoiceHandler) UpdateItem(c *gin.Context) {
	var patch service.LineItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	inv, found := h.invoiceService.UpdateItem(c.Param("id"), patch)
	if !found {
		HandleError(c, domain.ErrItemNotFound)
		return
	}
	RespondOK(c, inv)
}

// RemoveItem handles DELETE /api/v1/invoice/items/:id
// @Summary Remove a line item
// @Tags invoice
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} APIResponse{data=domain.Invoice} "Updated invoice"
// @Failure 404 {object} APIResponse "Item not found"
// @Router /invoice/items/{id} [delete]
func (h *InvoiceHandler) RemoveItem(c *gin.Context) {
	inv, found := h.invoiceService.RemoveItem(c.Param("id"))
	if !found {
		HandleError(c, domain.ErrItemNotFound)
		return
	}
	RespondOK(c, inv)
}

// Recalculate handles POST /api/v1/invoice/recalculate
// @Summary Recompute derived totals
// @Tags invoice
// @Produce json
// @Success 200 {object} APIResponse{data=domain.Invoice} "Recomputed invoice"
// @Router /invoice/recalculate [post]
func (h *InvoiceHandler) Recalculate(c *gin.Context) {
	RespondOK(c, h.invoiceService.Recalculate())
}

// Reset handles POST /api/v1/invoice/reset
// @Summary Reset the editing session
// @Description Replace the record with fresh defaults; irreversible
// @Tags invoice
// @Produce json
// @Success 200 {object} APIResponse{data=domain.Invoice} "Fresh invoice"
// @Router /invoice/reset [post]
func (h *InvoiceHandler) Reset(c *gin.Context) {
	RespondOK(c, h.invoiceService.Reset())
}

// Validation handles GET /api/v1/invoice/validation
// @Summary Advisory readiness check
// @Description List human-readable problems blocking submission; empty means ready
// @Tags invoice
// @Produce json
// @Success 200 {object} APIResponse "Readiness report"
// @Router /invoice/validation [get]
func (h *InvoiceHandler) Validation(c *gin.Context) {
	problems := h.invoiceService.Readiness()
	RespondOK(c, gin.H{
		"ready":    len(problems) == 0,
		"problems": problems,
	})
}

// ExportCSV handles GET /api/v1/invoice/export/csv
// @Summary Export line items as CSV
// @Tags invoice
// @Produce text/csv
// @Success 200 {string} string "CSV content"
// @Router /invoice/export/csv [get]
func (h *InvoiceHandler) ExportCSV(c *gin.Context) {
	inv := h.invoiceService.Get()

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+export.BuildFilename(inv.InvoiceNumber, "csv")+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}
	w := export.NewWriter(c.Writer)
	if err := w.WriteInvoice(&inv); err != nil {
		log.Printf("csv export failed: %v", err)
		return
	}
	w.Flush()
}
