package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicegen/internal/domain"
	"invoicegen/internal/export"
	"invoicegen/internal/service"
	"invoicegen/internal/validator"
)

// GSTInvoiceHandler handles the GST invoice editing endpoints.
type GSTInvoiceHandler struct {
	gstService service.GSTInvoiceService
	engine     *validator.Engine
}

// NewGSTInvoiceHandler creates a new GSTInvoiceHandler.
func NewGSTInvoiceHandler(gstService service.GSTInvoiceService, engine *validator.Engine) *GSTInvoiceHandler {
	return &GSTInvoiceHandler{gstService: gstService, engine: engine}
}

// Get handles GET /api/v1/gst-invoice
// @Summary Get the GST invoice under edit
// @Description Get the current GST invoice record with all derived tax fields
// @Tags gst-invoice
// @Produce json
// @Success 200 {object} APIResponse{data=domain.GSTInvoice} "Current invoice"
// @Router /gst-invoice [get]
func (h *GSTInvoiceHandler) Get(c *gin.Context) {
	RespondOK(c, h.gstService.Get())
}

// Update handles PATCH /api/v1/gst-invoice
// @Summary Update GST invoice fields
// @Description Merge partial header, party, bank and supply-type fields. Changing
// @Description the supply type recomputes the tax split of every item.
// @Tags gst-invoice
// @Accept json
// @Produce json
// @Param request body service.GSTInvoicePatch true "Fields to update"
// @Success 200 {object} APIResponse{data=domain.GSTInvoice} "Updated invoice"
// @Failure 400 {object} APIResponse "Validation error"
// @Router /gst-invoice [patch]
func (h *GSTInvoiceHandler) Update(c *gin.Context) {
	var patch service.GSTInvoicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	inv, err := h.gstService.UpdateInvoice(patch)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

// AddItem handles POST /api/v1/gst-invoice/items
// @Summary Add a GST line item
// @Description Append an item; taxable value and GST amounts are derived from
// @Description the current supply type.
// @Tags gst-invoice
// @Accept json
// @Produce json
// @Param request body service.GSTItemInput true "Item to add"
// @Success 201 {object} APIResponse{data=domain.GSTInvoice} "Updated invoice"
// @Failure 400 {object} APIResponse "Validation error"
// @Router /gst-invoice/items [post]
func (h *GSTInvoiceHandler) AddItem(c *gin.Context) {
	var input service.GSTItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	RespondCreated(c, h.gstService.AddItem(input))
}

// UpdateItem handles PATCH /api/v1/gst-invoice/items/:id
// @Summary Update a GST line item
// @Tags gst-invoice
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body service.GSTItemPatch true "Fields to update"
// @Success 200 {object} APIResponse{data=domain.GSTInvoice} "Updated invoice"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 404 {object} APIResponse "Item not found"
// @Router /gst-invoice/items/{id} [patch]
func (h *GSTInvoiceHandler) UpdateItem(c *gin.Context) {
	var patch service.GSTItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	inv, found := h.gstService.UpdateItem(c.Param("id"), patch)
	if !found {
		HandleError(c, domain.ErrItemNotFound)
		return
	}
	RespondOK(c, inv)
}

// RemoveItem handles DELETE /api/v1/gst-invoice/items/:id
// @Summary Remove a GST line item
// @Tags gst-invoice
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} APIResponse{data=domain.GSTInvoice} "Updated invoice"
// @Failure 404 {object} APIResponse "Item not found"
// @Router /gst-invoice/items/{id} [delete]
func (h *GSTInvoiceHandler) RemoveItem(c *gin.Context) {
	inv, found := h.gstService.RemoveItem(c.Param("id"))
	if !found {
		HandleError(c, domain.ErrItemNotFound)
		return
	}
	RespondOK(c, inv)
}

// Recalculate handles POST /api/v1/gst-invoice/recalculate
// @Summary Recompute derived tax fields and totals
// @Tags gst-invoice
// @Produce json
// @Success 200 {object} APIResponse{data=domain.GSTInvoice} "Recomputed invoice"
// @Router /gst-invoice/recalculate [post]
func (h *GSTInvoiceHandler) Recalculate(c *gin.Context) {
	RespondOK(c, h.gstService.Recalculate())
}

// Reset handles POST /api/v1/gst-invoice/reset
// @Summary Reset the GST editing session
// @Description Replace the record with fresh defaults; irreversible
// @Tags gst-invoice
// @Produce json
// @Success 200 {object} APIResponse{data=domain.GSTInvoice} "Fresh invoice"
// @Router /gst-invoice/reset [post]
func (h *GSTInvoiceHandler) Reset(c *gin.Context) {
	RespondOK(c, h.gstService.Reset())
}

// Validation handles GET /api/v1/gst-invoice/validation
// @Summary Run compliance validation
// @Description Run the registered required-field and format rules against the
// @Description current record and report per-rule results
// @Tags gst-invoice
// @Produce json
// @Success 200 {object} APIResponse{data=validator.Report} "Validation report"
// @Router /gst-invoice/validation [get]
func (h *GSTInvoiceHandler) Validation(c *gin.Context) {
	inv := h.gstService.Get()
	report := h.engine.Validate(c.Request.Context(), &inv)
	RespondOK(c, report)
}

// ExportCSV handles GET /api/v1/gst-invoice/export/csv
// @Summary Export GST line items as CSV
// @Tags gst-invoice
// @Produce text/csv
// @Success 200 {string} string "CSV content"
// @Router /gst-invoice/export/csv [get]
func (h *GSTInvoiceHandler) ExportCSV(c *gin.Context) {
	inv := h.gstService.Get()

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+export.BuildFilename(inv.InvoiceNumber, "csv")+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}
	w := export.NewWriter(c.Writer)
	if err := w.WriteGSTInvoice(&inv); err != nil {
		log.Printf("csv export failed: %v", err)
		return
	}
	w.Flush()
}

// ExportXLSX handles GET /api/v1/gst-invoice/export/xlsx
// @Summary Export the GST invoice as an Excel workbook
// @Tags gst-invoice
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {string} string "XLSX content"
// @Failure 500 {object} APIResponse "Export error"
// @Router /gst-invoice/export/xlsx [get]
func (h *GSTInvoiceHandler) ExportXLSX(c *gin.Context) {
	inv := h.gstService.Get()

	f, err := export.BuildGSTWorkbook(&inv)
	if err != nil {
		log.Printf("xlsx export failed: %v", err)
		RespondError(c, http.StatusInternalServerError, "EXPORT_ERROR", "failed to build workbook")
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+export.BuildFilename(inv.InvoiceNumber, "xlsx")+`"`)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		log.Printf("xlsx export failed: %v", err)
	}
}
