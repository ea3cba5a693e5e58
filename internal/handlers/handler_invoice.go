package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	portssvc "github.com/partstrack/parts_inventory_app/internal/core/ports/services"
	"github.com/partstrack/parts_inventory_app/internal/dto"
	"github.com/partstrack/parts_inventory_app/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices and their
// lifecycle transitions.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// RegisterInvoiceRoutes registers routes related to invoices.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.GET("/:invoiceID/transactions", h.listInvoiceTransactions)
		invoices.POST("/:invoiceID/finalize", h.finalizeInvoice)
		invoices.POST("/:invoiceID/void", h.voidInvoice)
		invoices.POST("/:invoiceID/payments", h.markInvoicePaid)
	}
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Creates a Draft invoice. With finalize=true the invoice is created and finalized in one call, which requires direct finalize to be enabled.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   finalize query bool false "Create and finalize in one call"
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Buyer or part not found"
// @Failure 409 {object} map[string]string "Invoice number already exists, or direct finalize disabled"
// @Failure 500 {object} map[string]interface{} "Reconciliation partially applied"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	directFinalize := c.Query("finalize") == "true"
	logger.Info("Received request to create invoice",
		slog.String("invoice_number", req.InvoiceNumber),
		slog.Bool("direct_finalize", directFinalize))

	var (
		createdInvoice *domain.Invoice
		err            error
	)
	if directFinalize {
		createdInvoice, err = h.invoiceService.CreateAndFinalizeInvoice(c.Request.Context(), req)
	} else {
		createdInvoice, err = h.invoiceService.CreateInvoice(c.Request.Context(), req)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Invoice created successfully",
		slog.String("invoice_id", createdInvoice.InvoiceID),
		slog.String("status", string(createdInvoice.Status)))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(createdInvoice))
}

// getInvoice godoc
// @Summary Get an invoice by id
// @Tags invoices
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	invoiceID := c.Param("invoiceID")

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves invoices, optionally filtered by status and buyer
// @Tags invoices
// @Produce  json
// @Param   status query string false "Status filter (DRAFT, FINALIZED, PAID, VOID)"
// @Param   buyerID query string false "Buyer filter"
// @Param   limit query int false "Maximum number of invoices to return"
// @Success 200 {object} map[string][]dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListInvoices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": dto.ToInvoiceResponses(invoices)})
}

// listInvoiceTransactions godoc
// @Summary List the ledger rows written for an invoice
// @Description Retrieves the sale rows from finalization and, for voided invoices, the reversing rows
// @Tags invoices
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} map[string][]dto.TransactionResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /invoices/{invoiceID}/transactions [get]
func (h *invoiceHandler) listInvoiceTransactions(c *gin.Context) {
	invoiceID := c.Param("invoiceID")

	txns, err := h.invoiceService.ListInvoiceTransactions(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": dto.ToTransactionResponses(txns)})
}

// finalizeInvoice godoc
// @Summary Finalize a draft invoice
// @Description Writes an outbound ledger row per line item, decrements inventory and moves the invoice to Finalized. On a mid-sequence failure the response details which line items were applied.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Param   lineItems body dto.FinalizeInvoiceRequest true "Line items to materialize"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice or part not found"
// @Failure 409 {object} map[string]string "Invoice is not a draft"
// @Failure 500 {object} map[string]interface{} "Reconciliation partially applied"
// @Router /invoices/{invoiceID}/finalize [post]
func (h *invoiceHandler) finalizeInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	var req dto.FinalizeInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FinalizeInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to finalize invoice",
		slog.String("invoice_id", invoiceID),
		slog.Int("line_items", len(req.LineItems)))

	invoice, err := h.invoiceService.FinalizeInvoice(c.Request.Context(), invoiceID, req.LineItems)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Invoice finalized", slog.String("invoice_id", invoiceID))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// voidInvoice godoc
// @Summary Void an invoice
// @Description Appends a reversing ledger row per sale row of the invoice, restoring stock, and moves the invoice to Void
// @Tags invoices
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Invoice cannot be voided from its current status"
// @Failure 500 {object} map[string]interface{} "Reconciliation partially applied"
// @Router /invoices/{invoiceID}/void [post]
func (h *invoiceHandler) voidInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	logger.Info("Received request to void invoice", slog.String("invoice_id", invoiceID))

	invoice, err := h.invoiceService.VoidInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Invoice voided", slog.String("invoice_id", invoiceID))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// markInvoicePaid godoc
// @Summary Mark an invoice as paid
// @Description Moves a Finalized invoice to Paid. No ledger effect.
// @Tags invoices
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Invoice is not finalized"
// @Failure 500 {object} map[string]string "Failed to mark invoice paid"
// @Router /invoices/{invoiceID}/payments [post]
func (h *invoiceHandler) markInvoicePaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	invoice, err := h.invoiceService.MarkInvoicePaid(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Invoice marked paid", slog.String("invoice_id", invoiceID))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}
