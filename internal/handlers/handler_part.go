package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/partstrack/parts_inventory_app/internal/core/ports/services"
	"github.com/partstrack/parts_inventory_app/internal/dto"
	"github.com/partstrack/parts_inventory_app/internal/middleware"
)

// partHandler handles HTTP requests related to parts and their stock movements.
type partHandler struct {
	partService portssvc.PartSvcFacade
}

// newPartHandler creates a new partHandler.
func newPartHandler(ps portssvc.PartSvcFacade) *partHandler {
	return &partHandler{
		partService: ps,
	}
}

// RegisterPartRoutes registers routes related to parts.
func RegisterPartRoutes(rg *gin.RouterGroup, partService portssvc.PartSvcFacade) {
	h := newPartHandler(partService)

	parts := rg.Group("/parts")
	{
		parts.POST("", h.createPart)
		parts.GET("", h.listParts)
		parts.GET("/:partID", h.getPart)
		parts.PUT("/:partID", h.updatePart)
		parts.GET("/:partID/transactions", h.listPartTransactions)
		parts.POST("/:partID/receipts", h.recordInboundReceipt)
		parts.POST("/:partID/adjustments", h.recordAdjustment)
	}
}

// createPart godoc
// @Summary Create a new part
// @Description Adds a new part to the catalog with its starting inventory
// @Tags parts
// @Accept  json
// @Produce  json
// @Param   part body dto.CreatePartRequest true "Part details"
// @Success 201 {object} dto.PartResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Part number already exists"
// @Failure 500 {object} map[string]string "Failed to create part"
// @Router /parts [post]
func (h *partHandler) createPart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePart", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create part", slog.String("part_id", req.PartID))

	createdPart, err := h.partService.CreatePart(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Part created successfully", slog.String("part_id", createdPart.PartID))
	c.JSON(http.StatusCreated, dto.ToPartResponse(createdPart))
}

// getPart godoc
// @Summary Get a part by its part number
// @Description Retrieves details and current on-hand inventory for a part
// @Tags parts
// @Produce  json
// @Param   partID path string true "Part number"
// @Success 200 {object} dto.PartResponse
// @Failure 404 {object} map[string]string "Part not found"
// @Failure 500 {object} map[string]string "Failed to retrieve part"
// @Router /parts/{partID} [get]
func (h *partHandler) getPart(c *gin.Context) {
	partID := c.Param("partID")

	part, err := h.partService.GetPart(c.Request.Context(), partID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPartResponse(part))
}

// listParts godoc
// @Summary List parts
// @Description Retrieves parts, optionally filtered by category and status
// @Tags parts
// @Produce  json
// @Param   category query string false "Category filter"
// @Param   status query string false "Status filter (ACTIVE or INACTIVE)"
// @Param   limit query int false "Maximum number of parts to return"
// @Success 200 {object} map[string][]dto.PartResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list parts"
// @Router /parts [get]
func (h *partHandler) listParts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPartsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListParts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	parts, err := h.partService.ListParts(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"parts": dto.ToPartResponses(parts)})
}

// updatePart godoc
// @Summary Update a part's details
// @Description Updates descriptive fields of a part. Inventory is not editable here; it only moves through ledger operations.
// @Tags parts
// @Accept  json
// @Produce  json
// @Param   partID path string true "Part number"
// @Param   part body dto.UpdatePartRequest true "Fields to update"
// @Success 200 {object} dto.PartResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Part not found"
// @Failure 500 {object} map[string]string "Failed to update part"
// @Router /parts/{partID} [put]
func (h *partHandler) updatePart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partID := c.Param("partID")

	var req dto.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePart", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updatedPart, err := h.partService.UpdatePart(c.Request.Context(), partID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Part updated successfully", slog.String("part_id", partID))
	c.JSON(http.StatusOK, dto.ToPartResponse(updatedPart))
}

// listPartTransactions godoc
// @Summary List a part's ledger rows
// @Description Retrieves the stock movement history of a part, newest first
// @Tags parts
// @Produce  json
// @Param   partID path string true "Part number"
// @Param   limit query int false "Maximum number of rows to return"
// @Success 200 {object} map[string][]dto.TransactionResponse
// @Failure 404 {object} map[string]string "Part not found"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /parts/{partID}/transactions [get]
func (h *partHandler) listPartTransactions(c *gin.Context) {
	partID := c.Param("partID")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	txns, err := h.partService.ListPartTransactions(c.Request.Context(), partID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": dto.ToTransactionResponses(txns)})
}

// recordInboundReceipt godoc
// @Summary Record received stock
// @Description Appends an inbound ledger row for the part and increases its on-hand inventory
// @Tags parts
// @Accept  json
// @Produce  json
// @Param   partID path string true "Part number"
// @Param   receipt body dto.InboundReceiptRequest true "Receipt details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Part not found"
// @Failure 500 {object} map[string]string "Failed to record receipt"
// @Router /parts/{partID}/receipts [post]
func (h *partHandler) recordInboundReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partID := c.Param("partID")

	var req dto.InboundReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordInboundReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to record inbound receipt",
		slog.String("part_id", partID),
		slog.Int("quantity", req.Quantity))

	txn, part, err := h.partService.RecordInboundReceipt(c.Request.Context(), partID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Inbound receipt recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, gin.H{
		"transaction": dto.ToTransactionResponse(txn),
		"part":        dto.ToPartResponse(part),
	})
}

// recordAdjustment godoc
// @Summary Record a manual stock correction
// @Description Appends an adjustment ledger row for the part with a required reason
// @Tags parts
// @Accept  json
// @Produce  json
// @Param   partID path string true "Part number"
// @Param   adjustment body dto.AdjustmentRequest true "Adjustment details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Part not found"
// @Failure 500 {object} map[string]string "Failed to record adjustment"
// @Router /parts/{partID}/adjustments [post]
func (h *partHandler) recordAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partID := c.Param("partID")

	var req dto.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordAdjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to record adjustment",
		slog.String("part_id", partID),
		slog.Int("quantity", req.Quantity))

	txn, part, err := h.partService.RecordAdjustment(c.Request.Context(), partID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Adjustment recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, gin.H{
		"transaction": dto.ToTransactionResponse(txn),
		"part":        dto.ToPartResponse(part),
	})
}
