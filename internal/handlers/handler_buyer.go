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

// buyerHandler handles HTTP requests related to buyers.
type buyerHandler struct {
	buyerService portssvc.BuyerSvcFacade
}

// newBuyerHandler creates a new buyerHandler.
func newBuyerHandler(bs portssvc.BuyerSvcFacade) *buyerHandler {
	return &buyerHandler{
		buyerService: bs,
	}
}

// RegisterBuyerRoutes registers routes related to buyers.
func RegisterBuyerRoutes(rg *gin.RouterGroup, buyerService portssvc.BuyerSvcFacade) {
	h := newBuyerHandler(buyerService)

	buyers := rg.Group("/buyers")
	{
		buyers.POST("", h.createBuyer)
		buyers.GET("", h.listBuyers)
		buyers.GET("/:buyerID", h.getBuyer)
		buyers.PUT("/:buyerID", h.updateBuyer)
	}
}

// createBuyer godoc
// @Summary Create a new buyer
// @Description Adds a new buyer that invoices can reference
// @Tags buyers
// @Accept  json
// @Produce  json
// @Param   buyer body dto.CreateBuyerRequest true "Buyer details"
// @Success 201 {object} dto.BuyerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create buyer"
// @Router /buyers [post]
func (h *buyerHandler) createBuyer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBuyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBuyer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdBuyer, err := h.buyerService.CreateBuyer(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Buyer created successfully", slog.String("buyer_id", createdBuyer.BuyerID))
	c.JSON(http.StatusCreated, dto.ToBuyerResponse(createdBuyer))
}

// getBuyer godoc
// @Summary Get a buyer by id
// @Tags buyers
// @Produce  json
// @Param   buyerID path string true "Buyer ID"
// @Success 200 {object} dto.BuyerResponse
// @Failure 404 {object} map[string]string "Buyer not found"
// @Failure 500 {object} map[string]string "Failed to retrieve buyer"
// @Router /buyers/{buyerID} [get]
func (h *buyerHandler) getBuyer(c *gin.Context) {
	buyerID := c.Param("buyerID")

	buyer, err := h.buyerService.GetBuyer(c.Request.Context(), buyerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBuyerResponse(buyer))
}

// listBuyers godoc
// @Summary List buyers
// @Tags buyers
// @Produce  json
// @Param   limit query int false "Maximum number of buyers to return"
// @Success 200 {object} map[string][]dto.BuyerResponse
// @Failure 500 {object} map[string]string "Failed to list buyers"
// @Router /buyers [get]
func (h *buyerHandler) listBuyers(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	buyers, err := h.buyerService.ListBuyers(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"buyers": dto.ToBuyerResponses(buyers)})
}

// updateBuyer godoc
// @Summary Update a buyer's contact details
// @Tags buyers
// @Accept  json
// @Produce  json
// @Param   buyerID path string true "Buyer ID"
// @Param   buyer body dto.UpdateBuyerRequest true "Fields to update"
// @Success 200 {object} dto.BuyerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Buyer not found"
// @Failure 500 {object} map[string]string "Failed to update buyer"
// @Router /buyers/{buyerID} [put]
func (h *buyerHandler) updateBuyer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	buyerID := c.Param("buyerID")

	var req dto.UpdateBuyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBuyer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updatedBuyer, err := h.buyerService.UpdateBuyer(c.Request.Context(), buyerID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Buyer updated successfully", slog.String("buyer_id", buyerID))
	c.JSON(http.StatusOK, dto.ToBuyerResponse(updatedBuyer))
}
