package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/investia/investia_backend/internal/apperrors"
	"github.com/investia/investia_backend/internal/core/domain"
	portssvc "github.com/investia/investia_backend/internal/core/ports/services"
	"github.com/investia/investia_backend/internal/dto"
	"github.com/investia/investia_backend/internal/middleware"
)

// budgetHandler handles HTTP requests for budget years and budget entries.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers routes for budget years and budget entries.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	years := rg.Group("/years")
	{
		years.GET("", h.listBudgetYears)
		years.POST("", h.createBudgetYear)
		years.PUT("/:year_label/opening-cash", h.updateOpeningCash)
		years.PUT("/:year_label/savings-target", h.updateSavingsTarget)
	}

	entries := rg.Group("/budget-entries")
	{
		entries.GET("", h.listBudgetEntries)
		entries.POST("", h.createBudgetEntry)
		entries.PUT("/:entry_id", h.updateBudgetEntry)
		entries.DELETE("/:entry_id", h.deleteBudgetEntry)
	}
}

// listBudgetYears godoc
// @Summary List budget years
// @Tags budget
// @Produce json
// @Success 200 {array} dto.BudgetYearResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /years [get]
func (h *budgetHandler) listBudgetYears(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	years, err := h.budgetService.ListBudgetYears(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list budget years", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list budget years"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetYearResponses(years))
}

// createBudgetYear godoc
// @Summary Create a budget year
// @Tags budget
// @Accept json
// @Produce json
// @Param year body dto.CreateBudgetYearRequest true "Budget Year"
// @Success 201 {object} dto.BudgetYearResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /years [post]
func (h *budgetHandler) createBudgetYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBudgetYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	year, err := h.budgetService.CreateBudgetYear(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Budget year already exists"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create budget year", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create budget year"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToBudgetYearResponse(*year))
}

// updateOpeningCash godoc
// @Summary Update a year's opening cash
// @Tags budget
// @Accept json
// @Produce json
// @Param year_label path string true "Budget year label"
// @Param body body dto.UpdateOpeningCashRequest true "Opening Cash"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /years/{year_label}/opening-cash [put]
func (h *budgetHandler) updateOpeningCash(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	yearLabel := c.Param("year_label")

	var req dto.UpdateOpeningCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.budgetService.UpdateOpeningCash(c.Request.Context(), yearLabel, req.OpeningCash); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Budget year not found"})
			return
		}
		logger.Error("Failed to update opening cash", slog.String("year_label", yearLabel), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update opening cash"})
		return
	}

	c.Status(http.StatusNoContent)
}

// updateSavingsTarget godoc
// @Summary Update a year's savings target
// @Tags budget
// @Accept json
// @Produce json
// @Param year_label path string true "Budget year label"
// @Param body body dto.UpdateSavingsTargetRequest true "Savings Target"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /years/{year_label}/savings-target [put]
func (h *budgetHandler) updateSavingsTarget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	yearLabel := c.Param("year_label")

	var req dto.UpdateSavingsTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.budgetService.UpdateSavingsTarget(c.Request.Context(), yearLabel, req.SavingsTarget); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Budget year not found"})
			return
		}
		logger.Error("Failed to update savings target", slog.String("year_label", yearLabel), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update savings target"})
		return
	}

	c.Status(http.StatusNoContent)
}

// listBudgetEntries godoc
// @Summary List budget entries for a year
// @Tags budget
// @Produce json
// @Param yearLabel query string true "Budget year label"
// @Param budgetType query string false "Filter by budget type: income, year, semester1 or semester2"
// @Success 200 {array} dto.BudgetEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget-entries [get]
func (h *budgetHandler) listBudgetEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	yearLabel := c.Query("yearLabel")
	if yearLabel == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "yearLabel query parameter required"})
		return
	}

	var budgetType *domain.BudgetType
	if raw := c.Query("budgetType"); raw != "" {
		bt := domain.BudgetType(raw)
		if !bt.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid budgetType. Use income, year, semester1 or semester2"})
			return
		}
		budgetType = &bt
	}

	entries, err := h.budgetService.ListBudgetEntries(c.Request.Context(), yearLabel, budgetType)
	if err != nil {
		logger.Error("Failed to list budget entries", slog.String("year_label", yearLabel), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list budget entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetEntryResponses(entries))
}

// createBudgetEntry godoc
// @Summary Create a budget entry
// @Tags budget
// @Accept json
// @Produce json
// @Param entry body dto.CreateBudgetEntryRequest true "Budget Entry"
// @Success 201 {object} dto.BudgetEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget-entries [post]
func (h *budgetHandler) createBudgetEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBudgetEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.budgetService.CreateBudgetEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Budget entry already exists for this category and type"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create budget entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create budget entry"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToBudgetEntryResponse(*entry))
}

// updateBudgetEntry godoc
// @Summary Update a budget entry
// @Tags budget
// @Accept json
// @Produce json
// @Param entry_id path string true "Budget Entry ID"
// @Param entry body dto.UpdateBudgetEntryRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget-entries/{entry_id} [put]
func (h *budgetHandler) updateBudgetEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entry_id")

	var req dto.UpdateBudgetEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.budgetService.UpdateBudgetEntry(c.Request.Context(), entryID, req); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Budget entry not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update budget entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update budget entry"})
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteBudgetEntry godoc
// @Summary Delete a budget entry
// @Tags budget
// @Produce json
// @Param entry_id path string true "Budget Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget-entries/{entry_id} [delete]
func (h *budgetHandler) deleteBudgetEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entry_id")

	if err := h.budgetService.DeleteBudgetEntry(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Budget entry not found"})
			return
		}
		logger.Error("Failed to delete budget entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete budget entry"})
		return
	}

	c.Status(http.StatusNoContent)
}
