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

// workingCapitalHandler handles HTTP requests for AR/AP/inventory rows.
type workingCapitalHandler struct {
	wcService portssvc.WorkingCapitalSvcFacade
}

func newWorkingCapitalHandler(ws portssvc.WorkingCapitalSvcFacade) *workingCapitalHandler {
	return &workingCapitalHandler{wcService: ws}
}

// registerWorkingCapitalRoutes registers routes for working-capital rows.
func registerWorkingCapitalRoutes(rg *gin.RouterGroup, wcService portssvc.WorkingCapitalSvcFacade) {
	h := newWorkingCapitalHandler(wcService)

	wcGroup := rg.Group("/working-capital")
	{
		wcGroup.GET("", h.listEntries)
		wcGroup.POST("", h.createEntry)
		wcGroup.PUT("/:entry_id", h.updateEntry)
		wcGroup.DELETE("/:entry_id", h.deleteEntry)
	}
}

// listEntries godoc
// @Summary List working-capital rows
// @Description Lists AR/AP rows for a book year, or inventory rows across all years. yearLabel is ignored for INVENTORY.
// @Tags working-capital
// @Produce json
// @Param kind query string true "Row kind: AR, AP or INVENTORY"
// @Param yearLabel query string false "Book year label (required for AR and AP)"
// @Success 200 {array} dto.WorkingCapitalEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /working-capital [get]
func (h *workingCapitalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kind := domain.WorkingCapitalKind(c.Query("kind"))
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid kind. Use AR, AP or INVENTORY"})
		return
	}

	var yearLabel *string
	if raw := c.Query("yearLabel"); raw != "" {
		yearLabel = &raw
	}
	if kind != domain.KindInventory && yearLabel == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "yearLabel query parameter required for AR and AP"})
		return
	}

	entries, err := h.wcService.ListEntries(c.Request.Context(), yearLabel, kind)
	if err != nil {
		logger.Error("Failed to list working capital entries", slog.String("kind", string(kind)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list working capital entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkingCapitalEntryResponses(entries))
}

// createEntry godoc
// @Summary Create a working-capital row
// @Tags working-capital
// @Accept json
// @Produce json
// @Param entry body dto.CreateWorkingCapitalEntryRequest true "Working Capital Entry"
// @Success 201 {object} dto.WorkingCapitalEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /working-capital [post]
func (h *workingCapitalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWorkingCapitalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.wcService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create working capital entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create working capital entry"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkingCapitalEntryResponse(*entry))
}

// updateEntry godoc
// @Summary Update a working-capital row
// @Tags working-capital
// @Accept json
// @Produce json
// @Param entry_id path string true "Entry ID"
// @Param entry body dto.UpdateWorkingCapitalEntryRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /working-capital/{entry_id} [put]
func (h *workingCapitalHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entry_id")

	var req dto.UpdateWorkingCapitalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.wcService.UpdateEntry(c.Request.Context(), entryID, req); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Working capital entry not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update working capital entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update working capital entry"})
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteEntry godoc
// @Summary Delete a working-capital row
// @Tags working-capital
// @Produce json
// @Param entry_id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /working-capital/{entry_id} [delete]
func (h *workingCapitalHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entry_id")

	if err := h.wcService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Working capital entry not found"})
			return
		}
		logger.Error("Failed to delete working capital entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete working capital entry"})
		return
	}

	c.Status(http.StatusNoContent)
}
