package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
	"github.com/barpos/comanda_backend/internal/dto"
	"github.com/barpos/comanda_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tabHandler handles HTTP requests related to tabs.
type tabHandler struct {
	tabService portssvc.TabSvcFacade
}

func newTabHandler(ts portssvc.TabSvcFacade) *tabHandler {
	return &tabHandler{tabService: ts}
}

// registerTabRoutes registers tab routes on the given group.
func registerTabRoutes(tabs *gin.RouterGroup, tabService portssvc.TabSvcFacade) {
	h := newTabHandler(tabService)

	tabs.GET("", h.listTabs)
	tabs.POST("", h.createTab)
	tabs.GET("/:tabID", h.getTab)
	tabs.POST("/:tabID/close", h.closeTab)
	tabs.DELETE("/:tabID", h.removeTab)
}

// listTabs godoc
// @Summary List tabs
// @Description Returns every tab ordered by id, optionally filtered by status
// @Tags tabs
// @Produce  json
// @Param   status query string false "OPEN or CLOSED"
// @Success 200 {array} dto.TabResponse
// @Failure 400 {object} ErrorResponse "Invalid status filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list tabs"
// @Security BearerAuth
// @Router /tabs [get]
func (h *tabHandler) listTabs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTabsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	tabs, err := h.tabService.ListTabs(c.Request.Context(), params.TabStatus())
	if err != nil {
		respondServiceError(c, logger, err, "list tabs")
		return
	}
	c.JSON(http.StatusOK, dto.ToTabResponses(tabs))
}

// createTab godoc
// @Summary Open a tab
// @Description Opens a tab for the customer. When an open tab already carries the label it is returned with 200 instead of 201.
// @Tags tabs
// @Accept  json
// @Produce  json
// @Param   tab body dto.CreateTabRequest true "Customer label"
// @Success 201 {object} dto.TabResponse
// @Success 200 {object} dto.TabResponse "Open tab with the same label"
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create tab"
// @Security BearerAuth
// @Router /tabs [post]
func (h *tabHandler) createTab(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	tab, existed, err := h.tabService.CreateTab(c.Request.Context(), req.CustomerLabel)
	if err != nil {
		respondServiceError(c, logger, err, "create tab")
		return
	}

	status := http.StatusCreated
	if existed {
		status = http.StatusOK
	}
	logger.Info("Tab opened", slog.Int("tab_id", tab.TabID), slog.Bool("existed", existed))
	c.JSON(status, dto.ToTabResponse(tab))
}

// getTab godoc
// @Summary Get a tab
// @Tags tabs
// @Produce  json
// @Param   tabID path int true "Tab ID"
// @Success 200 {object} dto.TabResponse
// @Failure 400 {object} ErrorResponse "Invalid tab ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Tab not found"
// @Failure 500 {object} ErrorResponse "Failed to get tab"
// @Security BearerAuth
// @Router /tabs/{tabID} [get]
func (h *tabHandler) getTab(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tabID, ok := intParam(c, "tabID")
	if !ok {
		return
	}

	tab, err := h.tabService.GetTab(c.Request.Context(), tabID)
	if err != nil {
		respondServiceError(c, logger.With(slog.Int("tab_id", tabID)), err, "get tab")
		return
	}
	c.JSON(http.StatusOK, dto.ToTabResponse(tab))
}

// closeTab godoc
// @Summary Close a tab
// @Description Zeroes the balance and marks the tab closed, whatever it held
// @Tags tabs
// @Produce  json
// @Param   tabID path int true "Tab ID"
// @Success 200 {object} dto.TabResponse
// @Failure 400 {object} ErrorResponse "Invalid tab ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Tab not found"
// @Failure 500 {object} ErrorResponse "Failed to close tab"
// @Security BearerAuth
// @Router /tabs/{tabID}/close [post]
func (h *tabHandler) closeTab(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tabID, ok := intParam(c, "tabID")
	if !ok {
		return
	}
	logger = logger.With(slog.Int("tab_id", tabID))

	tab, err := h.tabService.CloseTab(c.Request.Context(), tabID)
	if err != nil {
		respondServiceError(c, logger, err, "close tab")
		return
	}

	logger.Info("Tab closed")
	c.JSON(http.StatusOK, dto.ToTabResponse(tab))
}

// removeTab godoc
// @Summary Remove a tab
// @Description Deletes the tab. Its ledger records are kept.
// @Tags tabs
// @Param   tabID path int true "Tab ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid tab ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Tab not found"
// @Failure 500 {object} ErrorResponse "Failed to remove tab"
// @Security BearerAuth
// @Router /tabs/{tabID} [delete]
func (h *tabHandler) removeTab(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tabID, ok := intParam(c, "tabID")
	if !ok {
		return
	}
	logger = logger.With(slog.Int("tab_id", tabID))

	if err := h.tabService.RemoveTab(c.Request.Context(), tabID); err != nil {
		respondServiceError(c, logger, err, "remove tab")
		return
	}

	logger.Info("Tab removed")
	c.Status(http.StatusNoContent)
}
