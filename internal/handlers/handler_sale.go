package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
	"github.com/barpos/comanda_backend/internal/dto"
	"github.com/barpos/comanda_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

// saleHandler handles posting sales and reading them back from the ledger.
type saleHandler struct {
	checkoutService portssvc.CheckoutSvc
	ledgerService   portssvc.LedgerReaderSvc
}

func newSaleHandler(cs portssvc.CheckoutSvc, ls portssvc.LedgerReaderSvc) *saleHandler {
	return &saleHandler{checkoutService: cs, ledgerService: ls}
}

func registerSaleRoutes(rg *gin.RouterGroup, tabs *gin.RouterGroup, checkoutService portssvc.CheckoutSvc, ledgerService portssvc.LedgerReaderSvc) {
	h := newSaleHandler(checkoutService, ledgerService)

	rg.POST("/sales", h.createSale)
	tabs.GET("/:tabID/sales", h.listSales)
	tabs.GET("/:tabID/sales/export", h.exportSales)
}

// createSale godoc
// @Summary Post a sale
// @Description Posts the cart to the tab for the authenticated operator, then prints the receipt and commission vouchers. A printer failure still answers 201 and the response carries the print error.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Cart"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} ErrorResponse "Invalid input, unknown tab or unknown product"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Ledger record already exists"
// @Failure 500 {object} ErrorResponse "Failed to post sale"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.Int("tab_id", req.TabID))
	result, err := h.checkoutService.Checkout(c.Request.Context(), req.ToCheckoutRequest(operatorID))
	if err != nil {
		respondServiceError(c, logger, err, "post sale")
		return
	}

	logger.Info("Sale posted",
		slog.Int("sequence_id", result.Sale.SequenceID),
		slog.String("total", result.Sale.TotalAmount.StringFixed(2)),
		slog.Bool("printed", result.Printed),
	)
	c.JSON(http.StatusCreated, dto.ToCheckoutResponse(result))
}

// listSales godoc
// @Summary List a tab's sales
// @Description Returns the sales recorded for the tab, newest first, with the running total
// @Tags sales
// @Produce  json
// @Param   tabID path int true "Tab ID"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} ErrorResponse "Invalid tab ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to load sales"
// @Security BearerAuth
// @Router /tabs/{tabID}/sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tabID, ok := intParam(c, "tabID")
	if !ok {
		return
	}

	sales, err := h.ledgerService.LoadSalesForTab(c.Request.Context(), tabID)
	if err != nil {
		respondServiceError(c, logger.With(slog.Int("tab_id", tabID)), err, "load sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSalesResponse(tabID, sales))
}

// exportSales godoc
// @Summary Export a tab's sales as CSV
// @Description Writes one CSV row per sale line in ledger order
// @Tags sales
// @Produce  text/csv
// @Param   tabID path int true "Tab ID"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} ErrorResponse "Invalid tab ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to export sales"
// @Security BearerAuth
// @Router /tabs/{tabID}/sales/export [get]
func (h *saleHandler) exportSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tabID, ok := intParam(c, "tabID")
	if !ok {
		return
	}
	logger = logger.With(slog.Int("tab_id", tabID))

	sales, err := h.ledgerService.LoadSalesForTab(c.Request.Context(), tabID)
	if err != nil {
		respondServiceError(c, logger, err, "export sales")
		return
	}

	csvText, err := gocsv.MarshalString(dto.ToSaleExportRows(sales))
	if err != nil {
		logger.Error("Failed to encode sales export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export sales"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=tab-%05d-sales.csv", tabID))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
}
