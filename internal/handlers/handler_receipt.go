package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
	"github.com/barpos/comanda_backend/internal/dto"
	"github.com/barpos/comanda_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receiptHandler previews and reprints receipts of posted sales.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

func registerReceiptRoutes(tabs *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	sale := tabs.Group("/:tabID/sales/:sequenceID")
	{
		sale.GET("/receipt", h.previewReceipt)
		sale.POST("/print", h.printReceipt)
		sale.POST("/print-commissions", h.printCommissions)
	}
}

func saleParams(c *gin.Context) (tabID, sequenceID int, ok bool) {
	if tabID, ok = intParam(c, "tabID"); !ok {
		return 0, 0, false
	}
	if sequenceID, ok = intParam(c, "sequenceID"); !ok {
		return 0, 0, false
	}
	return tabID, sequenceID, true
}

// previewReceipt godoc
// @Summary Preview a sale receipt
// @Description Renders the customer receipt markup without sending it to the printer
// @Tags receipts
// @Produce  json
// @Param   tabID path int true "Tab ID"
// @Param   sequenceID path int true "Sale sequence ID"
// @Success 200 {object} dto.ReceiptPreviewResponse
// @Failure 400 {object} ErrorResponse "Invalid tab or sequence ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Failure 500 {object} ErrorResponse "Failed to render receipt"
// @Security BearerAuth
// @Router /tabs/{tabID}/sales/{sequenceID}/receipt [get]
func (h *receiptHandler) previewReceipt(c *gin.Context) {
	tabID, sequenceID, ok := saleParams(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.Int("tab_id", tabID), slog.Int("sequence_id", sequenceID))

	text, err := h.receiptService.PreviewSale(c.Request.Context(), tabID, sequenceID)
	if err != nil {
		respondServiceError(c, logger, err, "render receipt")
		return
	}
	c.JSON(http.StatusOK, dto.ReceiptPreviewResponse{TabID: tabID, SequenceID: sequenceID, Text: text})
}

// printReceipt godoc
// @Summary Reprint a sale receipt
// @Tags receipts
// @Produce  json
// @Param   tabID path int true "Tab ID"
// @Param   sequenceID path int true "Sale sequence ID"
// @Success 200 {object} dto.PrintResponse
// @Failure 400 {object} ErrorResponse "Invalid tab or sequence ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Failure 502 {object} ErrorResponse "Printer unavailable"
// @Security BearerAuth
// @Router /tabs/{tabID}/sales/{sequenceID}/print [post]
func (h *receiptHandler) printReceipt(c *gin.Context) {
	tabID, sequenceID, ok := saleParams(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.Int("tab_id", tabID), slog.Int("sequence_id", sequenceID))

	if err := h.receiptService.ReprintSale(c.Request.Context(), tabID, sequenceID); err != nil {
		respondServiceError(c, logger, err, "print receipt")
		return
	}

	logger.Info("Receipt reprinted")
	c.JSON(http.StatusOK, dto.PrintResponse{Printed: true, Receipts: 1})
}

// printCommissions godoc
// @Summary Reprint commission vouchers
// @Description Prints one voucher per attendant credited on the sale
// @Tags receipts
// @Produce  json
// @Param   tabID path int true "Tab ID"
// @Param   sequenceID path int true "Sale sequence ID"
// @Success 200 {object} dto.PrintResponse
// @Failure 400 {object} ErrorResponse "Invalid tab or sequence ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Failure 502 {object} ErrorResponse "Printer unavailable"
// @Security BearerAuth
// @Router /tabs/{tabID}/sales/{sequenceID}/print-commissions [post]
func (h *receiptHandler) printCommissions(c *gin.Context) {
	tabID, sequenceID, ok := saleParams(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.Int("tab_id", tabID), slog.Int("sequence_id", sequenceID))

	sent, err := h.receiptService.ReprintCommissions(c.Request.Context(), tabID, sequenceID)
	if err != nil {
		respondServiceError(c, logger.With(slog.Int("sent", sent)), err, "print commission vouchers")
		return
	}

	logger.Info("Commission vouchers reprinted", slog.Int("count", sent))
	c.JSON(http.StatusOK, dto.PrintResponse{Printed: sent > 0, Receipts: sent})
}
