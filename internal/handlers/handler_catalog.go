package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
	"github.com/barpos/comanda_backend/internal/dto"
	"github.com/barpos/comanda_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler serves products and attendants to the till.
type catalogHandler struct {
	catalogService portssvc.CatalogSvc
}

func newCatalogHandler(cs portssvc.CatalogSvc) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvc) {
	h := newCatalogHandler(catalogService)

	rg.GET("/products", h.listProducts)
	rg.GET("/attendants", h.listAttendants)
}

// listProducts godoc
// @Summary List products
// @Description Returns the whole product catalog with prices as two-decimal strings
// @Tags catalog
// @Produce  json
// @Success 200 {array} dto.ProductResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list products"
// @Security BearerAuth
// @Router /products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list products")
		return
	}

	logger.Debug("Products listed", slog.Int("count", len(products)))
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// listAttendants godoc
// @Summary List attendants on shift
// @Description Returns only the attendants that are active and present
// @Tags catalog
// @Produce  json
// @Success 200 {array} dto.AttendantResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list attendants"
// @Security BearerAuth
// @Router /attendants [get]
func (h *catalogHandler) listAttendants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	attendants, err := h.catalogService.ListAttendants(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list attendants")
		return
	}

	logger.Debug("Attendants listed", slog.Int("count", len(attendants)))
	c.JSON(http.StatusOK, dto.ToAttendantResponses(attendants))
}
