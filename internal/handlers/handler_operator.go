package handlers

import (
	"net/http"

	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
	"github.com/barpos/comanda_backend/internal/dto"
	"github.com/barpos/comanda_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type operatorHandler struct {
	operatorService portssvc.OperatorSvc
}

func newOperatorHandler(ops portssvc.OperatorSvc) *operatorHandler {
	return &operatorHandler{operatorService: ops}
}

func registerOperatorRoutes(rg *gin.RouterGroup, operatorService portssvc.OperatorSvc) {
	h := newOperatorHandler(operatorService)

	rg.GET("/operators", h.listOperators)
}

// listOperators godoc
// @Summary List operators
// @Description Returns every operator account without its password hash
// @Tags operators
// @Produce  json
// @Success 200 {array} dto.OperatorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list operators"
// @Security BearerAuth
// @Router /operators [get]
func (h *operatorHandler) listOperators(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operators, err := h.operatorService.ListOperators(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list operators")
		return
	}

	c.JSON(http.StatusOK, dto.ToOperatorResponses(operators))
}
