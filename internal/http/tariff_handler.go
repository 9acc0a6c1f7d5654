package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
	"github.com/guttosm/cart-pricing-service/internal/middleware"
	"github.com/guttosm/cart-pricing-service/internal/pricing"
	"github.com/guttosm/cart-pricing-service/internal/service"
)

// defaultHistoryLimit caps GET /api/tariffs/history when no limit is given.
const defaultHistoryLimit = 20

// TariffHandler provides HTTP handlers for tariff routes.
type TariffHandler struct {
	tariffService service.TariffService
}

// NewTariffHandler creates a new TariffHandler instance.
func NewTariffHandler(tariffService service.TariffService) *TariffHandler {
	return &TariffHandler{tariffService: tariffService}
}

// GetActiveTariff handles GET /api/tariffs requests.
//
// @Summary      Get the active tariff
// @Description  Returns the tariff used for quotes: the latest stored version, or the built-in table (version 0) when none is stored or MongoDB is unavailable.
// @Tags         Tariffs
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.TariffView} "Active tariff"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/tariffs [get]
func (h *TariffHandler) GetActiveTariff(c *gin.Context) {
	builder := NewResponseBuilder(c)

	tariff, err := h.tariffService.Active(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(tariffView(tariff, nil))
}

// UpdateTariff handles PUT /api/tariffs requests.
//
// @Summary      Publish a tariff version
// @Description  Stores a new tariff version and makes it active. Omitted scalar fields take the built-in defaults. Cached quotes are dropped and sessions reprice on their next access.
// @Tags         Tariffs
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token with the admin role (required if auth enabled)"
// @Param        request body dto.TariffRequest true "Tariff"
// @Success      200 {object} dto.SuccessResponse{data=dto.TariffView} "Stored tariff"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid tariff"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure      503 {object} dto.ErrorResponse "Tariff storage unavailable"
// @Security     BearerAuth
// @Router       /api/tariffs [put]
func (h *TariffHandler) UpdateTariff(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindJSON[dto.TariffRequest](builder)
	if !ok {
		return
	}

	createdBy := ""
	if claims := middleware.GetClaims(c); claims != nil {
		createdBy = claims.CustomerID
	}

	doc, err := h.tariffService.Create(c.Request.Context(), req.ToModel(pricing.DefaultTariff()), createdBy)
	if err != nil {
		builder.Fail(err)
		return
	}

	tariff, err := doc.ToModel()
	if err != nil {
		builder.Fail(err)
		return
	}

	if ls := loggingServiceFrom(c); ls != nil {
		middleware.AuditLog(ls, c, middleware.ActionUpdateTariff, "Shipping tariff updated", map[string]interface{}{
			"version": doc.Version,
			"zones":   tariff.ZoneKeys(),
		})
	}

	builder.SuccessOK(tariffView(tariff, doc))
}

// ListTariffs handles GET /api/tariffs/history requests.
//
// @Summary      List tariff versions
// @Description  Returns stored tariff versions, newest first.
// @Tags         Tariffs
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.TariffView} "Tariff history"
// @Failure      503 {object} dto.ErrorResponse "Tariff storage unavailable"
// @Router       /api/tariffs/history [get]
func (h *TariffHandler) ListTariffs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := defaultHistoryLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	docs, err := h.tariffService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Fail(err)
		return
	}

	views := make([]dto.TariffView, 0, len(docs))
	for i := range docs {
		tariff, err := docs[i].ToModel()
		if err != nil {
			builder.Fail(err)
			return
		}
		views = append(views, tariffView(tariff, &docs[i]))
	}

	builder.SuccessOK(views)
}
