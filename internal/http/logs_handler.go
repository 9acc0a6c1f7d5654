package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/service"
)

// LogsHandler serves the stored request and audit log.
type LogsHandler struct {
	logging service.LoggingService
}

// NewLogsHandler creates a new LogsHandler instance.
func NewLogsHandler(logging service.LoggingService) *LogsHandler {
	return &LogsHandler{logging: logging}
}

// Search handles GET /api/admin/logs requests.
//
// @Summary      Search request and audit logs
// @Description  Returns stored log entries, newest first. Useful for tracing a cart session or a customer's checkouts. Pages default to 50 entries and are capped at 500.
// @Tags         Admin
// @Produce      json
// @Param        session_id  query string false "Cart session ID"
// @Param        customer_id query string false "Customer ID"
// @Param        request_id  query string false "Request ID"
// @Param        action      query string false "Audit action" Enums(create_session, checkout, update_tariff)
// @Param        level       query string false "Level" Enums(info, warn, error)
// @Param        method      query string false "HTTP method"
// @Param        path        query string false "Path prefix"
// @Param        from        query string false "Start time (RFC 3339)"
// @Param        to          query string false "End time (RFC 3339)"
// @Param        limit       query int    false "Page size"
// @Param        skip        query int    false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.LogPageView} "Matching entries"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid filter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure      503 {object} dto.ErrorResponse "Log storage unavailable"
// @Security     BearerAuth
// @Router       /api/admin/logs [get]
func (h *LogsHandler) Search(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.LogSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		builder.BindError(err)
		return
	}

	q, err := service.NormalizeLogQuery(req.ToModel())
	if err != nil {
		builder.Fail(err)
		return
	}

	ctx := c.Request.Context()
	entries, err := h.logging.QueryLogs(ctx, q)
	if err != nil {
		builder.Fail(err)
		return
	}
	total, err := h.logging.CountLogs(ctx, q)
	if err != nil {
		builder.Fail(err)
		return
	}

	page := dto.LogPageView{
		Entries: make([]dto.LogEntryView, 0, len(entries)),
		Total:   total,
		Limit:   q.Limit,
		Skip:    q.Skip,
	}
	for _, e := range entries {
		page.Entries = append(page.Entries, logEntryView(e))
	}
	builder.SuccessOK(page)
}

func logEntryView(e model.LogEntry) dto.LogEntryView {
	return dto.LogEntryView{
		ID:         e.ID.Hex(),
		Timestamp:  e.Timestamp,
		Level:      e.Level,
		Message:    e.Message,
		RequestID:  e.RequestID,
		Method:     e.Method,
		Path:       e.Path,
		StatusCode: e.StatusCode,
		DurationMs: e.Duration,
		CustomerID: e.CustomerID,
		Action:     e.ActionType,
		Error:      e.Error,
		Fields:     e.Fields,
	}
}
