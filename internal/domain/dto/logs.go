package dto

import (
	"time"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
)

// LogSearchRequest filters GET /api/admin/logs. Times are RFC 3339.
type LogSearchRequest struct {
	SessionID  string    `form:"session_id"`
	CustomerID string    `form:"customer_id"`
	RequestID  string    `form:"request_id"`
	Action     string    `form:"action" binding:"omitempty,oneof=create_session checkout update_tariff"`
	Level      string    `form:"level" binding:"omitempty,oneof=info warn error"`
	Method     string    `form:"method" binding:"omitempty,oneof=GET POST PUT PATCH DELETE"`
	Path       string    `form:"path"`
	From       time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To         time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit      int       `form:"limit" binding:"omitempty,min=1"`
	Skip       int       `form:"skip" binding:"omitempty,min=0"`
}

// ToModel converts the request into query options; zero times are open ends.
func (r LogSearchRequest) ToModel() model.LogQueryOptions {
	q := model.LogQueryOptions{
		RequestID:  r.RequestID,
		CustomerID: r.CustomerID,
		SessionID:  r.SessionID,
		ActionType: r.Action,
		Level:      r.Level,
		Method:     r.Method,
		Path:       r.Path,
		Limit:      r.Limit,
		Skip:       r.Skip,
	}
	if !r.From.IsZero() {
		from := r.From
		q.StartTime = &from
	}
	if !r.To.IsZero() {
		to := r.To
		q.EndTime = &to
	}
	return q
}

// LogEntryView is one stored request or audit record.
type LogEntryView struct {
	ID         string                 `json:"id" example:"665f1c2e9b1d4a0012345678"`
	Timestamp  time.Time              `json:"timestamp"`
	Level      string                 `json:"level" example:"info"`
	Message    string                 `json:"message" example:"Checkout handoff prepared"`
	RequestID  string                 `json:"request_id,omitempty"`
	Method     string                 `json:"method,omitempty" example:"POST"`
	Path       string                 `json:"path,omitempty" example:"/api/sessions/3f2a/checkout"`
	StatusCode int                    `json:"status_code,omitempty" example:"200"`
	DurationMs int64                  `json:"duration_ms,omitempty" example:"4"`
	CustomerID string                 `json:"customer_id,omitempty"`
	Action     string                 `json:"action,omitempty" example:"checkout"`
	Error      string                 `json:"error,omitempty"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
} // @name LogEntryView

// LogPageView is a page of log entries with the total match count.
//
// @Description Log search results
type LogPageView struct {
	Entries []LogEntryView `json:"entries"`
	Total   int64          `json:"total" example:"42"`
	Limit   int            `json:"limit" example:"50"`
	Skip    int            `json:"skip" example:"0"`
} // @name LogPageView
