package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
	"github.com/guttosm/cart-pricing-service/internal/i18n"
	"github.com/guttosm/cart-pricing-service/internal/middleware"
)

// Envelopes are serialized synchronously by gin, so they can go back to the
// pool as soon as the write returns.
var (
	successPool = sync.Pool{New: func() interface{} { return new(dto.SuccessResponse) }}
	failurePool = sync.Pool{New: func() interface{} { return new(dto.ErrorResponse) }}
)

// validatable is implemented by request DTOs with checks beyond binding tags.
type validatable interface {
	Validate() error
}

// ResponseBuilder writes the success and error envelopes for one request.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// bindJSON decodes the body into a new T and runs its Validate method when it
// has one. On failure the error response is already written and ok is false.
func bindJSON[T any](b *ResponseBuilder) (req *T, ok bool) {
	req = new(T)
	if err := b.c.ShouldBindJSON(req); err != nil {
		b.BindError(err)
		return nil, false
	}
	if v, isValidatable := any(req).(validatable); isValidatable {
		if err := v.Validate(); err != nil {
			b.Fail(err)
			return nil, false
		}
	}
	return req, true
}

// SuccessOK sends a 200 envelope.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.success(http.StatusOK, data)
}

// SuccessCreated sends a 201 envelope.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.success(http.StatusCreated, data)
}

func (b *ResponseBuilder) success(status int, data interface{}) {
	resp := successPool.Get().(*dto.SuccessResponse)
	*resp = dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now().UTC(),
	}
	b.c.JSON(status, resp)
	*resp = dto.SuccessResponse{}
	successPool.Put(resp)
}

// Error aborts with a translated error envelope. err, when set, is attached
// to the context so the error handler logs it.
func (b *ResponseBuilder) Error(status int, messageKey string, err error) {
	b.abort(status, messageKey, err, nil)
}

// ErrorWithDetails is Error plus per-field details.
func (b *ResponseBuilder) ErrorWithDetails(status int, messageKey string, err error, details map[string]string) {
	b.abort(status, messageKey, err, details)
}

func (b *ResponseBuilder) abort(status int, messageKey string, err error, details map[string]string) {
	if err != nil {
		_ = b.c.Error(err)
	}

	resp := failurePool.Get().(*dto.ErrorResponse)
	*resp = dto.ErrorResponse{
		Error:     dto.ErrCodeFromStatus(status),
		Message:   i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c)),
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now().UTC(),
		Details:   details,
	}
	b.c.AbortWithStatusJSON(status, resp)
	*resp = dto.ErrorResponse{}
	failurePool.Put(resp)
}
