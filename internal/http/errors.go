package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/guttosm/cart-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
	"github.com/guttosm/cart-pricing-service/internal/i18n"
	"github.com/guttosm/cart-pricing-service/internal/service"
	"github.com/guttosm/cart-pricing-service/internal/session"
)

// errSessionForbidden is returned when a session belongs to another customer.
var errSessionForbidden = errors.New("session belongs to another customer")

// errorMapping binds a domain error to its HTTP status and message key.
type errorMapping struct {
	err    error
	status int
	key    string
}

var errorMappings = []errorMapping{
	{session.ErrSessionNotFound, http.StatusNotFound, i18n.ErrKeySessionNotFound},
	{session.ErrItemNotFound, http.StatusNotFound, i18n.ErrKeyItemNotFound},
	{session.ErrInvalidQuantity, http.StatusBadRequest, i18n.ErrKeyInvalidQuantity},
	{session.ErrInvalidItem, http.StatusBadRequest, i18n.ErrKeyInvalidItem},
	{session.ErrAddressRequired, http.StatusBadRequest, i18n.ErrKeyAddressRequired},
	{errSessionForbidden, http.StatusForbidden, i18n.ErrKeySessionForbidden},
	{service.ErrEmptyCart, http.StatusUnprocessableEntity, i18n.ErrKeyEmptyCart},
	{service.ErrPhoneRequired, http.StatusUnprocessableEntity, i18n.ErrKeyPhoneRequired},
	{service.ErrInvalidCheckoutItem, http.StatusUnprocessableEntity, i18n.ErrKeyInvalidCheckoutItem},
	{service.ErrShippingPending, http.StatusUnprocessableEntity, i18n.ErrKeyShippingPending},
	{service.ErrAddressIncomplete, http.StatusUnprocessableEntity, i18n.ErrKeyAddressIncomplete},
	{service.ErrAddressMismatch, http.StatusUnprocessableEntity, i18n.ErrKeyAddressMismatch},
	{service.ErrStaleRevision, http.StatusConflict, i18n.ErrKeyStaleRevision},
	{service.ErrInvalidTariff, http.StatusBadRequest, i18n.ErrKeyInvalidTariff},
	{service.ErrInvalidLogQuery, http.StatusBadRequest, i18n.ErrKeyInvalidRequest},
	{service.ErrRepositoryNotConfigured, http.StatusServiceUnavailable, i18n.ErrKeyTariffStoreUnavailable},
	{circuitbreaker.ErrCircuitOpen, http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable},
}

// Fail translates err into an error response. Unknown errors become 500.
func (b *ResponseBuilder) Fail(err error) {
	if errors.Is(err, dto.ErrInvalidMode) {
		b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidMode, err)
		return
	}

	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err, map[string]string{
			verr.Field: verr.Message,
		})
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			b.Error(m.status, m.key, err)
			return
		}
	}

	b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}

// BindError answers a request whose body failed to decode or bind.
// Validator failures are reported per field using the JSON field path.
func (b *ResponseBuilder) BindError(err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	details := make(map[string]string, len(verrs))
	key := i18n.ErrKeyInvalidRequestBody
	for _, fe := range verrs {
		details[fieldPath(fe)] = fe.Tag()
		if fe.Tag() == postalCodeTag {
			key = i18n.ErrKeyInvalidPostal
		}
	}
	b.ErrorWithDetails(http.StatusBadRequest, key, err, details)
}
