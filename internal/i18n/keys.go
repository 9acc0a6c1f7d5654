package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyServiceUnavailable = "error.service_unavailable"

	ErrKeyIdempotencyKeyReused = "error.idempotency.key_reused"
	ErrKeyIdempotencyInFlight  = "error.idempotency.in_flight"

	// Cart session errors.
	ErrKeySessionNotFound  = "error.session_not_found"
	ErrKeyItemNotFound     = "error.item_not_found"
	ErrKeyInvalidQuantity  = "error.invalid_quantity"
	ErrKeyInvalidItem      = "error.invalid_item"
	ErrKeyInvalidMode      = "error.invalid_mode"
	ErrKeyAddressRequired  = "error.address_required"
	ErrKeyInvalidPostal    = "error.invalid_postal_code"
	ErrKeySessionForbidden = "error.session_forbidden"

	// Checkout errors.
	ErrKeyEmptyCart           = "error.checkout.empty_cart"
	ErrKeyPhoneRequired       = "error.checkout.phone_required"
	ErrKeyInvalidCheckoutItem = "error.checkout.invalid_item"
	ErrKeyShippingPending     = "error.checkout.shipping_pending"
	ErrKeyAddressIncomplete   = "error.checkout.address_incomplete"
	ErrKeyAddressMismatch     = "error.checkout.address_mismatch"
	ErrKeyStaleRevision       = "error.checkout.stale_revision"

	// Tariff errors.
	ErrKeyInvalidTariff          = "error.tariff.invalid"
	ErrKeyTariffStoreUnavailable = "error.tariff.store_unavailable"
)

// Display label keys.
const (
	LabelShippingFree    = "label.shipping.free"
	LabelShippingPending = "label.shipping.pending"
	// LabelItemCount is plural: use Translator.Plural.
	LabelItemCount = "label.item_count"
)
