package http

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/guttosm/cart-pricing-service/internal/pricing"
)

const (
	postalCodeTag = "postalcode"
	zoneKeyTag    = "zonekey"
)

var (
	registerValidatorsOnce sync.Once
	registerValidatorsErr  error
)

// RegisterValidators installs the custom binding tags on gin's validator and
// reports fields by their JSON names. Safe to call more than once.
func RegisterValidators() error {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerValidatorsErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation(postalCodeTag, validatePostalCode); err != nil {
			registerValidatorsErr = err
			return
		}
		registerValidatorsErr = v.RegisterValidation(zoneKeyTag, validateZoneKey)
	})
	return registerValidatorsErr
}

// jsonFieldName names fields as clients send them: the json key, or the
// form key for query parameters.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" {
		name = strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
	}
	if name == "-" {
		return ""
	}
	return name
}

// validatePostalCode accepts formatted or bare codes with at least eight digits.
func validatePostalCode(fl validator.FieldLevel) bool {
	return pricing.IsCompletePostalCode(fl.Field().String())
}

func validateZoneKey(fl validator.FieldLevel) bool {
	return pricing.IsZoneKey(fl.Field().String())
}

// fieldPath drops the top-level struct name from a validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
