// Package validation turns raw request bodies into normalized sale records.
//
// It uses the validator library for required-field checks over a typed input
// struct and collects every problem in a payload into one list, so a client
// sees all of them in a single response.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"kafe/models"
)

// ErrNotJSON reports a body that could not be decoded at all.
var ErrNotJSON = errors.New("Request must be JSON")

// FieldErrors lists every problem found in one payload.
type FieldErrors []string

func (e FieldErrors) Error() string { return strings.Join(e, "; ") }

// saleInput enumerates exactly the accepted fields. Pointers distinguish
// "key absent" from zero values: card may legitimately be an empty string.
type saleInput struct {
	Datetime   *string       `json:"datetime"`
	CashType   *string       `json:"cash_type" validate:"required"`
	Card       *string       `json:"card" validate:"required"`
	Money      *models.Money `json:"money" validate:"required"`
	CoffeeName *string       `json:"coffee_name" validate:"required"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func v() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// Report fields by their json names, not Go names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ParseSale decodes and validates one sale payload. On success the record is
// normalized: money is numeric and datetime is filled with the current time
// when the caller omitted it; caller-supplied datetimes pass through
// unmodified. Failures are FieldErrors, or ErrNotJSON when the body is not
// JSON at all. Unknown fields and mistyped fields fail closed.
func ParseSale(body []byte) (models.SaleRecord, error) {
	var in saleInput
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return models.SaleRecord{}, FieldErrors{"Invalid type for field: " + typeErr.Field}
		}
		if name, ok := unknownField(err); ok {
			return models.SaleRecord{}, FieldErrors{"Unknown field: " + name}
		}
		return models.SaleRecord{}, ErrNotJSON
	}

	var errs FieldErrors
	if err := v().Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return models.SaleRecord{}, err
		}
		for _, fe := range verrs {
			errs = append(errs, "Missing required field: "+fe.Field())
		}
	}
	if in.Money != nil && !in.Money.Numeric() {
		errs = append(errs, "Money must be a number")
	}
	if len(errs) > 0 {
		return models.SaleRecord{}, errs
	}

	rec := models.SaleRecord{
		Datetime:   time.Now().Format(time.RFC3339),
		CashType:   *in.CashType,
		Card:       *in.Card,
		Money:      in.Money.Float64(),
		CoffeeName: *in.CoffeeName,
	}
	if in.Datetime != nil {
		rec.Datetime = *in.Datetime
	}
	return rec, nil
}

func unknownField(err error) (string, bool) {
	const prefix = `json: unknown field `
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(msg, prefix), `"`), true
}
