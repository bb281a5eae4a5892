// Package validate turns submitted user form fields into a typed record.
package validate

import (
	"errors"
	"math"
	"net/url"
	"reflect"
	"strings"

	"github.com/and161185/dashboard/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

var messages = map[string]string{
	FieldCustomerID: "Please select a customer.",
	FieldAmount:     "Please enter an amount greater than $0.",
	FieldStatus:     "Please select a user status.",
}

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// FieldErrors maps a form field name to its messages in the order they were found.
type FieldErrors map[string][]string

// Input is a validated user form.
type Input struct {
	CustomerID string
	Amount     decimal.Decimal
	Status     model.UserStatus
}

// AmountInCents truncates the amount to whole cents.
func (in Input) AmountInCents() int64 {
	return in.Amount.Mul(hundred).IntPart()
}

type userForm struct {
	CustomerID string  `form:"customerId" validate:"required"`
	Amount     float64 `form:"amount" validate:"gt=0"`
	Status     string  `form:"status" validate:"oneof=pending paid"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return v
}

// UserForm validates the customerId, amount and status fields. All failing fields are
// reported together; on failure the returned Input is zero.
func UserForm(fields url.Values) (Input, FieldErrors) {
	// unparseable amounts stay zero and fail gt=0
	amount, err := decimal.NewFromString(strings.TrimSpace(fields.Get(FieldAmount)))
	if err != nil {
		amount = decimal.Zero
	}
	// cents are stored as BIGINT; larger amounts fail gt=0 like unparseable ones
	if amount.Mul(hundred).GreaterThan(maxCents) {
		amount = decimal.Zero
	}

	form := userForm{
		CustomerID: fields.Get(FieldCustomerID),
		Amount:     amount.InexactFloat64(),
		Status:     fields.Get(FieldStatus),
	}

	if err := validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Input{}, FieldErrors{"": {err.Error()}}
		}

		fieldErrs := make(FieldErrors, len(verrs))
		for _, fe := range verrs {
			fieldErrs[fe.Field()] = append(fieldErrs[fe.Field()], messages[fe.Field()])
		}
		return Input{}, fieldErrs
	}

	return Input{
		CustomerID: form.CustomerID,
		Amount:     amount,
		Status:     model.UserStatus(form.Status),
	}, nil
}
