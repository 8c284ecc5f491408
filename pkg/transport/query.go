package transport

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Coordinates is a point in the API's x/y convention
type Coordinates struct {
	X float64
	Y float64
}

// LocationQuery searches locations by free text or by position. When both are
// set, Query wins and Coordinates is ignored.
type LocationQuery struct {
	Query           string
	Type            LocationType `validate:"omitempty,location_type"`
	Coordinates     *Coordinates
	Transportations []TransportMode `validate:"dive,transport_mode"`
}

// ConnectionQuery searches connections between two locations.
// Date is YYYY-MM-DD and Time is hh:mm.
type ConnectionQuery struct {
	From            string          `validate:"required"`
	To              string          `validate:"required"`
	Via             []string        `validate:"max=5,dive,required"`
	Date            string          `validate:"omitempty,datetime=2006-01-02"`
	Time            string          `validate:"omitempty,datetime=15:04"`
	IsArrivalTime   *bool
	Transportations []TransportMode `validate:"dive,transport_mode"`
	Limit           *int            `validate:"omitempty,min=1,max=6"`
	Page            *int            `validate:"omitempty,min=0,max=10"`
	Direct          *bool
	Sleeper         *bool
	Couchette       *bool
	Bike            *bool
	Accessibility   AccessibilityLevel `validate:"omitempty,accessibility"`
}

// StationboardQuery asks for departures at one station. ID takes precedence
// over Station on the server when both are given. Datetime is YYYY-MM-DD hh:mm.
type StationboardQuery struct {
	Station         string          `validate:"required_without=ID"`
	ID              string          `validate:"required_without=Station"`
	Limit           *int            `validate:"omitempty,min=1"`
	Transportations []TransportMode `validate:"dive,transport_mode"`
	Datetime        string          `validate:"omitempty,datetime=2006-01-02 15:04"`
}

func Bool(b bool) *bool {
	return &b
}

func Int(i int) *int {
	return &i
}

type validatable interface {
	Valid() bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	isKnown := func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(validatable)
		return ok && value.Valid()
	}
	for _, tag := range []string{"transport_mode", "location_type", "accessibility"} {
		if err := v.RegisterValidation(tag, isKnown); err != nil {
			panic(fmt.Sprintf("registering %s validation: %v", tag, err))
		}
	}
	return v
}

func (q LocationQuery) Validate() error {
	return validateStruct(q)
}

func (q ConnectionQuery) Validate() error {
	return validateStruct(q)
}

func (q StationboardQuery) Validate() error {
	return validateStruct(q)
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewParameterError("", err.Error())
	}

	fe := fieldErrs[0]
	return NewParameterError(fe.Field(), describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return fmt.Sprintf("is required when %s is empty", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must match layout %q", fe.Param())
	case "transport_mode", "location_type", "accessibility":
		return fmt.Sprintf("has unknown value %v", fe.Value())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
