package dto

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Cocina-api/internal/domain"
)

var validate = newValidator()

// newValidator registra los tipos decimal para que gte/lte operen sobre el
// valor numérico y no sobre el struct interno.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	return v
}

func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

// Validate valida un DTO según sus tags y envuelve el fallo en
// domain.ErrInvalidInput para que la capa de interfaces lo clasifique.
func Validate(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
