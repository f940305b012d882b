package models

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError representa un error de validación
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func productValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterStructValidation(productPriceRule, Product{})
	})
	return validate
}

// productPriceRule exige price <= originalPrice cuando hay precio original
func productPriceRule(sl validator.StructLevel) {
	p := sl.Current().Interface().(Product)
	if p.OriginalPrice != nil && p.Price > *p.OriginalPrice {
		sl.ReportError(p.Price, "Price", "price", "ltefield", "OriginalPrice")
	}
}

// ValidateProduct valida los campos del producto y la regla de precios
func ValidateProduct(p Product) error {
	err := productValidator().Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := strings.ToLower(fe.Field())
		if fe.Tag() == "ltefield" {
			return &ValidationError{Field: field, Message: "price cannot exceed original price"}
		}
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s failed on %s", field, fe.Tag())}
	}
	return err
}
