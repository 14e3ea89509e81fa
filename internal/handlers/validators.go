package handlers

import (
	"errors"
	"reflect"
	"sync"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the ledger's custom binding tags on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not a go-playground validator")
	}
	registerOnce.Do(func() {
		registerErr = registerValidators(v)
	})
	return registerErr
}

func registerValidators(v *validator.Validate) error {
	// Decimal fields are validated through their string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	validations := map[string]validator.Func{
		"clientname": validateClientName,
		"fishtype":   validateFishType,
		"dpos":       decimalCheck(func(d decimal.Decimal) bool { return d.IsPositive() }),
		"dnonneg":    decimalCheck(func(d decimal.Decimal) bool { return !d.IsNegative() }),
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func validateClientName(fl validator.FieldLevel) bool {
	_, err := domain.ParseClientName(fl.Field().String())
	return err == nil
}

func validateFishType(fl validator.FieldLevel) bool {
	return domain.FishType(fl.Field().String()).IsValid()
}

func decimalCheck(ok func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return ok(d)
	}
}
