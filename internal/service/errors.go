package service

import (
	"errors"
	"fmt"

	"go-pescados/pkg/validator"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrProductNotFound = errors.New("product not found")
	ErrLedgerNotEmpty  = errors.New("ledger already has transactions")
)

// ValidationError carries every field that failed validation.
type ValidationError struct {
	Fields []*validator.ErrorResponse
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	first := e.Fields[0]
	return fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func validate(input interface{}) error {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
