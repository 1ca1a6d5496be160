package bookkeeping

import (
	"errors"
	"fmt"
)

var (
	ErrBusinessPlanRequired = errors.New("business plan ID is required")
	ErrCategoryRequired     = errors.New("category is required")
	ErrInvalidMonth         = errors.New("invalid month")
	ErrPlanNotFound         = errors.New("business plan not found")
	ErrEntryNotFound        = errors.New("bookkeeping entry not found")
	ErrDatabaseOperation    = errors.New("database operation error")
)

// BookkeepingError é um erro com contexto adicional para lançamentos
type BookkeepingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *BookkeepingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BookkeepingError) Unwrap() error {
	return e.Err
}

func NewBookkeepingError(err error, code string, details string) *BookkeepingError {
	return &BookkeepingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
