package evaluating

import (
	"errors"
	"fmt"
)

var (
	ErrBusinessPlanRequired = errors.New("business plan ID is required")
	ErrInvalidDate          = errors.New("invalid evaluation date")
	ErrPlanNotFound         = errors.New("business plan not found")
	ErrEvaluationNotFound   = errors.New("evaluation not found")
	ErrDatabaseOperation    = errors.New("database operation error")
)

// EvaluationError é um erro com contexto adicional para avaliações
type EvaluationError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *EvaluationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

func NewEvaluationError(err error, code string, details string) *EvaluationError {
	return &EvaluationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
