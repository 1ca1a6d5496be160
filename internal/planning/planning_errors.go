package planning

import (
	"errors"
	"fmt"

	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
)

// Erros de validação das entradas do cálculo
var (
	ErrInvalidRate     = errors.New("invalid rate")
	ErrInvalidSplit    = errors.New("invalid split")
	ErrScoreOutOfRange = errors.New("score out of range")
	ErrNegativeInput   = errors.New("negative input")
)

// PlanningError é um erro de validação com o campo que o originou
type PlanningError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Campo da entrada que originou o erro
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PlanningError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PlanningError) Unwrap() error {
	return e.Err
}

// NewPlanningError cria um PlanningError com o código de API correspondente ao erro base
func NewPlanningError(err error, field string, details string) *PlanningError {
	return &PlanningError{
		Err:     err,
		Code:    codeFor(err),
		Field:   field,
		Details: details,
	}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRate):
		return apiErrors.ErrInvalidRate
	case errors.Is(err, ErrInvalidSplit):
		return apiErrors.ErrInvalidSplit
	case errors.Is(err, ErrScoreOutOfRange):
		return apiErrors.ErrScoreOutOfRange
	case errors.Is(err, ErrNegativeInput):
		return apiErrors.ErrNegativeInput
	default:
		return apiErrors.ErrInvalidRequest
	}
}
