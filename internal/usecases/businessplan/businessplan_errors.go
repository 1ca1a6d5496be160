package businessplan

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de planos de negócio
var (
	// Erros de validação
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidStatus = errors.New("invalid business plan status")
	ErrInvalidDates  = errors.New("invalid plan dates")

	// Erros de recurso
	ErrPlanNotFound    = errors.New("business plan not found")
	ErrCompanyNotFound = errors.New("company not found")
	ErrPartnerNotFound = errors.New("partner not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	ErrGenerateID = errors.New("error generating plan reference")
)

// BusinessPlanError é um erro com contexto adicional para planos
type BusinessPlanError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	PlanID  string // ID do plano envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *BusinessPlanError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *BusinessPlanError) Unwrap() error {
	return e.Err
}

func NewBusinessPlanError(err error, code string, details string) *BusinessPlanError {
	return &BusinessPlanError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewBusinessPlanErrorWithID(err error, code string, planID string, details string) *BusinessPlanError {
	return &BusinessPlanError{
		Err:     err,
		Code:    code,
		PlanID:  planID,
		Details: details,
	}
}
