package companies

import (
	"errors"
	"fmt"
)

var (
	ErrNameRequired      = errors.New("company name is required")
	ErrInvalidSize       = errors.New("invalid company size")
	ErrCompanyNotFound   = errors.New("company not found")
	ErrPartnerNotFound   = errors.New("partner not found")
	ErrDatabaseOperation = errors.New("database operation error")
)

// CompanyError é um erro com contexto adicional para empresas e parceiros
type CompanyError struct {
	Err     error
	Code    string
	Details string
}

func (e *CompanyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CompanyError) Unwrap() error {
	return e.Err
}

func NewCompanyError(err error, code string, details string) *CompanyError {
	return &CompanyError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
