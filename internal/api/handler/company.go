package handler

import (
	"net/http"

	"github.com/vfg2006/partner-plan-api/internal/domain"
	"github.com/vfg2006/partner-plan-api/internal/usecases/companies"
	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
)

// Empresas e parceiros compartilham os handlers; isPartner escolhe o cadastro

func ListCompanies(service companies.CompanyService, isPartner bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := service.List(r.Context(), isPartner)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func GetCompany(service companies.CompanyService, isPartner bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		company, err := service.Get(r.Context(), pathParam(r, "id"), isPartner)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, company)
	}
}

func CreateCompany(service companies.CompanyService, isPartner bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.CompanyInput
		if err := decodeBody(r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		company, err := service.Create(r.Context(), &input, isPartner)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, company)
	}
}
