package handler

import (
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/partner-plan-api/internal/planning"
	"github.com/vfg2006/partner-plan-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/partner-plan-api/internal/usecases/businessplan"
	"github.com/vfg2006/partner-plan-api/internal/usecases/companies"
	"github.com/vfg2006/partner-plan-api/internal/usecases/evaluating"
	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
	"github.com/vfg2006/partner-plan-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	// Valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

func decodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.Wrap(err, "falha ao ler o corpo da requisição")
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return errors.New("corpo da requisição vazio")
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return errors.Wrap(err, "formato de requisição inválido")
	}

	return nil
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// writeServiceError traduz os erros dos serviços para o formato padronizado da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	var planningErr *planning.PlanningError
	if errors.As(err, &planningErr) {
		logger.WithFields(log.Fields{
			"error": err.Error(),
			"field": planningErr.Field,
		}).Warn("Entrada do plano rejeitada")

		apiErrors.WriteError(w, planningErr.Code, planningErr.Error(), map[string]string{
			"field": planningErr.Field,
		})
		return
	}

	code, message := serviceErrorCode(err)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.WithError(err).Error("Erro ao processar requisição")
		message = "Erro interno ao processar a requisição"
	} else {
		logger.WithField("error", err.Error()).Warn("Requisição rejeitada")
	}

	apiErrors.WriteError(w, code, message, nil)
}

func serviceErrorCode(err error) (string, string) {
	var planErr *businessplan.BusinessPlanError
	if errors.As(err, &planErr) {
		return planErr.Code, planErr.Error()
	}

	var evaluationErr *evaluating.EvaluationError
	if errors.As(err, &evaluationErr) {
		return evaluationErr.Code, evaluationErr.Error()
	}

	var entryErr *bookkeeping.BookkeepingError
	if errors.As(err, &entryErr) {
		return entryErr.Code, entryErr.Error()
	}

	var companyErr *companies.CompanyError
	if errors.As(err, &companyErr) {
		return companyErr.Code, companyErr.Error()
	}

	return apiErrors.ErrInternalServer, err.Error()
}
