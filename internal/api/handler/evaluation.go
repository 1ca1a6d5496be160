package handler

import (
	"net/http"

	"github.com/vfg2006/partner-plan-api/internal/domain"
	"github.com/vfg2006/partner-plan-api/internal/usecases/evaluating"
	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
)

func ListPlanEvaluations(service evaluating.EvaluationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		evaluations, err := service.ListByPlan(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, evaluations)
	}
}

func GetEvaluation(service evaluating.EvaluationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		evaluation, err := service.Get(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, evaluation)
	}
}

func CreateEvaluation(service evaluating.EvaluationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.EvaluationInput
		if err := decodeBody(r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		evaluation, err := service.Create(r.Context(), &input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, evaluation)
	}
}

func UpdateEvaluation(service evaluating.EvaluationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.EvaluationInput
		if err := decodeBody(r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		evaluation, err := service.Update(r.Context(), pathParam(r, "id"), &input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, evaluation)
	}
}

func DeleteEvaluation(service evaluating.EvaluationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
