package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/partner-plan-api/internal/domain"
	"github.com/vfg2006/partner-plan-api/internal/usecases/businessplan"
	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
	"github.com/vfg2006/partner-plan-api/pkg/log"
)

func ListBusinessPlans(service businessplan.BusinessPlanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.BusinessPlanFilter{
			Status: parseStatusFilter(r.URL.Query()["status"]),
		}

		views, err := service.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, views)
	}
}

func GetBusinessPlan(service businessplan.BusinessPlanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")

		view, err := service.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func CreateBusinessPlan(service businessplan.BusinessPlanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.BusinessPlanInput
		if err := decodeBody(r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		view, err := service.Create(r.Context(), &input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("plan_id", view.Plan.ID).Info("Plano de negócios criado")
		writeJSON(w, http.StatusCreated, view)
	}
}

func UpdateBusinessPlan(service businessplan.BusinessPlanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")

		var input domain.BusinessPlanInput
		if err := decodeBody(r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		view, err := service.Update(r.Context(), id, &input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func UpdateBusinessPlanStatus(service businessplan.BusinessPlanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")

		var request domain.UpdateBusinessPlanStatusRequest
		if err := decodeBody(r, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		if err := service.UpdateStatus(r.Context(), id, request.Status); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"id":     id,
			"status": request.Status,
		})
	}
}

func DeleteBusinessPlan(service businessplan.BusinessPlanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// PreviewBusinessPlan recalcula o plano a cada edição do formulário, sem gravar
func PreviewBusinessPlan(service businessplan.BusinessPlanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.BusinessPlanInput
		if err := decodeBody(r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		view, err := service.Preview(r.Context(), &input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// parseStatusFilter aceita ?status=a&status=b e ?status=a,b
func parseStatusFilter(values []string) []domain.BusinessPlanStatus {
	statuses := make([]domain.BusinessPlanStatus, 0)
	for _, value := range values {
		for _, status := range strings.Split(value, ",") {
			status = strings.TrimSpace(status)
			if status != "" {
				statuses = append(statuses, domain.BusinessPlanStatus(status))
			}
		}
	}
	return statuses
}
