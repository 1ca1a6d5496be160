package handler

import (
	"net/http"

	"github.com/vfg2006/partner-plan-api/internal/domain"
	"github.com/vfg2006/partner-plan-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
)

func ListPlanBookkeeping(service bookkeeping.BookkeepingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.ListByPlan(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

func GetBookkeepingSummary(service bookkeeping.BookkeepingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func CreateBookkeepingEntry(service bookkeeping.BookkeepingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.BookkeepingEntryInput
		if err := decodeBody(r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		entry, err := service.Create(r.Context(), &input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}

func UpdateBookkeepingEntry(service bookkeeping.BookkeepingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.BookkeepingEntryInput
		if err := decodeBody(r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		entry, err := service.Update(r.Context(), pathParam(r, "id"), &input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

func DeleteBookkeepingEntry(service bookkeeping.BookkeepingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
