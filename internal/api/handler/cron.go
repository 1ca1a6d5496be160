package handler

import (
	"net/http"

	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
	"github.com/vfg2006/partner-plan-api/pkg/log"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypePlanStatus = "plan-status"
)

// CronJob é implementado pelos serviços do pacote scheduler
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PlanStatusSyncService CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	return map[string]CronJob{
		CronJobTypePlanStatus: s.PlanStatusSyncService,
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := pathParam(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, exists := services.byType()[cronType]
		if !exists {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypePlanStatus, nil)
			return
		}
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de cron job não disponível", nil)
			return
		}

		log.ForContext(r.Context()).WithField("cron_type", cronType).Info("Execução manual de cron job solicitada")
		job.TriggerManualSync()

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for cronType, job := range services.byType() {
			if job != nil {
				status[cronType] = job.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	}
}
