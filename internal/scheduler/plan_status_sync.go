// Package scheduler contém os serviços agendados que mantêm os planos atualizados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-plan-api/infrastructure/repository"
	"github.com/vfg2006/partner-plan-api/internal/config"
	"github.com/vfg2006/partner-plan-api/pkg/utils"
)

type PlanStatusSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// PlanStatusSyncService conclui os planos ativos cujo período já terminou.
// Rascunhos e planos arquivados nunca são alterados.
type PlanStatusSyncService struct {
	scheduler           *gocron.Scheduler
	planRepo            repository.BusinessPlanRepository
	config              PlanStatusSyncConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastCompletedPlans  int64
	lastSyncError       string
}

func NewPlanStatusSyncService(
	planRepo repository.BusinessPlanRepository,
	cfg *config.Config,
) *PlanStatusSyncService {
	syncConfig := PlanStatusSyncConfig{
		CronSchedule: cfg.PlanStatusSync.CronSchedule, // Default: 2h da manhã todos os dias
		Enabled:      cfg.PlanStatusSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.Enabled,
	}).Info("Configuração do agendador de status dos planos carregada")

	return &PlanStatusSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		planRepo:  planRepo,
		config:    syncConfig,
		now:       time.Now,
	}
}

func (s *PlanStatusSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de status dos planos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de status dos planos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.SyncPlanStatuses(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização de status dos planos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de status dos planos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de status dos planos")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncPlanStatuses marca como concluídos os planos ativos com end_date anterior a hoje.
// Retorna a quantidade de planos alterados.
func (s *PlanStatusSyncService) SyncPlanStatuses(ctx context.Context) (int64, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização de status dos planos já está em execução")
		return 0, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	today := utils.StartOfDay(s.now())
	completed, err := s.planRepo.CompleteExpired(ctx, today)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastCompletedPlans = completed
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return 0, fmt.Errorf("erro ao concluir planos expirados: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"completed_plans": completed,
		"reference_date":  today.Format(utils.DateLayout),
	}).Info("Atualização de status dos planos concluída")

	return completed, nil
}

// TriggerManualSync inicia manualmente a atualização de status dos planos
func (s *PlanStatusSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de status dos planos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de status dos planos")
	go func() {
		if _, err := s.SyncPlanStatuses(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual de status dos planos")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *PlanStatusSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_completed_plans":   s.lastCompletedPlans,
		"last_sync_error":        s.lastSyncError,
	}
}
