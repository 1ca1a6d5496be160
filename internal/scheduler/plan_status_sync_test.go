package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/partner-plan-api/infrastructure/repository/mocks"
	"github.com/vfg2006/partner-plan-api/internal/config"
	"go.uber.org/mock/gomock"
)

func newTestPlanStatusSyncService(ctrl *gomock.Controller, enabled bool) (*PlanStatusSyncService, *mocks.MockBusinessPlanRepository) {
	planRepo := mocks.NewMockBusinessPlanRepository(ctrl)

	cfg := &config.Config{
		PlanStatusSync: config.PlanStatusSync{
			CronSchedule: "0 2 * * *",
			Enabled:      enabled,
		},
	}

	service := NewPlanStatusSyncService(planRepo, cfg)
	// Data de referência do teste: 16 de janeiro às 2h
	service.now = func() time.Time {
		return time.Date(2025, 1, 16, 2, 0, 0, 0, time.UTC)
	}

	return service, planRepo
}

func TestPlanStatusSyncService_SyncPlanStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, planRepo := newTestPlanStatusSyncService(ctrl, true)

	// Referência é o início do dia, planos que terminam hoje continuam ativos
	planRepo.EXPECT().
		CompleteExpired(gomock.Any(), time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)).
		Return(int64(3), nil)

	completed, err := service.SyncPlanStatuses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), completed)

	status := service.GetStatus()
	assert.Equal(t, int64(3), status["last_completed_plans"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "", status["last_sync_error"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
}

func TestPlanStatusSyncService_SyncPlanStatuses_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, planRepo := newTestPlanStatusSyncService(ctrl, true)

	planRepo.EXPECT().CompleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection reset"))

	_, err := service.SyncPlanStatuses(context.Background())
	require.Error(t, err)

	status := service.GetStatus()
	assert.Contains(t, status["last_sync_error"], "connection reset")
	assert.Equal(t, false, status["sync_running"])
}

func TestPlanStatusSyncService_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao repositório é esperada
	service, _ := newTestPlanStatusSyncService(ctrl, true)
	service.syncRunning = true

	completed, err := service.SyncPlanStatuses(context.Background())
	require.NoError(t, err)
	assert.Zero(t, completed)
}

func TestPlanStatusSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestPlanStatusSyncService(ctrl, false)

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestPlanStatusSyncService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestPlanStatusSyncService(ctrl, true)
	service.config.CronSchedule = "not a cron"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
