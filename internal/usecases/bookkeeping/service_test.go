package bookkeeping

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/partner-plan-api/infrastructure/repository"
	"github.com/vfg2006/partner-plan-api/infrastructure/repository/mocks"
	"github.com/vfg2006/partner-plan-api/internal/domain"
	"github.com/vfg2006/partner-plan-api/internal/planning"
	"go.uber.org/mock/gomock"
)

func decimalPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockBookkeepingRepository(ctrl)
	planRepo := mocks.NewMockBusinessPlanRepository(ctrl)
	service := NewService(entryRepo, planRepo)

	planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(&domain.BusinessPlan{ID: "plan-1"}, nil)
	entryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	entry, err := service.Create(context.Background(), &domain.BookkeepingEntryInput{
		BusinessPlanID: "plan-1",
		Month:          "2025-02-17",
		Category:       " Marketing ",
		Subcategory:    "Eventos",
		PlannedAmount:  decimal.RequireFromString("1500.005"),
		ActualAmount:   decimalPtr("1720.5"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), entry.Month)
	assert.Equal(t, "Marketing", entry.Category)
	assert.Equal(t, "1500.01", entry.PlannedAmount.String())
	require.True(t, entry.ActualAmount.Valid)
	assert.Equal(t, "1720.5", entry.ActualAmount.Decimal.String())
}

func TestService_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   *domain.BookkeepingEntryInput
		wantErr error
	}{
		{
			name:    "sem plano",
			input:   &domain.BookkeepingEntryInput{Month: "2025-01-01", Category: "Viagens"},
			wantErr: ErrBusinessPlanRequired,
		},
		{
			name:    "sem categoria",
			input:   &domain.BookkeepingEntryInput{BusinessPlanID: "plan-1", Month: "2025-01-01"},
			wantErr: ErrCategoryRequired,
		},
		{
			name:    "mês inválido",
			input:   &domain.BookkeepingEntryInput{BusinessPlanID: "plan-1", Month: "jan/2025", Category: "Viagens"},
			wantErr: ErrInvalidMonth,
		},
		{
			name: "planejado negativo",
			input: &domain.BookkeepingEntryInput{
				BusinessPlanID: "plan-1", Month: "2025-01-01", Category: "Viagens",
				PlannedAmount: decimal.NewFromInt(-1),
			},
			wantErr: planning.ErrNegativeInput,
		},
		{
			name: "realizado negativo",
			input: &domain.BookkeepingEntryInput{
				BusinessPlanID: "plan-1", Month: "2025-01-01", Category: "Viagens",
				ActualAmount: decimalPtr("-0.01"),
			},
			wantErr: planning.ErrNegativeInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewService(mocks.NewMockBookkeepingRepository(ctrl), mocks.NewMockBusinessPlanRepository(ctrl))

			_, err := service.Create(context.Background(), tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockBookkeepingRepository(ctrl)
	planRepo := mocks.NewMockBusinessPlanRepository(ctrl)
	service := NewService(entryRepo, planRepo)

	planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(&domain.BusinessPlan{ID: "plan-1"}, nil)
	entryRepo.EXPECT().ListByPlan(gomock.Any(), "plan-1").Return([]*domain.BookkeepingEntry{
		{Category: "Viagens", PlannedAmount: decimal.NewFromInt(1000), ActualAmount: decimal.NewNullDecimal(decimal.NewFromInt(1200))},
		{Category: "Marketing", PlannedAmount: decimal.NewFromInt(2000), ActualAmount: decimal.NewNullDecimal(decimal.NewFromInt(1500))},
		{Category: "Viagens", PlannedAmount: decimal.NewFromInt(500)},
	}, nil)

	summary, err := service.Summary(context.Background(), "plan-1")
	require.NoError(t, err)

	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Marketing", summary.Categories[0].Category)
	assert.Equal(t, "-500", summary.Categories[0].Variance.String())

	assert.Equal(t, "Viagens", summary.Categories[1].Category)
	assert.Equal(t, "1500", summary.Categories[1].Planned.String())
	assert.Equal(t, "1200", summary.Categories[1].Actual.String())
	assert.Equal(t, "-300", summary.Categories[1].Variance.String())

	assert.Equal(t, "3500", summary.TotalPlanned.String())
	assert.Equal(t, "2700", summary.TotalActual.String())
	assert.Equal(t, "-800", summary.TotalVariance.String())
}

func TestService_Summary_PlanNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	planRepo := mocks.NewMockBusinessPlanRepository(ctrl)
	service := NewService(mocks.NewMockBookkeepingRepository(ctrl), planRepo)

	planRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

	_, err := service.Summary(context.Background(), "missing")
	require.ErrorIs(t, err, ErrPlanNotFound)
}

func TestService_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockBookkeepingRepository(ctrl)
	service := NewService(entryRepo, mocks.NewMockBusinessPlanRepository(ctrl))

	entryRepo.EXPECT().GetByID(gomock.Any(), "entry-1").Return(&domain.BookkeepingEntry{
		ID: "entry-1", BusinessPlanID: "plan-1", Category: "Viagens",
		ActualAmount: decimal.NewNullDecimal(decimal.NewFromInt(10)),
	}, nil)
	entryRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	entry, err := service.Update(context.Background(), "entry-1", &domain.BookkeepingEntryInput{
		Month:         "2025-05-31",
		Category:      "Viagens",
		PlannedAmount: decimal.NewFromInt(800),
	})
	require.NoError(t, err)
	assert.Equal(t, "plan-1", entry.BusinessPlanID)
	assert.False(t, entry.ActualAmount.Valid)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), entry.Month)

	entryRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)
	_, err = service.Update(context.Background(), "missing", &domain.BookkeepingEntryInput{Month: "2025-05-01", Category: "Viagens"})
	require.ErrorIs(t, err, ErrEntryNotFound)

	entryRepo.EXPECT().Delete(gomock.Any(), "entry-1").Return(nil)
	require.NoError(t, service.Delete(context.Background(), "entry-1"))

	entryRepo.EXPECT().Delete(gomock.Any(), "missing").Return(repository.ErrNoRowsAffected)
	require.ErrorIs(t, service.Delete(context.Background(), "missing"), ErrEntryNotFound)
}
