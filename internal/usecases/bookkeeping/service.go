package bookkeeping

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-plan-api/infrastructure/repository"
	"github.com/vfg2006/partner-plan-api/internal/domain"
	"github.com/vfg2006/partner-plan-api/internal/planning"
	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
	"github.com/vfg2006/partner-plan-api/pkg/utils"
)

type BookkeepingService interface {
	ListByPlan(ctx context.Context, businessPlanID string) ([]*domain.BookkeepingEntry, error)
	Create(ctx context.Context, input *domain.BookkeepingEntryInput) (*domain.BookkeepingEntry, error)
	Update(ctx context.Context, id string, input *domain.BookkeepingEntryInput) (*domain.BookkeepingEntry, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, businessPlanID string) (*domain.BookkeepingSummary, error)
}

type Service struct {
	entryRepository repository.BookkeepingRepository
	planRepository  repository.BusinessPlanRepository
}

func NewService(
	entryRepository repository.BookkeepingRepository,
	planRepository repository.BusinessPlanRepository,
) BookkeepingService {
	return &Service{
		entryRepository: entryRepository,
		planRepository:  planRepository,
	}
}

func (s *Service) ListByPlan(ctx context.Context, businessPlanID string) ([]*domain.BookkeepingEntry, error) {
	if err := s.ensurePlanExists(ctx, businessPlanID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepository.ListByPlan(ctx, businessPlanID)
	if err != nil {
		logrus.WithError(err).WithField("plan_id", businessPlanID).Error("Erro ao listar lançamentos")
		return nil, NewBookkeepingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar lançamentos no banco de dados")
	}

	return entries, nil
}

func (s *Service) Create(ctx context.Context, input *domain.BookkeepingEntryInput) (*domain.BookkeepingEntry, error) {
	if input == nil || strings.TrimSpace(input.BusinessPlanID) == "" {
		return nil, NewBookkeepingError(ErrBusinessPlanRequired, apiErrors.ErrMissingRequiredData, "")
	}

	entry := &domain.BookkeepingEntry{
		ID:             uuid.New().String(),
		BusinessPlanID: input.BusinessPlanID,
	}
	if err := apply(entry, input); err != nil {
		return nil, err
	}

	if err := s.ensurePlanExists(ctx, input.BusinessPlanID); err != nil {
		return nil, err
	}

	if err := s.entryRepository.Create(ctx, entry); err != nil {
		logrus.WithError(err).WithField("plan_id", input.BusinessPlanID).Error("Erro ao criar lançamento")
		return nil, NewBookkeepingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar lançamento no banco de dados")
	}

	return entry, nil
}

func (s *Service) Update(ctx context.Context, id string, input *domain.BookkeepingEntryInput) (*domain.BookkeepingEntry, error) {
	if input == nil {
		return nil, NewBookkeepingError(ErrCategoryRequired, apiErrors.ErrMissingRequiredData, "corpo da requisição vazio")
	}

	entry, err := s.entryRepository.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("entry_id", id).Error("Erro ao buscar lançamento")
		return nil, NewBookkeepingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar lançamento no banco de dados")
	}
	if entry == nil {
		return nil, NewBookkeepingError(ErrEntryNotFound, apiErrors.ErrResourceNotFound, id)
	}

	if err := apply(entry, input); err != nil {
		return nil, err
	}

	if err := s.entryRepository.Update(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return nil, NewBookkeepingError(ErrEntryNotFound, apiErrors.ErrResourceNotFound, id)
		}
		logrus.WithError(err).WithField("entry_id", id).Error("Erro ao atualizar lançamento")
		return nil, NewBookkeepingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar lançamento no banco de dados")
	}

	return entry, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.entryRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return NewBookkeepingError(ErrEntryNotFound, apiErrors.ErrResourceNotFound, id)
		}
		logrus.WithError(err).WithField("entry_id", id).Error("Erro ao remover lançamento")
		return NewBookkeepingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover lançamento no banco de dados")
	}

	return nil
}

// Summary consolida planejado e realizado por categoria. Lançamentos sem
// valor realizado contam como zero no realizado.
func (s *Service) Summary(ctx context.Context, businessPlanID string) (*domain.BookkeepingSummary, error) {
	entries, err := s.ListByPlan(ctx, businessPlanID)
	if err != nil {
		return nil, err
	}

	return Summarize(businessPlanID, entries), nil
}

func Summarize(businessPlanID string, entries []*domain.BookkeepingEntry) *domain.BookkeepingSummary {
	byCategory := make(map[string]*domain.BookkeepingCategorySummary)
	for _, entry := range entries {
		category, exists := byCategory[entry.Category]
		if !exists {
			category = &domain.BookkeepingCategorySummary{
				Category: entry.Category,
				Planned:  decimal.Zero,
				Actual:   decimal.Zero,
			}
			byCategory[entry.Category] = category
		}

		category.Planned = category.Planned.Add(entry.PlannedAmount)
		if entry.ActualAmount.Valid {
			category.Actual = category.Actual.Add(entry.ActualAmount.Decimal)
		}
	}

	summary := &domain.BookkeepingSummary{
		BusinessPlanID: businessPlanID,
		Categories:     make([]domain.BookkeepingCategorySummary, 0, len(byCategory)),
		TotalPlanned:   decimal.Zero,
		TotalActual:    decimal.Zero,
	}

	for _, category := range byCategory {
		category.Variance = category.Actual.Sub(category.Planned)
		summary.Categories = append(summary.Categories, *category)
		summary.TotalPlanned = summary.TotalPlanned.Add(category.Planned)
		summary.TotalActual = summary.TotalActual.Add(category.Actual)
	}

	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Category < summary.Categories[j].Category
	})

	summary.TotalVariance = summary.TotalActual.Sub(summary.TotalPlanned)

	return summary
}

func apply(entry *domain.BookkeepingEntry, input *domain.BookkeepingEntryInput) error {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return NewBookkeepingError(ErrCategoryRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if input.Month == "" {
		return NewBookkeepingError(ErrInvalidMonth, apiErrors.ErrMissingRequiredData, "month é obrigatório")
	}
	month, err := utils.ParseDate(input.Month)
	if err != nil {
		return NewBookkeepingError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, err.Error())
	}

	if input.PlannedAmount.IsNegative() {
		return planning.NewPlanningError(planning.ErrNegativeInput, "planned_amount",
			fmt.Sprintf("planned amount must not be negative, got %s", input.PlannedAmount))
	}

	actual := decimal.NullDecimal{}
	if input.ActualAmount != nil {
		if input.ActualAmount.IsNegative() {
			return planning.NewPlanningError(planning.ErrNegativeInput, "actual_amount",
				fmt.Sprintf("actual amount must not be negative, got %s", input.ActualAmount))
		}
		actual = decimal.NewNullDecimal(input.ActualAmount.Round(2))
	}

	entry.Month = utils.StartOfMonth(*month)
	entry.Category = category
	entry.Subcategory = strings.TrimSpace(input.Subcategory)
	entry.PlannedAmount = input.PlannedAmount.Round(2)
	entry.ActualAmount = actual
	entry.Notes = input.Notes

	return nil
}

func (s *Service) ensurePlanExists(ctx context.Context, businessPlanID string) error {
	plan, err := s.planRepository.GetByID(ctx, businessPlanID)
	if err != nil {
		logrus.WithError(err).WithField("plan_id", businessPlanID).Error("Erro ao buscar plano do lançamento")
		return NewBookkeepingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar plano no banco de dados")
	}

	if plan == nil {
		return NewBookkeepingError(ErrPlanNotFound, apiErrors.ErrResourceNotFound, businessPlanID)
	}

	return nil
}
