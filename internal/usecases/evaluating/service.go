package evaluating

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-plan-api/infrastructure/repository"
	"github.com/vfg2006/partner-plan-api/internal/domain"
	"github.com/vfg2006/partner-plan-api/internal/planning"
	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
	"github.com/vfg2006/partner-plan-api/pkg/utils"
)

type EvaluationService interface {
	ListByPlan(ctx context.Context, businessPlanID string) ([]*domain.Evaluation, error)
	Get(ctx context.Context, id string) (*domain.Evaluation, error)
	Create(ctx context.Context, input *domain.EvaluationInput) (*domain.Evaluation, error)
	Update(ctx context.Context, id string, input *domain.EvaluationInput) (*domain.Evaluation, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	evaluationRepository repository.EvaluationRepository
	planRepository       repository.BusinessPlanRepository
	now                  func() time.Time
}

func NewService(
	evaluationRepository repository.EvaluationRepository,
	planRepository repository.BusinessPlanRepository,
) EvaluationService {
	return &Service{
		evaluationRepository: evaluationRepository,
		planRepository:       planRepository,
		now:                  time.Now,
	}
}

func (s *Service) ListByPlan(ctx context.Context, businessPlanID string) ([]*domain.Evaluation, error) {
	if err := s.ensurePlanExists(ctx, businessPlanID); err != nil {
		return nil, err
	}

	evaluations, err := s.evaluationRepository.ListByPlan(ctx, businessPlanID)
	if err != nil {
		logrus.WithError(err).WithField("plan_id", businessPlanID).Error("Erro ao listar avaliações")
		return nil, NewEvaluationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar avaliações no banco de dados")
	}

	return evaluations, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Evaluation, error) {
	evaluation, err := s.evaluationRepository.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("evaluation_id", id).Error("Erro ao buscar avaliação")
		return nil, NewEvaluationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar avaliação no banco de dados")
	}

	if evaluation == nil {
		return nil, NewEvaluationError(ErrEvaluationNotFound, apiErrors.ErrResourceNotFound, id)
	}

	return evaluation, nil
}

// Create grava a avaliação com a nota geral calculada a partir das quatro notas
func (s *Service) Create(ctx context.Context, input *domain.EvaluationInput) (*domain.Evaluation, error) {
	if input == nil || strings.TrimSpace(input.BusinessPlanID) == "" {
		return nil, NewEvaluationError(ErrBusinessPlanRequired, apiErrors.ErrMissingRequiredData, "")
	}

	evaluation := &domain.Evaluation{
		ID:             uuid.New().String(),
		BusinessPlanID: input.BusinessPlanID,
	}
	if err := s.apply(evaluation, input); err != nil {
		return nil, err
	}

	if err := s.ensurePlanExists(ctx, input.BusinessPlanID); err != nil {
		return nil, err
	}

	if err := s.evaluationRepository.Create(ctx, evaluation); err != nil {
		logrus.WithError(err).WithField("plan_id", input.BusinessPlanID).Error("Erro ao criar avaliação")
		return nil, NewEvaluationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar avaliação no banco de dados")
	}

	return evaluation, nil
}

// Update substitui as notas e recalcula a nota geral. O plano da avaliação não muda.
func (s *Service) Update(ctx context.Context, id string, input *domain.EvaluationInput) (*domain.Evaluation, error) {
	if input == nil {
		return nil, NewEvaluationError(ErrBusinessPlanRequired, apiErrors.ErrMissingRequiredData, "corpo da requisição vazio")
	}

	evaluation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(evaluation, input); err != nil {
		return nil, err
	}

	if err := s.evaluationRepository.Update(ctx, evaluation); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return nil, NewEvaluationError(ErrEvaluationNotFound, apiErrors.ErrResourceNotFound, id)
		}
		logrus.WithError(err).WithField("evaluation_id", id).Error("Erro ao atualizar avaliação")
		return nil, NewEvaluationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar avaliação no banco de dados")
	}

	return evaluation, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.evaluationRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return NewEvaluationError(ErrEvaluationNotFound, apiErrors.ErrResourceNotFound, id)
		}
		logrus.WithError(err).WithField("evaluation_id", id).Error("Erro ao remover avaliação")
		return NewEvaluationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover avaliação no banco de dados")
	}

	return nil
}

func (s *Service) apply(evaluation *domain.Evaluation, input *domain.EvaluationInput) error {
	scores := planning.EvaluationScores{
		Market:      input.MarketScore,
		Financial:   input.FinancialScore,
		Operational: input.OperationalScore,
		Risk:        input.RiskScore,
	}

	overall, err := planning.AggregateScores(scores)
	if err != nil {
		return err
	}

	evaluationDate, err := utils.ParseDate(input.EvaluationDate)
	if err != nil {
		return NewEvaluationError(ErrInvalidDate, apiErrors.ErrInvalidFormat, err.Error())
	}
	if evaluationDate.IsZero() {
		*evaluationDate = utils.StartOfDay(s.now())
	}

	evaluation.EvaluationDate = *evaluationDate
	evaluation.Evaluator = input.Evaluator
	evaluation.MarketScore = scores.Market
	evaluation.FinancialScore = scores.Financial
	evaluation.OperationalScore = scores.Operational
	evaluation.RiskScore = scores.Risk
	evaluation.OverallScore = utils.RoundWithTwoDecimalPlace(overall)
	evaluation.Feedback = input.Feedback
	evaluation.NextSteps = input.NextSteps

	return nil
}

func (s *Service) ensurePlanExists(ctx context.Context, businessPlanID string) error {
	plan, err := s.planRepository.GetByID(ctx, businessPlanID)
	if err != nil {
		logrus.WithError(err).WithField("plan_id", businessPlanID).Error("Erro ao buscar plano da avaliação")
		return NewEvaluationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar plano no banco de dados")
	}

	if plan == nil {
		return NewEvaluationError(ErrPlanNotFound, apiErrors.ErrResourceNotFound, businessPlanID)
	}

	return nil
}
