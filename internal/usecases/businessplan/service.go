package businessplan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-plan-api/infrastructure/repository"
	"github.com/vfg2006/partner-plan-api/internal/domain"
	"github.com/vfg2006/partner-plan-api/internal/planning"
	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
	"github.com/vfg2006/partner-plan-api/pkg/utils"
)

type BusinessPlanService interface {
	Create(ctx context.Context, input *domain.BusinessPlanInput) (*domain.BusinessPlanView, error)
	Get(ctx context.Context, id string) (*domain.BusinessPlanView, error)
	List(ctx context.Context, filter domain.BusinessPlanFilter) ([]*domain.BusinessPlanView, error)
	Update(ctx context.Context, id string, input *domain.BusinessPlanInput) (*domain.BusinessPlanView, error)
	UpdateStatus(ctx context.Context, id string, status domain.BusinessPlanStatus) error
	Delete(ctx context.Context, id string) error
	Preview(ctx context.Context, input *domain.BusinessPlanInput) (*domain.BusinessPlanView, error)
}

type Service struct {
	planRepository    repository.BusinessPlanRepository
	companyRepository repository.CompanyRepository
}

func NewService(
	planRepository repository.BusinessPlanRepository,
	companyRepository repository.CompanyRepository,
) BusinessPlanService {
	return &Service{
		planRepository:    planRepository,
		companyRepository: companyRepository,
	}
}

// Create valida o plano recalculando o funil antes de gravar, assim entradas
// inválidas nunca chegam ao banco.
func (s *Service) Create(ctx context.Context, input *domain.BusinessPlanInput) (*domain.BusinessPlanView, error) {
	plan, err := planFromInput(input)
	if err != nil {
		return nil, err
	}
	if plan.Status == "" {
		plan.Status = domain.BusinessPlanStatusDraft
	}

	view, err := BuildView(plan)
	if err != nil {
		return nil, err
	}

	if err := s.resolveParties(ctx, plan); err != nil {
		return nil, err
	}

	reference, err := utils.GenerateReference()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar referência do plano")
		return nil, NewBusinessPlanError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	plan.ID = uuid.New().String()
	plan.Reference = reference

	if err := s.planRepository.Create(ctx, plan); err != nil {
		logrus.WithError(err).WithField("reference", reference).Error("Erro ao criar plano de negócios")
		return nil, NewBusinessPlanError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar plano no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"plan_id":   plan.ID,
		"reference": plan.Reference,
	}).Info("Plano de negócios criado")

	return view, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.BusinessPlanView, error) {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	return BuildView(plan)
}

func (s *Service) List(ctx context.Context, filter domain.BusinessPlanFilter) ([]*domain.BusinessPlanView, error) {
	for _, status := range filter.Status {
		if !status.IsValid() {
			return nil, NewBusinessPlanError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, fmt.Sprintf("status desconhecido: %s", status))
		}
	}

	plans, err := s.planRepository.List(ctx, filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar planos de negócios")
		return nil, NewBusinessPlanError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar planos no banco de dados")
	}

	views := make([]*domain.BusinessPlanView, 0, len(plans))
	for _, plan := range plans {
		view, err := BuildView(plan)
		if err != nil {
			logrus.WithError(err).WithField("plan_id", plan.ID).Error("Plano gravado com entradas inválidas")
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// Update substitui as entradas do plano. Sem status no corpo, o status gravado é mantido.
func (s *Service) Update(ctx context.Context, id string, input *domain.BusinessPlanInput) (*domain.BusinessPlanView, error) {
	plan, err := planFromInput(input)
	if err != nil {
		return nil, err
	}

	view, err := BuildView(plan)
	if err != nil {
		return nil, err
	}

	if plan.Status == "" {
		stored, err := s.getPlan(ctx, id)
		if err != nil {
			return nil, err
		}
		plan.Status = stored.Status
	}

	if err := s.resolveParties(ctx, plan); err != nil {
		return nil, err
	}

	plan.ID = id
	if err := s.planRepository.Update(ctx, plan); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return nil, NewBusinessPlanErrorWithID(ErrPlanNotFound, apiErrors.ErrResourceNotFound, id, "")
		}
		logrus.WithError(err).WithField("plan_id", id).Error("Erro ao atualizar plano de negócios")
		return nil, NewBusinessPlanErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar plano no banco de dados")
	}

	return view, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.BusinessPlanStatus) error {
	if !status.IsValid() {
		return NewBusinessPlanErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, id, fmt.Sprintf("status desconhecido: %s", status))
	}

	if err := s.planRepository.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return NewBusinessPlanErrorWithID(ErrPlanNotFound, apiErrors.ErrResourceNotFound, id, "")
		}
		logrus.WithError(err).WithField("plan_id", id).Error("Erro ao atualizar status do plano")
		return NewBusinessPlanErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar status no banco de dados")
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.planRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return NewBusinessPlanErrorWithID(ErrPlanNotFound, apiErrors.ErrResourceNotFound, id, "")
		}
		logrus.WithError(err).WithField("plan_id", id).Error("Erro ao remover plano de negócios")
		return NewBusinessPlanErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao remover plano no banco de dados")
	}

	return nil
}

// Preview recalcula o plano para o formulário sem gravar nada
func (s *Service) Preview(_ context.Context, input *domain.BusinessPlanInput) (*domain.BusinessPlanView, error) {
	plan, err := planFromInput(input)
	if err != nil {
		return nil, err
	}
	if plan.Status == "" {
		plan.Status = domain.BusinessPlanStatusDraft
	}

	return BuildView(plan)
}

// resolveParties confere a empresa e o parceiro referenciados pelo plano e
// completa o nome do parceiro a partir do cadastro quando ele não vem no corpo.
func (s *Service) resolveParties(ctx context.Context, plan *domain.BusinessPlan) error {
	if plan.CompanyID != "" {
		company, err := s.lookupCompany(ctx, plan.CompanyID)
		if err != nil {
			return err
		}
		if company == nil || company.IsPartner {
			return NewBusinessPlanError(ErrCompanyNotFound, apiErrors.ErrInvalidRequest, plan.CompanyID)
		}
	}

	if plan.PartnerID != "" {
		partner, err := s.lookupCompany(ctx, plan.PartnerID)
		if err != nil {
			return err
		}
		if partner == nil || !partner.IsPartner {
			return NewBusinessPlanError(ErrPartnerNotFound, apiErrors.ErrInvalidRequest, plan.PartnerID)
		}
		if plan.PartnerName == "" {
			plan.PartnerName = partner.Name
		}
	}

	return nil
}

func (s *Service) lookupCompany(ctx context.Context, id string) (*domain.Company, error) {
	company, err := s.companyRepository.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("company_id", id).Error("Erro ao buscar empresa do plano")
		return nil, NewBusinessPlanError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar empresa no banco de dados")
	}
	return company, nil
}

func (s *Service) getPlan(ctx context.Context, id string) (*domain.BusinessPlan, error) {
	plan, err := s.planRepository.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("plan_id", id).Error("Erro ao buscar plano de negócios")
		return nil, NewBusinessPlanErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar plano no banco de dados")
	}

	if plan == nil {
		return nil, NewBusinessPlanErrorWithID(ErrPlanNotFound, apiErrors.ErrResourceNotFound, id, "")
	}

	return plan, nil
}

// BuildView deriva o funil e o demonstrativo a partir das entradas gravadas.
// A receita do demonstrativo é a soma da receita trimestral do funil.
func BuildView(plan *domain.BusinessPlan) (*domain.BusinessPlanView, error) {
	funnel, err := planning.Derive(plan.NetNewIACV, plan.SalesMetrics)
	if err != nil {
		return nil, err
	}

	if err := plan.Contributions.Validate(); err != nil {
		return nil, err
	}

	profitLoss, err := planning.AggregateProfitLoss(planning.TotalRevenue(funnel), plan.Costs, plan.Commissions)
	if err != nil {
		return nil, err
	}

	return &domain.BusinessPlanView{
		Plan:       plan,
		Funnel:     funnel,
		ProfitLoss: profitLoss,
	}, nil
}

func planFromInput(input *domain.BusinessPlanInput) (*domain.BusinessPlan, error) {
	if input == nil {
		return nil, NewBusinessPlanError(ErrTitleRequired, apiErrors.ErrMissingRequiredData, "corpo da requisição vazio")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, NewBusinessPlanError(ErrTitleRequired, apiErrors.ErrMissingRequiredData, "")
	}

	// Status vazio fica a cargo de quem chama: rascunho na criação, o gravado na edição
	status := input.Status
	if status != "" && !status.IsValid() {
		return nil, NewBusinessPlanError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, fmt.Sprintf("status desconhecido: %s", status))
	}

	if input.StartDate == "" || input.EndDate == "" {
		return nil, NewBusinessPlanError(ErrInvalidDates, apiErrors.ErrMissingRequiredData, "start_date e end_date são obrigatórios")
	}

	startDate, err := utils.ParseDate(input.StartDate)
	if err != nil {
		return nil, NewBusinessPlanError(ErrInvalidDates, apiErrors.ErrInvalidFormat, err.Error())
	}

	endDate, err := utils.ParseDate(input.EndDate)
	if err != nil {
		return nil, NewBusinessPlanError(ErrInvalidDates, apiErrors.ErrInvalidFormat, err.Error())
	}

	if endDate.Before(*startDate) {
		return nil, NewBusinessPlanError(ErrInvalidDates, apiErrors.ErrInvalidRequest, "end_date anterior a start_date")
	}

	return &domain.BusinessPlan{
		Title:         title,
		CompanyID:     strings.TrimSpace(input.CompanyID),
		PartnerID:     strings.TrimSpace(input.PartnerID),
		PartnerName:   strings.TrimSpace(input.PartnerName),
		StartDate:     *startDate,
		EndDate:       *endDate,
		Status:        status,
		NetNewIACV:    input.NetNewIACV,
		SalesMetrics:  input.SalesMetrics,
		Costs:         input.Costs,
		Contributions: input.Contributions,
		Commissions:   input.Commissions,
		ContractTerms: input.ContractTerms,
		ExitClauses:   input.ExitClauses,
		KPIs:          input.KPIs,
	}, nil
}
