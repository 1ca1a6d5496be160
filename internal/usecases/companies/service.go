package companies

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-plan-api/infrastructure/repository"
	"github.com/vfg2006/partner-plan-api/internal/domain"
	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
)

// CompanyService atende os dois cadastros: empresas (isPartner=false) e parceiros (isPartner=true)
type CompanyService interface {
	List(ctx context.Context, isPartner bool) ([]*domain.Company, error)
	Get(ctx context.Context, id string, isPartner bool) (*domain.Company, error)
	Create(ctx context.Context, input *domain.CompanyInput, isPartner bool) (*domain.Company, error)
}

type Service struct {
	companyRepository repository.CompanyRepository
}

func NewService(companyRepository repository.CompanyRepository) CompanyService {
	return &Service{
		companyRepository: companyRepository,
	}
}

func (s *Service) List(ctx context.Context, isPartner bool) ([]*domain.Company, error) {
	companies, err := s.companyRepository.List(ctx, isPartner)
	if err != nil {
		logrus.WithError(err).WithField("is_partner", isPartner).Error("Erro ao listar empresas")
		return nil, NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar empresas no banco de dados")
	}

	return companies, nil
}

// Get só devolve o registro do cadastro pedido; um parceiro não é encontrado como empresa e vice-versa
func (s *Service) Get(ctx context.Context, id string, isPartner bool) (*domain.Company, error) {
	company, err := s.companyRepository.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("company_id", id).Error("Erro ao buscar empresa")
		return nil, NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar empresa no banco de dados")
	}

	if company == nil || company.IsPartner != isPartner {
		return nil, NewCompanyError(notFoundErr(isPartner), apiErrors.ErrResourceNotFound, id)
	}

	return company, nil
}

func (s *Service) Create(ctx context.Context, input *domain.CompanyInput, isPartner bool) (*domain.Company, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, NewCompanyError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "")
	}

	size := domain.CompanySize(strings.ToLower(string(input.Size)))
	if !size.IsValid() {
		return nil, NewCompanyError(ErrInvalidSize, apiErrors.ErrInvalidRequest, fmt.Sprintf("tamanho desconhecido: %s", input.Size))
	}

	company := &domain.Company{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		Logo:      input.Logo,
		Website:   input.Website,
		Industry:  input.Industry,
		Size:      size,
		Address:   input.Address,
		Phone:     input.Phone,
		IsPartner: isPartner,
	}

	if err := s.companyRepository.Create(ctx, company); err != nil {
		logrus.WithError(err).WithField("name", company.Name).Error("Erro ao criar empresa")
		return nil, NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar empresa no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"company_id": company.ID,
		"is_partner": isPartner,
	}).Info("Empresa cadastrada")

	return company, nil
}

func notFoundErr(isPartner bool) error {
	if isPartner {
		return ErrPartnerNotFound
	}
	return ErrCompanyNotFound
}
