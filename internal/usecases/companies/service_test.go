package companies

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/partner-plan-api/infrastructure/repository/mocks"
	"github.com/vfg2006/partner-plan-api/internal/domain"
	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		isPartner bool
	}{
		{name: "empresa", isPartner: false},
		{name: "parceiro", isPartner: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockCompanyRepository(ctrl)
			service := NewService(mockRepo)

			mockRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, company *domain.Company) error {
					assert.NotEmpty(t, company.ID)
					assert.Equal(t, tt.isPartner, company.IsPartner)
					return nil
				})

			company, err := service.Create(context.Background(), &domain.CompanyInput{
				Name: "  Acme Consultoria ",
				Size: "Medium",
			}, tt.isPartner)
			require.NoError(t, err)
			assert.Equal(t, "Acme Consultoria", company.Name)
			assert.Equal(t, domain.CompanySizeMedium, company.Size)
		})
	}
}

func TestService_Create_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada esperada no repositório
	service := NewService(mocks.NewMockCompanyRepository(ctrl))

	_, err := service.Create(context.Background(), &domain.CompanyInput{Name: " "}, false)
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = service.Create(context.Background(), nil, true)
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = service.Create(context.Background(), &domain.CompanyInput{Name: "Acme", Size: "huge"}, false)
	require.ErrorIs(t, err, ErrInvalidSize)

	var companyErr *CompanyError
	require.ErrorAs(t, err, &companyErr)
	assert.Equal(t, apiErrors.ErrInvalidRequest, companyErr.Code)
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCompanyRepository(ctrl)
	service := NewService(mockRepo)

	partner := &domain.Company{ID: "p-1", Name: "Acme", IsPartner: true}

	t.Run("parceiro encontrado", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(partner, nil)

		company, err := service.Get(context.Background(), "p-1", true)
		require.NoError(t, err)
		assert.Equal(t, partner, company)
	})

	t.Run("parceiro não é listado como empresa", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(partner, nil)

		_, err := service.Get(context.Background(), "p-1", false)
		require.ErrorIs(t, err, ErrCompanyNotFound)

		var companyErr *CompanyError
		require.ErrorAs(t, err, &companyErr)
		assert.Equal(t, apiErrors.ErrResourceNotFound, companyErr.Code)
	})

	t.Run("inexistente", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		_, err := service.Get(context.Background(), "missing", true)
		require.ErrorIs(t, err, ErrPartnerNotFound)
	})

	t.Run("erro de banco", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "c-2").Return(nil, errors.New("timeout"))

		_, err := service.Get(context.Background(), "c-2", false)
		require.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCompanyRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().List(gomock.Any(), true).Return([]*domain.Company{{ID: "p-1", IsPartner: true}}, nil)
	partners, err := service.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, partners, 1)

	mockRepo.EXPECT().List(gomock.Any(), false).Return(nil, errors.New("connection refused"))
	_, err = service.List(context.Background(), false)
	require.ErrorIs(t, err, ErrDatabaseOperation)
}
