package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/partner-plan-api/infrastructure/database/postgres"
	"github.com/vfg2006/partner-plan-api/internal/domain"
)

var companyColumns = []string{
	"c.id", "c.name", "c.logo", "c.website", "c.industry", "c.size",
	"c.address", "c.phone", "c.is_partner", "c.created_at", "c.updated_at",
}

//go:generate mockgen -source=company.go -destination=mocks/company.go -package=mocks

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context, isPartner bool) ([]*domain.Company, error)
	Create(ctx context.Context, company *domain.Company) error
}

type companyRepository struct {
	conn postgres.Queryer
}

func NewCompanyRepository(conn postgres.Queryer) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns...).
		From("companies c").
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	company, err := scanCompany(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
	}

	return company, nil
}

func (r *companyRepository) List(ctx context.Context, isPartner bool) ([]*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns...).
		From("companies c").
		Where(squirrel.Eq{"c.is_partner": isPartner}).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
		}
		companies = append(companies, company)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return companies, nil
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	query, args, err := squirrel.
		Insert("companies").
		SetMap(map[string]interface{}{
			"id":         company.ID,
			"name":       company.Name,
			"logo":       company.Logo,
			"website":    company.Website,
			"industry":   company.Industry,
			"size":       string(company.Size),
			"address":    company.Address,
			"phone":      company.Phone,
			"is_partner": company.IsPartner,
		}).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return wrapDatabaseError(err)
	}

	return nil
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	company := &domain.Company{}

	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Logo,
		&company.Website,
		&company.Industry,
		&company.Size,
		&company.Address,
		&company.Phone,
		&company.IsPartner,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return company, nil
}
