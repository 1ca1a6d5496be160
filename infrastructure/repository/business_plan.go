package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/partner-plan-api/infrastructure/database/postgres"
	"github.com/vfg2006/partner-plan-api/internal/domain"
)

const (
	businessPlansTable = "business_plans bp"
)

// ErrNoRowsAffected indica que a escrita não encontrou o registro alvo
var ErrNoRowsAffected = errors.New("no rows affected")

// invalid_text_representation: o Postgres rejeita um id que não é UUID
const pqInvalidTextRepresentation = "22P02"

var businessPlanColumns = []string{
	"bp.id", "bp.reference", "bp.title", "bp.company_id", "bp.partner_id", "bp.partner_name",
	"bp.start_date", "bp.end_date", "bp.status", "bp.net_new_iacv",
	"bp.outbound_acv", "bp.outbound_sql_to_win_rate", "bp.outbound_tal_to_sql_rate", "bp.outbound_commission_rate",
	"bp.inbound_acv", "bp.inbound_sql_to_win_rate", "bp.inbound_tal_to_sql_rate", "bp.inbound_commission_rate",
	"bp.team_ctc", "bp.travel", "bp.marketing", "bp.tools_and_office",
	"bp.partner_contribution", "bp.owner_contribution",
	"bp.inbound_commission", "bp.outbound_commission",
	"bp.contract_terms", "bp.exit_clauses", "bp.kpis", "bp.created_at", "bp.updated_at",
}

//go:generate mockgen -source=business_plan.go -destination=mocks/business_plan.go -package=mocks

type BusinessPlanRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BusinessPlan, error)
	List(ctx context.Context, filter domain.BusinessPlanFilter) ([]*domain.BusinessPlan, error)
	Create(ctx context.Context, plan *domain.BusinessPlan) error
	Update(ctx context.Context, plan *domain.BusinessPlan) error
	UpdateStatus(ctx context.Context, id string, status domain.BusinessPlanStatus) error
	Delete(ctx context.Context, id string) error
	CompleteExpired(ctx context.Context, reference time.Time) (int64, error)
}

type businessPlanRepository struct {
	conn postgres.Queryer
}

func NewBusinessPlanRepository(conn postgres.Queryer) BusinessPlanRepository {
	return &businessPlanRepository{
		conn: conn,
	}
}

func (r *businessPlanRepository) GetByID(ctx context.Context, id string) (*domain.BusinessPlan, error) {
	query, args, err := squirrel.
		Select(businessPlanColumns...).
		From(businessPlansTable).
		Where(squirrel.Eq{"bp.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	plan, err := scanBusinessPlan(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear plano de negócios: %w", err)
	}

	return plan, nil
}

func (r *businessPlanRepository) List(ctx context.Context, filter domain.BusinessPlanFilter) ([]*domain.BusinessPlan, error) {
	queryBuilder := squirrel.
		Select(businessPlanColumns...).
		From(businessPlansTable).
		OrderBy("bp.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filter.Status) > 0 {
		statuses := make([]string, 0, len(filter.Status))
		for _, status := range filter.Status {
			statuses = append(statuses, string(status))
		}
		queryBuilder = queryBuilder.Where(squirrel.Eq{"bp.status": statuses})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	plans := make([]*domain.BusinessPlan, 0)
	for rows.Next() {
		plan, err := scanBusinessPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear plano de negócios: %w", err)
		}
		plans = append(plans, plan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return plans, nil
}

func (r *businessPlanRepository) Create(ctx context.Context, plan *domain.BusinessPlan) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("business_plans").
		SetMap(businessPlanValues(plan)).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return wrapDatabaseError(err)
	}

	return nil
}

func (r *businessPlanRepository) Update(ctx context.Context, plan *domain.BusinessPlan) error {
	values := businessPlanValues(plan)
	delete(values, "id")
	delete(values, "reference")
	values["updated_at"] = squirrel.Expr("CURRENT_TIMESTAMP")

	query, args, err := squirrel.
		Update("business_plans").
		SetMap(values).
		Where(squirrel.Eq{"id": plan.ID}).
		Suffix("RETURNING reference, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&plan.Reference, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return ErrNoRowsAffected
		}
		return wrapDatabaseError(err)
	}

	return nil
}

func (r *businessPlanRepository) UpdateStatus(ctx context.Context, id string, status domain.BusinessPlanStatus) error {
	query, args, err := squirrel.
		Update("business_plans").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return execAffectingRows(ctx, r.conn, query, args...)
}

func (r *businessPlanRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("business_plans").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return execAffectingRows(ctx, r.conn, query, args...)
}

// CompleteExpired marca como concluídos os planos ativos cujo fim é anterior à data de referência
func (r *businessPlanRepository) CompleteExpired(ctx context.Context, reference time.Time) (int64, error) {
	query, args, err := squirrel.
		Update("business_plans").
		Set("status", string(domain.BusinessPlanStatusCompleted)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"status": string(domain.BusinessPlanStatusActive)}).
		Where(squirrel.Lt{"end_date": reference}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrapDatabaseError(err)
	}

	return result.RowsAffected()
}

func businessPlanValues(plan *domain.BusinessPlan) map[string]interface{} {
	return map[string]interface{}{
		"id":                       plan.ID,
		"reference":                plan.Reference,
		"title":                    plan.Title,
		"company_id":               plan.CompanyID,
		"partner_id":               plan.PartnerID,
		"partner_name":             plan.PartnerName,
		"start_date":               plan.StartDate,
		"end_date":                 plan.EndDate,
		"status":                   string(plan.Status),
		"net_new_iacv":             plan.NetNewIACV,
		"outbound_acv":             plan.SalesMetrics.Outbound.AverageDealSize,
		"outbound_sql_to_win_rate": plan.SalesMetrics.Outbound.SQLToWinRate,
		"outbound_tal_to_sql_rate": plan.SalesMetrics.Outbound.TALToSQLRate,
		"outbound_commission_rate": plan.SalesMetrics.Outbound.CommissionRate,
		"inbound_acv":              plan.SalesMetrics.Inbound.AverageDealSize,
		"inbound_sql_to_win_rate":  plan.SalesMetrics.Inbound.SQLToWinRate,
		"inbound_tal_to_sql_rate":  plan.SalesMetrics.Inbound.TALToSQLRate,
		"inbound_commission_rate":  plan.SalesMetrics.Inbound.CommissionRate,
		"team_ctc":                 plan.Costs.TeamCTC,
		"travel":                   plan.Costs.Travel,
		"marketing":                plan.Costs.Marketing,
		"tools_and_office":         plan.Costs.ToolsAndOffice,
		"partner_contribution":     plan.Contributions.Partner,
		"owner_contribution":       plan.Contributions.Owner,
		"inbound_commission":       plan.Commissions.Inbound,
		"outbound_commission":      plan.Commissions.Outbound,
		"contract_terms":           plan.ContractTerms,
		"exit_clauses":             plan.ExitClauses,
		"kpis":                     plan.KPIs,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBusinessPlan(row rowScanner) (*domain.BusinessPlan, error) {
	plan := &domain.BusinessPlan{}

	err := row.Scan(
		&plan.ID,
		&plan.Reference,
		&plan.Title,
		&plan.CompanyID,
		&plan.PartnerID,
		&plan.PartnerName,
		&plan.StartDate,
		&plan.EndDate,
		&plan.Status,
		&plan.NetNewIACV,
		&plan.SalesMetrics.Outbound.AverageDealSize,
		&plan.SalesMetrics.Outbound.SQLToWinRate,
		&plan.SalesMetrics.Outbound.TALToSQLRate,
		&plan.SalesMetrics.Outbound.CommissionRate,
		&plan.SalesMetrics.Inbound.AverageDealSize,
		&plan.SalesMetrics.Inbound.SQLToWinRate,
		&plan.SalesMetrics.Inbound.TALToSQLRate,
		&plan.SalesMetrics.Inbound.CommissionRate,
		&plan.Costs.TeamCTC,
		&plan.Costs.Travel,
		&plan.Costs.Marketing,
		&plan.Costs.ToolsAndOffice,
		&plan.Contributions.Partner,
		&plan.Contributions.Owner,
		&plan.Commissions.Inbound,
		&plan.Commissions.Outbound,
		&plan.ContractTerms,
		&plan.ExitClauses,
		&plan.KPIs,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return plan, nil
}

func execAffectingRows(ctx context.Context, conn postgres.Queryer, query string, args ...interface{}) error {
	result, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return ErrNoRowsAffected
		}
		return wrapDatabaseError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func wrapDatabaseError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("failed to execute query: %w", err)
}

// isInvalidID indica que o id da consulta não é um UUID válido; tratado como registro inexistente
func isInvalidID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqInvalidTextRepresentation
}
