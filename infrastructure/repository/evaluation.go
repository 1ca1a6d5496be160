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

var evaluationColumns = []string{
	"e.id", "e.business_plan_id", "e.evaluation_date", "e.evaluator",
	"e.market_score", "e.financial_score", "e.operational_score", "e.risk_score", "e.overall_score",
	"e.feedback", "e.next_steps", "e.created_at", "e.updated_at",
}

//go:generate mockgen -source=evaluation.go -destination=mocks/evaluation.go -package=mocks

type EvaluationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Evaluation, error)
	ListByPlan(ctx context.Context, businessPlanID string) ([]*domain.Evaluation, error)
	Create(ctx context.Context, evaluation *domain.Evaluation) error
	Update(ctx context.Context, evaluation *domain.Evaluation) error
	Delete(ctx context.Context, id string) error
}

type evaluationRepository struct {
	conn postgres.Queryer
}

func NewEvaluationRepository(conn postgres.Queryer) EvaluationRepository {
	return &evaluationRepository{
		conn: conn,
	}
}

func (r *evaluationRepository) GetByID(ctx context.Context, id string) (*domain.Evaluation, error) {
	query, args, err := squirrel.
		Select(evaluationColumns...).
		From("evaluations e").
		Where(squirrel.Eq{"e.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	evaluation, err := scanEvaluation(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear avaliação: %w", err)
	}

	return evaluation, nil
}

func (r *evaluationRepository) ListByPlan(ctx context.Context, businessPlanID string) ([]*domain.Evaluation, error) {
	query, args, err := squirrel.
		Select(evaluationColumns...).
		From("evaluations e").
		Where(squirrel.Eq{"e.business_plan_id": businessPlanID}).
		OrderBy("e.evaluation_date DESC", "e.created_at DESC").
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

	evaluations := make([]*domain.Evaluation, 0)
	for rows.Next() {
		evaluation, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear avaliação: %w", err)
		}
		evaluations = append(evaluations, evaluation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return evaluations, nil
}

func (r *evaluationRepository) Create(ctx context.Context, evaluation *domain.Evaluation) error {
	query, args, err := squirrel.
		Insert("evaluations").
		SetMap(evaluationValues(evaluation)).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&evaluation.CreatedAt, &evaluation.UpdatedAt)
	if err != nil {
		return wrapDatabaseError(err)
	}

	return nil
}

func (r *evaluationRepository) Update(ctx context.Context, evaluation *domain.Evaluation) error {
	values := evaluationValues(evaluation)
	delete(values, "id")
	delete(values, "business_plan_id")
	values["updated_at"] = squirrel.Expr("CURRENT_TIMESTAMP")

	query, args, err := squirrel.
		Update("evaluations").
		SetMap(values).
		Where(squirrel.Eq{"id": evaluation.ID}).
		Suffix("RETURNING business_plan_id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).
		Scan(&evaluation.BusinessPlanID, &evaluation.CreatedAt, &evaluation.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return ErrNoRowsAffected
		}
		return wrapDatabaseError(err)
	}

	return nil
}

func (r *evaluationRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("evaluations").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return execAffectingRows(ctx, r.conn, query, args...)
}

func evaluationValues(evaluation *domain.Evaluation) map[string]interface{} {
	return map[string]interface{}{
		"id":                evaluation.ID,
		"business_plan_id":  evaluation.BusinessPlanID,
		"evaluation_date":   evaluation.EvaluationDate,
		"evaluator":         evaluation.Evaluator,
		"market_score":      evaluation.MarketScore,
		"financial_score":   evaluation.FinancialScore,
		"operational_score": evaluation.OperationalScore,
		"risk_score":        evaluation.RiskScore,
		"overall_score":     evaluation.OverallScore,
		"feedback":          evaluation.Feedback,
		"next_steps":        evaluation.NextSteps,
	}
}

func scanEvaluation(row rowScanner) (*domain.Evaluation, error) {
	evaluation := &domain.Evaluation{}

	err := row.Scan(
		&evaluation.ID,
		&evaluation.BusinessPlanID,
		&evaluation.EvaluationDate,
		&evaluation.Evaluator,
		&evaluation.MarketScore,
		&evaluation.FinancialScore,
		&evaluation.OperationalScore,
		&evaluation.RiskScore,
		&evaluation.OverallScore,
		&evaluation.Feedback,
		&evaluation.NextSteps,
		&evaluation.CreatedAt,
		&evaluation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return evaluation, nil
}
