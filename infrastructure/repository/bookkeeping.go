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

var bookkeepingColumns = []string{
	"b.id", "b.business_plan_id", "b.month", "b.category", "b.subcategory",
	"b.planned_amount", "b.actual_amount", "b.notes", "b.created_at", "b.updated_at",
}

//go:generate mockgen -source=bookkeeping.go -destination=mocks/bookkeeping.go -package=mocks

type BookkeepingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BookkeepingEntry, error)
	ListByPlan(ctx context.Context, businessPlanID string) ([]*domain.BookkeepingEntry, error)
	Create(ctx context.Context, entry *domain.BookkeepingEntry) error
	Update(ctx context.Context, entry *domain.BookkeepingEntry) error
	Delete(ctx context.Context, id string) error
}

type bookkeepingRepository struct {
	conn postgres.Queryer
}

func NewBookkeepingRepository(conn postgres.Queryer) BookkeepingRepository {
	return &bookkeepingRepository{
		conn: conn,
	}
}

func (r *bookkeepingRepository) GetByID(ctx context.Context, id string) (*domain.BookkeepingEntry, error) {
	query, args, err := squirrel.
		Select(bookkeepingColumns...).
		From("bookkeeping_entries b").
		Where(squirrel.Eq{"b.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry, err := scanBookkeepingEntry(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
	}

	return entry, nil
}

// ListByPlan retorna os lançamentos do plano ordenados por mês e categoria
func (r *bookkeepingRepository) ListByPlan(ctx context.Context, businessPlanID string) ([]*domain.BookkeepingEntry, error) {
	query, args, err := squirrel.
		Select(bookkeepingColumns...).
		From("bookkeeping_entries b").
		Where(squirrel.Eq{"b.business_plan_id": businessPlanID}).
		OrderBy("b.month ASC", "b.category ASC", "b.subcategory ASC").
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

	entries := make([]*domain.BookkeepingEntry, 0)
	for rows.Next() {
		entry, err := scanBookkeepingEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *bookkeepingRepository) Create(ctx context.Context, entry *domain.BookkeepingEntry) error {
	query, args, err := squirrel.
		Insert("bookkeeping_entries").
		SetMap(bookkeepingValues(entry)).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return wrapDatabaseError(err)
	}

	return nil
}

func (r *bookkeepingRepository) Update(ctx context.Context, entry *domain.BookkeepingEntry) error {
	values := bookkeepingValues(entry)
	delete(values, "id")
	delete(values, "business_plan_id")
	values["updated_at"] = squirrel.Expr("CURRENT_TIMESTAMP")

	query, args, err := squirrel.
		Update("bookkeeping_entries").
		SetMap(values).
		Where(squirrel.Eq{"id": entry.ID}).
		Suffix("RETURNING business_plan_id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).
		Scan(&entry.BusinessPlanID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return ErrNoRowsAffected
		}
		return wrapDatabaseError(err)
	}

	return nil
}

func (r *bookkeepingRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("bookkeeping_entries").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return execAffectingRows(ctx, r.conn, query, args...)
}

func bookkeepingValues(entry *domain.BookkeepingEntry) map[string]interface{} {
	return map[string]interface{}{
		"id":               entry.ID,
		"business_plan_id": entry.BusinessPlanID,
		"month":            entry.Month,
		"category":         entry.Category,
		"subcategory":      entry.Subcategory,
		"planned_amount":   entry.PlannedAmount,
		"actual_amount":    entry.ActualAmount,
		"notes":            entry.Notes,
	}
}

func scanBookkeepingEntry(row rowScanner) (*domain.BookkeepingEntry, error) {
	entry := &domain.BookkeepingEntry{}

	err := row.Scan(
		&entry.ID,
		&entry.BusinessPlanID,
		&entry.Month,
		&entry.Category,
		&entry.Subcategory,
		&entry.PlannedAmount,
		&entry.ActualAmount,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}
