package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookkeepingEntry registra o valor planejado e o realizado de uma categoria no mês
type BookkeepingEntry struct {
	ID             string              `json:"id"`
	BusinessPlanID string              `json:"business_plan_id"`
	Month          time.Time           `json:"month"` // Sempre o primeiro dia do mês
	Category       string              `json:"category"`
	Subcategory    string              `json:"subcategory"`
	PlannedAmount  decimal.Decimal     `json:"planned_amount"`
	ActualAmount   decimal.NullDecimal `json:"actual_amount"`
	Notes          string              `json:"notes"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type BookkeepingEntryInput struct {
	BusinessPlanID string           `json:"business_plan_id"`
	Month          string           `json:"month"` // Formato yyyy-mm-dd, qualquer dia do mês
	Category       string           `json:"category"`
	Subcategory    string           `json:"subcategory"`
	PlannedAmount  decimal.Decimal  `json:"planned_amount"`
	ActualAmount   *decimal.Decimal `json:"actual_amount"`
	Notes          string           `json:"notes"`
}

type BookkeepingCategorySummary struct {
	Category string          `json:"category"`
	Planned  decimal.Decimal `json:"planned"`
	Actual   decimal.Decimal `json:"actual"`
	Variance decimal.Decimal `json:"variance"` // Realizado - planejado
}

type BookkeepingSummary struct {
	BusinessPlanID string                       `json:"business_plan_id"`
	Categories     []BookkeepingCategorySummary `json:"categories"`
	TotalPlanned   decimal.Decimal              `json:"total_planned"`
	TotalActual    decimal.Decimal              `json:"total_actual"`
	TotalVariance  decimal.Decimal              `json:"total_variance"`
}
