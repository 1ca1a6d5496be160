package domain

import (
	"time"

	"github.com/vfg2006/partner-plan-api/internal/planning"
)

type Evaluation struct {
	ID               string    `json:"id"`
	BusinessPlanID   string    `json:"business_plan_id"`
	EvaluationDate   time.Time `json:"evaluation_date"`
	Evaluator        string    `json:"evaluator"`
	MarketScore      float64   `json:"market_score"`
	FinancialScore   float64   `json:"financial_score"`
	OperationalScore float64   `json:"operational_score"`
	RiskScore        float64   `json:"risk_score"`
	OverallScore     float64   `json:"overall_score"` // Sempre calculada pelo servidor
	Feedback         string    `json:"feedback"`
	NextSteps        string    `json:"next_steps"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (e *Evaluation) Scores() planning.EvaluationScores {
	return planning.EvaluationScores{
		Market:      e.MarketScore,
		Financial:   e.FinancialScore,
		Operational: e.OperationalScore,
		Risk:        e.RiskScore,
	}
}

type EvaluationInput struct {
	BusinessPlanID   string  `json:"business_plan_id"`
	EvaluationDate   string  `json:"evaluation_date"` // Formato yyyy-mm-dd, vazio = hoje
	Evaluator        string  `json:"evaluator"`
	MarketScore      float64 `json:"market_score"`
	FinancialScore   float64 `json:"financial_score"`
	OperationalScore float64 `json:"operational_score"`
	RiskScore        float64 `json:"risk_score"`
	Feedback         string  `json:"feedback"`
	NextSteps        string  `json:"next_steps"`
}
