package planning

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	MinScore = 1
	MaxScore = 10
)

// EvaluationScores são as quatro notas da rubrica de avaliação do plano
type EvaluationScores struct {
	Market      float64 `json:"market_score"`
	Financial   float64 `json:"financial_score"`
	Operational float64 `json:"operational_score"`
	Risk        float64 `json:"risk_score"`
}

// AggregateScores retorna a média simples das quatro notas. A soma é feita em
// aritmética decimal, então o resultado não depende da ordem das notas.
func AggregateScores(scores EvaluationScores) (float64, error) {
	named := []struct {
		field string
		value float64
	}{
		{"market_score", scores.Market},
		{"financial_score", scores.Financial},
		{"operational_score", scores.Operational},
		{"risk_score", scores.Risk},
	}

	sum := decimal.Zero
	for _, score := range named {
		if math.IsNaN(score.value) || score.value < MinScore || score.value > MaxScore {
			return 0, NewPlanningError(ErrScoreOutOfRange, score.field,
				fmt.Sprintf("score must be in [%d, %d], got %v", MinScore, MaxScore, score.value))
		}
		sum = sum.Add(decimal.NewFromFloat(score.value))
	}

	return sum.Div(decimal.NewFromInt(int64(len(named)))).InexactFloat64(), nil
}
