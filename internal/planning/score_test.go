package planning

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateScores(t *testing.T) {
	tests := []struct {
		name   string
		scores EvaluationScores
		want   float64
	}{
		{"notas iguais", EvaluationScores{5, 5, 5, 5}, 5.0},
		{"extremos alternados", EvaluationScores{10, 1, 10, 1}, 5.5},
		{"mínimo", EvaluationScores{1, 1, 1, 1}, 1.0},
		{"máximo", EvaluationScores{10, 10, 10, 10}, 10.0},
		{"notas fracionadas", EvaluationScores{7.5, 8.25, 6.1, 9}, 7.7125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AggregateScores(tt.scores)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregateScores_IsPermutationInvariant(t *testing.T) {
	values := []float64{0.1 + 1, 2.7, 9.99, 3.3}
	expected, err := AggregateScores(EvaluationScores{values[0], values[1], values[2], values[3]})
	require.NoError(t, err)

	permutations := [][4]int{
		{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 0, 3, 2}, {2, 3, 0, 1},
		{0, 2, 1, 3}, {3, 1, 2, 0}, {1, 3, 0, 2}, {2, 0, 3, 1},
	}

	for _, p := range permutations {
		got, err := AggregateScores(EvaluationScores{values[p[0]], values[p[1]], values[p[2]], values[p[3]]})
		require.NoError(t, err)
		assert.Equal(t, expected, got, "permutação %v", p)
	}
}

func TestAggregateScores_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		scores EvaluationScores
		field  string
	}{
		{"mercado abaixo de 1", EvaluationScores{0, 5, 5, 5}, "market_score"},
		{"financeiro acima de 10", EvaluationScores{5, 10.5, 5, 5}, "financial_score"},
		{"operacional negativo", EvaluationScores{5, 5, -3, 5}, "operational_score"},
		{"risco NaN", EvaluationScores{5, 5, 5, math.NaN()}, "risk_score"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AggregateScores(tt.scores)
			require.ErrorIs(t, err, ErrScoreOutOfRange)

			planningErr, ok := err.(*PlanningError)
			require.True(t, ok)
			assert.Equal(t, tt.field, planningErr.Field)
		})
	}
}
