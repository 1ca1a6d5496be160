package planning

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateProfitLoss(t *testing.T) {
	tests := []struct {
		name        string
		revenue     decimal.Decimal
		costs       CostBreakdown
		commissions Commissions
		wantCosts   string
		wantComm    string
		wantPBIT    string
		wantLoss    bool
	}{
		{
			name:    "plano padrão",
			revenue: decimal.NewFromInt(120000),
			costs: CostBreakdown{
				TeamCTC:        decimal.Zero,
				Travel:         decimal.Zero,
				Marketing:      decimal.NewFromInt(2325),
				ToolsAndOffice: decimal.Zero,
			},
			commissions: Commissions{
				Inbound:  decimal.NewFromInt(21450),
				Outbound: decimal.NewFromInt(13800),
			},
			wantCosts: "2325",
			wantComm:  "35250",
			wantPBIT:  "82425",
		},
		{
			name:    "prejuízo é um resultado válido",
			revenue: decimal.NewFromInt(10000),
			costs: CostBreakdown{
				TeamCTC:   decimal.NewFromInt(8000),
				Travel:    decimal.RequireFromString("1500.50"),
				Marketing: decimal.NewFromInt(500),
			},
			commissions: Commissions{
				Inbound:  decimal.NewFromInt(1000),
				Outbound: decimal.RequireFromString("250.25"),
			},
			wantCosts: "10000.5",
			wantComm:  "1250.25",
			wantPBIT:  "-1250.75",
			wantLoss:  true,
		},
		{
			name:      "tudo zerado",
			revenue:   decimal.Zero,
			wantCosts: "0",
			wantComm:  "0",
			wantPBIT:  "0",
		},
		{
			name:    "valores com mais de duas casas são arredondados",
			revenue: decimal.RequireFromString("100.005"),
			costs: CostBreakdown{
				Marketing: decimal.RequireFromString("10.004"),
			},
			wantCosts: "10",
			wantComm:  "0",
			wantPBIT:  "90.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement, err := AggregateProfitLoss(tt.revenue, tt.costs, tt.commissions)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCosts, statement.TotalCosts.String())
			assert.Equal(t, tt.wantComm, statement.TotalCommissions.String())
			assert.Equal(t, tt.wantPBIT, statement.PBIT.String())
			assert.Equal(t, tt.wantLoss, statement.Loss)

			// pbit = receita - (custos + comissões)
			expected := statement.TotalRevenue.Sub(tt.costs.Total()).Sub(tt.commissions.Total())
			assert.True(t, expected.Equal(statement.PBIT))
		})
	}
}

// Cada valor é arredondado para duas casas antes da soma, então o PBIT é
// calculado sobre os valores exibidos e não sobre as entradas brutas.
func TestAggregateProfitLoss_RoundsEachAmountBeforeSumming(t *testing.T) {
	half := decimal.RequireFromString("0.005")
	revenue := decimal.RequireFromString("1000.004")
	costs := CostBreakdown{TeamCTC: half, Travel: half, Marketing: half, ToolsAndOffice: half}
	commissions := Commissions{
		Inbound:  decimal.RequireFromString("10.005"),
		Outbound: decimal.RequireFromString("0.004"),
	}

	statement, err := AggregateProfitLoss(revenue, costs, commissions)
	require.NoError(t, err)

	assert.Equal(t, "1000", statement.TotalRevenue.String())
	assert.Equal(t, "0.04", statement.TotalCosts.String())
	assert.Equal(t, "10.01", statement.TotalCommissions.String())
	assert.Equal(t, "989.95", statement.PBIT.String())

	raw := revenue.Sub(half.Mul(decimal.NewFromInt(4))).Sub(commissions.Inbound).Sub(commissions.Outbound)
	assert.Equal(t, "989.975", raw.String())
	assert.False(t, raw.Equal(statement.PBIT))
}

func TestAggregateProfitLoss_NegativeInputs(t *testing.T) {
	tests := []struct {
		name        string
		revenue     decimal.Decimal
		costs       CostBreakdown
		commissions Commissions
		field       string
	}{
		{
			name:    "receita negativa",
			revenue: decimal.NewFromInt(-1),
			field:   "total_revenue",
		},
		{
			name:    "custo de viagem negativo",
			revenue: decimal.NewFromInt(100),
			costs:   CostBreakdown{Travel: decimal.NewFromInt(-5)},
			field:   "costs.travel",
		},
		{
			name:        "comissão outbound negativa",
			revenue:     decimal.NewFromInt(100),
			commissions: Commissions{Outbound: decimal.RequireFromString("-0.01")},
			field:       "commissions.outbound",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement, err := AggregateProfitLoss(tt.revenue, tt.costs, tt.commissions)
			assert.Nil(t, statement)
			require.ErrorIs(t, err, ErrNegativeInput)

			var planningErr *PlanningError
			require.True(t, errors.As(err, &planningErr))
			assert.Equal(t, tt.field, planningErr.Field)
		})
	}
}

func TestTotalRevenue(t *testing.T) {
	plan, err := Derive(120000, defaultRates())
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(120000).Equal(TotalRevenue(plan)))
	assert.True(t, decimal.Zero.Equal(TotalRevenue(nil)))
}

func TestContributions_Validate(t *testing.T) {
	assert.NoError(t, Contributions{Partner: decimal.NewFromInt(2325), Owner: decimal.NewFromInt(13175)}.Validate())
	assert.ErrorIs(t, Contributions{Owner: decimal.NewFromInt(-1)}.Validate(), ErrNegativeInput)
}
