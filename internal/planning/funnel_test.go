package planning

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRates() ChannelRates {
	return ChannelRates{
		Outbound: RateParameters{AverageDealSize: 6000, SQLToWinRate: 20, TALToSQLRate: 10, CommissionRate: 20},
		Inbound:  RateParameters{AverageDealSize: 5000, SQLToWinRate: 15, TALToSQLRate: 50, CommissionRate: 15},
	}
}

func TestDerive_AnnualFiguresPerChannel(t *testing.T) {
	plan, err := Derive(120000, defaultRates())
	require.NoError(t, err)

	// Outbound
	assert.Equal(t, 72000.0, plan.ChannelRevenue.Outbound)
	assert.Equal(t, 12, plan.Logos.Outbound)
	assert.Equal(t, 60, plan.SQLs.Outbound)
	assert.Equal(t, 600, plan.TAL.Outbound)

	// Inbound
	assert.Equal(t, 48000.0, plan.ChannelRevenue.Inbound)
	assert.Equal(t, 10, plan.Logos.Inbound)
	assert.Equal(t, 67, plan.SQLs.Inbound)
	assert.Equal(t, 134, plan.TAL.Inbound)

	assert.Equal(t, DefaultChannelSplit, plan.ChannelSplit)
	assert.Equal(t, DefaultSeasonality, plan.Seasonality)
}

func TestDerive_QuarterlyBreakdown(t *testing.T) {
	plan, err := Derive(120000, defaultRates())
	require.NoError(t, err)

	q := plan.QuarterlyBreakdown
	assert.Equal(t, 30000.0, q.Q1.Revenue)
	assert.Equal(t, 36000.0, q.Q2.Revenue)
	assert.Equal(t, 30000.0, q.Q3.Revenue)
	assert.Equal(t, 24000.0, q.Q4.Revenue)

	// 22 logos, 127 SQLs e 734 TAL distribuídos com teto por trimestre
	assert.Equal(t, QuarterTargets{Revenue: 30000, Logos: 6, SQLs: 32, TAL: 184}, q.Q1)
	assert.Equal(t, QuarterTargets{Revenue: 36000, Logos: 7, SQLs: 39, TAL: 221}, q.Q2)
	assert.Equal(t, QuarterTargets{Revenue: 30000, Logos: 6, SQLs: 32, TAL: 184}, q.Q3)
	assert.Equal(t, QuarterTargets{Revenue: 24000, Logos: 5, SQLs: 26, TAL: 147}, q.Q4)

	totals := q.Totals()
	assert.Equal(t, 120000.0, totals.Revenue)

	// Soma trimestral pode exceder o total anual
	assert.Equal(t, 24, totals.Logos)
	assert.GreaterOrEqual(t, totals.Logos, plan.Logos.Total())
	assert.GreaterOrEqual(t, totals.SQLs, plan.SQLs.Total())
	assert.GreaterOrEqual(t, totals.TAL, plan.TAL.Total())
}

func TestDerive_QuarterlyCountsCoverProportionalShare(t *testing.T) {
	plan, err := Derive(987654.32, defaultRates())
	require.NoError(t, err)

	for i, quarter := range plan.QuarterlyBreakdown.Quarters() {
		weight := plan.Seasonality[i]
		assert.GreaterOrEqual(t, float64(quarter.Logos), float64(plan.Logos.Total())*weight/100)
		assert.GreaterOrEqual(t, float64(quarter.SQLs), float64(plan.SQLs.Total())*weight/100)
		assert.GreaterOrEqual(t, float64(quarter.TAL), float64(plan.TAL.Total())*weight/100)
	}
}

func TestDerive_ChannelRevenueSumsToTarget(t *testing.T) {
	for _, target := range []float64{0, 1, 120000, 250000, 1e6} {
		plan, err := Derive(target, defaultRates())
		require.NoError(t, err)
		assert.Equal(t, target, plan.ChannelRevenue.Total(), "target %v", target)
	}
}

func TestDerive_IsDeterministic(t *testing.T) {
	first, err := Derive(345678, defaultRates())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Derive(345678, defaultRates())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDerive_LargerDealSizeNeverAddsLogos(t *testing.T) {
	rates := defaultRates()
	previous := -1

	for dealSize := 500.0; dealSize <= 50000; dealSize += 500 {
		rates.Outbound.AverageDealSize = dealSize
		plan, err := Derive(120000, rates)
		require.NoError(t, err)

		if previous >= 0 {
			assert.LessOrEqual(t, plan.Logos.Outbound, previous, "deal size %v", dealSize)
		}
		previous = plan.Logos.Outbound
	}
}

func TestDerive_Options(t *testing.T) {
	plan, err := Derive(100000, defaultRates(),
		WithChannelSplit(ChannelSplit{Outbound: 100, Inbound: 0}),
		WithSeasonality(Seasonality{10, 20, 30, 40}),
	)
	require.NoError(t, err)

	assert.Equal(t, 100000.0, plan.ChannelRevenue.Outbound)
	assert.Equal(t, 0.0, plan.ChannelRevenue.Inbound)
	assert.Equal(t, ChannelCounts{Outbound: 17, Inbound: 0}, plan.Logos)
	assert.Equal(t, 10000.0, plan.QuarterlyBreakdown.Q1.Revenue)
	assert.Equal(t, 40000.0, plan.QuarterlyBreakdown.Q4.Revenue)
}

func TestDerive_UnusedChannelRatesAreNotValidated(t *testing.T) {
	rates := defaultRates()
	rates.Inbound = RateParameters{}

	plan, err := Derive(60000, rates, WithChannelSplit(ChannelSplit{Outbound: 100}))
	require.NoError(t, err)
	assert.Equal(t, 0, plan.TAL.Inbound)
}

func TestDerive_QuarterlyRevenueRoundsToNearest(t *testing.T) {
	plan, err := Derive(1001, defaultRates())
	require.NoError(t, err)

	q := plan.QuarterlyBreakdown
	assert.Equal(t, 250.0, q.Q1.Revenue) // 250.25
	assert.Equal(t, 300.0, q.Q2.Revenue) // 300.3
	assert.Equal(t, 250.0, q.Q3.Revenue) // 250.25
	assert.Equal(t, 200.0, q.Q4.Revenue) // 200.2
}

func TestDerive_Errors(t *testing.T) {
	tests := []struct {
		name    string
		target  float64
		mutate  func(*ChannelRates)
		opts    []Option
		wantErr error
		field   string
	}{
		{
			name:    "taxa SQL para ganho zerada",
			target:  120000,
			mutate:  func(r *ChannelRates) { r.Outbound.SQLToWinRate = 0 },
			wantErr: ErrInvalidRate,
			field:   "outbound.sql_to_win_rate",
		},
		{
			name:    "taxa TAL para SQL acima de 100",
			target:  120000,
			mutate:  func(r *ChannelRates) { r.Inbound.TALToSQLRate = 100.5 },
			wantErr: ErrInvalidRate,
			field:   "inbound.tal_to_sql_rate",
		},
		{
			name:    "comissão negativa",
			target:  120000,
			mutate:  func(r *ChannelRates) { r.Inbound.CommissionRate = -1 },
			wantErr: ErrInvalidRate,
			field:   "inbound.commission_rate",
		},
		{
			name:    "ticket médio zerado",
			target:  120000,
			mutate:  func(r *ChannelRates) { r.Outbound.AverageDealSize = 0 },
			wantErr: ErrInvalidRate,
			field:   "outbound.average_deal_size",
		},
		{
			name:    "ticket médio negativo",
			target:  120000,
			mutate:  func(r *ChannelRates) { r.Outbound.AverageDealSize = -10 },
			wantErr: ErrNegativeInput,
			field:   "outbound.average_deal_size",
		},
		{
			name:    "ticket médio ínfimo estoura a contagem de logos",
			target:  1e18,
			mutate:  func(r *ChannelRates) { r.Outbound.AverageDealSize = 0.01 },
			wantErr: ErrInvalidRate,
			field:   "outbound.average_deal_size",
		},
		{
			name:   "taxa SQL para ganho ínfima estoura a contagem de SQLs",
			target: 1e15,
			mutate: func(r *ChannelRates) {
				r.Outbound.AverageDealSize = 1
				r.Outbound.SQLToWinRate = 0.001
			},
			wantErr: ErrInvalidRate,
			field:   "outbound.sql_to_win_rate",
		},
		{
			name:   "taxa TAL para SQL ínfima estoura a contagem de TAL",
			target: 1e12,
			mutate: func(r *ChannelRates) {
				r.Inbound.AverageDealSize = 1
				r.Inbound.SQLToWinRate = 100
				r.Inbound.TALToSQLRate = 0.001
			},
			wantErr: ErrInvalidRate,
			field:   "inbound.tal_to_sql_rate",
		},
		{
			name:    "meta negativa",
			target:  -1,
			wantErr: ErrNegativeInput,
			field:   "revenue_target",
		},
		{
			name:    "divisão de canais não soma 100",
			target:  120000,
			opts:    []Option{WithChannelSplit(ChannelSplit{Outbound: 70, Inbound: 40})},
			wantErr: ErrInvalidSplit,
			field:   "channel_split",
		},
		{
			name:    "sazonalidade não soma 100",
			target:  120000,
			opts:    []Option{WithSeasonality(Seasonality{25, 25, 25, 20})},
			wantErr: ErrInvalidSplit,
			field:   "seasonality",
		},
		{
			name:    "sazonalidade com peso negativo",
			target:  120000,
			opts:    []Option{WithSeasonality(Seasonality{50, 50, 10, -10})},
			wantErr: ErrInvalidSplit,
			field:   "seasonality",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := defaultRates()
			if tt.mutate != nil {
				tt.mutate(&rates)
			}

			plan, err := Derive(tt.target, rates, tt.opts...)
			assert.Nil(t, plan)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var planningErr *PlanningError
			require.True(t, errors.As(err, &planningErr))
			assert.Equal(t, tt.field, planningErr.Field)
			assert.NotEmpty(t, planningErr.Code)
		})
	}
}

func TestDerive_LargeTargetKeepsCountsNonNegative(t *testing.T) {
	plan, err := Derive(1e15, defaultRates())
	require.NoError(t, err)

	for _, quarter := range plan.QuarterlyBreakdown.Quarters() {
		assert.Positive(t, quarter.Logos)
		assert.Positive(t, quarter.SQLs)
		assert.Positive(t, quarter.TAL)
	}
	assert.Positive(t, plan.TAL.Total())
}

func TestDerive_SplitToleratesRepresentationError(t *testing.T) {
	_, err := Derive(1000, defaultRates(), WithChannelSplit(ChannelSplit{Outbound: 33.333, Inbound: 66.667}))
	assert.NoError(t, err)

	_, err = Derive(1000, defaultRates(), WithSeasonality(Seasonality{33, 33, 33, 0.5}))
	assert.ErrorIs(t, err, ErrInvalidSplit)
}
