// Package planning contém o núcleo de cálculo do plano de negócios com parceiros:
// derivação do funil, demonstrativo de resultados e nota consolidada de avaliação.
// Todas as funções são puras e seguras para uso concorrente.
package planning

import (
	"fmt"
	"math"
)

type Channel string

const (
	ChannelOutbound Channel = "outbound"
	ChannelInbound  Channel = "inbound"
)

const (
	// Tolerância aceita na soma dos pesos percentuais
	weightEpsilon = 0.01

	// Maior contagem de uma etapa do funil (2^53)
	maxStageCount = float64(1 << 53)
)

var (
	// DefaultChannelSplit divide a meta de receita entre outbound e inbound
	DefaultChannelSplit = ChannelSplit{Outbound: 60, Inbound: 40}

	// DefaultSeasonality distribui os totais anuais entre Q1..Q4
	DefaultSeasonality = Seasonality{25, 30, 25, 20}
)

// RateParameters são as métricas de vendas de um canal. Taxas em porcentagem (0-100).
type RateParameters struct {
	AverageDealSize float64 `json:"average_deal_size"`
	SQLToWinRate    float64 `json:"sql_to_win_rate"`
	TALToSQLRate    float64 `json:"tal_to_sql_rate"`
	CommissionRate  float64 `json:"commission_rate"`
}

type ChannelRates struct {
	Outbound RateParameters `json:"outbound"`
	Inbound  RateParameters `json:"inbound"`
}

// ChannelSplit é a participação percentual de cada canal na meta de receita
type ChannelSplit struct {
	Outbound float64 `json:"outbound"`
	Inbound  float64 `json:"inbound"`
}

// Seasonality é o peso percentual de cada trimestre (Q1..Q4)
type Seasonality [4]float64

type ChannelAmounts struct {
	Outbound float64 `json:"outbound"`
	Inbound  float64 `json:"inbound"`
}

func (c ChannelAmounts) Total() float64 {
	return c.Outbound + c.Inbound
}

type ChannelCounts struct {
	Outbound int `json:"outbound"`
	Inbound  int `json:"inbound"`
}

func (c ChannelCounts) Total() int {
	return c.Outbound + c.Inbound
}

type QuarterTargets struct {
	Revenue float64 `json:"revenue"`
	Logos   int     `json:"logos"`
	SQLs    int     `json:"sqls"`
	TAL     int     `json:"tal"`
}

type QuarterlyBreakdown struct {
	Q1 QuarterTargets `json:"q1"`
	Q2 QuarterTargets `json:"q2"`
	Q3 QuarterTargets `json:"q3"`
	Q4 QuarterTargets `json:"q4"`
}

// Quarters retorna os trimestres em ordem
func (q QuarterlyBreakdown) Quarters() [4]QuarterTargets {
	return [4]QuarterTargets{q.Q1, q.Q2, q.Q3, q.Q4}
}

// Totals soma os quatro trimestres. As contagens podem exceder o total anual,
// pois cada trimestre arredonda para cima de forma independente.
func (q QuarterlyBreakdown) Totals() QuarterTargets {
	var totals QuarterTargets
	for _, quarter := range q.Quarters() {
		totals.Revenue += quarter.Revenue
		totals.Logos += quarter.Logos
		totals.SQLs += quarter.SQLs
		totals.TAL += quarter.TAL
	}
	return totals
}

func (q *QuarterlyBreakdown) set(index int, targets QuarterTargets) {
	switch index {
	case 0:
		q.Q1 = targets
	case 1:
		q.Q2 = targets
	case 2:
		q.Q3 = targets
	case 3:
		q.Q4 = targets
	}
}

// FunnelPlan é sempre recalculado a partir da meta e das taxas, nunca editado diretamente
type FunnelPlan struct {
	RevenueTarget      float64            `json:"revenue_target"`
	ChannelSplit       ChannelSplit       `json:"channel_split"`
	Seasonality        Seasonality        `json:"seasonality"`
	ChannelRevenue     ChannelAmounts     `json:"channel_revenue"`
	Logos              ChannelCounts      `json:"logos"`
	SQLs               ChannelCounts      `json:"sqls"`
	TAL                ChannelCounts      `json:"tal"`
	QuarterlyBreakdown QuarterlyBreakdown `json:"quarterly_breakdown"`
}

type deriveOptions struct {
	split       ChannelSplit
	seasonality Seasonality
}

// Option sobrescreve um dos padrões de Derive
type Option func(*deriveOptions)

func WithChannelSplit(split ChannelSplit) Option {
	return func(o *deriveOptions) {
		o.split = split
	}
}

func WithSeasonality(seasonality Seasonality) Option {
	return func(o *deriveOptions) {
		o.seasonality = seasonality
	}
}

// Derive calcula o funil completo a partir da meta anual de receita.
//
// Cada etapa de "quantos X são necessários" arredonda para cima de forma
// independente; a receita trimestral arredonda para o inteiro mais próximo.
// Os totais anuais por canal são calculados antes da distribuição trimestral.
func Derive(revenueTarget float64, rates ChannelRates, opts ...Option) (*FunnelPlan, error) {
	options := deriveOptions{
		split:       DefaultChannelSplit,
		seasonality: DefaultSeasonality,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if err := validateRevenueTarget(revenueTarget); err != nil {
		return nil, err
	}

	if err := options.split.Validate(); err != nil {
		return nil, err
	}

	if err := options.seasonality.Validate(); err != nil {
		return nil, err
	}

	if options.split.Outbound > 0 {
		if err := rates.Outbound.Validate(ChannelOutbound); err != nil {
			return nil, err
		}
	}

	if options.split.Inbound > 0 {
		if err := rates.Inbound.Validate(ChannelInbound); err != nil {
			return nil, err
		}
	}

	plan := &FunnelPlan{
		RevenueTarget: revenueTarget,
		ChannelSplit:  options.split,
		Seasonality:   options.seasonality,
		ChannelRevenue: ChannelAmounts{
			Outbound: revenueTarget * options.split.Outbound / 100,
			Inbound:  revenueTarget * options.split.Inbound / 100,
		},
	}

	if options.split.Outbound > 0 {
		var err error
		plan.Logos.Outbound, plan.SQLs.Outbound, plan.TAL.Outbound, err = deriveChannel(ChannelOutbound, plan.ChannelRevenue.Outbound, rates.Outbound)
		if err != nil {
			return nil, err
		}
	}

	if options.split.Inbound > 0 {
		var err error
		plan.Logos.Inbound, plan.SQLs.Inbound, plan.TAL.Inbound, err = deriveChannel(ChannelInbound, plan.ChannelRevenue.Inbound, rates.Inbound)
		if err != nil {
			return nil, err
		}
	}

	totalLogos := float64(plan.Logos.Total())
	totalSQLs := float64(plan.SQLs.Total())
	totalTAL := float64(plan.TAL.Total())

	for i, weight := range options.seasonality {
		plan.QuarterlyBreakdown.set(i, QuarterTargets{
			Revenue: math.Round(revenueTarget * weight / 100),
			Logos:   ceil(totalLogos * weight / 100),
			SQLs:    ceil(totalSQLs * weight / 100),
			TAL:     ceil(totalTAL * weight / 100),
		})
	}

	return plan, nil
}

func deriveChannel(channel Channel, revenue float64, rates RateParameters) (logos, sqls, tal int, err error) {
	prefix := string(channel) + "."

	if logos, err = countStage(prefix+"average_deal_size", revenue/rates.AverageDealSize); err != nil {
		return 0, 0, 0, err
	}
	if sqls, err = countStage(prefix+"sql_to_win_rate", float64(logos)/(rates.SQLToWinRate/100)); err != nil {
		return 0, 0, 0, err
	}
	if tal, err = countStage(prefix+"tal_to_sql_rate", float64(sqls)/(rates.TALToSQLRate/100)); err != nil {
		return 0, 0, 0, err
	}

	return logos, sqls, tal, nil
}

// countStage arredonda a etapa para cima. Contagens acima de maxStageCount não
// são inteiros exatos em float64, e a taxa que as produziu é rejeitada.
// Com os dois canais abaixo do limite, as somas trimestrais cabem em int.
func countStage(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v > maxStageCount {
		return 0, NewPlanningError(ErrInvalidRate, field,
			fmt.Sprintf("rate yields a funnel count above %d", int64(maxStageCount)))
	}
	return ceil(v), nil
}

func ceil(v float64) int {
	return int(math.Ceil(v))
}

func validateRevenueTarget(revenueTarget float64) error {
	if math.IsNaN(revenueTarget) || math.IsInf(revenueTarget, 0) || revenueTarget < 0 {
		return NewPlanningError(ErrNegativeInput, "revenue_target",
			fmt.Sprintf("revenue target must be a non-negative amount, got %v", revenueTarget))
	}
	return nil
}

// Validate verifica as taxas consumidas pela derivação do canal
func (r RateParameters) Validate(channel Channel) error {
	prefix := string(channel) + "."

	switch {
	case math.IsNaN(r.AverageDealSize) || math.IsInf(r.AverageDealSize, 0):
		return NewPlanningError(ErrInvalidRate, prefix+"average_deal_size",
			fmt.Sprintf("average deal size must be a finite amount, got %v", r.AverageDealSize))
	case r.AverageDealSize < 0:
		return NewPlanningError(ErrNegativeInput, prefix+"average_deal_size",
			fmt.Sprintf("average deal size must be positive, got %v", r.AverageDealSize))
	case r.AverageDealSize == 0:
		return NewPlanningError(ErrInvalidRate, prefix+"average_deal_size",
			"average deal size must be greater than zero")
	}

	if err := validateConversionRate(prefix+"sql_to_win_rate", r.SQLToWinRate); err != nil {
		return err
	}

	if err := validateConversionRate(prefix+"tal_to_sql_rate", r.TALToSQLRate); err != nil {
		return err
	}

	if math.IsNaN(r.CommissionRate) || r.CommissionRate < 0 || r.CommissionRate > 100 {
		return NewPlanningError(ErrInvalidRate, prefix+"commission_rate",
			fmt.Sprintf("commission rate must be in [0, 100], got %v", r.CommissionRate))
	}

	return nil
}

// A taxa é divisor da etapa seguinte, por isso zero é rejeitado
func validateConversionRate(field string, rate float64) error {
	if math.IsNaN(rate) || rate <= 0 || rate > 100 {
		return NewPlanningError(ErrInvalidRate, field,
			fmt.Sprintf("rate must be in (0, 100], got %v", rate))
	}
	return nil
}

func (s ChannelSplit) Validate() error {
	return validateWeights("channel_split", []float64{s.Outbound, s.Inbound})
}

func (s Seasonality) Validate() error {
	return validateWeights("seasonality", s[:])
}

func validateWeights(field string, weights []float64) error {
	sum := 0.0
	for _, weight := range weights {
		if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
			return NewPlanningError(ErrInvalidSplit, field,
				fmt.Sprintf("weights must be non-negative percentages, got %v", weight))
		}
		sum += weight
	}

	if math.Abs(sum-100) > weightEpsilon {
		return NewPlanningError(ErrInvalidSplit, field,
			fmt.Sprintf("weights must sum to 100, got %v", sum))
	}

	return nil
}
