package planning

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Precisão nativa dos valores monetários
const currencyPlaces = 2

type CostBreakdown struct {
	TeamCTC        decimal.Decimal `json:"team_ctc"`
	Travel         decimal.Decimal `json:"travel"`
	Marketing      decimal.Decimal `json:"marketing"`
	ToolsAndOffice decimal.Decimal `json:"tools_and_office"`
}

func (c CostBreakdown) Total() decimal.Decimal {
	return sumCurrency(c.TeamCTC, c.Travel, c.Marketing, c.ToolsAndOffice)
}

func (c CostBreakdown) Validate() error {
	return validateAmounts(
		namedAmount{"costs.team_ctc", c.TeamCTC},
		namedAmount{"costs.travel", c.Travel},
		namedAmount{"costs.marketing", c.Marketing},
		namedAmount{"costs.tools_and_office", c.ToolsAndOffice},
	)
}

// Contributions são os aportes do parceiro e do dono do plano. Informativos,
// não entram no PBIT.
type Contributions struct {
	Partner decimal.Decimal `json:"partner"`
	Owner   decimal.Decimal `json:"owner"`
}

func (c Contributions) Validate() error {
	return validateAmounts(
		namedAmount{"contributions.partner", c.Partner},
		namedAmount{"contributions.owner", c.Owner},
	)
}

type Commissions struct {
	Inbound  decimal.Decimal `json:"inbound"`
	Outbound decimal.Decimal `json:"outbound"`
}

func (c Commissions) Total() decimal.Decimal {
	return sumCurrency(c.Inbound, c.Outbound)
}

func (c Commissions) Validate() error {
	return validateAmounts(
		namedAmount{"commissions.inbound", c.Inbound},
		namedAmount{"commissions.outbound", c.Outbound},
	)
}

// ProfitLossStatement é o demonstrativo derivado. Loss sinaliza PBIT negativo,
// que é um estado válido e deve apenas ser exibido de forma distinta.
type ProfitLossStatement struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalCosts       decimal.Decimal `json:"total_costs"`
	TotalCommissions decimal.Decimal `json:"total_commissions"`
	PBIT             decimal.Decimal `json:"pbit"`
	Loss             bool            `json:"loss"`
}

// AggregateProfitLoss consolida receita, custos e comissões no PBIT.
// Única fonte da fórmula: pbit = receita - (custos + comissões).
func AggregateProfitLoss(totalRevenue decimal.Decimal, costs CostBreakdown, commissions Commissions) (*ProfitLossStatement, error) {
	if totalRevenue.IsNegative() {
		return nil, NewPlanningError(ErrNegativeInput, "total_revenue",
			fmt.Sprintf("total revenue must not be negative, got %s", totalRevenue))
	}

	if err := costs.Validate(); err != nil {
		return nil, err
	}

	if err := commissions.Validate(); err != nil {
		return nil, err
	}

	revenue := totalRevenue.Round(currencyPlaces)
	totalCosts := costs.Total()
	totalCommissions := commissions.Total()
	pbit := revenue.Sub(totalCosts.Add(totalCommissions))

	return &ProfitLossStatement{
		TotalRevenue:     revenue,
		TotalCosts:       totalCosts,
		TotalCommissions: totalCommissions,
		PBIT:             pbit,
		Loss:             pbit.IsNegative(),
	}, nil
}

// TotalRevenue soma a receita dos quatro trimestres do plano
func TotalRevenue(plan *FunnelPlan) decimal.Decimal {
	if plan == nil {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, quarter := range plan.QuarterlyBreakdown.Quarters() {
		total = total.Add(decimal.NewFromFloat(quarter.Revenue))
	}
	return total
}

func sumCurrency(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v.Round(currencyPlaces))
	}
	return total
}

type namedAmount struct {
	field  string
	amount decimal.Decimal
}

func validateAmounts(amounts ...namedAmount) error {
	for _, a := range amounts {
		if a.amount.IsNegative() {
			return NewPlanningError(ErrNegativeInput, a.field,
				fmt.Sprintf("amount must not be negative, got %s", a.amount))
		}
	}
	return nil
}
