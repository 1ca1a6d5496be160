package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/vfg2006/partner-plan-api/internal/planning"
	"github.com/vfg2006/partner-plan-api/pkg/utils"
)

type deriveFlags struct {
	target      float64
	outbound    planning.RateParameters
	inbound     planning.RateParameters
	split       []float64
	seasonality []float64
	costs       float64
	commissions float64
}

type deriveOutput struct {
	Funnel     *planning.FunnelPlan          `json:"funnel"`
	ProfitLoss *planning.ProfitLossStatement `json:"profit_loss"`
}

func deriveCmd() *cobra.Command {
	flags := deriveFlags{}

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Calcula o funil e o demonstrativo de um plano",
		Long: `Deriva logos, SQLs, TAL e a distribuição trimestral a partir da meta
anual de receita e das métricas de cada canal. Imprime o resultado como JSON.`,
		Example: `  planctl derive --target 120000 \
    --outbound-deal-size 6000 --outbound-win-rate 20 --outbound-sql-rate 10 \
    --inbound-deal-size 5000 --inbound-win-rate 15 --inbound-sql-rate 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := runDerive(flags)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(output))
			return nil
		},
	}

	cmd.Flags().Float64Var(&flags.target, "target", 0, "meta anual de receita (net new iACV)")

	cmd.Flags().Float64Var(&flags.outbound.AverageDealSize, "outbound-deal-size", 0, "ticket médio outbound")
	cmd.Flags().Float64Var(&flags.outbound.SQLToWinRate, "outbound-win-rate", 0, "taxa SQL para ganho outbound (%)")
	cmd.Flags().Float64Var(&flags.outbound.TALToSQLRate, "outbound-sql-rate", 0, "taxa TAL para SQL outbound (%)")
	cmd.Flags().Float64Var(&flags.outbound.CommissionRate, "outbound-commission-rate", 0, "comissão outbound (%)")

	cmd.Flags().Float64Var(&flags.inbound.AverageDealSize, "inbound-deal-size", 0, "ticket médio inbound")
	cmd.Flags().Float64Var(&flags.inbound.SQLToWinRate, "inbound-win-rate", 0, "taxa SQL para ganho inbound (%)")
	cmd.Flags().Float64Var(&flags.inbound.TALToSQLRate, "inbound-sql-rate", 0, "taxa TAL para SQL inbound (%)")
	cmd.Flags().Float64Var(&flags.inbound.CommissionRate, "inbound-commission-rate", 0, "comissão inbound (%)")

	cmd.Flags().Float64SliceVar(&flags.split, "split", nil, "participação outbound,inbound (padrão 60,40)")
	cmd.Flags().Float64SliceVar(&flags.seasonality, "seasonality", nil, "pesos Q1,Q2,Q3,Q4 (padrão 25,30,25,20)")

	cmd.Flags().Float64Var(&flags.costs, "costs", 0, "custos totais do plano")
	cmd.Flags().Float64Var(&flags.commissions, "commissions", 0, "comissões totais do plano")

	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runDerive(flags deriveFlags) (*deriveOutput, error) {
	var opts []planning.Option

	if flags.split != nil {
		if len(flags.split) != 2 {
			return nil, fmt.Errorf("--split espera 2 valores, recebeu %d", len(flags.split))
		}
		opts = append(opts, planning.WithChannelSplit(planning.ChannelSplit{
			Outbound: flags.split[0],
			Inbound:  flags.split[1],
		}))
	}

	if flags.seasonality != nil {
		if len(flags.seasonality) != 4 {
			return nil, fmt.Errorf("--seasonality espera 4 valores, recebeu %d", len(flags.seasonality))
		}
		var seasonality planning.Seasonality
		copy(seasonality[:], flags.seasonality)
		opts = append(opts, planning.WithSeasonality(seasonality))
	}

	rates := planning.ChannelRates{
		Outbound: flags.outbound,
		Inbound:  flags.inbound,
	}

	funnel, err := planning.Derive(flags.target, rates, opts...)
	if err != nil {
		return nil, err
	}

	// Sem detalhamento por categoria: o total informado entra como marketing
	// e como comissão outbound.
	profitLoss, err := planning.AggregateProfitLoss(
		planning.TotalRevenue(funnel),
		planning.CostBreakdown{Marketing: decimal.NewFromFloat(flags.costs)},
		planning.Commissions{Outbound: decimal.NewFromFloat(flags.commissions)},
	)
	if err != nil {
		return nil, err
	}

	return &deriveOutput{
		Funnel:     funnel,
		ProfitLoss: profitLoss,
	}, nil
}
