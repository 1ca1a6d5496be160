package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/partner-plan-api/infrastructure/database/postgres"
	"github.com/vfg2006/partner-plan-api/infrastructure/migration"
	"github.com/vfg2006/partner-plan-api/internal/config"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica o schema do banco de dados",
		Long:  `Cria as tabelas e índices das empresas, planos, avaliações e lançamentos. Pode ser executado mais de uma vez.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			conn, err := postgres.NewConnection(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
			}
			defer conn.Close()

			if err := migration.Apply(ctx, conn); err != nil {
				return err
			}

			logrus.Info("Schema aplicado com sucesso")
			return nil
		},
	}
}
