package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-plan-api/infrastructure/database/postgres"
	"github.com/vfg2006/partner-plan-api/infrastructure/migration"
	"github.com/vfg2006/partner-plan-api/infrastructure/repository"
	"github.com/vfg2006/partner-plan-api/internal/api"
	"github.com/vfg2006/partner-plan-api/internal/config"
	"github.com/vfg2006/partner-plan-api/internal/scheduler"
	"github.com/vfg2006/partner-plan-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/partner-plan-api/internal/usecases/businessplan"
	"github.com/vfg2006/partner-plan-api/internal/usecases/companies"
	"github.com/vfg2006/partner-plan-api/internal/usecases/evaluating"
	"github.com/vfg2006/partner-plan-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Apply(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migração do schema")
		}
	}

	companyRepo := repository.NewCompanyRepository(pgConn)
	planRepo := repository.NewBusinessPlanRepository(pgConn)
	evaluationRepo := repository.NewEvaluationRepository(pgConn)
	bookkeepingRepo := repository.NewBookkeepingRepository(pgConn)

	planStatusSyncService := scheduler.NewPlanStatusSyncService(planRepo, cfg)
	if err := planStatusSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de status dos planos")
	}

	server, err := api.New(cfg, api.Services{
		Companies:      companies.NewService(companyRepo),
		BusinessPlans:  businessplan.NewService(planRepo, companyRepo),
		Evaluations:    evaluating.NewService(evaluationRepo, planRepo),
		Bookkeeping:    bookkeeping.NewService(bookkeepingRepo, planRepo),
		PlanStatusSync: planStatusSyncService,
		Database:       pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
