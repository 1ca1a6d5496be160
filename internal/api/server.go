package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-plan-api/internal/api/handler"
	"github.com/vfg2006/partner-plan-api/internal/api/handler/router"
	"github.com/vfg2006/partner-plan-api/internal/config"
	"github.com/vfg2006/partner-plan-api/internal/scheduler"
	"github.com/vfg2006/partner-plan-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/partner-plan-api/internal/usecases/businessplan"
	"github.com/vfg2006/partner-plan-api/internal/usecases/companies"
	"github.com/vfg2006/partner-plan-api/internal/usecases/evaluating"
	"github.com/vfg2006/partner-plan-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

type Services struct {
	Companies      companies.CompanyService
	BusinessPlans  businessplan.BusinessPlanService
	Evaluations    evaluating.EvaluationService
	Bookkeeping    bookkeeping.BookkeepingService
	PlanStatusSync *scheduler.PlanStatusSyncService
	Database       handler.Pinger
}

// NewHandler monta o router com todas as rotas e os middlewares globais
func NewHandler(config *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{}
	if services.PlanStatusSync != nil {
		cronServices.PlanStatusSyncService = services.PlanStatusSync
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Companies(services.Companies)...),
		router.WithRoutes(handler.BusinessPlans(services.BusinessPlans)...),
		router.WithRoutes(handler.Evaluations(services.Evaluations)...),
		router.WithRoutes(handler.Bookkeeping(services.Bookkeeping)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Companies == nil || services.BusinessPlans == nil || services.Evaluations == nil || services.Bookkeeping == nil {
		return nil, fmt.Errorf("serviços obrigatórios não informados")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
