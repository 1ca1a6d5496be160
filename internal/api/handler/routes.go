package handler

import (
	"net/http"

	"github.com/vfg2006/partner-plan-api/internal/api/handler/router"
	"github.com/vfg2006/partner-plan-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/partner-plan-api/internal/usecases/businessplan"
	"github.com/vfg2006/partner-plan-api/internal/usecases/companies"
	"github.com/vfg2006/partner-plan-api/internal/usecases/evaluating"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func BusinessPlans(service businessplan.BusinessPlanService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/business-plans",
			Method:  http.MethodGet,
			Handler: ListBusinessPlans(service),
		},
		{
			Path:    "/v1/business-plans",
			Method:  http.MethodPost,
			Handler: CreateBusinessPlan(service),
		},
		{
			Path:    "/v1/business-plans/preview",
			Method:  http.MethodPost,
			Handler: PreviewBusinessPlan(service),
		},
		{
			Path:    "/v1/business-plans/:id",
			Method:  http.MethodGet,
			Handler: GetBusinessPlan(service),
		},
		{
			Path:    "/v1/business-plans/:id",
			Method:  http.MethodPut,
			Handler: UpdateBusinessPlan(service),
		},
		{
			Path:    "/v1/business-plans/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateBusinessPlanStatus(service),
		},
		{
			Path:    "/v1/business-plans/:id",
			Method:  http.MethodDelete,
			Handler: DeleteBusinessPlan(service),
		},
	}
}

func Evaluations(service evaluating.EvaluationService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/business-plans/:id/evaluations",
			Method:  http.MethodGet,
			Handler: ListPlanEvaluations(service),
		},
		{
			Path:    "/v1/evaluations",
			Method:  http.MethodPost,
			Handler: CreateEvaluation(service),
		},
		{
			Path:    "/v1/evaluations/:id",
			Method:  http.MethodGet,
			Handler: GetEvaluation(service),
		},
		{
			Path:    "/v1/evaluations/:id",
			Method:  http.MethodPut,
			Handler: UpdateEvaluation(service),
		},
		{
			Path:    "/v1/evaluations/:id",
			Method:  http.MethodDelete,
			Handler: DeleteEvaluation(service),
		},
	}
}

func Bookkeeping(service bookkeeping.BookkeepingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/business-plans/:id/bookkeeping",
			Method:  http.MethodGet,
			Handler: ListPlanBookkeeping(service),
		},
		{
			Path:    "/v1/business-plans/:id/bookkeeping/summary",
			Method:  http.MethodGet,
			Handler: GetBookkeepingSummary(service),
		},
		{
			Path:    "/v1/bookkeeping",
			Method:  http.MethodPost,
			Handler: CreateBookkeepingEntry(service),
		},
		{
			Path:    "/v1/bookkeeping/:id",
			Method:  http.MethodPut,
			Handler: UpdateBookkeepingEntry(service),
		},
		{
			Path:    "/v1/bookkeeping/:id",
			Method:  http.MethodDelete,
			Handler: DeleteBookkeepingEntry(service),
		},
	}
}

func Companies(service companies.CompanyService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/companies",
			Method:  http.MethodGet,
			Handler: ListCompanies(service, false),
		},
		{
			Path:    "/v1/companies",
			Method:  http.MethodPost,
			Handler: CreateCompany(service, false),
		},
		{
			Path:    "/v1/companies/:id",
			Method:  http.MethodGet,
			Handler: GetCompany(service, false),
		},
		{
			Path:    "/v1/partners",
			Method:  http.MethodGet,
			Handler: ListCompanies(service, true),
		},
		{
			Path:    "/v1/partners",
			Method:  http.MethodPost,
			Handler: CreateCompany(service, true),
		},
		{
			Path:    "/v1/partners/:id",
			Method:  http.MethodGet,
			Handler: GetCompany(service, true),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
