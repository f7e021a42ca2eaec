package handler

import (
	"net/http"

	"github.com/vfg2006/budget-guard-api/internal/api/handler/router"
	"github.com/vfg2006/budget-guard-api/internal/scheduler"
	"github.com/vfg2006/budget-guard-api/internal/usecases/authenticating"
	"github.com/vfg2006/budget-guard-api/internal/usecases/enforcing"
	"github.com/vfg2006/budget-guard-api/internal/usecases/managing"
	"github.com/vfg2006/budget-guard-api/internal/usecases/spending"
	"github.com/vfg2006/budget-guard-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/auth/tokens",
			Method:      http.MethodPost,
			Handler:     IssueToken(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Brands(service managing.ManagingService, spends spending.SpendService, enforcer enforcing.Enforcer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/brands",
			Method:      http.MethodPost,
			Handler:     CreateBrand(service),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/brands",
			Method:      http.MethodGet,
			Handler:     ListBrands(service, spends),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brand-summaries",
			Method:      http.MethodGet,
			Handler:     AllBrandsSummary(spends),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:id",
			Method:      http.MethodGet,
			Handler:     GetBrand(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteBrand(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/brands/:id/budgets",
			Method:      http.MethodPut,
			Handler:     UpdateBrandBudgets(service),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/brands/:id/activate",
			Method:      http.MethodPost,
			Handler:     SetBrandActive(service, true),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/brands/:id/deactivate",
			Method:      http.MethodPost,
			Handler:     SetBrandActive(service, false),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/brands/:id/summary",
			Method:      http.MethodGet,
			Handler:     BrandSummary(spends),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:id/campaigns/reactivate",
			Method:      http.MethodPost,
			Handler:     ReactivateBrandCampaigns(enforcer),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/brands/:id/campaigns/deactivate",
			Method:      http.MethodPost,
			Handler:     DeactivateBrandCampaigns(enforcer),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
	}
}

func Campaigns(service managing.ManagingService, spends spending.SpendService, enforcer enforcing.Enforcer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service, enforcer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateCampaign(service),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/campaigns/:id/status-check",
			Method:      http.MethodGet,
			Handler:     CampaignStatusCheck(enforcer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/activate",
			Method:      http.MethodPost,
			Handler:     ActivateCampaign(enforcer),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/campaigns/:id/pause",
			Method:      http.MethodPost,
			Handler:     PauseCampaign(enforcer),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/campaigns/:id/spend",
			Method:      http.MethodGet,
			Handler:     CampaignSpend(spends),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Schedules(service managing.ManagingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/schedules",
			Method:      http.MethodPost,
			Handler:     CreateSchedule(service),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/schedules",
			Method:      http.MethodGet,
			Handler:     ListSchedules(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/schedules/:id",
			Method:      http.MethodGet,
			Handler:     GetSchedule(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/schedules/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSchedule(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Spends(spends spending.SpendService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/spends",
			Method:      http.MethodPost,
			Handler:     RecordSpend(spends),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/spends",
			Method:      http.MethodGet,
			Handler:     SpendReport(spends),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/spends/summary",
			Method:      http.MethodGet,
			Handler:     TotalSpendSummary(spends),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts",
			Method:      http.MethodGet,
			Handler:     BudgetAlerts(spends),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Enforcement(jobs scheduler.JobRunner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/enforcement/runs/:type",
			Method:      http.MethodPost,
			Handler:     RunEnforcementJob(jobs),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/enforcement/status",
			Method:      http.MethodGet,
			Handler:     GetEnforcementStatus(jobs),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}
