package handler

import (
	"net/http"

	"github.com/vfg2006/social-insights-api/infrastructure/integrator"
	"github.com/vfg2006/social-insights-api/internal/api/handler/router"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/social-insights-api/internal/usecases/connecting"
	"github.com/vfg2006/social-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/social-insights-api/internal/usecases/publishing"
	"github.com/vfg2006/social-insights-api/pkg/telemetry"
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

func Telemetry(metrics *telemetry.Metrics) []router.Route {
	if metrics == nil {
		return nil
	}
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/v1/users",
			Method:  http.MethodGet,
			Handler: ListUsers(service),
		},
	}
}

func Platforms(factory integrator.IntegrationFactory) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/platforms",
			Method:  http.MethodGet,
			Handler: ListPlatforms(factory),
		},
		{
			Path:    "/v1/platforms/:platform/oauth-url",
			Method:  http.MethodGet,
			Handler: GetPlatformOAuthURL(factory),
		},
	}
}

func Connections(service connecting.Connector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/connections",
			Method:  http.MethodGet,
			Handler: ListConnections(service),
		},
		{
			Path:    "/v1/connections/meta/pages",
			Method:  http.MethodGet,
			Handler: ListResources(service, domain.PlatformMeta),
		},
		{
			Path:    "/v1/connections/google_analytics/properties",
			Method:  http.MethodGet,
			Handler: ListResources(service, domain.PlatformGoogleAnalytics),
		},
		{
			Path:    "/v1/connections/:platform",
			Method:  http.MethodPost,
			Handler: ExchangeCode(service),
		},
		{
			Path:    "/v1/connections/:platform/refresh",
			Method:  http.MethodPost,
			Handler: RefreshConnection(service),
		},
		{
			Path:    "/v1/connections/:platform/selection",
			Method:  http.MethodPut,
			Handler: SelectResource(service),
		},
		{
			Path:    "/v1/connections/:platform",
			Method:  http.MethodDelete,
			Handler: Disconnect(service),
		},
		{
			Path:    "/v1/connections",
			Method:  http.MethodDelete,
			Handler: DisconnectAll(service),
		},
	}
}

func Metrics(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(service),
		},
		{
			Path:    "/v1/metrics/latest",
			Method:  http.MethodGet,
			Handler: GetLatestMetrics(service),
		},
		{
			Path:    "/v1/metrics/history",
			Method:  http.MethodGet,
			Handler: GetMetricsHistory(service),
		},
	}
}

func Posts(service publishing.Publisher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/posts",
			Method:  http.MethodPost,
			Handler: CreatePost(service),
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
