package handler

import (
	"net/http"

	"github.com/vfg2006/ads-optimizer-api/internal/api/handler/router"
	"github.com/vfg2006/ads-optimizer-api/internal/realtime"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/alerting"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/campaigning"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/chatting"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/clienting"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/recommending"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-optimizer-api/pkg/metrics"
	"github.com/vfg2006/ads-optimizer-api/pkg/middleware"
)

type chain = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, limiter *middleware.RateLimiter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/login",
			Method:      http.MethodPost,
			Handler:     Login(service),
			Middlewares: chain{limiter.Middleware()},
		},
		{
			Path:        "/v1/register",
			Method:      http.MethodPost,
			Handler:     Register(service),
			Middlewares: chain{limiter.Middleware()},
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: chain{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: chain{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
	}
}

func Clients(service clienting.ClientManager, synchronizer syncing.Synchronizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodGet,
			Handler:     GetClient(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClient(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteClient(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/clients/:id/sync",
			Method:      http.MethodPost,
			Handler:     SyncClient(synchronizer),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/clients/:id/google-ads/campaigns",
			Method:      http.MethodGet,
			Handler:     ListRemoteCampaigns(synchronizer),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
	}
}

func Campaigns(service campaigning.CampaignManager, synchronizer syncing.Synchronizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCampaign(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCampaign(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/campaigns/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetCampaignMetrics(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/metrics",
			Method:      http.MethodPost,
			Handler:     UpsertCampaignMetric(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/campaigns/:id/metrics/sync",
			Method:      http.MethodPost,
			Handler:     SyncCampaignMetrics(synchronizer),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/campaigns/:id/search-terms",
			Method:      http.MethodGet,
			Handler:     GetSearchTerms(synchronizer),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/listing-groups",
			Method:      http.MethodGet,
			Handler:     GetListingGroups(synchronizer),
			Middlewares: chain{middleware.AllRoles()},
		},
	}
}

func AssetGroups(service campaigning.CampaignManager, advisor recommending.RecommendationManager, aiLimiter *middleware.RateLimiter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/asset-groups",
			Method:      http.MethodGet,
			Handler:     ListAssetGroups(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/asset-groups",
			Method:      http.MethodPost,
			Handler:     CreateAssetGroup(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/asset-groups/:id",
			Method:      http.MethodGet,
			Handler:     GetAssetGroup(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/asset-groups/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAssetGroup(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/asset-groups/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAssetGroup(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/asset-groups/:id/suggestions",
			Method:      http.MethodPost,
			Handler:     SuggestAssets(advisor),
			Middlewares: chain{middleware.ManagerOrAdmin(), aiLimiter.Middleware()},
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: chain{middleware.AllRoles()},
		},
	}
}

func Alerts(service alerting.AlertManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/alerts",
			Method:      http.MethodGet,
			Handler:     ListAlerts(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts/unread-count",
			Method:      http.MethodGet,
			Handler:     GetUnreadAlertCount(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts/read-all",
			Method:      http.MethodPost,
			Handler:     MarkAllAlertsRead(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts/:id/read",
			Method:      http.MethodPut,
			Handler:     MarkAlertRead(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAlert(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/alerts/analyze",
			Method:      http.MethodPost,
			Handler:     AnalyzeCampaignAlerts(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
	}
}

func Recommendations(service recommending.RecommendationManager, aiLimiter *middleware.RateLimiter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/recommendations",
			Method:      http.MethodGet,
			Handler:     ListRecommendations(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/recommendations/:id",
			Method:      http.MethodGet,
			Handler:     GetRecommendation(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/recommendations/:id/apply",
			Method:      http.MethodPost,
			Handler:     ApplyRecommendation(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/recommendations/:id/reject",
			Method:      http.MethodPost,
			Handler:     RejectRecommendation(service),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/campaigns/:id/recommendations/generate",
			Method:      http.MethodPost,
			Handler:     GenerateRecommendations(service),
			Middlewares: chain{middleware.ManagerOrAdmin(), aiLimiter.Middleware()},
		},
		{
			Path:        "/v1/campaigns/:id/analysis",
			Method:      http.MethodPost,
			Handler:     AnalyzeCampaignPerformance(service),
			Middlewares: chain{middleware.AllRoles(), aiLimiter.Middleware()},
		},
	}
}

func Chat(service chatting.Messenger, hub *realtime.Hub) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/chat/conversations",
			Method:      http.MethodGet,
			Handler:     ListConversations(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/conversations",
			Method:      http.MethodPost,
			Handler:     StartConversation(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/conversations/:id/messages",
			Method:      http.MethodGet,
			Handler:     ListMessages(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/conversations/:id/messages",
			Method:      http.MethodPost,
			Handler:     SendMessage(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/conversations/:id/read",
			Method:      http.MethodPost,
			Handler:     MarkConversationRead(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ws",
			Method:      http.MethodGet,
			Handler:     ServeWebsocket(hub, service),
			Middlewares: chain{middleware.AllRoles()},
		},
	}
}

func History(service auditing.Auditor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/history",
			Method:      http.MethodGet,
			Handler:     ListHistory(service),
			Middlewares: chain{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: chain{middleware.ManagerOrAdmin()},
		},
	}
}
