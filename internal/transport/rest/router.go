package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/config"
	"github.com/heartmarshall/shoplist-backend/internal/transport/middleware"
)

// TokenValidator resolves access tokens for the auth middleware.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Auth           authService
	Users          userService
	Lists          listService
	Items          itemService
	Collaborations collaborationService
	Reports        reportService
	Notifications  notificationService
	TokenValidator TokenValidator

	DB      dbPinger
	Version string
	Logger  *slog.Logger

	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
}

// NewRouter assembles the HTTP handler tree with the shared middleware
// chain applied to every route.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	authH := NewAuthHandler(deps.Auth, deps.Logger)
	userH := NewUserHandler(deps.Users, deps.Logger)
	listH := NewListHandler(deps.Lists, deps.Logger)
	itemH := NewItemHandler(deps.Items, deps.Logger)
	collabH := NewCollaborationHandler(deps.Collaborations, deps.Logger)
	reportH := NewReportHandler(deps.Reports, deps.Logger)
	notifH := NewNotificationHandler(deps.Notifications, deps.Logger)
	healthH := NewHealthHandler(deps.DB, deps.Version)

	mux.HandleFunc("POST /auth/register", authH.Register)
	mux.HandleFunc("POST /auth/login", authH.Login)
	mux.HandleFunc("POST /auth/refresh", authH.Refresh)
	mux.HandleFunc("POST /auth/logout", authH.Logout)
	mux.HandleFunc("GET /auth/profile", userH.Profile)
	mux.HandleFunc("PUT /auth/profile", userH.UpdateProfile)

	mux.HandleFunc("POST /lists", listH.Create)
	mux.HandleFunc("GET /lists", listH.List)
	mux.HandleFunc("GET /lists/{id}", listH.Get)
	mux.HandleFunc("PUT /lists/{id}", listH.Update)
	mux.HandleFunc("DELETE /lists/{id}", listH.Delete)

	mux.HandleFunc("POST /items/{listId}", itemH.Add)
	mux.HandleFunc("PUT /items/{listId}/{itemId}", itemH.Update)
	mux.HandleFunc("DELETE /items/{listId}/{itemId}", itemH.Delete)

	mux.HandleFunc("POST /collaborations/{listId}/invite", collabH.Invite)
	mux.HandleFunc("DELETE /collaborations/{listId}/collaborators/{id}", collabH.Remove)
	mux.HandleFunc("PUT /collaborations/{listId}/collaborators/{id}/role", collabH.UpdateRole)

	mux.HandleFunc("GET /reports/expenses/{listId}", reportH.Expenses)
	mux.HandleFunc("GET /reports/history/{listId}", reportH.History)

	mux.HandleFunc("GET /notifications", notifH.List)
	mux.HandleFunc("POST /notifications/{id}/read", notifH.MarkRead)

	mux.HandleFunc("GET /health", healthH.Health)
	mux.HandleFunc("GET /health/live", healthH.Live)
	mux.HandleFunc("GET /health/ready", healthH.Ready)

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	}
	if deps.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(deps.RateLimit.CleanupInterval)
		mws = append(mws, rl.Limit(deps.RateLimit.PerMinute))
	}
	mws = append(mws, middleware.Auth(deps.TokenValidator))

	return middleware.Chain(mws...)(mux)
}
