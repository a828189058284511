package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/internal/service"
	"github.com/rdmapp/rdm-server/internal/store"
	"github.com/rdmapp/rdm-server/pkg/httpx"
	"github.com/rdmapp/rdm-server/pkg/slogx"

	_ "github.com/rdmapp/rdm-server/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService   *service.AuthService
	UserService   *service.UserService
	WalletService *service.WalletService
	StreakService *service.StreakService
	AdminService  *service.AdminService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	// Session resolution is best-effort on every route; the per-route
	// gates decide whether a missing identity is fatal.
	r.middlewares = append(r.middlewares,
		httpx.SessionMiddleware(&sessionResolver{Auth: r.AuthService}),
	)

	r.registerAuth()
	r.registerRPC()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			RDM Server API
//	@version		0.1.0
//	@description	Backend for the RDM wellness app: email/password authentication
//	@description	with opaque bearer sessions, a role-gated RPC surface, and the
//	@description	multi-purse RDM wallet and mindfulness streak features.
//
//	@contact.name				RDM Team
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Opaque session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints take strict per-IP limits (brute force).
	r.Mux.Handle("POST /api/auth/sign-up/email",
		httpx.Chain(http.HandlerFunc(h.HandleSignUp),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/sign-in/email",
		httpx.Chain(http.HandlerFunc(h.HandleSignIn),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /api/auth/sign-out",
		httpx.Chain(http.HandlerFunc(h.HandleSignOut),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/auth/get-session",
		httpx.Chain(http.HandlerFunc(h.HandleGetSession),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/change-password",
		httpx.Chain(http.HandlerFunc(h.HandleChangePassword),
			httpx.RequireSession,
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/verify-email",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyEmail),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerRPC() {
	h := &RPCHandler{
		UserService:   r.UserService,
		WalletService: r.WalletService,
		StreakService: r.StreakService,
	}

	// Public procedure, no gate.
	r.Mux.Handle("POST /rpc/healthCheck",
		httpx.Chain(http.HandlerFunc(h.HandleHealthCheck),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Session-gated reads - lenient per-user limits.
	r.Mux.Handle("POST /rpc/privateData",
		httpx.Chain(http.HandlerFunc(h.HandlePrivateData),
			httpx.RequireSession,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /rpc/walletBalance",
		httpx.Chain(http.HandlerFunc(h.HandleWalletBalance),
			httpx.RequireSession,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Role-gated examples.
	r.Mux.Handle("POST /rpc/adminOnlyData",
		httpx.Chain(http.HandlerFunc(h.HandleAdminOnlyData),
			httpx.RequireAdmin(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /rpc/userRoleData",
		httpx.Chain(http.HandlerFunc(h.HandleUserRoleData),
			httpx.RequireRoles(domain.RoleUser, domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Session-gated mutations - moderate per-user limits.
	r.Mux.Handle("POST /rpc/recordActivity",
		httpx.Chain(http.HandlerFunc(h.HandleRecordActivity),
			httpx.RequireSession,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /rpc/walletTransfer",
		httpx.Chain(http.HandlerFunc(h.HandleWalletTransfer),
			httpx.RequireSession,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /rpc/walletDonate",
		httpx.Chain(http.HandlerFunc(h.HandleWalletDonate),
			httpx.RequireSession,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /rpc/setWalletDisplayMode",
		httpx.Chain(http.HandlerFunc(h.HandleSetWalletDisplayMode),
			httpx.RequireSession,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{AdminService: r.AdminService}
	gate := httpx.RequireAdmin(domain.RoleAdmin)

	r.Mux.Handle("POST /rpc/admin.listUsers",
		httpx.Chain(http.HandlerFunc(h.HandleListUsers),
			gate,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /rpc/admin.banUser",
		httpx.Chain(http.HandlerFunc(h.HandleBanUser),
			gate,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /rpc/admin.unbanUser",
		httpx.Chain(http.HandlerFunc(h.HandleUnbanUser),
			gate,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /rpc/admin.setRole",
		httpx.Chain(http.HandlerFunc(h.HandleSetRole),
			gate,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
