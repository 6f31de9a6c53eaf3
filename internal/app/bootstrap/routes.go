// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	accountsfeature "github.com/skillswap/skillswap/internal/app/features/accounts"
	groupsfeature "github.com/skillswap/skillswap/internal/app/features/groups"
	healthfeature "github.com/skillswap/skillswap/internal/app/features/health"
	profilefeature "github.com/skillswap/skillswap/internal/app/features/profile"
	userinfofeature "github.com/skillswap/skillswap/internal/app/features/userinfo"
	"github.com/skillswap/skillswap/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// SkillSwap applies session middleware globally and mounts feature routers
// for accounts, the current-user info endpoint, the skills profile, and the
// group listing / assignment / quiz flows.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Signup / login / logout
	accountsHandler := accountsfeature.NewHandler(deps.MongoDatabase, sessionMgr, logger)
	r.Mount("/accounts", accountsfeature.Routes(accountsHandler))

	// Current-user identity and counts
	userinfoHandler := userinfofeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/userinfo", userinfofeature.Routes(userinfoHandler))

	// Skill profile management (updates trigger group reconciliation)
	profileHandler := profilefeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler, sessionMgr))

	// Group listing, assignment hooks, and the quiz-unlock flow
	groupsHandler := groupsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/groups", groupsfeature.Routes(groupsHandler, sessionMgr))

	return r, nil
}
