// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"recipeshare/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// OIDCConfig carries the optional SSO login configuration. When Enabled is
// false the /sso routes answer 404.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth    *app.AuthService
	recipes *app.RecipeService
	oidc    OIDCConfig
	log     *logrus.Logger
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, recipes *app.RecipeService, oidcCfg OIDCConfig, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{auth: auth, recipes: recipes, oidc: oidcCfg, log: log}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	mux.HandleFunc("/signup", s.handleSignup)
	mux.HandleFunc("/check_session", s.handleCheckSession)
	mux.HandleFunc("/login", s.handleLogin)
	mux.Handle("/logout", s.requireAuth(http.HandlerFunc(s.handleLogout)))
	mux.Handle("/recipes", s.requireAuth(http.HandlerFunc(s.handleRecipes)))

	mux.HandleFunc("/config", s.handleConfig)
	mux.HandleFunc("/sso/login", s.handleSSOLogin)
	mux.HandleFunc("/sso/callback", s.handleSSOCallback)

	return s.loggingMiddleware(withNoCache(mux))
}
