package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	adapthttp "recipeshare/internal/adapter/http"
	"recipeshare/internal/adapter/memory"
	"recipeshare/internal/adapter/postgres"
	"recipeshare/internal/app"
	"recipeshare/internal/domain"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	addr := env("ADDR", ":8080")
	store := env("STORE", "postgres")

	var (
		users    domain.UserRepository
		sessions domain.SessionRepository
		recipes  domain.RecipeRepository
	)

	switch store {
	case "memory":
		db := memory.New()
		users = db
		sessions = memory.NewSessionRepo(db)
		recipes = memory.NewRecipeRepo(db)
		log.Warn("using in-memory store; data is lost on restart")
	case "postgres":
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			log.Fatal("DATABASE_URL is required")
		}
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		users = db
		sessions = postgres.NewSessionRepo(db)
		recipes = postgres.NewRecipeRepo(db)
	default:
		log.Fatalf("unknown STORE %q", store)
	}

	ctx := context.Background()
	if err := sessions.DeleteExpired(ctx); err != nil {
		log.WithError(err).Warn("purging expired sessions")
	}

	authSvc := app.NewAuthService(users, sessions)
	recipeSvc := app.NewRecipeService(recipes)

	oidcCfg, err := buildOIDC(ctx)
	if err != nil {
		log.Fatalf("oidc: %v", err)
	}

	h := adapthttp.New(authSvc, recipeSvc, oidcCfg, log).Handler()
	log.WithField("addr", addr).Info("listening")
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// buildOIDC enables SSO login when OIDC_ISSUER is set; otherwise the /sso
// routes stay disabled.
func buildOIDC(ctx context.Context) (adapthttp.OIDCConfig, error) {
	issuer := os.Getenv("OIDC_ISSUER")
	if issuer == "" {
		return adapthttp.OIDCConfig{}, nil
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return adapthttp.OIDCConfig{}, err
	}

	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: oauth2.Config{
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  env("OIDC_REDIRECT_URL", "http://localhost:8080/sso/callback"),
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
