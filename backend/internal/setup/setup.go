package setup

import (
	"context"

	"github.com/itchan-dev/forum/backend/internal/handler"
	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/jwt"
	mw "github.com/itchan-dev/forum/shared/middleware"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	Jwt            jwt.JwtService
}

// SetupDependencies connects to postgres and wires every use case on top of it.
// The caller owns the returned storage and must Cleanup it.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	deps := Wire(cfg, storage, storage)
	deps.Storage = storage
	return deps, nil
}

// Wire builds the services, the handler and the auth middleware over any store.
func Wire(cfg *config.Config, store service.Storage, health handler.HealthChecker) *Dependencies {
	jwt := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	verifier := service.NewVerifier(store, store, store)
	materializer := service.NewMaterializer(verifier, store, store, store, store)

	h := handler.New(handler.Services{
		Auth:    service.NewAuth(store, jwt),
		Thread:  service.NewThread(store, materializer),
		Comment: service.NewComment(store, verifier),
		Reply:   service.NewReply(store, verifier),
		Like:    service.NewLike(store, verifier),
	}, health, cfg)

	return &Dependencies{
		Config:         cfg,
		Handler:        h,
		AuthMiddleware: mw.NewAuth(jwt),
		Jwt:            jwt,
	}
}
