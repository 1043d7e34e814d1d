package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/forum/backend/internal/setup"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
)

// New creates the chi router with all the routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()
	cfg := deps.Config.Public

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middleware.Timeout(cfg.Http.RequestTimeout))

	// setup CORS for browser clients
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Http.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(cfg.Http.SecureCookies))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		v1.Post("/users", h.Register)
		v1.Post("/authentications", h.Login)
		v1.Delete("/authentications", h.Logout)

		v1.Get("/threads/{threadId}", h.GetThread)

		// Logged-in user routes
		v1.Group(func(loggedIn chi.Router) {
			loggedIn.Use(authMw.NeedAuth())

			loggedIn.Post("/threads", h.CreateThread)
			loggedIn.Route("/threads/{threadId}/comments", func(comments chi.Router) {
				comments.Post("/", h.AddComment)
				comments.Delete("/{commentId}", h.DeleteComment)
				comments.Post("/{commentId}/replies", h.AddReply)
				comments.Delete("/{commentId}/replies/{replyId}", h.DeleteReply)
				comments.Put("/{commentId}/likes", h.ToggleLike)
			})
		})
	})

	return r
}
