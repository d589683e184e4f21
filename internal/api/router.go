package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/coursehub/coursehub-backend/internal/api/handlers"
	"github.com/coursehub/coursehub-backend/internal/api/httpx"
	"github.com/coursehub/coursehub-backend/internal/config"
	"github.com/coursehub/coursehub-backend/internal/metrics"
	"github.com/coursehub/coursehub-backend/internal/middleware"
	repo "github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/coursehub/coursehub-backend/internal/services"
)

func NewRouter(cfg config.Config, users repo.Users, us *services.UserService, cs *services.CourseService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover(cfg.LogGlobalErrors), middleware.RateLimit(cfg.RateRPS))
	r.Use(middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	authn := middleware.NewAuthMiddleware(users)
	uh := handlers.NewUserHandler(us)
	ch := handlers.NewCourseHandler(cs)

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteMessage(w, http.StatusOK, "Welcome to the REST API project!")
	})

	r.Route("/api", func(r chi.Router) {
		// ---------- users ----------
		r.Post("/users", uh.Create)
		r.With(authn.Authenticate).Get("/users", uh.Me)

		// ---------- courses ----------
		r.Get("/courses", ch.List)
		r.Get("/courses/{id}", ch.Get)
		r.With(authn.Authenticate).Post("/courses", ch.Create)
		r.With(authn.Authenticate).Put("/courses/{id}", ch.Update)
		r.With(authn.Authenticate).Delete("/courses/{id}", ch.Delete)
	})

	// verb mismatches count as unmatched routes too
	notFound := func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteMessage(w, http.StatusNotFound, "Route Not Found")
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}
