package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/mkozyrev/weekplanner/internal/api/http/handler"
	"github.com/mkozyrev/weekplanner/internal/api/http/middleware"
	"github.com/mkozyrev/weekplanner/internal/logger"
	"github.com/mkozyrev/weekplanner/internal/model"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	authHandler    *handler.Auth
	taskHandler    *handler.Task
	tokenManager   middleware.TokenManager
	contextManager model.ContextManager
	corsOrigin     string
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authHandler *handler.Auth,
	taskHandler *handler.Task,
	tokenManager middleware.TokenManager,
	contextManager model.ContextManager,
	corsOrigin string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authHandler:    authHandler,
		taskHandler:    taskHandler,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		corsOrigin:     corsOrigin,
		logger:         logger,
	}
}

// Register builds the route tree. Auth endpoints are public; everything
// under /api/tasks and /api/auth/me requires a valid bearer token.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(logging.Handle)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{r.corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		handler.WriteData(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", r.authHandler.Register)
			auth.Post("/login", r.authHandler.Login)
			auth.With(authenticate.Handle).Get("/me", r.authHandler.Me)
		})

		api.Route("/tasks", func(tasks chi.Router) {
			tasks.Use(authenticate.Handle)
			tasks.Get("/", r.taskHandler.List)
			tasks.Post("/", r.taskHandler.Create)
			tasks.Get("/{id}", r.taskHandler.Get)
			tasks.Put("/{id}", r.taskHandler.Update)
			tasks.Delete("/{id}", r.taskHandler.Delete)
			tasks.Patch("/{id}/toggle", r.taskHandler.Toggle)
		})
	})

	return mux
}
