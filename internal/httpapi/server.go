// Package httpapi exposes the category and task services over HTTP.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"taskboard/internal/model"
)

// TaskService is the task behavior the handlers rely on.
type TaskService interface {
	ListAll(ctx context.Context) ([]model.Task, error)
	ListCompleted(ctx context.Context) ([]model.Task, error)
	ListNotCompleted(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, candidate model.Task) (*model.Task, error)
	Update(ctx context.Context, id string, incoming model.Task) error
}

// CategoryService is the category behavior the handlers rely on.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, candidate model.Category) (*model.Category, error)
}

// DBPinger reports database reachability for the readiness probe.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// Options configures the router.
type Options struct {
	Tasks         TaskService
	Categories    CategoryService
	DB            DBPinger
	Logger        *slog.Logger
	AllowedOrigin string
	Banner        string
	Development   bool
}

type server struct {
	tasks      TaskService
	categories CategoryService
	db         DBPinger
	log        *slog.Logger
	banner     string
}

// NewRouter wires middleware and routes into a single handler.
func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	s := &server{
		tasks:      opts.Tasks,
		categories: opts.Categories,
		db:         opts.DB,
		log:        log,
		banner:     opts.Banner,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(recoverer(log, opts.Development))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{opts.AllowedOrigin},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api/categoria", func(r chi.Router) {
		r.Get("/listar", s.handleListCategories)
		r.Post("/cadastrar", s.handleCreateCategory)
	})

	r.Route("/api/tarefas", func(r chi.Router) {
		r.Get("/listar", s.handleListTasks)
		r.Post("/cadastrar", s.handleCreateTask)
		r.Put("/alterar/{id}", s.handleUpdateTask)
		r.Get("/naoconcluidas", s.handleListNotCompleted)
		r.Get("/concluidas", s.handleListCompleted)
	})

	return r
}

func (s *server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.banner))
}
