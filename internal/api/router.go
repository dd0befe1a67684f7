package api

import (
	"context"
	"net/http"

	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/api/handlers"
	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

func NewRouter(taskService *usecase.TaskService, db HealthChecker) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	taskHandler := handlers.NewTaskHandler(taskService)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.HealthCheck(r.Context()); err != nil {
				http.Error(w, "database unreachable", http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTask)
			r.Put("/", taskHandler.UpdateTask)
			r.Patch("/", taskHandler.UpdateTask)
			r.Delete("/", taskHandler.DeleteTask)
		})
	})

	return r
}
