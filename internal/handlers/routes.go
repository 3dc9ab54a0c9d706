package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/PetroczyP/mergington-activities/internal/config"
	"github.com/PetroczyP/mergington-activities/internal/logging"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, logger *zap.Logger, activityHandler *ActivityHandler) huma.API {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	if cfg.EnableCORS {
		r.Use(CORS)
	}

	// Initialize Huma API
	hc := huma.DefaultConfig("Mergington High School Activities API", "1.0.0")
	hc.Info.Description = "Sign up for and leave extracurricular activities, in English or Hungarian."
	api := humachi.New(r, hc)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	// Activity routes
	huma.Get(api, "/activities", activityHandler.HandleList)
	huma.Get(api, "/activities/{activityName}", activityHandler.HandleGet)
	huma.Post(api, "/activities/{activityName}/signup", activityHandler.HandleSignup)
	huma.Delete(api, "/activities/{activityName}/unregister", activityHandler.HandleUnregister)

	return api
}
