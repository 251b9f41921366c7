package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/itzme170605/diabetes-prediction-app/docs"
	"github.com/itzme170605/diabetes-prediction-app/internal/api/handler"
	"github.com/itzme170605/diabetes-prediction-app/internal/api/middleware"
)

type Router struct {
	patientHandler    *handler.PatientHandler
	simulationHandler *handler.SimulationHandler
	allowedOrigins    []string
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	simulationHandler *handler.SimulationHandler,
	allowedOrigins []string,
) *Router {
	return &Router{
		patientHandler:    patientHandler,
		simulationHandler: simulationHandler,
		allowedOrigins:    allowedOrigins,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)
	r.Use(middleware.CORS(rt.allowedOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/patients", func(r chi.Router) {
			r.Post("/", rt.patientHandler.Create)
			r.Post("/validate", rt.patientHandler.Validate)
			r.Post("/health-metrics", rt.patientHandler.HealthMetrics)
			r.Get("/{id}", rt.patientHandler.Get)
			r.Get("/{id}/simulations", rt.patientHandler.ListSimulations)
		})

		r.Route("/simulations", func(r chi.Router) {
			r.Post("/run", rt.simulationHandler.Run)
			r.Post("/compare-meals", rt.simulationHandler.CompareMealPatterns)
			r.Post("/obesity-progression", rt.simulationHandler.ObesityProgression)
			r.Post("/drug-analysis", rt.simulationHandler.DrugAnalysis)
			r.Get("/cache", rt.simulationHandler.CacheStatus)
			r.Delete("/cache", rt.simulationHandler.ClearCache)
			r.Get("/{id}", rt.simulationHandler.GetRun)
			r.Post("/{id}/insights", rt.simulationHandler.Insights)
		})
	})

	return r
}
