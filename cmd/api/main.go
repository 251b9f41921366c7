// Diabetes Simulation API
//
// REST API simulating glucose-hormone dynamics for type 2 diabetes.
//
//	@title			Diabetes Simulation API
//	@version		1.0
//	@description	Simulate blood glucose, insulin, glucagon, and GLP-1 dynamics for a patient profile; compare meal patterns, obesity stages, and GLP-1 agonist doses.
//
//	@BasePath	/v1
//
//	@tag.name			patients
//	@tag.description	Patient profiles and derived health metrics
//
//	@tag.name			simulations
//	@tag.description	Glucose simulation runs and history
//
//	@tag.name			comparisons
//	@tag.description	Multi-scenario comparison sweeps
//
//	@tag.name			insights
//	@tag.description	LLM interpretation of completed runs
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/itzme170605/diabetes-prediction-app/internal/api"
	"github.com/itzme170605/diabetes-prediction-app/internal/api/handler"
	"github.com/itzme170605/diabetes-prediction-app/internal/cache"
	"github.com/itzme170605/diabetes-prediction-app/internal/config"
	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
	"github.com/itzme170605/diabetes-prediction-app/internal/llm"
	"github.com/itzme170605/diabetes-prediction-app/internal/repository"
	"github.com/itzme170605/diabetes-prediction-app/internal/seed"
	"github.com/itzme170605/diabetes-prediction-app/internal/service"
	"github.com/itzme170605/diabetes-prediction-app/internal/sim"
	"github.com/itzme170605/diabetes-prediction-app/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "diabetes-sim-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.Patient{}, &domain.SimulationRun{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(db)
	runRepo := repository.NewSimulationRunRepository(db)

	// Initialize simulation engine and result cache
	engine := sim.NewEngine()
	resultCache, err := cache.New(cfg.CacheSize)
	if err != nil {
		log.Fatalf("Failed to create result cache: %v", err)
	}

	// Initialize services
	patientService := service.NewPatientService(patientRepo)
	simulationService := service.NewSimulationService(engine, resultCache, runRepo, patientRepo)
	comparisonService := service.NewComparisonService(engine)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	var insightsService service.InsightsService
	if openaiClient != nil {
		insightsService = service.NewInsightsService(runRepo, openaiClient)
	}

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientService, simulationService)
	simulationHandler := handler.NewSimulationHandler(simulationService, comparisonService, insightsService)

	// Setup router
	router := api.NewRouter(patientHandler, simulationHandler, cfg.AllowedOrigins)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
