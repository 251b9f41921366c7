package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/itzme170605/diabetes-prediction-app/internal/cache"
	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
	"github.com/itzme170605/diabetes-prediction-app/internal/repository"
	"github.com/itzme170605/diabetes-prediction-app/pkg/pagination"
)

// Engine runs one simulation for a profile and scenario. Implemented by
// sim.Engine.
type Engine interface {
	Run(ctx context.Context, profile *domain.PatientProfile, cfg domain.ScenarioConfig) (*domain.SimulationResult, error)
}

type SimulationService interface {
	// Run executes a simulation, serving identical inputs from cache.
	// Returns (result, cached, error).
	Run(ctx context.Context, req *domain.SimulationRequest) (*domain.SimulationResult, bool, error)
	// GetRun loads a persisted run record.
	GetRun(ctx context.Context, id uuid.UUID) (*domain.SimulationRun, error)
	// ListByPatient pages through a patient's run history, newest first.
	ListByPatient(ctx context.Context, patientID uuid.UUID, filter domain.SimulationRunFilter) (*domain.SimulationRunListResponse, error)
	// CacheStatus reports result cache occupancy.
	CacheStatus() domain.CacheStatus
	// ClearCache drops every cached result. Persisted runs are unaffected.
	ClearCache()
}

type simulationService struct {
	engine      Engine
	results     cache.ResultCache
	runRepo     repository.SimulationRunRepository
	patientRepo repository.PatientRepository
}

func NewSimulationService(
	engine Engine,
	results cache.ResultCache,
	runRepo repository.SimulationRunRepository,
	patientRepo repository.PatientRepository,
) SimulationService {
	return &simulationService{
		engine:      engine,
		results:     results,
		runRepo:     runRepo,
		patientRepo: patientRepo,
	}
}

func (s *simulationService) Run(ctx context.Context, req *domain.SimulationRequest) (*domain.SimulationResult, bool, error) {
	tracer := otel.Tracer("diabetes-sim/simulation")
	ctx, span := tracer.Start(ctx, "simulation.run")
	defer span.End()

	cfg := req.Scenario()
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}

	// Resolve the linked patient first so a bad reference fails before the
	// expensive integration.
	if req.PatientID != nil {
		exists, err := s.patientRepo.Exists(ctx, *req.PatientID)
		if err != nil {
			return nil, false, err
		}
		if !exists {
			return nil, false, domain.ErrNotFound
		}
	}

	span.SetAttributes(
		attribute.Int("sim.hours", cfg.SimulationHours),
		attribute.Float64("sim.food_factor", cfg.FoodFactor),
		attribute.Float64("sim.drug_dosage", cfg.DrugDosage),
	)

	key := cache.Key(&req.PatientData, cfg)
	if hit, ok := s.results.Get(key); ok {
		span.SetAttributes(attribute.Bool("sim.cache_hit", true))
		return hit, true, nil
	}

	result, err := s.engine.Run(ctx, &req.PatientData, cfg)
	if err != nil {
		span.RecordError(err)
		return nil, false, err
	}

	s.results.Add(key, result)
	s.persistRun(ctx, span, req, cfg, result)

	return result, false, nil
}

// persistRun records the run summary for history listings. Persistence is
// best-effort: a storage failure must not fail a computed result.
func (s *simulationService) persistRun(ctx context.Context, span trace.Span, req *domain.SimulationRequest, cfg domain.ScenarioConfig, result *domain.SimulationResult) {
	run := &domain.SimulationRun{
		ID:              result.SimulationID,
		PatientID:       req.PatientID,
		PatientName:     req.PatientData.Name,
		SimulationHours: cfg.SimulationHours,
		FoodFactor:      cfg.FoodFactor,
		PalmiticFactor:  cfg.PalmiticFactor,
		DrugDosage:      cfg.DrugDosage,
		A1CEstimate:     result.A1CEstimate,
		Diagnosis:       result.Diagnosis,
		Summary:         result.SimulationSummary,
		Metrics:         result.GlucoseMetrics,
		Recommendations: result.Recommendations,
		RiskFactors:     result.RiskFactors,
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		span.RecordError(err)
		log.Printf("failed to persist simulation run %s: %v", run.ID, err)
	}
}

func (s *simulationService) CacheStatus() domain.CacheStatus {
	return domain.CacheStatus{
		Entries:  s.results.Len(),
		Capacity: s.results.Cap(),
	}
}

func (s *simulationService) ClearCache() {
	s.results.Purge()
}

func (s *simulationService) GetRun(ctx context.Context, id uuid.UUID) (*domain.SimulationRun, error) {
	return s.runRepo.GetByID(ctx, id)
}

func (s *simulationService) ListByPatient(ctx context.Context, patientID uuid.UUID, filter domain.SimulationRunFilter) (*domain.SimulationRunListResponse, error) {
	exists, err := s.patientRepo.Exists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	runs, err := s.runRepo.ListByPatient(ctx, patientID, filter)
	if err != nil {
		return nil, err
	}

	return buildRunListResponse(runs, filter.Limit), nil
}

func buildRunListResponse(runs []domain.SimulationRun, limit int) *domain.SimulationRunListResponse {
	limit = pagination.NormalizeLimit(limit)
	hasMore := len(runs) > limit
	if hasMore {
		runs = runs[:limit]
	}
	if runs == nil {
		runs = []domain.SimulationRun{}
	}

	response := &domain.SimulationRunListResponse{
		Data:       runs,
		Pagination: domain.PaginationResponse{HasMore: hasMore},
	}
	if hasMore && len(runs) > 0 {
		last := runs[len(runs)-1]
		cursor := &pagination.Cursor{ID: last.ID, CreatedAt: last.CreatedAt}
		response.Pagination.NextCursor = cursor.Encode()
	}
	return response
}
