package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/itzme170605/diabetes-prediction-app/internal/api/validation"
	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
	"github.com/itzme170605/diabetes-prediction-app/internal/llm"
	"github.com/itzme170605/diabetes-prediction-app/internal/service"
	"github.com/itzme170605/diabetes-prediction-app/pkg/problem"
)

type SimulationHandler struct {
	simulations service.SimulationService
	comparisons service.ComparisonService
	insights    service.InsightsService
}

func NewSimulationHandler(
	simulations service.SimulationService,
	comparisons service.ComparisonService,
	insights service.InsightsService,
) *SimulationHandler {
	return &SimulationHandler{
		simulations: simulations,
		comparisons: comparisons,
		insights:    insights,
	}
}

// Run handles POST /v1/simulations/run
// @Summary Run a glucose simulation
// @Description Simulate glucose-hormone dynamics for a patient over the requested horizon. Identical requests are served from cache.
// @Tags simulations
// @Accept json
// @Produce json
// @Param request body domain.SimulationRequest true "Patient profile and scenario parameters"
// @Success 200 {object} domain.SimulationResult "Simulation result"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "Referenced patient not found"
// @Failure 422 {object} problem.Problem "Parameters out of range or simulation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /simulations/run [post]
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSimulationRequest(w, r)
	if !ok {
		return
	}

	result, cached, err := h.simulations.Run(r.Context(), req)
	if err != nil {
		writeSimulationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if cached {
		w.Header().Set("X-Cache", "HIT")
	}
	json.NewEncoder(w).Encode(result)
}

// GetRun handles GET /v1/simulations/{id}
// @Summary Get a simulation run record
// @Description Fetch the persisted summary of a completed run. Trajectories are not stored; re-run the simulation to obtain them.
// @Tags simulations
// @Produce json
// @Param id path string true "Simulation run UUID" format(uuid)
// @Success 200 {object} domain.SimulationRun "Run record"
// @Failure 400 {object} problem.Problem "Invalid run ID"
// @Failure 404 {object} problem.Problem "Run not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /simulations/{id} [get]
func (h *SimulationHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		problem.BadRequest("Invalid simulation ID format").Write(w)
		return
	}

	run, err := h.simulations.GetRun(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Simulation run not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch simulation run").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

// CompareMealPatterns handles POST /v1/simulations/compare-meals
// @Summary Compare meal distribution patterns
// @Description Run the same patient through balanced, front-loaded, back-loaded, and small-frequent meal patterns and compare outcomes.
// @Tags comparisons
// @Accept json
// @Produce json
// @Param request body domain.SimulationRequest true "Patient profile and scenario parameters"
// @Success 200 {object} domain.ComparisonResult "Per-pattern comparison"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Parameters out of range or simulation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /simulations/compare-meals [post]
func (h *SimulationHandler) CompareMealPatterns(w http.ResponseWriter, r *http.Request) {
	h.comparison(w, r, h.comparisons.CompareMealPatterns)
}

// ObesityProgression handles POST /v1/simulations/obesity-progression
// @Summary Simulate obesity progression stages
// @Description Run 72-hour simulations at escalating food and lipid intake to show glycemic deterioration across obesity stages.
// @Tags comparisons
// @Accept json
// @Produce json
// @Param request body domain.SimulationRequest true "Patient profile and scenario parameters"
// @Success 200 {object} domain.ComparisonResult "Per-stage comparison"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Parameters out of range or simulation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /simulations/obesity-progression [post]
func (h *SimulationHandler) ObesityProgression(w http.ResponseWriter, r *http.Request) {
	h.comparison(w, r, h.comparisons.ObesityProgression)
}

// DrugAnalysis handles POST /v1/simulations/drug-analysis
// @Summary Analyze GLP-1 agonist dose response
// @Description Run week-long simulations across a dose ladder and report the dose with the largest A1C improvement.
// @Tags comparisons
// @Accept json
// @Produce json
// @Param request body domain.SimulationRequest true "Patient profile and scenario parameters"
// @Success 200 {object} domain.ComparisonResult "Per-dose comparison"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Parameters out of range or simulation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /simulations/drug-analysis [post]
func (h *SimulationHandler) DrugAnalysis(w http.ResponseWriter, r *http.Request) {
	h.comparison(w, r, h.comparisons.DrugAnalysis)
}

// Insights handles POST /v1/simulations/{id}/insights
// @Summary Generate LLM insights for a run
// @Description Interpret a completed run's summary metrics with an LLM. Optionally include the patient profile for richer context.
// @Tags insights
// @Accept json
// @Produce json
// @Param id path string true "Simulation run UUID" format(uuid)
// @Param request body domain.PatientProfile false "Optional patient profile for context"
// @Success 200 {object} domain.InsightsResponse "Generated insights"
// @Failure 400 {object} problem.Problem "Invalid run ID or request body"
// @Failure 404 {object} problem.Problem "Run not found"
// @Failure 503 {object} problem.Problem "Insights service unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /simulations/{id}/insights [post]
func (h *SimulationHandler) Insights(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		problem.BadRequest("Invalid simulation ID format").Write(w)
		return
	}

	if h.insights == nil {
		problem.ServiceUnavailable("Insights are not configured").Write(w)
		return
	}

	// Body is optional: an empty body means no extra patient context.
	var profile *domain.PatientProfile
	if r.Body != nil && r.ContentLength != 0 {
		var p domain.PatientProfile
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			problem.BadRequest("Invalid JSON body").Write(w)
			return
		}
		if fieldErrors := validation.Validate(p); fieldErrors != nil {
			problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
			return
		}
		profile = &p
	}

	resp, err := h.insights.Generate(r.Context(), id, profile)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Simulation run not found").Write(w)
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.ServiceUnavailable("Insights are temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to generate insights").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// CacheStatus handles GET /v1/simulations/cache
// @Summary Report result cache status
// @Description Return the number of cached simulation results and the cache capacity.
// @Tags simulations
// @Produce json
// @Success 200 {object} domain.CacheStatus "Cache occupancy"
// @Router /simulations/cache [get]
func (h *SimulationHandler) CacheStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.simulations.CacheStatus())
}

// ClearCache handles DELETE /v1/simulations/cache
// @Summary Clear the result cache
// @Description Drop all cached simulation results. Persisted run records are unaffected.
// @Tags simulations
// @Success 204 "Cache cleared"
// @Router /simulations/cache [delete]
func (h *SimulationHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.simulations.ClearCache()
	w.WriteHeader(http.StatusNoContent)
}

func (h *SimulationHandler) comparison(
	w http.ResponseWriter,
	r *http.Request,
	run func(ctx context.Context, req *domain.SimulationRequest) (*domain.ComparisonResult, error),
) {
	req, ok := decodeSimulationRequest(w, r)
	if !ok {
		return
	}

	result, err := run(r.Context(), req)
	if err != nil {
		writeSimulationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// decodeSimulationRequest decodes and tag-validates the shared request shape.
// On failure it writes the problem response and reports ok=false.
func decodeSimulationRequest(w http.ResponseWriter, r *http.Request) (*domain.SimulationRequest, bool) {
	var req domain.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return nil, false
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return nil, false
	}
	return &req, true
}

func writeSimulationError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		problem.ValidationError("Request contains invalid fields", []problem.FieldError{
			{Field: verr.Field, Message: verr.Message},
		}).Write(w)
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Referenced patient not found").Write(w)
	case errors.Is(err, domain.ErrIntegrationFailure):
		problem.SimulationFailed("The solver could not complete this scenario").Write(w)
	default:
		problem.InternalError("Failed to run simulation").Write(w)
	}
}
