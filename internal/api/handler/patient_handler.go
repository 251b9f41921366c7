package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/itzme170605/diabetes-prediction-app/internal/api/validation"
	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
	"github.com/itzme170605/diabetes-prediction-app/internal/service"
	"github.com/itzme170605/diabetes-prediction-app/pkg/pagination"
	"github.com/itzme170605/diabetes-prediction-app/pkg/problem"
)

type PatientHandler struct {
	patients    service.PatientService
	simulations service.SimulationService
}

func NewPatientHandler(patients service.PatientService, simulations service.SimulationService) *PatientHandler {
	return &PatientHandler{patients: patients, simulations: simulations}
}

// Create handles POST /v1/patients
// @Summary Create a patient
// @Description Store a patient profile. Diabetes status set to "auto" is resolved from fasting glucose or A1C before storage.
// @Tags patients
// @Accept json
// @Produce json
// @Param request body domain.PatientProfile true "Patient profile"
// @Success 201 {object} domain.Patient "Stored patient"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Profile fields out of range"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients [post]
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	profile, ok := decodePatientProfile(w, r)
	if !ok {
		return
	}

	patient, err := h.patients.Create(r.Context(), profile)
	if err != nil {
		writePatientError(w, err, "Failed to create patient")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(patient)
}

// Get handles GET /v1/patients/{id}
// @Summary Get a patient
// @Tags patients
// @Produce json
// @Param id path string true "Patient UUID" format(uuid)
// @Success 200 {object} domain.Patient "Patient record"
// @Failure 400 {object} problem.Problem "Invalid patient ID"
// @Failure 404 {object} problem.Problem "Patient not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{id} [get]
func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return
	}

	patient, err := h.patients.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Patient not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch patient").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(patient)
}

// Validate handles POST /v1/patients/validate
// @Summary Validate a patient profile
// @Description Check a profile against the documented clinical ranges and report derived fields (BMI, BMI category, resolved diabetes status).
// @Tags patients
// @Accept json
// @Produce json
// @Param request body domain.PatientProfile true "Patient profile"
// @Success 200 {object} domain.PatientValidationResponse "Derived fields"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Profile fields out of range"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/validate [post]
func (h *PatientHandler) Validate(w http.ResponseWriter, r *http.Request) {
	profile, ok := decodePatientProfile(w, r)
	if !ok {
		return
	}

	resp, err := h.patients.Validate(profile)
	if err != nil {
		writePatientError(w, err, "Failed to validate patient")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HealthMetrics handles POST /v1/patients/health-metrics
// @Summary Compute derived health metrics
// @Description Compute BMI, ideal weight band, Harris-Benedict BMR, daily calorie needs, cardiovascular risk, and metabolic age for a profile.
// @Tags patients
// @Accept json
// @Produce json
// @Param request body domain.PatientProfile true "Patient profile"
// @Success 200 {object} domain.HealthMetricsResponse "Derived metrics"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Profile fields out of range"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/health-metrics [post]
func (h *PatientHandler) HealthMetrics(w http.ResponseWriter, r *http.Request) {
	profile, ok := decodePatientProfile(w, r)
	if !ok {
		return
	}

	resp, err := h.patients.HealthMetrics(profile)
	if err != nil {
		writePatientError(w, err, "Failed to compute health metrics")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ListSimulations handles GET /v1/patients/{id}/simulations
// @Summary List a patient's simulation runs
// @Description Page through a patient's run history, newest first.
// @Tags patients
// @Produce json
// @Param id path string true "Patient UUID" format(uuid)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SimulationRunListResponse "Run history with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Patient not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{id}/simulations [get]
func (h *PatientHandler) ListSimulations(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return
	}

	filter, fieldErrors := parseRunFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	resp, err := h.simulations.ListByPatient(r.Context(), id, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Patient not found").Write(w)
			return
		}
		problem.InternalError("Failed to list simulation runs").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func parseRunFilter(r *http.Request) (domain.SimulationRunFilter, []problem.FieldError) {
	filter := domain.SimulationRunFilter{Limit: pagination.DefaultLimit}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > pagination.MaxLimit {
			return filter, []problem.FieldError{
				{Field: "limit", Message: "must be an integer between 1 and 100"},
			}
		}
		filter.Limit = limit
	}

	filter.Cursor = r.URL.Query().Get("cursor")
	return filter, nil
}

func decodePatientProfile(w http.ResponseWriter, r *http.Request) (*domain.PatientProfile, bool) {
	var profile domain.PatientProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return nil, false
	}

	if fieldErrors := validation.Validate(profile); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return nil, false
	}
	return &profile, true
}

func writePatientError(w http.ResponseWriter, err error, fallback string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		problem.ValidationError("Request contains invalid fields", []problem.FieldError{
			{Field: verr.Field, Message: verr.Message},
		}).Write(w)
		return
	}
	problem.InternalError(fallback).Write(w)
}
