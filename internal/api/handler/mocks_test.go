package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
)

// MockSimulationService is a mock implementation of SimulationService
type MockSimulationService struct {
	runFunc         func(ctx context.Context, req *domain.SimulationRequest) (*domain.SimulationResult, bool, error)
	getRunFunc      func(ctx context.Context, id uuid.UUID) (*domain.SimulationRun, error)
	listFunc        func(ctx context.Context, patientID uuid.UUID, filter domain.SimulationRunFilter) (*domain.SimulationRunListResponse, error)
	cacheStatusFunc func() domain.CacheStatus
	clearCacheCalls int
}

func (m *MockSimulationService) Run(ctx context.Context, req *domain.SimulationRequest) (*domain.SimulationResult, bool, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, req)
	}
	return &domain.SimulationResult{
		SimulationID: uuid.New(),
		Diagnosis:    domain.DiagnosisNormal,
		PatientInfo:  req.PatientData,
	}, false, nil
}

func (m *MockSimulationService) GetRun(ctx context.Context, id uuid.UUID) (*domain.SimulationRun, error) {
	if m.getRunFunc != nil {
		return m.getRunFunc(ctx, id)
	}
	return &domain.SimulationRun{ID: id}, nil
}

func (m *MockSimulationService) ListByPatient(ctx context.Context, patientID uuid.UUID, filter domain.SimulationRunFilter) (*domain.SimulationRunListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, patientID, filter)
	}
	return &domain.SimulationRunListResponse{
		Data:       []domain.SimulationRun{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockSimulationService) CacheStatus() domain.CacheStatus {
	if m.cacheStatusFunc != nil {
		return m.cacheStatusFunc()
	}
	return domain.CacheStatus{Entries: 0, Capacity: 256}
}

func (m *MockSimulationService) ClearCache() {
	m.clearCacheCalls++
}

// MockComparisonService is a mock implementation of ComparisonService
type MockComparisonService struct {
	compareFunc func(ctx context.Context, req *domain.SimulationRequest) (*domain.ComparisonResult, error)
}

func (m *MockComparisonService) compare(ctx context.Context, req *domain.SimulationRequest) (*domain.ComparisonResult, error) {
	if m.compareFunc != nil {
		return m.compareFunc(ctx, req)
	}
	return &domain.ComparisonResult{
		Scenarios:         []domain.ComparisonScenario{{Name: "Baseline"}},
		ComparisonMetrics: []domain.ComparisonMetric{{Scenario: "Baseline"}},
	}, nil
}

func (m *MockComparisonService) CompareMealPatterns(ctx context.Context, req *domain.SimulationRequest) (*domain.ComparisonResult, error) {
	return m.compare(ctx, req)
}

func (m *MockComparisonService) ObesityProgression(ctx context.Context, req *domain.SimulationRequest) (*domain.ComparisonResult, error) {
	return m.compare(ctx, req)
}

func (m *MockComparisonService) DrugAnalysis(ctx context.Context, req *domain.SimulationRequest) (*domain.ComparisonResult, error) {
	return m.compare(ctx, req)
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, runID uuid.UUID, profile *domain.PatientProfile) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, runID uuid.UUID, profile *domain.PatientProfile) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, runID, profile)
	}
	return &domain.InsightsResponse{
		SimulationID: runID.String(),
		Diagnosis:    domain.DiagnosisNormal,
		Insights:     domain.LLMInsightsOutput{Summary: "Stable glucose control."},
	}, nil
}

// MockPatientService is a mock implementation of PatientService
type MockPatientService struct {
	createFunc        func(ctx context.Context, profile *domain.PatientProfile) (*domain.Patient, error)
	getFunc           func(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	validateFunc      func(profile *domain.PatientProfile) (*domain.PatientValidationResponse, error)
	healthMetricsFunc func(profile *domain.PatientProfile) (*domain.HealthMetricsResponse, error)
}

func (m *MockPatientService) Create(ctx context.Context, profile *domain.PatientProfile) (*domain.Patient, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, profile)
	}
	return &domain.Patient{
		ID:             uuid.New(),
		Name:           profile.Name,
		Age:            profile.Age,
		Weight:         profile.Weight,
		Height:         profile.Height,
		Sex:            profile.Sex,
		DiabetesStatus: profile.ResolveDiabetesStatus(),
	}, nil
}

func (m *MockPatientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &domain.Patient{ID: id, Name: "Stored Patient"}, nil
}

func (m *MockPatientService) Validate(profile *domain.PatientProfile) (*domain.PatientValidationResponse, error) {
	if m.validateFunc != nil {
		return m.validateFunc(profile)
	}
	return &domain.PatientValidationResponse{
		Valid:          true,
		BMI:            profile.BMI(),
		BMICategory:    profile.BMICategory(),
		DiabetesStatus: profile.ResolveDiabetesStatus(),
	}, nil
}

func (m *MockPatientService) HealthMetrics(profile *domain.PatientProfile) (*domain.HealthMetricsResponse, error) {
	if m.healthMetricsFunc != nil {
		return m.healthMetricsFunc(profile)
	}
	return &domain.HealthMetricsResponse{
		BMI:         profile.BMI(),
		BMICategory: profile.BMICategory(),
	}, nil
}
