package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
)

// MockEngine is a mock implementation of Engine
type MockEngine struct {
	mu      sync.Mutex
	calls   []domain.ScenarioConfig
	result  *domain.SimulationResult
	results map[float64]*domain.SimulationResult // keyed by drug dosage for sweeps
	err     error
}

func NewMockEngine() *MockEngine {
	return &MockEngine{}
}

func (m *MockEngine) Run(ctx context.Context, profile *domain.PatientProfile, cfg domain.ScenarioConfig) (*domain.SimulationResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, cfg)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if m.results != nil {
		if r, ok := m.results[cfg.DrugDosage]; ok {
			return r, nil
		}
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.SimulationResult{
		SimulationID: uuid.New(),
		A1CEstimate:  5.4,
		Diagnosis:    domain.DiagnosisNormal,
		PatientInfo:  *profile,
		Timestamp:    time.Now().UTC(),
	}, nil
}

func (m *MockEngine) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *MockEngine) Calls() []domain.ScenarioConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ScenarioConfig, len(m.calls))
	copy(out, m.calls)
	return out
}

// MockResultCache is a map-backed ResultCache
type MockResultCache struct {
	entries map[string]*domain.SimulationResult
}

func NewMockResultCache() *MockResultCache {
	return &MockResultCache{entries: make(map[string]*domain.SimulationResult)}
}

func (m *MockResultCache) Get(key string) (*domain.SimulationResult, bool) {
	r, ok := m.entries[key]
	return r, ok
}

func (m *MockResultCache) Add(key string, result *domain.SimulationResult) {
	m.entries[key] = result
}

func (m *MockResultCache) Len() int { return len(m.entries) }

func (m *MockResultCache) Cap() int { return 256 }

func (m *MockResultCache) Purge() {
	m.entries = make(map[string]*domain.SimulationResult)
}

// MockPatientRepository is a mock implementation of repository.PatientRepository
type MockPatientRepository struct {
	patients map[uuid.UUID]*domain.Patient
	err      error
}

func NewMockPatientRepository() *MockPatientRepository {
	return &MockPatientRepository{patients: make(map[uuid.UUID]*domain.Patient)}
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	if m.err != nil {
		return m.err
	}
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	patient.CreatedAt = time.Now()
	m.patients[patient.ID] = patient
	return nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.patients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (m *MockPatientRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.patients[id]
	return ok, nil
}

// MockSimulationRunRepository is a mock implementation of repository.SimulationRunRepository
type MockSimulationRunRepository struct {
	runs       map[uuid.UUID]*domain.SimulationRun
	listResult []domain.SimulationRun
	createErr  error
	err        error
}

func NewMockSimulationRunRepository() *MockSimulationRunRepository {
	return &MockSimulationRunRepository{runs: make(map[uuid.UUID]*domain.SimulationRun)}
}

func (m *MockSimulationRunRepository) Create(ctx context.Context, run *domain.SimulationRun) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.err != nil {
		return m.err
	}
	run.CreatedAt = time.Now()
	m.runs[run.ID] = run
	return nil
}

func (m *MockSimulationRunRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SimulationRun, error) {
	if m.err != nil {
		return nil, m.err
	}
	run, ok := m.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return run, nil
}

func (m *MockSimulationRunRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, filter domain.SimulationRunFilter) ([]domain.SimulationRun, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		out := make([]domain.SimulationRun, len(m.listResult))
		copy(out, m.listResult)
		return out, nil
	}
	var out []domain.SimulationRun
	for _, run := range m.runs {
		if run.PatientID != nil && *run.PatientID == patientID {
			out = append(out, *run)
		}
	}
	return out, nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	output  *domain.LLMInsightsOutput
	err     error
	lastCtx *domain.InsightsContext
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.lastCtx = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return &domain.LLMInsightsOutput{
		Summary:      "Simulated glucose control was stable.",
		Observations: []string{"Time in range above 90%"},
		Guidance:     []string{"Keep consistent meal timing"},
	}, nil
}
