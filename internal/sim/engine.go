package sim

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
)

// Engine runs complete simulations: parameter resolution, forcing setup,
// integration, and metric extraction. Safe for concurrent use; each run is
// independent.
type Engine struct {
	integrator *Integrator
}

// NewEngine returns an engine with default integrator tolerances.
func NewEngine() *Engine {
	return &Engine{integrator: NewIntegrator()}
}

// Run executes one simulation for the given patient and scenario and returns
// the assembled result. The result is complete and self-contained; callers
// may cache or persist it freely.
func (e *Engine) Run(ctx context.Context, profile *domain.PatientProfile, cfg domain.ScenarioConfig) (*domain.SimulationResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	params, x0, _, err := Resolve(profile)
	if err != nil {
		return nil, err
	}

	forcing := NewForcing(params, cfg)
	model := NewModel(params, forcing)

	traj, err := e.integrator.Solve(ctx, model, x0, cfg.SimulationHours)
	if err != nil {
		return nil, err
	}

	glucose, insulin, glucagon, glp1 := ExtractSeries(traj)

	summary, err := Summarize(glucose)
	if err != nil {
		return nil, err
	}
	metrics := ComputeGlucoseMetrics(traj.TimeHours, glucose, summary)

	// indices taken from the fasting state at t=0
	metrics.HOMAIR = HOMAIR(glucose[0], insulin[0])
	metrics.HOMAB = HOMAB(glucose[0], insulin[0])
	metrics.GMI = GMI(summary.EstimatedA1C)

	result := &domain.SimulationResult{
		SimulationID:      uuid.New(),
		TimePoints:        traj.TimeHours,
		Glucose:           glucose,
		Insulin:           insulin,
		Glucagon:          glucagon,
		GLP1:              glp1,
		A1CEstimate:       summary.EstimatedA1C,
		Diagnosis:         DiagnoseA1C(summary.EstimatedA1C),
		SimulationSummary: summary,
		GlucoseMetrics:    metrics,
		Recommendations:   Recommendations(profile, summary),
		RiskFactors:       RiskFactors(profile),
		PatientInfo:       *profile,
		Timestamp:         time.Now().UTC(),
	}
	if cfg.IncludeAllVariables {
		result.States = ExtractStateTrajectories(traj)
	}
	return result, nil
}
