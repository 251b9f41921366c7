package domain

import (
	"time"

	"github.com/google/uuid"
)

// SimulationSummary holds the scalar glucose statistics of a run.
// @Description Scalar summary statistics derived from the glucose trajectory.
type SimulationSummary struct {
	// Mean glucose, mg/dL
	AverageGlucose float64 `json:"average_glucose" example:"104.2"`
	MaxGlucose     float64 `json:"max_glucose" example:"151.8"`
	MinGlucose     float64 `json:"min_glucose" example:"78.4"`
	// Standard deviation of glucose, mg/dL
	GlucoseVariability float64 `json:"glucose_variability" example:"18.7"`
	// Percent of time in 70-180 mg/dL
	TimeInRange float64 `json:"time_in_range" example:"94.5"`
	// Percent of time above 180 mg/dL
	TimeAboveRange float64 `json:"time_above_range" example:"3.1"`
	// Percent of time below 70 mg/dL
	TimeBelowRange float64 `json:"time_below_range" example:"2.4"`
	// Percent of time in the tight 70-140 mg/dL band
	TimeInTightRange float64 `json:"time_in_tight_range" example:"88.2"`
	// Percent of time above 250 mg/dL
	TimeAboveVeryHigh float64 `json:"time_above_very_high" example:"0.0"`
	EstimatedA1C      float64 `json:"estimated_a1c" example:"5.3"`
}

// GlucoseMetrics holds the variability and pattern metrics of a run.
// @Description Glucose variability, stability, and pattern metrics.
type GlucoseMetrics struct {
	// Early-morning rise: mean glucose 4-8h band minus mean 0-4h band, mg/dL
	DawnPhenomenon float64 `json:"dawn_phenomenon" example:"12.3"`
	// Coefficient of variation, percent
	CoefficientOfVariation float64 `json:"coefficient_of_variation" example:"17.9"`
	// Mean absolute rate of change between samples, mg/dL per hour
	MeanRateOfChange float64 `json:"mean_rate_of_change" example:"8.1"`
	// Largest absolute rate of change, mg/dL per hour
	MaxRateOfChange float64 `json:"max_rate_of_change" example:"42.6"`
	// MAGE-like mean amplitude of glucose excursions, mg/dL
	MAGE float64 `json:"mage" example:"31.4"`
	// 0-100 stability score; higher is steadier
	StabilityScore float64 `json:"stability_score" example:"82.1"`
	// HOMA-IR insulin resistance index from the fasting (t=0) sample
	HOMAIR float64 `json:"homa_ir" example:"1.8"`
	// HOMA-B beta-cell function estimate from the fasting (t=0) sample
	HOMAB float64 `json:"homa_b" example:"96.4"`
	// Glucose management indicator, percent (A1C-scale)
	GMI float64 `json:"gmi" example:"5.4"`
}

// StateTrajectories carries the optional full 12-variable trajectory in
// display units.
// @Description Full state-variable trajectories (optional).
type StateTrajectories struct {
	BetaCells     []float64 `json:"beta_cells"`
	AlphaCells    []float64 `json:"alpha_cells"`
	GLUT2         []float64 `json:"glut2"`
	GLUT4         []float64 `json:"glut4"`
	StoredGlucose []float64 `json:"stored_glucose"`
	TotalEnergy   []float64 `json:"total_energy"`
	OleicAcid     []float64 `json:"oleic_acid"`
	PalmiticAcid  []float64 `json:"palmitic_acid"`
	TNFAlpha      []float64 `json:"tnf_alpha"`
}

// SimulationResult is the full outcome of one simulation run. Immutable once
// produced; cached and persisted copies are never mutated.
// @Description Simulation trajectory, summary metrics, and recommendations.
type SimulationResult struct {
	SimulationID uuid.UUID `json:"simulation_id"`
	// Sample times in hours at fixed 10-minute resolution
	TimePoints []float64 `json:"time_points"`
	// Blood glucose, mg/dL
	Glucose []float64 `json:"glucose"`
	// Insulin, pmol/L
	Insulin []float64 `json:"insulin"`
	// Glucagon, pg/mL
	Glucagon []float64 `json:"glucagon"`
	// GLP-1, pmol/L
	GLP1 []float64 `json:"glp1"`
	// Optional full state trajectories
	States *StateTrajectories `json:"states,omitempty"`

	A1CEstimate float64 `json:"a1c_estimate" example:"5.3"`
	Diagnosis   string  `json:"diagnosis" example:"Normal"`

	SimulationSummary SimulationSummary `json:"simulation_summary"`
	GlucoseMetrics    GlucoseMetrics    `json:"glucose_metrics"`

	Recommendations []string `json:"recommendations"`
	RiskFactors     []string `json:"risk_factors"`

	PatientInfo PatientProfile `json:"patient_info"`
	Timestamp   time.Time      `json:"timestamp"`
}

// Diagnosis buckets reported by the metrics calculator.
const (
	DiagnosisNormal      = "Normal"
	DiagnosisPrediabetic = "Prediabetic"
	DiagnosisDiabetic    = "Diabetic"
)

// SimulationRun is the persisted record of a completed run. The trajectory is
// not stored; the summary is enough for history listings and insights.
type SimulationRun struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID       *uuid.UUID        `gorm:"type:uuid;index:idx_runs_patient_created" json:"patient_id,omitempty"`
	PatientName     string            `gorm:"type:varchar(100)" json:"patient_name"`
	SimulationHours int               `gorm:"not null" json:"simulation_hours"`
	FoodFactor      float64           `gorm:"not null" json:"food_factor"`
	PalmiticFactor  float64           `gorm:"not null" json:"palmitic_factor"`
	DrugDosage      float64           `gorm:"not null" json:"drug_dosage"`
	A1CEstimate     float64           `gorm:"not null" json:"a1c_estimate"`
	Diagnosis       string            `gorm:"type:varchar(16);not null" json:"diagnosis"`
	Summary         SimulationSummary `gorm:"serializer:json" json:"summary"`
	Metrics         GlucoseMetrics    `gorm:"serializer:json" json:"metrics"`
	Recommendations []string          `gorm:"serializer:json" json:"recommendations"`
	RiskFactors     []string          `gorm:"serializer:json" json:"risk_factors"`
	CreatedAt       time.Time         `gorm:"autoCreateTime;index:idx_runs_patient_created,sort:desc" json:"created_at"`
}

func (SimulationRun) TableName() string {
	return "simulation_runs"
}

// SimulationRunFilter contains filter parameters for listing runs.
type SimulationRunFilter struct {
	Limit  int
	Cursor string
}

// SimulationRunListResponse is a paginated page of run history.
// @Description Paginated simulation run history.
type SimulationRunListResponse struct {
	Data       []SimulationRun    `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more" example:"true"`
}

// ComparisonScenario describes one scenario of a comparison sweep.
// @Description One scenario within a comparison sweep.
type ComparisonScenario struct {
	Name        string    `json:"name" example:"Balanced"`
	Description string    `json:"description,omitempty"`
	FoodFactor  float64   `json:"food_factor,omitempty"`
	Palmitic    float64   `json:"palmitic_factor,omitempty"`
	DrugDosage  float64   `json:"drug_dosage,omitempty"`
	MealFactors []float64 `json:"meal_factors,omitempty"`
}

// ComparisonMetric is the per-scenario row of a comparison table.
// @Description Per-scenario comparison metrics.
type ComparisonMetric struct {
	Scenario           string  `json:"scenario"`
	A1CEstimate        float64 `json:"a1c_estimate"`
	A1CChange          float64 `json:"a1c_change"`
	AverageGlucose     float64 `json:"average_glucose"`
	GlucoseVariability float64 `json:"glucose_variability"`
	TimeInRange        float64 `json:"time_in_range"`
	Diagnosis          string  `json:"diagnosis"`
}

// ComparisonResult is the outcome of a multi-scenario sweep.
// @Description Multi-scenario comparison: metrics, recommendations, outcomes.
type ComparisonResult struct {
	Scenarios         []ComparisonScenario `json:"scenarios"`
	ComparisonMetrics []ComparisonMetric   `json:"comparison_metrics"`
	Recommendations   []string             `json:"recommendations"`
	ClinicalOutcomes  []string             `json:"clinical_outcomes"`
}

// CacheStatus reports result cache occupancy for the admin endpoint.
// @Description Result cache occupancy.
type CacheStatus struct {
	Entries  int `json:"entries" example:"12"`
	Capacity int `json:"capacity" example:"256"`
}
