package domain

import "github.com/google/uuid"

// Documented scenario bounds. The engine re-validates these even when the
// HTTP layer has already run tag validation.
const (
	MinSimulationHours = 6
	MaxSimulationHours = 168

	MinFoodFactor = 0.5
	MaxFoodFactor = 3.0

	MinPalmiticFactor = 0.5
	MaxPalmiticFactor = 4.0

	MinDrugDosage = 0.0
	MaxDrugDosage = 2.0
)

// Meal is one entry of the canonical meal schedule: an offset from the start
// of the simulated day and a relative portion size. Schedules repeat every
// 24 h on multi-day horizons.
type Meal struct {
	// Offset from the start of the day, in hours [0, 24)
	OffsetHours float64 `json:"offset_hours" example:"6"`
	// Relative portion size scaling the meal's glucose/lipid influx
	Magnitude float64 `json:"magnitude" example:"0.4"`
}

// DefaultMeals is the canonical three-meal day: modest breakfast and lunch,
// larger dinner.
func DefaultMeals() []Meal {
	return []Meal{
		{OffsetHours: 0, Magnitude: 0.4},
		{OffsetHours: 6, Magnitude: 0.4},
		{OffsetHours: 12, Magnitude: 0.8},
	}
}

// ScenarioConfig is the fully-resolved simulation scenario: horizon, meal
// schedule, and the global multipliers applied to the forcing terms.
type ScenarioConfig struct {
	SimulationHours int     `json:"simulation_hours"`
	FoodFactor      float64 `json:"food_factor"`
	PalmiticFactor  float64 `json:"palmitic_factor"`
	DrugDosage      float64 `json:"drug_dosage"`
	DrugType        string  `json:"drug_type,omitempty"`
	Meals           []Meal  `json:"meals"`
	// IncludeAllVariables adds the full 12-variable trajectory to the result
	IncludeAllVariables bool `json:"include_all_variables,omitempty"`
}

// Validate checks every scenario field against its documented bound and
// names the offending field on failure.
func (c *ScenarioConfig) Validate() error {
	if c.SimulationHours < MinSimulationHours || c.SimulationHours > MaxSimulationHours {
		return &ValidationError{Field: "simulation_hours", Message: "must be between 6 and 168 hours"}
	}
	if c.FoodFactor < MinFoodFactor || c.FoodFactor > MaxFoodFactor {
		return &ValidationError{Field: "food_factor", Message: "must be between 0.5 and 3.0"}
	}
	if c.PalmiticFactor < MinPalmiticFactor || c.PalmiticFactor > MaxPalmiticFactor {
		return &ValidationError{Field: "palmitic_factor", Message: "must be between 0.5 and 4.0"}
	}
	if c.DrugDosage < MinDrugDosage || c.DrugDosage > MaxDrugDosage {
		return &ValidationError{Field: "drug_dosage", Message: "must be between 0.0 and 2.0"}
	}
	if len(c.Meals) == 0 {
		return &ValidationError{Field: "meal_times", Message: "at least one meal is required"}
	}
	for _, m := range c.Meals {
		if m.OffsetHours < 0 || m.OffsetHours >= 24 {
			return &ValidationError{Field: "meal_times", Message: "offsets must be within [0, 24) hours"}
		}
		if m.Magnitude < 0 {
			return &ValidationError{Field: "meal_factors", Message: "must be non-negative"}
		}
	}
	return nil
}

// SimulationRequest is the wire shape accepted by the simulation endpoints.
// meal_times/meal_factors are parallel arrays converged into the canonical
// meal schedule; when omitted the default three-meal day is used.
// @Description Simulation request: patient profile plus scenario parameters.
type SimulationRequest struct {
	PatientData PatientProfile `json:"patient_data" validate:"required"`
	// Optional stored patient to link the run to
	PatientID *uuid.UUID `json:"patient_id,omitempty"`
	// Simulation horizon in hours
	SimulationHours int `json:"simulation_hours" validate:"omitempty,min=6,max=168" example:"24"`
	// Global meal-size multiplier
	FoodFactor float64 `json:"food_factor" validate:"omitempty,min=0.5,max=3" example:"1.0"`
	// Lipid/obesity multiplier scaling palmitic acid influx
	PalmiticFactor float64 `json:"palmitic_factor" validate:"omitempty,min=0.5,max=4" example:"1.0"`
	// GLP-1 agonist dose-equivalent (dimensionless)
	DrugDosage float64 `json:"drug_dosage" validate:"omitempty,min=0,max=2" example:"0.0"`
	// Optional drug type tag
	DrugType string `json:"drug_type,omitempty" validate:"omitempty,oneof=mounjaro ozempic" example:"ozempic"`
	// Meal offsets in hours from the start of the day
	MealTimes []float64 `json:"meal_times,omitempty" validate:"omitempty,max=10,dive,gte=0,lt=24"`
	// Relative meal sizes, parallel to meal_times
	MealFactors []float64 `json:"meal_factors,omitempty" validate:"omitempty,max=10,dive,gte=0"`
	// Include the full 12-variable trajectory in the response
	IncludeAllVariables bool `json:"include_all_variables,omitempty"`
}

// Scenario converges the wire fields into a ScenarioConfig, applying defaults
// for omitted values. Meals lacking a parallel factor default to zero size,
// matching the original service's trailing-snack convention.
func (r *SimulationRequest) Scenario() ScenarioConfig {
	cfg := ScenarioConfig{
		SimulationHours:     r.SimulationHours,
		FoodFactor:          r.FoodFactor,
		PalmiticFactor:      r.PalmiticFactor,
		DrugDosage:          r.DrugDosage,
		DrugType:            r.DrugType,
		IncludeAllVariables: r.IncludeAllVariables,
	}

	if cfg.SimulationHours == 0 {
		cfg.SimulationHours = 24
	}
	if cfg.FoodFactor == 0 {
		cfg.FoodFactor = 1.0
	}
	if cfg.PalmiticFactor == 0 {
		cfg.PalmiticFactor = 1.0
	}

	if len(r.MealTimes) == 0 {
		cfg.Meals = DefaultMeals()
		return cfg
	}

	cfg.Meals = make([]Meal, len(r.MealTimes))
	for i, t := range r.MealTimes {
		var factor float64
		if i < len(r.MealFactors) {
			factor = r.MealFactors[i]
		}
		cfg.Meals[i] = Meal{OffsetHours: t, Magnitude: factor}
	}
	return cfg
}
