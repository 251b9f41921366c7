package domain

// InsightsContext is the payload handed to the LLM: a completed run's
// scenario, summary, and patient context. No raw trajectory is sent.
type InsightsContext struct {
	PatientName     string            `json:"patient_name"`
	Age             int               `json:"age"`
	BMICategory     string            `json:"bmi_category"`
	DiabetesStatus  DiabetesStatus    `json:"diabetes_type"`
	SimulationHours int               `json:"simulation_hours"`
	FoodFactor      float64           `json:"food_factor"`
	DrugDosage      float64           `json:"drug_dosage"`
	A1CEstimate     float64           `json:"a1c_estimate"`
	Diagnosis       string            `json:"diagnosis"`
	Summary         SimulationSummary `json:"simulation_summary"`
	Metrics         GlucoseMetrics    `json:"glucose_metrics"`
	Recommendations []string          `json:"rule_based_recommendations"`
	RiskFactors     []string          `json:"risk_factors"`
}

// LLMInsightsOutput is the structured response expected from the LLM.
// @Description LLM-generated interpretation of a simulation run.
type LLMInsightsOutput struct {
	// 2-3 sentence summary of the simulated glucose control
	Summary string `json:"summary"`
	// Bullet observations about patterns in the summary metrics
	Observations []string `json:"observations"`
	// Lifestyle-level guidance grounded in the numbers
	Guidance []string `json:"guidance"`
}

// InsightsResponse is the insights endpoint response.
// @Description Simulation insights: run summary plus LLM interpretation.
type InsightsResponse struct {
	SimulationID string            `json:"simulation_id"`
	Diagnosis    string            `json:"diagnosis"`
	A1CEstimate  float64           `json:"a1c_estimate"`
	Insights     LLMInsightsOutput `json:"insights"`
}
