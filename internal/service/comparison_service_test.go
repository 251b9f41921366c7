package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
)

func sweepResult(a1c, avg, tir float64) *domain.SimulationResult {
	return &domain.SimulationResult{
		SimulationID: uuid.New(),
		A1CEstimate:  a1c,
		Diagnosis:    domain.DiagnosisNormal,
		SimulationSummary: domain.SimulationSummary{
			AverageGlucose: avg,
			TimeInRange:    tir,
			EstimatedA1C:   a1c,
		},
	}
}

func TestCompareMealPatterns(t *testing.T) {
	engine := NewMockEngine()
	engine.result = sweepResult(5.5, 105, 95)
	svc := NewComparisonService(engine)

	result, err := svc.CompareMealPatterns(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("CompareMealPatterns() error = %v", err)
	}

	if len(result.Scenarios) != 4 || len(result.ComparisonMetrics) != 4 {
		t.Fatalf("scenarios/metrics = %d/%d, want 4/4",
			len(result.Scenarios), len(result.ComparisonMetrics))
	}
	if engine.CallCount() != 4 {
		t.Errorf("engine calls = %d, want 4", engine.CallCount())
	}

	// every variant keeps the four-slot schedule with its pattern factors
	for _, cfg := range engine.Calls() {
		if len(cfg.Meals) != 4 {
			t.Errorf("meals per scenario = %d, want 4", len(cfg.Meals))
		}
	}

	if len(result.Recommendations) == 0 || len(result.ClinicalOutcomes) == 0 {
		t.Error("missing recommendations or clinical outcomes")
	}
}

func TestObesityProgressionHorizonAndFactors(t *testing.T) {
	engine := NewMockEngine()
	engine.result = sweepResult(6.0, 130, 80)
	svc := NewComparisonService(engine)

	result, err := svc.ObesityProgression(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("ObesityProgression() error = %v", err)
	}
	if len(result.ComparisonMetrics) != 4 {
		t.Fatalf("metrics = %d, want 4", len(result.ComparisonMetrics))
	}

	foods := map[float64]bool{}
	for _, cfg := range engine.Calls() {
		if cfg.SimulationHours != progressionHours {
			t.Errorf("horizon = %d, want %d", cfg.SimulationHours, progressionHours)
		}
		foods[cfg.FoodFactor] = true
	}
	for _, want := range []float64{1.0, 1.5, 2.0, 3.0} {
		if !foods[want] {
			t.Errorf("missing food factor %v in sweep", want)
		}
	}
}

func TestDrugAnalysisPicksStrongestReduction(t *testing.T) {
	engine := NewMockEngine()
	engine.results = map[float64]*domain.SimulationResult{
		0.0: sweepResult(7.2, 170, 55),
		0.5: sweepResult(6.8, 155, 65),
		1.0: sweepResult(6.3, 140, 78),
		1.5: sweepResult(6.4, 142, 76),
	}
	svc := NewComparisonService(engine)

	result, err := svc.DrugAnalysis(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("DrugAnalysis() error = %v", err)
	}

	if len(result.ComparisonMetrics) != 4 {
		t.Fatalf("metrics = %d, want 4", len(result.ComparisonMetrics))
	}
	// baseline is dose 0.0; change must be relative to it
	if result.ComparisonMetrics[0].A1CChange != 0 {
		t.Errorf("baseline A1C change = %v, want 0", result.ComparisonMetrics[0].A1CChange)
	}
	wantBest := "Drug dose: 1.0"
	found := false
	for _, rec := range result.Recommendations {
		if rec == "Optimal response observed at "+wantBest {
			found = true
		}
	}
	if !found {
		t.Errorf("recommendations %v missing optimal dose %q", result.Recommendations, wantBest)
	}

	for _, cfg := range engine.Calls() {
		if cfg.SimulationHours != drugSweepHours {
			t.Errorf("horizon = %d, want %d", cfg.SimulationHours, drugSweepHours)
		}
	}
}

func TestSweepPropagatesEngineError(t *testing.T) {
	engine := NewMockEngine()
	engine.err = errors.New("integration blew up")
	svc := NewComparisonService(engine)

	if _, err := svc.CompareMealPatterns(context.Background(), testRequest()); err == nil {
		t.Fatal("CompareMealPatterns() expected error")
	}
}
