package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
	"github.com/itzme170605/diabetes-prediction-app/internal/llm"
	"github.com/itzme170605/diabetes-prediction-app/internal/repository"
)

// InsightsService interprets a persisted simulation run with an LLM.
type InsightsService interface {
	// Generate creates insights for a completed run.
	Generate(ctx context.Context, runID uuid.UUID, profile *domain.PatientProfile) (*domain.InsightsResponse, error)
}

type insightsService struct {
	runRepo   repository.SimulationRunRepository
	llmClient llm.InsightsLLM
}

func NewInsightsService(runRepo repository.SimulationRunRepository, llmClient llm.InsightsLLM) InsightsService {
	return &insightsService{
		runRepo:   runRepo,
		llmClient: llmClient,
	}
}

// Generate loads the run summary and asks the LLM for an interpretation. The
// optional profile enriches the context with demographics the run record does
// not carry; a nil profile still produces insights from the run alone.
func (s *insightsService) Generate(ctx context.Context, runID uuid.UUID, profile *domain.PatientProfile) (*domain.InsightsResponse, error) {
	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		PatientName:     run.PatientName,
		SimulationHours: run.SimulationHours,
		FoodFactor:      run.FoodFactor,
		DrugDosage:      run.DrugDosage,
		A1CEstimate:     run.A1CEstimate,
		Diagnosis:       run.Diagnosis,
		Summary:         run.Summary,
		Metrics:         run.Metrics,
		Recommendations: run.Recommendations,
		RiskFactors:     run.RiskFactors,
	}
	if profile != nil {
		insightsCtx.Age = profile.Age
		insightsCtx.BMICategory = profile.BMICategory()
		insightsCtx.DiabetesStatus = profile.ResolveDiabetesStatus()
	}

	output, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		SimulationID: run.ID.String(),
		Diagnosis:    run.Diagnosis,
		A1CEstimate:  run.A1CEstimate,
		Insights:     *output,
	}, nil
}
