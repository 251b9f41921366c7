package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
	"github.com/itzme170605/diabetes-prediction-app/internal/repository"
)

// Harris-Benedict activity multipliers for daily calorie needs. Distinct from
// the simulation's glucose-uptake multipliers.
var calorieMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
}

const defaultCalorieMultiplier = 1.55

type PatientService interface {
	Create(ctx context.Context, profile *domain.PatientProfile) (*domain.Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	// Validate checks a profile and reports the derived fields.
	Validate(profile *domain.PatientProfile) (*domain.PatientValidationResponse, error)
	// HealthMetrics computes the derived health metrics for a profile.
	HealthMetrics(profile *domain.PatientProfile) (*domain.HealthMetricsResponse, error)
}

type patientService struct {
	repo repository.PatientRepository
}

func NewPatientService(repo repository.PatientRepository) PatientService {
	return &patientService{repo: repo}
}

func (s *patientService) Create(ctx context.Context, profile *domain.PatientProfile) (*domain.Patient, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	patient := &domain.Patient{
		ID:             uuid.New(),
		Name:           profile.Name,
		Age:            profile.Age,
		Weight:         profile.Weight,
		Height:         profile.Height,
		Sex:            profile.Sex,
		DiabetesStatus: profile.ResolveDiabetesStatus(),
		ActivityLevel:  profile.ActivityLevel,
		SmokingStatus:  profile.SmokingStatus,
		FamilyHistory:  profile.FamilyHistory,
		Medications:    profile.Medications,
		FastingGlucose: profile.FastingGlucose,
		A1CLevel:       profile.A1CLevel,
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *patientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *patientService) Validate(profile *domain.PatientProfile) (*domain.PatientValidationResponse, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &domain.PatientValidationResponse{
		Valid:          true,
		BMI:            profile.BMI(),
		BMICategory:    profile.BMICategory(),
		DiabetesStatus: profile.ResolveDiabetesStatus(),
	}, nil
}

func (s *patientService) HealthMetrics(profile *domain.PatientProfile) (*domain.HealthMetricsResponse, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	heightM := profile.Height / 100
	bmi := profile.BMI()

	// Harris-Benedict basal metabolic rate
	var bmr float64
	if profile.Sex == "male" {
		bmr = 88.362 + 13.397*profile.Weight + 4.799*profile.Height - 5.677*float64(profile.Age)
	} else {
		bmr = 447.593 + 9.247*profile.Weight + 3.098*profile.Height - 4.330*float64(profile.Age)
	}

	mult, ok := calorieMultipliers[profile.ActivityLevel]
	if !ok {
		mult = defaultCalorieMultiplier
	}

	return &domain.HealthMetricsResponse{
		BMI:                bmi,
		BMICategory:        profile.BMICategory(),
		IdealWeightMinKg:   18.5 * heightM * heightM,
		IdealWeightMaxKg:   24.9 * heightM * heightM,
		BMR:                bmr,
		DailyCalories:      bmr * mult,
		CardiovascularRisk: cardiovascularRisk(profile, bmi),
		MetabolicAge:       metabolicAge(profile, bmi),
	}, nil
}

func cardiovascularRisk(profile *domain.PatientProfile, bmi float64) string {
	score := 0
	if profile.Age > 45 {
		score++
	}
	if bmi > 30 {
		score += 2
	}
	if profile.SmokingStatus == "smoker" {
		score += 2
	}
	if profile.FamilyHistory {
		score++
	}
	if profile.ResolveDiabetesStatus() == domain.StatusDiabetic {
		score += 2
	}

	switch {
	case score < 3:
		return "Low"
	case score < 5:
		return "Moderate"
	default:
		return "High"
	}
}

// metabolicAge is the simplified estimate: chronological age shifted by
// excess BMI and activity level.
func metabolicAge(profile *domain.PatientProfile, bmi float64) float64 {
	age := float64(profile.Age)
	if bmi > 25 {
		age += (bmi - 25) * 0.5
	}
	switch profile.ActivityLevel {
	case "active":
		age -= 5
	case "sedentary":
		age += 5
	}
	return age
}
