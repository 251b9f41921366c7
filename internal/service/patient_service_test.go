package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
)

func patientProfile() *domain.PatientProfile {
	return &domain.PatientProfile{
		Name:          "Jane Roe",
		Age:           52,
		Weight:        85,
		Height:        165,
		Sex:           "female",
		ActivityLevel: "light",
		SmokingStatus: "non_smoker",
	}
}

func TestPatientCreateResolvesStatus(t *testing.T) {
	repo := NewMockPatientRepository()
	svc := NewPatientService(repo)

	profile := patientProfile()
	fasting := 132.0
	profile.FastingGlucose = &fasting
	profile.DiabetesStatus = domain.StatusAutoDetect

	patient, err := svc.Create(context.Background(), profile)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if patient.ID == uuid.Nil {
		t.Error("patient ID not assigned")
	}
	if patient.DiabetesStatus != domain.StatusDiabetic {
		t.Errorf("DiabetesStatus = %v, want diabetic (fasting 132)", patient.DiabetesStatus)
	}

	stored, err := svc.GetByID(context.Background(), patient.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stored.Name != profile.Name {
		t.Errorf("stored name = %q, want %q", stored.Name, profile.Name)
	}
}

func TestPatientCreateRejectsInvalid(t *testing.T) {
	svc := NewPatientService(NewMockPatientRepository())

	profile := patientProfile()
	profile.Height = 90

	_, err := svc.Create(context.Background(), profile)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *domain.ValidationError", err)
	}
	if verr.Field != "height" {
		t.Errorf("Field = %q, want height", verr.Field)
	}
}

func TestPatientGetUnknown(t *testing.T) {
	svc := NewPatientService(NewMockPatientRepository())

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestPatientValidateDerivedFields(t *testing.T) {
	svc := NewPatientService(NewMockPatientRepository())

	resp, err := svc.Validate(patientProfile())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !resp.Valid {
		t.Error("Valid = false, want true")
	}
	wantBMI := 85 / (1.65 * 1.65)
	if math.Abs(resp.BMI-wantBMI) > 1e-9 {
		t.Errorf("BMI = %v, want %v", resp.BMI, wantBMI)
	}
	if resp.BMICategory != "Obese" { // BMI 31.2
		t.Errorf("BMICategory = %q, want Obese", resp.BMICategory)
	}
	if resp.DiabetesStatus != domain.StatusNormal {
		t.Errorf("DiabetesStatus = %v, want normal", resp.DiabetesStatus)
	}
}

func TestHealthMetrics(t *testing.T) {
	svc := NewPatientService(NewMockPatientRepository())

	profile := patientProfile()
	resp, err := svc.HealthMetrics(profile)
	if err != nil {
		t.Fatalf("HealthMetrics() error = %v", err)
	}

	// Harris-Benedict, female
	wantBMR := 447.593 + 9.247*85 + 3.098*165 - 4.330*52
	if math.Abs(resp.BMR-wantBMR) > 1e-9 {
		t.Errorf("BMR = %v, want %v", resp.BMR, wantBMR)
	}
	if math.Abs(resp.DailyCalories-wantBMR*1.375) > 1e-9 {
		t.Errorf("DailyCalories = %v, want %v", resp.DailyCalories, wantBMR*1.375)
	}

	wantMin := 18.5 * 1.65 * 1.65
	wantMax := 24.9 * 1.65 * 1.65
	if math.Abs(resp.IdealWeightMinKg-wantMin) > 1e-9 || math.Abs(resp.IdealWeightMaxKg-wantMax) > 1e-9 {
		t.Errorf("ideal weight = [%v, %v], want [%v, %v]",
			resp.IdealWeightMinKg, resp.IdealWeightMaxKg, wantMin, wantMax)
	}

	// age 52 (+1) and BMI 31.2 (+2): moderate
	if resp.CardiovascularRisk != "Moderate" {
		t.Errorf("CardiovascularRisk = %q, want Moderate", resp.CardiovascularRisk)
	}

	// 52 + (31.2-25)*0.5 for excess BMI, light activity adds nothing
	wantMetAge := 52 + (85/(1.65*1.65)-25)*0.5
	if math.Abs(resp.MetabolicAge-wantMetAge) > 1e-9 {
		t.Errorf("MetabolicAge = %v, want %v", resp.MetabolicAge, wantMetAge)
	}
}

func TestHealthMetricsMaleBMR(t *testing.T) {
	svc := NewPatientService(NewMockPatientRepository())

	profile := &domain.PatientProfile{
		Name: "John Doe", Age: 40, Weight: 80, Height: 180,
		Sex: "male", ActivityLevel: "active",
	}
	resp, err := svc.HealthMetrics(profile)
	if err != nil {
		t.Fatalf("HealthMetrics() error = %v", err)
	}

	wantBMR := 88.362 + 13.397*80 + 4.799*180 - 5.677*40
	if math.Abs(resp.BMR-wantBMR) > 1e-9 {
		t.Errorf("BMR = %v, want %v", resp.BMR, wantBMR)
	}
	if math.Abs(resp.DailyCalories-wantBMR*1.725) > 1e-9 {
		t.Errorf("DailyCalories = %v, want %v", resp.DailyCalories, wantBMR*1.725)
	}
	if resp.CardiovascularRisk != "Low" {
		t.Errorf("CardiovascularRisk = %q, want Low", resp.CardiovascularRisk)
	}
}

func TestCardiovascularRiskHigh(t *testing.T) {
	svc := NewPatientService(NewMockPatientRepository())

	profile := patientProfile()
	profile.SmokingStatus = "smoker"
	profile.FamilyHistory = true
	profile.DiabetesStatus = domain.StatusDiabetic

	resp, err := svc.HealthMetrics(profile)
	if err != nil {
		t.Fatalf("HealthMetrics() error = %v", err)
	}
	if resp.CardiovascularRisk != "High" {
		t.Errorf("CardiovascularRisk = %q, want High", resp.CardiovascularRisk)
	}
}
