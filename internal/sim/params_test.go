package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func testProfile() *domain.PatientProfile {
	return &domain.PatientProfile{
		Name:          "Test Patient",
		Age:           40,
		Weight:        70,
		Height:        175,
		Sex:           "male",
		ActivityLevel: "moderate",
	}
}

func TestResolveObesityTiers(t *testing.T) {
	tests := []struct {
		name       string
		weight     float64 // height fixed at 175 cm
		wantFactor float64
	}{
		{name: "normal weight", weight: 70, wantFactor: 1.0},   // BMI 22.9
		{name: "overweight", weight: 80, wantFactor: 2.0},      // BMI 26.1
		{name: "obese", weight: 95, wantFactor: 4.0},           // BMI 31.0
		{name: "severely obese", weight: 120, wantFactor: 4.0}, // BMI 39.2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := testProfile()
			profile.Weight = tt.weight

			p, _, _, err := Resolve(profile)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if p.ObesityFactor != tt.wantFactor {
				t.Errorf("ObesityFactor = %v, want %v", p.ObesityFactor, tt.wantFactor)
			}
		})
	}
}

func TestResolveObesityAmplifiesInflammation(t *testing.T) {
	base := baseParameters()

	profile := testProfile()
	profile.Weight = 95 // BMI 31

	p, x0, _, err := Resolve(profile)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if p.EtaTa <= base.EtaTa {
		t.Errorf("EtaTa = %v, want amplified above %v", p.EtaTa, base.EtaTa)
	}
	if p.GammaPHat <= base.GammaPHat {
		t.Errorf("GammaPHat = %v, want amplified above %v", p.GammaPHat, base.GammaPHat)
	}

	lean, leanX0, _, err := Resolve(testProfile())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if lean.EtaTa != base.EtaTa {
		t.Errorf("lean EtaTa = %v, want base %v", lean.EtaTa, base.EtaTa)
	}
	if x0[IdxPalmitic] <= leanX0[IdxPalmitic] {
		t.Errorf("obese palmitic baseline = %v, want above lean %v",
			x0[IdxPalmitic], leanX0[IdxPalmitic])
	}
}

func TestResolveAgeFactor(t *testing.T) {
	tests := []struct {
		name string
		age  int
		want float64
	}{
		{name: "young adult", age: 20, want: 1.0},
		{name: "under twenty keeps full capacity", age: 15, want: 1.0},
		{name: "middle aged", age: 50, want: 0.85},
		{name: "elderly", age: 80, want: 0.70},
		{name: "floor at half", age: 120, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := testProfile()
			profile.Age = tt.age

			p, _, _, err := Resolve(profile)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if math.Abs(p.AgeFactor-tt.want) > 1e-12 {
				t.Errorf("AgeFactor = %v, want %v", p.AgeFactor, tt.want)
			}
			wantLambdaB := baseParameters().LambdaB * tt.want
			if math.Abs(p.LambdaB-wantLambdaB)/wantLambdaB > 1e-12 {
				t.Errorf("LambdaB = %v, want %v", p.LambdaB, wantLambdaB)
			}
		})
	}
}

func TestResolveActivityFactor(t *testing.T) {
	tests := []struct {
		level string
		want  float64
	}{
		{level: "sedentary", want: 0.7},
		{level: "light", want: 0.85},
		{level: "moderate", want: 1.0},
		{level: "active", want: 1.2},
		{level: "", want: 1.0},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			profile := testProfile()
			profile.ActivityLevel = tt.level

			p, _, _, err := Resolve(profile)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if p.ActivityFactor != tt.want {
				t.Errorf("ActivityFactor = %v, want %v", p.ActivityFactor, tt.want)
			}
		})
	}
}

func TestResolveStatusBaselines(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.DiabetesStatus
		fasting    *float64
		wantStatus domain.DiabetesStatus
	}{
		{name: "explicit diabetic", status: domain.StatusDiabetic, wantStatus: domain.StatusDiabetic},
		{name: "explicit wins over labs", status: domain.StatusNormal, fasting: floatPtr(180), wantStatus: domain.StatusNormal},
		{name: "auto-detect from fasting", status: domain.StatusAutoDetect, fasting: floatPtr(130), wantStatus: domain.StatusDiabetic},
		{name: "auto-detect prediabetic", status: "", fasting: floatPtr(110), wantStatus: domain.StatusPrediabetic},
		{name: "no labs defaults to normal", status: "", wantStatus: domain.StatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := testProfile()
			profile.DiabetesStatus = tt.status
			profile.FastingGlucose = tt.fasting

			_, x0, status, err := Resolve(profile)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if status != tt.wantStatus {
				t.Errorf("status = %v, want %v", status, tt.wantStatus)
			}

			normal := initialState(domain.StatusNormal, 22)
			switch tt.wantStatus {
			case domain.StatusDiabetic:
				if x0[IdxGlucose] <= normal[IdxGlucose] {
					t.Errorf("diabetic baseline glucose = %v, want above normal %v",
						x0[IdxGlucose], normal[IdxGlucose])
				}
				if x0[IdxBeta] >= normal[IdxBeta] {
					t.Errorf("diabetic β-cell baseline = %v, want below normal %v",
						x0[IdxBeta], normal[IdxBeta])
				}
			case domain.StatusNormal:
				if x0[IdxGlucose] != normal[IdxGlucose] {
					t.Errorf("normal baseline glucose = %v, want %v",
						x0[IdxGlucose], normal[IdxGlucose])
				}
			}
		})
	}
}

func TestResolveRejectsInvalidProfile(t *testing.T) {
	profile := testProfile()
	profile.Age = 150

	_, _, _, err := Resolve(profile)
	if err == nil {
		t.Fatal("Resolve() expected error for out-of-range age")
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T, want *domain.ValidationError", err)
	}
	if verr.Field != "age" {
		t.Errorf("Field = %q, want %q", verr.Field, "age")
	}
}

func TestInitialStateNonNegative(t *testing.T) {
	for _, status := range []domain.DiabetesStatus{
		domain.StatusNormal, domain.StatusPrediabetic, domain.StatusDiabetic,
	} {
		x := initialState(status, 35)
		for i, v := range x {
			if v <= 0 {
				t.Errorf("status %s: component %d = %v, want positive", status, i, v)
			}
		}
	}
}
