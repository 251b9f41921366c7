package domain

import (
	"time"

	"github.com/google/uuid"
)

// DiabetesStatus classifies a patient's glycemic state.
// @Description Diabetes status: normal, prediabetic, diabetic, or auto (infer from labs).
type DiabetesStatus string

const (
	// StatusNormal is a non-diabetic glycemic profile
	StatusNormal DiabetesStatus = "normal"
	// StatusPrediabetic is impaired fasting glucose / elevated A1C
	StatusPrediabetic DiabetesStatus = "prediabetic"
	// StatusDiabetic is type 2 diabetes
	StatusDiabetic DiabetesStatus = "diabetic"
	// StatusAutoDetect asks the engine to infer status from fasting glucose or A1C
	StatusAutoDetect DiabetesStatus = "auto"
)

// ADA clinical thresholds used when the diabetes status is auto-detected.
const (
	FastingDiabeticThreshold    = 126.0 // mg/dL
	FastingPrediabeticThreshold = 100.0 // mg/dL
	A1CDiabeticThreshold        = 6.5   // %
	A1CPrediabeticThreshold     = 5.7   // %
)

// PatientProfile is the wire shape of patient_data. Numeric bounds mirror the
// documented clinical ranges and are re-validated by the engine.
// @Description Patient demographics, anthropometrics, and medical history.
type PatientProfile struct {
	// Patient display name
	Name string `json:"name" validate:"required,min=1,max=100" example:"John Doe"`
	// Age in years
	Age int `json:"age" validate:"required,min=1,max=120" example:"45"`
	// Weight in kilograms
	Weight float64 `json:"weight" validate:"required,gt=20,lt=300" example:"85"`
	// Height in centimeters
	Height float64 `json:"height" validate:"required,gt=100,lt=250" example:"175"`
	// Biological sex
	Sex string `json:"gender" validate:"required,oneof=male female" example:"male"`
	// Diabetes status; omit or set to "auto" to infer from labs
	DiabetesStatus DiabetesStatus `json:"diabetes_type,omitempty" validate:"omitempty,oneof=normal prediabetic diabetic auto" example:"prediabetic"`
	// Physical activity level
	ActivityLevel string `json:"activity_level,omitempty" validate:"omitempty,oneof=sedentary light moderate active" example:"moderate"`
	// Smoking status
	SmokingStatus string `json:"smoking_status,omitempty" validate:"omitempty,oneof=non_smoker former_smoker smoker" example:"non_smoker"`
	// Family history of diabetes
	FamilyHistory bool `json:"family_history" example:"true"`
	// Current medications
	Medications []string `json:"medications,omitempty" example:"Metformin"`
	// Fasting plasma glucose in mg/dL (used for auto-detection)
	FastingGlucose *float64 `json:"fasting_glucose,omitempty" validate:"omitempty,gte=50,lte=400" example:"110"`
	// Lab-measured A1C in percent (used for auto-detection)
	A1CLevel *float64 `json:"a1c_level,omitempty" validate:"omitempty,gte=3,lte=15" example:"6.2"`
}

// BMI computes body mass index from weight (kg) and height (cm).
func (p *PatientProfile) BMI() float64 {
	heightM := p.Height / 100
	return p.Weight / (heightM * heightM)
}

// BMICategory buckets BMI into the standard WHO categories.
func (p *PatientProfile) BMICategory() string {
	bmi := p.BMI()
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// ResolveDiabetesStatus resolves the explicit-or-auto-detect variant once,
// early. An explicit status wins; otherwise fasting glucose is consulted
// first, then A1C, falling back to normal when neither lab is present.
// Downstream code uses only the resolved value, never re-infers.
func (p *PatientProfile) ResolveDiabetesStatus() DiabetesStatus {
	if p.DiabetesStatus != "" && p.DiabetesStatus != StatusAutoDetect {
		return p.DiabetesStatus
	}

	if p.FastingGlucose != nil {
		switch {
		case *p.FastingGlucose >= FastingDiabeticThreshold:
			return StatusDiabetic
		case *p.FastingGlucose >= FastingPrediabeticThreshold:
			return StatusPrediabetic
		default:
			return StatusNormal
		}
	}

	if p.A1CLevel != nil {
		switch {
		case *p.A1CLevel >= A1CDiabeticThreshold:
			return StatusDiabetic
		case *p.A1CLevel >= A1CPrediabeticThreshold:
			return StatusPrediabetic
		default:
			return StatusNormal
		}
	}

	return StatusNormal
}

// Validate re-checks the numeric ranges the engine depends on. The HTTP layer
// already runs tag validation; the engine still refuses out-of-bound values
// with the offending field named.
func (p *PatientProfile) Validate() error {
	if p.Age < 1 || p.Age > 120 {
		return &ValidationError{Field: "age", Message: "must be between 1 and 120 years"}
	}
	if p.Weight <= 20 || p.Weight >= 300 {
		return &ValidationError{Field: "weight", Message: "must be between 20 and 300 kg"}
	}
	if p.Height <= 100 || p.Height >= 250 {
		return &ValidationError{Field: "height", Message: "must be between 100 and 250 cm"}
	}
	if p.FastingGlucose != nil && (*p.FastingGlucose < 50 || *p.FastingGlucose > 400) {
		return &ValidationError{Field: "fasting_glucose", Message: "must be between 50 and 400 mg/dL"}
	}
	if p.A1CLevel != nil && (*p.A1CLevel < 3 || *p.A1CLevel > 15) {
		return &ValidationError{Field: "a1c_level", Message: "must be between 3 and 15 percent"}
	}
	switch p.DiabetesStatus {
	case "", StatusAutoDetect, StatusNormal, StatusPrediabetic, StatusDiabetic:
	default:
		return &ValidationError{Field: "diabetes_type", Message: "must be one of: normal, prediabetic, diabetic, auto"}
	}
	return nil
}

// Patient is the persisted patient record.
type Patient struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string         `gorm:"type:varchar(100);not null" json:"name"`
	Age            int            `gorm:"type:smallint;not null" json:"age"`
	Weight         float64        `gorm:"not null" json:"weight"`
	Height         float64        `gorm:"not null" json:"height"`
	Sex            string         `gorm:"type:varchar(10);not null" json:"gender"`
	DiabetesStatus DiabetesStatus `gorm:"type:varchar(16)" json:"diabetes_type"`
	ActivityLevel  string         `gorm:"type:varchar(16)" json:"activity_level"`
	SmokingStatus  string         `gorm:"type:varchar(16)" json:"smoking_status"`
	FamilyHistory  bool           `json:"family_history"`
	Medications    []string       `gorm:"serializer:json" json:"medications"`
	FastingGlucose *float64       `json:"fasting_glucose,omitempty"`
	A1CLevel       *float64       `json:"a1c_level,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// Profile converts the stored record back to the wire profile.
func (p *Patient) Profile() PatientProfile {
	return PatientProfile{
		Name:           p.Name,
		Age:            p.Age,
		Weight:         p.Weight,
		Height:         p.Height,
		Sex:            p.Sex,
		DiabetesStatus: p.DiabetesStatus,
		ActivityLevel:  p.ActivityLevel,
		SmokingStatus:  p.SmokingStatus,
		FamilyHistory:  p.FamilyHistory,
		Medications:    p.Medications,
		FastingGlucose: p.FastingGlucose,
		A1CLevel:       p.A1CLevel,
	}
}

// PatientValidationResponse is returned by the patient validation endpoint.
// @Description Derived fields computed from a validated patient profile.
type PatientValidationResponse struct {
	Valid bool `json:"valid" example:"true"`
	// Body mass index, kg/m²
	BMI float64 `json:"bmi" example:"27.8"`
	// WHO BMI category
	BMICategory string `json:"bmi_category" example:"Overweight"`
	// Resolved diabetes status (explicit or inferred from labs)
	DiabetesStatus DiabetesStatus `json:"diabetes_type" example:"prediabetic"`
}

// HealthMetricsResponse mirrors the health-metrics endpoint of the original
// service: ideal weight band, basal metabolic rate, and daily calorie needs.
// @Description Derived health metrics for a patient profile.
type HealthMetricsResponse struct {
	BMI              float64 `json:"bmi" example:"27.8"`
	BMICategory      string  `json:"bmi_category" example:"Overweight"`
	IdealWeightMinKg float64 `json:"ideal_weight_min_kg" example:"56.7"`
	IdealWeightMaxKg float64 `json:"ideal_weight_max_kg" example:"76.3"`
	// Basal metabolic rate, kcal/day (Harris-Benedict)
	BMR float64 `json:"bmr" example:"1750.4"`
	// Estimated daily calorie needs adjusted for activity level
	DailyCalories float64 `json:"daily_calories" example:"2713.1"`
	// Cardiovascular risk bucket derived from age, BMI, smoking, family
	// history, and diabetes status
	CardiovascularRisk string `json:"cardiovascular_risk" example:"Moderate"`
	// Simplified metabolic age estimate, years
	MetabolicAge float64 `json:"metabolic_age" example:"48.5"`
}
