package sim

import (
	"math"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
)

// Meal pulse shape constants, in hours. Each meal delivers its influx through
// a smooth ramp-and-decay pulse peaking riseHours after the meal starts and
// normalized to carry the same total dose as a one-hour square window.
const (
	riseHours = 0.25
	// glycogen shunt window relative to meal start
	shuntStartHours = 1.0
	shuntEndHours   = 3.0
	shuntEdgeHours  = 0.2
	// beyond this the pulse is numerically zero
	pulseTailHours = 8.0
)

// Forcing evaluates the time-dependent influx terms of the model: meal-driven
// GLP-1, glucose, and fatty-acid intake, the post-meal glycogen shunt, and
// the GLP-1 agonist drug effects. Schedules repeat every 24 h. All methods
// take time in days (the model's rate unit) and are safe for concurrent use.
type Forcing struct {
	p        *ResolvedParameters
	meals    []domain.Meal
	food     float64
	palmitic float64
	dose     float64
}

// NewForcing binds a resolved parameter set to a validated scenario.
func NewForcing(p *ResolvedParameters, cfg domain.ScenarioConfig) *Forcing {
	return &Forcing{
		p:        p,
		meals:    cfg.Meals,
		food:     cfg.FoodFactor,
		palmitic: cfg.PalmiticFactor,
		dose:     cfg.DrugDosage,
	}
}

// mealPulse is the unit-dose pulse shape at u hours after a meal starts:
// (u/r)·e^(1-u/r) scaled so its integral over hours equals one, matching the
// dose of a one-hour square window.
func mealPulse(u float64) float64 {
	if u <= 0 || u > pulseTailHours {
		return 0
	}
	v := u / riseHours
	return v * math.Exp(1-v) / (riseHours * math.E)
}

// mealActivity sums magnitude-weighted pulses over the repeating schedule at
// tDays.
func (f *Forcing) mealActivity(tDays float64) float64 {
	hour := math.Mod(tDays*24, 24)
	var sum float64
	for _, m := range f.meals {
		u := hour - m.OffsetHours
		if u < 0 {
			u += 24 // tail of yesterday's meal
		}
		sum += m.Magnitude * mealPulse(u)
	}
	return sum
}

// shuntActivity is the magnitude-weighted post-meal glycogen storage window,
// a smooth plateau between one and three hours after each meal.
func (f *Forcing) shuntActivity(tDays float64) float64 {
	hour := math.Mod(tDays*24, 24)
	var sum float64
	for _, m := range f.meals {
		u := hour - m.OffsetHours
		if u < 0 {
			u += 24
		}
		sum += m.Magnitude * logistic((u-shuntStartHours)/shuntEdgeHours) *
			logistic((shuntEndHours-u)/shuntEdgeHours)
	}
	return sum
}

// GLP1Influx is λ_L(t): meal-driven incretin secretion, amplified by the
// GLP-1 agonist dose through a saturating Michaelis-Menten boost.
func (f *Forcing) GLP1Influx(tDays float64) float64 {
	drugBoost := 1 + f.dose/(f.p.KD+f.dose)
	return f.p.GammaL * f.food * f.mealActivity(tDays) * drugBoost
}

// GlucoseInflux is λ_G(t): meal-driven glucose intake, damped by the drug's
// slowing of gastric absorption.
func (f *Forcing) GlucoseInflux(tDays float64) float64 {
	drugDamp := 1 / (1 + f.dose/f.p.KHatD)
	return f.p.GammaG * f.food * f.mealActivity(tDays) * drugDamp
}

// GlucoseShuntRate is λ_G*(t): the first-order rate at which circulating
// glucose is moved into storage during the post-meal window. Multiplies G in
// the glucose and stored-glucose equations.
func (f *Forcing) GlucoseShuntRate(tDays float64) float64 {
	return f.p.GammaGS * f.shuntActivity(tDays)
}

// OleicInflux is λ_O(t): meal-driven oleic acid intake.
func (f *Forcing) OleicInflux(tDays float64) float64 {
	return f.p.GammaO * f.food * f.mealActivity(tDays)
}

// PalmiticInflux is λ_P(t): meal-driven palmitic acid intake. The
// obesity-prone component scales with both the scenario's palmitic factor and
// the patient's BMI tier.
func (f *Forcing) PalmiticInflux(tDays float64) float64 {
	rate := f.p.GammaP + f.palmitic*f.p.GammaPHat*f.p.ObesityFactor
	return rate * f.food * f.mealActivity(tDays)
}

// logistic is the standard sigmoid with overflow guards.
func logistic(x float64) float64 {
	switch {
	case x > 40:
		return 1
	case x < -40:
		return 0
	}
	return 1 / (1 + math.Exp(-x))
}
