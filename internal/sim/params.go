// Package sim implements the glucose-hormone simulation engine: resolution of
// patient profiles into model parameters, the time-dependent meal/drug
// forcing, the 12-variable ODE right-hand side, a stiff-capable adaptive
// integrator, and post-processing of trajectories into clinical metrics.
package sim

import (
	"math"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
)

// State vector component indices. Ordering follows the model's equation
// numbering: GLP-1 first, then the cell densities, hormones, transporters,
// glucose compartments, fatty acids, and TNF-α.
const (
	IdxGLP1     = iota // L: glucagon-like peptide 1
	IdxAlpha           // A: α-cell density
	IdxBeta            // B: β-cell density
	IdxInsulin         // I: insulin
	IdxGLUT2           // U2: liver-export transporter activity
	IdxGLUT4           // U4: cell-import transporter activity
	IdxGlucagon        // C: glucagon
	IdxGlucose         // G: blood glucose
	IdxStored          // G*: stored (liver) glucose
	IdxOleic           // O: oleic acid
	IdxPalmitic        // P: palmitic acid
	IdxTNFAlpha        // Ta: TNF-α
	NumStateVars
)

// StateVector holds the 12 non-negative model concentrations in g/cm³.
type StateVector [NumStateVars]float64

// Display-unit conversion factors for the model's concentration scale.
const (
	GlucoseMgDlPerUnit  = 1e5    // g/cm³ → mg/dL
	InsulinPmolPerUnit  = 1.8e11 // g/cm³ → pmol/L
	GlucagonPgMlPerUnit = 1e12   // g/cm³ → pg/mL
	GLP1PmolPerUnit     = 1.8e11 // g/cm³ → pmol/L
)

// ResolvedParameters is the fully-resolved, immutable constant set driving
// one simulation run. Base values are the published estimates for the
// obesity-induced T2DM model; the patient-specific multipliers at the bottom
// are folded in by Resolve. All rates are per day, concentrations in g/cm³.
type ResolvedParameters struct {
	// Half-saturation constants (g/cm³)
	KL    float64 // GLP-1 activation of β-cells
	KHatL float64 // GLP-1 inhibition of α-cells
	KU2   float64 // GLUT-2 transport
	KU4   float64 // GLUT-4 transport
	KI    float64 // insulin deficit sensing by α-cells
	KHatO float64 // oleic acid inhibition of TNF-α production

	// Drug response constants (dimensionless dose-equivalent scale)
	KD    float64 // half-saturation of the incretin (GLP-1) boost
	KHatD float64 // scale of the glucose-absorption damping

	// Activation / secretion rates (d⁻¹ unless noted)
	LambdaA   float64 // α-cell activation
	LambdaB   float64 // β-cell activation
	GammaL    float64 // meal-driven GLP-1 influx (g/cm³ d⁻¹)
	LambdaIB  float64 // insulin production per β-cell density
	LambdaU4I float64 // GLUT-4 activation by insulin
	LambdaU2C float64 // GLUT-2 activation by glucagon
	LambdaCA  float64 // glucagon secretion per α-cell density
	GammaG    float64 // meal-driven glucose influx (g/cm³ d⁻¹)
	GammaGS   float64 // post-meal glucose-to-glycogen shunt rate
	GammaO    float64 // meal-driven oleic acid influx (g/cm³ d⁻¹)
	GammaP    float64 // meal-driven palmitic acid influx (g/cm³ d⁻¹)
	GammaPHat float64 // obesity-prone palmitic acid influx (g/cm³ d⁻¹)

	// Transport / production rates
	LambdaGU4  float64 // glucose uptake via GLUT-4
	LambdaGSU2 float64 // stored-glucose release via GLUT-2
	LambdaTa   float64 // baseline TNF-α production (g/cm³ d⁻¹)
	LambdaTaP  float64 // palmitic-driven TNF-α production

	// Decay / degradation rates (d⁻¹ unless noted)
	MuA  float64 // α-cells
	MuB  float64 // β-cells
	MuLB float64 // GLP-1 consumption by β-cell binding (cm³/g d⁻¹)
	MuLA float64 // GLP-1 consumption by α-cell binding (cm³/g d⁻¹)
	MuI  float64 // insulin baseline clearance
	MuIG float64 // glucose-dependent insulin clearance (cm³/g d⁻¹)
	MuU2 float64 // GLUT-2
	MuU4 float64 // GLUT-4
	MuC  float64 // glucagon
	MuTa float64 // TNF-α
	MuO  float64 // oleic acid
	MuP  float64 // palmitic acid

	// Switch and impairment parameters
	Gamma1 float64 // GLP-1 blocking of glucagon secretion above Xi4 (cm³/g)
	Gamma2 float64 // GLP-1 promotion of glucagon secretion below Xi3 (cm³/g)
	Xi1    float64 // glucose toxicity on β-cells (cm³/g)
	Xi2    float64 // palmitic toxicity on β-cells (cm³/g)
	Xi3    float64 // hypoglycemia switch threshold (g/cm³)
	Xi4    float64 // hyperglycemia switch threshold (g/cm³)
	EtaTa  float64 // TNF-α inhibition of GLUT-4 (cm³/g)
	IHypo  float64 // insulin level signalling hypoglycemia (g/cm³)
	L0     float64 // GLP-1 threshold for β-cell activation (g/cm³)

	// SwitchWidth sets the steepness of the logistic switches as a fraction
	// of each threshold. The source leaves the Heaviside steepness
	// unspecified; a smooth gate keeps the system well-posed for the
	// adaptive integrator.
	SwitchWidth float64

	// Patient-specific multipliers resolved from the profile
	ObesityFactor  float64 // BMI tier: 1, 2, or 4
	AgeFactor      float64 // linear β-cell decline, floor 0.5
	ActivityFactor float64 // scales glucose uptake via GLUT-4
}

// baseParameters returns the published constant table (Table 2 of the model
// paper) before any patient adjustment.
func baseParameters() ResolvedParameters {
	return ResolvedParameters{
		KL:    1.7e-14,
		KHatL: 1.7e-14,
		KU2:   9.45e-6,
		KU4:   2.78e-6,
		KI:    2e-13,
		KHatO: 1.36e-6,

		KD:    0.35,
		KHatD: 1.0,

		LambdaA:   0.35,
		LambdaB:   1.745e9,
		GammaL:    1.98e-13,
		LambdaIB:  1.26e-8,
		LambdaU4I: 4.17e7,
		LambdaU2C: 6.6e10,
		LambdaCA:  1.65e-11,
		GammaG:    0.017,
		GammaGS:   11.1,
		GammaO:    1.46e-4,
		GammaP:    1.83e-6,
		GammaPHat: 5.72e-5,

		LambdaGU4:  1.548,
		LambdaGSU2: 4.644,
		LambdaTa:   1.19e-9,
		LambdaTaP:  3.26e-4,

		MuA:  8.32,
		MuB:  8.32,
		MuLB: 251,
		MuLA: 251,
		MuI:  198.04,
		MuIG: 6e5,
		MuU2: 4.62,
		MuU4: 1.85,
		MuC:  166.22,
		MuTa: 199,
		MuO:  13.68,
		MuP:  12,

		Gamma1: 1e14,
		Gamma2: 1.2e14,
		Xi1:    1e12,
		Xi2:    1e12,
		Xi3:    1e-2,
		Xi4:    1e-4,
		EtaTa:  1e10,
		IHypo:  8e-14,
		L0:     1.7e-14,

		SwitchWidth: 0.1,

		ObesityFactor:  1.0,
		AgeFactor:      1.0,
		ActivityFactor: 1.0,
	}
}

// activityMultipliers scale glucose uptake via GLUT-4 by activity level.
var activityMultipliers = map[string]float64{
	"sedentary": 0.7,
	"light":     0.85,
	"moderate":  1.0,
	"active":    1.2,
}

// Resolve maps a patient profile into the concrete parameter set and the
// matching baseline state vector. It validates numeric ranges, resolves the
// diabetes status once (explicit or auto-detected), applies the BMI-tiered
// obesity factor, the age-driven β-cell decline, and the activity multiplier.
func Resolve(profile *domain.PatientProfile) (*ResolvedParameters, StateVector, domain.DiabetesStatus, error) {
	if err := profile.Validate(); err != nil {
		return nil, StateVector{}, "", err
	}

	p := baseParameters()

	bmi := profile.BMI()
	switch {
	case bmi >= 30:
		p.ObesityFactor = 4.0
		// obesity amplifies both the inflammatory effect and the
		// obesity-prone palmitic influx
		p.EtaTa *= 1.5
		p.GammaPHat *= 1.5
	case bmi >= 25:
		p.ObesityFactor = 2.0
	default:
		p.ObesityFactor = 1.0
	}

	p.AgeFactor = math.Max(0.5, 1.0-0.005*float64(profile.Age-20))
	if profile.Age < 20 {
		p.AgeFactor = 1.0
	}
	p.LambdaB *= p.AgeFactor

	if mult, ok := activityMultipliers[profile.ActivityLevel]; ok {
		p.ActivityFactor = mult
	}

	status := profile.ResolveDiabetesStatus()
	x0 := initialState(status, bmi)

	return &p, x0, status, nil
}

// initialState returns the canonical baseline state for the resolved diabetes
// status, with the obesity adjustment layered on top.
func initialState(status domain.DiabetesStatus, bmi float64) StateVector {
	x := StateVector{
		IdxGLP1:     4.5e-15,
		IdxAlpha:    5e-3,
		IdxBeta:     13e-3,
		IdxInsulin:  0.97e-13,
		IdxGLUT2:    9e-6,
		IdxGLUT4:    2.6e-6,
		IdxGlucagon: 4.964e-16,
		IdxGlucose:  0.95e-3,
		IdxStored:   0.9e-3,
		IdxOleic:    6.78e-7,
		IdxPalmitic: 1.22e-6,
		IdxTNFAlpha: 5.65e-12,
	}

	switch status {
	case domain.StatusPrediabetic:
		x[IdxGlucose] *= 1.15
		x[IdxInsulin] *= 1.2
	case domain.StatusDiabetic:
		x[IdxGlucose] *= 1.8
		x[IdxInsulin] *= 0.8
		x[IdxBeta] *= 0.7
	}

	if bmi >= 30 {
		x[IdxPalmitic] *= 2.0
		x[IdxOleic] *= 2.0
		x[IdxTNFAlpha] *= 1.3
	}

	return x
}
