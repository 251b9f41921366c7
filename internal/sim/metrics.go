package sim

import (
	"fmt"
	"math"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
)

// Glycemic range boundaries in mg/dL.
const (
	rangeLow      = 70.0
	rangeHigh     = 180.0
	tightHigh     = 140.0
	veryHigh      = 250.0
	minA1C        = 3.0
	maxA1C        = 15.0
	minDataPoints = 2
)

// EstimateA1C converts mean glucose (mg/dL) to an A1C estimate via the ADAG
// regression, clamped to the physiologically reportable band.
func EstimateA1C(meanGlucose float64) float64 {
	a1c := (meanGlucose + 46.7) / 28.7
	return math.Min(maxA1C, math.Max(minA1C, a1c))
}

// DiagnoseA1C buckets an A1C estimate into the ADA diagnostic categories.
func DiagnoseA1C(a1c float64) string {
	switch {
	case a1c < domain.A1CPrediabeticThreshold:
		return domain.DiagnosisNormal
	case a1c < domain.A1CDiabeticThreshold:
		return domain.DiagnosisPrediabetic
	default:
		return domain.DiagnosisDiabetic
	}
}

// insulinUUPerPmol converts insulin from pmol/L to μU/mL.
const insulinUUPerPmol = 0.144

// HOMAIR is the insulin resistance index from fasting glucose (mg/dL) and
// fasting insulin (pmol/L): (glucose × insulin in μU/mL) / 405.
func HOMAIR(fastingGlucose, fastingInsulin float64) float64 {
	return fastingGlucose * fastingInsulin * insulinUUPerPmol / 405
}

// HOMAB estimates beta-cell function: (20 × insulin in μU/mL) / (glucose − 63).
// Zero at or below the 63 mg/dL pole.
func HOMAB(fastingGlucose, fastingInsulin float64) float64 {
	if fastingGlucose <= 63 {
		return 0
	}
	return 20 * fastingInsulin * insulinUUPerPmol / (fastingGlucose - 63)
}

// GMI is the glucose management indicator on the A1C scale:
// 3.31 + 0.02392 × mean glucose, with the mean recovered from the A1C.
func GMI(a1c float64) float64 {
	meanGlucose := a1c*28.7 - 46.7
	return 3.31 + 0.02392*meanGlucose
}

// Summarize computes the scalar glucose statistics from a trajectory's
// glucose series (mg/dL). It requires at least two samples.
func Summarize(glucose []float64) (domain.SimulationSummary, error) {
	if len(glucose) < minDataPoints {
		return domain.SimulationSummary{}, fmt.Errorf("summarize: %w: need at least %d glucose samples",
			domain.ErrInsufficientData, minDataPoints)
	}

	var sum, minG, maxG float64
	minG, maxG = glucose[0], glucose[0]
	for _, g := range glucose {
		sum += g
		if g < minG {
			minG = g
		}
		if g > maxG {
			maxG = g
		}
	}
	mean := sum / float64(len(glucose))

	var sq float64
	for _, g := range glucose {
		d := g - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(len(glucose)))

	var inRange, above, below, tight, extreme int
	for _, g := range glucose {
		switch {
		case g < rangeLow:
			below++
		case g <= rangeHigh:
			inRange++
		default:
			above++
		}
		if g >= rangeLow && g <= tightHigh {
			tight++
		}
		if g > veryHigh {
			extreme++
		}
	}
	pct := func(n int) float64 { return float64(n) / float64(len(glucose)) * 100 }

	return domain.SimulationSummary{
		AverageGlucose:     mean,
		MaxGlucose:         maxG,
		MinGlucose:         minG,
		GlucoseVariability: std,
		TimeInRange:        pct(inRange),
		TimeAboveRange:     pct(above),
		TimeBelowRange:     pct(below),
		TimeInTightRange:   pct(tight),
		TimeAboveVeryHigh:  pct(extreme),
		EstimatedA1C:       EstimateA1C(mean),
	}, nil
}

// ComputeGlucoseMetrics derives the variability and pattern metrics from the
// glucose series and its sample times in hours.
func ComputeGlucoseMetrics(timeHours, glucose []float64, summary domain.SimulationSummary) domain.GlucoseMetrics {
	m := domain.GlucoseMetrics{}
	if len(glucose) < minDataPoints {
		return m
	}

	if summary.AverageGlucose > 0 {
		m.CoefficientOfVariation = summary.GlucoseVariability / summary.AverageGlucose * 100
	}
	m.StabilityScore = math.Max(0, math.Min(100, 100-m.CoefficientOfVariation))
	m.DawnPhenomenon = dawnPhenomenon(timeHours, glucose)

	var sumRate, maxRate float64
	count := 0
	for i := 1; i < len(glucose); i++ {
		dt := timeHours[i] - timeHours[i-1]
		if dt <= 0 {
			continue
		}
		r := math.Abs(glucose[i]-glucose[i-1]) / dt
		sumRate += r
		if r > maxRate {
			maxRate = r
		}
		count++
	}
	if count > 0 {
		m.MeanRateOfChange = sumRate / float64(count)
	}
	m.MaxRateOfChange = maxRate

	m.MAGE = meanAmplitude(glucose, summary.GlucoseVariability)
	return m
}

// dawnPhenomenon is the mean glucose in the 4-8h band minus the mean in the
// 0-4h band, folding multi-day runs onto the 24-hour clock.
func dawnPhenomenon(timeHours, glucose []float64) float64 {
	var dawnSum, nightSum float64
	var dawnN, nightN int
	for i, t := range timeHours {
		hod := math.Mod(t, 24)
		switch {
		case hod >= 4 && hod <= 8:
			dawnSum += glucose[i]
			dawnN++
		case hod >= 0 && hod < 4:
			nightSum += glucose[i]
			nightN++
		}
	}
	if dawnN == 0 || nightN == 0 {
		return 0
	}
	return dawnSum/float64(dawnN) - nightSum/float64(nightN)
}

// meanAmplitude is a MAGE-style statistic: the mean amplitude of the
// peak-to-trough excursions that exceed one standard deviation.
func meanAmplitude(glucose []float64, std float64) float64 {
	if std == 0 {
		return 0
	}

	// local extrema of the series, endpoints included
	extrema := []float64{glucose[0]}
	for i := 1; i < len(glucose)-1; i++ {
		prev, cur, next := glucose[i-1], glucose[i], glucose[i+1]
		if (cur > prev && cur >= next) || (cur < prev && cur <= next) {
			extrema = append(extrema, cur)
		}
	}
	extrema = append(extrema, glucose[len(glucose)-1])

	var total float64
	var n int
	for i := 1; i < len(extrema); i++ {
		amp := math.Abs(extrema[i] - extrema[i-1])
		if amp > std {
			total += amp
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// Recommendations produces the rule-based guidance list from the patient
// profile and run outcome.
func Recommendations(profile *domain.PatientProfile, summary domain.SimulationSummary) []string {
	recs := []string{}

	switch {
	case summary.EstimatedA1C >= 7.0:
		recs = append(recs, "Consider medication adjustment - consult your healthcare provider")
	case summary.EstimatedA1C >= domain.A1CDiabeticThreshold:
		recs = append(recs, "Implement lifestyle modifications to prevent progression")
	case summary.EstimatedA1C >= domain.A1CPrediabeticThreshold:
		recs = append(recs, "Monitor glucose levels regularly and maintain healthy habits")
	}

	if profile.BMI() > 30 {
		recs = append(recs, "Weight reduction of 5-10% can significantly improve glucose control")
	}
	if profile.ActivityLevel == "sedentary" || profile.ActivityLevel == "light" {
		recs = append(recs, "Increase physical activity to at least 150 minutes per week")
	}
	if summary.GlucoseVariability > 40 {
		recs = append(recs, "Consider more consistent meal timing and portions")
	}
	if summary.TimeInRange < 70 {
		recs = append(recs, "Work on improving time in target glucose range (70-180 mg/dL)")
	}

	return recs
}

// RiskFactors lists the patient's diabetes complication risk factors.
func RiskFactors(profile *domain.PatientProfile) []string {
	risks := []string{}

	if profile.Age > 45 {
		risks = append(risks, "Age over 45 years")
	}
	if bmi := profile.BMI(); bmi >= 25 {
		risks = append(risks, fmt.Sprintf("BMI %.1f (overweight/obese)", bmi))
	}
	if profile.FamilyHistory {
		risks = append(risks, "Family history of diabetes")
	}
	if profile.ActivityLevel == "sedentary" {
		risks = append(risks, "Sedentary lifestyle")
	}
	if profile.SmokingStatus == "smoker" {
		risks = append(risks, "Current smoker")
	}

	return risks
}

// ExtractSeries converts a trajectory into display-unit series: glucose in
// mg/dL, insulin and GLP-1 in pmol/L, glucagon in pg/mL.
func ExtractSeries(traj *Trajectory) (glucose, insulin, glucagon, glp1 []float64) {
	n := len(traj.States)
	glucose = make([]float64, n)
	insulin = make([]float64, n)
	glucagon = make([]float64, n)
	glp1 = make([]float64, n)
	for i, s := range traj.States {
		glucose[i] = s[IdxGlucose] * GlucoseMgDlPerUnit
		insulin[i] = s[IdxInsulin] * InsulinPmolPerUnit
		glucagon[i] = s[IdxGlucagon] * GlucagonPgMlPerUnit
		glp1[i] = s[IdxGLP1] * GLP1PmolPerUnit
	}
	return glucose, insulin, glucagon, glp1
}

// ExtractStateTrajectories builds the optional full-state payload. Cell
// densities and transporter activities are reported in model units; glucose
// compartments in mg/dL.
func ExtractStateTrajectories(traj *Trajectory) *domain.StateTrajectories {
	n := len(traj.States)
	st := &domain.StateTrajectories{
		BetaCells:     make([]float64, n),
		AlphaCells:    make([]float64, n),
		GLUT2:         make([]float64, n),
		GLUT4:         make([]float64, n),
		StoredGlucose: make([]float64, n),
		TotalEnergy:   make([]float64, n),
		OleicAcid:     make([]float64, n),
		PalmiticAcid:  make([]float64, n),
		TNFAlpha:      make([]float64, n),
	}
	for i, s := range traj.States {
		st.BetaCells[i] = s[IdxBeta]
		st.AlphaCells[i] = s[IdxAlpha]
		st.GLUT2[i] = s[IdxGLUT2]
		st.GLUT4[i] = s[IdxGLUT4]
		st.StoredGlucose[i] = s[IdxStored] * GlucoseMgDlPerUnit
		st.TotalEnergy[i] = (s[IdxGlucose] + s[IdxStored]) * GlucoseMgDlPerUnit
		st.OleicAcid[i] = s[IdxOleic]
		st.PalmiticAcid[i] = s[IdxPalmitic]
		st.TNFAlpha[i] = s[IdxTNFAlpha]
	}
	return st
}
