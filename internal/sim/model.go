package sim

// Model is the 12-variable glucose-hormone ODE system. Time is measured in
// days; every rate constant in ResolvedParameters is per day.
type Model struct {
	P *ResolvedParameters
	F *Forcing
}

// NewModel binds a resolved parameter set and its forcing.
func NewModel(p *ResolvedParameters, f *Forcing) *Model {
	return &Model{P: p, F: f}
}

// plus is the positive part (x)₊.
func plus(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivatives evaluates dx/dt at tDays into dx. The Heaviside gates of the
// glucagon equation are smoothed into logistic switches with width
// SwitchWidth·threshold so the Jacobian stays continuous.
func (m *Model) Derivatives(tDays float64, x *StateVector, dx *StateVector) {
	p := m.P

	L := x[IdxGLP1]
	A := x[IdxAlpha]
	B := x[IdxBeta]
	I := x[IdxInsulin]
	U2 := x[IdxGLUT2]
	U4 := x[IdxGLUT4]
	C := x[IdxGlucagon]
	G := x[IdxGlucose]
	Gs := x[IdxStored]
	O := x[IdxOleic]
	P := x[IdxPalmitic]
	Ta := x[IdxTNFAlpha]

	lambdaL := m.F.GLP1Influx(tDays)
	lambdaG := m.F.GlucoseInflux(tDays)
	shunt := m.F.GlucoseShuntRate(tDays)
	lambdaO := m.F.OleicInflux(tDays)
	lambdaP := m.F.PalmiticInflux(tDays)

	// GLP-1: meal influx minus receptor-mediated consumption by both islet
	// cell types.
	dx[IdxGLP1] = lambdaL - p.MuLB*B*L - p.MuLA*A*L

	// α-cells: activated by insulin deficit, inhibited by GLP-1.
	insulinDeficit := plus(p.IHypo - I)
	deficitFrac := insulinDeficit / (p.KI + insulinDeficit)
	glp1Inhibition := 1 / (1 + L/p.KHatL)
	dx[IdxAlpha] = p.LambdaA*deficitFrac*glp1Inhibition - p.MuA*A

	// β-cells: activated by GLP-1 above threshold, with glucotoxic and
	// lipotoxic loss. This is the stiffest equation in the system.
	excessGLP1 := plus(L - p.L0)
	glp1Frac := excessGLP1 / (p.KL + excessGLP1)
	dx[IdxBeta] = p.LambdaB*glp1Frac - p.MuB*B*(1+p.Xi1*G+p.Xi2*P)

	// Insulin: β-cell secretion against baseline and glucose-dependent
	// clearance.
	dx[IdxInsulin] = p.LambdaIB*B - p.MuI*I - p.MuIG*G*I

	// GLUT-2: driven by glucagon.
	dx[IdxGLUT2] = p.LambdaU2C*C - p.MuU2*U2

	// GLUT-4: driven by insulin, suppressed by TNF-α.
	tnfInhibition := 1 / (1 + p.EtaTa*Ta)
	dx[IdxGLUT4] = p.LambdaU4I*I*tnfInhibition - p.MuU4*U4

	// Glucagon: α-cell secretion, promoted by GLP-1 under hypoglycemia and
	// blocked by GLP-1 under hyperglycemia.
	hyper := logistic((G - p.Xi4) / (p.SwitchWidth * p.Xi4))
	hypo := logistic((p.Xi3 - G) / (p.SwitchWidth * p.Xi3))
	promote := 1 + p.Gamma2*hypo*L
	block := 1 + p.Gamma1*hyper*L
	dx[IdxGlucagon] = p.LambdaCA*A*promote/block - p.MuC*C

	// Glucose compartments. Uptake through GLUT-4 and the post-meal shunt
	// both feed storage; release through GLUT-2 returns half to circulation,
	// the other half covering basal consumption.
	u2Frac := U2 / (p.KU2 + U2)
	u4Frac := U4 / (p.KU4 + U4)
	uptake := p.ActivityFactor * p.LambdaGU4 * G * u4Frac
	release := p.LambdaGSU2 * Gs * u2Frac
	dx[IdxGlucose] = lambdaG - shunt*G - uptake + release/2
	dx[IdxStored] = shunt*G + uptake - release

	// Fatty acids: meal influx and first-order clearance.
	dx[IdxOleic] = lambdaO - p.MuO*O
	dx[IdxPalmitic] = lambdaP - p.MuP*P

	// TNF-α: baseline plus palmitic-driven production, tempered by oleic
	// acid.
	oleicInhibition := 1 / (1 + O/p.KHatO)
	dx[IdxTNFAlpha] = p.LambdaTa + p.LambdaTaP*P*oleicInhibition - p.MuTa*Ta
}
