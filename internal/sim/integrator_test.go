package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
)

func TestLUSolveKnownSystem(t *testing.T) {
	// identity with a 3x3 block substituted: solve A·x = b for a known x
	var a matrix
	for i := 0; i < NumStateVars; i++ {
		a[i][i] = 1
	}
	a[0][0], a[0][1], a[0][2] = 2, 1, 1
	a[1][0], a[1][1], a[1][2] = 1, 3, 2
	a[2][0], a[2][1], a[2][2] = 1, 0, 0

	want := StateVector{1, -2, 3}
	for i := 3; i < NumStateVars; i++ {
		want[i] = float64(i)
	}
	var b StateVector
	for i := 0; i < NumStateVars; i++ {
		for j := 0; j < NumStateVars; j++ {
			b[i] += a[i][j] * want[j]
		}
	}

	var piv [NumStateVars]int
	if !luFactor(&a, &piv) {
		t.Fatal("luFactor reported singular for a regular matrix")
	}
	luSolve(&a, &piv, &b)

	for i := range want {
		if math.Abs(b[i]-want[i]) > 1e-10 {
			t.Errorf("x[%d] = %v, want %v", i, b[i], want[i])
		}
	}
}

func TestLUFactorSingular(t *testing.T) {
	var a matrix // all zeros
	var piv [NumStateVars]int
	if luFactor(&a, &piv) {
		t.Error("luFactor accepted a singular matrix")
	}
}

func TestSolveGridShape(t *testing.T) {
	p := baseParameters()
	cfg := testScenario()
	cfg.SimulationHours = 6
	m := NewModel(&p, NewForcing(&p, cfg))
	x0 := initialState(domain.StatusNormal, 22)

	traj, err := NewIntegrator().Solve(context.Background(), m, x0, cfg.SimulationHours)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	wantLen := cfg.SimulationHours*SamplesPerHour + 1
	if len(traj.TimeHours) != wantLen || len(traj.States) != wantLen {
		t.Fatalf("samples = %d/%d, want %d", len(traj.TimeHours), len(traj.States), wantLen)
	}
	if traj.TimeHours[0] != 0 {
		t.Errorf("first sample time = %v, want 0", traj.TimeHours[0])
	}
	if got := traj.TimeHours[wantLen-1]; math.Abs(got-6) > 1e-9 {
		t.Errorf("last sample time = %v, want 6", got)
	}
	// fixed 10-minute spacing
	if dt := traj.TimeHours[1] - traj.TimeHours[0]; math.Abs(dt-1.0/SamplesPerHour) > 1e-12 {
		t.Errorf("grid spacing = %v, want %v", dt, 1.0/SamplesPerHour)
	}
}

func TestSolveStatesStayFiniteAndNonNegative(t *testing.T) {
	p := baseParameters()
	cfg := testScenario()
	cfg.SimulationHours = 24
	m := NewModel(&p, NewForcing(&p, cfg))
	x0 := initialState(domain.StatusDiabetic, 32)

	traj, err := NewIntegrator().Solve(context.Background(), m, x0, cfg.SimulationHours)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	for g, s := range traj.States {
		for i, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("sample %d component %d is non-finite", g, i)
			}
			if v < 0 {
				t.Fatalf("sample %d component %d = %v, want non-negative", g, i, v)
			}
		}
	}

	// glucose must stay within a physiologically plausible envelope
	for g, s := range traj.States {
		mgdl := s[IdxGlucose] * GlucoseMgDlPerUnit
		if mgdl < 10 || mgdl > 1000 {
			t.Fatalf("sample %d glucose = %v mg/dL, outside plausible envelope", g, mgdl)
		}
	}
}

func TestSolveHonorsContextCancellation(t *testing.T) {
	p := baseParameters()
	cfg := testScenario()
	m := NewModel(&p, NewForcing(&p, cfg))
	x0 := initialState(domain.StatusNormal, 22)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewIntegrator().Solve(ctx, m, x0, 24)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Solve() error = %v, want context.Canceled", err)
	}
}

func TestSolveStepBudget(t *testing.T) {
	p := baseParameters()
	cfg := testScenario()
	m := NewModel(&p, NewForcing(&p, cfg))
	x0 := initialState(domain.StatusNormal, 22)

	integ := NewIntegrator()
	integ.MaxSteps = 3

	_, err := integ.Solve(context.Background(), m, x0, 24)
	if !errors.Is(err, domain.ErrIntegrationFailure) {
		t.Fatalf("Solve() error = %v, want ErrIntegrationFailure", err)
	}
	var ierr *domain.IntegrationError
	if !errors.As(err, &ierr) {
		t.Fatalf("error = %T, want *domain.IntegrationError", err)
	}
}
