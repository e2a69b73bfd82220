package optim_test

import (
	"math"
	"testing"

	"github.com/varq-ml/varq/internal/optim"
)

// Helper to check float equality with tolerance.
func floatEqual(a, b, eps float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < eps
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	params := []float64{2.0}
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})

	if err := optimizer.Step(params, []float64{1.0}); err != nil {
		t.Fatalf("Step: %v", err)
	}

	// Expected: x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	if !floatEqual(params[0], 1.9, 1e-12) {
		t.Errorf("SGD update: got %f, want 1.9", params[0])
	}
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	params := []float64{1.0}
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// First step:
	// v_1 = 0.9 * 0 + 1.0 = 1.0
	// x_1 = 1.0 - 0.1 * 1.0 = 0.9
	if err := optimizer.Step(params, []float64{1.0}); err != nil {
		t.Fatalf("Step 1: %v", err)
	}
	if !floatEqual(params[0], 0.9, 1e-12) {
		t.Errorf("SGD momentum step 1: got %f, want 0.9", params[0])
	}

	// Second step:
	// v_2 = 0.9 * 1.0 + 1.0 = 1.9
	// x_2 = 0.9 - 0.1 * 1.9 = 0.71
	if err := optimizer.Step(params, []float64{1.0}); err != nil {
		t.Fatalf("Step 2: %v", err)
	}
	if !floatEqual(params[0], 0.71, 1e-12) {
		t.Errorf("SGD momentum step 2: got %f, want 0.71", params[0])
	}
}

// TestSGD_DefaultLR tests that a zero-value config gets the default rate.
func TestSGD_DefaultLR(t *testing.T) {
	params := []float64{1.0}
	optimizer := optim.NewSGD(optim.SGDConfig{})

	if err := optimizer.Step(params, []float64{1.0}); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !floatEqual(params[0], 0.99, 1e-12) {
		t.Errorf("default LR update: got %f, want 0.99", params[0])
	}
}

// TestAdam_SimpleUpdate tests Adam optimizer update.
func TestAdam_SimpleUpdate(t *testing.T) {
	params := []float64{1.0}
	optimizer := optim.NewAdam(optim.AdamConfig{
		LR:    0.001,
		Betas: [2]float64{0.9, 0.999},
		Eps:   1e-8,
	})

	if err := optimizer.Step(params, []float64{1.0}); err != nil {
		t.Fatalf("Step: %v", err)
	}

	// After first step (with bias correction):
	// m_1 = 0.9 * 0 + 0.1 * 1.0 = 0.1
	// v_1 = 0.999 * 0 + 0.001 * 1.0 = 0.001
	// m_hat = 0.1 / (1 - 0.9^1) = 1.0
	// v_hat = 0.001 / (1 - 0.999^1) = 1.0
	// x_new = 1.0 - 0.001 * 1.0 / (sqrt(1.0) + 1e-8) ≈ 0.999
	if !floatEqual(params[0], 0.999, 1e-9) {
		t.Errorf("Adam first step: got %f, want 0.999", params[0])
	}
}

// TestAdam_BiasCorrection tests that Adam keeps making progress over the
// first few steps, where the moment estimates are still biased toward zero.
func TestAdam_BiasCorrection(t *testing.T) {
	params := []float64{1.0}
	optimizer := optim.NewAdam(optim.AdamConfig{LR: 0.01})

	prev := params[0]
	for i := 1; i <= 3; i++ {
		if err := optimizer.Step(params, []float64{1.0}); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
		if params[0] >= prev {
			t.Errorf("after step %d with positive gradient, parameter should decrease: got %f", i, params[0])
		}
		prev = params[0]
	}
}

// TestConvergence_SimpleQuadratic tests optimizer convergence on f(x) = x².
//
// This is an integration test that verifies both SGD and Adam can minimize
// a simple quadratic function. The minimum is at x = 0.
func TestConvergence_SimpleQuadratic(t *testing.T) {
	t.Run("SGD", func(t *testing.T) {
		params := []float64{3.0}
		optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.9})

		// f(x) = x², df/dx = 2x
		for i := 0; i < 100; i++ {
			if err := optimizer.Step(params, []float64{2.0 * params[0]}); err != nil {
				t.Fatalf("Step: %v", err)
			}
		}
		if math.Abs(params[0]) > 0.1 {
			t.Errorf("SGD convergence: x = %f, expected close to 0", params[0])
		}
	})

	t.Run("Adam", func(t *testing.T) {
		params := []float64{3.0}
		optimizer := optim.NewAdam(optim.AdamConfig{LR: 0.1})

		for i := 0; i < 100; i++ {
			if err := optimizer.Step(params, []float64{2.0 * params[0]}); err != nil {
				t.Fatalf("Step: %v", err)
			}
		}
		if math.Abs(params[0]) > 0.1 {
			t.Errorf("Adam convergence: x = %f, expected close to 0", params[0])
		}
	})
}

// TestMultipleParameters tests optimizers over longer vectors.
func TestMultipleParameters(t *testing.T) {
	params := []float64{1.0, 2.0, 3.0}
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})

	if err := optimizer.Step(params, []float64{1.0, 2.0, 0.5}); err != nil {
		t.Fatalf("Step: %v", err)
	}

	want := []float64{0.9, 1.8, 2.95}
	for i := range want {
		if !floatEqual(params[i], want[i], 1e-12) {
			t.Errorf("params[%d]: got %f, want %f", i, params[i], want[i])
		}
	}
}

// TestLengthMismatch tests the length checks on both optimizers.
func TestLengthMismatch(t *testing.T) {
	if err := optim.NewSGD(optim.SGDConfig{}).Step([]float64{1, 2}, []float64{1}); err != optim.ErrLength {
		t.Errorf("SGD mismatched lengths: got %v, want ErrLength", err)
	}
	if err := optim.NewAdam(optim.AdamConfig{}).Step([]float64{1}, []float64{1, 2}); err != optim.ErrLength {
		t.Errorf("Adam mismatched lengths: got %v, want ErrLength", err)
	}

	// Length must also stay constant once state exists.
	sgd := optim.NewSGD(optim.SGDConfig{Momentum: 0.9})
	if err := sgd.Step([]float64{1, 2}, []float64{1, 1}); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if err := sgd.Step([]float64{1}, []float64{1}); err != optim.ErrLength {
		t.Errorf("SGD changed length: got %v, want ErrLength", err)
	}
}
