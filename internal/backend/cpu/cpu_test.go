package cpu

import (
	"math"
	"math/rand"
	"testing"

	"github.com/varq-ml/varq/internal/qmath"
)

// randomState returns a normalized pseudo-random amplitude vector.
func randomState(rng *rand.Rand, n int) []complex128 {
	amps := make([]complex128, 1<<n)
	norm := 0.0
	for i := range amps {
		amps[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		norm += real(amps[i])*real(amps[i]) + imag(amps[i])*imag(amps[i])
	}
	scale := complex(1/math.Sqrt(norm), 0)
	for i := range amps {
		amps[i] *= scale
	}
	return amps
}

// TestApplyGate_AgainstDense checks the gather/scatter kernel against a
// dense expanded matrix-vector product.
func TestApplyGate_AgainstDense(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	backend := New()

	h := []complex128{
		complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0),
		complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0),
	}

	cases := []struct {
		name  string
		n     int
		mat   []complex128
		wires []int
		ctrls []int
	}{
		{"H on wire 1 of 3", 3, h, []int{1}, nil},
		{"X on wire 2 of 3", 3, []complex128{0, 1, 1, 0}, []int{2}, nil},
		{"controlled H", 3, h, []int{0}, []int{2}},
		{"two-wire swap-like", 3, []complex128{
			1, 0, 0, 0,
			0, 0, 1, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
		}, []int{0, 2}, nil},
		{"doubly controlled X", 4, []complex128{0, 1, 1, 0}, []int{1}, []int{0, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amps := randomState(rng, tc.n)
			want := qmath.MatVec(
				qmath.ExpandControlled(tc.mat, tc.wires, tc.ctrls, tc.n),
				amps, 1<<tc.n)

			got := make([]complex128, len(amps))
			copy(got, amps)
			if err := backend.ApplyGate(got, tc.mat, tc.wires, tc.ctrls); err != nil {
				t.Fatal(err)
			}
			for i := range want {
				if math.Abs(real(got[i])-real(want[i])) > 1e-12 ||
					math.Abs(imag(got[i])-imag(want[i])) > 1e-12 {
					t.Fatalf("amplitude %d: got %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestApplyGate_Validation(t *testing.T) {
	backend := New()
	x := []complex128{0, 1, 1, 0}

	if err := backend.ApplyGate(make([]complex128, 3), x, []int{0}, nil); err == nil {
		t.Fatal("non-power-of-two amplitude count should fail")
	}
	if err := backend.ApplyGate(make([]complex128, 4), x, []int{5}, nil); err == nil {
		t.Fatal("out-of-range wire should fail")
	}
	if err := backend.ApplyGate(make([]complex128, 4), x, []int{0}, []int{0}); err == nil {
		t.Fatal("overlapping wire and control should fail")
	}
	if err := backend.ApplyGate(make([]complex128, 4), x[:3], []int{0}, nil); err == nil {
		t.Fatal("wrong matrix size should fail")
	}
}
