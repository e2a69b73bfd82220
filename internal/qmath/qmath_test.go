package qmath

import (
	"math"
	"testing"
)

func cEqual(a, b complex128, eps float64) bool {
	return math.Abs(real(a)-real(b)) < eps && math.Abs(imag(a)-imag(b)) < eps
}

func TestKron(t *testing.T) {
	// Z ⊗ X
	z := []complex128{1, 0, 0, -1}
	x := []complex128{0, 1, 1, 0}
	got := Kron(z, 2, x, 2)

	want := []complex128{
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, -1,
		0, 0, -1, 0,
	}
	for i := range want {
		if !cEqual(got[i], want[i], 1e-12) {
			t.Fatalf("Kron entry %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpandSingleWire(t *testing.T) {
	// X on wire 0 of 2 qubits must equal I ⊗ X (wire 0 is the low bit).
	x := []complex128{0, 1, 1, 0}
	id := Identity(2)

	got := Expand(x, []int{0}, 2)
	want := Kron(id, 2, x, 2)
	for i := range want {
		if !cEqual(got[i], want[i], 1e-12) {
			t.Fatalf("Expand entry %d: got %v, want %v", i, got[i], want[i])
		}
	}

	// And on wire 1 it must equal X ⊗ I.
	got = Expand(x, []int{1}, 2)
	want = Kron(x, 2, id, 2)
	for i := range want {
		if !cEqual(got[i], want[i], 1e-12) {
			t.Fatalf("Expand wire-1 entry %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpandControlledCNOT(t *testing.T) {
	x := []complex128{0, 1, 1, 0}
	got := ExpandControlled(x, []int{1}, []int{0}, 2)

	// Control on wire 0, X on wire 1: basis order |q1 q0⟩ = 00,01,10,11.
	want := []complex128{
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
		0, 1, 0, 0,
	}
	for i := range want {
		if !cEqual(got[i], want[i], 1e-12) {
			t.Fatalf("CNOT entry %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDaggerMatVec(t *testing.T) {
	m := []complex128{1, 2i, 0, 3}
	d := Dagger(m, 2)
	want := []complex128{1, 0, -2i, 3}
	for i := range want {
		if !cEqual(d[i], want[i], 1e-12) {
			t.Fatalf("Dagger entry %d: got %v, want %v", i, d[i], want[i])
		}
	}

	v := MatVec(m, []complex128{1, 1}, 2)
	if !cEqual(v[0], 1+2i, 1e-12) || !cEqual(v[1], 3, 1e-12) {
		t.Fatalf("MatVec: got %v", v)
	}
}

func TestMatMulIdentity(t *testing.T) {
	m := []complex128{1, 2, 3i, 4}
	got := MatMul(m, Identity(2), 2)
	for i := range m {
		if !cEqual(got[i], m[i], 1e-12) {
			t.Fatalf("MatMul·I entry %d: got %v, want %v", i, got[i], m[i])
		}
	}
}
