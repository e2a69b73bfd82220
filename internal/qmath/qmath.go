// Package qmath provides dense complex matrix helpers shared by the circuit
// and backend packages.
//
// Matrices are stored row-major as []complex128 with side length 2^k for a
// k-qubit operator. Qubit 0 is the least significant bit of a basis index.
package qmath

import "math/cmplx"

// Identity returns the dense identity matrix of the given dimension.
func Identity(dim int) []complex128 {
	m := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		m[i*dim+i] = 1
	}
	return m
}

// MatMul returns the product a·b of two dim×dim matrices.
func MatMul(a, b []complex128, dim int) []complex128 {
	out := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		for k := 0; k < dim; k++ {
			aik := a[i*dim+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < dim; j++ {
				out[i*dim+j] += aik * b[k*dim+j]
			}
		}
	}
	return out
}

// MatVec returns the product m·v for a dim×dim matrix and a dim vector.
func MatVec(m, v []complex128, dim int) []complex128 {
	out := make([]complex128, dim)
	for i := 0; i < dim; i++ {
		var acc complex128
		row := m[i*dim : (i+1)*dim]
		for j, x := range v {
			acc += row[j] * x
		}
		out[i] = acc
	}
	return out
}

// Dagger returns the conjugate transpose of a dim×dim matrix.
func Dagger(m []complex128, dim int) []complex128 {
	out := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out[j*dim+i] = cmplx.Conj(m[i*dim+j])
		}
	}
	return out
}

// Kron returns the Kronecker product a⊗b, where a is da×da and b is db×db.
func Kron(a []complex128, da int, b []complex128, db int) []complex128 {
	dim := da * db
	out := make([]complex128, dim*dim)
	for i := 0; i < da; i++ {
		for j := 0; j < da; j++ {
			aij := a[i*da+j]
			if aij == 0 {
				continue
			}
			for k := 0; k < db; k++ {
				for l := 0; l < db; l++ {
					out[(i*db+k)*dim+(j*db+l)] = aij * b[k*db+l]
				}
			}
		}
	}
	return out
}

// subIndex extracts, as a k-bit integer, the bits of idx selected by wires.
// Bit j of the result is bit wires[j] of idx.
func subIndex(idx int, wires []int) int {
	sub := 0
	for j, w := range wires {
		sub |= ((idx >> w) & 1) << j
	}
	return sub
}

// Expand embeds a k-qubit matrix acting on the given wires into the full
// 2^n-dimensional space, identity on all other qubits.
func Expand(mat []complex128, wires []int, n int) []complex128 {
	dim := 1 << n
	rest := ^0
	for _, w := range wires {
		rest &^= 1 << w
	}
	restMask := rest & (dim - 1)

	subDim := 1 << len(wires)
	out := make([]complex128, dim*dim)
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			if r&restMask != c&restMask {
				continue
			}
			out[r*dim+c] = mat[subIndex(r, wires)*subDim+subIndex(c, wires)]
		}
	}
	return out
}

// ExpandControlled embeds a k-qubit matrix on the given wires, applied only
// on basis states where every control qubit is 1; identity elsewhere.
func ExpandControlled(mat []complex128, wires, ctrls []int, n int) []complex128 {
	dim := 1 << n
	ctrlMask := 0
	for _, c := range ctrls {
		ctrlMask |= 1 << c
	}
	rest := (dim - 1) &^ ctrlMask
	for _, w := range wires {
		rest &^= 1 << w
	}

	subDim := 1 << len(wires)
	out := make([]complex128, dim*dim)
	for r := 0; r < dim; r++ {
		if r&ctrlMask != ctrlMask {
			out[r*dim+r] = 1
			continue
		}
		for c := 0; c < dim; c++ {
			if c&ctrlMask != ctrlMask || r&rest != c&rest {
				continue
			}
			out[r*dim+c] = mat[subIndex(r, wires)*subDim+subIndex(c, wires)]
		}
	}
	return out
}
