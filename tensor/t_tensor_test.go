// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func isoC(λ, μ float64) (C Mat6) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = λ
		}
		C[i][i] = λ + 2*μ
		C[i+3][i+3] = μ
	}
	return
}

func Test_rot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rot01. z-x-z rotations")

	chk.Deep2(tst, "R(0,0,0)", 1e-17, RotZXZ(0, 0, 0).Deep2(), Eye3().Deep2())

	R := RotZ(math.Pi / 2)
	chk.Deep2(tst, "Rz(π/2)", 1e-15, R.Deep2(), [][]float64{
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 1},
	})

	// Rz(a)⋅Rx(0)⋅Rz(b) = Rz(a+b)
	chk.Deep2(tst, "Rz⋅Rz", 1e-15, RotZXZ(0.3, 0, 0.4).Deep2(), RotZ(0.7).Deep2())

	for _, a := range utl.LinSpace(-math.Pi, math.Pi, 7) {
		R = RotZXZ(a, 0.5*a+0.1, 0.3-a)
		io.Pforan("R =\n%v", R)
		chk.Deep2(tst, "R⋅Rᵀ", 1e-15, R.Mul(R.T()).Deep2(), Eye3().Deep2())
		chk.Float64(tst, "det(R)", 1e-15, R.Det(), 1)
	}
}

func Test_bond01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bond01. Bond matrices")

	chk.Deep2(tst, "M(I)", 1e-17, Bond(Eye3()).Deep2(), Eye6().Deep2())
	chk.Deep2(tst, "N(I)", 1e-17, BondStrain(Eye3()).Deep2(), Eye6().Deep2())

	C := isoC(2, 1)
	for _, a := range utl.LinSpace(0, 2*math.Pi, 5) {
		R := RotZXZ(a, 0.7, 1.1*a)
		M := Bond(R)
		N := BondStrain(R)

		// N = M⁻ᵀ
		chk.Deep2(tst, "M⋅Nᵀ", 1e-14, M.Mul(N.T()).Deep2(), Eye6().Deep2())

		// isotropic tensors are invariant
		chk.Deep2(tst, "M⋅C⋅Mᵀ", 1e-14, M.Congruence(C).Deep2(), C.Deep2())

		// M(R)⁻¹ = M(Rᵀ)
		Mi, err := M.Inv()
		if err != nil {
			tst.Errorf("Inv failed: %v\n", err)
			return
		}
		chk.Deep2(tst, "M⁻¹", 1e-13, Mi.Deep2(), Bond(R.T()).Deep2())
	}
}

func Test_bond02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bond02. rotation of a stress tensor")

	// σ' = R⋅σ⋅Rᵀ must agree with M⋅σ (Voigt)
	σ := Mat3{
		{1, 4, 5},
		{4, 2, 6},
		{5, 6, 3},
	}
	R := RotZXZ(0.2, 0.9, -0.4)
	σr := R.Congruence(σ)
	M := Bond(R)
	v := [6]float64{σ[0][0], σ[1][1], σ[2][2], σ[1][2], σ[0][2], σ[0][1]}
	var vr [6]float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			vr[i] += M[i][j] * v[j]
		}
	}
	chk.Array(tst, "M⋅σ", 1e-14, vr[:], []float64{σr[0][0], σr[1][1], σr[2][2], σr[1][2], σr[0][2], σr[0][1]})
}

func Test_linalg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linalg01. inverse and eigenvalues")

	C := isoC(2, 1)
	S, err := C.Inv()
	if err != nil {
		tst.Errorf("Inv failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "C⋅S", 1e-15, C.Mul(S).Deep2(), Eye6().Deep2())

	λ, err := C.Eigenvalues()
	if err != nil {
		tst.Errorf("Eigenvalues failed: %v\n", err)
		return
	}
	// isotropic: 3K = 3λ+2μ = 8 (once) and 2μ = 2 (twice) for normal block; μ = 1 (shear)
	chk.Array(tst, "λ(C)", 1e-14, λ, []float64{1, 1, 1, 2, 2, 8})

	var Z Mat6
	_, err = Z.Inv()
	if err != ErrSingular {
		tst.Errorf("zero matrix must be singular. err = %v\n", err)
		return
	}

	P := Diag3(3, 1, 2)
	Pi, err := P.Inv()
	if err != nil {
		tst.Errorf("Inv failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "P⁻¹", 1e-15, Pi.Deep2(), Diag3(1.0/3.0, 1, 0.5).Deep2())
	ev, err := P.Eigenvalues()
	if err != nil {
		tst.Errorf("Eigenvalues failed: %v\n", err)
		return
	}
	chk.Array(tst, "λ(P)", 1e-15, ev, []float64{1, 2, 3})
	chk.Int(tst, "symmetric", btoi(P.IsSymmetric(1e-15)), 1)
	P[0][1] = 1
	chk.Int(tst, "asymmetric", btoi(P.IsSymmetric(1e-15)), 0)
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
