// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "math"

// RotZ returns the rotation about the z axis by angle a (radians)
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// RotX returns the rotation about the x axis by angle a (radians)
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotZXZ returns the rotation matrix corresponding to Bunge Euler angles
//   R = Rz(φ1) ⋅ Rx(Φ) ⋅ Rz(φ2)
func RotZXZ(φ1, Φ, φ2 float64) Mat3 {
	return RotZ(φ1).Mul(RotX(Φ)).Mul(RotZ(φ2))
}

// Bond returns the 6×6 Bond matrix M transforming stresses (and stiffnesses) in Voigt notation
//   σ' = M ⋅ σ   and   C' = M ⋅ C ⋅ Mᵀ
func Bond(R Mat3) (M Mat6) {
	for i := 0; i < 3; i++ {
		M[i] = bondRow(R, i, i, 2, 1)
	}
	M[3] = bondRow(R, 1, 2, 1, 1)
	M[4] = bondRow(R, 2, 0, 1, 1)
	M[5] = bondRow(R, 0, 1, 1, 1)
	return
}

// BondStrain returns the 6×6 Bond matrix N transforming engineering strains (and compliances)
//   ε' = N ⋅ ε   and   S' = N ⋅ S ⋅ Nᵀ
//  Note: N = M⁻ᵀ where M = Bond(R)
func BondStrain(R Mat3) (N Mat6) {
	for i := 0; i < 3; i++ {
		N[i] = bondRow(R, i, i, 1, 1)
	}
	N[3] = bondRow(R, 1, 2, 1, 2)
	N[4] = bondRow(R, 2, 0, 1, 2)
	N[5] = bondRow(R, 0, 1, 1, 2)
	return
}

// bondRow computes one row of a Bond matrix for the index pair (p,q).
// fs multiplies the shear columns; fn multiplies the normal columns.
func bondRow(R Mat3, p, q int, fs, fn float64) (row [6]float64) {
	if p == q {
		for j := 0; j < 3; j++ {
			row[j] = R[p][j] * R[p][j]
		}
		row[3] = fs * R[p][1] * R[p][2]
		row[4] = fs * R[p][2] * R[p][0]
		row[5] = fs * R[p][0] * R[p][1]
		return
	}
	for j := 0; j < 3; j++ {
		row[j] = fn * R[p][j] * R[q][j]
	}
	row[3] = R[p][1]*R[q][2] + R[p][2]*R[q][1]
	row[4] = R[p][2]*R[q][0] + R[p][0]*R[q][2]
	row[5] = R[p][0]*R[q][1] + R[p][1]*R[q][0]
	return
}
