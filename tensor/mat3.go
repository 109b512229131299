// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Mat3 holds a 3×3 matrix; e.g. a rotation or a second-order tensor
type Mat3 [3][3]float64

// Eye3 returns the 3×3 identity matrix
func Eye3() Mat3 {
	return Diag3(1, 1, 1)
}

// Diag3 returns a diagonal matrix
func Diag3(a, b, c float64) Mat3 {
	return Mat3{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

// Iso3 returns the isotropic tensor v⋅I
func Iso3(v float64) Mat3 {
	return Diag3(v, v, v)
}

// Mul returns a⋅b
func (a Mat3) Mul(b Mat3) (c Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return
}

// T returns the transpose of a
func (a Mat3) T() (b Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = a[j][i]
		}
	}
	return
}

// Add returns a + b
func (a Mat3) Add(b Mat3) (c Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][j] + b[i][j]
		}
	}
	return
}

// Scale returns s⋅a
func (a Mat3) Scale(s float64) (b Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = s * a[i][j]
		}
	}
	return
}

// Congruence returns a⋅p⋅aᵀ; i.e. p transformed by a
func (a Mat3) Congruence(p Mat3) Mat3 {
	return a.Mul(p).Mul(a.T())
}

// Det returns the determinant of a
func (a Mat3) Det() float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Inv returns the inverse of a
func (a Mat3) Inv() (ai Mat3, err error) {
	res, err := invert(3, a.flat())
	if err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		copy(ai[i][:], res[i*3:i*3+3])
	}
	return
}

// Eigenvalues returns the eigenvalues of the symmetric part of a in ascending order
func (a Mat3) Eigenvalues() ([]float64, error) {
	return eigsym(3, a.flat())
}

// IsSymmetric checks whether |a[i][j] - a[j][i]| ≤ tol⋅max(1,|a[i][j]|) for all i,j
func (a Mat3) IsSymmetric(tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if math.Abs(a[i][j]-a[j][i]) > tol*math.Max(1, math.Abs(a[i][j])) {
				return false
			}
		}
	}
	return true
}

// Symmetrise returns (a + aᵀ)/2
func (a Mat3) Symmetrise() Mat3 {
	return a.Add(a.T()).Scale(0.5)
}

// Deep2 returns a copy of a as a nested slice
func (a Mat3) Deep2() [][]float64 {
	res := make([][]float64, 3)
	for i := 0; i < 3; i++ {
		res[i] = append([]float64{}, a[i][:]...)
	}
	return res
}

// String returns a formatted representation of a
func (a Mat3) String() (l string) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			l += io.Sf("%13g", a[i][j])
		}
		l += "\n"
	}
	return
}

func (a Mat3) flat() []float64 {
	res := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		res = append(res, a[i][:]...)
	}
	return res
}

// CMat3 holds a complex 3×3 matrix; e.g. the complex permittivity tensor
type CMat3 [3][3]complex128

// CIso3 returns the isotropic complex tensor v⋅I
func CIso3(v complex128) (c CMat3) {
	for i := 0; i < 3; i++ {
		c[i][i] = v
	}
	return
}

// Real returns the real part of c
func (c CMat3) Real() (a Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = real(c[i][j])
		}
	}
	return
}

// Imag returns the imaginary part of c
func (c CMat3) Imag() (a Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = imag(c[i][j])
		}
	}
	return
}
