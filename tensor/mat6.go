// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Mat6 holds a 6×6 matrix; e.g. a stiffness tensor in Voigt notation or a Bond matrix
type Mat6 [6][6]float64

// Eye6 returns the 6×6 identity matrix
func Eye6() (a Mat6) {
	for i := 0; i < 6; i++ {
		a[i][i] = 1
	}
	return
}

// Mul returns a⋅b
func (a Mat6) Mul(b Mat6) (c Mat6) {
	for i := 0; i < 6; i++ {
		for k := 0; k < 6; k++ {
			if a[i][k] == 0 {
				continue
			}
			for j := 0; j < 6; j++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return
}

// T returns the transpose of a
func (a Mat6) T() (b Mat6) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			b[i][j] = a[j][i]
		}
	}
	return
}

// Add returns a + b
func (a Mat6) Add(b Mat6) (c Mat6) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			c[i][j] = a[i][j] + b[i][j]
		}
	}
	return
}

// Scale returns s⋅a
func (a Mat6) Scale(s float64) (b Mat6) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			b[i][j] = s * a[i][j]
		}
	}
	return
}

// Congruence returns a⋅c⋅aᵀ
func (a Mat6) Congruence(c Mat6) Mat6 {
	return a.Mul(c).Mul(a.T())
}

// Inv returns the inverse of a
func (a Mat6) Inv() (ai Mat6, err error) {
	res, err := invert(6, a.flat())
	if err != nil {
		return
	}
	for i := 0; i < 6; i++ {
		copy(ai[i][:], res[i*6:i*6+6])
	}
	return
}

// Eigenvalues returns the eigenvalues of the symmetric part of a in ascending order
func (a Mat6) Eigenvalues() ([]float64, error) {
	return eigsym(6, a.flat())
}

// IsSymmetric checks whether |a[i][j] - a[j][i]| ≤ tol⋅max(1,|a[i][j]|) for all i,j
func (a Mat6) IsSymmetric(tol float64) bool {
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			if math.Abs(a[i][j]-a[j][i]) > tol*math.Max(1, math.Abs(a[i][j])) {
				return false
			}
		}
	}
	return true
}

// Symmetrise returns (a + aᵀ)/2
func (a Mat6) Symmetrise() Mat6 {
	return a.Add(a.T()).Scale(0.5)
}

// Deep2 returns a copy of a as a nested slice
func (a Mat6) Deep2() [][]float64 {
	res := make([][]float64, 6)
	for i := 0; i < 6; i++ {
		res[i] = append([]float64{}, a[i][:]...)
	}
	return res
}

// String returns a formatted representation of a
func (a Mat6) String() (l string) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			l += io.Sf("%13g", a[i][j])
		}
		l += "\n"
	}
	return
}

func (a Mat6) flat() []float64 {
	res := make([]float64, 0, 36)
	for i := 0; i < 6; i++ {
		res = append(res, a[i][:]...)
	}
	return res
}
