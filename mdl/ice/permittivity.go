// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ice

import (
	"math"

	"github.com/UMainedynamics/seidart/tensor"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/interp"
)

// fujita holds the coefficients of ε'' = A/f + B⋅f^C at a few temperatures [K]
var fujita = struct {
	T, A, B, C []float64
}{
	T: []float64{190, 200, 220, 240, 248, 253, 258, 263, 265},
	A: []float64{0.005, 0.010, 0.031, 0.268, 0.635, 1.059, 1.728, 2.769, 3.326},
	B: []float64{1.537, 1.747, 2.469, 3.495, 4.006, 4.380, 4.696, 5.277, 5.646},
	C: []float64{1.175, 1.168, 1.129, 1.088, 1.073, 1.062, 1.056, 1.038, 1.024},
}

// scaling of the A and B tables
const (
	scaleA = 10.e-4
	scaleB = 10.e-5
)

// splines interpolating the fujita table
var splA, splB, splC spline

func init() {
	A := make([]float64, len(fujita.A))
	B := make([]float64, len(fujita.B))
	for i := range fujita.T {
		A[i] = fujita.A[i] * scaleA
		B[i] = fujita.B[i] * scaleB
	}
	for _, s := range []struct {
		spl *spline
		Y   []float64
	}{{&splA, A}, {&splB, B}, {&splC, fujita.C}} {
		if err := s.spl.Fit(fujita.T, s.Y); err != nil {
			chk.Panic("ice: cannot fit Fujita table: %v", err)
		}
	}
}

// FujitaImag computes the imaginary part of the relative permittivity of ice
//  Input:
//   T -- temperature [°C]
//   f -- frequency [Hz]
//  Note: temperatures outside [190, 265] K are extrapolated with the boundary cubics
func FujitaImag(T, f float64) float64 {
	TK := T + 273.0
	fG := f / 1e9
	return splA.Predict(TK)/fG + splB.Predict(TK)*math.Pow(fG, splC.Predict(TK))
}

// RealPerm computes the real part of the relative permittivity normal to the c-axis
func RealPerm(T float64) float64 {
	return 3.1884 + 9.1e-4*T
}

// Anisotropy computes the increase of the real part of the relative permittivity parallel to the c-axis
func Anisotropy(T float64) float64 {
	return 0.0256 + 3.57e-5*6.0e-6*T
}

// Permittivity computes the complex relative permittivity tensor of a single crystal (c-axis along z)
//  Input:
//   T -- temperature [°C]
//   f -- frequency [Hz]
func Permittivity(T, f float64) (P tensor.CMat3) {
	re := RealPerm(T)
	im := FujitaImag(T, f)
	P = tensor.CIso3(complex(re, im))
	P[2][2] = complex(re+Anisotropy(T), im)
	return
}

// spline implements a not-a-knot cubic spline that extrapolates the boundary cubics
type spline struct {
	nak    interp.NotAKnotCubic
	xs, ys []float64
}

// Fit fits the spline
func (o *spline) Fit(xs, ys []float64) error {
	o.xs, o.ys = xs, ys
	return o.nak.Fit(xs, ys)
}

// Predict evaluates the spline at x
func (o *spline) Predict(x float64) float64 {
	n := len(o.xs)
	switch {
	case x < o.xs[0]:
		return o.hermite(0, x)
	case x > o.xs[n-1]:
		return o.hermite(n-2, x)
	}
	return o.nak.Predict(x)
}

// hermite evaluates the cubic of segment i using values and slopes at its ends. The result is the
// polynomial of the segment itself, also outside of it
func (o *spline) hermite(i int, x float64) float64 {
	x0, x1 := o.xs[i], o.xs[i+1]
	h := x1 - x0
	t := (x - x0) / h
	t2, t3 := t*t, t*t*t
	y0, y1 := o.ys[i], o.ys[i+1]
	d0, d1 := o.nak.PredictDerivative(x0), o.nak.PredictDerivative(x1)
	return (2*t3-3*t2+1)*y0 + (t3-2*t2+t)*h*d0 + (-2*t3+3*t2)*y1 + (t3-t2)*h*d1
}
