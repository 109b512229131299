// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package check implements diagnostics of material tensors. The diagnostics never modify tensors
//  References:
//   [1] Bécache E, Fauqueux S and Joly P (2003) Stability of perfectly matched layers, group
//       velocities and anisotropic waves. Journal of Computational Physics, 188(2), 399-433
//   [2] Komatitsch D and Martin R (2007) An unsplit convolutional perfectly matched layer
//       improved at grazing incidence for the seismic wave equation. Geophysics, 72(5)
package check

import (
	"github.com/UMainedynamics/seidart/tensor"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Kind defines the kind of diagnostic
type Kind int

// kinds of diagnostics
const (
	NotPositiveDefinite Kind = iota // some eigenvalue is not positive
	Stability                       // a high-frequency stability condition of PML fails
	EigenFailure                    // the eigenvalues could not be computed
	OutOfRange                      // an input is outside its physical range
)

// Warning holds one diagnostic
type Warning struct {
	Kind  Kind    // kind of diagnostic
	Cond  int     // stability condition (1, 2 or 3)
	Plane string  // plane of the stability condition; e.g. "xz"
	Input string  // name of the input out of range; e.g. "porosity"
	Value float64 // smallest eigenvalue, value of the condition or value of the input
}

// String returns a description of the warning
func (o Warning) String() string {
	switch o.Kind {
	case NotPositiveDefinite:
		return io.Sf("tensor is not positive definite (smallest eigenvalue = %g)", o.Value)
	case Stability:
		return io.Sf("high frequency stability condition %d fails on plane %s (value = %g)", o.Cond, o.Plane, o.Value)
	case OutOfRange:
		return io.Sf("%s = %g is out of range; tensors are extrapolated", o.Input, o.Value)
	}
	return "eigenvalues could not be computed"
}

// Plane holds the coefficients of a 2-D orthotropic tensor
//   c11 c12  0
//   c12 c22  0
//    0   0  c33
type Plane struct {
	Name               string
	C11, C12, C22, C33 float64
}

// Plane2D returns the plane of a 2-D tensor in Voigt notation (11, 22, 12)
func Plane2D(T tensor.Mat3) Plane {
	return Plane{"xz", T[0][0], T[0][1], T[1][1], T[2][2]}
}

// Planes returns the xz, xy and yz planes of a stiffness tensor
func Planes(C tensor.Mat6) []Plane {
	return []Plane{
		{"xz", C[0][0], C[0][2], C[2][2], C[4][4]},
		{"xy", C[0][0], C[0][1], C[1][1], C[5][5]},
		{"yz", C[1][1], C[1][2], C[2][2], C[3][3]},
	}
}

// Conditions computes the three high-frequency stability conditions. A positive value fails
func (o Plane) Conditions() (c1, c2, c3 float64) {
	a := o.C12 + o.C33
	c1 = (a*a - o.C11*(o.C22-o.C33)) * (a*a + o.C33*(o.C22-o.C33))
	b := o.C12 + 2.0*o.C33
	c2 = b*b - o.C11*o.C22
	c3 = a*a - o.C11*o.C33 - o.C33*o.C33
	return
}

// HighFreq returns one warning for each failing stability condition
func HighFreq(p Plane) (res []Warning) {
	c1, c2, c3 := p.Conditions()
	for i, c := range []float64{c1, c2, c3} {
		if c > 0 {
			res = append(res, Warning{Kind: Stability, Cond: i + 1, Plane: p.Name, Value: c})
		}
	}
	return
}

// PositiveDefinite6 checks whether all eigenvalues of C are positive
func PositiveDefinite6(C tensor.Mat6) []Warning {
	return positive(C.Eigenvalues())
}

// PositiveDefinite3 checks whether all eigenvalues of P are positive
func PositiveDefinite3(P tensor.Mat3) []Warning {
	return positive(P.Eigenvalues())
}

// Stiffness runs all diagnostics of a stiffness tensor
func Stiffness(C tensor.Mat6) (res []Warning) {
	res = PositiveDefinite6(C)
	for _, p := range Planes(C) {
		res = append(res, HighFreq(p)...)
	}
	return
}

func positive(ev []float64, err error) []Warning {
	if err != nil {
		return []Warning{{Kind: EigenFailure}}
	}
	if λmin := floats.Min(ev); λmin <= 0 {
		return []Warning{{Kind: NotPositiveDefinite, Value: λmin}}
	}
	return nil
}

// Range returns a warning if value is outside [lo, hi]
func Range(input string, value, lo, hi float64) []Warning {
	if value < lo || value > hi {
		return []Warning{{Kind: OutOfRange, Input: input, Value: value}}
	}
	return nil
}
