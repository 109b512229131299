// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ice implements models for single crystals of hexagonal ice (ice Ih)
//  References:
//   [1] Gammon PH, Kiefte H, Clouter MJ and Denner WW (1983) Elastic constants of artificial
//       and natural ice samples by Brillouin spectroscopy. Journal of Glaciology, 29(103)
//   [2] Fujita S, Matsuoka T, Ishida T, Matsuoka K and Mae S (2000) A summary of the complex
//       dielectric permittivity of ice in the megahertz range and its applications for
//       radar sounding of polar ice sheets. Physics of Ice Core Records, 185-212
package ice

import (
	"strings"

	"github.com/UMainedynamics/seidart/tensor"
	"github.com/cpmech/gosl/chk"
)

// constants
const (
	RefPressure = 0.01  // reference pressure [kbar] (0.1 MPa ≈ 1 atm)
	RefDensity  = 917.0 // density at 0°C [kg/m³]
	Alpha       = 51e-6 // linear thermal coefficient of density [1/°C]
)

// Stiffness computes the stiffness tensor of a single crystal (Voigt notation, c-axis along z) [Pa]
//  Input:
//   T -- temperature [°C]
//   P -- pressure [kbar]
func Stiffness(T, P float64) (C tensor.Mat6) {
	T2, P2 := T*T, P*P
	c11 := 136.813 - 0.28940*T - 0.00178270*T2 + 4.6648*P - 0.13501*P2
	c12 := 69.4200 - 0.14673*T - 0.00090362*T2 + 5.0743*P + 0.085917*P2
	c13 := 56.3410 - 0.11916*T - 0.00073120*T2 + 6.4189*P - 0.52490*P2
	c33 := 147.607 - 0.31129*T - 0.0018948*T2 + 4.7546*P - 0.11307*P2
	c44 := 29.7260 - 0.062874*T - 0.00038956*T2 + 0.5662*P + 0.036917*P2

	// hexagonal symmetry
	C[0][0], C[1][1], C[2][2] = c11, c11, c33
	C[0][1], C[1][0] = c12, c12
	C[0][2], C[2][0], C[1][2], C[2][1] = c13, c13, c13, c13
	C[3][3], C[4][4] = c44, c44
	C[5][5] = (c11 - c12) / 2.0
	return C.Scale(1e8)
}

// DensityMethod selects the correlation for the density of ice
type DensityMethod int

// density methods
const (
	DensityLinear DensityMethod = iota // ρ = ρ₀(1 - αT)
	DensityGammon                      // quartic fit by Gammon et al.; suitable for warm ice (T > -20°C)
)

// ParseDensityMethod returns the density method corresponding to name. An empty name is DensityLinear
func ParseDensityMethod(name string) (DensityMethod, error) {
	switch strings.ToLower(name) {
	case "", "linear":
		return DensityLinear, nil
	case "gammon":
		return DensityGammon, nil
	}
	return DensityLinear, chk.Err("ice: density method %q is not available", name)
}

// Density computes the density of ice [kg/m³] at temperature T [°C]
func Density(T float64, method DensityMethod) float64 {
	if method == DensityGammon {
		v := (1.0 + 1.576e-4*T - 2.778e-7*T*T + 8.850e-9*T*T*T - 1.778e-10*T*T*T*T) / RefDensity
		return 1.0 / v
	}
	return RefDensity * (1.0 - Alpha*T)
}
