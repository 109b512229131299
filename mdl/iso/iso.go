// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package iso implements isotropic elastic and dielectric tensors of earth materials computed
// from the empirical ranges in the catalog
package iso

import (
	"math"

	"github.com/UMainedynamics/seidart/mdl/catalog"
	"github.com/UMainedynamics/seidart/tensor"
)

// constants
const (
	ReferencePressure = 0.1            // argument of the velocity ramp used for every sample [-]
	Eps0              = 8.85418782e-12 // vacuum permittivity [F/m]
	LightSpeed        = 299792458.0    // speed of light in vacuum [m/s]
)

// Velocities computes the P- and S-wave velocities by ramping from the minimum to the maximum
// catalog values
//
//	V = Vmin + (2/π)⋅(Vmax - Vmin)⋅atan(pressure)
func Velocities(pressure float64, lim catalog.Limits) (vp, vs float64) {
	a := math.Atan(pressure)
	vp = lim.VpMin + 2.0*(lim.VpMax-lim.VpMin)*a/math.Pi
	vs = lim.VsMin + 2.0*(lim.VsMax-lim.VsMin)*a/math.Pi
	return
}

// Lame computes the Lamé parameters from density and velocities
func Lame(rho, vp, vs float64) (lam, mu float64) {
	mu = rho * vs * vs
	lam = rho*vp*vp - 2.0*mu
	return
}

// Stiffness computes the isotropic stiffness tensor (Voigt notation) [Pa]
func Stiffness(pressure, rho float64, lim catalog.Limits) (C tensor.Mat6) {
	vp, vs := Velocities(pressure, lim)
	lam, mu := Lame(rho, vp, vs)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = lam
		}
		C[i][i] = lam + 2.0*mu
		C[3+i][3+i] = mu
	}
	return
}

// Kind defines how porosity and water content affect the dielectric properties
type Kind int

// kinds of dielectric response
const (
	KindDefault Kind = iota // porosity up to 3%
	KindIce                 // porosity up to 85% (fresh snow); temperature dependent minimum
	KindSoil                // porosity up to 55% (soil and dry sand)
	KindSalt                // fixed permittivity; conductivity increases with water content up to 20%
	KindFluid               // water and oil: no pores
)

// caps holds the porosity [%] at which the maximum catalog value is reached
var caps = map[Kind]float64{
	KindDefault: 3,
	KindIce:     85,
	KindSoil:    55,
	KindSalt:    20,
}

// Dielectric computes the isotropic relative permittivity and conductivity [S/m] tensors
//
//	Input:
//	 kind     -- dielectric response
//	 T        -- temperature [°C]
//	 porosity -- porosity [%]
//	 lwc      -- liquid water content [%]; used by KindSalt only
//	 lim      -- catalog limits
//	Note: values are interpolated linearly from the minimum; porosities above the cap extrapolate
func Dielectric(kind Kind, T, porosity, lwc float64, lim catalog.Limits) (eps, sig tensor.Mat3) {
	perm0, perm1 := lim.PermMin, lim.PermMax
	cond0, cond1 := lim.CondMin, lim.CondMax
	switch kind {
	case KindFluid:
		return tensor.Iso3(perm0), tensor.Iso3(cond0)
	case KindSalt:
		return tensor.Iso3(perm0), tensor.Iso3((cond1-cond0)/caps[kind]*lwc + cond0)
	case KindIce:
		perm0 = 3.1884 + 9.1e-4*T
	}
	φmax := caps[kind]
	eps = tensor.Iso3((perm1-perm0)/φmax*porosity + perm0)
	sig = tensor.Iso3((cond1-cond0)/φmax*porosity + cond0)
	return
}

// ConductivityFromImag computes the conductivity [S/m] from the imaginary part of the relative
// permittivity at frequency f [Hz]
//
//	σ = ε''⋅ω⋅ε₀   with   ω = 2πf
func ConductivityFromImag(imag tensor.Mat3, f float64) tensor.Mat3 {
	return imag.Scale(2.0 * math.Pi * f * Eps0)
}
