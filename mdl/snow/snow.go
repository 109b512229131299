// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package snow implements mixing models for the dielectric properties of snow
//  References:
//   [1] Sihvola A and Tiuri M (1986) Snow fork for field determination of the density and
//       wetness profiles of a snow pack. IEEE Trans Geosci Remote Sens, GE-24(5), 717-721
//   [2] Jones SB (2005) Dielectric permittivity of water. Utah State University
//   [3] Liebe HJ, Hufford GA and Manabe T (1991) A model for the complex permittivity of water
//       at frequencies below 1 THz. Int J Infrared Millimeter Waves, 12(7), 659-675
//   [4] Granlund N, Lundberg A, Feiccabrino J and Gustafsson D (2010) Laboratory test of snow
//       wetness influence on electrical conductivity measured with ground penetrating radar.
//       Hydrology Research, 41(1), 33-40
package snow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/UMainedynamics/seidart/mdl/fluid"
	"github.com/UMainedynamics/seidart/mdl/ice"
	"github.com/UMainedynamics/seidart/tensor"
)

// ErrMethod is returned when a mixing model is not available
var ErrMethod = errors.New("snow: unknown permittivity method")

// Method defines the model for the real part of the permittivity
type Method int

// methods
const (
	ShivolaTiuri Method = iota // density and wetness [1]
	Wise                       // density and wetness
	Jones                      // temperature only [2]
	Liebe                      // temperature only [3]
)

// names holds the method names
var names = map[Method]string{
	ShivolaTiuri: "shivola-tiuri",
	Wise:         "wise",
	Jones:        "jones",
	Liebe:        "liebe",
}

// String returns the name of the method
func (o Method) String() string {
	return names[o]
}

// ParseMethod returns the method corresponding to name. An empty name selects ShivolaTiuri
func ParseMethod(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return ShivolaTiuri, nil
	}
	for m, n := range names {
		if n == key {
			return m, nil
		}
	}
	return ShivolaTiuri, fmt.Errorf("%w: %q", ErrMethod, name)
}

// wetness computes the dry density and the water mass per unit pore volume, both in [g/cm³]
func wetness(T, rho, porosity, lwc float64) (ρd, w float64) {
	ρd, _, w = fluid.Correct(T, rho, porosity, lwc)
	return ρd / 1000.0, w / 1000.0
}

// Permittivity computes the complex relative permittivity tensor of snow
//  Input:
//   m        -- method for the real part
//   T        -- temperature [°C]
//   rho      -- density of the ice matrix [kg/m³]
//   lwc      -- liquid water content [%] of the pore space
//   porosity -- porosity [%]
//   f        -- frequency [Hz]
//  Output:
//   P  -- isotropic complex permittivity
//   ρd -- corrected (bulk) density [g/cm³]
func Permittivity(m Method, T, rho, lwc, porosity, f float64) (P tensor.CMat3, ρd float64, err error) {
	ρd, w := wetness(T, rho, porosity, lwc)
	var re float64
	switch m {
	case ShivolaTiuri:
		re = 8.8*w + 70.4*w*w + 1.0 + 1.17*ρd + 0.7*ρd*ρd
	case Wise:
		re = 1.0 + 1.202*ρd + 0.983*ρd*ρd + 21.3*w
	case Jones:
		d := T + 273.15 - 298.0
		re = 78.51 * (1.0 - 4.579e-3*d + 1.19e-5*d*d - 2.8e-8*d*d*d)
	case Liebe:
		re = 77.66 - 103.3*(1.0-300.0/(T+273.15))
	default:
		return P, ρd, fmt.Errorf("%w: method %d", ErrMethod, int(m))
	}
	var im float64
	if w > 0 {
		im = 0.8*w + 0.72*w*w
	} else {
		d := ice.Permittivity(T, f).Imag()
		im = (d[0][0] + d[1][1] + d[2][2]) / 3.0 * (0.52*ρd + 0.62*ρd*ρd)
	}
	return tensor.CIso3(complex(re, im)), ρd, nil
}

// GranlundConductivity computes the isotropic conductivity [S/m] of wet snow [4]
//   σ = (20 + 3000 w)⋅1e-4   with w in [g/cm³]
func GranlundConductivity(T, rho, porosity, lwc float64) tensor.Mat3 {
	_, w := wetness(T, rho, porosity, lwc)
	return tensor.Iso3((20.0 + 3e3*w) * 1e-4)
}
