// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/UMainedynamics/seidart/mdl/ice"
	"github.com/UMainedynamics/seidart/mdl/iso"
	"github.com/UMainedynamics/seidart/mdl/snow"
	"github.com/UMainedynamics/seidart/tensor"
)

// IceIh implements single crystals of hexagonal ice
type IceIh struct {
	Isotropic // used when no frequency is given
}

// SnowModel implements snow as an isotropic mixture of ice, air and water
type SnowModel struct {
	Isotropic // used for the stiffness
}

// add models to factory
func init() {
	allocators["ice1h"] = func() Model { return new(IceIh) }
	allocators["snow"] = func() Model { return new(SnowModel) }
}

// Stiffness computes the stiffness tensor at the reference pressure. Density is not used
func (o IceIh) Stiffness(s *Sample, rho float64) tensor.Mat6 {
	return ice.Stiffness(s.Temp, ice.RefPressure)
}

// Dielectric computes permittivity and conductivity. Without frequency, the catalog values are used
func (o IceIh) Dielectric(s *Sample) (eps, sig tensor.Mat3, err error) {
	if s.Freq <= 0 {
		return o.Isotropic.Dielectric(s)
	}
	P := ice.Permittivity(s.Temp, s.Freq)
	return P.Real(), iso.ConductivityFromImag(P.Imag(), s.Freq), nil
}

// Dielectric computes permittivity and conductivity. Without frequency, the conductivity is
// computed from the water content
func (o SnowModel) Dielectric(s *Sample) (eps, sig tensor.Mat3, err error) {
	if s.Freq <= 0 {
		P, _, err := snow.Permittivity(s.SnowMethod, s.Temp, s.Rho, s.Lwc, s.Porosity, 1)
		return P.Real(), snow.GranlundConductivity(s.Temp, s.Rho, s.Porosity, s.Lwc), err
	}
	P, _, err := snow.Permittivity(s.SnowMethod, s.Temp, s.Rho, s.Lwc, s.Porosity, s.Freq)
	return P.Real(), iso.ConductivityFromImag(P.Imag(), s.Freq), err
}
