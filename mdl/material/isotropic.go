// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/UMainedynamics/seidart/mdl/catalog"
	"github.com/UMainedynamics/seidart/mdl/iso"
	"github.com/UMainedynamics/seidart/tensor"
)

// Isotropic implements materials described by the catalog ranges only
type Isotropic struct {
	Lim  catalog.Limits // catalog data
	Kind iso.Kind       // dielectric response
}

// add model to factory
func init() {
	allocators["isotropic"] = func() Model { return new(Isotropic) }
}

// KindOf returns the dielectric response of a class
func KindOf(class Class) iso.Kind {
	switch class {
	case Ice:
		return iso.KindIce
	case Soil, DrySand:
		return iso.KindSoil
	case Salt:
		return iso.KindSalt
	case Water, Oil:
		return iso.KindFluid
	}
	return iso.KindDefault
}

// Init initialises model
func (o *Isotropic) Init(class Class, lim catalog.Limits) error {
	o.Lim = lim
	o.Kind = KindOf(class)
	return nil
}

// Stiffness computes the stiffness tensor
func (o Isotropic) Stiffness(s *Sample, rho float64) tensor.Mat6 {
	return iso.Stiffness(iso.ReferencePressure, rho, o.Lim)
}

// Dielectric computes permittivity and conductivity
func (o Isotropic) Dielectric(s *Sample) (eps, sig tensor.Mat3, err error) {
	eps, sig = iso.Dielectric(o.Kind, s.Temp, s.Porosity, s.Lwc, o.Lim)
	return
}
