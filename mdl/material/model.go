// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package material implements the material classes and the models computing the elastic and
// dielectric tensors of one crystal (or of an isotropic aggregate) of each class
package material

import (
	"errors"
	"fmt"

	"github.com/UMainedynamics/seidart/check"
	"github.com/UMainedynamics/seidart/mdl/catalog"
	"github.com/UMainedynamics/seidart/mdl/fluid"
	"github.com/UMainedynamics/seidart/mdl/ice"
	"github.com/UMainedynamics/seidart/tensor"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ErrClass is returned when a material name does not correspond to any class
var ErrClass = errors.New("material: unknown class")

// Class defines the material class
type Class int

// classes
const (
	Air Class = iota
	Ice
	Snow
	Soil
	Water
	Oil
	DrySand
	WetSand
	Granite
	Gneiss
	Basalt
	Limestone
	Anhydrite
	Coal
	Salt
)

// classNames holds the catalog key of each class
var classNames = []string{
	"air", "ice1h", "snow", "soil", "water", "oil", "dry_sand", "wet_sand",
	"granite", "gneiss", "basalt", "limestone", "anhydrite", "coal", "salt",
}

// String returns the catalog key of the class
func (o Class) String() string {
	if o < 0 || int(o) >= len(classNames) {
		return io.Sf("class(%d)", int(o))
	}
	return classNames[o]
}

// ParseClass returns the class corresponding to a material name, e.g. "ice1h", "Dry sand"
func ParseClass(name string) (Class, error) {
	key := catalog.Key(name)
	if key == "ice" {
		return Ice, nil
	}
	for i, n := range classNames {
		if n == key {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrClass, name)
}

// Crystal holds the tensors of a single crystal (or isotropic aggregate) of one sample
type Crystal struct {
	Rho float64     // bulk density corrected for pore fluids [kg/m³]
	C   tensor.Mat6 // stiffness [Pa]
	Eps tensor.Mat3 // relative permittivity (real part)
	Sig tensor.Mat3 // conductivity [S/m]

	Warnings []check.Warning // inputs out of range
}

// Model defines the interface for material models
type Model interface {
	Init(class Class, lim catalog.Limits) error             // initialises model
	Stiffness(s *Sample, rho float64) tensor.Mat6           // computes stiffness for a corrected density
	Dielectric(s *Sample) (eps, sig tensor.Mat3, err error) // computes permittivity and conductivity
}

// New returns new material model
func New(class Class) (model Model, err error) {
	allocator, ok := allocators[class.String()]
	if !ok {
		allocator, ok = allocators["isotropic"]
	}
	if !ok {
		return nil, chk.Err("model %q is not available in 'material' database", class)
	}
	return allocator(), nil
}

// allocators holds all available models; class name => allocator
var allocators = map[string]func() Model{}

// Compute computes the single-crystal tensors of a sample. The density of ice and snow samples
// without density is computed from the temperature
func Compute(s *Sample, cat catalog.Catalog) (res Crystal, err error) {
	if err = s.Check(); err != nil {
		return
	}
	lim, err := cat.Get(s.Class.String())
	if err != nil {
		return
	}
	if s.Rho == 0 && (s.Class == Ice || s.Class == Snow) {
		t := *s
		t.Rho = ice.Density(s.Temp, s.IceDensity)
		s = &t
	}
	mdl, err := New(s.Class)
	if err != nil {
		return
	}
	if err = mdl.Init(s.Class, lim); err != nil {
		return
	}
	res.Rho, _, _ = fluid.Correct(s.Temp, s.Rho, s.Porosity, s.Lwc)
	res.C = mdl.Stiffness(s, res.Rho)
	res.Eps, res.Sig, err = mdl.Dielectric(s)
	res.Warnings = s.Ranges()
	return
}
