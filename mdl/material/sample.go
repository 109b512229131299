// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"math"

	"github.com/UMainedynamics/seidart/check"
	"github.com/UMainedynamics/seidart/mdl/ice"
	"github.com/UMainedynamics/seidart/mdl/snow"
	"github.com/cpmech/gosl/chk"
)

// Sample holds the physical state of one discretised material
type Sample struct {
	Id          int               // identifier of the material in the model grid
	Class       Class             // material class
	Temp        float64           // temperature [°C]
	Rho         float64           // density of the matrix [kg/m³]; ice only: zero means computed from Temp
	Porosity    float64           // porosity [%]
	Lwc         float64           // liquid water content [%] of the pore space
	Anisotropic bool              // use the orientations in AngFile
	AngFile     string            // file with Euler angles
	Freq        float64           // centre frequency [Hz]; zero means static dielectric values
	SnowMethod  snow.Method       // permittivity model for snow
	IceDensity  ice.DensityMethod // density model for ice when Rho is zero
}

// Check checks the structure of the sample data. Physical ranges are reported by Ranges
func (o *Sample) Check() error {
	if o.Anisotropic && o.AngFile == "" {
		return chk.Err("material %d: anisotropic material requires a file with Euler angles", o.Id)
	}
	return nil
}

// Ranges returns warnings for inputs outside their physical ranges. Tensors are still computed
func (o *Sample) Ranges() (res []check.Warning) {
	res = append(res, check.Range("porosity", o.Porosity, 0, 100)...)
	res = append(res, check.Range("lwc", o.Lwc, 0, 100)...)
	res = append(res, check.Range("rho", o.Rho, 0, math.Inf(1))...)
	res = append(res, check.Range("freq", o.Freq, 0, math.Inf(1))...)
	return
}
