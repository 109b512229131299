// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"errors"
	"math"
	"testing"

	"github.com/UMainedynamics/seidart/check"
	"github.com/UMainedynamics/seidart/mdl/catalog"
	"github.com/UMainedynamics/seidart/mdl/fluid"
	"github.com/UMainedynamics/seidart/mdl/ice"
	"github.com/UMainedynamics/seidart/mdl/iso"
	"github.com/UMainedynamics/seidart/mdl/snow"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_class01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("class01. names")

	for i, name := range classNames {
		c, err := ParseClass(name)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		chk.Int(tst, name, int(c), i)
		if _, err = catalog.Default().Get(c.String()); err != nil {
			tst.Errorf("class %v is not in the catalog: %v\n", c, err)
		}
	}

	c, _ := ParseClass("Dry sand")
	chk.Int(tst, "dry sand", int(c), int(DrySand))
	c, _ = ParseClass("ice")
	chk.Int(tst, "ice", int(c), int(Ice))

	_, err := ParseClass("kryptonite")
	if !errors.Is(err, ErrClass) {
		tst.Errorf("unknown class should fail with ErrClass. err = %v\n", err)
	}
	chk.String(tst, Class(99).String(), "class(99)")

	chk.Int(tst, "kind(dry sand)", int(KindOf(DrySand)), int(iso.KindSoil))
	chk.Int(tst, "kind(oil)", int(KindOf(Oil)), int(iso.KindFluid))
	chk.Int(tst, "kind(basalt)", int(KindOf(Basalt)), int(iso.KindDefault))
}

func Test_material01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material01. granite")

	s := &Sample{Id: 1, Class: Granite, Temp: 10, Rho: 2700, Porosity: 1, Lwc: 0}
	res, err := Compute(s, catalog.Default())
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	io.Pforan("C =\n%v\n", res.C)

	ρ := 0.99*2700 + 0.01*fluid.AirDensity(10)
	vp := 4500 + 2*1500*math.Atan(0.1)/math.Pi
	chk.Float64(tst, "ρ", 1e-10, res.Rho, ρ)
	chk.Float64(tst, "c11", 1e-2, res.C[0][0], ρ*vp*vp)
	chk.Float64(tst, "ε", 1e-13, res.Eps[0][0], 4.8+(18.9-4.8)/3)
	chk.Float64(tst, "σ", 1e-17, res.Sig[2][2], 4e-5+(2.5e-4-4e-5)/3)
}

func Test_material02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material02. ice")

	s := &Sample{Id: 2, Class: Ice, Temp: -10, Rho: 0, Freq: 1e8}
	res, err := Compute(s, catalog.Default())
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "ρ", 1e-10, res.Rho, ice.Density(-10, ice.DensityLinear))
	chk.Deep2(tst, "C", 1e-17, res.C.Deep2(), ice.Stiffness(-10, ice.RefPressure).Deep2())
	P := ice.Permittivity(-10, 1e8)
	chk.Deep2(tst, "ε", 1e-17, res.Eps.Deep2(), P.Real().Deep2())
	chk.Deep2(tst, "σ", 1e-20, res.Sig.Deep2(), iso.ConductivityFromImag(P.Imag(), 1e8).Deep2())
	chk.Float64(tst, "sample density unchanged", 1e-17, s.Rho, 0)

	// static values
	s.Freq = 0
	s.Porosity = 10
	res, err = Compute(s, catalog.Default())
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	perm0 := 3.1884 - 9.1e-3
	chk.Float64(tst, "ε(static)", 1e-14, res.Eps[1][1], perm0+(3.22-perm0)/85*10)
}

func Test_material03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material03. snow")

	s := &Sample{Id: 3, Class: Snow, Temp: -1, Rho: 917, Porosity: 60, Lwc: 5, Freq: 5e8, SnowMethod: snow.Wise}
	res, err := Compute(s, catalog.Default())
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	P, ρd, _ := snow.Permittivity(snow.Wise, -1, 917, 5, 60, 5e8)
	chk.Float64(tst, "ρ", 1e-10, res.Rho, ρd*1000)
	chk.Deep2(tst, "ε", 1e-17, res.Eps.Deep2(), P.Real().Deep2())
	chk.Deep2(tst, "σ", 1e-20, res.Sig.Deep2(), iso.ConductivityFromImag(P.Imag(), 5e8).Deep2())

	lim, _ := catalog.Default().Get("snow")
	chk.Deep2(tst, "C", 1e-17, res.C.Deep2(), iso.Stiffness(iso.ReferencePressure, res.Rho, lim).Deep2())

	s.Freq = 0
	res, err = Compute(s, catalog.Default())
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Deep2(tst, "σ(static)", 1e-17, res.Sig.Deep2(), snow.GranlundConductivity(-1, 917, 60, 5).Deep2())
}

func Test_material04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material04. errors and inputs out of range")

	cat := catalog.Default()
	_, err := Compute(&Sample{Class: Ice, Anisotropic: true}, cat)
	if err == nil {
		tst.Errorf("anisotropic sample without angles file should fail\n")
	}

	delete(cat, "basalt")
	_, err = Compute(&Sample{Class: Basalt, Rho: 3000}, cat)
	if !errors.Is(err, catalog.ErrUnknown) {
		tst.Errorf("missing catalog entry should fail with ErrUnknown. err = %v\n", err)
	}

	_, err = Compute(&Sample{Class: Snow, Rho: 917, Porosity: 50, Freq: 1e8, SnowMethod: snow.Method(9)}, cat)
	if !errors.Is(err, snow.ErrMethod) {
		tst.Errorf("unknown snow method should fail with ErrMethod. err = %v\n", err)
	}

	// out of range inputs give tensors and warnings
	cat = catalog.Default()
	for _, s := range []*Sample{
		{Class: Granite, Rho: 2700, Porosity: 100.5},
		{Class: Soil, Rho: 1800, Porosity: 120},
		{Class: Soil, Rho: 1800, Lwc: -1},
		{Class: Soil, Rho: -1},
		{Class: Soil, Rho: 1800, Freq: -1},
	} {
		res, err := Compute(s, cat)
		if err != nil {
			tst.Errorf("sample %+v should not fail: %v\n", s, err)
			continue
		}
		chk.Int(tst, "number of warnings", len(res.Warnings), 1)
		chk.Int(tst, "kind", int(res.Warnings[0].Kind), int(check.OutOfRange))
		if res.C[0][0] == 0 || res.Eps[0][0] == 0 {
			tst.Errorf("sample %+v should have tensors\n", s)
		}
		io.Pforan("%v\n", res.Warnings[0])
	}
	res, err := Compute(&Sample{Class: Granite, Rho: 2700, Porosity: 100.5}, cat)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.String(tst, res.Warnings[0].Input, "porosity")
	chk.Float64(tst, "value", 1e-15, res.Warnings[0].Value, 100.5)

	res, err = Compute(&Sample{Class: Granite, Rho: 2700, Porosity: 1}, cat)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "no warnings inside the ranges", len(res.Warnings), 0)
}
