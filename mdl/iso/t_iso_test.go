// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso

import (
	"math"
	"testing"

	"github.com/UMainedynamics/seidart/mdl/catalog"
	"github.com/UMainedynamics/seidart/mdl/fluid"
	"github.com/UMainedynamics/seidart/tensor"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_iso01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iso01. velocity ramp")

	lim := catalog.Limits{VpMin: 1000, VpMax: 2000, VsMin: 500, VsMax: 700}
	vp, vs := Velocities(0, lim)
	chk.Float64(tst, "vp(0)", 1e-12, vp, 1000)
	chk.Float64(tst, "vs(0)", 1e-12, vs, 500)
	vp, vs = Velocities(1, lim)
	chk.Float64(tst, "vp(1)", 1e-12, vp, 1500)
	chk.Float64(tst, "vs(1)", 1e-12, vs, 600)
	vp, vs = Velocities(1e12, lim)
	chk.Float64(tst, "vp(∞)", 1e-6, vp, 2000)
	chk.Float64(tst, "vs(∞)", 1e-6, vs, 700)

	prev := 0.0
	for _, p := range utl.LinSpace(0, 10, 11) {
		vp, _ = Velocities(p, lim)
		if vp < prev {
			tst.Errorf("velocity must increase with pressure\n")
			return
		}
		prev = vp
	}

	lam, mu := Lame(2, 3, 1)
	chk.Float64(tst, "μ", 1e-15, mu, 2)
	chk.Float64(tst, "λ", 1e-15, lam, 14)
}

func Test_iso02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iso02. granite stiffness")

	lim, _ := catalog.Default().Get("granite")
	rho, _, _ := fluid.Correct(10, 2700, 1, 0)
	C := Stiffness(ReferencePressure, rho, lim)
	io.Pforan("C =\n%v\n", C)

	vp, vs := Velocities(ReferencePressure, lim)
	c11 := rho * vp * vp
	c44 := rho * vs * vs
	c12 := c11 - 2*c44
	chk.Float64(tst, "vp", 1e-9, vp, 4500+2*1500*math.Atan(0.1)/math.Pi)
	chk.Deep2(tst, "C", 1e-4, C.Deep2(), [][]float64{
		{c11, c12, c12, 0, 0, 0},
		{c12, c11, c12, 0, 0, 0},
		{c12, c12, c11, 0, 0, 0},
		{0, 0, 0, c44, 0, 0},
		{0, 0, 0, 0, c44, 0},
		{0, 0, 0, 0, 0, c44},
	})
	if !C.IsSymmetric(1e-17) {
		tst.Errorf("C must be symmetric\n")
	}
	ev, err := C.Eigenvalues()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	for _, v := range ev {
		if v <= 0 {
			tst.Errorf("eigenvalues must be positive. %v\n", ev)
			return
		}
	}
}

func Test_iso03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iso03. dielectric")

	cat := catalog.Default()

	// default: cap at 3%
	lim, _ := cat.Get("granite")
	eps, sig := Dielectric(KindDefault, 0, 3, 0, lim)
	chk.Deep2(tst, "granite ε(3%)", 1e-14, eps.Deep2(), tensor.Iso3(18.9).Deep2())
	chk.Deep2(tst, "granite σ(3%)", 1e-17, sig.Deep2(), tensor.Iso3(2.5e-4).Deep2())
	eps, _ = Dielectric(KindDefault, 0, 6, 0, lim)
	chk.Float64(tst, "granite ε(6%) extrapolated", 1e-13, eps[1][1], 4.8+2*(18.9-4.8))

	// soil: cap at 55%
	lim, _ = cat.Get("soil")
	eps, sig = Dielectric(KindSoil, 0, 27.5, 0, lim)
	chk.Float64(tst, "soil ε", 1e-13, eps[0][0], (3.9+29.4)/2)
	chk.Float64(tst, "soil σ", 1e-15, sig[2][2], (1e-2+1e-1)/2)
	chk.Float64(tst, "soil ε01", 1e-17, eps[0][1], 0)

	// ice: temperature dependent minimum
	lim, _ = cat.Get("ice1h")
	eps, sig = Dielectric(KindIce, -10, 0, 0, lim)
	chk.Float64(tst, "ice ε(φ=0)", 1e-15, eps[0][0], 3.1884-9.1e-3)
	chk.Float64(tst, "ice σ(φ=0)", 1e-17, sig[0][0], 1e-7)
	eps, _ = Dielectric(KindIce, -10, 85, 0, lim)
	chk.Float64(tst, "ice ε(φ=85)", 1e-14, eps[2][2], 3.22)

	// salt: conductivity follows water content
	lim, _ = cat.Get("salt")
	eps, sig = Dielectric(KindSalt, 0, 50, 10, lim)
	chk.Float64(tst, "salt ε", 1e-15, eps[0][0], 5.6)
	chk.Float64(tst, "salt σ", 1e-12, sig[0][0], (1e2-1e-7)/2+1e-7)

	// fluids ignore porosity
	lim, _ = cat.Get("water")
	eps, sig = Dielectric(KindFluid, 20, 50, 100, lim)
	chk.Float64(tst, "water ε", 1e-15, eps[1][1], 80.36)
	chk.Float64(tst, "water σ", 1e-17, sig[1][1], 5.5e-6)
}

func Test_iso04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iso04. conductivity from imaginary permittivity")

	f := 1e8
	sig := ConductivityFromImag(tensor.Diag3(1e-3, 2e-3, 0), f)
	ω := 2 * math.Pi * f
	chk.Deep2(tst, "σ", 1e-20, sig.Deep2(), tensor.Diag3(1e-3*ω*Eps0, 2e-3*ω*Eps0, 0).Deep2())
}
