// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements density models for pore fluids (liquid water and air) and
// the correction of bulk densities for the fluids occupying the pore space
//  References:
//   [1] Kell GS (1975) Density, thermal expansivity, and compressibility of liquid water
//       from 0° to 150°C. Journal of Chemical and Engineering Data, 20(1), 97-105
package fluid

import (
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// constants
const (
	Grav        = 9.80665      // gravity acceleration [m/s²]
	MolarAir    = 0.02897      // molar mass of dry air [kg/mol]
	Rgas        = 8.2057338e-5 // universal gas constant [m³・atm/(K・mol)]
	RhoWaterMin = 950.0        // smallest admitted density of liquid water [kg/m³]
)

// WaterDensity computes the density of liquid water [kg/m³] at temperature T [°C] (Kell's equation).
// No bounds are applied; see Correct.
func WaterDensity(T float64) float64 {
	T2 := T * T
	T3 := T2 * T
	T4 := T3 * T
	T5 := T4 * T
	num := 999.83952 + 16.945176*T - 7.9870401e-3*T2 - 46.170461e-6*T3 + 105.56302e-9*T4 - 280.54253e-12*T5
	return num / (1.0 + 16.897850e-3*T)
}

// AirDensity computes the density of dry air [kg/m³] at temperature T [°C] and 1 atm (ideal gas)
func AirDensity(T float64) float64 {
	return MolarAir / (Rgas * (273.0 + T))
}

// Correct corrects the bulk density of a porous material for the air and water in its pores
//  Input:
//   T        -- temperature [°C]
//   rho      -- density of the matrix [kg/m³]
//   porosity -- porosity [%] in [0, 100]
//   lwc      -- liquid water content [%] of the pore space in [0, 100]
//  Output:
//   rhoNew -- corrected bulk density [kg/m³]
//   air    -- mass of air per unit pore volume [kg/m³]
//   water  -- mass of water per unit pore volume [kg/m³]
//  Note: the water density is bounded by [RhoWaterMin, WaterDensity(0)] since supercooled and
//        boiling water are not represented by the polynomial
func Correct(T, rho, porosity, lwc float64) (rhoNew, air, water float64) {
	var w Water
	var a DryAir
	w.Init(T)
	a.Init(T)
	air = (1.0 - lwc/100.0) * a.Rho
	water = (lwc / 100.0) * w.Rho
	rhoNew = (1.0-porosity/100.0)*rho + (porosity/100.0)*(air+water)
	return
}

// Hydrostatic computes the pressure [Pa] at each point of a vertical column with spacing dz [m]
// and (corrected) densities rho [kg/m³] ordered from the top
//   p[i] = mean(rho[0:i]) ⋅ g ⋅ i ⋅ dz
func Hydrostatic(rho []float64, dz float64) (p []float64) {
	p = make([]float64, len(rho))
	for i := 1; i < len(rho); i++ {
		mean := floats.Sum(rho[:i]) / float64(i)
		p[i] = mean * Grav * float64(i) * dz
	}
	return
}

// Column computes temperature, corrected density and hydrostatic pressure along a column of
// grid points. ids holds material indices (top to bottom) into the per-material arrays.
func Column(ids []int, temp, rho, porosity, lwc []float64, dz float64) (T, ρ, p []float64) {
	T = make([]float64, len(ids))
	ρ = make([]float64, len(ids))
	for i, id := range ids {
		T[i] = temp[id]
		ρ[i], _, _ = Correct(temp[id], rho[id], porosity[id], lwc[id])
	}
	p = Hydrostatic(ρ, dz)
	return
}

// Water holds the reference properties of liquid water
type Water struct {
	T   float64 // temperature [°C]
	Rho float64 // density @ T [kg/m³] (bounded as in Correct)
}

// DryAir holds the reference properties of dry air
type DryAir struct {
	T   float64 // temperature [°C]
	Rho float64 // density @ T and 1 atm [kg/m³]
}

// Init initialises data
func (o *Water) Init(T float64) {
	o.T = T
	o.Rho = utl.Min(utl.Max(WaterDensity(T), RhoWaterMin), WaterDensity(0))
}

// Init initialises data
func (o *DryAir) Init(T float64) {
	o.T = T
	o.Rho = AirDensity(T)
}
