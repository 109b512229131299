// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the assembly of material tensors into the records read by wave
// propagation solvers
package out

import (
	"math"

	"github.com/UMainedynamics/seidart/check"
	"github.com/UMainedynamics/seidart/mdl/iso"
	"github.com/UMainedynamics/seidart/tensor"
	"github.com/cpmech/gosl/io"
)

// Result holds the effective tensors of one sample
type Result struct {
	Id       int             // identifier of the material in the model grid
	Name     string          // material class
	Rho      float64         // corrected density [kg/m³]
	C        tensor.Mat6     // stiffness [Pa]
	Eps      tensor.Mat3     // relative permittivity
	Sig      tensor.Mat3     // conductivity [S/m]
	Warnings []check.Warning // diagnostics
}

// StiffnessRecord returns the upper triangle of C (row by row) followed by the density
func StiffnessRecord(C tensor.Mat6, rho float64) (r [22]float64) {
	k := 0
	for i := 0; i < 6; i++ {
		for j := i; j < 6; j++ {
			r[k] = C[i][j]
			k++
		}
	}
	r[21] = rho
	return
}

// TensorRecord returns the upper triangle of P (row by row)
func TensorRecord(P tensor.Mat3) (r [6]float64) {
	k := 0
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			r[k] = P[i][j]
			k++
		}
	}
	return
}

// Unpack21 returns the symmetric tensor whose upper triangle is given row by row
func Unpack21(r [21]float64) (C tensor.Mat6) {
	k := 0
	for i := 0; i < 6; i++ {
		for j := i; j < 6; j++ {
			C[i][j], C[j][i] = r[k], r[k]
			k++
		}
	}
	return
}

// Unpack6 returns the symmetric tensor whose upper triangle is given row by row
func Unpack6(r [6]float64) (P tensor.Mat3) {
	k := 0
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			P[i][j], P[j][i] = r[k], r[k]
			k++
		}
	}
	return
}

// SeismicVelocities computes the vertical and horizontal velocities of P and S waves [m/s]
func SeismicVelocities(C tensor.Mat6, rho float64) (vpv, vph, vsv, vsh float64) {
	vpv = math.Sqrt(C[2][2] / rho)
	vph = math.Sqrt(C[0][0] / rho)
	vsv = math.Sqrt(C[3][3] / rho)
	vsh = math.Sqrt((C[0][0] - C[0][1]) / (2.0 * rho))
	return
}

// EMVelocities computes the velocities of electromagnetic waves polarised along x, y and z [m/s]
func EMVelocities(P tensor.Mat3) (vx, vy, vz float64) {
	vx = iso.LightSpeed / math.Sqrt(P[0][0])
	vy = iso.LightSpeed / math.Sqrt(P[1][1])
	vz = iso.LightSpeed / math.Sqrt(P[2][2])
	return
}

// file extensions
const (
	ExtStiffness    = ".stiffness"
	ExtPermittivity = ".permittivity"
	ExtConductivity = ".conductivity"
)

// column keys of the tables written by Write
var (
	stiffnessKeys    = append(keys("c", 6), "rho")
	permittivityKeys = keys("e", 3)
	conductivityKeys = keys("s", 3)
)

// Write writes the stiffness, permittivity and conductivity tables to dirout.
// The first line of each table holds the column keys, as read by io.ReadTable
//  Output files:
//   fnkey.stiffness    -- id c11 c12 ... c66 rho
//   fnkey.permittivity -- id e11 e12 e13 e22 e23 e33
//   fnkey.conductivity -- id s11 s12 s13 s22 s23 s33
func Write(dirout, fnkey string, results []Result) {
	stiff := header(stiffnessKeys)
	perm := header(permittivityKeys)
	cond := header(conductivityKeys)
	for _, r := range results {
		rec := StiffnessRecord(r.C, r.Rho)
		stiff += row(r.Id, rec[:])
		perm += row(r.Id, tensorRow(r.Eps))
		cond += row(r.Id, tensorRow(r.Sig))
	}
	io.WriteStringToFileD(dirout, fnkey+ExtStiffness, stiff)
	io.WriteStringToFileD(dirout, fnkey+ExtPermittivity, perm)
	io.WriteStringToFileD(dirout, fnkey+ExtConductivity, cond)
}

func tensorRow(P tensor.Mat3) []float64 {
	r := TensorRecord(P)
	return r[:]
}

// keys returns the keys of the upper triangle of an n×n tensor; e.g. c11 c12 ... c66
func keys(key string, n int) (res []string) {
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			res = append(res, io.Sf("%s%d%d", key, i+1, j+1))
		}
	}
	return
}

func header(keys []string) (l string) {
	l = io.Sf("%5s", "id")
	for _, key := range keys {
		l += io.Sf("%24s", key)
	}
	return l + "\n"
}

func row(id int, vals []float64) (l string) {
	l = io.Sf("%5d", id)
	for _, v := range vals {
		l += io.Sf("%24.15e", v)
	}
	return l + "\n"
}
