// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package homog implements the Voigt, Reuss and Hill averages of tensors over ensembles of
// crystallographic orientations
//  References:
//   [1] Hill R (1952) The elastic behaviour of a crystalline aggregate. Proceedings of the
//       Physical Society, Section A, 65(5), 349-354
package homog

import (
	"errors"
	"fmt"

	"github.com/UMainedynamics/seidart/tensor"
)

var (
	// ErrShape is returned when an ensemble has no orientations
	ErrShape = errors.New("homog: ensemble of orientations is empty")

	// ErrSingular is returned when a tensor or the mean compliance cannot be inverted
	ErrSingular = tensor.ErrSingular
)

// Euler holds Bunge (z-x-z) Euler angles [rad]
type Euler [3]float64

// Rotation returns the rotation matrix corresponding to the angles
func (o Euler) Rotation() tensor.Mat3 {
	return tensor.RotZXZ(o[0], o[1], o[2])
}

// Ensemble holds the orientations of the crystals of an aggregate
type Ensemble []Euler

// Average6 holds the averages of a fourth-order tensor in Voigt notation
type Average6 struct {
	Voigt tensor.Mat6 // arithmetic mean of the rotated tensor
	Reuss tensor.Mat6 // inverse of the arithmetic mean of the rotated inverse
	Hill  tensor.Mat6 // (Voigt + Reuss) / 2
}

// Average3 holds the averages of a second-order tensor
type Average3 struct {
	Voigt tensor.Mat3 // arithmetic mean of the rotated tensor
	Reuss tensor.Mat3 // inverse of the arithmetic mean of the rotated inverse
	Hill  tensor.Mat3 // (Voigt + Reuss) / 2
}

// Stiffness averages the stiffness tensor C of a single crystal over the orientations in ens
//   Voigt: ⟨M⋅C⋅Mᵀ⟩                      with M = Bond(R)
//   Reuss: ⟨N⋅S⋅Nᵀ⟩⁻¹   with S = C⁻¹   and N = BondStrain(R) = M⁻ᵀ
// The compliance is rotated by the same R as the stiffness, i.e. (M⋅C⋅Mᵀ)⁻¹ = M⁻ᵀ⋅S⋅M⁻¹,
// so that one orientation gives Voigt = Reuss. This deviates from the literal M⁻¹⋅S⋅M⁻ᵀ
// (and Rᵀ⋅P⁻¹⋅R in SecondRank), which rotates the compliance by Rᵀ
func Stiffness(C tensor.Mat6, ens Ensemble) (res Average6, err error) {
	if len(ens) == 0 {
		return res, ErrShape
	}
	S, err := C.Inv()
	if err != nil {
		return res, fmt.Errorf("homog: stiffness of crystal: %w", err)
	}
	var sv, sr tensor.Mat6
	for _, e := range ens {
		R := e.Rotation()
		sv = sv.Add(tensor.Bond(R).Congruence(C))
		sr = sr.Add(tensor.BondStrain(R).Congruence(S))
	}
	n := float64(len(ens))
	res.Voigt = sv.Scale(1.0 / n).Symmetrise()
	res.Reuss, err = sr.Scale(1.0 / n).Inv()
	if err != nil {
		return res, fmt.Errorf("homog: mean compliance: %w", err)
	}
	res.Reuss = res.Reuss.Symmetrise()
	res.Hill = res.Voigt.Add(res.Reuss).Scale(0.5)
	return
}

// SecondRank averages the second-order tensor P of a single crystal over the orientations in ens
//   Voigt: ⟨R⋅P⋅Rᵀ⟩
//   Reuss: ⟨R⋅P⁻¹⋅Rᵀ⟩⁻¹   (same rotation as Voigt; see Stiffness)
func SecondRank(P tensor.Mat3, ens Ensemble) (res Average3, err error) {
	if len(ens) == 0 {
		return res, ErrShape
	}
	Pi, err := P.Inv()
	if err != nil {
		return res, fmt.Errorf("homog: tensor of crystal: %w", err)
	}
	var sv, sr tensor.Mat3
	for _, e := range ens {
		R := e.Rotation()
		sv = sv.Add(R.Congruence(P))
		sr = sr.Add(R.Congruence(Pi))
	}
	n := float64(len(ens))
	res.Voigt = sv.Scale(1.0 / n).Symmetrise()
	res.Reuss, err = sr.Scale(1.0 / n).Inv()
	if err != nil {
		return res, fmt.Errorf("homog: mean inverse: %w", err)
	}
	res.Reuss = res.Reuss.Symmetrise()
	res.Hill = res.Voigt.Add(res.Reuss).Scale(0.5)
	return
}
