// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tensor implements fixed-size 3×3 and 6×6 matrices used to represent
// second-order tensors, rotations, and fourth-order tensors in Voigt notation
//
//  Voigt order of the 6×6 representation: 11, 22, 33, 23, 13, 12
//
//  Rotations follow the Bunge z-x-z convention:
//    R = Rz(φ1) ⋅ Rx(Φ) ⋅ Rz(φ2)
package tensor
