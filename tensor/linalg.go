// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when a matrix cannot be inverted
var ErrSingular = errors.New("tensor: matrix is singular")

// invert inverts the n×n row-major matrix in data.
// Ill-conditioned (but non-singular) matrices are accepted.
func invert(n int, data []float64) ([]float64, error) {
	var ai mat.Dense
	err := ai.Inverse(mat.NewDense(n, n, data))
	if err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, ErrSingular
		}
	}
	return ai.RawMatrix().Data, nil
}

// eigsym returns the eigenvalues of the symmetric part of the n×n row-major matrix in data
func eigsym(n int, data []float64) ([]float64, error) {
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, (data[i*n+j]+data[j*n+i])/2)
		}
	}
	var es mat.EigenSym
	if !es.Factorize(sym, false) {
		return nil, chk.Err("eigen decomposition of %d×%d matrix failed", n, n)
	}
	return es.Values(nil), nil
}
