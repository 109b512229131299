// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package calc implements the computation of effective tensors of many samples
package calc

import (
	"context"
	"fmt"
	"runtime"

	"github.com/UMainedynamics/seidart/check"
	"github.com/UMainedynamics/seidart/homog"
	"github.com/UMainedynamics/seidart/mdl/catalog"
	"github.com/UMainedynamics/seidart/mdl/material"
	"github.com/UMainedynamics/seidart/out"
	"github.com/UMainedynamics/seidart/tensor"
	"github.com/cpmech/gosl/chk"
	"golang.org/x/sync/errgroup"
)

// OrientationReader reads ensembles of crystal orientations
type OrientationReader interface {
	ReadAng(fn string) (homog.Ensemble, error)
}

// Outcome holds the result of one sample or the error that stopped it
type Outcome struct {
	Sample *material.Sample // input
	Result out.Result       // tensors; valid if Err == nil
	Err    error            // error
}

// Sample computes the effective tensors of one sample
func Sample(s *material.Sample, cat catalog.Catalog, rdr OrientationReader) (res out.Result, err error) {

	// single crystal
	crystal, err := material.Compute(s, cat)
	if err != nil {
		return
	}
	res = out.Result{Id: s.Id, Name: s.Class.String(), Rho: crystal.Rho, C: crystal.C, Eps: crystal.Eps, Sig: crystal.Sig}

	// aggregate
	if s.Anisotropic {
		if rdr == nil {
			return res, chk.Err("material %d: orientation reader is required for anisotropic materials", s.Id)
		}
		var ens homog.Ensemble
		ens, err = rdr.ReadAng(s.AngFile)
		if err != nil {
			return
		}
		var c homog.Average6
		c, err = homog.Stiffness(crystal.C, ens)
		if err != nil {
			return
		}
		res.C = c.Hill
		var p homog.Average3
		p, err = homog.SecondRank(crystal.Eps, ens)
		if err != nil {
			return
		}
		res.Eps = p.Hill
		if crystal.Sig != (tensor.Mat3{}) {
			p, err = homog.SecondRank(crystal.Sig, ens)
			if err != nil {
				return
			}
			res.Sig = p.Hill
		}
	}

	// diagnostics
	res.Warnings = append(crystal.Warnings, check.Stiffness(res.C)...)
	res.Warnings = append(res.Warnings, check.PositiveDefinite3(res.Eps)...)
	return
}

// Run computes all samples concurrently. workers ≤ 0 means the number of CPUs.
// A failing sample does not stop the others. After ctx is cancelled no further samples are started
// and the returned error is the context error.
func Run(ctx context.Context, samples []*material.Sample, cat catalog.Catalog, rdr OrientationReader, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	res := make([]Outcome, len(samples))
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, s := range samples {
		res[i].Sample = s
		if err := ctx.Err(); err != nil {
			res[i].Err = err
			continue
		}
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				res[i].Err = err
				return nil
			}
			res[i].Result, res[i].Err = Sample(s, cat, rdr)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, ctx.Err()
}

// Results returns the results of successful outcomes and the first error, if any
func Results(outcomes []Outcome) (res []out.Result, err error) {
	for _, o := range outcomes {
		if o.Err != nil {
			if err == nil {
				err = fmt.Errorf("material %d: %w", o.Sample.Id, o.Err)
			}
			continue
		}
		res = append(res, o.Result)
	}
	return
}
