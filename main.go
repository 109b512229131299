// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/UMainedynamics/seidart/calc"
	"github.com/UMainedynamics/seidart/inp"
	"github.com/UMainedynamics/seidart/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)
	workers := io.ArgToInt(2, 0)
	doprof := io.ArgToInt(3, 0)
	io.Verbose = verbose

	// message
	if verbose {
		io.PfWhite("\nSeidart -- effective material tensors for wave propagation\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"number of workers; 0=project value", "workers", workers,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.Prof(doprof > 1, !verbose)()
	}

	// project
	prj, err := inp.ReadProject(fnamepath)
	if err != nil {
		chk.Panic("cannot read project:\n%v", err)
	}
	samples, err := prj.Materials()
	if err != nil {
		chk.Panic("invalid project:\n%v", err)
	}
	if workers == 0 {
		workers = prj.Data.Workers
	}

	// run
	outcomes, err := calc.Run(context.Background(), samples, prj.Cat, inp.AngReader{Dir: prj.Dir}, workers)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// report
	for _, o := range outcomes {
		if o.Err != nil {
			io.PfRed("material %3d (%v): %v\n", o.Sample.Id, o.Sample.Class, o.Err)
			continue
		}
		io.Pfgreen("material %3d (%v): ρ = %g\n", o.Result.Id, o.Result.Name, o.Result.Rho)
		for _, w := range o.Result.Warnings {
			io.Pfyel("    %v\n", w)
		}
	}

	// results
	results, err := calc.Results(outcomes)
	out.Write(prj.Data.DirOut, prj.Key, results)
	if verbose {
		io.Pf("\nfiles <%s/%s.{stiffness,permittivity,conductivity}> written\n", prj.Data.DirOut, prj.Key)
	}
	if err != nil {
		chk.Panic("%v", err)
	}
}
