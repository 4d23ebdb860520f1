// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gobrayton/cycle"
	"github.com/cpmech/gobrayton/inp"
	"github.com/cpmech/gobrayton/out"
	"github.com/cpmech/gobrayton/perf"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
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
	fnamepath, fnkey := io.ArgToFilename(0, "inp/data/simple", ".sim", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGobrayton Version 1.0 -- Go Brayton Cycle Solver\n")
		io.Pf("Copyright 2017 The Gobrayton Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// simulation data
	dir := filepath.Dir(fnamepath)
	sim, err := inp.ReadSim(dir, fnkey+".sim")
	if err != nil {
		chk.Panic("cannot read simulation file:\n%v", err)
	}
	if verbose && sim.Desc != "" {
		io.Pf("%s\n", sim.Desc)
	}

	// solve cycle
	res, err := cycle.Solve(sim.Cycle)
	if err != nil {
		chk.Panic("cycle solution failed:\n%v", err)
	}
	sum := perf.Evaluate(res)
	if verbose {
		out.StateTable(res)
		out.PerfReport(sum)
	}

	// mass-flow scaling
	if sim.Mdot > 0 {
		pw, err := perf.ScaleToPower(sum, sim.Mdot)
		if err != nil {
			chk.Panic("power scaling failed:\n%v", err)
		}
		if verbose {
			out.PowerReport(pw)
		}
	}

	// pressure-ratio sweep
	var pts []perf.SweepPoint
	if sim.Sweep != nil {
		pts, err = perf.Sweep(sim.Cycle, sim.Sweep.PiLo, sim.Sweep.PiHi, sim.Sweep.Npts)
		if err != nil {
			chk.Panic("pressure-ratio sweep failed:\n%v", err)
		}
		if verbose {
			out.SweepTable(pts)
		}
	}

	// xlsx export
	if sim.Xlsx != "" {
		fn := filepath.Join(sim.Dir, sim.Xlsx)
		err = out.SaveXLSX(fn, res, sum, pts)
		if err != nil {
			chk.Panic("xlsx export failed:\n%v", err)
		}
		if verbose {
			io.Pf("\nfile <%s> written\n", fn)
		}
	}
}
