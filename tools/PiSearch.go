// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"path/filepath"

	"github.com/cpmech/gobrayton/cycle"
	"github.com/cpmech/gobrayton/inp"
	"github.com/cpmech/gobrayton/out"
	"github.com/cpmech/gobrayton/perf"
	"github.com/cpmech/gosl/io"
)

// PiSearch locates the optimal pressure ratio of the cycle described by
// a .sim file and prints the sweep around it. Run with:
//   go run PiSearch.go simfile objective pilo pihi npts
func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	fnamepath, fnkey := io.ArgToFilename(0, "../inp/data/regen", ".sim", true)
	objective := io.ArgToString(1, "wnet")
	pilo := io.ArgToFloat(2, 2.0)
	pihi := io.ArgToFloat(3, 40.0)
	npts := io.ArgToInt(4, 39)

	io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"simulation filename", "fnamepath", fnamepath,
		"objective: wnet or eta", "objective", objective,
		"lower pressure ratio", "pilo", pilo,
		"upper pressure ratio", "pihi", pihi,
		"number of sweep points", "npts", npts,
	))

	// simulation data
	sim, err := inp.ReadSim(filepath.Dir(fnamepath), fnkey+".sim")
	if err != nil {
		io.PfRed("cannot read simulation file: %v\n", err)
		return
	}

	// objective
	obj := perf.MaxNetWork
	if objective == "eta" {
		obj = perf.MaxEfficiency
	}

	// search
	piopt, etaopt, err := perf.OptimalPressureRatio(sim.Cycle, obj, pilo, pihi)
	if err != nil {
		io.PfRed("search failed: %v\n", err)
		return
	}
	io.PfGreen("\noptimal pressure ratio: π = %g (η = %g)\n", piopt, etaopt)

	// solve at the optimum
	cfg := sim.Cycle
	cfg.Pi = piopt
	res, err := cycle.Solve(cfg)
	if err != nil {
		io.PfRed("solution at optimum failed: %v\n", err)
		return
	}
	sum := perf.Evaluate(res)
	out.StateTable(res)
	out.PerfReport(sum)

	// sweep around the optimum
	pts, err := perf.Sweep(sim.Cycle, pilo, pihi, npts)
	if err != nil {
		io.PfRed("sweep failed: %v\n", err)
		return
	}
	out.SweepTable(pts)

	// xlsx export
	if sim.Xlsx != "" {
		fn := filepath.Join(sim.Dir, sim.Xlsx)
		err = out.SaveXLSX(fn, res, sum, pts)
		if err != nil {
			io.PfRed("xlsx export failed: %v\n", err)
			return
		}
		io.Pf("file <%s> written\n", fn)
	}
}
