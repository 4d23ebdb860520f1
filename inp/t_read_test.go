// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gobrayton/cycle"
	"github.com/cpmech/gobrayton/process"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. simple.sim")

	sim, err := ReadSim("data", "simple.sim")
	if err != nil {
		tst.Errorf("ReadSim failed: %v\n", err)
		return
	}
	io.Pforan("desc = %q\n", sim.Desc)
	chk.String(tst, sim.Cycle.Gas, "air")
	chk.String(tst, sim.FnKey, "simple")
	chk.Float64(tst, "p1", 1e-15, sim.Cycle.P1, 100e3)
	chk.Float64(tst, "π", 1e-15, sim.Cycle.Pi, 10)
	chk.Float64(tst, "mdot", 1e-15, sim.Mdot, 12.5)

	// defaults
	chk.Float64(tst, "ηc default", 1e-15, sim.Cycle.EtaC, 1.0)
	chk.Float64(tst, "ηt default", 1e-15, sim.Cycle.EtaT, 1.0)
	chk.Ints(tst, "stages default", []int{sim.Cycle.Stages}, []int{1})

	// the read configuration must be solvable
	res, err := cycle.Solve(sim.Cycle)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	chk.Float64(tst, "η ≈ 0.482", 1e-3, res.Eta, 0.482)
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. regen.sim and combined.sim")

	sim, err := ReadSim("data", "regen.sim")
	if err != nil {
		tst.Errorf("ReadSim failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ε", 1e-15, sim.Cycle.RegenEff, 0.8)
	chk.Float64(tst, "pinch", 1e-15, sim.Cycle.Pinch, 10)
	if sim.Sweep == nil {
		tst.Errorf("sweep section must be present\n")
		return
	}
	chk.Ints(tst, "sweep npts", []int{sim.Sweep.Npts}, []int{29})

	sim, err = ReadSim("data", "combined.sim")
	if err != nil {
		tst.Errorf("ReadSim failed: %v\n", err)
		return
	}
	chk.String(tst, sim.Cycle.Gas, "helium")
	chk.Ints(tst, "stages", []int{sim.Cycle.Stages}, []int{2})
	chk.String(tst, sim.Xlsx, "combined.xlsx")

	_, err = ReadSim("data", "missing.sim")
	if process.KindOf(err) != process.Validation {
		tst.Errorf("reading a missing file must fail with a validation error (got %v)\n", err)
		return
	}
}

func Test_read03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read03. explicit zeros reach validation")

	// an explicit "etac": 0 is not the absent-key default and must be
	// rejected, not coerced to the ideal value
	_, err := ReadSim("data", "zeroeff.sim")
	if process.KindOf(err) != process.Validation {
		tst.Errorf("explicit zero efficiency must fail with a validation error (got %v)\n", err)
		return
	}
	io.Pforan("err = %v\n", err)
}
