// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the reading of simulation (.sim) input files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gobrayton/cycle"
	"github.com/cpmech/gobrayton/process"
	"github.com/cpmech/gosl/io"
)

// SweepData defines an optional pressure-ratio sweep
type SweepData struct {
	PiLo float64 `json:"pilo"` // lower pressure ratio
	PiHi float64 `json:"pihi"` // upper pressure ratio
	Npts int     `json:"npts"` // number of grid points
}

// Simulation holds all data read from a .sim file
type Simulation struct {

	// input
	Desc  string       `json:"desc"`  // description of this simulation
	Cycle cycle.Config `json:"cycle"` // cycle configuration
	Mdot  float64      `json:"mdot"`  // mass flow rate [kg/s]; 0 = no power scaling
	Sweep *SweepData   `json:"sweep"` // optional pressure-ratio sweep
	Xlsx  string       `json:"xlsx"`  // optional xlsx output filename

	// derived
	Dir   string // directory where the .sim file was read from
	FnKey string // filename key (no path, no extension)
}

// ReadSim reads a simulation file, fills defaults and validates the
// configuration before any computation begins
func ReadSim(dir, fn string) (*Simulation, error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, process.Verr("input file", "cannot read simulation file: %v", err)
	}

	// decode
	sim := new(Simulation)
	err = json.Unmarshal(b, sim)
	if err != nil {
		return nil, process.Verr("input file", "cannot parse %q: %v", fn, err)
	}
	sim.Dir = dir
	sim.FnKey = io.FnKey(fn)

	// defaults: absent efficiencies mean ideal components; absent
	// stages follow the intercooling flag. Pointer fields distinguish
	// absent keys from explicit zeros, which must reach validation.
	var aux struct {
		Cycle struct {
			EtaC   *float64 `json:"etac"`
			EtaT   *float64 `json:"etat"`
			Stages *int     `json:"stages"`
		} `json:"cycle"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return nil, process.Verr("input file", "cannot parse %q: %v", fn, err)
	}
	if sim.Cycle.Gas == "" {
		sim.Cycle.Gas = "air"
	}
	if aux.Cycle.EtaC == nil {
		sim.Cycle.EtaC = 1.0
	}
	if aux.Cycle.EtaT == nil {
		sim.Cycle.EtaT = 1.0
	}
	if aux.Cycle.Stages == nil {
		sim.Cycle.Stages = 1
		if sim.Cycle.Intercool {
			sim.Cycle.Stages = 2
		}
	}

	// validate
	if err := sim.Cycle.Check(); err != nil {
		return nil, err
	}
	if sim.Mdot < 0 {
		return nil, process.Verr("input file", "mass flow rate must be non-negative (got %g kg/s)", sim.Mdot)
	}
	if sim.Sweep != nil {
		if sim.Sweep.PiLo <= 1 || sim.Sweep.PiHi <= sim.Sweep.PiLo || sim.Sweep.Npts < 2 {
			return nil, process.Cerr("input file", "sweep must satisfy 1 < π_lo < π_hi and npts ≥ 2 (got [%g,%g] × %d)", sim.Sweep.PiLo, sim.Sweep.PiHi, sim.Sweep.Npts)
		}
	}
	return sim, nil
}
