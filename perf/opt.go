// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perf

import (
	"math"

	"github.com/cpmech/gobrayton/cycle"
	"github.com/cpmech/gobrayton/process"
	"github.com/cpmech/gosl/utl"
)

// Objective selects the quantity maximized by OptimalPressureRatio
type Objective int

const (

	// MaxNetWork maximizes the net specific work
	MaxNetWork Objective = iota

	// MaxEfficiency maximizes the thermal efficiency
	MaxEfficiency
)

// constants of the deterministic golden-section search
var (
	SearchTol   = 1e-6 // relative bracket tolerance
	SearchMaxIt = 200  // iteration cap
)

// OptimalPressureRatio finds the pressure ratio maximizing the chosen
// objective over the bracket [pilo,pihi]. The ideal simple cycle with
// constant properties and the net-work objective has the closed form
//   π_opt = (T3/T1)^(κ/(2(κ-1)))
// all other cases run a deterministic golden-section search (fixed
// tolerance, fixed bracket, capped iterations). cfg.Pi is ignored.
func OptimalPressureRatio(cfg cycle.Config, obj Objective, pilo, pihi float64) (piopt, etaopt float64, err error) {

	if pilo <= 1 || pihi <= pilo {
		return 0, 0, process.Cerr("pressure-ratio search", "bracket must satisfy 1 < π_lo < π_hi (got [%g,%g])", pilo, pihi)
	}

	// closed form
	simpleIdeal := cfg.ConstProps && !cfg.Regen && !cfg.Intercool && cfg.EtaC == 1 && cfg.EtaT == 1
	if simpleIdeal && obj == MaxNetWork {
		slv, err := cycle.New(cfg) // validates and loads the fluid
		if err != nil {
			return 0, 0, err
		}
		k := slv.Ev.Mdl.Kappa0
		piopt = math.Pow(cfg.T3/cfg.T1, k/(2.0*(k-1.0)))
		etaopt, err = solveEta(cfg, piopt)
		return piopt, etaopt, err
	}

	// golden-section search
	value := func(pi float64) (float64, error) {
		c := cfg
		c.Pi = pi
		res, err := cycle.Solve(c)
		if err != nil {
			return 0, err
		}
		if obj == MaxEfficiency {
			return res.Eta, nil
		}
		return res.WNet, nil
	}
	invphi := (math.Sqrt(5.0) - 1.0) / 2.0
	a, b := pilo, pihi
	c := b - invphi*(b-a)
	d := a + invphi*(b-a)
	fc, err := value(c)
	if err != nil {
		return 0, 0, err
	}
	fd, err := value(d)
	if err != nil {
		return 0, 0, err
	}
	it := 0
	for ; b-a > SearchTol*(1.0+b); it++ {
		if it >= SearchMaxIt {
			return 0, 0, process.Nerr("pressure-ratio search", "golden-section search did not converge after %d iterations (bracket [%g,%g])", SearchMaxIt, a, b)
		}
		if fc > fd {
			b, d, fd = d, c, fc
			c = b - invphi*(b-a)
			fc, err = value(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invphi*(b-a)
			fd, err = value(d)
		}
		if err != nil {
			return 0, 0, err
		}
	}
	piopt = (a + b) / 2.0
	etaopt, err = solveEta(cfg, piopt)
	return
}

// solveEta returns the thermal efficiency of cfg at pressure ratio pi
func solveEta(cfg cycle.Config, pi float64) (float64, error) {
	cfg.Pi = pi
	res, err := cycle.Solve(cfg)
	if err != nil {
		return 0, err
	}
	return res.Eta, nil
}

// SweepPoint holds one row of a pressure-ratio sweep (chart data)
type SweepPoint struct {
	Pi   float64 // pressure ratio [-]
	Eta  float64 // thermal efficiency [-]
	WNet float64 // net specific work [kJ/kg]
	Bwr  float64 // back-work ratio [-]
}

// Sweep solves the cycle over a uniform pressure-ratio grid. Every grid
// point is an independent solve; failures abort the sweep.
func Sweep(cfg cycle.Config, pilo, pihi float64, npts int) (pts []SweepPoint, err error) {
	if pilo <= 1 || pihi <= pilo {
		return nil, process.Cerr("pressure-ratio sweep", "range must satisfy 1 < π_lo < π_hi (got [%g,%g])", pilo, pihi)
	}
	if npts < 2 {
		return nil, process.Cerr("pressure-ratio sweep", "at least 2 points are required (got %d)", npts)
	}
	pts = make([]SweepPoint, npts)
	for i, pi := range utl.LinSpace(pilo, pihi, npts) {
		c := cfg
		c.Pi = pi
		res, err := cycle.Solve(c)
		if err != nil {
			return nil, err
		}
		pts[i] = SweepPoint{Pi: pi, Eta: res.Eta, WNet: res.WNet / 1e3, Bwr: res.Bwr}
	}
	return
}
