// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cycle solves the state-point sequence of closed-loop
// Brayton/Joule gas-turbine cycles: simple, regenerative, intercooled
// and combined, with ideal or efficiency-corrected turbomachinery
package cycle

import (
	"math"

	"github.com/cpmech/gobrayton/mdl/gas"
	"github.com/cpmech/gobrayton/process"
	"github.com/cpmech/gosl/io"
)

// Result holds the ordered state-point sequence of one solve, together
// with the specific energy terms of the cycle. Specific quantities are
// in [J/kg]; work terms are positive magnitudes. Results are created
// fresh per solve and owned exclusively by the caller.
type Result struct {
	Cfg    Config           // the configuration that produced this result
	States []*process.State // states in cycle order; States[0] is the compressor inlet

	WComp      float64 // specific compressor work (all stages) [J/kg]
	WComp1     float64 // first-stage compressor work [J/kg]
	WComp2     float64 // second-stage compressor work [J/kg] (0 without intercooling)
	WTurb      float64 // specific turbine work [J/kg]
	WNet       float64 // net specific work [J/kg]
	QIn        float64 // specific heat added [J/kg]
	QOut       float64 // specific heat rejected (incl. intercooler) [J/kg]
	QIntercool float64 // specific heat rejected in the intercooler [J/kg]
	QRegen     float64 // specific heat recovered in the regenerator [J/kg]
	Eta        float64 // thermal efficiency [-]
	Bwr        float64 // back-work ratio [-]

	Warnings []string // non-fatal warnings; e.g. correlation range excursions
}

// State returns the state point with the given tag, or nil
func (o *Result) State(tag string) *process.State {
	for _, s := range o.States {
		if s.Tag == tag {
			return s
		}
	}
	return nil
}

// warn appends a non-fatal warning to this result
func (o *Result) warn(msg string, prm ...interface{}) {
	o.Warnings = append(o.Warnings, io.Sf(msg, prm...))
}

// Solver solves cycles for one configuration and working fluid. The
// fluid data is read-only; one solver may run many solves, also from
// concurrent goroutines.
type Solver struct {
	Cfg Config
	Ev  *gas.Evaluator
}

// New checks the configuration, loads the working fluid and returns a
// new solver
func New(cfg Config) (*Solver, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	mdl, err := gas.New(cfg.Gas)
	if err != nil {
		return nil, process.Verr("fluid", "%v", err)
	}
	return &Solver{Cfg: cfg, Ev: gas.NewEvaluator(mdl, cfg.ConstProps)}, nil
}

// Solve computes all state points and energy terms in a single forward
// pass: compression (one or two stages), heat addition, expansion, and
// finally the regenerator legs, which depend on both the compressor and
// turbine exit states.
func Solve(cfg Config) (*Result, error) {
	o, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return o.Solve()
}

// Solve runs one solve of this solver's configuration
func (o *Solver) Solve() (res *Result, err error) {

	cfg := o.Cfg
	ev := o.Ev
	res = &Result{Cfg: cfg}

	// state 1: compressor inlet (h=0, s=0 reference)
	s1, err := process.Inlet(ev, cfg.P1, cfg.T1)
	if err != nil {
		return nil, err
	}
	o.push(res, s1)
	p2 := cfg.P1 * cfg.Pi

	// compression
	var sCompOut *process.State
	if cfg.Intercool {

		// split: equal geometric by default
		pmid := math.Sqrt(cfg.P1 * p2)
		if cfg.Split > 0 {
			pmid = cfg.P1 * cfg.Split
		}
		ticool := cfg.Ticool
		if ticool == 0 {
			ticool = cfg.T1
		}

		s2a, err := process.Compress(ev, s1, pmid, cfg.EtaC, process.TagIntercoolerInlet)
		if err != nil {
			return nil, err
		}
		o.push(res, s2a)

		s2b, err := process.Isobaric(ev, s2a, ticool, process.TagIntercoolerOutlet)
		if err != nil {
			return nil, err
		}
		o.push(res, s2b)

		s2c, err := process.Compress(ev, s2b, p2, cfg.EtaC, process.TagCompressorOutlet)
		if err != nil {
			return nil, err
		}
		o.push(res, s2c)

		res.WComp1 = s2a.H - s1.H
		res.WComp2 = s2c.H - s2b.H
		res.QIntercool = s2a.H - s2b.H
		sCompOut = s2c

	} else {
		s2, err := process.Compress(ev, s1, p2, cfg.EtaC, process.TagCompressorOutlet)
		if err != nil {
			return nil, err
		}
		o.push(res, s2)
		res.WComp1 = s2.H - s1.H
		sCompOut = s2
	}
	res.WComp = res.WComp1 + res.WComp2

	// heat addition to the turbine inlet temperature
	s3, err := process.Isobaric(ev, sCompOut, cfg.T3, process.TagTurbineInlet)
	if err != nil {
		return nil, err
	}
	o.push(res, s3)

	// expansion back to the inlet pressure (closed loop)
	s4, err := process.Expand(ev, s3, cfg.P1, cfg.EtaT, process.TagTurbineOutlet)
	if err != nil {
		return nil, err
	}
	o.push(res, s4)
	res.WTurb = s3.H - s4.H

	// regeneration: preheat the compressed gas with turbine exhaust,
	// bounded by the effectiveness (and the pinch point, if any)
	combIn, hotEnd := sCompOut, s4
	if cfg.Regen && cfg.RegenEff > 0 {
		s2r, s4r, err := o.regenerate(res, sCompOut, s4)
		if err != nil {
			return nil, err
		}
		if s2r != nil {
			combIn, hotEnd = s2r, s4r
			res.QRegen = s2r.H - sCompOut.H
		}
	}

	// energy terms
	res.QIn = s3.H - combIn.H
	res.QOut = hotEnd.H - s1.H + res.QIntercool
	res.WNet = res.WTurb - res.WComp
	res.Eta = res.WNet / res.QIn
	res.Bwr = res.WComp / res.WTurb

	// final ordering: regenerator cold outlet sits between compressor
	// exit and combustor; the hot outlet closes the sequence
	o.order(res)
	return res, nil
}

// regenerate computes the regenerator outlet states. Returns nil states
// (with a warning recorded) when no heat can be transferred, i.e. when
// the turbine exhaust is not hotter than the compressed gas plus pinch.
func (o *Solver) regenerate(res *Result, s2, s4 *process.State) (s2r, s4r *process.State, err error) {

	cfg := o.Cfg
	ev := o.Ev
	if s4.T <= s2.T+cfg.Pinch {
		res.warn("regeneration not possible: turbine exhaust (T=%g K) is not hotter than compressor exit (T=%g K) plus pinch (ΔT=%g K)", s4.T, s2.T, cfg.Pinch)
		return nil, nil, nil
	}

	// cold (high-pressure) side: actual rise = ε・maximum rise
	T2r := s2.T + cfg.RegenEff*(s4.T-s2.T)
	if cfg.Pinch > 0 {
		T2r = math.Min(T2r, s4.T-cfg.Pinch)
	}
	s2r, err = process.Isobaric(ev, s2, T2r, process.TagRegenColdOutlet)
	if err != nil {
		return nil, nil, err
	}

	// hot (low-pressure) side from the counter-flow enthalpy balance:
	// h4 - h(T4r) = h2r - h2 (fixed-point iteration with cp(T))
	T4r, err := ev.TforEnthalpy(s4.T, -(s2r.H - s2.H))
	if err != nil {
		return nil, nil, process.Nerr("regenerator", "%v", err)
	}
	s4r, err = process.Isobaric(ev, s4, T4r, process.TagRegenHotOutlet)
	if err != nil {
		return nil, nil, err
	}
	o.push(res, s2r)
	o.push(res, s4r)
	return
}

// push appends a state and records a range warning if the temperature
// lies outside the cp(T) correlation validity
func (o *Solver) push(res *Result, s *process.State) {
	res.States = append(res.States, s)
	if !o.Ev.InRange(s.T) {
		res.warn("state %q: T=%g K outside the cp(T) validity range [%g,%g] K of %s", s.Tag, s.T, o.Ev.Mdl.Tmin, o.Ev.Mdl.Tmax, o.Ev.Mdl.Name)
	}
}

// order sorts the states into cycle order and renumbers them
func (o *Solver) order(res *Result) {
	rank := map[string]int{
		process.TagCompressorInlet:   1,
		process.TagIntercoolerInlet:  2,
		process.TagIntercoolerOutlet: 3,
		process.TagCompressorOutlet:  4,
		process.TagRegenColdOutlet:   5,
		process.TagTurbineInlet:      6,
		process.TagTurbineOutlet:     7,
		process.TagRegenHotOutlet:    8,
	}
	sorted := make([]*process.State, len(res.States))
	copy(sorted, res.States)
	for i := 1; i < len(sorted); i++ { // insertion sort; the list is tiny
		for j := i; j > 0 && rank[sorted[j].Tag] < rank[sorted[j-1].Tag]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	for i, s := range sorted {
		s.Idx = i + 1
	}
	res.States = sorted
}
