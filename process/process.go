// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package process computes single thermodynamic process legs between
// the state points of a closed-loop gas-turbine cycle
package process

import (
	"github.com/cpmech/gobrayton/mdl/gas"
)

// tags identifying the role of a state point in the cycle
const (
	TagCompressorInlet   = "compressor-inlet"
	TagIntercoolerInlet  = "intercooler-inlet" // first-stage outlet
	TagIntercoolerOutlet = "intercooler-outlet"
	TagCompressorOutlet  = "compressor-outlet"
	TagRegenColdOutlet   = "regenerator-outlet" // high-pressure (cold) side
	TagTurbineInlet      = "turbine-inlet"      // combustor outlet
	TagTurbineOutlet     = "turbine-outlet"
	TagRegenHotOutlet    = "regenerator-exhaust-outlet" // low-pressure (hot) side
)

// State holds the thermodynamic quantities at one cycle state point.
// Enthalpy and entropy are relative to the compressor-inlet reference
// (h=0, s=0 at state 1). States are value objects owned by the caller.
type State struct {
	Idx int     // position in cycle order (1..N)
	Tag string  // role of this point; e.g. "compressor-inlet"
	P   float64 // pressure [Pa]
	T   float64 // temperature [K]
	V   float64 // specific volume [m³/kg]
	H   float64 // specific enthalpy [J/kg]
	S   float64 // specific entropy [J/(kg・K)]
}

// Inlet returns the cycle inlet state (enthalpy/entropy reference point)
func Inlet(ev *gas.Evaluator, p, T float64) (*State, error) {
	if p <= 0 {
		return nil, Verr(TagCompressorInlet, "pressure must be positive (p=%g Pa)", p)
	}
	if T <= 0 {
		return nil, Verr(TagCompressorInlet, "temperature must be positive (T=%g K)", T)
	}
	return &State{
		Idx: 1,
		Tag: TagCompressorInlet,
		P:   p,
		T:   T,
		V:   ev.SpecificVolume(p, T),
	}, nil
}

// Compress computes the outlet state of a compression leg from in.P to
// pout with isentropic efficiency etaIso (1 = ideal). The ideal exit
// temperature satisfies Δs = 0; with etaIso < 1 the actual work is the
// ideal work divided by etaIso and the exit temperature follows from
// the enthalpy relation.
func Compress(ev *gas.Evaluator, in *State, pout, etaIso float64, tag string) (*State, error) {
	if err := checkLeg(in, pout, etaIso, tag); err != nil {
		return nil, err
	}
	if pout <= in.P {
		return nil, Cerr(tag, "compression requires a pressure ratio above 1 (p_in=%g Pa, p_out=%g Pa)", in.P, pout)
	}
	return adiabatic(ev, in, pout, etaIso, tag, true)
}

// Expand computes the outlet state of an expansion leg from in.P down
// to pout with isentropic efficiency etaIso (1 = ideal). With
// etaIso < 1 the actual work is the ideal work times etaIso.
func Expand(ev *gas.Evaluator, in *State, pout, etaIso float64, tag string) (*State, error) {
	if err := checkLeg(in, pout, etaIso, tag); err != nil {
		return nil, err
	}
	if pout >= in.P {
		return nil, Cerr(tag, "expansion requires a pressure ratio above 1 (p_in=%g Pa, p_out=%g Pa)", in.P, pout)
	}
	return adiabatic(ev, in, pout, etaIso, tag, false)
}

// Isobaric computes the outlet state of an isobaric heat addition or
// rejection leg reaching the externally given temperature Tout.
func Isobaric(ev *gas.Evaluator, in *State, Tout float64, tag string) (*State, error) {
	if Tout <= 0 {
		return nil, Verr(tag, "temperature must be positive (T=%g K)", Tout)
	}
	dh := ev.EnthalpyDiff(in.T, Tout)
	ds := ev.EntropyDiff(in.T, Tout, in.P, in.P)
	return &State{
		Idx: in.Idx + 1,
		Tag: tag,
		P:   in.P,
		T:   Tout,
		V:   ev.SpecificVolume(in.P, Tout),
		H:   in.H + dh,
		S:   in.S + ds,
	}, nil
}

// adiabatic advances a compression or expansion leg. The entropy of the
// outlet equals the inlet entropy exactly when etaIso = 1.
func adiabatic(ev *gas.Evaluator, in *State, pout, etaIso float64, tag string, compression bool) (*State, error) {

	// ideal exit state
	Ts, err := ev.IsentropicT(in.T, in.P, pout)
	if err != nil {
		return nil, Nerr(tag, "%v", err)
	}
	dhs := ev.EnthalpyDiff(in.T, Ts)

	// ideal leg
	if etaIso == 1.0 {
		return &State{
			Idx: in.Idx + 1,
			Tag: tag,
			P:   pout,
			T:   Ts,
			V:   ev.SpecificVolume(pout, Ts),
			H:   in.H + dhs,
			S:   in.S, // isentropic
		}, nil
	}

	// efficiency-corrected leg: fix the enthalpy target and solve T
	var dh float64
	if compression {
		dh = dhs / etaIso // more work in
	} else {
		dh = dhs * etaIso // less work out
	}
	T, err := ev.TforEnthalpy(in.T, dh)
	if err != nil {
		return nil, Nerr(tag, "%v", err)
	}
	ds := ev.EntropyDiff(in.T, T, in.P, pout)
	return &State{
		Idx: in.Idx + 1,
		Tag: tag,
		P:   pout,
		T:   T,
		V:   ev.SpecificVolume(pout, T),
		H:   in.H + dh,
		S:   in.S + ds,
	}, nil
}

// checkLeg validates the shared inputs of compression/expansion legs
func checkLeg(in *State, pout, etaIso float64, tag string) error {
	if in.P <= 0 || in.T <= 0 {
		return Verr(tag, "inlet state must have positive pressure and temperature (p=%g Pa, T=%g K)", in.P, in.T)
	}
	if pout <= 0 {
		return Verr(tag, "outlet pressure must be positive (p=%g Pa)", pout)
	}
	if etaIso <= 0 || etaIso > 1 {
		return Verr(tag, "isentropic efficiency must be within (0,1] (η=%g)", etaIso)
	}
	return nil
}
