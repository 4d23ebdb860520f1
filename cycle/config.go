// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cycle

import (
	"github.com/cpmech/gobrayton/process"
)

// Config defines the process configuration of one cycle solve. A zero
// split/ticool selects the default behavior (equal geometric split,
// cooling back to the inlet temperature). Configs are value objects;
// the solver never mutates them.
type Config struct {

	// working fluid
	Gas        string `json:"gas"`        // name in the gas database; e.g. "air"
	ConstProps bool   `json:"constprops"` // constant reference properties instead of cp(T)

	// inlet conditions and pressure ratio
	P1 float64 `json:"p1"` // compressor inlet pressure [Pa]
	T1 float64 `json:"t1"` // compressor inlet temperature [K]
	T3 float64 `json:"t3"` // turbine inlet temperature [K]
	Pi float64 `json:"pi"` // overall pressure ratio [-]

	// component efficiencies
	EtaC float64 `json:"etac"` // compressor isentropic efficiency (0,1]
	EtaT float64 `json:"etat"` // turbine isentropic efficiency (0,1]

	// regeneration
	Regen    bool    `json:"regen"`    // regeneration active
	RegenEff float64 `json:"regeneff"` // regenerator effectiveness [0,1]
	Pinch    float64 `json:"pinch"`    // minimum regenerator temperature difference [K]

	// intercooling
	Intercool bool    `json:"intercool"` // two-stage compression with intercooling
	Stages    int     `json:"stages"`    // number of compression stages (1 or 2)
	Ticool    float64 `json:"ticool"`    // intercooler outlet temperature [K]; 0 = T1
	Split     float64 `json:"split"`     // first-stage pressure ratio; 0 = sqrt(Pi)
}

// NewConfig returns a configuration with ideal components and a single
// compression stage
func NewConfig() Config {
	return Config{
		Gas:    "air",
		EtaC:   1.0,
		EtaT:   1.0,
		Stages: 1,
	}
}

// Check validates this configuration. Logical inconsistencies and
// out-of-range inputs are reported before any computation begins.
func (o *Config) Check() error {

	// inlet state and turbine inlet temperature
	if o.P1 <= 0 {
		return process.Verr("inlet", "inlet pressure must be positive (p1=%g Pa)", o.P1)
	}
	if o.T1 <= 0 {
		return process.Verr("inlet", "inlet temperature must be positive (T1=%g K)", o.T1)
	}
	if o.T3 <= 0 {
		return process.Verr("combustor", "turbine inlet temperature must be positive (T3=%g K)", o.T3)
	}
	if o.T3 <= o.T1 {
		return process.Verr("combustor", "turbine inlet temperature must exceed the compressor inlet temperature (T1=%g K, T3=%g K)", o.T1, o.T3)
	}

	// pressure ratio
	if o.Pi <= 1 {
		return process.Cerr("compressor", "no compression occurs with a pressure ratio of %g; it must exceed 1", o.Pi)
	}

	// efficiencies
	if o.EtaC <= 0 || o.EtaC > 1 {
		return process.Verr("compressor", "isentropic efficiency must be within (0,1] (η=%g)", o.EtaC)
	}
	if o.EtaT <= 0 || o.EtaT > 1 {
		return process.Verr("turbine", "isentropic efficiency must be within (0,1] (η=%g)", o.EtaT)
	}

	// regeneration
	if o.Regen {
		if o.RegenEff < 0 || o.RegenEff > 1 {
			return process.Verr("regenerator", "effectiveness must be within [0,1] (ε=%g)", o.RegenEff)
		}
		if o.Pinch < 0 {
			return process.Verr("regenerator", "pinch point must be non-negative (ΔT=%g K)", o.Pinch)
		}
	}

	// compression staging
	switch o.Stages {
	case 1:
		if o.Intercool {
			return process.Cerr("intercooler", "intercooling requires two compression stages (got %d)", o.Stages)
		}
	case 2:
		if !o.Intercool {
			return process.Cerr("intercooler", "two compression stages require intercooling to be active")
		}
	default:
		return process.Cerr("compressor", "number of compression stages must be 1 or 2 (got %d)", o.Stages)
	}
	if o.Intercool {
		if o.Ticool < 0 {
			return process.Verr("intercooler", "intercooler outlet temperature must be non-negative (T=%g K; 0 selects the inlet temperature)", o.Ticool)
		}
		if o.Split != 0 && (o.Split <= 1 || o.Split >= o.Pi) {
			return process.Cerr("intercooler", "first-stage pressure ratio must lie within (1,π) (split=%g, π=%g)", o.Split, o.Pi)
		}
	}
	return nil
}
