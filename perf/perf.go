// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package perf derives performance metrics from solved cycles:
// efficiency, back-work ratio, mean temperatures, optimal pressure
// ratio, and mass-flow scaling to power
package perf

import (
	"math"

	"github.com/cpmech/gobrayton/cycle"
	"github.com/cpmech/gobrayton/process"
)

// Summary holds the derived performance metrics of one solved cycle.
// Specific energy terms are in [kJ/kg].
type Summary struct {
	Gas   string  // working fluid name
	Pi    float64 // overall pressure ratio [-]
	Eta   float64 // thermal efficiency [-]
	Bwr   float64 // back-work ratio [-]
	WComp float64 // specific compressor work [kJ/kg]
	WTurb float64 // specific turbine work [kJ/kg]
	WNet  float64 // net specific work [kJ/kg]
	QIn   float64 // specific heat added [kJ/kg]
	QOut  float64 // specific heat rejected [kJ/kg]
	TmIn  float64 // mean thermodynamic temperature of heat addition [K]
	TmOut float64 // mean thermodynamic temperature of heat rejection [K]

	Warnings []string // carried over from the solve
}

// Evaluate derives the performance summary of a solved cycle
func Evaluate(res *cycle.Result) (sum Summary) {
	sum.Gas = res.Cfg.Gas
	sum.Pi = res.Cfg.Pi
	sum.Eta = res.Eta
	sum.Bwr = res.Bwr
	sum.WComp = res.WComp / 1e3
	sum.WTurb = res.WTurb / 1e3
	sum.WNet = res.WNet / 1e3
	sum.QIn = res.QIn / 1e3
	sum.QOut = res.QOut / 1e3
	sum.Warnings = res.Warnings

	// mean temperatures T_m = ΔT / ln(T_hi/T_lo) of the heating and
	// cooling legs (combustor inlet may be the regenerator outlet)
	combIn := res.State(process.TagRegenColdOutlet)
	if combIn == nil {
		combIn = res.State(process.TagCompressorOutlet)
	}
	hotEnd := res.State(process.TagRegenHotOutlet)
	if hotEnd == nil {
		hotEnd = res.State(process.TagTurbineOutlet)
	}
	s1 := res.State(process.TagCompressorInlet)
	s3 := res.State(process.TagTurbineInlet)
	sum.TmIn = logMeanT(combIn.T, s3.T)
	sum.TmOut = logMeanT(s1.T, hotEnd.T)
	return
}

// logMeanT returns the logarithmic mean of two temperatures
func logMeanT(Tlo, Thi float64) float64 {
	if Tlo == Thi {
		return Tlo
	}
	return (Thi - Tlo) / math.Log(Thi/Tlo)
}
