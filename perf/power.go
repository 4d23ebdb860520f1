// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perf

import (
	"math"

	"github.com/cpmech/gobrayton/process"
)

// Power holds the mass-flow scaled terms of a cycle [kW]
type Power struct {
	Mdot    float64 // mass flow rate [kg/s]
	PComp   float64 // compressor power demand [kW]
	PTurb   float64 // turbine power output [kW]
	PNet    float64 // net power output [kW]
	QdotIn  float64 // heat input rate [kW]
	QdotOut float64 // heat rejection rate [kW]
}

// ScaleToPower scales the specific terms of a summary to power for the
// given mass flow rate: [kJ/kg]・[kg/s] = [kW]. Stateless.
func ScaleToPower(sum Summary, mdot float64) (Power, error) {
	if math.IsNaN(mdot) || math.IsInf(mdot, 0) || mdot <= 0 {
		return Power{}, process.Verr("mass-flow scaler", "mass flow rate must be positive and finite (got %g kg/s)", mdot)
	}
	for _, w := range []float64{sum.WComp, sum.WTurb, sum.WNet, sum.QIn, sum.QOut} {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return Power{}, process.Verr("mass-flow scaler", "specific terms must be finite")
		}
	}
	return Power{
		Mdot:    mdot,
		PComp:   sum.WComp * mdot,
		PTurb:   sum.WTurb * mdot,
		PNet:    sum.WNet * mdot,
		QdotIn:  sum.QIn * mdot,
		QdotOut: sum.QOut * mdot,
	}, nil
}
