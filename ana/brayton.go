// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides closed-form solutions of the ideal simple
// Brayton cycle with constant properties, used to verify the solver
package ana

import "math"

// IdealCycle holds the data of an ideal simple cycle with constant
// properties: isentropic turbomachinery, no regeneration, one stage
type IdealCycle struct {
	T1    float64 // compressor inlet temperature [K]
	T3    float64 // turbine inlet temperature [K]
	Kappa float64 // isentropic exponent [-]
	Cp    float64 // specific heat [J/(kg・K)]
}

// expo returns (κ-1)/κ
func (o IdealCycle) expo() float64 {
	return (o.Kappa - 1.0) / o.Kappa
}

// T2 returns the compressor exit temperature for pressure ratio pi
func (o IdealCycle) T2(pi float64) float64 {
	return o.T1 * math.Pow(pi, o.expo())
}

// T4 returns the turbine exit temperature for pressure ratio pi
func (o IdealCycle) T4(pi float64) float64 {
	return o.T3 * math.Pow(pi, -o.expo())
}

// Eta returns the thermal efficiency
//   η = 1 - π^(-(κ-1)/κ)
func (o IdealCycle) Eta(pi float64) float64 {
	return 1.0 - math.Pow(pi, -o.expo())
}

// WNet returns the net specific work [J/kg]
func (o IdealCycle) WNet(pi float64) float64 {
	return o.Cp * ((o.T3 - o.T4(pi)) - (o.T2(pi) - o.T1))
}

// QIn returns the specific heat added [J/kg]
func (o IdealCycle) QIn(pi float64) float64 {
	return o.Cp * (o.T3 - o.T2(pi))
}

// OptPi returns the pressure ratio maximizing the net specific work
//   π_opt = (T3/T1)^(κ/(2(κ-1)))
func (o IdealCycle) OptPi() float64 {
	return math.Pow(o.T3/o.T1, o.Kappa/(2.0*(o.Kappa-1.0)))
}
