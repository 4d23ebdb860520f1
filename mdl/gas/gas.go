// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements ideal-gas property models for working fluids
package gas

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Model holds the reference property data of one working fluid. The
// specific heat correlation is a cubic polynomial:
//   cp(T) = a0 + a1・T + a2・T² + a3・T³   [J/(kg・K)]  with T in [K]
// valid within [Tmin,Tmax]. Cp0 and Kappa0 are the reference constants
// used by the constant-property model.
type Model struct {
	Name   string     // key in the database; e.g. "air"
	Label  string     // display name; e.g. "Air"
	M      float64    // molar mass [g/mol]
	R      float64    // specific gas constant [J/(kg・K)]
	Kappa0 float64    // reference isentropic exponent [-]
	Cp0    float64    // reference cp [J/(kg・K)]
	A      [4]float64 // cp(T) polynomial coefficients
	Tmin   float64    // lower bound of cp(T) validity [K]
	Tmax   float64    // upper bound of cp(T) validity [K]
}

// Init initialises the numeric data of this model from parameters
func (o *Model) Init(prms utl.Params) {
	for _, p := range prms {
		switch p.N {
		case "M":
			o.M = p.V
		case "R":
			o.R = p.V
		case "kap0":
			o.Kappa0 = p.V
		case "cp0":
			o.Cp0 = p.V
		case "a0":
			o.A[0] = p.V
		case "a1":
			o.A[1] = p.V
		case "a2":
			o.A[2] = p.V
		case "a3":
			o.A[3] = p.V
		case "Tmin":
			o.Tmin = p.V
		case "Tmax":
			o.Tmax = p.V
		}
	}
}

// GetPrms returns the current parameters of this model
func (o Model) GetPrms() utl.Params {
	return utl.Params{
		&utl.P{N: "M", V: o.M},         // [g/mol]
		&utl.P{N: "R", V: o.R},         // [J/(kg・K)]
		&utl.P{N: "kap0", V: o.Kappa0}, // [-]
		&utl.P{N: "cp0", V: o.Cp0},     // [J/(kg・K)]
		&utl.P{N: "a0", V: o.A[0]},
		&utl.P{N: "a1", V: o.A[1]},
		&utl.P{N: "a2", V: o.A[2]},
		&utl.P{N: "a3", V: o.A[3]},
		&utl.P{N: "Tmin", V: o.Tmin}, // [K]
		&utl.P{N: "Tmax", V: o.Tmax}, // [K]
	}
}

// database holds all available gases; gasname => model.
// Reference data and cp(T) coefficients from published ideal-gas
// correlation tables.
var database = map[string]*Model{

	"air": {
		Name: "air", Label: "Air",
		M: 28.9647, R: 287.058, Kappa0: 1.4, Cp0: 1005.0,
		A:    [4]float64{1047.63, -0.372589, 9.45304e-4, -6.02409e-7},
		Tmin: 200, Tmax: 1600,
	},

	"helium": {
		Name: "helium", Label: "Helium",
		M: 4.0026, R: 2077.1, Kappa0: 1.667, Cp0: 5193.0,
		A:    [4]float64{5193.0, 0, 0, 0}, // cp nearly constant for helium
		Tmin: 200, Tmax: 2000,
	},

	"nitrogen": {
		Name: "nitrogen", Label: "Nitrogen",
		M: 28.0134, R: 296.8, Kappa0: 1.4, Cp0: 1040.0,
		A:    [4]float64{1041.0, -0.29, 0.0007, -5e-7},
		Tmin: 200, Tmax: 1600,
	},

	"carbon_dioxide": {
		Name: "carbon_dioxide", Label: "Carbon dioxide",
		M: 44.01, R: 188.9, Kappa0: 1.3, Cp0: 846.0,
		A:    [4]float64{820.0, 1.2, -0.0005, 7e-8},
		Tmin: 200, Tmax: 1600,
	},
}

// New returns a copy of the model of a registered gas
func New(name string) (*Model, error) {
	mdl, ok := database[name]
	if !ok {
		return nil, chk.Err("gas %q is not available in 'gas' database", name)
	}
	m := *mdl
	return &m, nil
}

// Available returns the sorted names of all registered gases
func Available() (names []string) {
	for name := range database {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
