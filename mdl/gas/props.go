// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// constants controlling the iterative property routines
var (
	NquadSimpson = 64   // number of Simpson subdivisions for cp(T) integrals
	FixPtMaxIt   = 100  // cap of the inverse-enthalpy fixed-point iteration
	FixPtTol     = 1e-6 // relative tolerance of the fixed-point iteration
	BracketMaxIt = 40   // cap of the root bracket expansion
)

// Evaluator evaluates thermodynamic property relations for one gas,
// either with the constant reference properties or with the cp(T)
// correlation. Evaluators are stateless with respect to solves and may
// be shared by concurrent callers.
type Evaluator struct {
	Mdl   *Model
	Const bool // use constant reference properties instead of cp(T)
}

// NewEvaluator returns a property evaluator for one gas model
func NewEvaluator(mdl *Model, constprops bool) *Evaluator {
	return &Evaluator{Mdl: mdl, Const: constprops}
}

// cpPoly evaluates the cp(T) correlation polynomial
func (o *Evaluator) cpPoly(T float64) float64 {
	a := o.Mdl.A
	return a[0] + a[1]*T + a[2]*T*T + a[3]*T*T*T
}

// Cp returns the specific heat at constant pressure [J/(kg・K)]
func (o *Evaluator) Cp(T float64) float64 {
	if o.Const {
		return o.Mdl.Cp0
	}
	return o.cpPoly(T)
}

// Cv returns the specific heat at constant volume [J/(kg・K)]
func (o *Evaluator) Cv(T float64) float64 {
	return o.Cp(T) - o.Mdl.R
}

// Kappa returns the isentropic exponent cp/cv [-]
func (o *Evaluator) Kappa(T float64) float64 {
	if o.Const {
		return o.Mdl.Kappa0
	}
	cp := o.cpPoly(T)
	return cp / (cp - o.Mdl.R)
}

// InRange tells whether T lies inside the validity range of the cp(T)
// correlation. Always true for the constant-property model.
func (o *Evaluator) InRange(T float64) bool {
	if o.Const {
		return true
	}
	return T >= o.Mdl.Tmin && T <= o.Mdl.Tmax
}

// SpecificVolume returns v = R・T/p [m³/kg]
func (o *Evaluator) SpecificVolume(p, T float64) float64 {
	return o.Mdl.R * T / p
}

// EnthalpyDiff returns Δh = ∫cp(T)dT from T1 to T2 [J/kg]. The integral
// is closed-form with constant cp and fixed-step Simpson quadrature
// otherwise (exact to roundoff for the cubic correlation).
func (o *Evaluator) EnthalpyDiff(T1, T2 float64) float64 {
	if o.Const {
		return o.Mdl.Cp0 * (T2 - T1)
	}
	if T1 == T2 {
		return 0
	}
	if T2 < T1 {
		return -o.EnthalpyDiff(T2, T1)
	}
	return num.QuadDiscreteSimpsonRF(T1, T2, NquadSimpson, func(t float64) float64 {
		return o.cpPoly(t)
	})
}

// EntropyDiff returns the ideal-gas entropy difference [J/(kg・K)]
//   Δs = ∫cp(T)/T dT − R・ln(p2/p1)
func (o *Evaluator) EntropyDiff(T1, T2, p1, p2 float64) (ds float64) {
	if o.Const {
		ds = o.Mdl.Cp0 * math.Log(T2/T1)
	} else if T1 != T2 {
		a, b := T1, T2
		sign := 1.0
		if b < a {
			a, b, sign = T2, T1, -1.0
		}
		ds = sign * num.QuadDiscreteSimpsonRF(a, b, NquadSimpson, func(t float64) float64 {
			return o.cpPoly(t) / t
		})
	}
	if p1 != p2 {
		ds -= o.Mdl.R * math.Log(p2/p1)
	}
	return
}

// CpMean returns the mean specific heat between T1 and T2 [J/(kg・K)]
func (o *Evaluator) CpMean(T1, T2 float64) float64 {
	if o.Const || T1 == T2 {
		return o.Cp(T1)
	}
	return o.EnthalpyDiff(T1, T2) / (T2 - T1)
}

// KappaMean returns the isentropic exponent from the mean cp between T1 and T2
func (o *Evaluator) KappaMean(T1, T2 float64) float64 {
	if o.Const {
		return o.Mdl.Kappa0
	}
	cpm := o.CpMean(T1, T2)
	return cpm / (cpm - o.Mdl.R)
}

// TforEnthalpy finds the temperature T such that EnthalpyDiff(Tref,T)
// equals dh. Closed-form with constant cp; otherwise a fixed-point
// iteration on the mean cp, capped at FixPtMaxIt.
func (o *Evaluator) TforEnthalpy(Tref, dh float64) (T float64, err error) {
	if o.Const {
		return Tref + dh/o.Mdl.Cp0, nil
	}
	T = Tref + dh/o.cpPoly(Tref)
	for it := 0; it < FixPtMaxIt; it++ {
		Tnew := Tref + dh/o.CpMean(Tref, T)
		if math.Abs(Tnew-T) < FixPtTol*math.Max(1.0, math.Abs(Tnew)) {
			return Tnew, nil
		}
		T = Tnew
	}
	return 0, chk.Err("inverse enthalpy iteration did not converge after %d iterations (Tref=%g, dh=%g, gas=%q)", FixPtMaxIt, Tref, dh, o.Mdl.Name)
}

// IsentropicT finds the exit temperature of an isentropic process from
// (T1,p1) to p2; i.e. the root of Δs(T2) = 0. Closed-form with constant
// properties:
//   T2 = T1・(p2/p1)^((κ-1)/κ)
// Brent's method otherwise, since Δs is strictly increasing in T2.
func (o *Evaluator) IsentropicT(T1, p1, p2 float64) (T2 float64, err error) {
	rp := p2 / p1
	if o.Const {
		k := o.Mdl.Kappa0
		return T1 * math.Pow(rp, (k-1.0)/k), nil
	}

	// bracket the root around the constant-kappa estimate
	k := o.Kappa(T1)
	est := T1 * math.Pow(rp, (k-1.0)/k)
	xa := math.Min(T1, est) * 0.9
	xb := math.Max(T1, est) * 1.1
	fa := o.EntropyDiff(T1, xa, p1, p2)
	fb := o.EntropyDiff(T1, xb, p1, p2)
	for it := 0; fa*fb > 0; it++ {
		if it >= BracketMaxIt {
			return 0, chk.Err("cannot bracket isentropic exit temperature (T1=%g, p2/p1=%g, gas=%q)", T1, rp, o.Mdl.Name)
		}
		xa *= 0.9
		xb *= 1.1
		fa = o.EntropyDiff(T1, xa, p1, p2)
		fb = o.EntropyDiff(T1, xb, p1, p2)
	}

	// solve
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("isentropic temperature root-finding failed: %v", r)
		}
	}()
	sol := num.NewBrent(func(t float64) float64 {
		return o.EntropyDiff(T1, t, p1, p2)
	}, nil)
	T2 = sol.Root(xa, xb)
	return
}
