// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_gas01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas01. database and reference constants")

	names := Available()
	chk.Ints(tst, "number of gases", []int{len(names)}, []int{4})

	air, err := New("air")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Float64(tst, "R air", 1e-15, air.R, 287.058)
	chk.Float64(tst, "kap0 air", 1e-15, air.Kappa0, 1.4)
	chk.Float64(tst, "cp0 air", 1e-15, air.Cp0, 1005.0)

	he, err := New("helium")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Float64(tst, "R helium", 1e-15, he.R, 2077.1)

	_, err = New("argon")
	if err == nil {
		tst.Errorf("New should have failed for unknown gas\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// parameter round trip
	var prms utl.Params = air.GetPrms()
	var m Model
	m.Init(prms)
	chk.Float64(tst, "prms R", 1e-15, m.R, air.R)
	chk.Float64(tst, "prms a1", 1e-15, m.A[1], air.A[1])
	chk.Float64(tst, "prms Tmax", 1e-15, m.Tmax, air.Tmax)
}

func Test_gas02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas02. cp, cv and kappa relations")

	for _, name := range Available() {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		ev := NewEvaluator(mdl, false)
		for _, T := range utl.LinSpace(mdl.Tmin, mdl.Tmax, 11) {
			cp := ev.Cp(T)
			cv := ev.Cv(T)
			kap := ev.Kappa(T)
			chk.Float64(tst, io.Sf("%s: cv = cp - R @ %.0fK", name, T), 1e-12, cv, cp-mdl.R)
			chk.Float64(tst, io.Sf("%s: kappa = cp/cv @ %.0fK", name, T), 1e-12, kap, cp/cv)
			if kap <= 1.0 {
				tst.Errorf("%s: kappa must exceed 1 (got %g at T=%g)\n", name, kap, T)
				return
			}
			if cp <= 0 {
				tst.Errorf("%s: cp must be positive (got %g at T=%g)\n", name, cp, T)
				return
			}
		}
	}
}

func Test_gas03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas03. enthalpy and entropy integrals")

	mdl, err := New("air")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	ev := NewEvaluator(mdl, false)

	// Simpson integral versus the exact antiderivative of the cubic
	T1, T2 := 300.0, 1400.0
	a := mdl.A
	prim := func(t float64) float64 {
		return a[0]*t + a[1]*t*t/2.0 + a[2]*t*t*t/3.0 + a[3]*t*t*t*t/4.0
	}
	dhExact := prim(T2) - prim(T1)
	dh := ev.EnthalpyDiff(T1, T2)
	chk.Float64(tst, "Δh Simpson vs exact", 1e-6*math.Abs(dhExact), dh, dhExact)

	// antisymmetry
	chk.Float64(tst, "Δh(T2,T1) = -Δh(T1,T2)", 1e-10, ev.EnthalpyDiff(T2, T1), -dh)

	// entropy: isobaric leg has no pressure term
	ds := ev.EntropyDiff(T1, T2, 1e5, 1e5)
	if ds <= 0 {
		tst.Errorf("Δs of isobaric heating must be positive (got %g)\n", ds)
		return
	}

	// constant-property entropy relation
	evc := NewEvaluator(mdl, true)
	dsc := evc.EntropyDiff(300, 579.2, 1e5, 1e6)
	dsAna := mdl.Cp0*math.Log(579.2/300.0) - mdl.R*math.Log(10.0)
	chk.Float64(tst, "Δs constant cp", 1e-12, dsc, dsAna)
}

func Test_gas04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas04. isentropic exit temperature and inverse enthalpy")

	mdl, err := New("air")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	// constant properties: closed form T2 = T1・π^((κ-1)/κ)
	evc := NewEvaluator(mdl, true)
	T2, err := evc.IsentropicT(300, 1e5, 1e6)
	if err != nil {
		tst.Errorf("IsentropicT failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T2 isentropic (const)", 1e-10, T2, 300.0*math.Pow(10.0, 0.4/1.4))

	// temperature-dependent: the root must nullify Δs
	ev := NewEvaluator(mdl, false)
	T2, err = ev.IsentropicT(300, 1e5, 1e6)
	if err != nil {
		tst.Errorf("IsentropicT failed: %v\n", err)
		return
	}
	ds := ev.EntropyDiff(300, T2, 1e5, 1e6)
	chk.Float64(tst, "Δs at root", 1e-6, ds, 0)
	io.Pforan("T2 (cp(T)) = %v K\n", T2)

	// expansion direction
	T4, err := ev.IsentropicT(1400, 1e6, 1e5)
	if err != nil {
		tst.Errorf("IsentropicT failed: %v\n", err)
		return
	}
	if T4 >= 1400 {
		tst.Errorf("expansion must cool the gas (got T4=%g)\n", T4)
		return
	}

	// inverse enthalpy round trip
	dh := ev.EnthalpyDiff(300, 800)
	T, err := ev.TforEnthalpy(300, dh)
	if err != nil {
		tst.Errorf("TforEnthalpy failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T for Δh round trip", 1e-3, T, 800)

	// range flag
	if ev.InRange(2000) {
		tst.Errorf("T=2000K must be outside the air correlation range\n")
		return
	}
	if !evc.InRange(2000) {
		tst.Errorf("constant-property model has no range restriction\n")
		return
	}
}
