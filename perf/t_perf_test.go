// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perf

import (
	"math"
	"testing"

	"github.com/cpmech/gobrayton/cycle"
	"github.com/cpmech/gobrayton/process"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func refConfig() cycle.Config {
	cfg := cycle.NewConfig()
	cfg.ConstProps = true
	cfg.P1 = 100e3
	cfg.T1 = 300
	cfg.T3 = 1400
	cfg.Pi = 10
	return cfg
}

func Test_perf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perf01. summary of the reference cycle")

	res, err := cycle.Solve(refConfig())
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	sum := Evaluate(res)

	chk.Float64(tst, "η ≈ 0.482", 1e-3, sum.Eta, 0.482)
	chk.Float64(tst, "w_net [kJ/kg]", 1e-12, sum.WNet, res.WNet/1e3)
	chk.Float64(tst, "q balance", 1e-10, sum.QIn-sum.QOut, sum.WNet)
	chk.Float64(tst, "bwr = w_c/w_t", 1e-12, sum.Bwr, sum.WComp/sum.WTurb)

	// mean temperature of heat addition lies between T2 and T3
	if sum.TmIn <= 579 || sum.TmIn >= 1400 {
		tst.Errorf("T_m of heat addition out of band (got %g)\n", sum.TmIn)
		return
	}
	io.Pforan("TmIn=%.1f K  TmOut=%.1f K\n", sum.TmIn, sum.TmOut)
}

func Test_perf02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perf02. optimal pressure ratio: closed form")

	cfg := refConfig()
	piopt, etaopt, err := OptimalPressureRatio(cfg, MaxNetWork, 2, 30)
	if err != nil {
		tst.Errorf("OptimalPressureRatio failed: %v\n", err)
		return
	}
	ana := math.Pow(1400.0/300.0, 1.4/(2.0*0.4))
	chk.Float64(tst, "π_opt = (T3/T1)^(κ/(2(κ-1)))", 1e-10, piopt, ana)
	chk.Float64(tst, "η at π_opt", 1e-10, etaopt, 1.0-math.Pow(piopt, -0.4/1.4))
	io.Pforan("π_opt=%.4f  η_opt=%.4f\n", piopt, etaopt)
}

func Test_perf03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perf03. optimal pressure ratio: golden-section search")

	// identical physics to the closed-form case (ε=0 regenerator is a
	// pass-through) but routed through the numeric search
	cfg := refConfig()
	cfg.Regen = true
	cfg.RegenEff = 0
	piopt, _, err := OptimalPressureRatio(cfg, MaxNetWork, 2, 30)
	if err != nil {
		tst.Errorf("OptimalPressureRatio failed: %v\n", err)
		return
	}
	ana := math.Pow(1400.0/300.0, 1.4/(2.0*0.4))
	chk.Float64(tst, "numeric π_opt vs closed form", 1e-3, piopt, ana)

	// determinism
	piopt2, _, err := OptimalPressureRatio(cfg, MaxNetWork, 2, 30)
	if err != nil {
		tst.Errorf("OptimalPressureRatio failed: %v\n", err)
		return
	}
	chk.Float64(tst, "bit-for-bit reproducible", 0, piopt, piopt2)

	// non-ideal components: interior efficiency maximum
	cfg = refConfig()
	cfg.EtaC = 0.85
	cfg.EtaT = 0.88
	piopt, etaopt, err := OptimalPressureRatio(cfg, MaxEfficiency, 2, 40)
	if err != nil {
		tst.Errorf("OptimalPressureRatio failed: %v\n", err)
		return
	}
	io.Pforan("non-ideal: π_opt=%.3f  η_opt=%.4f\n", piopt, etaopt)
	if piopt <= 2.5 || piopt >= 39.5 {
		tst.Errorf("efficiency maximum must be interior (got π=%g)\n", piopt)
		return
	}

	// invalid bracket
	_, _, err = OptimalPressureRatio(refConfig(), MaxNetWork, 1, 10)
	if process.KindOf(err) != process.Configuration {
		tst.Errorf("bracket starting at 1 must fail with a configuration error (got %v)\n", err)
		return
	}
}

func Test_perf04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perf04. pressure-ratio sweep")

	pts, err := Sweep(refConfig(), 2, 20, 10)
	if err != nil {
		tst.Errorf("Sweep failed: %v\n", err)
		return
	}
	chk.Ints(tst, "number of points", []int{len(pts)}, []int{10})
	chk.Float64(tst, "first π", 1e-15, pts[0].Pi, 2)
	chk.Float64(tst, "last π", 1e-15, pts[9].Pi, 20)

	// ideal simple cycle: η grows with π
	for i := 1; i < len(pts); i++ {
		if pts[i].Eta <= pts[i-1].Eta {
			tst.Errorf("η must grow with π for the ideal cycle\n")
			return
		}
	}

	_, err = Sweep(refConfig(), 5, 2, 10)
	if process.KindOf(err) != process.Configuration {
		tst.Errorf("inverted range must fail with a configuration error (got %v)\n", err)
		return
	}
}

func Test_perf05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perf05. mass-flow scaling")

	res, err := cycle.Solve(refConfig())
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	sum := Evaluate(res)

	pw, err := ScaleToPower(sum, 12.5)
	if err != nil {
		tst.Errorf("ScaleToPower failed: %v\n", err)
		return
	}
	chk.Float64(tst, "P_net = w_net・mdot", 1e-10, pw.PNet, sum.WNet*12.5)
	chk.Float64(tst, "P_net = P_turb - P_comp", 1e-8, pw.PNet, pw.PTurb-pw.PComp)

	_, err = ScaleToPower(sum, math.NaN())
	if process.KindOf(err) != process.Validation {
		tst.Errorf("NaN mass flow must fail with a validation error (got %v)\n", err)
		return
	}
	_, err = ScaleToPower(sum, -3)
	if process.KindOf(err) != process.Validation {
		tst.Errorf("negative mass flow must fail with a validation error (got %v)\n", err)
		return
	}
}
