// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/gobrayton/cycle"
	"github.com/cpmech/gobrayton/perf"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func solvedRegen(tst *testing.T) (*cycle.Result, perf.Summary) {
	cfg := cycle.NewConfig()
	cfg.P1 = 100e3
	cfg.T1 = 300
	cfg.T3 = 1300
	cfg.Pi = 5
	cfg.EtaC = 0.85
	cfg.EtaT = 0.9
	cfg.Regen = true
	cfg.RegenEff = 0.8
	res, err := cycle.Solve(cfg)
	if err != nil {
		tst.Fatalf("Solve failed: %v\n", err)
	}
	return res, perf.Evaluate(res)
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. console reports")

	res, sum := solvedRegen(tst)
	if chk.Verbose {
		StateTable(res)
		PerfReport(sum)
		pw, err := perf.ScaleToPower(sum, 10)
		if err != nil {
			tst.Errorf("ScaleToPower failed: %v\n", err)
			return
		}
		PowerReport(pw)
	}
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. xlsx export")

	res, sum := solvedRegen(tst)
	pts, err := perf.Sweep(res.Cfg, 2, 16, 8)
	if err != nil {
		tst.Errorf("Sweep failed: %v\n", err)
		return
	}
	if chk.Verbose {
		SweepTable(pts)
	}

	fn := io.Sf("%s/gobrayton_out02.xlsx", tst.TempDir())
	err = SaveXLSX(fn, res, sum, pts)
	if err != nil {
		tst.Errorf("SaveXLSX failed: %v\n", err)
		return
	}
	io.Pforan("file written: %s\n", fn)
}
