// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements report printing and export of solved cycles
package out

import (
	"github.com/cpmech/gobrayton/cycle"
	"github.com/cpmech/gobrayton/perf"
	"github.com/cpmech/gosl/io"
)

// unit helpers for the reports
func pascalToBar(p float64) float64     { return p / 1e5 }
func kelvinToCelsius(T float64) float64 { return T - 273.15 }

// StateTable prints the ordered state-point table of a solved cycle
func StateTable(res *cycle.Result) {
	io.Pf("\n%s (π=%g", res.Cfg.Gas, res.Cfg.Pi)
	if res.Cfg.ConstProps {
		io.Pf(", constant properties)\n")
	} else {
		io.Pf(", cp(T) correlation)\n")
	}
	io.Pf("%3s %-28s %10s %9s %9s %11s %10s %12s\n", "idx", "state", "p [bar]", "T [K]", "T [°C]", "v [m³/kg]", "h [kJ/kg]", "s [kJ/(kg・K)]")
	for _, s := range res.States {
		io.Pf("%3d %-28s %10.4f %9.2f %9.2f %11.5f %10.2f %12.5f\n",
			s.Idx, s.Tag, pascalToBar(s.P), s.T, kelvinToCelsius(s.T), s.V, s.H/1e3, s.S/1e3)
	}
	for _, w := range res.Warnings {
		io.PfYel("warning: %s\n", w)
	}
}

// PerfReport prints the performance summary of a solved cycle
func PerfReport(sum perf.Summary) {
	io.Pf("\nperformance\n")
	io.Pf("  thermal efficiency     η     = %10.4f\n", sum.Eta)
	io.Pf("  back-work ratio        bwr   = %10.4f\n", sum.Bwr)
	io.Pf("  compressor work        w_c   = %10.2f kJ/kg\n", sum.WComp)
	io.Pf("  turbine work           w_t   = %10.2f kJ/kg\n", sum.WTurb)
	io.Pf("  net work               w_net = %10.2f kJ/kg\n", sum.WNet)
	io.Pf("  heat added             q_in  = %10.2f kJ/kg\n", sum.QIn)
	io.Pf("  heat rejected          q_out = %10.2f kJ/kg\n", sum.QOut)
	io.Pf("  mean T of heat input   T_m   = %10.2f K\n", sum.TmIn)
	io.Pf("  mean T of heat removal T_m   = %10.2f K\n", sum.TmOut)
}

// PowerReport prints the mass-flow scaled terms
func PowerReport(pw perf.Power) {
	io.Pf("\npower @ mdot = %g kg/s\n", pw.Mdot)
	io.Pf("  compressor demand  P_c   = %12.2f kW\n", pw.PComp)
	io.Pf("  turbine output     P_t   = %12.2f kW\n", pw.PTurb)
	io.Pf("  net output         P_net = %12.2f kW\n", pw.PNet)
	io.Pf("  heat input rate    Q_in  = %12.2f kW\n", pw.QdotIn)
	io.Pf("  heat removal rate  Q_out = %12.2f kW\n", pw.QdotOut)
}

// SweepTable prints the pressure-ratio sweep (chart data)
func SweepTable(pts []perf.SweepPoint) {
	io.Pf("\n%10s %10s %14s %10s\n", "π", "η", "w_net [kJ/kg]", "bwr")
	for _, p := range pts {
		io.Pf("%10.4f %10.6f %14.3f %10.4f\n", p.Pi, p.Eta, p.WNet, p.Bwr)
	}
}
