// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gobrayton/cycle"
	"github.com/cpmech/gobrayton/perf"
	"github.com/xuri/excelize/v2"
)

// SaveXLSX writes the state-point table, the performance summary and,
// when given, the pressure-ratio sweep to an xlsx workbook
func SaveXLSX(filename string, res *cycle.Result, sum perf.Summary, pts []perf.SweepPoint) error {

	f := excelize.NewFile()

	// States sheet
	states := "States"
	f.SetSheetName("Sheet1", states)
	headers := []string{"idx", "state", "p [Pa]", "T [K]", "v [m3/kg]", "h [J/kg]", "s [J/(kg K)]"}
	for j, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		f.SetCellValue(states, cell, h)
	}
	for i, s := range res.States {
		row := i + 2
		values := []interface{}{s.Idx, s.Tag, s.P, s.T, s.V, s.H, s.S}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(states, cell, v)
		}
	}

	// Performance sheet
	summary := "Performance"
	f.NewSheet(summary)
	rows := []struct {
		name  string
		value interface{}
	}{
		{"gas", sum.Gas},
		{"pressure ratio", sum.Pi},
		{"thermal efficiency", sum.Eta},
		{"back-work ratio", sum.Bwr},
		{"compressor work [kJ/kg]", sum.WComp},
		{"turbine work [kJ/kg]", sum.WTurb},
		{"net work [kJ/kg]", sum.WNet},
		{"heat added [kJ/kg]", sum.QIn},
		{"heat rejected [kJ/kg]", sum.QOut},
		{"mean T heat addition [K]", sum.TmIn},
		{"mean T heat rejection [K]", sum.TmOut},
	}
	for i, r := range rows {
		cellA, _ := excelize.CoordinatesToCellName(1, i+1)
		cellB, _ := excelize.CoordinatesToCellName(2, i+1)
		f.SetCellValue(summary, cellA, r.name)
		f.SetCellValue(summary, cellB, r.value)
	}

	// Sweep sheet (chart data for the plotting collaborators)
	if len(pts) > 0 {
		sweep := "Sweep"
		f.NewSheet(sweep)
		for j, h := range []string{"pi", "eta", "wnet [kJ/kg]", "bwr"} {
			cell, _ := excelize.CoordinatesToCellName(j+1, 1)
			f.SetCellValue(sweep, cell, h)
		}
		for i, p := range pts {
			row := i + 2
			for j, v := range []float64{p.Pi, p.Eta, p.WNet, p.Bwr} {
				cell, _ := excelize.CoordinatesToCellName(j+1, row)
				f.SetCellValue(sweep, cell, v)
			}
		}
	}

	return f.SaveAs(filename)
}
