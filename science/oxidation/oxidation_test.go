/*
Copyright © 2024 the sootlib authors.
This file is part of sootlib.

sootlib is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

sootlib is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with sootlib.  If not, see <http://www.gnu.org/licenses/>.
*/

package oxidation

import (
	"math"
	"testing"

	"github.com/EdinSmartLab/sootlib"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func testEnv(t *testing.T) *sootlib.Env {
	names := []string{"C2H2", "O2", "H", "H2", "OH", "H2O", "CO", "N2"}
	mw := []float64{26.038, 31.998, 1.008, 2.016, 17.007, 18.015, 28.010, 28.014}
	sp, err := sootlib.NewSpeciesTable(names, mw, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s := sootlib.State{
		T: 1800, P: 101325, MW: 29, Mu: 5.e-5,
		Y: []float64{0.02, 0.01, 1.e-4, 0.002, 0.001, 0.05, 0.03, 0.8869},
	}
	s.Rho = s.P * s.MW / (sootlib.GasConstant * s.T)
	return &sootlib.Env{State: s, Species: sp, RhoSoot: 1850, Cmin: 100}
}

var oxidizers = []sootlib.Oxidizer{LeungLindstedt{}, LeeNeoh{}, NSCNeoh{}, HACA{}}

func TestOxidation(t *testing.T) {
	e := testEnv(t)
	for _, o := range oxidizers {
		r := o.Oxidation(e, 1.e15, 1.e-6)
		if !(r.Rate > 0) {
			t.Errorf("%T: rate = %g", o, r.Rate)
		}
		// Ratios are per unit mass of soot formed, so removing soot
		// gives gas mass equal to the carbon removed.
		var sum float64
		for _, v := range r.Ratios {
			sum += v
		}
		if different(sum, -1, 1.e-4) {
			t.Errorf("%T: ratios sum to %g, want -1", o, sum)
		}
		if !(r.Ratios[1] >= 0) || !(r.Ratios[6] < 0) {
			t.Errorf("%T: O2 ratio %g should be ≥0 and CO ratio %g <0", o, r.Ratios[1], r.Ratios[6])
		}
	}
}

func TestLeungLindstedt(t *testing.T) {
	e := testEnv(t)
	c := e.Rho * 0.01 / 31.998
	want := 0.1e5 * math.Sqrt(e.T) * math.Exp(-19680/e.T) * c * sootlib.MWCarbon
	r := LeungLindstedt{}.Oxidation(e, 0, 0)
	if different(r.Rate, want, 1.e-12) {
		t.Errorf("have %g, want %g", r.Rate, want)
	}
	if len(r.Ratios) != 4 || r.Ratios[2] != 0 || r.Ratios[4] != 0 {
		t.Errorf("O2 oxidation should not involve OH or H: %v", r.Ratios)
	}
}

func TestNoOxidizer(t *testing.T) {
	e := testEnv(t)
	e.Y[1], e.Y[4] = 0, 0
	for _, o := range oxidizers {
		r := o.Oxidation(e, 1.e15, 1.e-6)
		if r.Rate != 0 {
			t.Errorf("%T: rate = %g", o, r.Rate)
		}
		if _, ok := o.(LeungLindstedt); ok {
			continue // fixed O₂ stoichiometry
		}
		for i, v := range r.Ratios {
			if v != 0 {
				t.Errorf("%T: ratio %d = %g", o, i, v)
			}
		}
	}
}

func TestOHOnly(t *testing.T) {
	e := testEnv(t)
	e.Y[1] = 0
	r := NSCNeoh{}.Oxidation(e, 1.e15, 1.e-6)
	want := neohOH(e)
	if different(r.Rate, want, 1.e-12) {
		t.Errorf("rate: have %g, want %g", r.Rate, want)
	}
	// C(s) + OH → CO + H
	if different(r.Ratios[4], 17.007/sootlib.MWCarbon, 1.e-12) {
		t.Errorf("OH ratio: %g", r.Ratios[4])
	}
	if r.Ratios[1] != 0 {
		t.Errorf("O2 ratio: %g", r.Ratios[1])
	}
}

func TestNone(t *testing.T) {
	if r := (None{}).Oxidation(testEnv(t), 1.e15, 1.e-6); r.Rate != 0 || len(r.Ratios) != 0 {
		t.Errorf("%+v", r)
	}
}
