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

package haca

import (
	"testing"

	"github.com/EdinSmartLab/sootlib"
)

func testEnv(t *testing.T) *sootlib.Env {
	names := []string{"C2H2", "O2", "H", "H2", "OH", "H2O", "N2"}
	mw := []float64{26.038, 31.998, 1.008, 2.016, 17.007, 18.015, 28.014}
	sp, err := sootlib.NewSpeciesTable(names, mw, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s := sootlib.State{
		T: 1800, P: 101325, MW: 29, Mu: 5.e-5,
		Y: []float64{0.02, 0.01, 1.e-4, 0.002, 0.001, 0.05, 0.9169},
	}
	s.Rho = s.P * s.MW / (sootlib.GasConstant * s.T)
	return &sootlib.Env{State: s, Species: sp, RhoSoot: 1850}
}

func TestCompute(t *testing.T) {
	r := Compute(testEnv(t))
	for i, v := range []float64{r.F1, r.R1, r.F2, r.R2, r.F3, r.F4, r.F5, r.F6} {
		if !(v > 0) {
			t.Errorf("rate %d = %g", i, v)
		}
	}
	chi := r.RadicalSites()
	if !(chi > 0) || !(chi < Sites) {
		t.Errorf("radical sites = %g should be between 0 and %g", chi, Sites)
	}
}

func TestComputeNoHydrogen(t *testing.T) {
	e := testEnv(t)
	e.Y[2], e.Y[4] = 0, 0 // H and OH
	r := Compute(e)
	if r.F1 != 0 || r.F2 != 0 || r.F6 != 0 {
		t.Errorf("abstraction rates should be zero: %+v", r)
	}
	if chi := r.RadicalSites(); chi != 0 {
		t.Errorf("radical sites = %g", chi)
	}
	if chi := (Rates{}).RadicalSites(); chi != 0 {
		t.Errorf("no reactions: radical sites = %g", chi)
	}
	e.T = 0
	if r := Compute(e); r != (Rates{}) {
		t.Errorf("zero temperature: %+v", r)
	}
}

func TestAlpha(t *testing.T) {
	for _, c := range []struct {
		t, m0, m1 float64
	}{
		{1200, 1.e15, 1.e-6},
		{1800, 1.e15, 1.e-6},
		{2400, 1.e15, 1.e-6},
		{1800, 1.e12, 1.e-6},
		{1800, 0, 0},
		{1800, 1, 1},
	} {
		a := Alpha(c.t, c.m0, c.m1)
		if !(a >= 0) || a > 1 {
			t.Errorf("%+v: α = %g should be in [0, 1]", c, a)
		}
	}
	if a := Alpha(1800, 0, 1.e-6); a != 1 {
		t.Errorf("no particles: α = %g, want 1", a)
	}
}
