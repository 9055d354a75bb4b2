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

package coagulation

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

var kernels = []sootlib.Coagulator{FreeMolecular{}, Fuchs{}, Frenklach{}}

func TestBetaSymmetric(t *testing.T) {
	e := testEnv(t)
	masses := []float64{1.e-24, 1.e-22, 1.e-21, 5.e-20, 1.e-18}
	for _, k := range kernels {
		for _, m1 := range masses {
			for _, m2 := range masses {
				b12, b21 := k.Beta(e, m1, m2), k.Beta(e, m2, m1)
				if !(b12 > 0) {
					t.Errorf("%T: β(%g, %g) = %g", k, m1, m2, b12)
				}
				if different(b12, b21, 1.e-12) {
					t.Errorf("%T: β(%g, %g) = %g but β(%g, %g) = %g", k, m1, m2, b12, m2, m1, b21)
				}
			}
		}
	}
}

func TestBetaDegenerate(t *testing.T) {
	e := testEnv(t)
	for _, k := range append(kernels, None{}) {
		if b := k.Beta(e, 0, 1.e-21); b != 0 {
			t.Errorf("%T: zero mass: β = %g", k, b)
		}
		if b := k.Beta(e, -1.e-21, 1.e-21); b != 0 {
			t.Errorf("%T: negative mass: β = %g", k, b)
		}
	}
	if b := (None{}).Beta(e, 1.e-21, 1.e-21); b != 0 {
		t.Errorf("None: β = %g", b)
	}
	e.T = 0
	for _, k := range kernels {
		if b := k.Beta(e, 1.e-21, 1.e-21); b != 0 {
			t.Errorf("%T: zero temperature: β = %g", k, b)
		}
	}
}

func TestFrenklach(t *testing.T) {
	e := testEnv(t)
	m1, m2 := 1.e-21, 4.e-21
	b := Frenklach{}.Beta(e, m1, m2)

	e.Mu = 0
	fm := Frenklach{}.Beta(e, m1, m2)
	if !(fm > 0) {
		t.Fatalf("free-molecular limit: β = %g", fm)
	}
	// The harmonic mean is smaller than either regime.
	if !(b < fm) {
		t.Errorf("β = %g should be less than the free-molecular β = %g", b, fm)
	}
}

func TestFreeMolecular(t *testing.T) {
	e := testEnv(t)
	m := 1.e-21
	d := e.Diameter(m)
	want := 2 * 9 * math.Sqrt(d*6*sootlib.Boltzmann*e.T/1850)
	if b := (FreeMolecular{}).Beta(e, m, m); different(b, want, 1.e-12) {
		t.Errorf("have %g, want %g", b, want)
	}
}

func TestSlipCorrection(t *testing.T) {
	if c := slipCorrection(0, 1.e-9); c != 1 {
		t.Errorf("continuum limit: have %g, want 1", c)
	}
	if c := slipCorrection(1.e-7, 1.e-9); !(c > 100) {
		t.Errorf("free-molecular limit: have %g", c)
	}
}
