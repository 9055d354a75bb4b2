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

package qmom

import (
	"errors"
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

// momentsOf returns the first n moments of the distribution with the
// given weights and abscissas.
func momentsOf(w, x []float64, n int) []float64 {
	m := make([]float64, n)
	for k := range m {
		for i := range w {
			m[k] += w[i] * math.Pow(x[i], float64(k))
		}
	}
	return m
}

var testDistributions = []struct {
	name string
	w, x []float64
}{
	{"two nodes", []float64{0.3e15, 0.7e15}, []float64{1.e-21, 2.e-21}},
	{"three nodes", []float64{0.2e15, 0.5e15, 0.3e15}, []float64{5.e-22, 2.e-21, 8.e-21}},
	{"four nodes", []float64{1.e14, 4.e14, 3.e14, 2.e14}, []float64{1.e-22, 1.e-21, 4.e-21, 2.e-20}},
}

func TestInverters(t *testing.T) {
	for _, inv := range []sootlib.Inverter{Wheeler{}, ProductDifference{}, AdaptiveWheeler{RMin: 1.e-8, EAbs: 1.e-8}} {
		for _, d := range testDistributions {
			t.Run(d.name, func(t *testing.T) {
				moments := momentsOf(d.w, d.x, 2*len(d.w))
				w, x, err := inv.Invert(moments)
				if err != nil {
					t.Fatalf("%T: %v", inv, err)
				}
				if len(w) != len(d.w) || len(x) != len(d.x) {
					t.Fatalf("%T: have %d nodes, want %d", inv, len(w), len(d.w))
				}
				have := momentsOf(w, x, len(moments))
				for k := range moments {
					if different(have[k], moments[k], 1.e-6) {
						t.Errorf("%T: M%d: have %g, want %g", inv, k, have[k], moments[k])
					}
				}
			})
		}
	}
}

func TestInvertOneNode(t *testing.T) {
	for _, inv := range []sootlib.Inverter{Wheeler{}, ProductDifference{}, AdaptiveWheeler{}} {
		w, x, err := inv.Invert([]float64{1.e15, 1.e-6})
		if err != nil {
			t.Fatal(err)
		}
		if len(w) != 1 || different(w[0], 1.e15, 1.e-12) || different(x[0], 1.e-21, 1.e-12) {
			t.Errorf("%T: w=%v, x=%v", inv, w, x)
		}
	}
}

func TestNotRealizable(t *testing.T) {
	// M0·M2 < M1² has no real distribution.
	moments := []float64{1.e15, 1.e-6, 0.5e-27, 1.e-48}
	for _, inv := range []sootlib.Inverter{Wheeler{}, ProductDifference{}} {
		if _, _, err := inv.Invert(moments); !errors.Is(err, sootlib.ErrNotRealizable) {
			t.Errorf("%T: have error %v, want ErrNotRealizable", inv, err)
		}
	}
	for _, inv := range []sootlib.Inverter{Wheeler{}, ProductDifference{}, AdaptiveWheeler{}} {
		if _, _, err := inv.Invert([]float64{0, 0, 0, 0}); !errors.Is(err, sootlib.ErrNotRealizable) {
			t.Errorf("%T: zero moments: have error %v", inv, err)
		}
		if _, _, err := inv.Invert([]float64{1, 1, 1}); err == nil {
			t.Errorf("%T: odd number of moments should be an error", inv)
		}
	}
}

func TestAdaptiveWheelerReduction(t *testing.T) {
	aw := AdaptiveWheeler{RMin: 1.e-8, EAbs: 1.e-8}

	// Not realizable beyond one node.
	w, x, err := aw.Invert([]float64{1.e15, 1.e-6, 0.5e-27, 1.e-48})
	if err != nil {
		t.Fatal(err)
	}
	if len(w) != 1 || different(x[0], 1.e-21, 1.e-12) {
		t.Errorf("non-realizable: w=%v, x=%v", w, x)
	}

	// A negligible second node is dropped.
	moments := momentsOf([]float64{1.e15, 1}, []float64{1.e-21, 2.e-21}, 4)
	w, _, err = aw.Invert(moments)
	if err != nil {
		t.Fatal(err)
	}
	if len(w) != 1 {
		t.Errorf("ill-conditioned: have %d nodes, want 1", len(w))
	}

	// Realizable to two nodes of three.
	moments = momentsOf([]float64{0.5e15, 0.5e15}, []float64{1.e-21, 3.e-21}, 6)
	moments[4] *= 30. / 41
	w, x, err = aw.Invert(moments)
	if err != nil {
		t.Fatal(err)
	}
	if len(w) != 2 {
		t.Fatalf("partly realizable: have %d nodes, want 2", len(w))
	}
	have := momentsOf(w, x, 4)
	for k := range have {
		if different(have[k], moments[k], 1.e-6) {
			t.Errorf("M%d: have %g, want %g", k, have[k], moments[k])
		}
	}
}

func TestWheelerRecurrence(t *testing.T) {
	// Monic polynomials orthogonal to the two-point distribution at ±1
	// have a = 0 and b₁ = 1.
	a, b := wheeler([]float64{1, 0, 1, 0})
	if a[0] != 0 || a[1] != 0 || b[1] != 1 {
		t.Errorf("a=%v, b=%v", a, b)
	}
}
