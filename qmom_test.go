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

package sootlib

import (
	"fmt"
	"math"
	"testing"
)

// fixedInverter returns preset nodes for each number of moments.
type fixedInverter map[int][2][]float64

func (f fixedInverter) Invert(moments []float64) (w, x []float64, err error) {
	r, ok := f[len(moments)]
	if !ok {
		return nil, nil, fmt.Errorf("no result for %d moments: %w", len(moments), ErrNotRealizable)
	}
	return append([]float64(nil), r[0]...), append([]float64(nil), r[1]...), nil
}

func TestQMOMZeroMoments(t *testing.T) {
	q := QMOM{Inverter: fixedInverter{}}
	for _, m := range [][]float64{
		{0, 0, 0, 0},
		{1e15, 0, 0, 0},
		{-1, 1.e-6, 1.e-27, 1.e-48},
	} {
		n := q.Invert(m)
		if n.Order != 0 || len(n.Weights) != 2 || len(n.Abscissas) != 2 {
			t.Errorf("%v: order %d, %d weights", m, n.Order, len(n.Weights))
		}
		for i := range n.Weights {
			if n.Weights[i] != 0 || n.Abscissas[i] != 0 {
				t.Errorf("%v: node %d is not zero", m, i)
			}
		}
		if n.Moment(0) != 0 || n.FractionalMoment(2./3) != 0 {
			t.Errorf("%v: empty node set has moments", m)
		}
	}
}

func TestQMOMMonodisperse(t *testing.T) {
	for _, q := range []QMOM{{}, {Inverter: fixedInverter{}}} {
		n := q.Invert([]float64{1.e15, 1.e-6, 2.e-27, 5.e-48})
		if n.Order != 1 {
			t.Fatalf("order: have %d, want 1", n.Order)
		}
		if n.Weights[0] != 1.e15 || different(n.Abscissas[0], 1.e-21, testTolerance) {
			t.Errorf("node: w=%g, x=%g", n.Weights[0], n.Abscissas[0])
		}
		if n.Weights[1] != 0 || n.Abscissas[1] != 0 {
			t.Error("unused node should be zero")
		}
	}
}

func TestQMOMOrderReduction(t *testing.T) {
	q := QMOM{Inverter: fixedInverter{
		6: {{1, -1, 1}, {1.e-21, 2.e-21, 3.e-21}}, // negative weight
		4: {{0.4e15, 0.6e15}, {1.e-21, 2.e-21}},
	}}
	n := q.Invert([]float64{1, 1, 1, 1, 1, 1})
	if n.Order != 2 {
		t.Fatalf("order: have %d, want 2", n.Order)
	}
	want := []float64{0.4e15, 0.6e15, 0}
	for i, w := range want {
		if n.Weights[i] != w {
			t.Errorf("weight %d: have %g, want %g", i, n.Weights[i], w)
		}
	}
	if n.Abscissas[2] != 0 {
		t.Error("unused abscissa should be zero")
	}
}

func TestQMOMMaxAbscissa(t *testing.T) {
	inv := fixedInverter{4: {{0.5, 0.5}, {1.e-21, 2}}}
	n := (&QMOM{Inverter: inv}).Invert([]float64{1, 1, 1, 1})
	if n.Order != 1 {
		t.Errorf("abscissa above 1 kg: order %d, want 1", n.Order)
	}
	n = (&QMOM{Inverter: inv, MaxAbscissa: 10}).Invert([]float64{1, 1, 1, 1})
	if n.Order != 2 {
		t.Errorf("abscissa below MaxAbscissa: order %d, want 2", n.Order)
	}
}

func TestQMOMFewerNodes(t *testing.T) {
	q := QMOM{Inverter: fixedInverter{6: {{0.3, 0.7}, {0.1, 0.2}}}}
	n := q.Invert([]float64{1, 1.7, 3.1, 5.9, 11.5, 22.7})
	if n.Order != 2 {
		t.Errorf("order: have %d, want 2", n.Order)
	}
	if len(n.Weights) != 3 {
		t.Errorf("node slots: have %d, want 3", len(n.Weights))
	}
}

func TestNodesMoments(t *testing.T) {
	n := NewNodes(2)
	n.Weights[0], n.Weights[1] = 0.3, 0.7
	n.Abscissas[0], n.Abscissas[1] = 1, 2
	n.Order = 2
	for k, want := range []float64{1, 1.7, 3.1, 5.9} {
		if m := n.Moment(k); different(m, want, testTolerance) {
			t.Errorf("M%d: have %g, want %g", k, m, want)
		}
	}
	want := 0.3 + 0.7*math.Pow(2, 2./3)
	if m := n.FractionalMoment(2. / 3); different(m, want, testTolerance) {
		t.Errorf("M2/3: have %g, want %g", m, want)
	}
	n.Abscissas[1] = 0
	if m := n.FractionalMoment(2. / 3); m != 0 {
		t.Errorf("zero abscissa: have %g, want 0", m)
	}
}

func TestFractionalMomentReducedOrder(t *testing.T) {
	q := QMOM{Inverter: fixedInverter{4: {{0.4e15, 0.6e15}, {1.e-21, 2.e-21}}}}
	n := q.Invert([]float64{1.e15, 1.e-6, 1.e-27, 1.e-48, 1.e-69, 1.e-90})
	if n.Order != 2 || len(n.Weights) != 3 {
		t.Fatalf("order %d with %d slots, want 2 with 3", n.Order, len(n.Weights))
	}
	if m := n.FractionalMoment(2. / 3); m != 0 {
		t.Errorf("reduced order: have %g, want 0", m)
	}
	want := 0.4e15*1.e-21 + 0.6e15*2.e-21
	if m := n.Moment(1); different(m, want, testTolerance) {
		t.Errorf("M1 of the active nodes: have %g, want %g", m, want)
	}
}

