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
	"math"

	"gonum.org/v1/gonum/floats"
)

// Inverter calculates a quadrature approximation of a distribution from
// its moments. Given 2n moments it returns up to n weights and as many
// abscissas that reproduce the moments. The results are not required to
// be non-negative; QMOM checks them.
type Inverter interface {
	Invert(moments []float64) (weights, abscissas []float64, err error)
}

// Nodes is a quadrature approximation of the soot particle-mass
// distribution. Weights and Abscissas have a fixed length of half the
// number of moments; only the first Order entries are in use and the
// rest are zero.
type Nodes struct {
	Weights   []float64 // #/m³
	Abscissas []float64 // kg
	Order     int
}

// NewNodes returns an empty node set with room for n nodes.
func NewNodes(n int) Nodes {
	return Nodes{
		Weights:   make([]float64, n),
		Abscissas: make([]float64, n),
	}
}

// Moment returns the integer moment Σ wᵢ·xᵢ^k of the active nodes.
func (n *Nodes) Moment(k int) float64 {
	xk := make([]float64, n.Order)
	for i := range xk {
		xk[i] = math.Pow(n.Abscissas[i], float64(k))
	}
	return floats.Dot(n.Weights[:n.Order], xk)
}

// FractionalMoment returns the moment Σ wᵢ·xᵢ^p over all node slots for
// any real p. It returns 0 if any weight or abscissa is zero, which
// includes every node set whose order was reduced.
func (n *Nodes) FractionalMoment(p float64) float64 {
	var m float64
	for i := range n.Weights {
		if n.Weights[i] == 0 || n.Abscissas[i] == 0 {
			return 0
		}
		m += n.Weights[i] * math.Pow(n.Abscissas[i], p)
	}
	return m
}

// QMOM turns moment sets into admissible quadrature nodes, reducing the
// quadrature order until the Inverter's result is physically valid.
type QMOM struct {
	// Inverter is used for orders above one. If it is nil, the
	// monodisperse approximation is always used.
	Inverter Inverter

	// MaxAbscissa is the largest admissible particle mass [kg].
	// Zero means 1 kg.
	MaxAbscissa float64
}

// Invert returns the quadrature nodes for moments, which should have an
// even length. If any moment is not positive, there are no particles and
// all nodes are zero. Otherwise the full order is tried first and, each
// time the result has a negative weight or abscissa or an abscissa above
// MaxAbscissa, the two highest moments are dropped and the inversion is
// retried. The two-moment (monodisperse) case always succeeds.
func (q *QMOM) Invert(moments []float64) Nodes {
	n := len(moments) / 2
	nodes := NewNodes(n)
	if n == 0 {
		return nodes
	}
	for _, m := range moments[:2*n] {
		if !(m > 0) {
			return nodes
		}
	}
	for order := n; order > 1; order-- {
		if q.Inverter == nil {
			break
		}
		w, x, err := q.Inverter.Invert(moments[:2*order])
		if err != nil || !q.admissible(w, x, order) {
			continue
		}
		copy(nodes.Weights, w)
		copy(nodes.Abscissas, x)
		nodes.Order = len(w)
		return nodes
	}
	nodes.Weights[0] = moments[0]
	nodes.Abscissas[0] = moments[1] / moments[0]
	nodes.Order = 1
	return nodes
}

func (q *QMOM) admissible(w, x []float64, order int) bool {
	if len(w) == 0 || len(w) > order || len(x) != len(w) {
		return false
	}
	bound := q.MaxAbscissa
	if bound == 0 {
		bound = 1
	}
	for i := range w {
		if !(w[i] >= 0) || !(x[i] >= 0) || x[i] > bound {
			return false
		}
	}
	return true
}
