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

// Package qmom contains moment inversion algorithms that calculate
// Gaussian quadratures from the raw moments of a distribution. All of
// them fulfil the sootlib.Inverter interface.
//
// Moments are normalized by the number density M0 and the mean
// abscissa M1/M0 before inversion so that soot moments, which span
// many orders of magnitude, remain well conditioned.
package qmom

import (
	"fmt"
	"math"
	"sort"

	"github.com/EdinSmartLab/sootlib"
	"gonum.org/v1/gonum/mat"
)

// Wheeler calculates quadratures with the Wheeler (1974) algorithm:
// recurrence coefficients of the orthogonal polynomials are calculated
// from the moments and the quadrature follows from the eigenvalues and
// eigenvectors of the Jacobi matrix (Golub & Welsch, 1969).
type Wheeler struct{}

// Invert returns len(moments)/2 weights and abscissas.
func (Wheeler) Invert(moments []float64) (weights, abscissas []float64, err error) {
	m, scale, err := normalize(moments)
	if err != nil {
		return nil, nil, err
	}
	a, b := wheeler(m)
	for k := 1; k < len(b); k++ {
		if !(b[k] > 0) {
			return nil, nil, fmt.Errorf("qmom: Wheeler: recurrence coefficient %d is %g: %w", k, b[k], sootlib.ErrNotRealizable)
		}
	}
	w, x, err := gaussQuadrature(a, b, m[0])
	if err != nil {
		return nil, nil, err
	}
	scale.apply(w, x)
	return w, x, nil
}

// ProductDifference calculates quadratures with the product-difference
// algorithm of Gordon (1968).
type ProductDifference struct{}

// Invert returns len(moments)/2 weights and abscissas.
func (ProductDifference) Invert(moments []float64) (weights, abscissas []float64, err error) {
	m, scale, err := normalize(moments)
	if err != nil {
		return nil, nil, err
	}
	n := len(m) / 2
	nl := 2 * n

	p := make([][]float64, nl+1)
	for i := range p {
		p[i] = make([]float64, nl+1)
	}
	p[0][0] = 1
	for i := 1; i <= nl; i++ {
		p[i-1][1] = math.Pow(-1, float64(i-1)) * m[i-1]
	}
	for j := 2; j <= nl; j++ {
		for i := 0; i < nl+2-j; i++ {
			p[i][j] = p[0][j-1]*p[i+1][j-2] - p[0][j-2]*p[i+1][j-1]
		}
	}

	zeta := make([]float64, nl)
	for i := 1; i < nl; i++ {
		d := p[0][i] * p[0][i-1]
		if d == 0 {
			return nil, nil, fmt.Errorf("qmom: product-difference: zero denominator at %d: %w", i, sootlib.ErrNotRealizable)
		}
		zeta[i] = p[0][i+1] / d
	}

	a := make([]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = zeta[2*i+1] + zeta[2*i]
	}
	for i := 1; i < n; i++ {
		b[i] = zeta[2*i] * zeta[2*i-1]
		if !(b[i] > 0) {
			return nil, nil, fmt.Errorf("qmom: product-difference: coefficient %d is %g: %w", i, b[i], sootlib.ErrNotRealizable)
		}
	}
	w, x, err := gaussQuadrature(a, b, m[0])
	if err != nil {
		return nil, nil, err
	}
	scale.apply(w, x)
	return w, x, nil
}

// AdaptiveWheeler is the adaptive Wheeler algorithm of Yuan & Fox
// (2011), J. Comput. Phys. 230:8216-8246. The number of nodes is
// reduced until the quadrature is well conditioned, so fewer than
// len(moments)/2 nodes may be returned.
type AdaptiveWheeler struct {
	// RMin is the smallest allowed ratio of the smallest to the
	// largest weight.
	RMin float64

	// EAbs is the smallest allowed distance between two abscissas,
	// relative to the largest abscissa.
	EAbs float64
}

// Invert returns up to len(moments)/2 weights and abscissas.
func (aw AdaptiveWheeler) Invert(moments []float64) (weights, abscissas []float64, err error) {
	m, scale, err := normalize(moments)
	if err != nil {
		return nil, nil, err
	}
	a, b := wheeler(m)

	// The largest order for which the moments are realizable.
	n := len(a)
	for k := 1; k < len(b); k++ {
		if !(b[k] > 0) {
			n = k
			break
		}
	}
	for ; n > 1; n-- {
		w, x, err := gaussQuadrature(a[:n], b[:n], m[0])
		if err != nil {
			continue
		}
		if aw.conditioned(w, x) {
			scale.apply(w, x)
			return w, x, nil
		}
	}
	w, x := []float64{m[0]}, []float64{a[0]}
	scale.apply(w, x)
	return w, x, nil
}

func (aw AdaptiveWheeler) conditioned(w, x []float64) bool {
	wmin, wmax := math.Inf(1), 0.
	for _, v := range w {
		wmin = math.Min(wmin, v)
		wmax = math.Max(wmax, v)
	}
	if !(wmax > 0) || wmin/wmax < aw.RMin {
		return false
	}
	xs := append([]float64(nil), x...)
	sort.Float64s(xs)
	xmax := math.Max(math.Abs(xs[0]), math.Abs(xs[len(xs)-1]))
	if xmax == 0 {
		return false
	}
	for i := 1; i < len(xs); i++ {
		if (xs[i]-xs[i-1])/xmax < aw.EAbs {
			return false
		}
	}
	return true
}

// wheeler returns the recurrence coefficients a and b of the monic
// polynomials orthogonal with respect to the distribution with moments
// m. b[0] is unused.
func wheeler(m []float64) (a, b []float64) {
	n := len(m) / 2
	nl := 2 * n
	sigma := make([][]float64, n+1)
	for i := range sigma {
		sigma[i] = make([]float64, nl)
	}
	copy(sigma[1], m[:nl])

	a = make([]float64, n)
	b = make([]float64, n)
	a[0] = m[1] / m[0]
	for k := 1; k < n; k++ {
		for l := k; l < nl-k; l++ {
			sigma[k+1][l] = sigma[k][l+1] - a[k-1]*sigma[k][l] - b[k-1]*sigma[k-1][l]
		}
		a[k] = sigma[k+1][k+1]/sigma[k+1][k] - sigma[k][k]/sigma[k][k-1]
		b[k] = sigma[k+1][k] / sigma[k][k-1]
	}
	return a, b
}

// gaussQuadrature returns the quadrature of the distribution with total
// weight m0 from the eigendecomposition of the Jacobi matrix with
// diagonal a and off-diagonal √b[1:].
func gaussQuadrature(a, b []float64, m0 float64) (w, x []float64, err error) {
	n := len(a)
	if n == 1 {
		return []float64{m0}, []float64{a[0]}, nil
	}
	j := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		j.SetSym(i, i, a[i])
		if i > 0 {
			j.SetSym(i, i-1, -math.Sqrt(b[i]))
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(j, true); !ok {
		return nil, nil, fmt.Errorf("qmom: eigendecomposition failed: %w", sootlib.ErrNotRealizable)
	}
	x = es.Values(nil)
	var v mat.Dense
	es.VectorsTo(&v)
	w = make([]float64, n)
	for i := range w {
		w[i] = m0 * v.At(0, i) * v.At(0, i)
	}
	return w, x, nil
}

// scaling records the normalization applied to a moment set.
type scaling struct {
	m0, xbar float64
}

func (s scaling) apply(w, x []float64) {
	for i := range w {
		w[i] *= s.m0
		x[i] *= s.xbar
	}
}

// normalize returns the moments of the distribution scaled to unit
// number and unit mean abscissa.
func normalize(moments []float64) ([]float64, scaling, error) {
	if len(moments) < 2 || len(moments)%2 != 0 {
		return nil, scaling{}, fmt.Errorf("qmom: %d moments; need an even number ≥2", len(moments))
	}
	if !(moments[0] > 0) || !(moments[1] > 0) {
		return nil, scaling{}, fmt.Errorf("qmom: M0=%g, M1=%g: %w", moments[0], moments[1], sootlib.ErrNotRealizable)
	}
	s := scaling{m0: moments[0], xbar: moments[1] / moments[0]}
	m := make([]float64, len(moments))
	for k, v := range moments {
		m[k] = v / s.m0 / math.Pow(s.xbar, float64(k))
	}
	return m, s, nil
}
