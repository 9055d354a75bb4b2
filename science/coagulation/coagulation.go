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

// Package coagulation contains collision rate functions for soot particle
// coagulation. Each kernel converts particle mass to the diameter of a
// sphere of the soot density.
package coagulation

import (
	"math"

	"github.com/EdinSmartLab/sootlib"
)

// None disables coagulation.
type None struct{}

// Beta always returns 0.
func (None) Beta(_ *sootlib.Env, _, _ float64) float64 { return 0 }

// FreeMolecular is the free-molecular collision rate function of
// Leung, Lindstedt, & Jones (1991), which assumes equal-size particles.
// The mean diameter of the two particles is used so that the kernel is
// symmetric.
type FreeMolecular struct{}

// ca is the agglomeration rate constant.
const ca = 9.0

// Beta returns the collision rate function [m³/#/s].
func (FreeMolecular) Beta(e *sootlib.Env, m1, m2 float64) float64 {
	if !(m1 > 0) || !(m2 > 0) || !(e.T > 0) {
		return 0
	}
	d := (e.Diameter(m1) + e.Diameter(m2)) / 2
	return 2 * ca * math.Sqrt(d*6*sootlib.Boltzmann*e.T/e.RhoSoot)
}

// Fuchs is the transition-regime collision rate function of Fuchs (1964)
// as given by Seinfeld & Pandis (2016), keeping the √2 factors of the
// 1964 formulation.
type Fuchs struct{}

// Beta returns the collision rate function [m³/#/s].
func (Fuchs) Beta(e *sootlib.Env, m1, m2 float64) float64 {
	if !(m1 > 0) || !(m2 > 0) || !(e.T > 0) || !(e.Mu > 0) {
		return 0
	}
	kT := sootlib.Boltzmann * e.T
	mfp := e.MeanFreePath()
	dp1, dp2 := e.Diameter(m1), e.Diameter(m2)

	// mean thermal speed
	c1 := math.Sqrt(8 * kT / (math.Pi * m1))
	c2 := math.Sqrt(8 * kT / (math.Pi * m2))

	// particle diffusivity
	d1 := kT * slipCorrection(mfp, dp1) / (3 * math.Pi * e.Mu * dp1)
	d2 := kT * slipCorrection(mfp, dp2) / (3 * math.Pi * e.Mu * dp2)

	// particle mean free path
	l1 := 8 * d1 / (math.Pi * c1)
	l2 := 8 * d2 / (math.Pi * c2)

	g1 := math.Sqrt2/(3*dp1*l1)*(math.Pow(dp1+l1, 3)-math.Pow(dp1*dp1+l1*l1, 1.5)) - math.Sqrt2*dp1
	g2 := math.Sqrt2/(3*dp2*l2)*(math.Pow(dp2+l2, 3)-math.Pow(dp2*dp2+l2*l2, 1.5)) - math.Sqrt2*dp2

	dsum := dp1 + dp2
	denom := dsum/(dsum+2*math.Sqrt(g1*g1+g2*g2)) +
		8/sootlib.EpsC*(d1+d2)/(math.Sqrt(c1*c1+c2*c2)*dsum)
	if !(denom > 0) {
		return 0
	}
	return 2 * math.Pi * (d1 + d2) * dsum / denom
}

// Frenklach is the harmonic mean of the free-molecular and continuum
// collision rate functions.
type Frenklach struct{}

// Beta returns the collision rate function [m³/#/s].
func (Frenklach) Beta(e *sootlib.Env, m1, m2 float64) float64 {
	if !(m1 > 0) || !(m2 > 0) || !(e.T > 0) {
		return 0
	}
	kT := sootlib.Boltzmann * e.T
	dp1, dp2 := e.Diameter(m1), e.Diameter(m2)

	m12 := m1 * m2 / (m1 + m2) // reduced mass
	fm := sootlib.EpsC * math.Sqrt(math.Pi*kT/(2*m12)) * (dp1 + dp2) * (dp1 + dp2)
	if !(e.Mu > 0) {
		return fm
	}

	mfp := e.MeanFreePath()
	c := 2 * kT / (3 * e.Mu) * (slipCorrection(mfp, dp1)/dp1 + slipCorrection(mfp, dp2)/dp2) * (dp1 + dp2)

	if fm+c == 0 {
		return 0
	}
	return fm * c / (fm + c)
}

// slipCorrection returns the Cunningham slip correction factor for a
// particle of diameter dp in a gas with mean free path mfp.
func slipCorrection(mfp, dp float64) float64 {
	kn := 2 * mfp / dp
	if kn == 0 {
		return 1
	}
	return 1 + kn*(1.257+0.4*math.Exp(-1.1/kn))
}
