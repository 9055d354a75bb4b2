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

// Package haca contains the hydrogen-abstraction carbon-addition (HACA)
// surface chemistry of Appel, Bockhorn, & Frenklach (2000), Combust.
// Flame 121:122-136, with the steric factor parameters of Balthasar &
// Frenklach (2005), Combust. Flame 140:130-145. It is shared by the
// HACA growth and oxidation rate laws.
//
// The surface reactions are:
//
//	1. Cs-H + H   ⇌ Cs* + H₂
//	2. Cs-H + OH  ⇌ Cs* + H₂O
//	3. Cs*  + H   → Cs-H
//	4. Cs*  + C₂H₂ → Cs-H + H
//	5. Cs*  + O₂  → 2CO + products
//	6. Cs-H + OH  → CO + products
package haca

import (
	"math"

	"github.com/EdinSmartLab/sootlib"
)

// Sites is the number density of C-H sites on the soot surface
// [sites/cm²].
const Sites = 2.3e15

// gammaOH is the reaction efficiency of OH collisions with the surface
// (Neoh, 1981).
const gammaOH = 0.13

// rKcal is the gas constant [kcal/mol/K].
const rKcal = 1.9872036e-3

// Species lists the gas species the rates depend on.
var Species = []sootlib.Species{sootlib.C2H2, sootlib.O2, sootlib.H, sootlib.H2, sootlib.OH, sootlib.H2O}

// Rates holds per-site rate coefficients of the surface reactions
// multiplied by the gas concentrations [1/s]. Fn are forward and Rn
// reverse.
type Rates struct {
	F1, R1, F2, R2, F3, F4, F5, F6 float64
}

// Compute calculates the surface reaction rates for the gas state in e.
func Compute(e *sootlib.Env) Rates {
	if !(e.T > 0) {
		return Rates{}
	}
	t := e.T
	rt := rKcal * t
	// Rate constants are in cm³/mol/s; dividing by 1000 converts
	// kmol/m³ concentrations.
	r := Rates{
		F1: 4.2e13 * math.Exp(-13/rt) * e.Conc(sootlib.H) / 1000,
		R1: 3.9e12 * math.Exp(-11/rt) * e.Conc(sootlib.H2) / 1000,
		F2: 1e10 * math.Pow(t, 0.734) * math.Exp(-1.43/rt) * e.Conc(sootlib.OH) / 1000,
		R2: 3.68e8 * math.Pow(t, 1.139) * math.Exp(-17.1/rt) * e.Conc(sootlib.H2O) / 1000,
		F3: 2e13 * e.Conc(sootlib.H) / 1000,
		F4: 8e7 * math.Pow(t, 1.56) * math.Exp(-3.8/rt) * e.Conc(sootlib.C2H2) / 1000,
		F5: 2.2e12 * math.Exp(-7.5/rt) * e.Conc(sootlib.O2) / 1000,
	}
	// OH-surface collision frequency per site from kinetic theory.
	nOH := e.Conc(sootlib.OH) * sootlib.Avogadro
	mOH := e.Species.MolarMass(sootlib.OH) / sootlib.Avogadro
	if mOH > 0 {
		flux := nOH * math.Sqrt(sootlib.Boltzmann*t/(2*math.Pi*mOH))
		r.F6 = gammaOH * flux / (Sites * 1e4)
	}
	return r
}

// RadicalSites returns the steady-state number density of radical
// sites [sites/cm²], or 0 if no reaction consumes radical sites.
func (r Rates) RadicalSites() float64 {
	denom := r.R1 + r.R2 + r.F3 + r.F4 + r.F5
	if denom == 0 {
		return 0
	}
	return Sites * (r.F1 + r.F2) / denom
}

// Alpha returns the fraction of surface sites available for reaction,
// for soot with number density m0 [#/m³] and mass density m1 [kg/m³] at
// temperature t [K]. It returns 1 where the correlation is undefined or
// negative.
func Alpha(t, m0, m1 float64) float64 {
	if !(m0 > 0) || !(m1 > 0) {
		return 1
	}
	lg := math.Log10(m1 / m0)
	if lg == 0 {
		return 1
	}
	a := 33.167 - 0.0154*t
	b := -2.5786 + 0.00112*t
	alpha := math.Tanh(a/lg + b)
	if !(alpha >= 0) {
		return 1
	}
	return alpha
}
