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

import "math"

// State is a snapshot of the local gas state.
type State struct {
	T   float64 `desc:"Temperature" units:"K"`
	P   float64 `desc:"Pressure" units:"Pa"`
	Rho float64 `desc:"Gas density" units:"kg/m³"`
	MW  float64 `desc:"Mean molecular weight" units:"kg/kmol"`
	Mu  float64 `desc:"Dynamic viscosity" units:"kg/m/s"`

	// Y holds the species mass fractions, ordered like the host
	// species array.
	Y []float64
}

// Env is the context a rate law is evaluated in: the local gas state
// and the fixed soot properties.
type Env struct {
	State
	Species *SpeciesTable
	RhoSoot float64 `desc:"Soot density" units:"kg/m³"`

	// Cmin is the configured number of carbon atoms in a nucleated
	// particle.
	Cmin float64
}

// Conc returns the molar concentration of s [kmol/m³], or 0 if s is
// not in the species table.
func (e *Env) Conc(s Species) float64 {
	return e.ConcIndex(e.Species.Index(s))
}

// ConcIndex returns the molar concentration [kmol/m³] of the species
// with host index i.
func (e *Env) ConcIndex(i int) float64 {
	if i < 0 || i >= len(e.Y) {
		return 0
	}
	return e.Rho * e.Y[i] / e.Species.MW[i]
}

// PartialPressure returns the partial pressure of s [atm].
func (e *Env) PartialPressure(s Species) float64 {
	i := e.Species.Index(s)
	if i < 0 || i >= len(e.Y) {
		return 0
	}
	return e.Y[i] * e.MW / e.Species.MW[i] * e.P / Atmosphere
}

// Diameter returns the diameter [m] of a spherical soot particle of
// mass m [kg].
func (e *Env) Diameter(m float64) float64 {
	return math.Cbrt(6 * math.Abs(m) / (math.Pi * e.RhoSoot))
}

// MeanFreePath returns the mean free path of the gas [m].
func (e *Env) MeanFreePath() float64 {
	if !(e.Rho > 0) || !(e.T > 0) {
		return 0
	}
	return e.Mu / e.Rho * math.Sqrt(math.Pi*e.MW/(2*GasConstant*e.T))
}

// Kc returns the continuum coagulation coefficient [m³/s].
func (e *Env) Kc() float64 {
	if !(e.Mu > 0) {
		return 0
	}
	return 2 * Boltzmann * e.T / (3 * e.Mu)
}

// KcPrime returns the slip-correction term that multiplies Kc in the
// continuum coagulation rate.
func (e *Env) KcPrime() float64 {
	return 2 * 1.657 * e.MeanFreePath() * math.Cbrt(math.Pi/6*e.RhoSoot)
}

// Kfm returns the free-molecular coagulation coefficient.
func (e *Env) Kfm() float64 {
	return EpsC * math.Sqrt(math.Pi*Boltzmann*e.T/2) * math.Pow(6/(math.Pi*e.RhoSoot), 2./3)
}
