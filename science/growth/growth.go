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

// Package growth contains soot surface growth rate laws. All of them
// grow soot by acetylene addition, C₂H₂ → 2C(s) + H₂.
package growth

import (
	"math"

	"github.com/EdinSmartLab/sootlib"
	"github.com/EdinSmartLab/sootlib/science/haca"
)

// None disables surface growth.
type None struct{}

// Growth returns a zero rate.
func (None) Growth(_ *sootlib.Env, _, _ float64) sootlib.SurfaceRate {
	return sootlib.SurfaceRate{}
}

// Lindstedt is the size-independent acetylene growth rate of
// Lindstedt (1994), from Bockhorn (ed.), Soot Formation in Combustion,
// eq. 27.35.
type Lindstedt struct{}

// Requires returns the species needed by the rate.
func (Lindstedt) Requires() []sootlib.Species { return []sootlib.Species{sootlib.C2H2} }

// Growth returns the surface growth rate [kg/m²/s].
func (Lindstedt) Growth(e *sootlib.Env, _, _ float64) sootlib.SurfaceRate {
	r := sootlib.SurfaceRate{Ratios: acetyleneRatios(e)}
	if !(e.T > 0) {
		return r
	}
	r.Rate = 750 * math.Exp(-12100/e.T) * e.Conc(sootlib.C2H2) * 2 * sootlib.MWCarbon
	return r
}

// LeungLindstedt is the acetylene growth rate of Leung, Lindstedt, &
// Jones (1991), Combust. Flame 87:289-305, which depends on the total
// soot surface area.
type LeungLindstedt struct{}

// Requires returns the species needed by the rate.
func (LeungLindstedt) Requires() []sootlib.Species { return []sootlib.Species{sootlib.C2H2} }

// Growth returns the surface growth rate [kg/m²/s].
func (LeungLindstedt) Growth(e *sootlib.Env, m0, m1 float64) sootlib.SurfaceRate {
	r := sootlib.SurfaceRate{Ratios: acetyleneRatios(e)}
	if !(m0 > 0) || !(e.T > 0) {
		return r
	}
	// soot surface area per unit volume [m²/m³], assuming
	// monodisperse spheres.
	area := math.Pi * math.Pow(math.Abs(6/(math.Pi*e.RhoSoot)*m1/m0), 2./3) * m0
	if !(area > 0) {
		return r
	}
	r.Rate = 0.6e4 * math.Exp(-12100/e.T) * e.Conc(sootlib.C2H2) / math.Sqrt(area) * 2 * sootlib.MWCarbon
	return r
}

// HACA is the hydrogen-abstraction carbon-addition growth rate: the rate
// of acetylene addition to radical surface sites.
type HACA struct{}

// Requires returns the species needed by the rate.
func (HACA) Requires() []sootlib.Species { return haca.Species }

// Growth returns the surface growth rate [kg/m²/s].
func (HACA) Growth(e *sootlib.Env, m0, m1 float64) sootlib.SurfaceRate {
	r := sootlib.SurfaceRate{Ratios: acetyleneRatios(e)}
	rates := haca.Compute(e)
	alpha := haca.Alpha(e.T, m0, m1)
	rad := alpha * rates.RadicalSites() * 1e4 // sites/m²
	r.Rate = rates.F4 * rad / sootlib.Avogadro * 2 * sootlib.MWCarbon
	return r
}

func acetyleneRatios(e *sootlib.Env) sootlib.Ratios {
	sp := e.Species
	r := make(sootlib.Ratios)
	r.Set(sp.Index(sootlib.C2H2), -sp.MolarMass(sootlib.C2H2)/(2*sootlib.MWCarbon))
	r.Set(sp.Index(sootlib.H2), sp.MolarMass(sootlib.H2)/(2*sootlib.MWCarbon))
	return r
}
