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

// Package oxidation contains soot surface oxidation rate laws. The
// rates are positive mass removal rates. Oxidation forms a negative
// amount of soot, so species that oxidation consumes have positive
// ratios and products have negative ratios.
//
// Oxidation proceeds by
//
//	C + ½O₂ → CO
//	C + OH  → CO + H
package oxidation

import (
	"math"

	"github.com/EdinSmartLab/sootlib"
	"github.com/EdinSmartLab/sootlib/science/haca"
)

// None disables oxidation.
type None struct{}

// Oxidation returns a zero rate.
func (None) Oxidation(_ *sootlib.Env, _, _ float64) sootlib.SurfaceRate {
	return sootlib.SurfaceRate{}
}

// LeungLindstedt is the O₂ oxidation rate of Leung, Lindstedt, & Jones
// (1991), Combust. Flame 87:289-305.
type LeungLindstedt struct{}

// Requires returns the species needed by the rate.
func (LeungLindstedt) Requires() []sootlib.Species { return []sootlib.Species{sootlib.O2} }

// Oxidation returns the oxidation rate [kg/m²/s].
func (LeungLindstedt) Oxidation(e *sootlib.Env, _, _ float64) sootlib.SurfaceRate {
	r := sootlib.SurfaceRate{Ratios: ratios(e, 1, 0)}
	if !(e.T > 0) {
		return r
	}
	r.Rate = 0.1e5 * math.Sqrt(e.T) * math.Exp(-19680/e.T) * e.Conc(sootlib.O2) * sootlib.MWCarbon
	return r
}

// LeeNeoh combines the O₂ oxidation rate of Lee et al. (1962), Combust.
// Flame 6:137-145, with the OH oxidation rate of Neoh (1981).
type LeeNeoh struct{}

// Requires returns the species needed by the rate.
func (LeeNeoh) Requires() []sootlib.Species { return []sootlib.Species{sootlib.O2, sootlib.OH} }

// Oxidation returns the oxidation rate [kg/m²/s].
func (LeeNeoh) Oxidation(e *sootlib.Env, _, _ float64) sootlib.SurfaceRate {
	if !(e.T > 0) {
		return sootlib.SurfaceRate{Ratios: ratios(e, 0, 0)}
	}
	rO2 := 1.085e4 * e.PartialPressure(sootlib.O2) / math.Sqrt(e.T) * math.Exp(-1.977824e4/e.T) / 1000
	return combine(e, rO2, neohOH(e))
}

// NSCNeoh combines the two-site O₂ oxidation rate of Nagle &
// Strickland-Constable (1962) with the OH oxidation rate of Neoh (1981).
type NSCNeoh struct{}

// Requires returns the species needed by the rate.
func (NSCNeoh) Requires() []sootlib.Species { return []sootlib.Species{sootlib.O2, sootlib.OH} }

// Oxidation returns the oxidation rate [kg/m²/s].
func (NSCNeoh) Oxidation(e *sootlib.Env, _, _ float64) sootlib.SurfaceRate {
	if !(e.T > 0) {
		return sootlib.SurfaceRate{Ratios: ratios(e, 0, 0)}
	}
	pO2 := e.PartialPressure(sootlib.O2)
	kA := 20 * math.Exp(-15098/e.T)
	kB := 4.46e-3 * math.Exp(-7650/e.T)
	kT := 1.51e5 * math.Exp(-48817/e.T)
	kz := 21.3 * math.Exp(2063/e.T)

	var rO2 float64
	if pO2 > 0 {
		x := 1 / (1 + kT/(kB*pO2)) // fraction of reactive A sites
		// g C/cm²/s: mol/cm²/s times 12 g/mol; ×10 converts to kg/m²/s.
		rO2 = (kA*pO2*x/(1+kz*pO2) + kB*pO2*(1-x)) * sootlib.MWCarbon * 10
	}
	return combine(e, rO2, neohOH(e))
}

// HACA is the oxidation rate of the hydrogen-abstraction
// carbon-addition surface chemistry: O₂ attack on radical sites, which
// removes two carbon atoms, and OH attack on C-H sites.
type HACA struct{}

// Requires returns the species needed by the rate.
func (HACA) Requires() []sootlib.Species { return haca.Species }

// Oxidation returns the oxidation rate [kg/m²/s].
func (HACA) Oxidation(e *sootlib.Env, m0, m1 float64) sootlib.SurfaceRate {
	rates := haca.Compute(e)
	alpha := haca.Alpha(e.T, m0, m1)
	rad := alpha * rates.RadicalSites() * 1e4 // sites/m²
	h := alpha * haca.Sites * 1e4             // sites/m²
	rO2 := 2 * rates.F5 * rad / sootlib.Avogadro * sootlib.MWCarbon
	rOH := rates.F6 * h / sootlib.Avogadro * sootlib.MWCarbon
	return combine(e, rO2, rOH)
}

// neohOH returns the OH oxidation rate of Neoh (1981) [kg/m²/s], with a
// collision efficiency of 0.13.
func neohOH(e *sootlib.Env) float64 {
	return 1290 * 0.13 * e.PartialPressure(sootlib.OH) / math.Sqrt(e.T)
}

// combine returns the sum of the O₂ and OH oxidation rates with ratios
// weighted by each path's share of the total.
func combine(e *sootlib.Env, rO2, rOH float64) sootlib.SurfaceRate {
	total := rO2 + rOH
	if !(total > 0) {
		return sootlib.SurfaceRate{Ratios: ratios(e, 0, 0)}
	}
	return sootlib.SurfaceRate{
		Rate:   total,
		Ratios: ratios(e, rO2/total, rOH/total),
	}
}

// ratios returns the stoichiometric ratios when fractions fO2 and fOH of
// the oxidized carbon react with O₂ and OH.
func ratios(e *sootlib.Env, fO2, fOH float64) sootlib.Ratios {
	sp := e.Species
	r := make(sootlib.Ratios)
	r.Set(sp.Index(sootlib.O2), 0.5*sp.MolarMass(sootlib.O2)/sootlib.MWCarbon*fO2)
	r.Set(sp.Index(sootlib.OH), sp.MolarMass(sootlib.OH)/sootlib.MWCarbon*fOH)
	r.Set(sp.Index(sootlib.H), -sp.MolarMass(sootlib.H)/sootlib.MWCarbon*fOH)
	r.Set(sp.Index(sootlib.CO), -sp.MolarMass(sootlib.CO)/sootlib.MWCarbon*(fO2+fOH))
	return r
}
