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

// Package nucleation contains soot nucleation rate laws.
package nucleation

import (
	"math"

	"github.com/EdinSmartLab/sootlib"
	"github.com/EdinSmartLab/sootlib/science/coagulation"
)

// None disables nucleation.
type None struct{}

// Nucleation returns a zero rate.
func (None) Nucleation(_ *sootlib.Env, _ *sootlib.Nodes) sootlib.Nucleation {
	return sootlib.Nucleation{}
}

// LeungLindstedt is the acetylene nucleation rate of Leung, Lindstedt,
// & Jones (1991), Combust. Flame 87:289-305.
type LeungLindstedt struct {
	// Cmin is the number of carbon atoms in a nucleated particle.
	// Zero means Env.Cmin.
	Cmin float64
}

// Requires returns the species needed by the rate.
func (LeungLindstedt) Requires() []sootlib.Species { return []sootlib.Species{sootlib.C2H2} }

// Nucleation returns the nucleation rate [#/m³/s].
func (n LeungLindstedt) Nucleation(e *sootlib.Env, _ *sootlib.Nodes) sootlib.Nucleation {
	return acetylene(e, 0.1e5, n.Cmin)
}

// Lindstedt is the acetylene nucleation rate of Lindstedt (2005),
// Proc. Combust. Inst. 30:775, calibrated for naphthalene-sized nuclei
// (Cmin = 10).
type Lindstedt struct {
	// Cmin is the number of carbon atoms in a nucleated particle.
	// Zero means Env.Cmin.
	Cmin float64
}

// Requires returns the species needed by the rate.
func (Lindstedt) Requires() []sootlib.Species { return []sootlib.Species{sootlib.C2H2} }

// Nucleation returns the nucleation rate [#/m³/s].
func (n Lindstedt) Nucleation(e *sootlib.Env, _ *sootlib.Nodes) sootlib.Nucleation {
	return acetylene(e, 0.63e4, n.Cmin)
}

// acetylene calculates an acetylene pyrolysis nucleation rate,
// C₂H₂ → 2C(s) + H₂, with pre-exponential factor a [1/s].
func acetylene(e *sootlib.Env, a, cmin float64) sootlib.Nucleation {
	if cmin == 0 {
		cmin = e.Cmin
	}
	r := sootlib.Nucleation{
		Cmin:   cmin,
		Ratios: make(sootlib.Ratios),
	}
	sp := e.Species
	r.Ratios.Set(sp.Index(sootlib.C2H2), -sp.MolarMass(sootlib.C2H2)/(2*sootlib.MWCarbon))
	r.Ratios.Set(sp.Index(sootlib.H2), sp.MolarMass(sootlib.H2)/(2*sootlib.MWCarbon))
	if !(cmin > 0) || !(e.T > 0) {
		return r
	}
	rnuc := a * math.Exp(-21100/e.T) * e.Conc(sootlib.C2H2) // kmol/m³/s
	r.J = rnuc * 2 * sootlib.Avogadro / cmin
	return r
}

// PAH is the PAH dimerization nucleation model of Blanquart & Pitsch
// (2009). Dimers form from self-collisions of the configured PAH species
// and are consumed by dimer-dimer collisions (nucleation) and by
// collisions with existing soot (condensation). The carbon count of a
// nucleated particle follows from the PAH mixture.
type PAH struct {
	// Collision is the collision rate function used for dimer-dimer
	// and dimer-soot collisions. Nil means coagulation.Frenklach.
	Collision sootlib.Coagulator
}

// Nucleation returns the nucleation rate [#/m³/s] together with the
// dimer state needed for the condensation source term.
func (n PAH) Nucleation(e *sootlib.Env, nodes *sootlib.Nodes) sootlib.Nucleation {
	r := sootlib.Nucleation{
		Ratios:       make(sootlib.Ratios),
		Condensation: make(sootlib.Ratios),
	}
	pah := e.Species.PAH
	if len(pah) == 0 || !(e.T > 0) {
		return r
	}
	coag := n.Collision
	if coag == nil {
		coag = coagulation.Frenklach{}
	}

	preFac := math.Sqrt(4*math.Pi*sootlib.Boltzmann*e.T) * math.Pow(6/(math.Pi*e.RhoSoot), 2./3)

	// Dimer self-collision (formation) rate, dimer mass and nucleus
	// carbon count, weighted by each species' collision rate.
	var wdotD, mDimer, cmin float64
	frac := make([]float64, len(pah))
	for i, p := range pah {
		mw := e.Species.MW[p.Index]
		m := mw / sootlib.Avogadro
		gamma := 1.501e-11 * math.Pow(mw, 4) // sticking coefficient
		if mw <= 153 {
			gamma /= 3
		}
		ni := e.ConcIndex(p.Index) * sootlib.Avogadro
		wi := math.Abs(gamma * preFac * math.Pow(m, 1./6) * ni * ni)
		wdotD += wi
		mDimer += wi * m
		cmin += wi * float64(p.Carbon)
		frac[i] = wi * m
	}
	if !(wdotD > 0) {
		return r
	}
	for i := range frac {
		frac[i] /= mDimer
	}
	mDimer *= 2 / wdotD
	cmin *= 4 / wdotD

	// Steady-state dimer number density:
	// wdotD = βDD·N² + Σβ_DS·wᵢ·N, positive root.
	betaDD := coag.Beta(e, mDimer, mDimer)
	betaNodes := make([]float64, nodes.Order)
	var betaDS float64
	for i := range betaNodes {
		betaNodes[i] = coag.Beta(e, mDimer, nodes.Abscissas[i])
		betaDS += math.Abs(nodes.Weights[i]) * betaNodes[i]
	}
	var nDimer float64
	if d := betaDS + math.Sqrt(betaDS*betaDS+4*betaDD*wdotD); d > 0 {
		nDimer = 2 * wdotD / d
	}

	r.J = 0.5 * betaDD * nDimer * nDimer
	r.Cmin = cmin
	r.Dimer = sootlib.Dimer{N: nDimer, Mass: mDimer, Beta: betaNodes}

	// A nucleus of two dimers holds only the carbon; the rest leaves as H₂.
	mNuc := cmin * sootlib.MWCarbon / sootlib.Avogadro
	for i, p := range pah {
		r.Ratios.Set(p.Index, -frac[i]*2*mDimer/mNuc)
		r.Condensation.Set(p.Index, -frac[i])
	}
	r.Ratios.Set(e.Species.Index(sootlib.H2), 2*mDimer/mNuc-1)
	return r
}
