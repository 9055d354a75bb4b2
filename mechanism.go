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

// Ratios holds stoichiometric mass ratios keyed by host species index:
// the mass of each gas species produced per unit mass of soot formed by a
// process [kg gas / kg soot]. Consumed species have negative ratios.
// Oxidation forms a negative amount of soot, so the signs of its ratios
// are reversed relative to nucleation and growth.
type Ratios map[int]float64

// Set sets the ratio for host species index i. Negative indices, which
// represent absent species, are ignored.
func (r Ratios) Set(i int, v float64) {
	if i >= 0 {
		r[i] = v
	}
}

// Dimer describes the PAH dimers present when nucleation proceeds
// through dimerization.
type Dimer struct {
	N    float64 `desc:"Dimer number density" units:"#/m³"`
	Mass float64 `desc:"Dimer mass" units:"kg"`

	// Beta holds the dimer-soot collision rate function for each active
	// quadrature node [m³/#/s]. Condensation uses the same values as the
	// dimer balance.
	Beta []float64
}

// Nucleation is the result of a nucleation rate evaluation.
type Nucleation struct {
	J float64 `desc:"Nucleation rate" units:"#/m³/s"`

	// Cmin is the number of carbon atoms in a nucleated particle. Zero
	// means the Model's configured value applies.
	Cmin float64

	// Dimer is non-zero for mechanisms whose dimers also condense on
	// existing particles.
	Dimer Dimer

	// Ratios apply to the nucleation mass source and Condensation to the
	// dimer condensation mass source.
	Ratios, Condensation Ratios
}

// SurfaceRate is the result of a surface growth or oxidation rate
// evaluation.
type SurfaceRate struct {
	Rate   float64 `desc:"Surface reaction rate" units:"kg/m²/s"`
	Ratios Ratios
}

// Nucleator calculates soot nucleation rates. n holds the current
// quadrature nodes, which some mechanisms need for particle scavenging.
type Nucleator interface {
	Nucleation(e *Env, n *Nodes) Nucleation
}

// Grower calculates soot surface growth rates from the soot number
// density m0 [#/m³] and mass density m1 [kg/m³].
type Grower interface {
	Growth(e *Env, m0, m1 float64) SurfaceRate
}

// Oxidizer calculates soot surface oxidation rates from the soot number
// density m0 [#/m³] and mass density m1 [kg/m³]. The returned rate is a
// positive mass removal rate.
type Oxidizer interface {
	Oxidation(e *Env, m0, m1 float64) SurfaceRate
}

// Coagulator calculates the collision rate function β [m³/#/s] for
// particles of masses m1 and m2 [kg]. β must be symmetric in m1 and m2.
type Coagulator interface {
	Beta(e *Env, m1, m2 float64) float64
}

// SpeciesRequirer is implemented by rate laws that need particular gas
// species to be present.
type SpeciesRequirer interface {
	Requires() []Species
}

// Mechanisms holds one rate law per soot process. The science packages
// each provide a None type for disabling a process.
type Mechanisms struct {
	Nucleation  Nucleator
	Growth      Grower
	Oxidation   Oxidizer
	Coagulation Coagulator
}

// requires returns the gas species required by all of the mechanisms.
func (m Mechanisms) requires() []Species {
	var o []Species
	for _, v := range []interface{}{m.Nucleation, m.Growth, m.Oxidation, m.Coagulation} {
		if r, ok := v.(SpeciesRequirer); ok {
			o = append(o, r.Requires()...)
		}
	}
	return o
}
