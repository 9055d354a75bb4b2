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

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Model calculates soot moment source terms and the corresponding gas
// species source terms for one point in space and time.
type Model struct {
	Mechanisms
	QMOM QMOM

	Species    *SpeciesTable
	NumMoments int     // number of soot moments; even and ≥2
	RhoSoot    float64 `desc:"Soot density" units:"kg/m³"`

	// Cmin is the number of carbon atoms in a nucleated particle, used
	// when the nucleation mechanism does not calculate its own.
	Cmin float64

	Log logrus.FieldLogger
}

// NewModel checks the given configuration and returns a new Model.
// If log is nil, the logrus standard logger is used.
func NewModel(species *SpeciesTable, mech Mechanisms, q QMOM, numMoments int, rhoSoot, cmin float64, log logrus.FieldLogger) (*Model, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if species == nil {
		return nil, fmt.Errorf("%w: nil species table", ErrConfig)
	}
	if numMoments < 2 || numMoments%2 != 0 {
		return nil, fmt.Errorf("%w: number of moments is %d but should be even and ≥2", ErrConfig, numMoments)
	}
	if !(rhoSoot > 0) {
		return nil, fmt.Errorf("%w: soot density is %g but should be >0", ErrConfig, rhoSoot)
	}
	if !(cmin > 0) {
		return nil, fmt.Errorf("%w: Cmin is %g but should be >0", ErrConfig, cmin)
	}
	switch {
	case mech.Nucleation == nil:
		return nil, fmt.Errorf("%w: no nucleation mechanism", ErrConfig)
	case mech.Growth == nil:
		return nil, fmt.Errorf("%w: no growth mechanism", ErrConfig)
	case mech.Oxidation == nil:
		return nil, fmt.Errorf("%w: no oxidation mechanism", ErrConfig)
	case mech.Coagulation == nil:
		return nil, fmt.Errorf("%w: no coagulation mechanism", ErrConfig)
	}
	if err := species.Require(mech.requires()...); err != nil {
		return nil, err
	}
	m := &Model{
		Mechanisms: mech,
		QMOM:       q,
		Species:    species,
		NumMoments: numMoments,
		RhoSoot:    rhoSoot,
		Cmin:       cmin,
		Log:        log,
	}
	log.WithFields(logrus.Fields{
		"moments":     numMoments,
		"nucleation":  fmt.Sprintf("%T", mech.Nucleation),
		"growth":      fmt.Sprintf("%T", mech.Growth),
		"oxidation":   fmt.Sprintf("%T", mech.Oxidation),
		"coagulation": fmt.Sprintf("%T", mech.Coagulation),
		"inverter":    fmt.Sprintf("%T", q.Inverter),
	}).Info("sootlib: model initialized")
	for s := Species(0); s < numSpecies; s++ {
		log.WithFields(logrus.Fields{"species": s, "index": species.Index(s)}).Debug("sootlib: species index")
	}
	for _, p := range species.PAH {
		log.WithFields(logrus.Fields{"pah": p.Name, "index": p.Index, "carbon": p.Carbon}).Debug("sootlib: PAH species")
	}
	return m, nil
}

// Terms holds the contributions of each soot process to the moment
// source terms [kg^k/m³/s].
type Terms struct {
	Nucleation   []float64
	Condensation []float64
	Growth       []float64
	Oxidation    []float64
	Coagulation  []float64
}

// Sources holds the result of a source term calculation.
type Sources struct {
	// Moments holds the soot moment source terms [kg^k/m³/s].
	Moments []float64

	// Gas holds the gas species source terms as mass fraction rates
	// [1/s], ordered like the host species array.
	Gas []float64

	Nodes      Nodes
	Nucleation Nucleation
	Growth     SurfaceRate
	Oxidation  SurfaceRate
	Terms      Terms
}

// Sources calculates the soot moment and gas species source terms for
// gas state s and soot moments [kg^k/m³].
func (m *Model) Sources(s State, moments []float64) (*Sources, error) {
	if len(moments) != m.NumMoments {
		return nil, fmt.Errorf("sootlib: got %d moments but the model has %d", len(moments), m.NumMoments)
	}
	if len(s.Y) != m.Species.Len() {
		return nil, fmt.Errorf("sootlib: got %d mass fractions but the model has %d species", len(s.Y), m.Species.Len())
	}
	e := &Env{State: s, Species: m.Species, RhoSoot: m.RhoSoot, Cmin: m.Cmin}
	n := m.NumMoments

	nodes := m.QMOM.Invert(moments)
	for i := range nodes.Weights {
		nodes.Weights[i] = math.Max(nodes.Weights[i], 0)
		nodes.Abscissas[i] = math.Max(nodes.Abscissas[i], 0)
	}

	nuc := m.Nucleation.Nucleation(e, &nodes)
	grw := m.Growth.Growth(e, moments[0], moments[1])
	oxi := m.Oxidation.Oxidation(e, moments[0], moments[1])
	if nuc.Cmin == 0 {
		nuc.Cmin = m.Cmin
	}

	t := Terms{
		Nucleation:   make([]float64, n),
		Condensation: make([]float64, n),
		Growth:       make([]float64, n),
		Oxidation:    make([]float64, n),
		Coagulation:  make([]float64, n),
	}

	mNuc := nuc.Cmin * MWCarbon / Avogadro // mass of a nucleated particle
	for k := 0; k < n; k++ {
		t.Nucleation[k] = math.Pow(mNuc, float64(k)) * nuc.J
	}

	// Dimer condensation; zero for k=0 because particle number is unchanged.
	if d := nuc.Dimer; d.N > 0 && d.Mass > 0 {
		beta := d.Beta
		if len(beta) > nodes.Order {
			beta = beta[:nodes.Order]
		}
		for k := 1; k < n; k++ {
			for i, b := range beta {
				t.Condensation[k] += b * math.Pow(nodes.Abscissas[i], float64(k-1)) * nodes.Weights[i]
			}
			t.Condensation[k] *= d.N * d.Mass * float64(k)
		}
	}

	// Surface growth and oxidation; zero for k=0.
	aCoef := math.Pi * math.Pow(6/(math.Pi*m.RhoSoot), 2./3)
	for k := 1; k < n; k++ {
		mk := nodes.FractionalMoment(float64(k) - 1./3)
		t.Growth[k] = grw.Rate * aCoef * float64(k) * mk
		t.Oxidation[k] = -oxi.Rate * aCoef * float64(k) * mk
	}

	m.coagulation(e, &nodes, t.Coagulation)

	src := &Sources{
		Moments:    make([]float64, n),
		Gas:        make([]float64, m.Species.Len()),
		Nodes:      nodes,
		Nucleation: nuc,
		Growth:     grw,
		Oxidation:  oxi,
		Terms:      t,
	}
	for _, term := range [][]float64{t.Nucleation, t.Condensation, t.Growth, t.Oxidation, t.Coagulation} {
		floats.Add(src.Moments, term)
	}

	// Gas sources follow from the mass (k=1) source of each process.
	// Coagulation conserves soot mass and has no gas source.
	for i, r := range nuc.Ratios {
		src.Gas[i] += t.Nucleation[1] * r
	}
	for i, r := range nuc.Condensation {
		src.Gas[i] += t.Condensation[1] * r
	}
	for i, r := range grw.Ratios {
		src.Gas[i] += t.Growth[1] * r
	}
	for i, r := range oxi.Ratios {
		src.Gas[i] += t.Oxidation[1] * r
	}
	if s.Rho > 0 {
		floats.Scale(1/s.Rho, src.Gas)
	} else {
		floats.Scale(0, src.Gas)
	}
	return src, nil
}

// coagulation adds the coagulation source term for each moment order to
// dst. Moment 1 (total mass) is conserved and is left at zero.
func (m *Model) coagulation(e *Env, nodes *Nodes, dst []float64) {
	order := nodes.Order
	w, x := nodes.Weights, nodes.Abscissas
	beta := make([]float64, order*order)
	for i := 0; i < order; i++ {
		for j := 0; j <= i; j++ {
			b := m.Coagulation.Beta(e, x[i], x[j])
			beta[i*order+j] = b
			beta[j*order+i] = b
		}
	}
	for k := range dst {
		if k == 1 {
			continue
		}
		fk := float64(k)
		// Off-diagonal pairs, each counted once.
		for i := 1; i < order; i++ {
			for j := 0; j < i; j++ {
				delta := -1.
				if k > 0 {
					delta = math.Pow(x[i]+x[j], fk) - math.Pow(x[i], fk) - math.Pow(x[j], fk)
				}
				dst[k] += beta[i*order+j] * w[i] * w[j] * delta
			}
		}
		// Collisions between particles of the same node.
		for i := 0; i < order; i++ {
			delta := -0.5
			if k > 0 {
				delta = math.Pow(x[i], fk) * (math.Pow(2, fk-1) - 1)
			}
			dst[k] += beta[i*order+i] * w[i] * w[i] * delta
		}
	}
}
