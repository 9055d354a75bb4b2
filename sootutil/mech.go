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

package sootutil

import (
	"fmt"
	"strings"

	"github.com/EdinSmartLab/sootlib"
	"github.com/EdinSmartLab/sootlib/qmom"
	"github.com/EdinSmartLab/sootlib/science/coagulation"
	"github.com/EdinSmartLab/sootlib/science/growth"
	"github.com/EdinSmartLab/sootlib/science/nucleation"
	"github.com/EdinSmartLab/sootlib/science/oxidation"
)

// NucleationMech is a soot nucleation mechanism.
type NucleationMech int

// Nucleation mechanisms.
const (
	NucleationNone NucleationMech = iota
	NucleationLL                  // Leung, Lindstedt, & Jones (1991)
	NucleationLIN                 // Lindstedt (2005)
	NucleationPAH                 // PAH dimerization
)

var nucleationNames = []string{"NONE", "LL", "LIN", "PAH"}

func (m NucleationMech) String() string { return mechName(nucleationNames, int(m)) }

// ParseNucleation returns the nucleation mechanism with name s, which
// is not case sensitive.
func ParseNucleation(s string) (NucleationMech, error) {
	i, err := parseMech("nucleation", nucleationNames, s)
	return NucleationMech(i), err
}

// GrowthMech is a soot surface growth mechanism.
type GrowthMech int

// Growth mechanisms.
const (
	GrowthNone GrowthMech = iota
	GrowthLIN             // Lindstedt (1994)
	GrowthLL              // Leung, Lindstedt, & Jones (1991)
	GrowthHACA            // hydrogen-abstraction carbon-addition
)

var growthNames = []string{"NONE", "LIN", "LL", "HACA"}

func (m GrowthMech) String() string { return mechName(growthNames, int(m)) }

// ParseGrowth returns the growth mechanism with name s, which is not
// case sensitive.
func ParseGrowth(s string) (GrowthMech, error) {
	i, err := parseMech("growth", growthNames, s)
	return GrowthMech(i), err
}

// OxidationMech is a soot oxidation mechanism.
type OxidationMech int

// Oxidation mechanisms.
const (
	OxidationNone OxidationMech = iota
	OxidationLL                 // Leung, Lindstedt, & Jones (1991)
	OxidationLeeNeoh            // Lee et al. (1962) + Neoh (1981)
	OxidationNSCNeoh            // Nagle & Strickland-Constable + Neoh (1981)
	OxidationHACA               // hydrogen-abstraction carbon-addition
)

var oxidationNames = []string{"NONE", "LL", "LEE_NEOH", "NSC_NEOH", "HACA"}

func (m OxidationMech) String() string { return mechName(oxidationNames, int(m)) }

// ParseOxidation returns the oxidation mechanism with name s, which is
// not case sensitive.
func ParseOxidation(s string) (OxidationMech, error) {
	i, err := parseMech("oxidation", oxidationNames, s)
	return OxidationMech(i), err
}

// CoagulationMech is a soot coagulation mechanism.
type CoagulationMech int

// Coagulation mechanisms.
const (
	CoagulationNone  CoagulationMech = iota
	CoagulationLL                    // free molecular
	CoagulationFuchs                 // Fuchs transition regime
	CoagulationFrenk                 // Frenklach harmonic mean
)

var coagulationNames = []string{"NONE", "LL", "FUCHS", "FRENK"}

func (m CoagulationMech) String() string { return mechName(coagulationNames, int(m)) }

// ParseCoagulation returns the coagulation mechanism with name s, which
// is not case sensitive.
func ParseCoagulation(s string) (CoagulationMech, error) {
	i, err := parseMech("coagulation", coagulationNames, s)
	return CoagulationMech(i), err
}

// InversionMech is a moment inversion algorithm.
type InversionMech int

// Inversion algorithms.
const (
	InversionWheeler InversionMech = iota
	InversionPD
	InversionAdaptive
)

var inversionNames = []string{"WHEELER", "PD", "ADAPTIVE"}

func (m InversionMech) String() string { return mechName(inversionNames, int(m)) }

// ParseInversion returns the inversion algorithm with name s, which is
// not case sensitive.
func ParseInversion(s string) (InversionMech, error) {
	i, err := parseMech("inversion", inversionNames, s)
	return InversionMech(i), err
}

func mechName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("invalid(%d)", i)
	}
	return names[i]
}

func parseMech(family string, names []string, s string) (int, error) {
	s = strings.TrimSpace(s)
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("sootutil: invalid %s mechanism %q; valid options are %s: %w",
		family, s, strings.Join(names, ", "), sootlib.ErrConfig)
}

// Mechanisms returns the rate laws for the mechanisms selected in c.
func (c *Config) Mechanisms() (sootlib.Mechanisms, error) {
	var m sootlib.Mechanisms
	switch c.Coagulation {
	case CoagulationNone:
		m.Coagulation = coagulation.None{}
	case CoagulationLL:
		m.Coagulation = coagulation.FreeMolecular{}
	case CoagulationFuchs:
		m.Coagulation = coagulation.Fuchs{}
	case CoagulationFrenk:
		m.Coagulation = coagulation.Frenklach{}
	default:
		return m, fmt.Errorf("sootutil: invalid coagulation mechanism %v: %w", c.Coagulation, sootlib.ErrConfig)
	}
	switch c.Nucleation {
	case NucleationNone:
		m.Nucleation = nucleation.None{}
	case NucleationLL:
		m.Nucleation = nucleation.LeungLindstedt{}
	case NucleationLIN:
		m.Nucleation = nucleation.Lindstedt{Cmin: 10}
	case NucleationPAH:
		if len(c.PAH) == 0 {
			return m, fmt.Errorf("sootutil: PAH nucleation needs at least one PAH species: %w", sootlib.ErrConfig)
		}
		m.Nucleation = nucleation.PAH{}
	default:
		return m, fmt.Errorf("sootutil: invalid nucleation mechanism %v: %w", c.Nucleation, sootlib.ErrConfig)
	}
	switch c.Growth {
	case GrowthNone:
		m.Growth = growth.None{}
	case GrowthLIN:
		m.Growth = growth.Lindstedt{}
	case GrowthLL:
		m.Growth = growth.LeungLindstedt{}
	case GrowthHACA:
		m.Growth = growth.HACA{}
	default:
		return m, fmt.Errorf("sootutil: invalid growth mechanism %v: %w", c.Growth, sootlib.ErrConfig)
	}
	switch c.Oxidation {
	case OxidationNone:
		m.Oxidation = oxidation.None{}
	case OxidationLL:
		m.Oxidation = oxidation.LeungLindstedt{}
	case OxidationLeeNeoh:
		m.Oxidation = oxidation.LeeNeoh{}
	case OxidationNSCNeoh:
		m.Oxidation = oxidation.NSCNeoh{}
	case OxidationHACA:
		m.Oxidation = oxidation.HACA{}
	default:
		return m, fmt.Errorf("sootutil: invalid oxidation mechanism %v: %w", c.Oxidation, sootlib.ErrConfig)
	}
	return m, nil
}

// Inverter returns the moment inversion algorithm selected in c.
func (c *Config) Inverter() (sootlib.Inverter, error) {
	switch c.Inversion {
	case InversionWheeler:
		return qmom.Wheeler{}, nil
	case InversionPD:
		return qmom.ProductDifference{}, nil
	case InversionAdaptive:
		return qmom.AdaptiveWheeler{RMin: c.RMin, EAbs: c.EAbs}, nil
	default:
		return nil, fmt.Errorf("sootutil: invalid inversion algorithm %v: %w", c.Inversion, sootlib.ErrConfig)
	}
}
