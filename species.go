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
	"strings"
)

// Species identifies a gas species that one or more of the rate laws
// refer to by name.
type Species int

// Gas species known to the rate laws.
const (
	C2H2 Species = iota
	O2
	H
	H2
	OH
	H2O
	CO
	numSpecies
)

var speciesNames = [numSpecies]string{
	C2H2: "C2H2",
	O2:   "O2",
	H:    "H",
	H2:   "H2",
	OH:   "OH",
	H2O:  "H2O",
	CO:   "CO",
}

func (s Species) String() string {
	if s < 0 || s >= numSpecies {
		return fmt.Sprintf("Species(%d)", int(s))
	}
	return speciesNames[s]
}

// PAHSpecies is a polycyclic aromatic hydrocarbon that takes part in
// dimer nucleation and condensation.
type PAHSpecies struct {
	Name   string
	Index  int // index in the host species array
	Carbon int // number of carbon atoms per molecule
}

// SpeciesTable maps the species the rate laws need onto indices of the
// host species array. It is built once and is read-only afterwards, so
// it may be shared between Models.
type SpeciesTable struct {
	Names []string  // host species names
	MW    []float64 // molar masses [kg/kmol], aligned with Names

	// PAH holds the PAH species used for dimer nucleation, if any.
	PAH []PAHSpecies

	index [numSpecies]int
}

// NewSpeciesTable resolves the named species in names, whose molar
// masses [kg/kmol] are given in mw. Species that are not found are given
// index -1; use Require to check for the species a mechanism needs.
// pah and pahCarbon give the PAH species names and their carbon atom
// counts; every PAH species must be present in names.
func NewSpeciesTable(names []string, mw []float64, pah []string, pahCarbon []int) (*SpeciesTable, error) {
	if len(names) != len(mw) {
		return nil, fmt.Errorf("%w: %d species names but %d molar masses", ErrConfig, len(names), len(mw))
	}
	if len(pah) != len(pahCarbon) {
		return nil, fmt.Errorf("%w: %d PAH species but %d carbon counts", ErrConfig, len(pah), len(pahCarbon))
	}
	t := &SpeciesTable{
		Names: append([]string(nil), names...),
		MW:    append([]float64(nil), mw...),
	}
	for i, w := range t.MW {
		if !(w > 0) {
			return nil, fmt.Errorf("%w: molar mass of %s is %g but should be >0", ErrConfig, t.Names[i], w)
		}
	}
	for s := Species(0); s < numSpecies; s++ {
		t.index[s] = t.Lookup(s.String())
	}
	for i, name := range pah {
		j := t.Lookup(name)
		if j < 0 {
			return nil, fmt.Errorf("%w: invalid PAH species %s; check the species list", ErrMissingSpecies, name)
		}
		if pahCarbon[i] <= 0 {
			return nil, fmt.Errorf("%w: PAH species %s has %d carbon atoms", ErrConfig, name, pahCarbon[i])
		}
		t.PAH = append(t.PAH, PAHSpecies{Name: t.Names[j], Index: j, Carbon: pahCarbon[i]})
	}
	return t, nil
}

// Lookup returns the index of the species with the given name, trying an
// exact match first and then a case-insensitive one. It returns -1 if
// there is no such species.
func (t *SpeciesTable) Lookup(name string) int {
	for i, n := range t.Names {
		if n == name {
			return i
		}
	}
	for i, n := range t.Names {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}

// Index returns the host index of s, or -1 if s is not present.
func (t *SpeciesTable) Index(s Species) int { return t.index[s] }

// MolarMass returns the molar mass of s [kg/kmol], or 0 if s is not
// present.
func (t *SpeciesTable) MolarMass(s Species) float64 {
	if i := t.index[s]; i >= 0 {
		return t.MW[i]
	}
	return 0
}

// Len returns the number of host species.
func (t *SpeciesTable) Len() int { return len(t.Names) }

// Require returns an error wrapping ErrMissingSpecies if any of the
// given species is absent.
func (t *SpeciesTable) Require(species ...Species) error {
	var missing []string
	for _, s := range species {
		if t.index[s] < 0 {
			missing = append(missing, s.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSpecies, strings.Join(missing, ", "))
	}
	return nil
}
