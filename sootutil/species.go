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
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/EdinSmartLab/sootlib"
)

// SpeciesRecord holds the properties of one gas species.
type SpeciesRecord struct {
	Name   string  `toml:"name"`
	MW     float64 `toml:"mw"`     // kg/kmol
	Carbon int     `toml:"carbon"` // carbon atoms per molecule
}

// SpeciesDB is a database of gas species properties.
type SpeciesDB struct {
	Species []SpeciesRecord `toml:"species"`
}

// defaultSpeciesDB holds common combustion species, including the PAHs
// usually used for dimer nucleation.
const defaultSpeciesDB = `
[[species]]
name = "C2H2"
mw = 26.038
carbon = 2

[[species]]
name = "O2"
mw = 31.998

[[species]]
name = "H"
mw = 1.008

[[species]]
name = "H2"
mw = 2.016

[[species]]
name = "OH"
mw = 17.007

[[species]]
name = "H2O"
mw = 18.015

[[species]]
name = "CO"
mw = 28.010
carbon = 1

[[species]]
name = "CO2"
mw = 44.009
carbon = 1

[[species]]
name = "N2"
mw = 28.014

[[species]]
name = "C6H6"
mw = 78.114
carbon = 6

[[species]]
name = "A2" # naphthalene
mw = 128.174
carbon = 10

[[species]]
name = "A3" # phenanthrene
mw = 178.234
carbon = 14

[[species]]
name = "A4" # pyrene
mw = 202.256
carbon = 16
`

// LoadSpeciesDB reads a species database in TOML format from the
// given file. If path is empty, a built-in database is returned.
func LoadSpeciesDB(path string) (*SpeciesDB, error) {
	db := new(SpeciesDB)
	if path == "" {
		if _, err := toml.Decode(defaultSpeciesDB, db); err != nil {
			panic(err)
		}
		return db, nil
	}
	if _, err := toml.DecodeFile(os.ExpandEnv(path), db); err != nil {
		return nil, fmt.Errorf("sootutil: reading species database: %w", err)
	}
	return db, nil
}

// Lookup returns the record for the named species, ignoring case.
func (db *SpeciesDB) Lookup(name string) (SpeciesRecord, bool) {
	for _, r := range db.Species {
		if r.Name == name {
			return r, true
		}
	}
	for _, r := range db.Species {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return SpeciesRecord{}, false
}

// Table returns a species table for the given host species names, with
// the given PAH species, using the molar masses and carbon counts in db.
func (db *SpeciesDB) Table(names, pah []string) (*sootlib.SpeciesTable, error) {
	mw := make([]float64, len(names))
	for i, n := range names {
		r, ok := db.Lookup(n)
		if !ok {
			return nil, fmt.Errorf("sootutil: species %q is not in the species database: %w", n, sootlib.ErrMissingSpecies)
		}
		mw[i] = r.MW
	}
	carbon := make([]int, len(pah))
	for i, n := range pah {
		r, ok := db.Lookup(n)
		if !ok {
			return nil, fmt.Errorf("sootutil: PAH species %q is not in the species database: %w", n, sootlib.ErrMissingSpecies)
		}
		carbon[i] = r.Carbon
	}
	return sootlib.NewSpeciesTable(names, mw, pah, carbon)
}
