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
	"errors"
	"testing"

	"github.com/EdinSmartLab/sootlib"
	"github.com/EdinSmartLab/sootlib/qmom"
	"github.com/EdinSmartLab/sootlib/science/coagulation"
	"github.com/EdinSmartLab/sootlib/science/growth"
	"github.com/EdinSmartLab/sootlib/science/nucleation"
	"github.com/EdinSmartLab/sootlib/science/oxidation"
)

func TestParseMechanisms(t *testing.T) {
	if m, err := ParseNucleation("ll"); err != nil || m != NucleationLL {
		t.Errorf("ll: %v, %v", m, err)
	}
	if m, err := ParseGrowth("HACA"); err != nil || m != GrowthHACA {
		t.Errorf("HACA: %v, %v", m, err)
	}
	if m, err := ParseOxidation("nsc_neoh"); err != nil || m != OxidationNSCNeoh {
		t.Errorf("nsc_neoh: %v, %v", m, err)
	}
	if m, err := ParseCoagulation("Fuchs"); err != nil || m != CoagulationFuchs {
		t.Errorf("Fuchs: %v, %v", m, err)
	}
	if m, err := ParseInversion("pd"); err != nil || m != InversionPD {
		t.Errorf("pd: %v, %v", m, err)
	}
	if s := OxidationLeeNeoh.String(); s != "LEE_NEOH" {
		t.Errorf("String: have %s, want LEE_NEOH", s)
	}

	for name, parse := range map[string]func(string) error{
		"nucleation":  func(s string) error { _, err := ParseNucleation(s); return err },
		"growth":      func(s string) error { _, err := ParseGrowth(s); return err },
		"oxidation":   func(s string) error { _, err := ParseOxidation(s); return err },
		"coagulation": func(s string) error { _, err := ParseCoagulation(s); return err },
		"inversion":   func(s string) error { _, err := ParseInversion(s); return err },
	} {
		if err := parse("xyz"); !errors.Is(err, sootlib.ErrConfig) {
			t.Errorf("%s: invalid name: have error %v, want ErrConfig", name, err)
		}
	}
}

func TestConfigMechanisms(t *testing.T) {
	c := &Config{
		Nucleation:  NucleationLIN,
		Growth:      GrowthHACA,
		Oxidation:   OxidationNSCNeoh,
		Coagulation: CoagulationLL,
	}
	m, err := c.Mechanisms()
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := m.Nucleation.(nucleation.Lindstedt); !ok || n.Cmin != 10 {
		t.Errorf("nucleation: %#v", m.Nucleation)
	}
	if _, ok := m.Growth.(growth.HACA); !ok {
		t.Errorf("growth: %T", m.Growth)
	}
	if _, ok := m.Oxidation.(oxidation.NSCNeoh); !ok {
		t.Errorf("oxidation: %T", m.Oxidation)
	}
	if _, ok := m.Coagulation.(coagulation.FreeMolecular); !ok {
		t.Errorf("coagulation: %T", m.Coagulation)
	}

	c.Nucleation = NucleationPAH
	if _, err := c.Mechanisms(); !errors.Is(err, sootlib.ErrConfig) {
		t.Errorf("PAH nucleation without PAH species: have error %v", err)
	}
	c.PAH = []string{"A2"}
	if m, err := c.Mechanisms(); err != nil {
		t.Error(err)
	} else if _, ok := m.Nucleation.(nucleation.PAH); !ok {
		t.Errorf("nucleation: %T", m.Nucleation)
	}

	c.Growth = GrowthMech(99)
	if _, err := c.Mechanisms(); !errors.Is(err, sootlib.ErrConfig) {
		t.Errorf("invalid growth mechanism: have error %v", err)
	}
}

func TestConfigInverter(t *testing.T) {
	c := &Config{Inversion: InversionAdaptive, RMin: 1.e-6, EAbs: 1.e-7}
	inv, err := c.Inverter()
	if err != nil {
		t.Fatal(err)
	}
	if aw, ok := inv.(qmom.AdaptiveWheeler); !ok || aw.RMin != 1.e-6 || aw.EAbs != 1.e-7 {
		t.Errorf("inverter: %#v", inv)
	}
	c.Inversion = InversionMech(-1)
	if _, err := c.Inverter(); !errors.Is(err, sootlib.ErrConfig) {
		t.Errorf("invalid inverter: have error %v", err)
	}
}
