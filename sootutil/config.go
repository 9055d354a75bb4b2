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
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/EdinSmartLab/sootlib"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// Config holds the settings needed to create a soot model.
type Config struct {
	NumMoments int
	Species    []string // host gas species, in host order
	PAH        []string // PAH species for dimer nucleation
	Cmin       float64  // carbon atoms per nucleated particle
	RhoSoot    float64  // kg/m³

	Nucleation  NucleationMech
	Growth      GrowthMech
	Oxidation   OxidationMech
	Coagulation CoagulationMech

	Inversion   InversionMech
	RMin, EAbs  float64 // adaptive Wheeler tolerances
	MaxAbscissa float64 // kg

	DB *SpeciesDB
}

// ReadConfig unmarshals a viper configuration for a soot model.
func ReadConfig(cfg *viper.Viper) (*Config, error) {
	c := &Config{
		NumMoments:  cfg.GetInt("NumMoments"),
		Species:     expandStringSlice(cfg.GetStringSlice("Species")),
		PAH:         expandStringSlice(cfg.GetStringSlice("PAH")),
		Cmin:        cfg.GetFloat64("Cmin"),
		RhoSoot:     cfg.GetFloat64("RhoSoot"),
		RMin:        cfg.GetFloat64("Adaptive.RMin"),
		EAbs:        cfg.GetFloat64("Adaptive.EAbs"),
		MaxAbscissa: cfg.GetFloat64("MaxAbscissa"),
	}
	var err error
	if c.Nucleation, err = ParseNucleation(cfg.GetString("Mechanism.Nucleation")); err != nil {
		return nil, err
	}
	if c.Growth, err = ParseGrowth(cfg.GetString("Mechanism.Growth")); err != nil {
		return nil, err
	}
	if c.Oxidation, err = ParseOxidation(cfg.GetString("Mechanism.Oxidation")); err != nil {
		return nil, err
	}
	if c.Coagulation, err = ParseCoagulation(cfg.GetString("Mechanism.Coagulation")); err != nil {
		return nil, err
	}
	if c.Inversion, err = ParseInversion(cfg.GetString("Inversion")); err != nil {
		return nil, err
	}
	if c.DB, err = LoadSpeciesDB(cfg.GetString("SpeciesFile")); err != nil {
		return nil, err
	}
	if len(c.Species) == 0 {
		return nil, fmt.Errorf("sootutil: no gas species specified; set the Species configuration variable: %w", sootlib.ErrConfig)
	}
	return c, nil
}

// NewModel creates a soot model from c. Construction is logged to log;
// if log is nil the logrus standard logger is used.
func NewModel(c *Config, log logrus.FieldLogger) (*sootlib.Model, error) {
	species, err := c.DB.Table(c.Species, c.PAH)
	if err != nil {
		return nil, err
	}
	mech, err := c.Mechanisms()
	if err != nil {
		return nil, err
	}
	inv, err := c.Inverter()
	if err != nil {
		return nil, err
	}
	q := sootlib.QMOM{Inverter: inv, MaxAbscissa: c.MaxAbscissa}
	return sootlib.NewModel(species, mech, q, c.NumMoments, c.RhoSoot, c.Cmin, log)
}

// GasState returns the gas state specified in cfg. Mass fractions are
// given by name in Gas.MassFractions; species that are not listed are
// zero. If Gas.Rho is not positive, the ideal gas density is used.
func GasState(cfg *viper.Viper, species *sootlib.SpeciesTable) (sootlib.State, error) {
	s := sootlib.State{
		T:   cfg.GetFloat64("Gas.T"),
		P:   cfg.GetFloat64("Gas.P"),
		MW:  cfg.GetFloat64("Gas.MW"),
		Mu:  cfg.GetFloat64("Gas.Mu"),
		Rho: cfg.GetFloat64("Gas.Rho"),
		Y:   make([]float64, species.Len()),
	}
	vars := []float64{s.T, s.P, s.MW}
	varNames := []string{"Gas.T", "Gas.P", "Gas.MW"}
	for i, v := range vars {
		if !(v > 0) {
			return s, fmt.Errorf("sootutil: parsing gas state: %s=%g but should be >0", varNames[i], v)
		}
	}
	if !(s.Rho > 0) {
		s.Rho = IdealGasDensity(s.T, s.P, s.MW)
	}
	y, err := getStringMapFloat64("Gas.MassFractions", cfg)
	if err != nil {
		return s, fmt.Errorf("sootutil: parsing Gas.MassFractions: %v", err)
	}
	for name, v := range y {
		i := species.Lookup(name)
		if i < 0 {
			return s, fmt.Errorf("sootutil: Gas.MassFractions: species %q is not in the species list: %w", name, sootlib.ErrMissingSpecies)
		}
		s.Y[i] = v
	}
	return s, nil
}

// IdealGasDensity returns the density [kg/m³] of an ideal gas at
// temperature t [K], pressure p [Pa] and mean molar mass mw [kg/kmol].
func IdealGasDensity(t, p, mw float64) float64 {
	return p * mw / (sootlib.GasConstant * t)
}

// Moments returns the soot moments specified in cfg.
func Moments(cfg *viper.Viper, n int) ([]float64, error) {
	m, err := toFloat64SliceE(cfg.Get("Moments"))
	if err != nil {
		return nil, fmt.Errorf("sootutil: parsing Moments: %v", err)
	}
	if len(m) != n {
		return nil, fmt.Errorf("sootutil: %d moments were given but NumMoments is %d", len(m), n)
	}
	return m, nil
}

// expandStringSlice expands the environment variables in a slice of strings.
func expandStringSlice(s []string) []string {
	for i := 0; i < len(s); i++ {
		s[i] = os.ExpandEnv(s[i])
	}
	return s
}

// toFloat64SliceE converts a configuration value to a []float64. The
// value may be a list from a configuration file or a JSON array string
// from the command line.
func toFloat64SliceE(s interface{}) ([]float64, error) {
	switch v := s.(type) {
	case []float64:
		return v, nil
	case []interface{}:
		o := make([]float64, len(v))
		for i, val := range v {
			f, err := cast.ToFloat64E(val)
			if err != nil {
				return nil, err
			}
			o[i] = f
		}
		return o, nil
	case string:
		var o []float64
		if v == "" {
			return o, nil
		}
		if err := json.Unmarshal([]byte(v), &o); err != nil {
			return nil, err
		}
		return o, nil
	default:
		return nil, fmt.Errorf("invalid type %T for float slice", s)
	}
}

// getStringMapFloat64 returns a map[string]float64 from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func getStringMapFloat64(varName string, cfg *viper.Viper) (map[string]float64, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case map[string]float64:
		return v, nil
	case map[string]interface{}:
		o := make(map[string]float64, len(v))
		for k, val := range v {
			f, err := cast.ToFloat64E(val)
			if err != nil {
				return nil, fmt.Errorf("%s: %v", k, err)
			}
			o[k] = f
		}
		return o, nil
	case string:
		o := make(map[string]float64)
		if v == "" {
			return o, nil
		}
		d := json.NewDecoder(bytes.NewBufferString(v))
		if err := d.Decode(&o); err != nil {
			return nil, err
		}
		return o, nil
	case nil:
		return make(map[string]float64), nil
	default:
		return nil, fmt.Errorf("invalid type for variable %s: %#v", varName, i)
	}
}
