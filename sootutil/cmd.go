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

// Package sootutil contains configuration and command-line tools for
// sootlib models.
package sootutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/EdinSmartLab/sootlib"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to soot.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the logging verbosity: one of panic, fatal,
              error, warn, info, debug, or trace.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "NumMoments",
			usage: `
              NumMoments is the number of soot moments tracked. It must be
              even and at least 2. The number of quadrature nodes is half
              of this number.`,
			shorthand:  "n",
			defaultVal: 4,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Species",
			usage: `
              Species lists the gas species in the order of the host
              species array.`,
			defaultVal: []string{"C2H2", "O2", "H", "H2", "OH", "H2O", "CO", "N2"},
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "SpeciesFile",
			usage: `
              SpeciesFile is the path to a TOML species database holding
              the name, molar mass (mw, kg/kmol) and carbon atom count
              (carbon) of each species. If it is empty, a built-in
              database of common combustion species is used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "PAH",
			usage: `
              PAH lists the PAH species that form dimers when the PAH
              nucleation mechanism is used. They must also be listed in
              Species.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Cmin",
			usage: `
              Cmin is the number of carbon atoms in a nucleated soot
              particle. The PAH nucleation mechanism calculates its own.`,
			defaultVal: 100.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "RhoSoot",
			usage: `
              RhoSoot is the soot density in kg/m³.`,
			defaultVal: 1850.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Mechanism.Nucleation",
			usage: `
              Mechanism.Nucleation is the nucleation mechanism: NONE, LL
              (Leung & Lindstedt), LIN (Lindstedt, 10-carbon nuclei), or
              PAH (PAH dimers).`,
			defaultVal: "LL",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Mechanism.Growth",
			usage: `
              Mechanism.Growth is the surface growth mechanism: NONE, LIN
              (Lindstedt), LL (Leung & Lindstedt), or HACA.`,
			defaultVal: "LL",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Mechanism.Oxidation",
			usage: `
              Mechanism.Oxidation is the oxidation mechanism: NONE, LL
              (Leung & Lindstedt), LEE_NEOH, NSC_NEOH, or HACA.`,
			defaultVal: "LL",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Mechanism.Coagulation",
			usage: `
              Mechanism.Coagulation is the coagulation mechanism: NONE, LL
              (free molecular), FUCHS, or FRENK (Frenklach).`,
			defaultVal: "FRENK",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Inversion",
			usage: `
              Inversion is the moment inversion algorithm: WHEELER, PD
              (product-difference), or ADAPTIVE (adaptive Wheeler).`,
			defaultVal: "WHEELER",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Adaptive.RMin",
			usage: `
              Adaptive.RMin is the smallest allowed ratio of the smallest
              to the largest quadrature weight for the ADAPTIVE inversion.`,
			defaultVal: 1.0e-8,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Adaptive.EAbs",
			usage: `
              Adaptive.EAbs is the smallest allowed relative distance
              between quadrature abscissas for the ADAPTIVE inversion.`,
			defaultVal: 1.0e-8,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "MaxAbscissa",
			usage: `
              MaxAbscissa is the largest admissible quadrature abscissa
              (particle mass) in kg. Quadratures with larger abscissas
              are rejected and the quadrature order is reduced.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Gas.T",
			usage: `
              Gas.T is the gas temperature in K.`,
			shorthand:  "T",
			defaultVal: 1800.0,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags()},
		},
		{
			name: "Gas.P",
			usage: `
              Gas.P is the gas pressure in Pa.`,
			shorthand:  "P",
			defaultVal: 101325.0,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "Gas.MW",
			usage: `
              Gas.MW is the mean molar mass of the gas in kg/kmol.`,
			defaultVal: 29.0,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "Gas.Mu",
			usage: `
              Gas.Mu is the dynamic viscosity of the gas in kg/m/s.`,
			defaultVal: 5.0e-5,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "Gas.Rho",
			usage: `
              Gas.Rho is the gas density in kg/m³. If it is zero, the
              ideal gas density is used.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "Gas.MassFractions",
			usage: `
              Gas.MassFractions gives the mass fraction of each gas
              species by name. Species that are not listed are zero.`,
			defaultVal: map[string]float64{
				"C2H2": 0.02, "O2": 0.01, "H": 1.0e-4, "H2": 0.002,
				"OH": 0.001, "H2O": 0.05, "CO": 0.03, "N2": 0.8869,
			},
			flagsets: []*pflag.FlagSet{evalCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "Moments",
			usage: `
              Moments are the soot moments M0 (#/m³), M1 (kg/m³), ...
              There must be NumMoments of them.`,
			defaultVal: []float64{1.0e15, 1.0e-6, 1.284e-27, 2.117e-48},
			flagsets:   []*pflag.FlagSet{evalCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "Sweep.TMin",
			usage: `
              Sweep.TMin is the lowest temperature in the sweep in K.`,
			defaultVal: 1200.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.TMax",
			usage: `
              Sweep.TMax is the highest temperature in the sweep in K.`,
			defaultVal: 2400.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.N",
			usage: `
              Sweep.N is the number of temperatures in the sweep.`,
			defaultVal: 25,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.IdealGas",
			usage: `
              Sweep.IdealGas specifies whether the gas density should be
              recalculated at each temperature assuming an ideal gas at
              constant pressure.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where sweep results are written.
              Files ending in .nc are written in NetCDF format and files
              ending in .csv in CSV format.`,
			shorthand:  "o",
			defaultVal: "sweep.nc",
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile, if not empty, is the path of an image showing the
              soot mass source of each process against temperature.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("SOOT")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
			case []string:
				set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
			case int:
				set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
			case map[string]float64, []float64:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := strings.TrimSpace(b.String())
				set.StringP(option.name, option.shorthand, s, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(evalCmd)
	Root.AddCommand(sweepCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets up logging.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("sootutil: problem reading configuration file: %v", err)
		}
	}
	return setLogging(Cfg.GetString("LogLevel"))
}

// setLogging sets the level and format of the standard logger.
func setLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("sootutil: LogLevel: %v", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "soot",
	Short: "A QMOM soot model.",
	Long: `soot calculates soot moment source terms and the matching gas species
source terms with a quadrature method of moments (QMOM) closure.
Use the subcommands specified below to access the model functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'SOOT_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of sootlib.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("sootlib v%s\n", sootlib.Version)
	},
	DisableAutoGenTag: true,
}

// modelAndInputs creates a model and reads the gas state and moments
// from the configuration.
func modelAndInputs() (*sootlib.Model, sootlib.State, []float64, error) {
	c, err := ReadConfig(Cfg)
	if err != nil {
		return nil, sootlib.State{}, nil, err
	}
	m, err := NewModel(c, logrus.StandardLogger())
	if err != nil {
		return nil, sootlib.State{}, nil, err
	}
	s, err := GasState(Cfg, m.Species)
	if err != nil {
		return nil, sootlib.State{}, nil, err
	}
	moments, err := Moments(Cfg, m.NumMoments)
	if err != nil {
		return nil, sootlib.State{}, nil, err
	}
	return m, s, moments, nil
}

// evalCmd is a command that calculates source terms at one gas state.
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Calculate source terms at one point.",
	Long: `eval calculates the soot moment source terms and gas species source
terms for the gas state and soot moments given in the configuration and
prints them with their units.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, s, moments, err := modelAndInputs()
		if err != nil {
			return err
		}
		_, err = Eval(cmd.OutOrStdout(), m, s, moments)
		return err
	},
	DisableAutoGenTag: true,
}

// sweepCmd is a command that calculates source terms over a range of
// temperatures.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Calculate source terms over a range of temperatures.",
	Long: `sweep calculates the soot moment source terms and gas species source
terms at temperatures from Sweep.TMin to Sweep.TMax and writes them to
OutputFile in NetCDF or CSV format, optionally plotting them to PlotFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, s, moments, err := modelAndInputs()
		if err != nil {
			return err
		}
		r, err := Sweep(m, s, moments,
			Cfg.GetFloat64("Sweep.TMin"), Cfg.GetFloat64("Sweep.TMax"),
			Cfg.GetInt("Sweep.N"), Cfg.GetBool("Sweep.IdealGas"))
		if err != nil {
			return err
		}
		if err := writeSweep(r, os.ExpandEnv(Cfg.GetString("OutputFile"))); err != nil {
			return err
		}
		if p := os.ExpandEnv(Cfg.GetString("PlotFile")); p != "" {
			if err := r.Plot(p); err != nil {
				return err
			}
		}
		logrus.WithField("file", Cfg.GetString("OutputFile")).Info("sootutil: sweep finished")
		return nil
	},
	DisableAutoGenTag: true,
}

// writeSweep writes r to a file whose format is determined by its
// extension.
func writeSweep(r *SweepResult, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".nc" && ext != ".csv" {
		return fmt.Errorf("sootutil: OutputFile %q should end in .nc or .csv", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sootutil: creating sweep output file: %v", err)
	}
	if ext == ".nc" {
		err = r.WriteNetCDF(f)
	} else {
		err = r.WriteCSV(f)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("sootutil: writing sweep output file: %v", err)
	}
	return f.Close()
}
