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
	"io"
	"text/tabwriter"

	"github.com/EdinSmartLab/sootlib"
	"github.com/ctessum/unit"
)

// momentDims returns the dimensions of the source term of moment k
// [kg^k/m³/s].
func momentDims(k int) unit.Dimensions {
	d := unit.Dimensions{unit.LengthDim: -3, unit.TimeDim: -1}
	if k != 0 {
		d[unit.MassDim] = k
	}
	return d
}

// MomentSources returns the moment source terms in src with their units.
func MomentSources(src *sootlib.Sources) []*unit.Unit {
	o := make([]*unit.Unit, len(src.Moments))
	for k, v := range src.Moments {
		o[k] = unit.New(v, momentDims(k))
	}
	return o
}

// Eval calculates the source terms for gas state s and the given
// moments and writes a summary to w.
func Eval(w io.Writer, m *sootlib.Model, s sootlib.State, moments []float64) (*sootlib.Sources, error) {
	src, err := m.Sources(s, moments)
	if err != nil {
		return nil, err
	}
	e := &sootlib.Env{State: s, Species: m.Species, RhoSoot: m.RhoSoot, Cmin: m.Cmin}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "Mean free path\t%g\n", unit.New(e.MeanFreePath(), unit.Meter))
	fmt.Fprintf(tw, "Kc\t%g\n", unit.New(e.Kc(), unit.Dimensions{unit.LengthDim: 3, unit.TimeDim: -1}))
	fmt.Fprintf(tw, "Kc'\t%g\n", e.KcPrime())
	fmt.Fprintf(tw, "Kfm\t%g\n", e.Kfm())
	fmt.Fprintf(tw, "Nucleation rate\t%g\n", unit.New(src.Nucleation.J, unit.Dimensions{unit.LengthDim: -3, unit.TimeDim: -1}))
	fmt.Fprintf(tw, "Growth rate\t%g\n", unit.New(src.Growth.Rate, unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -2, unit.TimeDim: -1}))
	fmt.Fprintf(tw, "Oxidation rate\t%g\n", unit.New(src.Oxidation.Rate, unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -2, unit.TimeDim: -1}))
	fmt.Fprintf(tw, "Quadrature order\t%d\n", src.Nodes.Order)
	for i := 0; i < src.Nodes.Order; i++ {
		fmt.Fprintf(tw, "Node %d\tw=%g\tx=%g\n", i,
			unit.New(src.Nodes.Weights[i], unit.Dimensions{unit.LengthDim: -3}),
			unit.New(src.Nodes.Abscissas[i], unit.Kilogram))
	}
	fmt.Fprintln(tw, "\nMoment\tquadrature\tsource\tnucleation\tcondensation\tgrowth\toxidation\tcoagulation")
	for k, u := range MomentSources(src) {
		t := src.Terms
		fmt.Fprintf(tw, "M%d\t%g\t%g\t%g\t%g\t%g\t%g\t%g\n", k, src.Nodes.Moment(k), u,
			t.Nucleation[k], t.Condensation[k], t.Growth[k], t.Oxidation[k], t.Coagulation[k])
	}
	fmt.Fprintln(tw, "\nSpecies\tsource")
	for i, v := range src.Gas {
		if v == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%g\n", m.Species.Names[i], unit.New(v, unit.Herz))
	}
	return src, tw.Flush()
}
