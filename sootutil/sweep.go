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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/EdinSmartLab/sootlib"
	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// processNames are the soot processes, in the order their mass source
// terms are stored in SweepResult.MassTerms.
var processNames = []string{"nucleation", "condensation", "growth", "oxidation", "coagulation"}

// SweepResult holds source terms calculated over a range of temperatures.
type SweepResult struct {
	Species []string // gas species names

	T         *sparse.DenseArray // [nT], K
	Moments   *sparse.DenseArray // [nT, nMoments], kg^k/m³/s
	Gas       *sparse.DenseArray // [nT, nSpecies], 1/s
	MassTerms *sparse.DenseArray // [nT, process], kg/m³/s
	J         *sparse.DenseArray // [nT], #/m³/s
	Growth    *sparse.DenseArray // [nT], kg/m²/s
	Oxidation *sparse.DenseArray // [nT], kg/m²/s
}

// Sweep calculates source terms at n temperatures evenly spaced between
// tMin and tMax, with the rest of the gas state given by s. If idealGas
// is true, the gas density is recalculated at each temperature at
// constant pressure. The temperatures are evaluated concurrently.
func Sweep(m *sootlib.Model, s sootlib.State, moments []float64, tMin, tMax float64, n int, idealGas bool) (*SweepResult, error) {
	if n < 2 {
		return nil, fmt.Errorf("sootutil: sweep needs at least 2 temperatures but got %d", n)
	}
	if !(tMin > 0) || !(tMax > tMin) {
		return nil, fmt.Errorf("sootutil: invalid sweep temperature range %g–%g K", tMin, tMax)
	}
	temps := floats.Span(make([]float64, n), tMin, tMax)
	r := &SweepResult{
		Species:   m.Species.Names,
		T:         sparse.ZerosDense(n),
		Moments:   sparse.ZerosDense(n, m.NumMoments),
		Gas:       sparse.ZerosDense(n, m.Species.Len()),
		MassTerms: sparse.ZerosDense(n, len(processNames)),
		J:         sparse.ZerosDense(n),
		Growth:    sparse.ZerosDense(n),
		Oxidation: sparse.ZerosDense(n),
	}
	copy(r.T.Elements, temps)

	nprocs := runtime.GOMAXPROCS(0)
	errs := make([]error, nprocs)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			for i := pp; i < n; i += nprocs {
				ss := s
				ss.T = temps[i]
				if idealGas {
					ss.Rho = IdealGasDensity(ss.T, ss.P, ss.MW)
				}
				src, err := m.Sources(ss, moments)
				if err != nil {
					errs[pp] = err
					return
				}
				// Each goroutine writes to its own rows.
				for k, v := range src.Moments {
					r.Moments.Set(v, i, k)
				}
				for j, v := range src.Gas {
					r.Gas.Set(v, i, j)
				}
				t := src.Terms
				for j, term := range [][]float64{t.Nucleation, t.Condensation, t.Growth, t.Oxidation, t.Coagulation} {
					r.MassTerms.Set(term[1], i, j)
				}
				r.J.Set(src.Nucleation.J, i)
				r.Growth.Set(src.Growth.Rate, i)
				r.Oxidation.Set(src.Oxidation.Rate, i)
			}
		}(pp)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// WriteNetCDF writes the sweep results to w in NetCDF format.
func (r *SweepResult) WriteNetCDF(w *os.File) error {
	nT, nMom := r.Moments.Shape[0], r.Moments.Shape[1]
	h := cdf.NewHeader(
		[]string{"T", "moment", "species", "process"},
		[]int{nT, nMom, len(r.Species), len(processNames)})
	h.AddAttribute("", "comment", "sootlib temperature sweep")
	h.AddAttribute("", "sootlib_version", sootlib.Version)

	vars := []struct {
		name, desc, units string
		dims              []string
		data              *sparse.DenseArray
	}{
		{"Temperature", "Gas temperature", "K", []string{"T"}, r.T},
		{"MomentSource", "Soot moment source terms", "kg^k/m3/s", []string{"T", "moment"}, r.Moments},
		{"GasSource", "Gas species mass fraction source terms", "1/s", []string{"T", "species"}, r.Gas},
		{"MassSource", "Soot mass source term by process", "kg/m3/s", []string{"T", "process"}, r.MassTerms},
		{"Nucleation", "Nucleation rate", "#/m3/s", []string{"T"}, r.J},
		{"Growth", "Surface growth rate", "kg/m2/s", []string{"T"}, r.Growth},
		{"Oxidation", "Surface oxidation rate", "kg/m2/s", []string{"T"}, r.Oxidation},
	}
	for _, v := range vars {
		h.AddVariable(v.name, v.dims, []float64{0})
		h.AddAttribute(v.name, "description", v.desc)
		h.AddAttribute(v.name, "units", v.units)
	}
	h.Define()

	f, err := cdf.Create(w, h) // writes the header to w
	if err != nil {
		return err
	}
	for _, v := range vars {
		if err := writeNCF(f, v.name, v.data); err != nil {
			return fmt.Errorf("sootutil: writing variable %s to netcdf file: %v", v.name, err)
		}
	}
	return cdf.UpdateNumRecs(w)
}

func writeNCF(f *cdf.File, name string, data *sparse.DenseArray) error {
	end := f.Header.Lengths(name)
	n := 1
	for _, v := range end {
		n *= v
	}
	if len(data.Elements) != n {
		return fmt.Errorf("dims are %d but array length is %d", n, len(data.Elements))
	}
	start := make([]int, len(end))
	_, err := f.Writer(name, start, end).Write(data.Elements)
	return err
}

// WriteCSV writes the moment and gas source terms to w, one row per
// temperature.
func (r *SweepResult) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	nT, nMom := r.Moments.Shape[0], r.Moments.Shape[1]
	header := []string{"T"}
	for k := 0; k < nMom; k++ {
		header = append(header, fmt.Sprintf("M%d", k))
	}
	header = append(header, r.Species...)
	header = append(header, "J", "Growth", "Oxidation")
	if err := cw.Write(header); err != nil {
		return err
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for i := 0; i < nT; i++ {
		row := []string{f(r.T.Get(i))}
		for k := 0; k < nMom; k++ {
			row = append(row, f(r.Moments.Get(i, k)))
		}
		for j := range r.Species {
			row = append(row, f(r.Gas.Get(i, j)))
		}
		row = append(row, f(r.J.Get(i)), f(r.Growth.Get(i)), f(r.Oxidation.Get(i)))
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Plot saves a plot of the soot mass source term of each process
// against temperature to file, whose format is given by its extension.
func (r *SweepResult) Plot(file string) error {
	p := plot.New()
	p.Title.Text = "Soot mass source"
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = "Source (kg/m³/s)"
	nT := r.T.Shape[0]
	for j, name := range processNames {
		xy := make(plotter.XYs, nT)
		for i := range xy {
			xy[i].X = r.T.Get(i)
			xy[i].Y = r.MassTerms.Get(i, j)
		}
		l, err := plotter.NewLine(xy)
		if err != nil {
			return fmt.Errorf("sootutil: plotting %s: %v", name, err)
		}
		l.Color = plotutil.Color(j)
		p.Add(l)
		p.Legend.Add(name, l)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, file)
}
