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

// Package sootlib is a quadrature-method-of-moments (QMOM) closure for
// soot formation and destruction in reacting flows.
//
// Given the first few moments of the soot particle-mass distribution and
// the local gas state, a Model inverts the moments into a small set of
// quadrature nodes, evaluates nucleation, surface growth, oxidation and
// coagulation rate laws (implemented in the packages under science/), and
// returns the moment source terms together with the matching gas-phase
// species source terms.
//
// A Model holds no per-evaluation state, so a single Model can be shared
// by goroutines that evaluate different grid cells.
package sootlib

// Version gives the version number.
const Version = "0.3.0"

// Physical constants.
const (
	Avogadro    = 6.02214076e26  // #/kmol
	Boltzmann   = 1.38064852e-23 // J/K
	GasConstant = 8314.46        // J/kmol/K
	Atmosphere  = 101325.0       // Pa

	// MWCarbon is the molar mass of carbon [kg/kmol].
	MWCarbon = 12.011

	// EpsC is the van der Waals enhancement factor applied to
	// free-molecular collision rates.
	EpsC = 2.2
)
