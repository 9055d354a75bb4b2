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

import "errors"

var (
	// ErrConfig is returned (wrapped) when a Model or one of its
	// components is configured inconsistently.
	ErrConfig = errors.New("sootlib: invalid configuration")

	// ErrMissingSpecies is returned (wrapped) when a gas species required
	// by the selected mechanisms is not present in the species list.
	ErrMissingSpecies = errors.New("sootlib: missing required species")

	// ErrNotRealizable is returned by Inverters when a moment set does
	// not correspond to a non-negative distribution.
	ErrNotRealizable = errors.New("sootlib: moments are not realizable")
)
