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

// Command soot is a command-line interface for the sootlib QMOM soot model.
package main

import (
	"fmt"
	"os"

	"github.com/EdinSmartLab/sootlib/sootutil"
)

func main() {
	if err := sootutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
