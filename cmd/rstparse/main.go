// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Rstparse prints the document tree of reStructuredText files.
package main

import (
	"os"

	"github.com/matthewdargan/rstdoc/cmd/rstparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
