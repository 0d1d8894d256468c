// SPDX-License-Identifier: MIT

// Command motive extracts motifs from a graph and scores them by how many
// bits they save under the ER, edge-list and beta null models.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
