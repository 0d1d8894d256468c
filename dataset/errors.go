// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrMalformedLine indicates a non-comment line with fewer than two
	// fields.
	ErrMalformedLine = errors.New("dataset: malformed line")

	// ErrEmpty indicates an input without a single link.
	ErrEmpty = errors.New("dataset: no links")
)
