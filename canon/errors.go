// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the canon package.

package canon

import "errors"

var (
	// ErrTooLarge indicates a graph above the canonizer's size limit.
	ErrTooLarge = errors.New("canon: graph too large")

	// ErrBadCacheSize indicates a non-positive cache capacity.
	ErrBadCacheSize = errors.New("canon: cache size must be positive")
)
