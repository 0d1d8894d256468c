// SPDX-License-Identifier: MIT
// Package: motive/builder
//
// label.go - node label schemes.

package builder

import (
	"fmt"
	"strconv"
)

// LabelFn generates a node label from its index in the graph under
// construction. It must be deterministic.
type LabelFn func(idx int) string

// NoLabel returns "" for every index.
func NoLabel(int) string {
	return ""
}

// DecimalLabel returns the decimal string of idx, e.g. 0->"0", 42->"42".
func DecimalLabel(idx int) string {
	return strconv.Itoa(idx)
}

// ColumnLabel returns the spreadsheet-column name of idx,
// e.g. 0->"A", 25->"Z", 26->"AA".
// Panics if idx < 0.
func ColumnLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ColumnLabel: idx must be >= 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixLabel returns a LabelFn producing prefix + decimal index,
// e.g. "v0", "v1", ...
func PrefixLabel(prefix string) LabelFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
