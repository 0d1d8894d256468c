// SPDX-License-Identifier: MIT
//
// File: cached.go
// Role: LRU memoization in front of any Canonizer.
// Concurrency:
//   - golang-lru caches are safe for concurrent use; so is Cached.

package canon

import (
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/motive/core"
)

// Cached memoizes canonical forms by the exact labeled link counts of the
// input (in input order). Cached forms are shared; treat them as read-only.
type Cached struct {
	inner Canonizer
	cache *lru.Cache[string, Form]
}

// NewCached wraps inner with an LRU cache of the given capacity.
//
// Errors:
//   - ErrBadCacheSize if size < 1.
func NewCached(inner Canonizer, size int) (*Cached, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewCached(%d): %w", size, ErrBadCacheSize)
	}
	cache, err := lru.New[string, Form](size)
	if err != nil {
		return nil, fmt.Errorf("NewCached: %w", err)
	}

	return &Cached{inner: inner, cache: cache}, nil
}

// Canonical returns the cached form for g or computes and stores it.
func (c *Cached) Canonical(g *core.Graph) (Form, error) {
	fp := fingerprint(g)
	if f, ok := c.cache.Get(fp); ok {
		return f, nil
	}
	f, err := c.inner.Canonical(g)
	if err != nil {
		return Form{}, err
	}
	c.cache.Add(fp, f)

	return f, nil
}

// Len returns the number of cached forms.
func (c *Cached) Len() int { return c.cache.Len() }

// fingerprint is the labeled multiplicity matrix of g in input order.
func fingerprint(g *core.Graph) string {
	var b strings.Builder
	if g.Directed() {
		b.WriteByte('d')
	} else {
		b.WriteByte('u')
	}
	for _, row := range counts(g) {
		for _, c := range row {
			b.WriteString(strconv.Itoa(c))
			b.WriteByte(',')
		}
	}
	for _, l := range g.Labels() {
		b.WriteString(labelSeparator)
		b.WriteString(l)
	}

	return b.String()
}
