// Package shapes maintains the shape catalog: named mxGraph styles the
// drawing tools resolve by shape name instead of raw style strings.
//
// The catalog starts empty and must be initialized before use. A builtin
// set always loads; a remote index can extend it. Initialize is cheap to
// call repeatedly and Reset returns the catalog to the uninitialized
// state, so a long-running server can pick up index changes on demand.
package shapes

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	derrors "github.com/drawdeck/drawdeck/pkg/errors"
)

// Shape is one named entry in the catalog.
type Shape struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Style       string   `json:"style"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Catalog is a concurrency-safe shape registry.
type Catalog struct {
	fetcher *Fetcher // nil means builtin shapes only

	mu     sync.RWMutex
	ready  bool
	shapes map[string]Shape // canonical name -> shape
	names  []string         // canonical names, sorted, drives listing
	alias  map[string]string
}

// New creates an uninitialized catalog. With a nil fetcher only the
// builtin shapes load.
func New(fetcher *Fetcher) *Catalog {
	return &Catalog{fetcher: fetcher}
}

// Initialize loads the builtin shapes and, when a fetcher is configured,
// merges the remote index on top. Calling it on a ready catalog is a
// no-op; use Reset first to force a reload.
func (c *Catalog) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return nil
	}

	shapes := make(map[string]Shape, len(builtin))
	for _, s := range builtin {
		shapes[canonical(s.Name)] = s
	}
	if c.fetcher != nil {
		remote, err := c.fetcher.Fetch(ctx)
		if err != nil {
			return err
		}
		for _, s := range remote {
			// A bad record in the index poisons only itself.
			if derrors.ValidateShapeName(s.Name) != nil || derrors.ValidateStyle(s.Style) != nil {
				continue
			}
			shapes[canonical(s.Name)] = s
		}
	}

	c.shapes = shapes
	c.names = make([]string, 0, len(shapes))
	c.alias = make(map[string]string)
	for name, s := range shapes {
		c.names = append(c.names, name)
		for _, a := range s.Aliases {
			c.alias[canonical(a)] = name
		}
	}
	sort.Strings(c.names)
	c.ready = true
	return nil
}

// Reset discards all loaded shapes. The next Initialize reloads from
// scratch, including the remote index.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ready = false
	c.shapes = nil
	c.names = nil
	c.alias = nil
}

// Ready reports whether Initialize has completed.
func (c *Catalog) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

func (c *Catalog) guard() error {
	if !c.ready {
		return derrors.New(derrors.ErrCodeCatalogNotReady, "shape catalog not initialized")
	}
	return nil
}

// Get resolves a shape by name or alias, case-insensitively.
func (c *Catalog) Get(name string) (Shape, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.guard(); err != nil {
		return Shape{}, err
	}
	key := canonical(name)
	if target, ok := c.alias[key]; ok {
		key = target
	}
	s, ok := c.shapes[key]
	if !ok {
		return Shape{}, derrors.New(derrors.ErrCodeShapeNotFound, "shape %q not found", name)
	}
	return s, nil
}

// StyleFor is Get reduced to the style string.
func (c *Catalog) StyleFor(name string) (string, error) {
	s, err := c.Get(name)
	if err != nil {
		return "", err
	}
	return s.Style, nil
}

// Categories lists the distinct categories in sorted order.
func (c *Catalog) Categories() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.guard(); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, name := range c.names {
		cat := c.shapes[name].Category
		if cat != "" && !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	sort.Strings(out)
	return out, nil
}

// List returns the shapes of one category, or every shape when category is
// empty, in name order.
func (c *Catalog) List(category string) ([]Shape, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.guard(); err != nil {
		return nil, err
	}
	var out []Shape
	for _, name := range c.names {
		s := c.shapes[name]
		if category == "" || s.Category == category {
			out = append(out, s)
		}
	}
	return out, nil
}

// Search fuzzy-matches the query against shape names and returns up to
// limit shapes, best match first. A non-positive limit means no limit.
func (c *Catalog) Search(query string, limit int) ([]Shape, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.guard(); err != nil {
		return nil, err
	}
	matches := fuzzy.Find(canonical(query), c.names)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Shape, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.shapes[m.Str])
	}
	return out, nil
}

func canonical(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}
