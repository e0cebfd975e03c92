// Package catalog provides the course catalog as a layered lookup: an
// immutable base loaded at startup plus a mutable overlay holding entries
// synthesized during audit reconciliation. The base never changes at runtime.
package catalog

import (
	"sort"

	"github.com/aisharahman/gradpath/internal/domain"
)

type Catalog struct {
	base    map[string]*domain.Course
	overlay map[string]*domain.Course
}

// New returns a catalog over the built-in base course data.
func New() *Catalog {
	return NewWithBase(baseCourses)
}

// NewWithBase returns a catalog over the supplied base entries. Used by tests
// to build small fixtures.
func NewWithBase(base map[string]*domain.Course) *Catalog {
	return &Catalog{
		base:    base,
		overlay: make(map[string]*domain.Course),
	}
}

// Get looks up a course by identifier, overlay first.
func (c *Catalog) Get(id string) (*domain.Course, bool) {
	if course, ok := c.overlay[id]; ok {
		return course, true
	}
	course, ok := c.base[id]
	return course, ok
}

// Has reports whether the identifier resolves in either layer.
func (c *Catalog) Has(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// AddSynthesized places a course into the overlay. The base layer is never
// touched; an overlay entry shadows a base entry with the same ID.
func (c *Catalog) AddSynthesized(course *domain.Course) {
	course.Synthesized = true
	c.overlay[course.ID] = course
}

// Synthesized returns the overlay entries in ID order.
func (c *Catalog) Synthesized() []*domain.Course {
	out := make([]*domain.Course, 0, len(c.overlay))
	for _, course := range c.overlay {
		out = append(out, course)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// All returns every course from both layers in ID order. Overlay entries
// shadow base entries with the same identifier.
func (c *Catalog) All() []*domain.Course {
	seen := make(map[string]bool, len(c.base)+len(c.overlay))
	out := make([]*domain.Course, 0, len(c.base)+len(c.overlay))
	for id, course := range c.overlay {
		seen[id] = true
		out = append(out, course)
	}
	for id, course := range c.base {
		if !seen[id] {
			out = append(out, course)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
