package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/placardhq/placard/schema"
)

// ErrEmptyCatalog is returned when a catalog is built without any jurisdiction.
var ErrEmptyCatalog = errors.New("jurisdiction catalog is empty")

// ErrNilCatalog is returned when an engine is built without a catalog.
var ErrNilCatalog = errors.New("engine requires a jurisdiction catalog")

// ErrUnknownJurisdiction describes a jurisdiction id that is not in the catalog.
var ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

// Catalog is the ordered, read-only list of known jurisdiction profiles.
// The first entry is the default used when a lookup misses.
type Catalog struct {
	profiles []schema.JurisdictionProfile
	byID     map[string]int
}

// NewCatalog builds a catalog from profiles in their canonical order.
// An empty list, a blank id or a repeated id is an error.
func NewCatalog(profiles []schema.JurisdictionProfile) (*Catalog, error) {
	if len(profiles) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		profiles: slices.Clone(profiles),
		byID:     make(map[string]int, len(profiles)),
	}
	for i, p := range c.profiles {
		if p.ID == "" {
			return nil, fmt.Errorf("jurisdiction at position %d has no id", i+1)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate jurisdiction id %q", p.ID)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

// Profile returns the profile with the given id.
func (c *Catalog) Profile(id string) (schema.JurisdictionProfile, bool) {
	i, ok := c.byID[id]
	if !ok {
		return schema.JurisdictionProfile{}, false
	}
	return c.profiles[i], true
}

// ResolveOrDefault returns the profile with the given id, or the first catalog
// entry when the id is unknown. fellBack reports whether the default was used.
func (c *Catalog) ResolveOrDefault(id string) (profile schema.JurisdictionProfile, fellBack bool) {
	if p, ok := c.Profile(id); ok {
		return p, false
	}
	return c.profiles[0], true
}

// Default returns the first catalog entry.
func (c *Catalog) Default() schema.JurisdictionProfile {
	return c.profiles[0]
}

// Profiles returns a copy of every profile in catalog order.
func (c *Catalog) Profiles() []schema.JurisdictionProfile {
	return slices.Clone(c.profiles)
}

// Len returns the number of profiles.
func (c *Catalog) Len() int {
	return len(c.profiles)
}
