package catalog

import (
	"fmt"
	"slices"

	"worldcraft/core/crafting"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Catalog is the set of known materials and their tag groups.
type Catalog struct {
	materials map[crafting.Identity]struct{}
	tags      map[string][]crafting.Identity
}

type document struct {
	Materials []string            `yaml:"materials"`
	Tags      map[string][]string `yaml:"tags"`
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{
		materials: make(map[crafting.Identity]struct{}, len(doc.Materials)+1),
		tags:      make(map[string][]crafting.Identity, len(doc.Tags)),
	}
	c.materials[crafting.Air] = struct{}{}
	for _, m := range doc.Materials {
		if m == "" {
			return nil, fmt.Errorf("catalog lists an empty material")
		}
		c.materials[crafting.Identity(m)] = struct{}{}
	}

	for tag, members := range doc.Tags {
		ids := make([]crafting.Identity, 0, len(members))
		for _, m := range members {
			id := crafting.Identity(m)
			if !c.Known(id) {
				return nil, fmt.Errorf("tag %q references unknown material %q", tag, m)
			}
			ids = append(ids, id)
		}
		c.tags[tag] = ids
	}
	return c, nil
}

// Load reads and parses a catalog file.
func Load(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Known reports whether the identity is a listed material.
func (c *Catalog) Known(id crafting.Identity) bool {
	if c == nil {
		return !id.IsEmpty()
	}
	_, ok := c.materials[id]
	return ok
}

// Tag returns the members of a tag group.
func (c *Catalog) Tag(name string) ([]crafting.Identity, bool) {
	if c == nil {
		return nil, false
	}
	members, ok := c.tags[name]
	return slices.Clone(members), ok
}

// Len returns the number of known materials, air included.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.materials)
}
