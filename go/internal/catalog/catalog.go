// Package catalog holds the suggested role names offered when a team is
// created. Roles on a team are free text; the catalog only seeds the picker.
package catalog

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

var defaultRoles = []string{
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"Software Engineer",
	"Data Scientist",
	"Machine Learning Engineer",
	"DevOps Engineer",
	"Cloud Engineer",
	"UI/UX Designer",
	"Cybersecurity Specialist",
}

type file struct {
	Roles []string `yaml:"roles"`
}

// Catalog is an immutable ordered list of role names.
type Catalog struct {
	roles []string
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{roles: slices.Clone(defaultRoles)}
}

// Load reads a catalog from a YAML file of the form
//
//	roles:
//	  - Frontend Developer
//	  - Backend Developer
//
// An empty path yields the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read role catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog YAML. Names are trimmed and de-duplicated.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse role catalog: %w", err)
	}

	roles := make([]string, 0, len(f.Roles))
	for _, r := range f.Roles {
		r = strings.TrimSpace(r)
		if r == "" || slices.Contains(roles, r) {
			continue
		}
		roles = append(roles, r)
	}
	if len(roles) == 0 {
		return nil, fmt.Errorf("role catalog has no roles")
	}
	return &Catalog{roles: roles}, nil
}

// Roles returns a copy of the catalog in file order.
func (c *Catalog) Roles() []string {
	return slices.Clone(c.roles)
}
