package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jobease/jobease-admin/internal/domain"
)

// Set names in dropdowns.yaml
const (
	SetAll                 = "all"
	SetCandidateDepartment = "candidate_department"
	SetCompanyType         = "company_type"
	SetPostJob             = "post_job"
	SetEnhancedJob         = "enhanced_job"
)

//go:embed dropdowns.yaml
var dropdownsYAML []byte

type list struct {
	Name    string   `yaml:"name"`
	Options []string `yaml:"options"`
}

type document struct {
	Sets      map[string][]list `yaml:"sets"`
	SampleJob map[string]any    `yaml:"sample_job"`
}

// Catalog is the parsed reference data
type Catalog struct {
	sets      map[string][]domain.DropdownList
	sampleJob map[string]any
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(dropdownsYAML)
	})
	return defaultCat, defaultErr
}

// Parse decodes and validates a catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	c := &Catalog{
		sets:      make(map[string][]domain.DropdownList, len(doc.Sets)),
		sampleJob: doc.SampleJob,
	}

	for setName, lists := range doc.Sets {
		seen := make(map[string]bool, len(lists))
		out := make([]domain.DropdownList, 0, len(lists))

		for _, l := range lists {
			if l.Name == "" {
				return nil, fmt.Errorf("catalog: set %q has a list without a name", setName)
			}
			if seen[l.Name] {
				return nil, fmt.Errorf("catalog: set %q lists %q twice", setName, l.Name)
			}
			if len(l.Options) == 0 {
				return nil, fmt.Errorf("catalog: %s/%s has no options", setName, l.Name)
			}
			seen[l.Name] = true
			out = append(out, domain.DropdownList{Name: l.Name, Options: l.Options})
		}

		c.sets[setName] = out
	}

	return c, nil
}

// Set returns a copy of the named set in declaration order
func (c *Catalog) Set(name string) ([]domain.DropdownList, error) {
	lists, ok := c.sets[name]
	if !ok {
		return nil, fmt.Errorf("catalog: unknown set %q", name)
	}

	out := make([]domain.DropdownList, len(lists))
	for i, l := range lists {
		out[i] = domain.DropdownList{Name: l.Name, Options: append([]string(nil), l.Options...)}
	}
	return out, nil
}

// List returns one list of a set
func (c *Catalog) List(set, name string) (domain.DropdownList, error) {
	lists, err := c.Set(set)
	if err != nil {
		return domain.DropdownList{}, err
	}
	for _, l := range lists {
		if l.Name == name {
			return l, nil
		}
	}
	return domain.DropdownList{}, fmt.Errorf("catalog: set %q has no list %q", set, name)
}

// Names returns the list names of a set in declaration order
func (c *Catalog) Names(set string) ([]string, error) {
	lists, err := c.Set(set)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(lists))
	for i, l := range lists {
		names[i] = l.Name
	}
	return names, nil
}

// SampleJob returns a copy of the demonstration job fields
func (c *Catalog) SampleJob() map[string]any {
	out := make(map[string]any, len(c.sampleJob))
	for k, v := range c.sampleJob {
		out[k] = v
	}
	return out
}
