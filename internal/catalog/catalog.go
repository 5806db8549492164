// Package catalog holds the fixed specimen and diagnosis records of the lab.
//
// The records ship inside the binary as catalog.yaml and are parsed once at
// package initialization. A broken document is a build defect, so Default
// panics instead of returning an error.
package catalog

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/rosalab/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// document mirrors the on-disk layout of catalog.yaml.
type document struct {
	DefaultDiagnosis string                      `yaml:"default_diagnosis"`
	Specimens        []domain.Specimen           `yaml:"specimens"`
	Diagnoses        map[string]domain.Diagnosis `yaml:"diagnoses"`
}

// Catalog is an immutable, ordered set of specimens plus the diagnosis
// lookup keyed by specimen identity.
type Catalog struct {
	specimens []domain.Specimen
	index     map[string]int
	diagnoses map[string]domain.Diagnosis
	defaultID string
}

var std = mustParse(rawCatalog)

// Default returns the catalog compiled into the binary.
func Default() *Catalog { return std }

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog.yaml: %v", err))
	}
	return c
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return build(doc)
}

func build(doc document) (*Catalog, error) {
	if len(doc.Specimens) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		specimens: make([]domain.Specimen, 0, len(doc.Specimens)),
		index:     make(map[string]int, len(doc.Specimens)),
		diagnoses: make(map[string]domain.Diagnosis, len(doc.Diagnoses)),
		defaultID: doc.DefaultDiagnosis,
	}

	for _, s := range doc.Specimens {
		if s.ID == "" {
			return nil, fmt.Errorf("specimen %q has no id: %w", s.Name, ErrEmptyCatalog)
		}
		if _, dup := c.index[s.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSpecimen, s.ID)
		}
		if !hexColor.MatchString(s.Color) {
			return nil, fmt.Errorf("specimen %s color %q: %w", s.ID, s.Color, ErrInvalidColor)
		}
		c.index[s.ID] = len(c.specimens)
		c.specimens = append(c.specimens, s)
	}

	for id, d := range doc.Diagnoses {
		if !hexColor.MatchString(d.HexColor) {
			return nil, fmt.Errorf("diagnosis %s color %q: %w", id, d.HexColor, ErrInvalidColor)
		}
		if i, ok := c.index[id]; ok && !strings.EqualFold(c.specimens[i].Color, d.HexColor) {
			return nil, fmt.Errorf("%w: %s has %s, specimen has %s",
				ErrColorMismatch, id, d.HexColor, c.specimens[i].Color)
		}
		c.diagnoses[id] = d
	}

	if _, ok := c.diagnoses[c.defaultID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingDefault, c.defaultID)
	}
	return c, nil
}

// Specimens returns the specimens in bench order. The slice is a copy.
func (c *Catalog) Specimens() []domain.Specimen {
	out := make([]domain.Specimen, len(c.specimens))
	copy(out, c.specimens)
	return out
}

// Len returns the number of specimens.
func (c *Catalog) Len() int { return len(c.specimens) }

// First returns the first specimen in bench order.
func (c *Catalog) First() domain.Specimen { return c.specimens[0] }

// At returns the specimen at position i in bench order.
func (c *Catalog) At(i int) domain.Specimen { return c.specimens[i] }

// IDs returns specimen identities in bench order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.specimens))
	for i, s := range c.specimens {
		ids[i] = s.ID
	}
	return ids
}

// Specimen looks up a specimen by identity.
func (c *Catalog) Specimen(id string) (domain.Specimen, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Specimen{}, false
	}
	return c.specimens[i], true
}

// Has reports whether id is a known specimen identity.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// IndexOf returns the bench position of id, or -1 when unknown.
func (c *Catalog) IndexOf(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// DefaultID is the identity whose diagnosis is used when a lookup misses.
func (c *Catalog) DefaultID() string { return c.defaultID }

// Diagnose returns the diagnosis for id. Unknown or empty identities
// resolve to the default entry.
func (c *Catalog) Diagnose(id string) domain.Diagnosis {
	if d, ok := c.diagnoses[id]; ok {
		return d
	}
	return c.diagnoses[c.defaultID]
}

// HasDiagnosis reports whether id has its own diagnosis entry.
func (c *Catalog) HasDiagnosis(id string) bool {
	_, ok := c.diagnoses[id]
	return ok
}
