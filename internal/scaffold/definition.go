// Package scaffold renders repository and service boilerplate for new
// queryable entities from a YAML definition.
package scaffold

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

type Kind string

const (
	KindRepository Kind = "repository"
	KindService    Kind = "service"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindRepository, KindService:
		return k, nil
	default:
		return "", fmt.Errorf("invalid type %q: use repository or service", s)
	}
}

type FilterDef struct {
	Field string `yaml:"field"`
	Mode  string `yaml:"mode"`
}

// Definition describes one entity's allow-list and storage.
type Definition struct {
	Name     string      `yaml:"name"`
	Table    string      `yaml:"table"`
	IDPrefix string      `yaml:"id_prefix"`
	Filters  []FilterDef `yaml:"filters"`
	Sorts    []string    `yaml:"sorts"`
	Includes []string    `yaml:"includes"`
	Fields   []string    `yaml:"fields"`
}

// DefaultDefinition is used when no YAML file is given.
func DefaultDefinition(name string) Definition {
	def := Definition{
		Name: name,
		Filters: []FilterDef{
			{Field: "id", Mode: "exact"},
			{Field: "name", Mode: "partial"},
		},
		Sorts:  []string{"id", "name"},
		Fields: []string{"id", "name"},
	}
	def.fillDefaults()
	return def
}

// LoadDefinition decodes a YAML definition. Unknown keys are rejected.
func LoadDefinition(r io.Reader) (Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, errors.New("empty definition")
		}
		return Definition{}, fmt.Errorf("decode definition: %w", err)
	}

	def.fillDefaults()
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

func (d *Definition) fillDefaults() {
	d.Name = exportName(d.Name)
	if d.Table == "" {
		d.Table = snakeCase(d.Name) + "s"
	}
	if d.IDPrefix == "" {
		d.IDPrefix = snakeCase(d.Name) + "_"
	}
	for i := range d.Filters {
		d.Filters[i].Mode = strings.ToLower(d.Filters[i].Mode)
		if d.Filters[i].Mode == "" {
			d.Filters[i].Mode = "exact"
		}
	}
	if !slices.Contains(d.Fields, "id") {
		d.Fields = append([]string{"id"}, d.Fields...)
	}
}

func (d Definition) Validate() error {
	if d.Name == "" {
		return errors.New("name is required")
	}
	for _, f := range d.Filters {
		if f.Field == "" {
			return errors.New("filter field is required")
		}
		if f.Mode != "exact" && f.Mode != "partial" {
			return fmt.Errorf("filter %s: mode must be exact or partial, got %q", f.Field, f.Mode)
		}
	}
	for _, s := range d.Sorts {
		if strings.HasPrefix(s, "-") {
			return fmt.Errorf("sort %s: list field names without direction", s)
		}
	}
	return nil
}

// exportName turns "brand", "stock item" or "stock_item" into "Brand" or
// "StockItem".
func exportName(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range strings.TrimSpace(s) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
