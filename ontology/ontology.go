// Package ontology loads a JSON ontology specification file and resolves it
// into type definitions for the store: attribute lists in declaration order,
// parent lineage and the record kind of every type. The store itself never
// reads files or inspects types, it only consumes this resolver.
package ontology

import (
	"fmt"
	"os"

	"github.com/go-json-experiment/json"

	"github.com/fulldump/annodb/store"
)

const (
	KindAnnotation = "annotation"
	KindLink       = "link"
	KindGroup      = "group"
)

type Attribute struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

type Entry struct {
	EntryName   string      `json:"entry_name"`
	ParentEntry string      `json:"parent_entry,omitempty"`
	Kind        string      `json:"kind,omitempty"` // annotation | link | group, inherited when empty
	Attributes  []Attribute `json:"attributes,omitempty"`
}

type Spec struct {
	Name        string  `json:"name,omitempty"`
	Definitions []Entry `json:"definitions"`
}

type Ontology struct {
	spec    *Spec
	entries map[string]*Entry
}

// Load reads an ontology specification file.
func Load(filename string) (*Ontology, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open ontology: %w", err)
	}
	defer f.Close()

	spec := &Spec{}
	err = json.UnmarshalRead(f, spec)
	if err != nil {
		return nil, fmt.Errorf("decode ontology: %w", err)
	}

	return New(spec)
}

// New builds an ontology from an in-memory specification.
func New(spec *Spec) (*Ontology, error) {
	o := &Ontology{
		spec:    spec,
		entries: map[string]*Entry{},
	}
	for i := range spec.Definitions {
		entry := &spec.Definitions[i]
		if entry.EntryName == "" {
			return nil, fmt.Errorf("ontology entry %d has no entry_name", i)
		}
		if _, exists := o.entries[entry.EntryName]; exists {
			return nil, fmt.Errorf("ontology entry '%s' is defined twice", entry.EntryName)
		}
		switch entry.Kind {
		case "", KindAnnotation, KindLink, KindGroup:
		default:
			return nil, fmt.Errorf("ontology entry '%s' has unexpected kind '%s', it should be [annotation|link|group]", entry.EntryName, entry.Kind)
		}
		o.entries[entry.EntryName] = entry
	}
	return o, nil
}

// Attributes returns the attribute names of typeName in declaration order.
func (o *Ontology) Attributes(typeName string) ([]string, error) {
	entry, exists := o.entries[typeName]
	if !exists {
		return nil, fmt.Errorf("'%s' is not defined in the ontology", typeName)
	}
	names := make([]string, len(entry.Attributes))
	for i, attribute := range entry.Attributes {
		names[i] = attribute.Name
	}
	return names, nil
}

// Kind resolves the record kind of typeName, walking up the parent chain when
// the entry does not declare one.
func (o *Ontology) Kind(typeName string) string {
	visited := map[string]bool{}
	for typeName != "" && !visited[typeName] {
		visited[typeName] = true
		entry, exists := o.entries[typeName]
		if !exists {
			return ""
		}
		if entry.Kind != "" {
			return entry.Kind
		}
		typeName = entry.ParentEntry
	}
	return ""
}

// IsInterval reports whether records of typeName are ordered spans.
func (o *Ontology) IsInterval(typeName string) bool {
	return o.Kind(typeName) == KindAnnotation
}

// IsSubtype reports whether typeName is parent itself or one of its
// descendants.
func (o *Ontology) IsSubtype(typeName, parent string) bool {
	visited := map[string]bool{}
	for typeName != "" && !visited[typeName] {
		if typeName == parent {
			return true
		}
		visited[typeName] = true
		entry, exists := o.entries[typeName]
		if !exists {
			return false
		}
		typeName = entry.ParentEntry
	}
	return false
}

// Lineage returns every ancestor of typeName, nearest first.
func (o *Ontology) Lineage(typeName string) []string {
	parents := []string{}
	visited := map[string]bool{typeName: true}
	entry, exists := o.entries[typeName]
	for exists && entry.ParentEntry != "" && !visited[entry.ParentEntry] {
		parents = append(parents, entry.ParentEntry)
		visited[entry.ParentEntry] = true
		entry, exists = o.entries[entry.ParentEntry]
	}
	return parents
}

// Definitions resolves the whole specification for a bulk schema load, in
// declaration order.
func (o *Ontology) Definitions() []store.Definition {
	definitions := make([]store.Definition, 0, len(o.spec.Definitions))
	for _, entry := range o.spec.Definitions {
		attributes, _ := o.Attributes(entry.EntryName)
		definitions = append(definitions, store.Definition{
			Name:       entry.EntryName,
			Parents:    o.Lineage(entry.EntryName),
			Attributes: attributes,
		})
	}
	return definitions
}
