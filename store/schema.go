package store

import (
	"fmt"
)

// Resolver is the type system collaborator. The store never inspects types on
// its own: attribute lists, the interval/relational split and the lineage all
// come from here.
type Resolver interface {
	// Attributes returns the attribute names of a type in declaration order.
	Attributes(typeName string) ([]string, error)

	// IsInterval reports whether records of this type are ordered spans.
	IsInterval(typeName string) bool

	// IsSubtype reports whether typeName is parent or a descendant of parent.
	IsSubtype(typeName, parent string) bool
}

// Definition is one externally resolved type, used to bulk load a schema.
type Definition struct {
	Name       string   `json:"name"`
	Parents    []string `json:"parents"`
	Attributes []string `json:"attributes"`
}

// TypeDescriptor maps attribute names to slot offsets for one type name.
// Descriptors are monotonic: once created they are never revised, so slot
// offsets held by existing records stay valid for the life of the store.
type TypeDescriptor struct {
	Name    string
	Slots   map[string]int // attribute name -> slot offset, starting at AttrSlot
	Order   []string       // attribute names in declaration order
	Parents map[string]bool
}

// NumAttributes returns the number of attribute slots of the type.
func (d *TypeDescriptor) NumAttributes() int {
	return len(d.Order)
}

// Schema is the registry of type descriptors. Unknown types are registered on
// first reference through the resolver when dynamic registration is enabled.
type Schema struct {
	resolver Resolver
	dynamic  bool
	types    map[string]*TypeDescriptor
}

func NewSchema(resolver Resolver, dynamic bool) *Schema {
	return &Schema{
		resolver: resolver,
		dynamic:  dynamic,
		types:    map[string]*TypeDescriptor{},
	}
}

// Load bulk registers externally resolved definitions. Already registered
// type names are left untouched.
func (s *Schema) Load(definitions []Definition) {
	for _, def := range definitions {
		if _, exists := s.types[def.Name]; exists {
			continue
		}
		s.types[def.Name] = s.newDescriptor(def.Name, def.Attributes, def.Parents)
	}
}

func (s *Schema) newDescriptor(name string, attributes, parents []string) *TypeDescriptor {
	descriptor := &TypeDescriptor{
		Name:    name,
		Slots:   map[string]int{},
		Order:   attributes,
		Parents: map[string]bool{},
	}
	slot := AttrSlot
	for _, attribute := range attributes {
		descriptor.Slots[attribute] = slot
		slot++
	}
	for _, parent := range parents {
		descriptor.Parents[parent] = true
	}
	return descriptor
}

// Resolve returns the descriptor for typeName, registering it through the
// resolver on first reference when dynamic registration is enabled.
func (s *Schema) Resolve(typeName string) (*TypeDescriptor, error) {
	if descriptor, exists := s.types[typeName]; exists {
		return descriptor, nil
	}
	if !s.dynamic {
		return nil, fmt.Errorf("%w: '%s' is not registered and dynamic registration is disabled", ErrorUnknownType, typeName)
	}
	attributes, err := s.resolver.Attributes(typeName)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve '%s': %s", ErrorUnknownType, typeName, err.Error())
	}
	descriptor := s.newDescriptor(typeName, attributes, nil)
	s.types[typeName] = descriptor
	return descriptor, nil
}

// Slot returns the slot offset of attrName within typeName.
func (s *Schema) Slot(typeName, attrName string) (int, error) {
	descriptor, err := s.Resolve(typeName)
	if err != nil {
		return 0, err
	}
	slot, exists := descriptor.Slots[attrName]
	if !exists {
		return 0, fmt.Errorf("%w: '%s' has no '%s' attribute", ErrorUnknownAttribute, typeName, attrName)
	}
	return slot, nil
}

// Parents returns the lineage set of typeName. The registry does not compute
// lineage, it only hands back what was loaded.
func (s *Schema) Parents(typeName string) (map[string]bool, error) {
	descriptor, err := s.Resolve(typeName)
	if err != nil {
		return nil, err
	}
	return descriptor.Parents, nil
}
