package store

import (
	"errors"
	"testing"

	. "github.com/fulldump/biff"
)

func TestSchema_DynamicRegistration(t *testing.T) {

	s := NewSchema(newTestResolver(), true)

	descriptor, err := s.Resolve("Token")

	AssertNil(err)
	AssertEqual(descriptor.Order, []string{"pos", "lemma"})
	AssertEqual(descriptor.NumAttributes(), 2)
}

func TestSchema_DynamicDisabled(t *testing.T) {

	s := NewSchema(newTestResolver(), false)

	_, err := s.Resolve("Token")

	AssertTrue(errors.Is(err, ErrorUnknownType))
}

func TestSchema_SlotsStartAfterThePrefix(t *testing.T) {

	s := NewSchema(newTestResolver(), true)

	pos, errPos := s.Slot("Token", "pos")
	lemma, errLemma := s.Slot("Token", "lemma")

	AssertNil(errPos)
	AssertNil(errLemma)
	AssertEqual(pos, AttrSlot)
	AssertEqual(lemma, AttrSlot+1)
}

func TestSchema_UnknownAttribute(t *testing.T) {

	s := NewSchema(newTestResolver(), true)

	_, err := s.Slot("Token", "color")

	AssertTrue(errors.Is(err, ErrorUnknownAttribute))
}

func TestSchema_DescriptorsAreMonotonic(t *testing.T) {

	// Setup: register dynamically first
	s := NewSchema(newTestResolver(), true)
	before, _ := s.Resolve("Token")

	// Run: a later bulk load must not revise the registered descriptor
	s.Load([]Definition{
		{Name: "Token", Attributes: []string{"other"}},
	})

	// Check
	after, _ := s.Resolve("Token")
	AssertEqual(after, before)
}

func TestSchema_LoadKeepsParents(t *testing.T) {

	s := NewSchema(newTestResolver(), false)
	s.Load([]Definition{
		{Name: "EntityMention", Parents: []string{"Token", "Annotation"}},
	})

	parents, err := s.Parents("EntityMention")

	AssertNil(err)
	AssertEqual(parents, map[string]bool{"Token": true, "Annotation": true})
}
