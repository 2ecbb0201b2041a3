package store

import (
	"errors"
	"testing"

	. "github.com/fulldump/biff"
)

type visit struct {
	Type  string
	Begin int
	End   int
}

func collectCoIterate(s *Store, typeNames []string) ([]visit, error) {
	visits := []visit{}
	err := s.CoIterate(typeNames, func(record *Record) bool {
		visits = append(visits, visit{record.Type, record.Begin, record.End})
		return true
	})
	return visits, err
}

func TestCoIterate_MergesByPosition(t *testing.T) {

	// Setup
	s := newTestStore()
	s.AddAnnotation("Token", 0, 5)
	s.AddAnnotation("Token", 10, 12)
	s.AddAnnotation("Sentence", 2, 4)
	s.AddAnnotation("Sentence", 10, 12)

	// Run
	visits, err := collectCoIterate(s, []string{"Token", "Sentence"})

	// Check: equal (begin, end) resolves by the requested type order
	AssertNil(err)
	AssertEqual(visits, []visit{
		{"Token", 0, 5},
		{"Sentence", 2, 4},
		{"Token", 10, 12},
		{"Sentence", 10, 12},
	})
}

func TestCoIterate_TypeOrderBreaksTies(t *testing.T) {

	s := newTestStore()
	s.AddAnnotation("Token", 3, 8)
	s.AddAnnotation("Sentence", 3, 8)

	visits, err := collectCoIterate(s, []string{"Sentence", "Token"})

	AssertNil(err)
	AssertEqual(visits, []visit{
		{"Sentence", 3, 8},
		{"Token", 3, 8},
	})
}

func TestCoIterate_SingleType(t *testing.T) {

	s := newTestStore()
	s.AddAnnotation("Token", 6, 9)
	s.AddAnnotation("Token", 0, 5)

	visits, err := collectCoIterate(s, []string{"Token"})

	AssertNil(err)
	AssertEqual(visits, []visit{
		{"Token", 0, 5},
		{"Token", 6, 9},
	})
}

func TestCoIterate_UnknownType(t *testing.T) {

	s := newTestStore()
	s.AddAnnotation("Token", 0, 5)

	_, err := collectCoIterate(s, []string{"Token", "Sentence"})

	AssertTrue(errors.Is(err, ErrorUnknownType))
}

func TestCoIterate_DroppedTypeIsUnknown(t *testing.T) {

	s := newTestStore()
	s.AddAnnotation("Token", 0, 5)
	sid, _ := s.AddAnnotation("Sentence", 0, 20)
	s.Delete(sid) // deleting the last entry drops the Sentence list

	_, err := collectCoIterate(s, []string{"Token", "Sentence"})

	AssertTrue(errors.Is(err, ErrorUnknownType))
}

func TestCoIterate_EmptyListCannotSeed(t *testing.T) {

	s := newTestStore()
	s.AddAnnotation("Token", 0, 5)
	s.element("Sentence") // a list with no entries yet

	_, err := collectCoIterate(s, []string{"Token", "Sentence"})

	AssertTrue(errors.Is(err, ErrorEmptyType))
}

func TestCoIterate_EarlyStop(t *testing.T) {

	s := newTestStore()
	s.AddAnnotation("Token", 0, 5)
	s.AddAnnotation("Token", 6, 9)
	s.AddAnnotation("Token", 10, 12)

	count := 0
	err := s.CoIterate([]string{"Token"}, func(record *Record) bool {
		count++
		return false
	})

	AssertNil(err)
	AssertEqual(count, 1)
}
