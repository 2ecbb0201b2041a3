package store

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestIndexMap_FindBy(t *testing.T) {

	// Setup
	s := newTestStore()
	id, _ := s.AddAnnotation("Token", 0, 5)
	s.SetAttribute(id, "lemma", "run")

	// Run
	errIndex := s.CreateIndex("by-lemma", &IndexMapOptions{
		Type:      "Token",
		Attribute: "lemma",
	})

	// Check
	AssertNil(errIndex)
	record, errFind := s.FindBy("by-lemma", "run")
	AssertNil(errFind)
	AssertEqual(record.ID, id)
}

func TestIndexMap_ValueNotIndexed(t *testing.T) {

	s := newTestStore()
	id, _ := s.AddAnnotation("Token", 0, 5)
	s.SetAttribute(id, "lemma", "run")
	s.CreateIndex("by-lemma", &IndexMapOptions{Type: "Token", Attribute: "lemma"})

	_, err := s.FindBy("by-lemma", "walk")

	AssertNotNil(err)
}

func TestIndexMap_NullAttributesStayUnindexed(t *testing.T) {

	s := newTestStore()
	s.AddAnnotation("Token", 0, 5) // lemma never set

	err := s.CreateIndex("by-lemma", &IndexMapOptions{Type: "Token", Attribute: "lemma"})

	AssertNil(err)
	_, errFind := s.FindBy("by-lemma", "")
	AssertNotNil(errFind)
}

func TestIndexMap_BackfillConflict(t *testing.T) {

	s := newTestStore()
	a, _ := s.AddAnnotation("Token", 0, 5)
	b, _ := s.AddAnnotation("Token", 6, 9)
	s.SetAttribute(a, "lemma", "run")
	s.SetAttribute(b, "lemma", "run")

	err := s.CreateIndex("by-lemma", &IndexMapOptions{Type: "Token", Attribute: "lemma"})

	AssertNotNil(err)
}

func TestIndexMap_SetAttributeConflictRollsBack(t *testing.T) {

	// Setup
	s := newTestStore()
	a, _ := s.AddAnnotation("Token", 0, 5)
	b, _ := s.AddAnnotation("Token", 6, 9)
	s.SetAttribute(a, "lemma", "run")
	s.SetAttribute(b, "lemma", "walk")
	s.CreateIndex("by-lemma", &IndexMapOptions{Type: "Token", Attribute: "lemma"})

	// Run: collide with the value of a
	err := s.SetAttribute(b, "lemma", "run")

	// Check: write rejected, old value still readable and indexed
	AssertNotNil(err)
	value, _ := s.GetAttribute(b, "lemma")
	AssertEqual(value, "walk")
	record, errFind := s.FindBy("by-lemma", "walk")
	AssertNil(errFind)
	AssertEqual(record.ID, b)
}

func TestIndexMap_DeleteRemovesFromIndex(t *testing.T) {

	s := newTestStore()
	id, _ := s.AddAnnotation("Token", 0, 5)
	s.SetAttribute(id, "lemma", "run")
	s.CreateIndex("by-lemma", &IndexMapOptions{Type: "Token", Attribute: "lemma"})

	AssertNil(s.Delete(id))

	_, err := s.FindBy("by-lemma", "run")
	AssertNotNil(err)
}

func TestIndexMap_OtherTypesAreIgnored(t *testing.T) {

	s := newTestStore()
	token, _ := s.AddAnnotation("Token", 0, 5)
	sentence, _ := s.AddAnnotation("Sentence", 0, 20)
	s.SetAttribute(token, "lemma", "run")
	s.SetAttribute(sentence, "sentiment", "run")

	err := s.CreateIndex("by-lemma", &IndexMapOptions{Type: "Token", Attribute: "lemma"})

	AssertNil(err)
	record, _ := s.FindBy("by-lemma", "run")
	AssertEqual(record.ID, token)
}

func TestDropIndex(t *testing.T) {

	s := newTestStore()
	id, _ := s.AddAnnotation("Token", 0, 5)
	s.SetAttribute(id, "lemma", "run")
	s.CreateIndex("by-lemma", &IndexMapOptions{Type: "Token", Attribute: "lemma"})

	AssertEqual(s.ListIndexes(), []string{"by-lemma"})
	AssertNil(s.DropIndex("by-lemma"))
	AssertEqual(s.ListIndexes(), []string{})

	_, err := s.FindBy("by-lemma", "run")
	AssertNotNil(err)
}
