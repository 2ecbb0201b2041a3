package store

import (
	"testing"

	. "github.com/fulldump/biff"
)

func btreeFixture() *Store {
	s := newTestStore()
	lemmas := []string{"run", "walk", "jump", "swim"}
	for i, lemma := range lemmas {
		id, _ := s.AddAnnotation("Token", i*10, i*10+5)
		s.SetAttribute(id, "lemma", lemma)
	}
	s.CreateIndex("lemmas", &IndexBTreeOptions{
		Type:       "Token",
		Attributes: []string{"lemma"},
	})
	return s
}

func traverseLemmas(s *Store, optionsData string) []string {
	lemmas := []string{}
	s.TraverseIndex("lemmas", []byte(optionsData), func(record *Record) bool {
		doc := s.Document(record)
		lemmas = append(lemmas, doc["attributes"].(map[string]any)["lemma"].(string))
		return true
	})
	return lemmas
}

func TestIndexBtree_TraverseAscending(t *testing.T) {

	s := btreeFixture()

	lemmas := traverseLemmas(s, `{}`)

	AssertEqual(lemmas, []string{"jump", "run", "swim", "walk"})
}

func TestIndexBtree_TraverseDescending(t *testing.T) {

	s := btreeFixture()

	lemmas := traverseLemmas(s, `{"reverse":true}`)

	AssertEqual(lemmas, []string{"walk", "swim", "run", "jump"})
}

func TestIndexBtree_TraverseFrom(t *testing.T) {

	s := btreeFixture()

	lemmas := traverseLemmas(s, `{"from":{"lemma":"run"}}`)

	AssertEqual(lemmas, []string{"run", "swim", "walk"})
}

func TestIndexBtree_TraverseRange(t *testing.T) {

	s := btreeFixture()

	lemmas := traverseLemmas(s, `{"from":{"lemma":"run"},"to":{"lemma":"walk"}}`)

	AssertEqual(lemmas, []string{"run", "swim"})
}

func TestIndexBtree_DuplicateKey(t *testing.T) {

	s := btreeFixture()
	id, _ := s.AddAnnotation("Token", 100, 105)

	err := s.SetAttribute(id, "lemma", "run")

	AssertNotNil(err)
}

func TestIndexBtree_ReversedAttribute(t *testing.T) {

	s := newTestStore()
	for i, lemma := range []string{"a", "b", "c"} {
		id, _ := s.AddAnnotation("Token", i*10, i*10+5)
		s.SetAttribute(id, "lemma", lemma)
	}
	s.CreateIndex("lemmas", &IndexBTreeOptions{
		Type:       "Token",
		Attributes: []string{"-lemma"},
	})

	lemmas := traverseLemmas(s, `{}`)

	AssertEqual(lemmas, []string{"c", "b", "a"})
}

func TestIndexBtree_IncompleteKeysStayUnindexed(t *testing.T) {

	s := newTestStore()
	indexed, _ := s.AddAnnotation("Token", 0, 5)
	s.SetAttribute(indexed, "lemma", "run")
	s.AddAnnotation("Token", 6, 9) // lemma never set
	s.CreateIndex("lemmas", &IndexBTreeOptions{
		Type:       "Token",
		Attributes: []string{"lemma"},
	})

	lemmas := traverseLemmas(s, `{}`)

	AssertEqual(lemmas, []string{"run"})
}
