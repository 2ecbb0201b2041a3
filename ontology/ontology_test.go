package ontology

import (
	"os"
	"path"
	"testing"

	. "github.com/fulldump/biff"
)

func newTestOntology() *Ontology {
	o, err := New(&Spec{
		Name: "test",
		Definitions: []Entry{
			{EntryName: "Annotation", Kind: KindAnnotation},
			{EntryName: "Token", ParentEntry: "Annotation", Attributes: []Attribute{
				{Name: "pos"},
				{Name: "lemma"},
			}},
			{EntryName: "EntityMention", ParentEntry: "Token", Attributes: []Attribute{
				{Name: "ner_type"},
			}},
			{EntryName: "Dependency", Kind: KindLink, Attributes: []Attribute{
				{Name: "rel_type"},
			}},
			{EntryName: "CoreferenceGroup", Kind: KindGroup},
		},
	})
	if err != nil {
		panic(err)
	}
	return o
}

func TestLoad(t *testing.T) {

	// Setup
	filename := path.Join(t.TempDir(), "ontology.json")
	os.WriteFile(filename, []byte(`{
		"name": "test",
		"definitions": [
			{"entry_name": "Token", "kind": "annotation", "attributes": [{"name": "pos"}]}
		]
	}`), 0666)

	// Run
	o, err := Load(filename)

	// Check
	AssertNil(err)
	attributes, _ := o.Attributes("Token")
	AssertEqual(attributes, []string{"pos"})
	AssertTrue(o.IsInterval("Token"))
}

func TestLoad_MissingFile(t *testing.T) {

	_, err := Load(path.Join(t.TempDir(), "nope.json"))

	AssertNotNil(err)
}

func TestLoad_MalformedFile(t *testing.T) {

	filename := path.Join(t.TempDir(), "ontology.json")
	os.WriteFile(filename, []byte(`{definitions: [`), 0666)

	_, err := Load(filename)

	AssertNotNil(err)
}

func TestNew_DuplicateEntry(t *testing.T) {

	_, err := New(&Spec{Definitions: []Entry{
		{EntryName: "Token", Kind: KindAnnotation},
		{EntryName: "Token", Kind: KindAnnotation},
	}})

	AssertNotNil(err)
}

func TestNew_BadKind(t *testing.T) {

	_, err := New(&Spec{Definitions: []Entry{
		{EntryName: "Token", Kind: "spans"},
	}})

	AssertNotNil(err)
}

func TestKind_InheritedFromParent(t *testing.T) {

	o := newTestOntology()

	AssertEqual(o.Kind("EntityMention"), KindAnnotation)
	AssertEqual(o.Kind("Dependency"), KindLink)
	AssertEqual(o.Kind("Unknown"), "")
}

func TestIsSubtype_Reflexive(t *testing.T) {

	o := newTestOntology()

	AssertTrue(o.IsSubtype("Token", "Token"))
	AssertTrue(o.IsSubtype("EntityMention", "Token"))
	AssertTrue(o.IsSubtype("EntityMention", "Annotation"))
	AssertFalse(o.IsSubtype("Token", "EntityMention"))
	AssertFalse(o.IsSubtype("Dependency", "Token"))
}

func TestLineage_NearestFirst(t *testing.T) {

	o := newTestOntology()

	AssertEqual(o.Lineage("EntityMention"), []string{"Token", "Annotation"})
	AssertEqual(o.Lineage("Annotation"), []string{})
}

func TestDefinitions_DeclarationOrder(t *testing.T) {

	o := newTestOntology()

	definitions := o.Definitions()

	AssertEqual(len(definitions), 5)
	AssertEqual(definitions[1].Name, "Token")
	AssertEqual(definitions[1].Attributes, []string{"pos", "lemma"})
	AssertEqual(definitions[2].Parents, []string{"Token", "Annotation"})
}
