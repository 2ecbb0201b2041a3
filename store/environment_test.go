package store

// testResolver is a hand rolled type system for tests: attribute lists,
// interval flags and parent chains declared inline.
type testResolver struct {
	attributes map[string][]string
	relational map[string]bool
	parents    map[string][]string
}

func (r *testResolver) Attributes(typeName string) ([]string, error) {
	return r.attributes[typeName], nil
}

func (r *testResolver) IsInterval(typeName string) bool {
	return !r.relational[typeName]
}

func (r *testResolver) IsSubtype(typeName, parent string) bool {
	if typeName == parent {
		return true
	}
	for _, p := range r.parents[typeName] {
		if r.IsSubtype(p, parent) {
			return true
		}
	}
	return false
}

func newTestResolver() *testResolver {
	return &testResolver{
		attributes: map[string][]string{
			"Token":          {"pos", "lemma"},
			"Sentence":       {"sentiment"},
			"EntityMention":  {"ner_type"},
			"Dependency":     {"rel_type"},
			"CoreferenceGroup": {},
		},
		relational: map[string]bool{
			"Dependency":       true,
			"CoreferenceGroup": true,
		},
		parents: map[string][]string{
			"EntityMention": {"Token"},
		},
	}
}

func newTestStore() *Store {
	s, err := NewStore(newTestResolver(), nil, true)
	if err != nil {
		panic(err)
	}
	return s
}
