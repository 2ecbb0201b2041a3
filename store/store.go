package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Store keeps two views of every record: entry lists grouped by type name
// (sorted by (begin, end) for interval kinds, insertion ordered for link and
// group kinds) and a global entry dict from id to the same record. Both views
// share the record, never a copy.
type Store struct {
	schema   *Schema
	resolver Resolver

	// mutex guards elements, order, entryDict and indexes as one unit: the
	// two views must always mutate as a pair.
	mutex sync.Mutex

	elements  map[string]*entryList
	order     []string // entry list creation order
	entryDict map[uuid.UUID]*Record
	indexes   map[string]Index
}

// entryList holds the records of exactly one type name (subtypes live in
// their own lists).
type entryList struct {
	interval bool
	records  []*Record
}

// NewStore builds an empty store. definitions may be nil when dynamicTypes is
// enabled, in which case descriptors are registered on first reference
// through the resolver.
func NewStore(resolver Resolver, definitions []Definition, dynamicTypes bool) (*Store, error) {
	if len(definitions) == 0 && !dynamicTypes {
		return nil, fmt.Errorf("store has no definitions and dynamic type registration is disabled, no type would be usable")
	}
	s := &Store{
		schema:    NewSchema(resolver, dynamicTypes),
		resolver:  resolver,
		elements:  map[string]*entryList{},
		entryDict: map[uuid.UUID]*Record{},
		indexes:   map[string]Index{},
	}
	s.schema.Load(definitions)
	return s, nil
}

// Schema exposes the type registry.
func (s *Store) Schema() *Schema {
	return s.schema
}

func (l *entryList) bisectLeft(begin, end int) int {
	return sort.Search(len(l.records), func(i int) bool {
		return !l.records[i].less(begin, end)
	})
}

// insertSorted keeps the list ordered by (begin, end). Equal keys land after
// the existing ones, so ties keep insertion order.
func (l *entryList) insertSorted(record *Record) int {
	i := sort.Search(len(l.records), func(i int) bool {
		existing := l.records[i]
		if existing.Begin != record.Begin {
			return existing.Begin > record.Begin
		}
		return existing.End > record.End
	})
	l.records = append(l.records, nil)
	copy(l.records[i+1:], l.records[i:])
	l.records[i] = record
	return i
}

func (l *entryList) appendStamped(record *Record) int {
	record.pos = len(l.records)
	l.records = append(l.records, record)
	return record.pos
}

// removeAt splices the list. Relational lists re-stamp the position field of
// every later record, so stored positions stay trustworthy.
func (l *entryList) removeAt(i int) {
	l.records = append(l.records[:i], l.records[i+1:]...)
	if l.interval {
		return
	}
	for j := i; j < len(l.records); j++ {
		l.records[j].pos = j
	}
}

// element returns the entry list for typeName, creating it on first insert.
func (s *Store) element(typeName string) *entryList {
	list, exists := s.elements[typeName]
	if !exists {
		list = &entryList{interval: s.resolver.IsInterval(typeName)}
		s.elements[typeName] = list
		s.order = append(s.order, typeName)
	}
	return list
}

func (s *Store) dropElement(typeName string) {
	delete(s.elements, typeName)
	for i, name := range s.order {
		if name == typeName {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// AddAnnotation creates a span record of typeName over [begin, end) and
// registers it in both views. Returns the new id.
func (s *Store) AddAnnotation(typeName string, begin, end int) (uuid.UUID, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	descriptor, err := s.schema.Resolve(typeName)
	if err != nil {
		return uuid.Nil, err
	}
	if !s.resolver.IsInterval(typeName) {
		return uuid.Nil, fmt.Errorf("type '%s' is not an annotation type", typeName)
	}

	record := newAnnotation(typeName, begin, end, descriptor.NumAttributes())
	s.element(typeName).insertSorted(record)
	s.entryDict[record.ID] = record

	return record.ID, nil
}

// AddLink creates a link record referencing two existing entries. Returns the
// new id and its position in the type list.
func (s *Store) AddLink(typeName string, parent, child uuid.UUID) (uuid.UUID, int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	descriptor, err := s.schema.Resolve(typeName)
	if err != nil {
		return uuid.Nil, 0, err
	}
	if s.resolver.IsInterval(typeName) {
		return uuid.Nil, 0, fmt.Errorf("type '%s' is an annotation type, not a link type", typeName)
	}
	if _, exists := s.entryDict[parent]; !exists {
		return uuid.Nil, 0, fmt.Errorf("%w: link parent %s", ErrorUnknownID, parent)
	}
	if _, exists := s.entryDict[child]; !exists {
		return uuid.Nil, 0, fmt.Errorf("%w: link child %s", ErrorUnknownID, child)
	}

	record := newLink(typeName, parent, child, descriptor.NumAttributes())
	position := s.element(typeName).appendStamped(record)
	s.entryDict[record.ID] = record

	return record.ID, position, nil
}

// AddGroup creates an empty group record for members of memberType. Returns
// the new id and its position in the type list.
func (s *Store) AddGroup(typeName, memberType string) (uuid.UUID, int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	descriptor, err := s.schema.Resolve(typeName)
	if err != nil {
		return uuid.Nil, 0, err
	}
	if s.resolver.IsInterval(typeName) {
		return uuid.Nil, 0, fmt.Errorf("type '%s' is an annotation type, not a group type", typeName)
	}

	record := newGroup(typeName, memberType, descriptor.NumAttributes())
	position := s.element(typeName).appendStamped(record)
	s.entryDict[record.ID] = record

	return record.ID, position, nil
}

// AddGroupMember appends an existing entry to a group member list.
func (s *Store) AddGroupMember(groupID, memberID uuid.UUID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, exists := s.entryDict[groupID]
	if !exists {
		return fmt.Errorf("%w: %s", ErrorUnknownID, groupID)
	}
	if record.Kind != KindGroup {
		return fmt.Errorf("entry %s is not a group", groupID)
	}
	if _, exists := s.entryDict[memberID]; !exists {
		return fmt.Errorf("%w: member %s", ErrorUnknownID, memberID)
	}

	record.Members = append(record.Members, memberID)
	return nil
}

// SetAttribute writes an attribute of the entry with id, in place. The write
// is visible through both views because they share the record.
func (s *Store) SetAttribute(id uuid.UUID, attrName string, value any) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, exists := s.entryDict[id]
	if !exists {
		return fmt.Errorf("%w: %s", ErrorUnknownID, id)
	}
	slot, err := s.schema.Slot(record.Type, attrName)
	if err != nil {
		return err
	}

	old := record.attrs[slot-AttrSlot]

	// Attribute indexes see the old values out, the new ones in.
	s.indexRemoveRecord(record)
	record.attrs[slot-AttrSlot] = value
	err = s.indexInsertRecord(record)
	if err != nil {
		record.attrs[slot-AttrSlot] = old
		s.indexInsertRecord(record) // old values were indexed before, cannot conflict
		return err
	}

	return nil
}

// GetAttribute reads an attribute of the entry with id. Attributes never set
// are nil.
func (s *Store) GetAttribute(id uuid.UUID, attrName string) (any, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, exists := s.entryDict[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrorUnknownID, id)
	}
	slot, err := s.schema.Slot(record.Type, attrName)
	if err != nil {
		return nil, err
	}

	return record.attrs[slot-AttrSlot], nil
}

func (s *Store) getEntry(id uuid.UUID) (*Record, *entryList, error) {
	record, exists := s.entryDict[id]
	if !exists {
		return nil, nil, fmt.Errorf("%w: %s", ErrorUnknownID, id)
	}
	list, exists := s.elements[record.Type]
	if !exists {
		return nil, nil, fmt.Errorf("%w: entry %s has type '%s' with no entry list", ErrorInconsistentState, id, record.Type)
	}
	return record, list, nil
}

// GetEntry returns the record with id and its type name.
func (s *Store) GetEntry(id uuid.UUID) (*Record, string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, _, err := s.getEntry(id)
	if err != nil {
		return nil, "", err
	}
	return record, record.Type, nil
}

// entryIndex computes the current position of a record in its list. Interval
// kinds bisect by (begin, end) and scan the ties until the id matches,
// relational kinds trust the stamped position field.
func entryIndex(record *Record, list *entryList) (int, error) {
	if !list.interval {
		return record.pos, nil
	}
	for i := list.bisectLeft(record.Begin, record.End); i < len(list.records); i++ {
		existing := list.records[i]
		if existing.Begin != record.Begin || existing.End != record.End {
			break
		}
		if existing.ID == record.ID {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: entry %s is not in the '%s' list", ErrorNotFound, record.ID, record.Type)
}

// EntryIndex returns the current position of the entry with id in its type
// list.
func (s *Store) EntryIndex(id uuid.UUID) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, list, err := s.getEntry(id)
	if err != nil {
		return 0, err
	}
	return entryIndex(record, list)
}

// Delete detaches the entry with id from both views. Every check runs before
// either view mutates, so a failed delete leaves the store untouched.
func (s *Store) Delete(id uuid.UUID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, list, err := s.getEntry(id)
	if err != nil {
		return err
	}

	i, err := entryIndex(record, list)
	if err != nil {
		return fmt.Errorf("%w: delete %s: %s", ErrorInconsistentState, id, err.Error())
	}
	if i < 0 || i >= len(list.records) || list.records[i] != record {
		return fmt.Errorf("%w: delete %s: position %d does not hold the entry", ErrorInconsistentState, id, i)
	}

	s.indexRemoveRecord(record)
	delete(s.entryDict, id)
	list.removeAt(i)
	if len(list.records) == 0 {
		s.dropElement(record.Type)
	}

	return nil
}

// Next returns the entry after id in its type list, nil on the last one.
func (s *Store) Next(id uuid.UUID) (*Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, list, err := s.getEntry(id)
	if err != nil {
		return nil, err
	}
	i, err := entryIndex(record, list)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(list.records) {
		return nil, fmt.Errorf("%w: position %d of entry %s", ErrorIndexOutOfRange, i, id)
	}
	if i == len(list.records)-1 {
		return nil, nil
	}
	return list.records[i+1], nil
}

// Prev returns the entry before id in its type list, nil on the first one.
func (s *Store) Prev(id uuid.UUID) (*Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, list, err := s.getEntry(id)
	if err != nil {
		return nil, err
	}
	i, err := entryIndex(record, list)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(list.records) {
		return nil, fmt.Errorf("%w: position %d of entry %s", ErrorIndexOutOfRange, i, id)
	}
	if i == 0 {
		return nil, nil
	}
	return list.records[i-1], nil
}

// GetAll traverses the records of typeName in stored order. With subtypes it
// walks every entry list whose type is a reflexive subtype of typeName, in
// list creation order; in that mode unknown base types just yield nothing.
func (s *Store) GetAll(typeName string, includeSubtypes bool, f func(record *Record) bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !includeSubtypes {
		list, exists := s.elements[typeName]
		if !exists {
			return fmt.Errorf("%w: '%s' has no entry list", ErrorUnknownType, typeName)
		}
		for _, record := range list.records {
			if !f(record) {
				return nil
			}
		}
		return nil
	}

	for _, name := range s.order {
		if !s.resolver.IsSubtype(name, typeName) {
			continue
		}
		for _, record := range s.elements[name].records {
			if !f(record) {
				return nil
			}
		}
	}
	return nil
}

// Size returns the number of entries of exactly typeName.
func (s *Store) Size(typeName string) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	list, exists := s.elements[typeName]
	if !exists {
		return 0, fmt.Errorf("%w: '%s' has no entry list", ErrorUnknownType, typeName)
	}
	return len(list.records), nil
}

// Len returns the total number of entries.
func (s *Store) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.entryDict)
}

// Types returns the type names with an entry list, in creation order.
func (s *Store) Types() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]string{}, s.order...)
}

// Document renders a record as a plain map, attributes by name. It is meant
// for traversal callbacks and response encoding and does not take the store
// lock.
func (s *Store) Document(record *Record) map[string]any {
	doc := map[string]any{
		"id":   record.ID.String(),
		"type": record.Type,
	}
	switch record.Kind {
	case KindAnnotation:
		doc["begin"] = record.Begin
		doc["end"] = record.End
	case KindLink:
		doc["parent"] = record.Parent.String()
		doc["child"] = record.Child.String()
		doc["position"] = record.pos
	case KindGroup:
		members := make([]string, len(record.Members))
		for i, member := range record.Members {
			members[i] = member.String()
		}
		doc["member_type"] = record.MemberType
		doc["members"] = members
		doc["position"] = record.pos
	}

	attributes := map[string]any{}
	if descriptor, exists := s.schema.types[record.Type]; exists {
		for _, name := range descriptor.Order {
			attributes[name] = record.attrs[descriptor.Slots[name]-AttrSlot]
		}
	}
	doc["attributes"] = attributes

	return doc
}

// attrValue reads one attribute of a record for the attribute indexes. Null
// attributes report false and stay unindexed.
func (s *Store) attrValue(record *Record, attrName string) (any, bool) {
	descriptor, exists := s.schema.types[record.Type]
	if !exists {
		return nil, false
	}
	slot, exists := descriptor.Slots[attrName]
	if !exists {
		return nil, false
	}
	value := record.attrs[slot-AttrSlot]
	if value == nil {
		return nil, false
	}
	return value, true
}

// CreateIndex builds a named attribute index and backfills it with the
// already stored records of the indexed type.
func (s *Store) CreateIndex(name string, options any) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.indexes[name]; exists {
		return fmt.Errorf("index '%s' already exists", name)
	}

	var index Index
	switch value := options.(type) {
	case *IndexMapOptions:
		index = NewIndexMap(value, s.attrValue)
	case *IndexBTreeOptions:
		index = NewIndexBTree(value, s.attrValue)
	default:
		return fmt.Errorf("unexpected options parameters, it should be [map|btree]")
	}

	if list, exists := s.elements[index.TypeName()]; exists {
		for _, record := range list.records {
			err := index.AddRecord(record)
			if err != nil {
				return fmt.Errorf("index entry: %w", err)
			}
		}
	}

	s.indexes[name] = index
	return nil
}

// DropIndex removes a named attribute index.
func (s *Store) DropIndex(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, exists := s.indexes[name]
	if !exists {
		return fmt.Errorf("index '%s' does not exist", name)
	}
	delete(s.indexes, name)
	return nil
}

// ListIndexes returns the index names, sorted.
func (s *Store) ListIndexes() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	names := []string{}
	for name := range s.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TraverseIndex walks a named index with its own traverse options.
func (s *Store) TraverseIndex(name string, optionsData []byte, f func(record *Record) bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	index, exists := s.indexes[name]
	if !exists {
		return fmt.Errorf("index '%s' does not exist", name)
	}
	index.Traverse(optionsData, f)
	return nil
}

// FindBy resolves one record by indexed attribute value.
func (s *Store) FindBy(indexName string, value string) (*Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	index, exists := s.indexes[indexName]
	if !exists {
		return nil, fmt.Errorf("index '%s' does not exist", indexName)
	}

	var found *Record
	index.Traverse([]byte(fmt.Sprintf(`{"value":%q}`, value)), func(record *Record) bool {
		found = record
		return false
	})
	if found == nil {
		return nil, fmt.Errorf("%w: value '%s' is not indexed in '%s'", ErrorNotFound, value, indexName)
	}
	return found, nil
}

func (s *Store) indexInsertRecord(record *Record) (err error) {
	rollbacks := make([]Index, 0, len(s.indexes))

	defer func() {
		if err == nil {
			return
		}
		for _, index := range rollbacks {
			index.RemoveRecord(record)
		}
	}()

	for name, index := range s.indexes {
		err = index.AddRecord(record)
		if err != nil {
			return fmt.Errorf("index add '%s': %s", name, err.Error())
		}
		rollbacks = append(rollbacks, index)
	}

	return
}

func (s *Store) indexRemoveRecord(record *Record) {
	for _, index := range s.indexes {
		index.RemoveRecord(record)
	}
}
