package store

import (
	"github.com/google/uuid"
)

// Kind tells how a record is laid out and how its entry list is ordered.
type Kind int

const (
	KindAnnotation Kind = iota // span over the document, ordered by (begin, end)
	KindLink                   // parent/child reference pair, insertion ordered
	KindGroup                  // member list, insertion ordered
)

// Slot offsets of the fixed prefix shared by every record kind. Slots 0 and 1
// change meaning across kinds, slots 2 and 3 are always id and type name.
// Attribute slots start at AttrSlot and are assigned in declaration order.
const (
	BeginSlot      = 0
	EndSlot        = 1
	ParentSlot     = 0
	ChildSlot      = 1
	MemberTypeSlot = 0
	MembersSlot    = 1
	IDSlot         = 2
	TypeSlot       = 3
	AttrSlot       = 4
)

// Record is one stored entry. A single struct covers the three kinds, the
// unused prefix fields stay at their zero value. Attribute slots start as nil
// and are addressed through the type descriptor.
type Record struct {
	Kind Kind

	Begin int // annotation kind
	End   int // annotation kind

	Parent uuid.UUID // link kind
	Child  uuid.UUID // link kind

	MemberType string      // group kind
	Members    []uuid.UUID // group kind

	ID   uuid.UUID
	Type string

	attrs []any

	// pos is the current index in the entry list, relational kinds only.
	// It is stamped on insert and re-stamped when an earlier entry is removed.
	pos int
}

func newAnnotation(typeName string, begin, end, numAttributes int) *Record {
	return &Record{
		Kind:  KindAnnotation,
		Begin: begin,
		End:   end,
		ID:    uuid.New(),
		Type:  typeName,
		attrs: make([]any, numAttributes),
	}
}

func newLink(typeName string, parent, child uuid.UUID, numAttributes int) *Record {
	return &Record{
		Kind:   KindLink,
		Parent: parent,
		Child:  child,
		ID:     uuid.New(),
		Type:   typeName,
		attrs:  make([]any, numAttributes),
	}
}

func newGroup(typeName, memberType string, numAttributes int) *Record {
	return &Record{
		Kind:       KindGroup,
		MemberType: memberType,
		Members:    []uuid.UUID{},
		ID:         uuid.New(),
		Type:       typeName,
		attrs:      make([]any, numAttributes),
	}
}

// Position returns the stamped entry list index, relational kinds only.
func (r *Record) Position() int {
	return r.pos
}

// less orders annotation records by (begin, end).
func (r *Record) less(begin, end int) bool {
	if r.Begin != begin {
		return r.Begin < begin
	}
	return r.End < end
}
