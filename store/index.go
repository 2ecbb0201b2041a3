package store

// Index is a secondary access path over the records of one type name,
// maintained on every attribute write and delete. Records whose indexed
// attributes are still null stay out of the index.
type Index interface {
	TypeName() string
	AddRecord(record *Record) error
	RemoveRecord(record *Record) error
	Traverse(optionsData []byte, f func(record *Record) bool)
}

// attrGetter reads one attribute of a record, reporting false when the
// attribute is unknown for the record type or still null.
type attrGetter func(record *Record, attrName string) (any, bool)
