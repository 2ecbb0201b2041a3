package store

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/btree"
)

// IndexBTreeOptions declares an ordered index over one or more attributes of
// a type. Prefixing an attribute name with "-" reverses its order.
type IndexBTreeOptions struct {
	Type       string   `json:"type"`
	Attributes []string `json:"attributes"`
}

type recordOrdered struct {
	record *Record
	values []any
}

type IndexBtree struct {
	btree   *btree.BTreeG[*recordOrdered]
	options *IndexBTreeOptions
	value   attrGetter
}

func NewIndexBTree(options *IndexBTreeOptions, value attrGetter) *IndexBtree {

	index := btree.NewG(32, func(a, b *recordOrdered) bool {

		for i, valA := range a.values {
			valB := b.values[i]
			if reflect.DeepEqual(valA, valB) {
				continue
			}

			attribute := options.Attributes[i]
			reverse := strings.HasPrefix(attribute, "-")
			attribute = strings.TrimPrefix(attribute, "-")

			switch valA := valA.(type) {
			case string:
				valB, ok := valB.(string)
				if !ok {
					panic("type B should be string for attribute " + attribute)
				}
				if reverse {
					return !(valA < valB)
				}
				return valA < valB

			case float64:
				valB, ok := valB.(float64)
				if !ok {
					panic("type B should be float64 for attribute " + attribute)
				}
				if reverse {
					return !(valA < valB)
				}
				return valA < valB

			case int:
				valB, ok := valB.(int)
				if !ok {
					panic("type B should be int for attribute " + attribute)
				}
				if reverse {
					return !(valA < valB)
				}
				return valA < valB

			default:
				panic("type A not supported, attribute " + attribute)
			}
		}

		return false
	})

	return &IndexBtree{
		btree:   index,
		options: options,
		value:   value,
	}
}

func (b *IndexBtree) TypeName() string {
	return b.options.Type
}

func (b *IndexBtree) values(record *Record) ([]any, bool) {
	values := make([]any, 0, len(b.options.Attributes))
	for _, attribute := range b.options.Attributes {
		attribute = strings.TrimPrefix(attribute, "-")
		value, exists := b.value(record, attribute)
		if !exists {
			return nil, false
		}
		values = append(values, value)
	}
	return values, true
}

func (b *IndexBtree) AddRecord(record *Record) error {

	if record.Type != b.options.Type {
		return nil
	}

	values, complete := b.values(record)
	if !complete {
		// Do not index until every attribute has a value
		return nil
	}

	if b.btree.Has(&recordOrdered{values: values}) {
		errKey := ""
		for i, attribute := range b.options.Attributes {
			pair := fmt.Sprint(attribute, ":", values[i])
			if errKey != "" {
				errKey += "," + pair
			} else {
				errKey = pair
			}
		}
		return fmt.Errorf("key (%s) already exists", errKey)
	}

	b.btree.ReplaceOrInsert(&recordOrdered{
		record: record,
		values: values,
	})

	return nil
}

func (b *IndexBtree) RemoveRecord(record *Record) error {

	if record.Type != b.options.Type {
		return nil
	}

	values, complete := b.values(record)
	if !complete {
		return nil
	}

	b.btree.Delete(&recordOrdered{
		values: values,
	})

	return nil
}

type IndexBtreeTraverse struct {
	Reverse bool           `json:"reverse"`
	From    map[string]any `json:"from"`
	To      map[string]any `json:"to"`
}

func (b *IndexBtree) Traverse(optionsData []byte, f func(record *Record) bool) {

	options := &IndexBtreeTraverse{}
	json.Unmarshal(optionsData, options) // todo: handle error

	iterator := func(r *recordOrdered) bool {
		return f(r.record)
	}

	hasFrom := len(options.From) > 0
	hasTo := len(options.To) > 0

	pivotFrom := &recordOrdered{}
	if hasFrom {
		for _, attribute := range b.options.Attributes {
			attribute = strings.TrimPrefix(attribute, "-")
			pivotFrom.values = append(pivotFrom.values, options.From[attribute])
		}
	}

	pivotTo := &recordOrdered{}
	if hasTo {
		for _, attribute := range b.options.Attributes {
			attribute = strings.TrimPrefix(attribute, "-")
			pivotTo.values = append(pivotTo.values, options.To[attribute])
		}
	}

	if !hasFrom && !hasTo {
		if options.Reverse {
			b.btree.Descend(iterator)
		} else {
			b.btree.Ascend(iterator)
		}
	} else if hasFrom && !hasTo {
		if options.Reverse {
			b.btree.DescendGreaterThan(pivotFrom, iterator)
		} else {
			b.btree.AscendGreaterOrEqual(pivotFrom, iterator)
		}
	} else if !hasFrom && hasTo {
		if options.Reverse {
			b.btree.DescendLessOrEqual(pivotTo, iterator)
		} else {
			b.btree.AscendLessThan(pivotTo, iterator)
		}
	} else {
		if options.Reverse {
			b.btree.DescendRange(pivotTo, pivotFrom, iterator)
		} else {
			b.btree.AscendRange(pivotFrom, pivotTo, iterator)
		}
	}
}
