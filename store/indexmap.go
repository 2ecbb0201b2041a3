package store

import (
	"encoding/json"
	"fmt"
)

// IndexMapOptions should have attributes like unique, multikey, background...
type IndexMapOptions struct {
	Type      string `json:"type"`
	Attribute string `json:"attribute"`
}

// IndexMap is a unique key-value index over one attribute. Values can be only
// scalar strings or arrays of strings.
type IndexMap struct {
	entries map[string]*Record
	options *IndexMapOptions
	value   attrGetter
}

func NewIndexMap(options *IndexMapOptions, value attrGetter) *IndexMap {
	return &IndexMap{
		entries: map[string]*Record{},
		options: options,
		value:   value,
	}
}

func (i *IndexMap) TypeName() string {
	return i.options.Type
}

func (i *IndexMap) AddRecord(record *Record) error {

	if record.Type != i.options.Type {
		return nil
	}

	itemValue, exists := i.value(record, i.options.Attribute)
	if !exists {
		// Do not index
		return nil
	}

	attribute := i.options.Attribute
	entries := i.entries

	switch value := itemValue.(type) {
	case string:
		if _, exists := entries[value]; exists {
			return fmt.Errorf("index conflict: attribute '%s' with value '%s'", attribute, value)
		}
		entries[value] = record
	case []any:
		for _, v := range value {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("type not supported")
			}
			if _, exists := entries[s]; exists {
				return fmt.Errorf("index conflict: attribute '%s' with value '%s'", attribute, s)
			}
		}
		for _, v := range value {
			entries[v.(string)] = record
		}
	default:
		return fmt.Errorf("type not supported")
	}

	return nil
}

func (i *IndexMap) RemoveRecord(record *Record) error {

	if record.Type != i.options.Type {
		return nil
	}

	itemValue, exists := i.value(record, i.options.Attribute)
	if !exists {
		// Not indexed
		return nil
	}

	entries := i.entries

	switch value := itemValue.(type) {
	case string:
		delete(entries, value)
	case []any:
		for _, v := range value {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("type not supported")
			}
			delete(entries, s)
		}
	default:
		return fmt.Errorf("type not supported")
	}

	return nil
}

type IndexMapTraverse struct {
	Value string `json:"value"`
}

func (i *IndexMap) Traverse(optionsData []byte, f func(record *Record) bool) {

	options := &IndexMapTraverse{}
	json.Unmarshal(optionsData, options) // todo: handle error

	record, exists := i.entries[options.Value]
	if !exists {
		return
	}

	f(record)
}
