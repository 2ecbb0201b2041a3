package service

import (
	"errors"

	"github.com/fulldump/annodb/store"
)

var ErrorStoreNotFound = errors.New("store not found")
var ErrorStoreAlreadyExists = errors.New("store already exists")

type Servicer interface {
	CreateStore(name string) (*store.Store, error)
	GetStore(name string) (*store.Store, error)
	ListStores() []string
	DropStore(name string) error
}
