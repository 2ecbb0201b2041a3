package service

import (
	"github.com/fulldump/annodb/database"
	"github.com/fulldump/annodb/store"
	"github.com/fulldump/annodb/utils"
)

type Service struct {
	db *database.Database
}

func NewService(db *database.Database) *Service {
	return &Service{
		db: db,
	}
}

func (s *Service) CreateStore(name string) (*store.Store, error) {

	_, exists := s.db.Stores[name]
	if exists {
		return nil, ErrorStoreAlreadyExists
	}

	return s.db.CreateStore(name)
}

func (s *Service) GetStore(name string) (*store.Store, error) {

	st, exists := s.db.Stores[name]
	if !exists {
		return nil, ErrorStoreNotFound
	}

	return st, nil
}

func (s *Service) ListStores() []string {
	return utils.GetKeys(s.db.Stores)
}

func (s *Service) DropStore(name string) error {

	_, exists := s.db.Stores[name]
	if !exists {
		return ErrorStoreNotFound
	}

	return s.db.DropStore(name)
}
