package database

import (
	"fmt"

	"github.com/fulldump/annodb/ontology"
	"github.com/fulldump/annodb/store"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

type Config struct {
	Ontology     string // path to the ontology specification file, optional
	DynamicTypes bool   // register unknown types on first reference
}

// Database holds the named stores of one process. Every store shares the
// resolver loaded from the ontology file.
type Database struct {
	config      *Config
	status      string
	resolver    store.Resolver
	definitions []store.Definition
	Stores      map[string]*store.Store
	exit        chan struct{}
}

func NewDatabase(config *Config) *Database {
	return &Database{
		config:   config,
		status:   StatusOpening,
		resolver: spanResolver{},
		Stores:   map[string]*store.Store{},
		exit:     make(chan struct{}),
	}
}

func (db *Database) GetStatus() string {
	return db.status
}

// Load resolves the configured ontology before the database accepts traffic.
func (db *Database) Load() error {

	if db.config.Ontology != "" {
		o, err := ontology.Load(db.config.Ontology)
		if err != nil {
			db.status = StatusClosing
			return fmt.Errorf("load ontology '%s': %w", db.config.Ontology, err)
		}
		db.resolver = o
		db.definitions = o.Definitions()
	}

	db.status = StatusOperating
	return nil
}

func (db *Database) CreateStore(name string) (*store.Store, error) {

	_, exists := db.Stores[name]
	if exists {
		return nil, fmt.Errorf("store '%s' already exists", name)
	}

	s, err := store.NewStore(db.resolver, db.definitions, db.config.DynamicTypes)
	if err != nil {
		return nil, err
	}

	db.Stores[name] = s

	return s, nil
}

func (db *Database) DropStore(name string) error {

	_, exists := db.Stores[name]
	if !exists {
		return fmt.Errorf("store '%s' not found", name)
	}

	delete(db.Stores, name)

	return nil
}

func (db *Database) Start() error {

	go db.Load()

	<-db.exit

	return nil
}

func (db *Database) Stop() error {

	defer close(db.exit)

	db.status = StatusClosing

	return nil
}

// spanResolver backs databases running without an ontology file: every type
// is a plain span with no attributes and no lineage. Link and group types
// need an ontology.
type spanResolver struct{}

func (spanResolver) Attributes(typeName string) ([]string, error) {
	return nil, nil
}

func (spanResolver) IsInterval(typeName string) bool {
	return true
}

func (spanResolver) IsSubtype(typeName, parent string) bool {
	return typeName == parent
}
