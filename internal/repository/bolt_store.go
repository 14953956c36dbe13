package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/epeers/company-accounts/internal/entity"
)

// BoltStore is an embedded DocumentStore keeping one bucket per collection.
// Documents are stored as JSON under their id.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) a BoltDB database at path
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close releases the database file lock
func (s *BoltStore) Close(_ context.Context) error {
	return s.db.Close()
}

// Insert stores doc only if no document with the same id exists
func (s *BoltStore) Insert(_ context.Context, collection string, doc entity.Entity) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return err
		}
		if b.Get([]byte(doc.DocumentID())) != nil {
			return ErrDuplicateKey
		}
		return b.Put([]byte(doc.DocumentID()), data)
	})
}

// FindByID decodes the document stored under id into out
func (s *BoltStore) FindByID(_ context.Context, collection, id string, out entity.Entity) error {
	return s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(id))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, out)
	})
}

// Update replaces an existing document
func (s *BoltStore) Update(_ context.Context, collection string, doc entity.Entity) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil || b.Get([]byte(doc.DocumentID())) == nil {
			return ErrNotFound
		}
		return b.Put([]byte(doc.DocumentID()), data)
	})
}

// Delete removes the document stored under id
func (s *BoltStore) Delete(_ context.Context, collection, id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil || b.Get([]byte(id)) == nil {
			return ErrNotFound
		}
		return b.Delete([]byte(id))
	})
}

// SetLink adds or replaces one entry of the document's links map
func (s *BoltStore) SetLink(_ context.Context, collection, id, name, link string) error {
	return s.updateLinks(collection, id, func(links map[string]any) {
		links[name] = link
	})
}

// RemoveLink deletes one entry of the document's links map
func (s *BoltStore) RemoveLink(_ context.Context, collection, id, name string) error {
	return s.updateLinks(collection, id, func(links map[string]any) {
		delete(links, name)
	})
}

// updateLinks applies fn to the links map of a document inside a single
// read-write transaction
func (s *BoltStore) updateLinks(collection, id string, fn func(map[string]any)) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(id))
		if v == nil {
			return ErrNotFound
		}

		var doc map[string]any
		if err := json.Unmarshal(v, &doc); err != nil {
			return err
		}

		node := doc
		for _, key := range linksPath() {
			child, ok := node[key].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[key] = child
			}
			node = child
		}
		fn(node)

		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		return b.Put([]byte(id), data)
	})
}
