package kv

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"
)

const (
	memoryTable = "kv"
	memoryIndex = "id"
)

type memoryEntry struct {
	Key   string
	Value []byte
}

// Memory is a process-local KV backed by go-memdb. Contents are lost on
// exit.
type Memory struct {
	db *memdb.MemDB
}

func NewMemory() (*Memory, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memoryTable: {
				Name: memoryTable,
				Indexes: map[string]*memdb.IndexSchema{
					memoryIndex: {
						Name:    memoryIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("create memdb: %w", err)
	}
	return &Memory{db: db}, nil
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(memoryTable, memoryIndex, key)
	if err != nil {
		return nil, fmt.Errorf("memdb lookup %q: %w", key, err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}
	return clone(raw.(*memoryEntry).Value), nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	txn := m.db.Txn(true)
	if err := txn.Insert(memoryTable, &memoryEntry{Key: key, Value: clone(value)}); err != nil {
		txn.Abort()
		return fmt.Errorf("memdb insert %q: %w", key, err)
	}
	txn.Commit()
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
