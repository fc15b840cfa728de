package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// slotPrefix namespaces slot keys inside the badger keyspace.
const slotPrefix = "slot:"

// BadgerMedium stores each slot as one badger key.
type BadgerMedium struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a badger database in dir.
func OpenBadger(dir string) (*BadgerMedium, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil            // badger's own logger is noisy; errors surface through returns
	opts.SyncWrites = true       // a slot write must survive a crash right after Save
	opts.CompactL0OnClose = true // faster startup next time

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage.OpenBadger: %w", err)
	}
	return &BadgerMedium{db: db}, nil
}

// Get returns the value stored under key.
func (m *BadgerMedium) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(slotKey(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage.BadgerMedium.Get: %w", err)
	}
	return value, true, nil
}

// Set overwrites the value stored under key.
func (m *BadgerMedium) Set(_ context.Context, key string, value []byte) error {
	err := m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(slotKey(key), value)
	})
	if err != nil {
		return fmt.Errorf("storage.BadgerMedium.Set: %w", err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (m *BadgerMedium) Remove(_ context.Context, key string) error {
	err := m.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(slotKey(key))
	})
	if err != nil {
		return fmt.Errorf("storage.BadgerMedium.Remove: %w", err)
	}
	return nil
}

// Close flushes and closes the database.
func (m *BadgerMedium) Close() error {
	return m.db.Close()
}

func slotKey(key string) []byte {
	return []byte(slotPrefix + key)
}
