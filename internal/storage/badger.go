package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"daktylos/internal/model"

	badger "github.com/dgraph-io/badger/v4"
)

const interactionPrefix = "interaction/"

type BadgerStore struct {
	path     string
	inMemory bool

	mu  sync.RWMutex
	db  *badger.DB
	seq uint64
}

func NewBadgerStore(path string) *BadgerStore {
	return &BadgerStore{path: path}
}

func NewBadgerStoreInMemory() *BadgerStore {
	return &BadgerStore{inMemory: true}
}

func (s *BadgerStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db != nil {
		return nil
	}

	var opts badger.Options
	if s.inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if s.path == "" {
			return errors.New("badger path is required")
		}
		if err := os.MkdirAll(s.path, 0o750); err != nil {
			return fmt.Errorf("create badger directory %s: %w", s.path, err)
		}
		opts = badger.DefaultOptions(s.path)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("open badger database: %w", err)
	}

	seq, err := countInteractions(db)
	if err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	s.seq = seq
	return nil
}

func (s *BadgerStore) WriteInteraction(ctx context.Context, record model.InteractionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return errors.New("store is not initialized")
	}

	payload, err := EncodeInteraction(record)
	if err != nil {
		return err
	}

	// Zero padded sequence keys keep badger's byte order equal to
	// insertion order, so reads come back in the order they were written.
	key := []byte(fmt.Sprintf("%s%012d", interactionPrefix, s.seq))
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, payload)
	})
	if err != nil {
		return err
	}
	s.seq++
	return nil
}

func (s *BadgerStore) ReadAllInteractions(ctx context.Context) ([]model.InteractionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}

	var records []model.InteractionRecord
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(interactionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(payload []byte) error {
				record, err := DecodeInteraction(payload)
				if err != nil {
					return fmt.Errorf("decode interaction: %w", err)
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *BadgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// countInteractions restores the write sequence when an existing database
// is reopened. Records are never deleted, so the count is the next sequence.
func countInteractions(db *badger.DB) (uint64, error) {
	var count uint64
	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(interactionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
