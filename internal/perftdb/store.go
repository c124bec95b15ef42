package perftdb

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Baseline is a known-good node count for a position and depth.
type Baseline struct {
	FEN    string    `json:"fen"`
	Depth  int       `json:"depth"`
	Nodes  uint64    `json:"nodes"`
	Stored time.Time `json:"stored"`
}

// Run records one timed perft run.
type Run struct {
	FEN     string        `json:"fen"`
	Depth   int           `json:"depth"`
	Nodes   uint64        `json:"nodes"`
	Elapsed time.Duration `json:"elapsed"`
	When    time.Time     `json:"when"`
}

// Store wraps BadgerDB for baseline and run persistence.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the store in the platform data directory.
func OpenDefault() (*Store, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func baselineKey(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("baseline|%s|%d", fen, depth))
}

func runKey(fen string, depth int, when time.Time) []byte {
	return []byte(fmt.Sprintf("run|%s|%d|%020d", fen, depth, when.UnixNano()))
}

func runPrefix(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("run|%s|%d|", fen, depth))
}

// SaveBaseline stores the expected node count for a position/depth,
// overwriting any previous value.
func (s *Store) SaveBaseline(fen string, depth int, nodes uint64) error {
	b := Baseline{FEN: fen, Depth: depth, Nodes: nodes, Stored: time.Now()}
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(baselineKey(fen, depth), data)
	})
}

// LoadBaseline returns the stored node count for a position/depth.
// The second return value is false when no baseline exists.
func (s *Store) LoadBaseline(fen string, depth int) (uint64, bool, error) {
	var b Baseline
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(baselineKey(fen, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &b)
		})
	})

	return b.Nodes, found, err
}

// RecordRun appends a timed run record.
func (s *Store) RecordRun(r Run) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(runKey(r.FEN, r.Depth, r.When), data)
	})
}

// Runs returns all recorded runs for a position/depth, oldest first.
func (s *Store) Runs(fen string, depth int) ([]Run, error) {
	var runs []Run

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		prefix := runPrefix(fen, depth)
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var r Run
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				return err
			}
			runs = append(runs, r)
		}
		return nil
	})

	return runs, err
}
