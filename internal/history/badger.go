package history

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
)

var (
	entryPrefix = []byte("history/entry/")
	sequenceKey = []byte("history/seq")
)

const sequenceBandwidth = 100

// badgerLogger routes badger's warnings and errors to the standard logger.
type badgerLogger struct{}

var _ badger.Logger = badgerLogger{}

func (badgerLogger) Errorf(msg string, args ...any) {
	log.Printf("History: badger error: "+msg, args...)
}

func (badgerLogger) Warningf(msg string, args ...any) {
	log.Printf("History: badger warning: "+msg, args...)
}

func (badgerLogger) Infof(string, ...any)  {}
func (badgerLogger) Debugf(string, ...any) {}

// BadgerStore persists history in a BadgerDB directory. Each entry maps the
// action name to the sequence number of its last use.
type BadgerStore struct {
	db   *badger.DB
	seq  *badger.Sequence
	size int
}

// OpenBadgerStore opens or creates a store. An empty dir keeps the
// database in memory.
func OpenBadgerStore(dir string, size int) (*BadgerStore, error) {
	if size <= 0 {
		size = DefaultSize
	}

	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
		opts = badger.DefaultOptions(dir)
	}
	opts.Logger = badgerLogger{}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	seq, err := db.GetSequence(sequenceKey, sequenceBandwidth)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open history sequence: %w", err)
	}

	return &BadgerStore{db: db, seq: seq, size: size}, nil
}

func entryKey(name string) []byte {
	return append(append([]byte{}, entryPrefix...), name...)
}

func (s *BadgerStore) Add(name string) error {
	n, err := s.seq.Next()
	if err != nil {
		return fmt.Errorf("failed to allocate sequence: %w", err)
	}

	var value [8]byte
	binary.BigEndian.PutUint64(value[:], n)

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(entryKey(name), value[:])
	}); err != nil {
		return fmt.Errorf("failed to store history entry: %w", err)
	}

	return s.trim()
}

type entry struct {
	name string
	seq  uint64
}

func (s *BadgerStore) entries() ([]entry, error) {
	var out []entry
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(entryPrefix); it.ValidForPrefix(entryPrefix); it.Next() {
			item := it.Item()
			name := string(item.Key()[len(entryPrefix):])
			err := item.Value(func(v []byte) error {
				if len(v) != 8 {
					return fmt.Errorf("corrupt history entry %q", name)
				}
				out = append(out, entry{name: name, seq: binary.BigEndian.Uint64(v)})
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

	sort.Slice(out, func(i, j int) bool { return out[i].seq > out[j].seq })
	return out, nil
}

// trim drops the oldest entries beyond the configured size
func (s *BadgerStore) trim() error {
	all, err := s.entries()
	if err != nil {
		return err
	}
	if len(all) <= s.size {
		return nil
	}
	return s.db.Update(func(txn *badger.Txn) error {
		for _, e := range all[s.size:] {
			if err := txn.Delete(entryKey(e.name)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BadgerStore) Names() ([]string, error) {
	all, err := s.entries()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.name
	}
	return names, nil
}

func (s *BadgerStore) Close() error {
	if err := s.seq.Release(); err != nil {
		log.Printf("History: failed to release sequence: %v", err)
	}
	return s.db.Close()
}
