//go:build !js

package report

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketReports = []byte("reports")

// Store keeps records in a bolt database, one nested bucket per session
// keyed by sequence number.
type Store struct {
	db *bolt.DB
}

func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketReports)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put appends r to its session and returns the sequence number it got.
func (s *Store) Put(r Record) (uint64, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket(bucketReports).CreateBucketIfNotExists([]byte(r.Session))
		if err != nil {
			return err
		}
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		r.Seq = seq
		data, err := Encode(r)
		if err != nil {
			return err
		}
		return b.Put(seqKey(seq), data)
	})
	return seq, err
}

// Sessions lists the sessions with stored records.
func (s *Store) Sessions() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketReports).ForEachBucket(func(k []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// List returns the records of a session in arrival order.
func (s *Store) List(session string) ([]Record, error) {
	var records []Record
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketReports).Bucket([]byte(session))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			r, err := Decode(v)
			if err != nil {
				return err
			}
			records = append(records, r)
			return nil
		})
	})
	return records, err
}

func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}
