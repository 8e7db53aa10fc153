// Package idempotency persists replayable HTTP responses keyed by a client
// supplied idempotency key, in an embedded BoltDB file.
//
// Save is create-if-absent: the first response stored under a key wins and
// later saves return it unchanged, so a retried request always observes the
// outcome of the first one.
package idempotency

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "github.com/boltdb/bolt"
)

const bucketName = "responses"

// ErrNotFound is returned when no live entry exists for a key.
var ErrNotFound = errors.New("idempotency key not found")

// Response is a recorded HTTP response.
type Response struct {
	Status      int       `json:"status"`
	ContentType string    `json:"content_type"`
	Body        []byte    `json:"body"`
	Fingerprint string    `json:"fingerprint"`
	StoredAt    time.Time `json:"stored_at"`
}

// Store wraps a BoltDB database. Entries older than ttl are treated as absent.
type Store struct {
	db  *bolt.DB
	ttl time.Duration
	now func() time.Time
}

// Open opens (or creates) the database at path and ensures the bucket exists.
func Open(path string, ttl time.Duration) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create idempotency dir: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open idempotency db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create idempotency bucket: %w", err)
	}

	return &Store{db: db, ttl: ttl, now: time.Now}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the live response stored under key.
func (s *Store) Get(key string) (*Response, error) {
	var resp Response

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &resp)
	})
	if err != nil {
		return nil, err
	}

	if s.expired(resp) {
		return nil, ErrNotFound
	}
	return &resp, nil
}

// Save stores resp under key unless a live entry already exists.
// It returns the entry now stored and whether this call wrote it.
func (s *Store) Save(key string, resp Response) (*Response, bool, error) {
	var result Response
	created := false

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		if existing := b.Get([]byte(key)); existing != nil {
			if err := json.Unmarshal(existing, &result); err != nil {
				return err
			}
			if !s.expired(result) {
				return nil
			}
		}

		resp.StoredAt = s.now().UTC()
		data, err := json.Marshal(resp)
		if err != nil {
			return err
		}

		result = resp
		created = true
		return b.Put([]byte(key), data)
	})
	if err != nil {
		return nil, false, err
	}

	return &result, created, nil
}

// Purge deletes expired entries and returns how many were removed.
func (s *Store) Purge() (int, error) {
	removed := 0

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		var stale [][]byte
		err := b.ForEach(func(k, v []byte) error {
			var resp Response
			if err := json.Unmarshal(v, &resp); err != nil || s.expired(resp) {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	return removed, err
}

func (s *Store) expired(resp Response) bool {
	return s.ttl > 0 && s.now().Sub(resp.StoredAt) > s.ttl
}
