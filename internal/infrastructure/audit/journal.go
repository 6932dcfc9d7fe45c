package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Journal wraps BoltDB as an append-only audit trail. Records are keyed by
// timestamp so cursor scans read them in submission order.
type Journal struct {
	db     *bolt.DB
	bucket []byte
}

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string, bucket string) (*Journal, error) {
	if bucket == "" {
		bucket = "audit"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Journal{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

// Append writes one event. There is no update or delete path for individual
// records; only retention cleanup removes aged ones.
func (j *Journal) Append(event Event) error {
	if j == nil || j.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	event.normalize()
	event.journalKey = []byte(buildKey(event))

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(j.bucket).Put(event.journalKey, payload)
	})
}

// Recent returns up to limit events, newest first.
func (j *Journal) Recent(limit int) ([]Event, error) {
	if j == nil || j.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	if limit <= 0 {
		limit = 50
	}

	var events []Event
	err := j.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(j.bucket).Cursor()
		for k, v := c.Last(); k != nil && len(events) < limit; k, v = c.Prev() {
			var event Event
			if err := json.Unmarshal(v, &event); err != nil {
				continue
			}
			events = append(events, event)
		}
		return nil
	})
	return events, err
}

// Size returns the number of recorded events.
func (j *Journal) Size() (int, error) {
	if j == nil || j.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	var count int
	err := j.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(j.bucket).Stats().KeyN
		return nil
	})
	return count, err
}

// Cleanup removes events older than the provided timestamp.
func (j *Journal) Cleanup(olderThan time.Time) (int, error) {
	if j == nil || j.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	removed := 0
	err := j.db.Update(func(tx *bolt.Tx) error {
		c := tx.Bucket(j.bucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var event Event
			if err := json.Unmarshal(v, &event); err != nil {
				continue
			}
			if event.At.Before(olderThan) {
				if err := c.Delete(); err != nil {
					return err
				}
				removed++
			}
		}
		return nil
	})
	return removed, err
}

// Close closes the Bolt database.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Stats exposes Bolt statistics for monitoring endpoints.
func (j *Journal) Stats() bolt.Stats {
	if j == nil || j.db == nil {
		return bolt.Stats{}
	}
	return j.db.Stats()
}

func buildKey(event Event) string {
	return fmt.Sprintf("%020d_%s", event.At.UnixNano(), event.ID)
}
