package database

import (
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"
)

// OpenBolt opens (or creates) the BoltDB file at path and makes sure every
// bucket in buckets exists.
func OpenBolt(path string, buckets ...string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bolt buckets: %w", err)
	}
	return db, nil
}
