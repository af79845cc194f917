// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package datasource

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/recommend"
)

// Key prefixes for BadgerDB storage
const (
	userKeyPrefix      = "user:"
	tripKeyPrefix      = "trip:"
	tripIndexKeyPrefix = "tripidx:"
)

// objectID matches a 24 character hex document id.
var objectID = regexp.MustCompile(`^[0-9a-f]{24}$`)

// BadgerSource stores user and trip documents in BadgerDB.
type BadgerSource struct {
	db *badger.DB
}

// OpenBadger opens the store at cfg.Path, or in memory.
func OpenBadger(cfg config.BadgerConfig) (*BadgerSource, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	db, err := badger.Open(opts.WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	return NewBadgerSource(db), nil
}

// NewBadgerSource wraps an open database.
func NewBadgerSource(db *badger.DB) *BadgerSource {
	return &BadgerSource{db: db}
}

func (s *BadgerSource) Name() string { return config.DriverBadger }

// ValidUserID accepts 24 character hex ids in any case.
func (s *BadgerSource) ValidUserID(id string) bool {
	return objectID.MatchString(recommend.NormalizeID(id))
}

func (s *BadgerSource) GetUserByID(ctx context.Context, id string) (*recommend.User, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userKeyPrefix + recommend.NormalizeID(id)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return recommend.ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	u := UserFromRecord(rec)
	return &u, nil
}

func (s *BadgerSource) ListUsers(ctx context.Context) ([]recommend.User, error) {
	var users []recommend.User
	err := s.scan(userKeyPrefix, 0, func(rec Record) {
		if u := UserFromRecord(rec); u.ID != "" {
			users = append(users, u)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *BadgerSource) ListTripsForUsers(ctx context.Context, ids []string) ([]recommend.Trip, error) {
	var trips []recommend.Trip
	err := s.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			tripIDs, err := indexedTripIDs(txn, recommend.NormalizeID(id))
			if err != nil {
				return err
			}
			for _, tid := range tripIDs {
				item, err := txn.Get([]byte(tripKeyPrefix + tid))
				if errors.Is(err, badger.ErrKeyNotFound) {
					continue
				}
				if err != nil {
					return fmt.Errorf("get trip %s: %w", tid, err)
				}
				var rec Record
				if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &rec) }); err != nil {
					return fmt.Errorf("decode trip %s: %w", tid, err)
				}
				trips = append(trips, TripFromRecord(rec))
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

func indexedTripIDs(txn *badger.Txn, userID string) ([]string, error) {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = true
	it := txn.NewIterator(opts)
	defer it.Close()

	var out []string
	prefix := []byte(tripIndexKeyPrefix + userID + ":")
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		err := it.Item().Value(func(val []byte) error {
			out = append(out, string(val))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// scan decodes every document under prefix. A positive limit stops early.
func (s *BadgerSource) scan(prefix string, limit int, fn func(Record)) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		n := 0
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			var rec Record
			if err := it.Item().Value(func(val []byte) error { return json.Unmarshal(val, &rec) }); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			fn(rec)
			n++
			if limit > 0 && n >= limit {
				break
			}
		}
		return nil
	})
}

func (s *BadgerSource) countPrefix(prefix string) (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

func (s *BadgerSource) Inspect(ctx context.Context) (Summary, error) {
	sum := Summary{Driver: config.DriverBadger}
	var err error
	if sum.Users, err = s.countPrefix(userKeyPrefix); err != nil {
		return sum, fmt.Errorf("count users: %w", err)
	}
	if sum.Trips, err = s.countPrefix(tripKeyPrefix); err != nil {
		return sum, fmt.Errorf("count trips: %w", err)
	}
	err = s.scan(userKeyPrefix, 1, func(rec Record) { sum.UserKeys = rec.Keys() })
	if err != nil {
		return sum, err
	}
	err = s.scan(tripKeyPrefix, sampleSize, func(rec Record) {
		if sum.TripKeys == nil {
			sum.TripKeys = rec.Keys()
		}
		sum.SampleTrips = append(sum.SampleTrips, TripFromRecord(rec))
	})
	return sum, err
}

func (s *BadgerSource) Close() error {
	return s.db.Close()
}

// ImportFile imports a JSON snapshot file. See ImportJSON.
func (s *BadgerSource) ImportFile(path string) (int, error) {
	f, err := os.Open(path) //nolint:gosec // operator-supplied seed path
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // read-only file
	return s.ImportJSON(f)
}

// ImportJSON stores the users and trips of a Snapshot document and returns
// the number of documents written. Documents without an id get a generated
// one; user ids must otherwise be 24 character hex strings.
func (s *BadgerSource) ImportJSON(r io.Reader) (int, error) {
	snap, err := DecodeSnapshot(r)
	if err != nil {
		return 0, err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	n := 0
	for i, rec := range snap.Users {
		id, err := documentID(rec, userIDKeys)
		if err != nil {
			return 0, fmt.Errorf("user %d: %w", i, err)
		}
		rec["_id"] = id
		data, err := json.Marshal(rec)
		if err != nil {
			return 0, fmt.Errorf("marshal user %s: %w", id, err)
		}
		if err := wb.Set([]byte(userKeyPrefix+id), data); err != nil {
			return 0, fmt.Errorf("set user %s: %w", id, err)
		}
		n++
	}

	for i, rec := range snap.Trips {
		id, err := documentID(rec, tripIDKeys)
		if err != nil {
			return 0, fmt.Errorf("trip %d: %w", i, err)
		}
		rec["_id"] = id
		data, err := json.Marshal(rec)
		if err != nil {
			return 0, fmt.Errorf("marshal trip %s: %w", id, err)
		}
		if err := wb.Set([]byte(tripKeyPrefix+id), data); err != nil {
			return 0, fmt.Errorf("set trip %s: %w", id, err)
		}
		if owner := TripFromRecord(rec).UserID; owner != "" {
			if err := wb.Set([]byte(tripIndexKeyPrefix+owner+":"+id), []byte(id)); err != nil {
				return 0, fmt.Errorf("set trip index %s: %w", id, err)
			}
		}
		n++
	}

	if err := wb.Flush(); err != nil {
		return 0, fmt.Errorf("flush import: %w", err)
	}
	return n, nil
}

// documentID returns the record's id, generating one when absent.
func documentID(rec Record, keys []string) (string, error) {
	v, ok := rec.lookup(keys)
	if !ok {
		return NewObjectID(), nil
	}
	id := idString(v)
	if !objectID.MatchString(id) {
		return "", fmt.Errorf("id %q is not a 24 character hex object id", id)
	}
	return id, nil
}

// NewObjectID returns a 24 character hex id: a 4 byte big-endian timestamp
// followed by 8 random bytes.
func NewObjectID() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix())) //nolint:gosec // seconds fit until 2106
	u := uuid.New()
	copy(b[4:], u[:8])
	return hex.EncodeToString(b[:])
}
