// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package history

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Key prefixes for BadgerDB storage
const (
	recordKeyPrefix     = "prediction:"
	recordUserKeyPrefix = "prediction_user:"
)

// List limits applied when the caller does not configure its own.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

var (
	// ErrNotFound is returned when no record has the requested ID.
	ErrNotFound = errors.New("prediction not found")

	// ErrForbidden is returned when a record belongs to another user.
	ErrForbidden = errors.New("prediction belongs to another user")

	// ErrMissingUser is returned when saving a record without an owner.
	ErrMissingUser = errors.New("prediction has no user")
)

// Config configures the history store.
type Config struct {
	// Path is the Badger directory. Ignored when InMemory is set.
	Path     string
	InMemory bool

	DefaultLimit int
	MaxLimit     int
}

// BadgerStore keeps prediction history in BadgerDB. Each record is stored
// under prediction:<id> with a per-user index entry whose key sorts newest
// first.
type BadgerStore struct {
	db           *badger.DB
	ownsDB       bool
	defaultLimit int
	maxLimit     int
	now          func() time.Time
	logger       zerolog.Logger
}

// Open opens (or creates) the Badger database described by cfg.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(cfg Config, logger zerolog.Logger) (*BadgerStore, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("history path is required for a persistent store")
		}
		opts = badger.DefaultOptions(cfg.Path)
		opts.ValueLogFileSize = 64 << 20 // records are small
		opts.SyncWrites = true
	}
	opts.Logger = nil // Suppress BadgerDB internal logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for history: %w", err)
	}

	s := NewBadgerStore(db, cfg, logger)
	s.ownsDB = true
	s.logger.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Msg("Prediction history opened")
	return s, nil
}

// NewBadgerStore wraps an existing database. The caller keeps ownership of db.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBadgerStore(db *badger.DB, cfg Config, logger zerolog.Logger) *BadgerStore {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = DefaultLimit
	}
	if cfg.MaxLimit < cfg.DefaultLimit {
		cfg.MaxLimit = max(MaxLimit, cfg.DefaultLimit)
	}
	return &BadgerStore{
		db:           db,
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
		now:          time.Now,
		logger:       logger.With().Str("component", "history").Logger(),
	}
}

// Close closes the database when the store opened it.
func (s *BadgerStore) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}

// Save stores rec, assigning an ID and creation time when they are unset.
func (s *BadgerStore) Save(ctx context.Context, rec *Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.UserID == "" {
		return ErrMissingUser
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal prediction: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(recordKey(rec.ID), data); err != nil {
			return fmt.Errorf("set prediction: %w", err)
		}
		if err := txn.Set(userIndexKey(rec.UserID, rec.CreatedAt, rec.ID), []byte(rec.ID)); err != nil {
			return fmt.Errorf("set user index: %w", err)
		}
		return nil
	})
}

// Get returns the record with the given ID.
func (s *BadgerStore) Get(ctx context.Context, id string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rec *Record
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = getRecord(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListByUser returns up to limit records owned by userID, newest first. A
// non-positive limit selects the default; larger limits are capped.
func (s *BadgerStore) ListByUser(ctx context.Context, userID string, limit int) ([]*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit = s.ClampLimit(limit)

	records := make([]*Record, 0, min(limit, 16))
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := userIndexPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix) && len(records) < limit; it.Next() {
			var id string
			if err := it.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			}); err != nil {
				return fmt.Errorf("read user index: %w", err)
			}

			rec, err := getRecord(txn, id)
			if errors.Is(err, ErrNotFound) {
				continue // index entry outlived its record
			}
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list user predictions: %w", err)
	}
	return records, nil
}

// Delete removes a record owned by userID.
func (s *BadgerStore) Delete(ctx context.Context, id, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		rec, err := getRecord(txn, id)
		if err != nil {
			return err
		}
		if rec.UserID != userID {
			return ErrForbidden
		}
		if err := txn.Delete(recordKey(id)); err != nil {
			return fmt.Errorf("delete prediction: %w", err)
		}
		if err := txn.Delete(userIndexKey(rec.UserID, rec.CreatedAt, id)); err != nil {
			return fmt.Errorf("delete user index: %w", err)
		}
		return nil
	})
}

// Count returns the total number of stored records.
func (s *BadgerStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(recordKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// ClampLimit applies the store's default and maximum list sizes.
func (s *BadgerStore) ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return s.defaultLimit
	case limit > s.maxLimit:
		return s.maxLimit
	default:
		return limit
	}
}

// RunGC reclaims value log space from deleted records. In-memory stores
// have no value log.
func (s *BadgerStore) RunGC() error {
	err := s.db.RunValueLogGC(0.5)
	if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
		return nil
	}
	return err
}

func getRecord(txn *badger.Txn, id string) (*Record, error) {
	item, err := txn.Get(recordKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get prediction: %w", err)
	}

	var rec Record
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal prediction: %w", err)
	}
	return &rec, nil
}

func recordKey(id string) []byte {
	return []byte(recordKeyPrefix + id)
}

// userIndexPrefix escapes the user ID so one user's prefix can never match
// another user's keys.
func userIndexPrefix(userID string) []byte {
	return []byte(recordUserKeyPrefix + url.QueryEscape(userID) + ":")
}

// userIndexKey orders entries by inverted creation time, so forward prefix
// iteration yields the newest record first.
func userIndexKey(userID string, createdAt time.Time, id string) []byte {
	inverted := math.MaxInt64 - createdAt.UnixNano()
	return fmt.Appendf(userIndexPrefix(userID), "%019d:%s", inverted, id)
}
