// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package cache

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/search"
)

const (
	// resultKeyPrefix namespaces cached provider responses.
	resultKeyPrefix = "sr:"

	// DefaultTTL bounds how long a cached response may be served.
	DefaultTTL = 15 * time.Minute
)

// ResponseCache is a TTL-bounded BadgerDB cache of provider responses.
// It satisfies discovery.ResultCache.
type ResponseCache struct {
	db     *badger.DB
	ttl    time.Duration
	logger *slog.Logger
}

// Option configures a ResponseCache.
type Option func(*ResponseCache)

// WithTTL sets the entry lifetime. Default is DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *ResponseCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *ResponseCache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// Open opens a persistent response cache at the given directory,
// creating it if necessary.
func Open(path string, opts ...Option) (*ResponseCache, error) {
	if path == "" {
		return nil, ErrPathRequired
	}

	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return nil, err
		}
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", path)
	}

	return open(badger.DefaultOptions(path), opts...)
}

// OpenMemory opens an in-memory response cache, used in tests and when
// no cache directory is configured.
func OpenMemory(opts ...Option) (*ResponseCache, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), opts...)
}

func open(badgerOpts badger.Options, opts ...Option) (*ResponseCache, error) {
	c := &ResponseCache{
		ttl:    DefaultTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	badgerOpts.Logger = &badgerLoggerAdapter{logger: c.logger}
	badgerOpts.Compression = options.None

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, err
	}
	c.db = db
	return c, nil
}

// Close closes the underlying database.
func (c *ResponseCache) Close() error {
	return c.db.Close()
}

// Get returns the cached response for a query, or a miss. Corrupt
// entries are treated as misses and logged, never surfaced.
func (c *ResponseCache) Get(ctx context.Context, query *search.Query) (*search.Result, bool) {
	if c.db.IsClosed() {
		return nil, false
	}

	var result *search.Result
	err := c.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(resultKey(query))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			result, err = UnmarshalResult(val)
			return err
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			c.logger.Warn("cache read failed", "err", err)
		}
		return nil, false
	}
	return result, true
}

// Put stores a response under its query key with the configured TTL.
func (c *ResponseCache) Put(ctx context.Context, query *search.Query, result *search.Result) error {
	if c.db.IsClosed() {
		return ErrClosed
	}

	return c.db.Update(func(tx *badger.Txn) error {
		entry := badger.NewEntry(resultKey(query), MarshalResult(result)).WithTTL(c.ttl)
		return tx.SetEntry(entry)
	})
}

// resultKey derives the cache key for a query. Text, depth, and the
// provider-side result cap all participate: the same prompt at a
// different depth is a different response.
func resultKey(query *search.Query) []byte {
	hash := core.HashContent(fmt.Sprintf("%s|%s|%d", query.Text, query.Depth, query.MaxResults))
	key := make([]byte, len(resultKeyPrefix)+8)
	copy(key, resultKeyPrefix)
	binary.BigEndian.PutUint64(key[len(resultKeyPrefix):], hash)
	return key
}
