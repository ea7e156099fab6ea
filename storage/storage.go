// SPDX-License-Identifier: BSD-3-Clause

// Package storage provides the two optional persistence layers
// of the batch solver: a Redis cache of known solutions, and a
// Postgres archive of solve results.  Either layer (or both) can
// be absent; a Store with no configured URLs is valid and every
// operation on it is a cheap no-op, so the solver runs standalone
// with no services at all.
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selliott512/sudoku-solvers/dbprep"
)

// Config says which backends to connect and how.
type Config struct {
	CacheURL    string // Redis URL; empty disables the solution cache
	DatabaseURL string // Postgres URL; empty disables the solve archive
	Env         string // key namespace prefix, defaults to "local"
}

// A Store holds the open connections for one process.  Connect
// with Connect, release with Close.
type Store struct {
	cfg     Config
	rdMutex sync.Mutex // prevent concurrent cache connection use
	rdc     redis.Conn // open cache connection, if any
	pool    *pgxpool.Pool
}

// Connect opens whichever backends the config names.  The
// database schema is ensured before the pool is opened, so a
// fresh database works on first contact.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Env == "" {
		cfg.Env = "local"
	}
	s := &Store{cfg: cfg}

	if cfg.DatabaseURL != "" {
		// make sure the database is initialized
		if err := dbprep.EnsureData(cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("couldn't initialize database: %w", err)
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("couldn't connect to db at %q: %w", cfg.DatabaseURL, err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("couldn't reach db at %q: %w", cfg.DatabaseURL, err)
		}
		s.pool = pool
	}

	if cfg.CacheURL != "" {
		conn, err := redis.DialURL(cfg.CacheURL)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("couldn't connect to cache at %q: %w", cfg.CacheURL, err)
		}
		s.rdc = conn
	}
	return s, nil
}

// Close releases all open connections.  Safe on a Store with
// nothing connected.
func (s *Store) Close() {
	s.rdMutex.Lock()
	defer s.rdMutex.Unlock()
	if s.rdc != nil {
		s.rdc.Close()
		s.rdc = nil
	}
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
}

// HasCache reports whether the solution cache is connected.
func (s *Store) HasCache() bool {
	return s.rdc != nil
}

// HasDatabase reports whether the solve archive is connected.
func (s *Store) HasDatabase() bool {
	return s.pool != nil
}

// rdExecute runs the body with the cache mutex and connection.
// Because Redis connections can go away without warning, it
// pings first and reconnects if the connection is dead.  Panics
// inside the body come back as errors rather than taking the
// batch down.
func (s *Store) rdExecute(body func(conn redis.Conn) error) error {
	s.rdMutex.Lock()
	defer s.rdMutex.Unlock()
	wrapper := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
				} else {
					err = fmt.Errorf("caught panic during cache operation: %v", r)
				}
			}
		}()
		if _, err := s.rdc.Do("PING"); err != nil {
			s.rdc.Close()
			conn, err := redis.DialURL(s.cfg.CacheURL)
			if err != nil {
				return fmt.Errorf("failed to reconnect to cache at %q: %w", s.cfg.CacheURL, err)
			}
			s.rdc = conn
		}
		return body(s.rdc)
	}
	return wrapper()
}
