// SPDX-License-Identifier: BSD-3-Clause

package storage

import (
	"fmt"

	"github.com/gomodule/redigo/redis"

	"github.com/selliott512/sudoku-solvers/puzzle"
)

/*

solution cache

The cache maps the compact encoding of a starting grid to the
compact encoding of its solution.  Only solved grids are cached;
unsolvable grids re-run the (fast) failing search each time.

*/

// cacheKey returns the cache key for a starting grid.
func (s *Store) cacheKey(g puzzle.Grid) string {
	return s.cfg.Env + ":sud:" + g.Encode()
}

// CachedSolution looks up the solution for a starting grid.  The
// second return value says whether one was found.  With no cache
// connected it reports a miss without error.
func (s *Store) CachedSolution(g puzzle.Grid) (puzzle.Grid, bool, error) {
	if s.rdc == nil {
		return puzzle.Grid{}, false, nil
	}
	var enc string
	err := s.rdExecute(func(conn redis.Conn) error {
		v, err := redis.String(conn.Do("GET", s.cacheKey(g)))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			return err
		}
		enc = v
		return nil
	})
	if err != nil || enc == "" {
		return puzzle.Grid{}, false, err
	}
	soln, err := puzzle.Decode(enc)
	if err != nil {
		return puzzle.Grid{}, false, fmt.Errorf("malformed cached solution for %q: %w", g.Encode(), err)
	}
	return soln, true, nil
}

// CacheSolution records the solution for a starting grid.  With
// no cache connected it does nothing.
func (s *Store) CacheSolution(g, soln puzzle.Grid) error {
	if s.rdc == nil {
		return nil
	}
	return s.rdExecute(func(conn redis.Conn) error {
		_, err := conn.Do("SET", s.cacheKey(g), soln.Encode())
		return err
	})
}
