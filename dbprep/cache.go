// SPDX-License-Identifier: BSD-3-Clause

package dbprep

import (
	"github.com/gomodule/redigo/redis"
)

// ClearCache flushes all keys from the Redis cache.
func ClearCache(cacheURL string) error {
	conn, err := redis.DialURL(cacheURL)
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Do("FLUSHALL")
	return err
}
