package cache

import (
	"context"       // Context for Redis operations
	"encoding/json" // Transport encoding for cached values
	"strconv"       // Key formatting
	"time"          // TTL durations

	"github.com/redis/go-redis/v9" // Redis client
)

// TodoKey returns the cache key for a single todo snapshot
func TodoKey(todoID uint) string {
	return "todo:" + strconv.FormatUint(uint64(todoID), 10)
}

// UserTodosKey returns the cache key for a user's ordered todo list
func UserTodosKey(userID uint) string {
	return "user:" + strconv.FormatUint(uint64(userID), 10) + ":todos"
}

// Cache is a thin JSON-over-Redis key/value layer with expiration. Errors
// are returned to callers; the todo service decides the fail-soft policy.
type Cache struct {
	rdb *redis.Client // Shared process-wide Redis connection
	ttl time.Duration // Default entry TTL
}

// New creates a cache around an established Redis client
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get retrieves a value and unmarshals it into dest. The boolean reports
// whether the key was present; a missing key is not an error.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// Set stores a value under key with the default TTL
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err() // Set value in Redis with TTL
}

// Delete removes a key
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err() // Delete key from Redis
}
