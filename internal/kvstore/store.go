// Package kvstore provides a Redis-backed store for scalar user
// preferences: theme, cached simulation targets and profile fields.
// Values are plain strings; there are no multi-key atomicity
// guarantees and none are needed.
package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// ErrUnavailable is returned by writes when the store has no Redis
// client behind it. Reads degrade to ErrKeyNotFound instead.
var ErrUnavailable = errors.New("kvstore: store unavailable")

// Store reads and writes namespaced scalar values.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a Store. An empty prefix defaults to "prefs".
func NewStore(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = "prefs"
	}
	return &Store{client: client, prefix: prefix}
}

// key builds the Redis key for a user-scoped preference.
func (s *Store) key(userID, name string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, userID, name)
}

// Get returns the stored value for a user's key.
func (s *Store) Get(ctx context.Context, userID, name string) (string, error) {
	if s.client == nil {
		return "", ErrKeyNotFound
	}
	val, err := s.client.Get(ctx, s.key(userID, name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return val, nil
}

// Set stores a value for a user's key. Values never expire; a
// preference lives until it is overwritten or deleted.
func (s *Store) Set(ctx context.Context, userID, name, value string) error {
	if s.client == nil {
		return ErrUnavailable
	}
	return s.client.Set(ctx, s.key(userID, name), value, 0).Err()
}

// Delete removes a user's key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, userID, name string) error {
	if s.client == nil {
		return ErrUnavailable
	}
	return s.client.Del(ctx, s.key(userID, name)).Err()
}
