// Package kv is the string key-value store the recipe and user stores persist
// into. Every collection is one JSON document under a fixed key, and every
// mutation rewrites the whole document.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Keys used by the services.
const (
	RecipesKey        = "recipes"
	UsersKey          = "users"
	CurrentUserKey    = "currentUser"
	GuestFavoritesKey = "guest_favorites"
)

// ErrCorrupt is returned when a stored value cannot be decoded.
var ErrCorrupt = errors.New("corrupt stored value")

// Store is the read/write contract every backend implements. Get reports
// found=false for a missing key; that is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GetJSON decodes the value under key into dest.
func GetJSON(ctx context.Context, s Store, key string, dest interface{}) (bool, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

// SetJSON encodes value and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
