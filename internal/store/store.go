package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/clubtrainer/pkg"
)

var ErrNotFound = errors.New("key not found")

// Store is the key-value surface the domain packages depend on.
// Values are opaque strings; most callers go through GetJSON / SetJSON.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	ListPush(ctx context.Context, key string, values ...string) error
	// ReplaceList swaps the whole list at key for values atomically. With no
	// values the key is removed. On error the previous list is untouched.
	ReplaceList(ctx context.Context, key string, values ...string) error
	ListRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	KeysMatching(ctx context.Context, pattern string) ([]string, error)
}

// GetJSON reads the value stored under key, decodes it into T and validates it.
// A record that does not decode or does not pass validation is rejected here,
// so consumers never see a half-shaped value.
func GetJSON[T any](ctx context.Context, s Store, key string) (*T, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return DecodeJSON[T](key, raw)
}

func DecodeJSON[T any](key, raw string) (*T, error) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("decode [%s]: %w", key, err)
	}
	if err := pkg.ValidateStruct(&v); err != nil {
		return nil, fmt.Errorf("invalid record [%s]: %w", key, err)
	}
	return &v, nil
}

func SetJSON(ctx context.Context, s Store, key string, value any) error {
	if err := pkg.ValidateStruct(value); err != nil {
		return fmt.Errorf("invalid record [%s]: %w", key, err)
	}
	valueJson, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal [%s]: %w", key, err)
	}
	return s.Set(ctx, key, string(valueJson))
}

// ListJSON decodes every element of the list stored under key.
func ListJSON[T any](ctx context.Context, s Store, key string) ([]T, error) {
	rawItems, err := s.ListRange(ctx, key, 0, -1)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(rawItems))
	for i, raw := range rawItems {
		item, err := DecodeJSON[T](fmt.Sprintf("%s[%d]", key, i), raw)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}
