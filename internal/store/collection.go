package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/printguard/printguard-api/internal/storage"
)

// loadSlot lê uma coleção do seu slot, semeando o conjunto padrão na
// primeira utilização (slot ausente).
func loadSlot[T any](ctx context.Context, kv storage.Store, key string, seed []T) ([]T, error) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		if err := saveSlot(ctx, kv, key, seed); err != nil {
			return nil, fmt.Errorf("seed slot %s: %w", key, err)
		}
		return append([]T(nil), seed...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode slot %s: %w", key, err)
	}
	return items, nil
}

// saveSlot serializa a coleção inteira de volta para o slot.
func saveSlot[T any](ctx context.Context, kv storage.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", key, err)
	}
	return kv.Set(ctx, key, raw)
}
