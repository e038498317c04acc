package kvstore

import (
	"context"
	"encoding/json"

	"github.com/hammamikhairi/chefiq/internal/domain"
)

// ReadJSON decodes the JSON blob stored under key into v. A missing
// key or a corrupt payload leaves v untouched and reports found=false;
// corruption is recovered locally, never surfaced. Callers pass a
// pre-initialized default in v.
func ReadJSON(ctx context.Context, kv domain.KV, key string, v any) (found bool, err error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, nil
	}
	return true, nil
}

// WriteJSON serializes v and stores it under key as one whole-blob
// write.
func WriteJSON(ctx context.Context, kv domain.KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, string(data))
}
