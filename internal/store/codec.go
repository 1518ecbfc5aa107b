package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and decodes the JSON record under key. Missing or corrupt
// data falls back to def; corruption and read failures are reported as a
// stderr warning, never as an error, so a bad record can only ever cost
// the user that one value.
func Load[T any](ctx context.Context, kv KV, key string, def T) T {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read %q: %v\n", key, err)
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Fprintf(os.Stderr, "warning: corrupt record %q, using default: %v\n", key, err)
		return def
	}
	return v
}

// Save encodes v as JSON and stores it under key. Failures are logged
// and swallowed; the caller continues with its in-memory state.
func Save[T any](ctx context.Context, kv KV, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode %q: %v\n", key, err)
		return
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write %q: %v\n", key, err)
	}
}
