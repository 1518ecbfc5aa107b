package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	kv := NewMemKV()
	got := Load(context.Background(), kv, "absent", record{Name: "def"})
	assert.Equal(t, record{Name: "def"}, got)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := NewMemKV()
	ctx := context.Background()

	Save(ctx, kv, "r", record{Name: "greeting", Count: 3})
	got := Load(ctx, kv, "r", record{})
	assert.Equal(t, record{Name: "greeting", Count: 3}, got)
}

func TestLoadCorruptReturnsDefault(t *testing.T) {
	kv := NewMemKV()
	ctx := context.Background()

	kv.Set(ctx, "r", []byte(`{not json`))
	got := Load(ctx, kv, "r", record{Name: "fallback"})
	assert.Equal(t, record{Name: "fallback"}, got)
}

func TestSaveSwallowsWriteFailure(t *testing.T) {
	kv := NewMemKV()
	kv.FailWrites = true

	// Must not panic or surface an error.
	Save(context.Background(), kv, "r", record{Name: "x"})

	kv.FailWrites = false
	got := Load(context.Background(), kv, "r", record{Name: "def"})
	assert.Equal(t, record{Name: "def"}, got)
}
