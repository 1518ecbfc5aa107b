package store

import "context"

// MemKV is an in-memory KV used by tests and as a last-resort fallback
// when the database cannot be opened.
type MemKV struct {
	data map[string][]byte

	// FailWrites makes Set return an error, for exercising the
	// swallow-and-log write path.
	FailWrites bool
}

var _ KV = (*MemKV)(nil)

// NewMemKV creates an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string][]byte)}
}

func (m *MemKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, ok := m.data[key]
	return raw, ok, nil
}

func (m *MemKV) Set(ctx context.Context, key string, raw []byte) error {
	if m.FailWrites {
		return context.DeadlineExceeded
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	m.data[key] = cp
	return nil
}

func (m *MemKV) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MemKV) Clear(ctx context.Context) error {
	m.data = make(map[string][]byte)
	return nil
}
