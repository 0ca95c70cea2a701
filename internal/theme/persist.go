package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/renato0307/shade/internal/store"
	"github.com/renato0307/shade/internal/types"
)

// ErrNoSnapshot is returned by a Persister that holds no saved theme.
var ErrNoSnapshot = errors.New("no saved theme")

// Persister saves and restores the whole theme state.
type Persister interface {
	Load(ctx context.Context) (types.State, error)
	Save(ctx context.Context, s types.State) error
}

// KV is the key-value slot a KVPersister writes to.
type KV interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// KVPersister stores the state as JSON under a single key.
type KVPersister struct {
	kv  KV
	key string
}

// NewKVPersister persists under store.ThemeKey.
func NewKVPersister(kv KV) *KVPersister {
	return &KVPersister{kv: kv, key: store.ThemeKey}
}

func (p *KVPersister) Load(ctx context.Context) (types.State, error) {
	data, err := p.kv.Load(ctx, p.key)
	if errors.Is(err, store.ErrNotFound) {
		return types.State{}, ErrNoSnapshot
	}
	if err != nil {
		return types.State{}, err
	}

	s := types.DefaultState()
	if err := json.Unmarshal(data, &s); err != nil {
		return types.State{}, fmt.Errorf("decode saved theme: %w", err)
	}
	if s.Radius < 0 {
		return types.State{}, fmt.Errorf("decode saved theme: negative radius %v", s.Radius)
	}
	return s, nil
}

func (p *KVPersister) Save(ctx context.Context, s types.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	return p.kv.Save(ctx, p.key, data)
}
