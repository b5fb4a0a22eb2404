package preset

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/dateformat/internal/domain"
	"github.com/kailas-cloud/dateformat/internal/domain/preset"
)

// store is the consumer interface for presets (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/preset.Repository. Each preset is one hash at
// <prefix>pattern:<name>.
type Repo struct {
	store  store
	prefix string
}

// New creates a preset repository. prefix namespaces all keys.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Save creates or replaces a preset. An existing preset keeps its creation time.
// created reports whether the name was new.
func (r *Repo) Save(ctx context.Context, p preset.Preset) (saved preset.Preset, created bool, err error) {
	key := r.key(p.Name())

	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return preset.Preset{}, false, fmt.Errorf("hgetall pattern %s: %w", p.Name(), err)
	}
	if len(m) > 0 {
		if prev, err := presetFromHash(m); err == nil {
			p = p.Replacing(prev)
		}
	}

	if err := r.store.HSet(ctx, key, presetToHash(p)); err != nil {
		return preset.Preset{}, false, fmt.Errorf("hset pattern %s: %w", p.Name(), err)
	}
	return p, len(m) == 0, nil
}

// Get retrieves a preset by name.
func (r *Repo) Get(ctx context.Context, name string) (preset.Preset, error) {
	m, err := r.store.HGetAll(ctx, r.key(name))
	if err != nil {
		return preset.Preset{}, fmt.Errorf("hgetall pattern %s: %w", name, err)
	}
	if len(m) == 0 {
		return preset.Preset{}, domain.ErrPatternNotFound
	}
	p, err := presetFromHash(m)
	if err != nil {
		return preset.Preset{}, fmt.Errorf("parse pattern %s: %w", name, err)
	}
	return p, nil
}

// List returns all presets sorted by name.
func (r *Repo) List(ctx context.Context) ([]preset.Preset, error) {
	keys, err := r.store.Scan(ctx, r.key("*"))
	if err != nil {
		return nil, fmt.Errorf("scan patterns: %w", err)
	}
	if len(keys) == 0 {
		return []preset.Preset{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi patterns: %w", err)
	}

	out := make([]preset.Preset, 0, len(results))
	for i, m := range results {
		// deleted between SCAN and HGETALL
		if len(m) == 0 {
			continue
		}
		p, err := presetFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse pattern %s: %w", keys[i], err)
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

// Delete removes a preset.
func (r *Repo) Delete(ctx context.Context, name string) error {
	key := r.key(name)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if !exists {
		return domain.ErrPatternNotFound
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del pattern %s: %w", name, err)
	}
	return nil
}

func (r *Repo) key(name string) string {
	return r.prefix + "pattern:" + name
}
