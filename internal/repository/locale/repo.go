// Package locale persists locale tables registered at runtime.
package locale

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/kailas-cloud/dateformat/internal/db"
	"github.com/kailas-cloud/dateformat/internal/domain"
	domlocale "github.com/kailas-cloud/dateformat/internal/domain/locale"
)

// store is the consumer interface for locale tables (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo stores each locale as a JSON value at <prefix>locale:<name>.
type Repo struct {
	store  store
	prefix string
}

// New creates a locale repository. prefix namespaces all keys.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Save stores l under its name, replacing any previous table.
func (r *Repo) Save(ctx context.Context, l domlocale.Locale) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshal locale %s: %w", l.Name, err)
	}
	if err := r.store.Set(ctx, r.key(l.Name), data); err != nil {
		return fmt.Errorf("set locale %s: %w", l.Name, err)
	}
	return nil
}

// Get loads the table stored under name.
func (r *Repo) Get(ctx context.Context, name string) (domlocale.Locale, error) {
	data, err := r.store.Get(ctx, r.key(name))
	if errors.Is(err, db.ErrKeyNotFound) {
		return domlocale.Locale{}, fmt.Errorf("%w: %q", domain.ErrUnknownLocale, name)
	}
	if err != nil {
		return domlocale.Locale{}, fmt.Errorf("get locale %s: %w", name, err)
	}
	var l domlocale.Locale
	if err := json.Unmarshal(data, &l); err != nil {
		return domlocale.Locale{}, fmt.Errorf("unmarshal locale %s: %w", name, err)
	}
	return l, nil
}

// List loads every stored table sorted by name. Keys removed while
// listing are skipped.
func (r *Repo) List(ctx context.Context) ([]domlocale.Locale, error) {
	keys, err := r.store.Scan(ctx, r.key("*"))
	if err != nil {
		return nil, fmt.Errorf("scan locales: %w", err)
	}

	out := make([]domlocale.Locale, 0, len(keys))
	for _, k := range keys {
		name := k[len(r.key("")):]
		l, err := r.Get(ctx, name)
		if errors.Is(err, domain.ErrUnknownLocale) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes the table stored under name.
func (r *Repo) Delete(ctx context.Context, name string) error {
	if err := r.store.Del(ctx, r.key(name)); err != nil {
		return fmt.Errorf("del locale %s: %w", name, err)
	}
	return nil
}

func (r *Repo) key(name string) string {
	return r.prefix + "locale:" + name
}
