package locale

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/language"

	"github.com/kailas-cloud/dateformat/internal/domain"
)

// Registry maps locale names to tables. English is always present.
// Names are canonicalised as BCP 47 tags, so "EN-gb" and "en-GB" are the same.
type Registry struct {
	mu      sync.RWMutex
	locales map[string]Locale
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry holding only English until
// something registers more.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with English preloaded.
func NewRegistry() *Registry {
	return &Registry{locales: map[string]Locale{DefaultName: English.clone()}}
}

// Register validates and stores l under its canonical name, replacing any
// previous table with the same name.
func (r *Registry) Register(l Locale) error {
	name, err := Canonical(l.Name)
	if err != nil {
		return err
	}
	l.Name = name
	if err := l.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.locales[name] = l.clone()
	return nil
}

// Unregister removes the table stored under name. The default locale cannot
// be removed.
func (r *Registry) Unregister(name string) error {
	name, err := Canonical(name)
	if err != nil {
		return err
	}
	if name == DefaultName {
		return fmt.Errorf("%w: %q is the default locale", domain.ErrBuiltinLocale, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.locales[name]; !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownLocale, name)
	}
	delete(r.locales, name)
	return nil
}

// Len returns the number of registered tables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.locales)
}

// Lookup returns the table for name. An empty name selects DefaultName.
// A regional tag without its own table falls back to its base language.
// The returned table shares storage with the registry and must not be modified.
func (r *Registry) Lookup(name string) (Locale, error) {
	if name == "" {
		name = DefaultName
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if l, ok := r.locales[name]; ok {
		return l, nil
	}

	tag, err := language.Parse(name)
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q", domain.ErrUnknownLocale, name)
	}
	if l, ok := r.locales[tag.String()]; ok {
		return l, nil
	}
	if base, conf := tag.Base(); conf != language.No {
		if l, ok := r.locales[base.String()]; ok {
			return l, nil
		}
	}
	return Locale{}, fmt.Errorf("%w: %q", domain.ErrUnknownLocale, name)
}

// Names returns the registered locale names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.locales))
	for n := range r.locales {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Canonical normalises a locale name to its BCP 47 form.
func Canonical(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrInvalidLocale)
	}
	tag, err := language.Parse(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a language tag: %w", domain.ErrInvalidLocale, name, err)
	}
	return tag.String(), nil
}
