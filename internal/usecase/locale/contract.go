package locale

import (
	"context"

	domlocale "github.com/kailas-cloud/dateformat/internal/domain/locale"
)

// Repository defines the storage contract for runtime locale tables.
type Repository interface {
	Save(ctx context.Context, l domlocale.Locale) error
	List(ctx context.Context) ([]domlocale.Locale, error)
	Delete(ctx context.Context, name string) error
}

// Registry is the in-process locale table set.
type Registry interface {
	Register(l domlocale.Locale) error
	Unregister(name string) error
	Lookup(name string) (domlocale.Locale, error)
	Names() []string
	Len() int
}

// Invalidator is notified after the registry changes.
type Invalidator interface {
	Invalidate()
}
