package preset

import (
	"context"

	domlocale "github.com/kailas-cloud/dateformat/internal/domain/locale"
	dompreset "github.com/kailas-cloud/dateformat/internal/domain/preset"
)

// Repository defines the storage contract for presets.
type Repository interface {
	Save(ctx context.Context, p dompreset.Preset) (dompreset.Preset, bool, error)
	Get(ctx context.Context, name string) (dompreset.Preset, error)
	List(ctx context.Context) ([]dompreset.Preset, error)
	Delete(ctx context.Context, name string) error
}

// LocaleLookup resolves locale names.
type LocaleLookup interface {
	Lookup(name string) (domlocale.Locale, error)
}
