package datetime

import (
	"context"

	dompreset "github.com/kailas-cloud/dateformat/internal/domain/preset"
)

// PresetResolver resolves named patterns.
type PresetResolver interface {
	Resolve(ctx context.Context, name string) (dompreset.Preset, error)
}
