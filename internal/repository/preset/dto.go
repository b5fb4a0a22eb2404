package preset

import (
	"fmt"
	"strconv"

	"github.com/kailas-cloud/dateformat/internal/domain/preset"
)

// presetToHash converts a Preset to a map for HSET.
func presetToHash(p preset.Preset) map[string]string {
	return map[string]string{
		"name":        p.Name(),
		"pattern":     p.Pattern(),
		"description": p.Description(),
		"utc":         strconv.FormatBool(p.UTC()),
		"locale":      p.Locale(),
		"created_at":  strconv.FormatInt(p.CreatedAt(), 10),
		"updated_at":  strconv.FormatInt(p.UpdatedAt(), 10),
	}
}

// presetFromHash hydrates a Preset from an HGETALL result map.
func presetFromHash(m map[string]string) (preset.Preset, error) {
	if m["name"] == "" || m["pattern"] == "" {
		return preset.Preset{}, fmt.Errorf("missing name or pattern")
	}
	createdAt, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return preset.Preset{}, fmt.Errorf("invalid created_at: %w", err)
	}

	updatedAt := createdAt
	if s := m["updated_at"]; s != "" {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
			updatedAt = parsed
		}
	}

	utc, _ := strconv.ParseBool(m["utc"])
	return preset.Reconstruct(m["name"], m["pattern"], m["description"], utc, m["locale"], createdAt, updatedAt), nil
}
