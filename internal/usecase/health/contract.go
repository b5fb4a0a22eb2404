package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// EngineChecker runs the format/parse self-check.
type EngineChecker interface {
	HealthCheck(ctx context.Context) error
}
