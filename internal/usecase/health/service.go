// Package health aggregates the database and engine checks behind GET /health.
package health

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dateformat/internal/logger"
)

// Status is the aggregated health status.
type Status string

const (
	// Healthy: every probe passed.
	Healthy Status = "ok"
	// Degraded: formatting works but presets and stored locales do not.
	Degraded Status = "degraded"
	// Unhealthy: the engine itself failed its self-check.
	Unhealthy Status = "error"
)

// CheckResult is the outcome of one probe.
type CheckResult string

const (
	CheckOK    CheckResult = "ok"
	CheckError CheckResult = "error"
)

// Report aggregates probe results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

type probe struct {
	name  string
	fatal bool
	run   func(ctx context.Context) error
}

// Service runs the probes.
type Service struct {
	probes []probe
}

// New creates a Service. engine can be nil.
func New(db DBPinger, engine EngineChecker) *Service {
	probes := []probe{{name: "database", run: db.Ping}}
	if engine != nil {
		probes = append(probes, probe{name: "engine", fatal: true, run: engine.HealthCheck})
	}
	return &Service{probes: probes}
}

// Check runs every probe. A failed fatal probe makes the report Unhealthy,
// any other failure makes it Degraded.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{Status: Healthy, Checks: make(map[string]CheckResult, len(s.probes))}

	for _, p := range s.probes {
		err := p.run(ctx)
		if err == nil {
			report.Checks[p.name] = CheckOK
			continue
		}

		report.Checks[p.name] = CheckError
		logger.FromContext(ctx).Warn("health probe failed", zap.String("probe", p.name), zap.Error(err))
		switch {
		case p.fatal:
			report.Status = Unhealthy
		case report.Status == Healthy:
			report.Status = Degraded
		}
	}
	return report
}
