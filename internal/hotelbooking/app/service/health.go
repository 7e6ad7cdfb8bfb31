package service

import (
	"context"

	"github.com/stayforge/hotel-booking-service/pkg/worker"
)

const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

type (
	// Pinger probes a single backing dependency.
	Pinger interface {
		Name() string
		Ping(ctx context.Context) error
	}

	Health interface {
		Check(ctx context.Context) HealthReport
	}

	HealthReport struct {
		Components map[string]string
	}

	healthService struct {
		pingers []Pinger
	}
)

func NewHealth(pingers ...Pinger) Health {
	return &healthService{pingers: pingers}
}

func (r HealthReport) Ready() bool {
	for _, status := range r.Components {
		if status != HealthStatusOK {
			return false
		}
	}

	return true
}

func (s healthService) Check(ctx context.Context) HealthReport {
	type probeResult struct {
		name string
		err  error
	}

	results := make(chan probeResult, len(s.pingers))
	group := worker.NewFailSafeGroup(ctx)
	for _, pinger := range s.pingers {
		pinger := pinger
		group.Do(func(ctx context.Context) error {
			results <- probeResult{name: pinger.Name(), err: pinger.Ping(ctx)}
			return nil
		})
	}
	_ = group.Wait()
	close(results)

	report := HealthReport{Components: make(map[string]string, len(s.pingers))}
	for result := range results {
		status := HealthStatusOK
		if result.err != nil {
			status = HealthStatusUnavailable
		}
		report.Components[result.name] = status
	}

	return report
}
