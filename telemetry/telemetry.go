// Package telemetry counts session events as OpenTelemetry metrics.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/phanxgames/aerobatica"
)

const instrumentationName = "github.com/phanxgames/aerobatica/telemetry"

// Meter returns the meter from the global provider. It is a no-op until an
// SDK provider is installed with otel.SetMeterProvider.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder turns session events into counter increments.
type Recorder struct {
	shots      metric.Int64Counter
	enemyShots metric.Int64Counter
	kills      metric.Int64Counter
	sessions   metric.Int64Counter
}

// NewRecorder registers the aerobatica counters on m.
func NewRecorder(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	var err error

	r.shots, err = m.Int64Counter(
		"aerobatica.shots",
		metric.WithDescription("Player bullets fired"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	r.enemyShots, err = m.Int64Counter(
		"aerobatica.enemy_shots",
		metric.WithDescription("Enemy projectiles launched"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating enemy shots counter: %w", err)
	}

	r.kills, err = m.Int64Counter(
		"aerobatica.kills",
		metric.WithDescription("Enemy aircraft destroyed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kills counter: %w", err)
	}

	r.sessions, err = m.Int64Counter(
		"aerobatica.sessions",
		metric.WithDescription("Finished sessions by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sessions counter: %w", err)
	}

	return r, nil
}

// Listen subscribes r to the events of s.
func (r *Recorder) Listen(s *aerobatica.Session) aerobatica.Handle {
	return s.OnEvent(r.Record)
}

// Record counts a single event.
func (r *Recorder) Record(ev aerobatica.Event) {
	ctx := context.Background()
	switch ev.Kind {
	case aerobatica.EventShot:
		r.shots.Add(ctx, 1)
	case aerobatica.EventEnemyShot:
		r.enemyShots.Add(ctx, 1, metric.WithAttributes(attribute.String("projectile", ev.Subject.String())))
	case aerobatica.EventEnemyDown:
		r.kills.Add(ctx, 1, metric.WithAttributes(attribute.String("enemy", ev.Subject.String())))
	case aerobatica.EventVictory:
		r.finished(ctx, aerobatica.Won)
	case aerobatica.EventDefeat:
		r.finished(ctx, aerobatica.Lost)
	case aerobatica.EventQuit:
		r.finished(ctx, aerobatica.Quit)
	}
}

func (r *Recorder) finished(ctx context.Context, outcome aerobatica.State) {
	r.sessions.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome.String())))
}
