package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/phanxgames/aerobatica"
)

func newTestRecorder(t *testing.T) (*Recorder, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	rec, err := NewRecorder(mp.Meter("test"))
	require.NoError(t, err)
	return rec, reader
}

// counterValue sums the data points of the named counter that carry attr.
// An empty attr key matches every data point.
func counterValue(t *testing.T, reader *sdkmetric.ManualReader, name string, attr attribute.KeyValue) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				if attr.Key != "" {
					v, found := dp.Attributes.Value(attr.Key)
					if !found || v.Emit() != attr.Value.Emit() {
						continue
					}
				}
				total += dp.Value
			}
		}
	}
	return total
}

func TestRecord_Counters(t *testing.T) {
	rec, reader := newTestRecorder(t)

	rec.Record(aerobatica.Event{Kind: aerobatica.EventShot, Subject: aerobatica.KindPlayerBullet})
	rec.Record(aerobatica.Event{Kind: aerobatica.EventShot, Subject: aerobatica.KindPlayerBullet})
	rec.Record(aerobatica.Event{Kind: aerobatica.EventEnemyShot, Subject: aerobatica.KindMissile})
	rec.Record(aerobatica.Event{Kind: aerobatica.EventEnemyDown, Subject: aerobatica.KindVulcanJet})
	rec.Record(aerobatica.Event{Kind: aerobatica.EventEnemyDown, Subject: aerobatica.KindBomber})
	rec.Record(aerobatica.Event{Kind: aerobatica.EventVictory, Subject: aerobatica.KindBomber})

	assert.Equal(t, int64(2), counterValue(t, reader, "aerobatica.shots", attribute.KeyValue{}))
	assert.Equal(t, int64(1), counterValue(t, reader, "aerobatica.enemy_shots", attribute.String("projectile", "missile")))
	assert.Equal(t, int64(2), counterValue(t, reader, "aerobatica.kills", attribute.KeyValue{}))
	assert.Equal(t, int64(1), counterValue(t, reader, "aerobatica.kills", attribute.String("enemy", "vulcan-jet")))
	assert.Equal(t, int64(1), counterValue(t, reader, "aerobatica.sessions", attribute.String("outcome", "won")))
	assert.Equal(t, int64(0), counterValue(t, reader, "aerobatica.sessions", attribute.String("outcome", "lost")))
}

func TestRecord_IgnoresPlayerDown(t *testing.T) {
	rec, reader := newTestRecorder(t)

	rec.Record(aerobatica.Event{Kind: aerobatica.EventPlayerDown, Subject: aerobatica.KindMissile})

	assert.Equal(t, int64(0), counterValue(t, reader, "aerobatica.kills", attribute.KeyValue{}))
	assert.Equal(t, int64(0), counterValue(t, reader, "aerobatica.sessions", attribute.KeyValue{}))
}

func TestListen_Session(t *testing.T) {
	rec, reader := newTestRecorder(t)
	s := aerobatica.NewSession(aerobatica.Options{})
	rec.Listen(s)

	s.Entity(aerobatica.KindBomber).Destroyed = true
	s.Tick()

	assert.Equal(t, aerobatica.Won, s.State())
	assert.Equal(t, int64(1), counterValue(t, reader, "aerobatica.sessions", attribute.String("outcome", "won")))
}

func TestListen_Remove(t *testing.T) {
	rec, reader := newTestRecorder(t)
	s := aerobatica.NewSession(aerobatica.Options{})
	rec.Listen(s).Remove()

	s.Entity(aerobatica.KindBomber).Destroyed = true
	s.Tick()

	assert.Equal(t, int64(0), counterValue(t, reader, "aerobatica.sessions", attribute.KeyValue{}))
}

func TestListen_QuitOutcome(t *testing.T) {
	rec, reader := newTestRecorder(t)
	s := aerobatica.NewSession(aerobatica.Options{})
	rec.Listen(s)

	st := s.Update(time.Now(), aerobatica.NewKeySet(aerobatica.KeyQuit))

	assert.Equal(t, aerobatica.Quit, st)
	assert.Equal(t, int64(1), counterValue(t, reader, "aerobatica.sessions", attribute.String("outcome", "quit")))
}

func TestMeter_NoProvider(t *testing.T) {
	rec, err := NewRecorder(Meter())
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		rec.Record(aerobatica.Event{Kind: aerobatica.EventShot})
	})
}
