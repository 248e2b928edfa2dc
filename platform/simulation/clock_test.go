package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_SimulatedDay(t *testing.T) {
	simStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("starts at day zero", func(t *testing.T) {
		clock := NewClock(simStart, 3600)
		assert.Equal(t, 0, clock.SimulatedDay())
		assert.Equal(t, simStart, clock.SimulatedDate())
	})

	t.Run("advances with elapsed real time", func(t *testing.T) {
		// 10ms of real time per simulated day
		clock := NewClock(simStart, 0.01)
		time.Sleep(35 * time.Millisecond)

		day := clock.SimulatedDay()
		assert.GreaterOrEqual(t, day, 3)
		assert.Equal(t, simStart.AddDate(0, 0, day), clock.SimulatedDate())
	})

	t.Run("never moves backward", func(t *testing.T) {
		clock := NewClock(simStart, 0.005)
		prev := clock.SimulatedDay()
		for i := 0; i < 50; i++ {
			time.Sleep(time.Millisecond)
			day := clock.SimulatedDay()
			require.GreaterOrEqual(t, day, prev)
			prev = day
		}
	})

	t.Run("invalid compression falls back to default", func(t *testing.T) {
		clock := NewClock(simStart, -5)
		assert.Equal(t, 0, clock.SimulatedDay())
	})
}

func TestClock_SimulatedDateTime(t *testing.T) {
	simStart := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	clock := NewClock(simStart, 3600)

	for i := 0; i < 100; i++ {
		ts := clock.SimulatedDateTime()

		assert.Equal(t, simStart.Year(), ts.Year())
		assert.Equal(t, simStart.Month(), ts.Month())
		assert.Equal(t, simStart.Day(), ts.Day())
		assert.GreaterOrEqual(t, ts.Hour(), businessHoursStart)
		assert.LessOrEqual(t, ts.Hour(), businessHoursEnd)
	}
}
