package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeasonalMultiplier(t *testing.T) {
	assert.Equal(t, 1.30, SeasonalMultiplier(time.December))
	assert.Equal(t, 0.85, SeasonalMultiplier(time.July))
	assert.Equal(t, 1.00, SeasonalMultiplier(time.April))
}

func TestWeekdayMultiplier(t *testing.T) {
	assert.Equal(t, 1.25, WeekdayMultiplier(time.Saturday))
	assert.Equal(t, 1.25, WeekdayMultiplier(time.Sunday))
	assert.Equal(t, 0.85, WeekdayMultiplier(time.Monday))
	assert.Equal(t, 1.0, WeekdayMultiplier(time.Thursday))
}

func TestMarketState(t *testing.T) {
	t.Run("totals and additions", func(t *testing.T) {
		state := NewMarketState()
		state.SetTotals(100, 10, 30)
		state.AddUsers(5)
		state.AddDevelopers(2)
		state.AddGames(3)

		snap := state.Snapshot()
		assert.Equal(t, 105, snap.TotalUsers)
		assert.Equal(t, 12, snap.TotalDevelopers)
		assert.Equal(t, 33, snap.TotalGames)
	})

	t.Run("active users clamp to population", func(t *testing.T) {
		state := NewMarketState()
		state.SetTotals(100, 0, 0)

		state.SetActiveUsers(250)
		assert.Equal(t, 100, state.Snapshot().ActiveUsers)

		state.SetActiveUsers(-1)
		assert.Equal(t, 0, state.Snapshot().ActiveUsers)

		state.SetActiveUsers(40)
		state.SetTotals(30, 0, 0)
		assert.Equal(t, 30, state.Snapshot().ActiveUsers, "shrinking totals re-clamps active users")
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		state := NewMarketState()
		state.SetTotals(1, 1, 1)

		snap := state.Snapshot()
		state.AddUsers(10)

		assert.Equal(t, 1, snap.TotalUsers)
		assert.Equal(t, 11, state.Snapshot().TotalUsers)
	})
}
