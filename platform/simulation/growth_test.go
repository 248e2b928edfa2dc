package simulation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGrowthModel_DailyUserGrowth(t *testing.T) {
	tests := []struct {
		name  string
		state StateSnapshot
	}{
		{"empty market", StateSnapshot{}},
		{"early market", StateSnapshot{TotalUsers: 10_000, TotalDevelopers: 10, TotalGames: 25}},
		{"growing market", StateSnapshot{TotalUsers: 500_000, TotalDevelopers: 400, TotalGames: 2_000}},
		{"mature market", StateSnapshot{TotalUsers: 50_000_000, TotalDevelopers: 20_000, TotalGames: 80_000}},
		{"saturated market", StateSnapshot{TotalUsers: 299_000_000, TotalDevelopers: 40_000, TotalGames: 120_000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := NewGrowthModel(rand.New(rand.NewSource(1)))
			for i := 0; i < 200; i++ {
				month := time.Month(i%12 + 1)
				weekday := time.Weekday(i % 7)
				growth := model.DailyUserGrowth(tt.state, month, weekday)

				assert.GreaterOrEqual(t, growth, 0.0)
				assert.LessOrEqual(t, growth, float64(tt.state.TotalUsers)*maxDailyUserGrowthRate+1e-9)
			}
		})
	}
}

func TestGrowthModel_DailyUserGrowthCap(t *testing.T) {
	// A tiny population caps growth at 5% regardless of how strong the
	// catalog attraction is.
	model := NewGrowthModel(rand.New(rand.NewSource(7)))
	state := StateSnapshot{TotalUsers: 100, TotalGames: 40_000}

	for i := 0; i < 500; i++ {
		growth := model.DailyUserGrowth(state, time.December, time.Saturday)
		assert.LessOrEqual(t, growth, 5.0)
	}
}

func TestGrowthModel_Deterministic(t *testing.T) {
	state := StateSnapshot{TotalUsers: 100_000, TotalDevelopers: 100, TotalGames: 500, ActiveUsers: 30_000}

	a := NewGrowthModel(rand.New(rand.NewSource(99)))
	b := NewGrowthModel(rand.New(rand.NewSource(99)))

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.DailyUserGrowth(state, time.May, time.Tuesday), b.DailyUserGrowth(state, time.May, time.Tuesday))
		assert.Equal(t, a.DailyDeveloperGrowth(state), b.DailyDeveloperGrowth(state))
		assert.Equal(t, a.DailyGameGrowth(state), b.DailyGameGrowth(state))
	}
}

func TestGrowthModel_DailyDeveloperGrowth(t *testing.T) {
	model := NewGrowthModel(rand.New(rand.NewSource(3)))

	t.Run("never negative", func(t *testing.T) {
		states := []StateSnapshot{
			{},
			{TotalUsers: 5_000, TotalDevelopers: 3},
			{TotalUsers: 2_000_000, TotalDevelopers: 800},
			{TotalUsers: 10_000_000, TotalDevelopers: 50_000},
		}
		for _, state := range states {
			for i := 0; i < 200; i++ {
				assert.GreaterOrEqual(t, model.DailyDeveloperGrowth(state), 0.0)
			}
		}
	})

	t.Run("crowding slows arrivals", func(t *testing.T) {
		uncrowded := StateSnapshot{TotalUsers: 1_000_000, TotalDevelopers: 100}
		crowded := StateSnapshot{TotalUsers: 1_000_000, TotalDevelopers: 100_000}

		sumUncrowded, sumCrowded := 0.0, 0.0
		for i := 0; i < 2000; i++ {
			sumUncrowded += model.DailyDeveloperGrowth(uncrowded)
			sumCrowded += model.DailyDeveloperGrowth(crowded)
		}
		assert.Greater(t, sumUncrowded, sumCrowded)
	})
}

func TestGrowthModel_DailyGameGrowth(t *testing.T) {
	t.Run("no developers means no games", func(t *testing.T) {
		model := NewGrowthModel(rand.New(rand.NewSource(5)))
		state := StateSnapshot{TotalUsers: 1_000_000, ActiveUsers: 300_000}
		for i := 0; i < 100; i++ {
			assert.Equal(t, 0.0, model.DailyGameGrowth(state))
		}
	})

	t.Run("capped by developer base", func(t *testing.T) {
		model := NewGrowthModel(rand.New(rand.NewSource(5)))
		state := StateSnapshot{TotalUsers: 10_000_000, TotalDevelopers: 350, TotalGames: 100, ActiveUsers: 4_000_000}
		maxGrowth := float64(state.TotalDevelopers) / gamesPerDeveloperDiv

		for i := 0; i < 500; i++ {
			growth := model.DailyGameGrowth(state)
			assert.GreaterOrEqual(t, growth, 0.0)
			assert.LessOrEqual(t, growth, maxGrowth)
		}
	})

	t.Run("falls back to total users before first activity pass", func(t *testing.T) {
		model := NewGrowthModel(rand.New(rand.NewSource(5)))
		state := StateSnapshot{TotalUsers: 100_000, TotalDevelopers: 10_000}

		positive := false
		for i := 0; i < 200; i++ {
			if model.DailyGameGrowth(state) > 0 {
				positive = true
				break
			}
		}
		assert.True(t, positive, "expected game growth from total users when no activity sampled yet")
	})
}

func TestUniquenessFor(t *testing.T) {
	tests := []struct {
		totalGames int
		want       float64
	}{
		{0, 1.0},
		{999, 1.0},
		{1_000, 0.8},
		{9_999, 0.8},
		{10_000, 0.55},
		{49_999, 0.55},
		{50_000, 0.3},
		{1_000_000, 0.3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, uniquenessFor(tt.totalGames), "totalGames=%d", tt.totalGames)
	}
}
