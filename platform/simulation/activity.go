package simulation

import (
	"math/rand"
	"time"
)

const (
	minActivityRate = 0.25
	maxActivityRate = 0.8
)

// ActivitySampler derives how many users count as "active" on a given
// simulated day and which ones they are. The rate is recomputed fresh
// every activity tick and is never persisted.
type ActivitySampler struct {
	rng     *rand.Rand
	baseMin float64
	baseMax float64
}

func NewActivitySampler(rng *rand.Rand, baseMin, baseMax float64) *ActivitySampler {
	if baseMin <= 0 || baseMax < baseMin {
		baseMin, baseMax = 0.10, 0.25
	}
	return &ActivitySampler{rng: rng, baseMin: baseMin, baseMax: baseMax}
}

// Rate returns today's activity fraction: a random base scaled by
// seasonal and weekday factors plus a small jitter, clamped into
// [0.25, 0.8].
func (s *ActivitySampler) Rate(month time.Month, weekday time.Weekday) float64 {
	base := s.baseMin + s.rng.Float64()*(s.baseMax-s.baseMin)
	jitter := 0.9 + s.rng.Float64()*0.2

	rate := base * SeasonalMultiplier(month) * WeekdayMultiplier(weekday) * jitter

	if rate < minActivityRate {
		return minActivityRate
	}
	if rate > maxActivityRate {
		return maxActivityRate
	}
	return rate
}

// ActiveCount converts a rate into a whole number of active users,
// never exceeding the population.
func (s *ActivitySampler) ActiveCount(rate float64, totalUsers int) int {
	count := int(rate * float64(totalUsers))
	if count > totalUsers {
		count = totalUsers
	}
	if count < 0 {
		count = 0
	}
	return count
}

// SampleIDs draws count distinct user ids uniformly without
// replacement. When count covers the whole population the full id set
// is returned as-is.
func (s *ActivitySampler) SampleIDs(ids []int64, count int) []int64 {
	if count >= len(ids) {
		return ids
	}
	if count <= 0 {
		return nil
	}

	// Partial Fisher-Yates over a copy: only the first count positions
	// need shuffling.
	sampled := make([]int64, len(ids))
	copy(sampled, ids)
	for i := 0; i < count; i++ {
		j := i + s.rng.Intn(len(sampled)-i)
		sampled[i], sampled[j] = sampled[j], sampled[i]
	}
	return sampled[:count]
}
