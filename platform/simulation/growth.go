package simulation

import (
	"math"
	"math/rand"
	"time"
)

// Growth model constants, calibrated against published marketplace
// statistics. Tuning parameters, not contracts — except the 5% daily
// user growth cap, which is a hard invariant.
const (
	marketPotential = 300_000_000
	innovationCoeff = 0.0000005
	imitationCoeff  = 0.002

	gamesSaturationPoint = 50_000
	minGamesAttraction   = 550

	networkEffectCap       = 2.5
	maxDailyUserGrowthRate = 0.05

	devAudienceThreshold    = 10_000
	devCompetitionThreshold = 5_000
	devBaseProbability      = 0.2

	maxDemandFactor      = 10.0
	gamesPerDeveloperDiv = 175.0
)

// GrowthModel derives continuous daily growth deltas for each entity
// kind from the current market state and calendar context. All three
// functions are deterministic given the injected random source and
// never mutate state.
type GrowthModel struct {
	rng *rand.Rand
}

func NewGrowthModel(rng *rand.Rand) *GrowthModel {
	return &GrowthModel{rng: rng}
}

// DailyUserGrowth combines Bass diffusion, catalog attraction, a
// network-effect multiplier and seasonal/weekday factors into the
// expected number of new users per simulated day. Capped at 5% of the
// current user base.
func (m *GrowthModel) DailyUserGrowth(state StateSnapshot, month time.Month, weekday time.Weekday) float64 {
	users := float64(state.TotalUsers)
	games := float64(state.TotalGames)

	// Bass diffusion: innovation plus imitation, bounded by the
	// remaining market potential
	innovation := innovationCoeff * (marketPotential - users)
	imitation := imitationCoeff * (users / marketPotential) * (marketPotential - users)
	bassGrowth := innovation + imitation

	// A growing catalog attracts users, with diminishing returns past
	// the saturation point
	var gamesAttraction float64
	if games < gamesSaturationPoint {
		gamesFactor := 0.1 * (1 - games/gamesSaturationPoint)
		gamesAttraction = math.Max(games*gamesFactor, minGamesAttraction)
	} else {
		gamesAttraction = games * 0.01
	}

	// Metcalfe-style network effect, log-damped and capped
	networkEffect := 1.0
	if users > 1000 {
		networkValue := math.Max(1, math.Pow(users, 1.1)/1e5)
		networkEffect = math.Min(networkEffectCap, 1+math.Log10(networkValue)*0.3)
	}

	inflow := (bassGrowth + gamesAttraction) * networkEffect *
		SeasonalMultiplier(month) * WeekdayMultiplier(weekday)

	jitter := 0.6 + m.rng.Float64()*0.8

	growth := math.Min(inflow*jitter, users*maxDailyUserGrowthRate)
	return math.Max(growth, 0)
}

// DailyDeveloperGrowth models developer arrival as a noisy
// near-Bernoulli process: a bigger audience draws studios in, a crowded
// field keeps them out.
func (m *GrowthModel) DailyDeveloperGrowth(state StateSnapshot) float64 {
	users := float64(state.TotalUsers)
	devs := float64(state.TotalDevelopers)

	audienceFactor := 1.0
	if users > devAudienceThreshold {
		audienceFactor = math.Log10(math.Max(1, users/devAudienceThreshold))*1.5 + 1
	}

	competitionFactor := 1.0
	if devs > devCompetitionThreshold {
		competitionFactor = devCompetitionThreshold / devs
	}

	probability := devBaseProbability * audienceFactor * competitionFactor
	if probability <= 0 {
		return 0
	}

	return math.Max(0, m.rng.NormFloat64()*math.Sqrt(probability)+probability)
}

// DailyGameGrowth derives new-game arrivals from player demand,
// catalog crowding and a trend jitter, capped so per-day game creation
// stays proportional to the developer base.
func (m *GrowthModel) DailyGameGrowth(state StateSnapshot) float64 {
	// Demand follows the active audience; fall back to the full user
	// base before the first activity pass. Floor of 1 guards the
	// power-law against an empty market.
	demandBase := float64(state.ActiveUsers)
	if demandBase <= 0 {
		demandBase = float64(state.TotalUsers)
	}
	demandFactor := math.Min(math.Pow(math.Max(demandBase, 1), 0.1), maxDemandFactor)

	uniquenessFactor := uniquenessFor(state.TotalGames)

	trendFactor := 0.5 + m.rng.Float64()

	expected := float64(state.TotalDevelopers) * demandFactor * uniquenessFactor * trendFactor
	if expected <= 0 {
		return 0
	}

	growth := math.Max(0, m.rng.NormFloat64()*math.Sqrt(expected)+expected)
	return math.Min(growth, float64(state.TotalDevelopers)/gamesPerDeveloperDiv)
}

// uniquenessFor steps down as the catalog grows: the more games exist,
// the harder it is to ship one that stands out.
func uniquenessFor(totalGames int) float64 {
	switch {
	case totalGames < 1_000:
		return 1.0
	case totalGames < 10_000:
		return 0.8
	case totalGames < 50_000:
		return 0.55
	default:
		return 0.3
	}
}
