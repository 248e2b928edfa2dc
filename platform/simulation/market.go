package simulation

import (
	"sync"
	"time"
)

// seasonalFactors scale growth and activity per calendar month. Autumn
// and the holiday season run hot, summer runs cold.
var seasonalFactors = map[time.Month]float64{
	time.January:   1.15,
	time.February:  0.95,
	time.March:     1.05,
	time.April:     1.00,
	time.May:       0.98,
	time.June:      0.90,
	time.July:      0.85,
	time.August:    0.92,
	time.September: 1.10,
	time.October:   1.20,
	time.November:  1.25,
	time.December:  1.30,
}

func SeasonalMultiplier(month time.Month) float64 {
	if factor, ok := seasonalFactors[month]; ok {
		return factor
	}
	return 1.0
}

func WeekdayMultiplier(weekday time.Weekday) float64 {
	switch weekday {
	case time.Saturday, time.Sunday:
		return 1.25
	case time.Monday:
		return 0.85
	default:
		return 1.0
	}
}

// MarketState is the shared view of the marketplace the periodic tasks
// work against. Totals are refreshed from store counts on every growth
// pass and advanced in place as batches are persisted. Only the
// scheduler's tick loop writes it; the snapshot reader may be called
// from anywhere.
type MarketState struct {
	mu              sync.RWMutex
	totalUsers      int
	totalDevelopers int
	totalGames      int
	activeUsers     int
}

// StateSnapshot is an immutable copy of MarketState for the pure growth
// functions and observational reporting.
type StateSnapshot struct {
	TotalUsers      int
	TotalDevelopers int
	TotalGames      int
	ActiveUsers     int
}

func NewMarketState() *MarketState {
	return &MarketState{}
}

func (s *MarketState) SetTotals(users, developers, games int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalUsers = users
	s.totalDevelopers = developers
	s.totalGames = games
	if s.activeUsers > s.totalUsers {
		s.activeUsers = s.totalUsers
	}
}

func (s *MarketState) SetActiveUsers(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if count > s.totalUsers {
		count = s.totalUsers
	}
	if count < 0 {
		count = 0
	}
	s.activeUsers = count
}

func (s *MarketState) AddUsers(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalUsers += count
}

func (s *MarketState) AddDevelopers(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalDevelopers += count
}

func (s *MarketState) AddGames(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalGames += count
}

func (s *MarketState) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StateSnapshot{
		TotalUsers:      s.totalUsers,
		TotalDevelopers: s.totalDevelopers,
		TotalGames:      s.totalGames,
		ActiveUsers:     s.activeUsers,
	}
}
