package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/ByterGame/data-analytics-FEFU/platform/database/models"
	"github.com/ByterGame/data-analytics-FEFU/platform/database/repositories"
	"golang.org/x/sync/errgroup"
)

const (
	pruneCadence = 30 // ticks between retention sweeps
	statsCadence = 5  // ticks between statistics reports

	developerEmissionThreshold = 1
	gameEmissionThreshold      = 1

	peakConcurrencyFactor = 1.2
)

// EntityFactory synthesizes entity content on the scheduler's demand.
// The scheduler decides counts and timing; the factory owns what the
// records look like.
type EntityFactory interface {
	CreateUsers(count int, date time.Time) []*models.User
	CreateDevelopers(count int, date time.Time) []*models.Developer
	CreateGame(date time.Time, developerID int64) *models.Game
}

// Config carries the simulation tuning knobs loaded from the config
// file.
type Config struct {
	TickInterval          time.Duration
	RetentionDays         int
	UserEmissionThreshold int
	BaseActivityMin       float64
	BaseActivityMax       float64
	InitialUsers          int
	InitialDevelopers     int
}

// Deps are the external collaborators the scheduler drives.
type Deps struct {
	Clock        *Clock
	Factory      EntityFactory
	Users        repositories.UserRepository
	Developers   repositories.DeveloperRepository
	Games        repositories.GameRepository
	Transactions repositories.TransactionRepository
	Library      repositories.LibraryRepository
}

// TaskResult is the outcome of one periodic task within a tick. Tasks
// are isolated failure domains: an error here never aborts the tick or
// other tasks.
type TaskResult struct {
	Name      string
	Count     int
	Attempted int
	Err       error
}

// TickReport aggregates the results of every task that ran in a tick.
type TickReport struct {
	Day     int
	Tick    int64
	Results []TaskResult
}

// Failed returns how many tasks in the tick ended with an error.
func (r TickReport) Failed() int {
	failed := 0
	for _, res := range r.Results {
		if res.Err != nil {
			failed++
		}
	}
	return failed
}

// Statistics is the observational snapshot exposed to the host process.
type Statistics struct {
	SimulatedDay    int
	TotalUsers      int
	TotalDevelopers int
	TotalGames      int
	ActiveUsers     int
	PeakConcurrent  int
}

// Scheduler drives the simulation: it owns the market state and the
// three growth accumulators, and runs the periodic tasks on their
// cadences against them. All mutation happens from the tick loop
// (single-writer); within a tick, growth recomputation always completes
// before the emission tasks drain the accumulators.
type Scheduler struct {
	clock    *Clock
	factory  EntityFactory
	users    repositories.UserRepository
	devs     repositories.DeveloperRepository
	games    repositories.GameRepository
	txs      repositories.TransactionRepository
	state    *MarketState
	growth   *GrowthModel
	sampler  *ActivitySampler
	pruner   *RetentionPruner
	commerce *Commerce

	userAcc *GrowthAccumulator
	devAcc  *GrowthAccumulator
	gameAcc *GrowthAccumulator

	cfg Config
	rng *rand.Rand

	tickCount int64

	// ids sampled by the latest activity pass, consumed by the
	// purchase task after the concurrent phase joins
	lastActiveIDs []int64
}

func NewScheduler(deps Deps, cfg Config, rng *rand.Rand) *Scheduler {
	if cfg.UserEmissionThreshold < 1 {
		cfg.UserEmissionThreshold = 5
	}

	// Independent streams per randomized component, all derived from
	// the one master seed so runs stay reproducible.
	growthRNG := rand.New(rand.NewSource(rng.Int63()))
	samplerRNG := rand.New(rand.NewSource(rng.Int63()))
	commerceRNG := rand.New(rand.NewSource(rng.Int63()))

	return &Scheduler{
		clock:   deps.Clock,
		factory: deps.Factory,
		users:   deps.Users,
		devs:    deps.Developers,
		games:   deps.Games,
		txs:     deps.Transactions,
		state:   NewMarketState(),
		growth:  NewGrowthModel(growthRNG),
		sampler: NewActivitySampler(samplerRNG, cfg.BaseActivityMin, cfg.BaseActivityMax),
		pruner:  NewRetentionPruner(deps.Users, cfg.RetentionDays),
		commerce: NewCommerce(
			commerceRNG, deps.Users, deps.Developers, deps.Games,
			deps.Transactions, deps.Library,
		),
		userAcc: NewGrowthAccumulator(cfg.UserEmissionThreshold),
		devAcc:  NewGrowthAccumulator(developerEmissionThreshold),
		gameAcc: NewGrowthAccumulator(gameEmissionThreshold),
		cfg:     cfg,
		rng:     rng,
	}
}

// Start runs the tick loop until the context is cancelled. An in-flight
// tick always finishes; shutdown never interrupts a task mid-write.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.cfg.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", s.cfg.TickInterval)
	}

	slog.Info("Simulation scheduler started",
		slog.String("type", "sim"),
		slog.Duration("tick_interval", s.cfg.TickInterval),
		slog.Int("simulated_day", s.clock.SimulatedDay()))

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	s.Tick(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Simulation scheduler stopping",
				slog.String("type", "sim"),
				slog.Int("simulated_day", s.clock.SimulatedDay()))
			return nil
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one full scheduler cycle. Exposed so hosts and tests can
// drive simulated time without a real timer.
func (s *Scheduler) Tick(ctx context.Context) TickReport {
	s.tickCount++
	day := s.clock.SimulatedDay()

	results := make([]TaskResult, 0, 8)

	// Growth must land in the accumulators before anything drains them.
	results = append(results, s.recomputeGrowth(ctx))

	// Emission and activity are independent of each other and only
	// block on I/O; each drains (or reads) its own accumulator.
	var userRes, devRes, gameRes, activityRes TaskResult
	var group errgroup.Group
	group.Go(func() error { userRes = s.emitUserBatch(ctx); return nil })
	group.Go(func() error { devRes = s.emitDeveloperBatch(ctx); return nil })
	group.Go(func() error { gameRes = s.emitGameBatch(ctx); return nil })
	group.Go(func() error { activityRes = s.updateActivity(ctx); return nil })
	_ = group.Wait()
	results = append(results, userRes, devRes, gameRes, activityRes)

	results = append(results, s.simulatePurchases(ctx))

	if s.tickCount%pruneCadence == 0 {
		results = append(results, s.pruneInactive(ctx))
	}
	if s.tickCount%statsCadence == 0 {
		s.reportStatistics(ctx)
	}

	report := TickReport{Day: day, Tick: s.tickCount, Results: results}
	s.logReport(report)
	return report
}

// Statistics returns the current observational snapshot.
func (s *Scheduler) Statistics() Statistics {
	snap := s.state.Snapshot()
	return Statistics{
		SimulatedDay:    s.clock.SimulatedDay(),
		TotalUsers:      snap.TotalUsers,
		TotalDevelopers: snap.TotalDevelopers,
		TotalGames:      snap.TotalGames,
		ActiveUsers:     snap.ActiveUsers,
		PeakConcurrent:  int(float64(snap.ActiveUsers) * peakConcurrencyFactor),
	}
}

// SeedIfEmpty populates an empty store with the starting population.
// Runs only when users, developers and games are all absent.
func (s *Scheduler) SeedIfEmpty(ctx context.Context) error {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	devCount, err := s.devs.Count(ctx)
	if err != nil {
		return fmt.Errorf("count developers: %w", err)
	}
	gameCount, err := s.games.Count(ctx)
	if err != nil {
		return fmt.Errorf("count games: %w", err)
	}

	if userCount > 0 || devCount > 0 || gameCount > 0 {
		slog.Info("Existing data found, skipping initial seed",
			slog.String("type", "sim"),
			slog.Int("users", userCount),
			slog.Int("developers", devCount),
			slog.Int("games", gameCount))
		return nil
	}

	date := s.clock.SimulatedDateTime()

	insertedUsers, err := s.users.InsertBatch(ctx, s.factory.CreateUsers(s.cfg.InitialUsers, date))
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	developers := s.factory.CreateDevelopers(s.cfg.InitialDevelopers, date)
	insertedDevs, err := s.devs.InsertBatch(ctx, developers)
	if err != nil {
		return fmt.Errorf("seed developers: %w", err)
	}

	// Every founding studio ships a small back catalog.
	insertedGames := 0
	for _, dev := range developers {
		count := s.rng.Intn(3) + 1
		games := make([]*models.Game, 0, count)
		for i := 0; i < count; i++ {
			games = append(games, s.factory.CreateGame(date, dev.ID))
		}
		inserted, err := s.games.InsertBatch(ctx, games)
		if err != nil {
			return fmt.Errorf("seed games: %w", err)
		}
		insertedGames += inserted
	}

	slog.Info("Initial data seeded",
		slog.String("type", "sim"),
		slog.Int("users", insertedUsers),
		slog.Int("developers", insertedDevs),
		slog.Int("games", insertedGames))
	return nil
}

// recomputeGrowth refreshes the market state from store counts, derives
// today's activity estimate, and feeds the continuous growth deltas
// into the accumulators.
func (s *Scheduler) recomputeGrowth(ctx context.Context) TaskResult {
	result := TaskResult{Name: "recompute_growth"}

	userCount, err := s.users.Count(ctx)
	if err != nil {
		result.Err = fmt.Errorf("count users: %w", err)
		return result
	}
	devCount, err := s.devs.Count(ctx)
	if err != nil {
		result.Err = fmt.Errorf("count developers: %w", err)
		return result
	}
	gameCount, err := s.games.Count(ctx)
	if err != nil {
		result.Err = fmt.Errorf("count games: %w", err)
		return result
	}

	s.state.SetTotals(userCount, devCount, gameCount)

	date := s.clock.SimulatedDate()
	month, weekday := date.Month(), date.Weekday()

	rate := s.sampler.Rate(month, weekday)
	s.state.SetActiveUsers(s.sampler.ActiveCount(rate, userCount))

	snap := s.state.Snapshot()
	s.userAcc.Add(s.growth.DailyUserGrowth(snap, month, weekday))
	s.devAcc.Add(s.growth.DailyDeveloperGrowth(snap))
	s.gameAcc.Add(s.growth.DailyGameGrowth(snap))

	return result
}

func (s *Scheduler) emitUserBatch(ctx context.Context) TaskResult {
	result := TaskResult{Name: "emit_users"}

	batch := s.userAcc.Drain()
	if batch == 0 {
		return result
	}
	result.Attempted = batch

	users := s.factory.CreateUsers(batch, s.clock.SimulatedDateTime())
	inserted, err := s.users.InsertBatch(ctx, users)
	result.Count = inserted
	result.Err = err

	s.state.AddUsers(inserted)
	if inserted > 0 {
		slog.Info("New users joined",
			slog.String("type", "sim"),
			slog.Int("simulated_day", s.clock.SimulatedDay()),
			slog.Int("count", inserted))
	}
	return result
}

func (s *Scheduler) emitDeveloperBatch(ctx context.Context) TaskResult {
	result := TaskResult{Name: "emit_developers"}

	batch := s.devAcc.Drain()
	if batch == 0 {
		return result
	}
	result.Attempted = batch

	developers := s.factory.CreateDevelopers(batch, s.clock.SimulatedDateTime())
	inserted, err := s.devs.InsertBatch(ctx, developers)
	result.Count = inserted
	result.Err = err

	s.state.AddDevelopers(inserted)
	if inserted > 0 {
		slog.Info("New developers arrived",
			slog.String("type", "sim"),
			slog.Int("simulated_day", s.clock.SimulatedDay()),
			slog.Int("count", inserted))
	}
	return result
}

// emitGameBatch publishes accumulated games, each assigned to a random
// existing developer. With no developers the batch is forced to zero
// and the carry stays put for a later tick.
func (s *Scheduler) emitGameBatch(ctx context.Context) TaskResult {
	result := TaskResult{Name: "emit_games"}

	if s.state.Snapshot().TotalDevelopers == 0 {
		return result
	}

	batch := s.gameAcc.Drain()
	if batch == 0 {
		return result
	}
	result.Attempted = batch

	date := s.clock.SimulatedDateTime()
	games := make([]*models.Game, 0, batch)
	for i := 0; i < batch; i++ {
		devID, ok, err := s.devs.RandomID(ctx)
		if err != nil {
			result.Err = fmt.Errorf("pick developer: %w", err)
			break
		}
		if !ok {
			break
		}
		games = append(games, s.factory.CreateGame(date, devID))
	}

	inserted, err := s.games.InsertBatch(ctx, games)
	result.Count = inserted
	if result.Err == nil {
		result.Err = err
	}

	s.state.AddGames(inserted)
	if inserted > 0 {
		slog.Info("New games released",
			slog.String("type", "sim"),
			slog.Int("simulated_day", s.clock.SimulatedDay()),
			slog.Int("count", inserted))
	}
	return result
}

// updateActivity samples today's active users and touches their
// last-active timestamps. Per-id failures are logged and counted, not
// propagated.
func (s *Scheduler) updateActivity(ctx context.Context) TaskResult {
	result := TaskResult{Name: "update_activity"}

	ids, err := s.users.AllIDs(ctx)
	if err != nil {
		result.Err = fmt.Errorf("load user ids: %w", err)
		return result
	}
	if len(ids) == 0 {
		return result
	}

	sample := s.sampler.SampleIDs(ids, s.state.Snapshot().ActiveUsers)
	now := s.clock.SimulatedDateTime()

	success := 0
	for _, id := range sample {
		if err := s.users.UpdateLastActive(ctx, id, now); err != nil {
			slog.Error("Failed to update user activity",
				slog.String("type", "db"),
				slog.Int64("user_id", id),
				slog.Any("error", err))
			continue
		}
		success++
	}

	s.lastActiveIDs = sample
	result.Count = success
	result.Attempted = len(sample)
	return result
}

func (s *Scheduler) simulatePurchases(ctx context.Context) TaskResult {
	result := TaskResult{Name: "purchases"}

	snap := s.state.Snapshot()
	sold, attempted := s.commerce.SimulatePurchases(ctx, s.lastActiveIDs, snap.TotalUsers, s.clock.SimulatedDateTime())
	result.Count = sold
	result.Attempted = attempted
	return result
}

func (s *Scheduler) pruneInactive(ctx context.Context) TaskResult {
	result := TaskResult{Name: "prune_inactive"}

	removed, err := s.pruner.Prune(ctx, s.clock.SimulatedDateTime())
	result.Count = removed
	result.Err = err

	if removed > 0 {
		slog.Info("Inactive users removed",
			slog.String("type", "sim"),
			slog.Int("simulated_day", s.clock.SimulatedDay()),
			slog.Int("count", removed))
	}
	return result
}

func (s *Scheduler) reportStatistics(ctx context.Context) {
	stats := s.Statistics()

	revenue, err := s.txs.TotalPlatformRevenue(ctx)
	if err != nil {
		slog.Error("Failed to read platform revenue",
			slog.String("type", "db"),
			slog.Any("error", err))
	}

	slog.Info("Simulation statistics",
		slog.String("type", "sim"),
		slog.Int("simulated_day", stats.SimulatedDay),
		slog.Int("users", stats.TotalUsers),
		slog.Int("active_users", stats.ActiveUsers),
		slog.Int("developers", stats.TotalDevelopers),
		slog.Int("games", stats.TotalGames),
		slog.Int("peak_concurrent", stats.PeakConcurrent),
		slog.Float64("platform_revenue", revenue))
}

// logReport is the single logging boundary for a tick: failed tasks are
// surfaced once, here.
func (s *Scheduler) logReport(report TickReport) {
	for _, res := range report.Results {
		if res.Err != nil {
			slog.Error("Simulation task failed",
				slog.String("type", "error"),
				slog.String("task", res.Name),
				slog.Int("simulated_day", report.Day),
				slog.Any("error", res.Err))
		}
	}

	slog.Debug("Tick completed",
		slog.String("type", "sim"),
		slog.Int("simulated_day", report.Day),
		slog.Int64("tick", report.Tick),
		slog.Int("tasks", len(report.Results)),
		slog.Int("failed", report.Failed()))
}
