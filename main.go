package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ByterGame/data-analytics-FEFU/platform"
	"github.com/ByterGame/data-analytics-FEFU/platform/database"
	"github.com/ByterGame/data-analytics-FEFU/platform/database/repositories"
	"github.com/ByterGame/data-analytics-FEFU/platform/generator"
	"github.com/ByterGame/data-analytics-FEFU/platform/logger"
	"github.com/ByterGame/data-analytics-FEFU/platform/simulation"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	path := flag.String("config", "config.toml", "path to config")
	resetTables := flag.Bool("reset-tables", false, "truncate all simulation tables before starting")
	flag.Parse()

	cfg, err := platform.LoadConfig(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(-1)
	}

	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))

	slog.Info("Starting game platform simulator",
		slog.String("version", version),
		slog.String("commit", commit))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	if *resetTables {
		if err := db.ResetAppTables(ctx); err != nil {
			slog.Error("Failed to reset tables", slog.Any("error", err))
			os.Exit(-1)
		}
	}

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully")

	userRepo := repositories.NewUserRepository(db.BunDB())
	devRepo := repositories.NewDeveloperRepository(db.BunDB())
	gameRepo := repositories.NewGameRepository(db.BunDB())
	txRepo := repositories.NewTransactionRepository(db.BunDB())
	libraryRepo := repositories.NewLibraryRepository(db.BunDB())

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	slog.Info("Random source initialized", slog.Int64("seed", seed))

	factory := generator.New(rand.New(rand.NewSource(rng.Int63())))
	if err := hydrateFactoryIDs(ctx, factory, userRepo, devRepo, gameRepo); err != nil {
		slog.Error("Failed to load entity id watermarks", slog.Any("error", err))
		os.Exit(-1)
	}

	simStart, err := parseStartDate(cfg.Simulation.StartDate)
	if err != nil {
		slog.Error("Invalid simulation start date", slog.Any("error", err))
		os.Exit(-1)
	}

	clock := simulation.NewClock(simStart, cfg.Simulation.RealSecondsPerDay)
	slog.Info("Simulated clock started",
		slog.String("sim_start", simStart.Format("2006-01-02")),
		slog.Float64("real_seconds_per_day", cfg.Simulation.RealSecondsPerDay))

	scheduler := simulation.NewScheduler(
		simulation.Deps{
			Clock:        clock,
			Factory:      factory,
			Users:        userRepo,
			Developers:   devRepo,
			Games:        gameRepo,
			Transactions: txRepo,
			Library:      libraryRepo,
		},
		simulation.Config{
			TickInterval:          time.Duration(cfg.Simulation.TickIntervalSeconds) * time.Second,
			RetentionDays:         cfg.Simulation.RetentionDays,
			UserEmissionThreshold: cfg.Simulation.UserEmissionThreshold,
			BaseActivityMin:       cfg.Simulation.BaseActivityMin,
			BaseActivityMax:       cfg.Simulation.BaseActivityMax,
			InitialUsers:          cfg.Simulation.InitialUsers,
			InitialDevelopers:     cfg.Simulation.InitialDevelopers,
		},
		rng,
	)

	if err := scheduler.SeedIfEmpty(ctx); err != nil {
		slog.Error("Failed to seed initial data", slog.Any("error", err))
		os.Exit(-1)
	}

	if err := scheduler.Start(ctx); err != nil {
		slog.Error("Scheduler stopped with error", slog.Any("error", err))
		os.Exit(-1)
	}

	stats := scheduler.Statistics()
	slog.Info("Simulation finished",
		slog.Int("simulated_day", stats.SimulatedDay),
		slog.Int("users", stats.TotalUsers),
		slog.Int("developers", stats.TotalDevelopers),
		slog.Int("games", stats.TotalGames))
}

// hydrateFactoryIDs points the generator's id sequences past anything
// already persisted, so restarts never collide with earlier runs.
func hydrateFactoryIDs(
	ctx context.Context,
	factory *generator.Generator,
	users repositories.UserRepository,
	devs repositories.DeveloperRepository,
	games repositories.GameRepository,
) error {
	maxUser, err := users.MaxID(ctx)
	if err != nil {
		return fmt.Errorf("max user id: %w", err)
	}
	maxDev, err := devs.MaxID(ctx)
	if err != nil {
		return fmt.Errorf("max developer id: %w", err)
	}
	maxGame, err := games.MaxID(ctx)
	if err != nil {
		return fmt.Errorf("max game id: %w", err)
	}

	factory.SeedIDs(maxUser+1, maxDev+1, maxGame+1)
	return nil
}

func parseStartDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", raw)
}
