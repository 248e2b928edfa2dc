package simulation

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/ByterGame/data-analytics-FEFU/platform/database/models"
	"github.com/ByterGame/data-analytics-FEFU/platform/database/repositories"
)

const (
	// purchaseShare is the fraction of active users that buy something
	// on a given simulated day.
	purchaseShare = 0.03

	platformCommissionRate = 0.30
)

// Commerce simulates daily game purchases by active users: a
// transaction row, a library entry, and spend/revenue/purchase-count
// updates per sale. Individual failures are logged and skipped; the
// tick reports sold out of attempted.
type Commerce struct {
	rng          *rand.Rand
	users        repositories.UserRepository
	developers   repositories.DeveloperRepository
	games        repositories.GameRepository
	transactions repositories.TransactionRepository
	library      repositories.LibraryRepository
}

func NewCommerce(
	rng *rand.Rand,
	users repositories.UserRepository,
	developers repositories.DeveloperRepository,
	games repositories.GameRepository,
	transactions repositories.TransactionRepository,
	library repositories.LibraryRepository,
) *Commerce {
	return &Commerce{
		rng:          rng,
		users:        users,
		developers:   developers,
		games:        games,
		transactions: transactions,
		library:      library,
	}
}

// SimulatePurchases lets ~3% of today's active users buy one random
// still-purchasable game each. A game stops being purchasable once its
// copies sold reach the user population, and nobody buys a game they
// already own.
func (c *Commerce) SimulatePurchases(ctx context.Context, activeIDs []int64, totalUsers int, now time.Time) (sold, attempted int) {
	if len(activeIDs) == 0 || totalUsers == 0 {
		return 0, 0
	}

	attempted = int(float64(len(activeIDs)) * purchaseShare)
	for i := 0; i < attempted; i++ {
		buyerID := activeIDs[c.rng.Intn(len(activeIDs))]

		game, err := c.games.RandomPurchasable(ctx, totalUsers)
		if err != nil {
			slog.Error("Failed to pick purchasable game",
				slog.String("type", "sim"),
				slog.Any("error", err))
			continue
		}
		if game == nil {
			break
		}

		owns, err := c.library.UserOwnsGame(ctx, buyerID, game.ID)
		if err != nil {
			slog.Error("Failed to check game ownership",
				slog.String("type", "sim"),
				slog.Int64("user_id", buyerID),
				slog.Int64("game_id", game.ID),
				slog.Any("error", err))
			continue
		}
		if owns {
			continue
		}

		if err := c.recordPurchase(ctx, buyerID, game, now); err != nil {
			slog.Error("Failed to record purchase",
				slog.String("type", "sim"),
				slog.Int64("user_id", buyerID),
				slog.Int64("game_id", game.ID),
				slog.Any("error", err))
			continue
		}
		sold++
	}
	return sold, attempted
}

func (c *Commerce) recordPurchase(ctx context.Context, buyerID int64, game *models.Game, now time.Time) error {
	amount := game.CurrentPrice
	developerRevenue := amount * (1 - platformCommissionRate)

	if err := c.transactions.Create(ctx, &models.Transaction{
		UserID:             buyerID,
		GameID:             game.ID,
		TransactionDate:    now,
		Amount:             amount,
		DeveloperRevenue:   developerRevenue,
		PlatformCommission: amount * platformCommissionRate,
	}); err != nil {
		return err
	}

	if err := c.library.Add(ctx, &models.LibraryEntry{
		UserID:       buyerID,
		GameID:       game.ID,
		PurchaseDate: now,
	}); err != nil {
		return err
	}

	if err := c.users.AddSpent(ctx, buyerID, amount, now); err != nil {
		return err
	}
	if err := c.games.IncrementPurchases(ctx, game.ID, 1); err != nil {
		return err
	}
	return c.developers.AddRevenue(ctx, game.DeveloperID, developerRevenue)
}
