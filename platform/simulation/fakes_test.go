package simulation

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ByterGame/data-analytics-FEFU/platform/database/models"
)

// In-memory repository fakes. Deterministic where the real thing is
// random: "random" picks are the lowest id, so tests can assert exact
// outcomes.

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[int64]*models.User
	countErr  error
	insertErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) InsertBatch(_ context.Context, users []*models.User) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return 0, r.insertErr
	}
	for _, user := range users {
		r.users[user.ID] = user
	}
	return len(users), nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	return len(r.users), nil
}

func (r *fakeUserRepo) AllIDs(_ context.Context) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *fakeUserRepo) MaxID(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for id := range r.users {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (r *fakeUserRepo) UpdateLastActive(_ context.Context, userID int64, lastActive time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.LastActive = lastActive
	}
	return nil
}

func (r *fakeUserRepo) AddSpent(_ context.Context, userID int64, amount float64, lastActive time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.TotalSpent += amount
		user.LastActive = lastActive
	}
	return nil
}

func (r *fakeUserRepo) DeleteInactiveBefore(_ context.Context, border time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, user := range r.users {
		if user.LastActive.Before(border) {
			delete(r.users, id)
			removed++
		}
	}
	return removed, nil
}

type fakeDeveloperRepo struct {
	mu   sync.Mutex
	devs map[int64]*models.Developer
}

func newFakeDeveloperRepo() *fakeDeveloperRepo {
	return &fakeDeveloperRepo{devs: make(map[int64]*models.Developer)}
}

func (r *fakeDeveloperRepo) InsertBatch(_ context.Context, developers []*models.Developer) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, dev := range developers {
		r.devs[dev.ID] = dev
	}
	return len(developers), nil
}

func (r *fakeDeveloperRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.devs), nil
}

func (r *fakeDeveloperRepo) MaxID(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for id := range r.devs {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (r *fakeDeveloperRepo) RandomID(_ context.Context) (int64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.devs) == 0 {
		return 0, false, nil
	}
	lowest := int64(0)
	for id := range r.devs {
		if lowest == 0 || id < lowest {
			lowest = id
		}
	}
	return lowest, true, nil
}

func (r *fakeDeveloperRepo) AddRevenue(_ context.Context, developerID int64, revenue float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if dev, ok := r.devs[developerID]; ok {
		dev.TotalRevenue += revenue
	}
	return nil
}

type fakeGameRepo struct {
	mu    sync.Mutex
	games map[int64]*models.Game
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: make(map[int64]*models.Game)}
}

func (r *fakeGameRepo) InsertBatch(_ context.Context, games []*models.Game) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, game := range games {
		r.games[game.ID] = game
	}
	return len(games), nil
}

func (r *fakeGameRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.games), nil
}

func (r *fakeGameRepo) MaxID(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for id := range r.games {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (r *fakeGameRepo) RandomPurchasable(_ context.Context, borderPurchases int) (*models.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int64, 0, len(r.games))
	for id := range r.games {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		game := r.games[id]
		if game.IsActive && game.TotalPurchases < borderPurchases {
			return game, nil
		}
	}
	return nil, nil
}

func (r *fakeGameRepo) IncrementPurchases(_ context.Context, gameID int64, purchases int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if game, ok := r.games[gameID]; ok {
		game.TotalPurchases += purchases
	}
	return nil
}

type fakeTransactionRepo struct {
	mu  sync.Mutex
	txs []*models.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{}
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs = append(r.txs, transaction)
	return nil
}

func (r *fakeTransactionRepo) TotalPlatformRevenue(_ context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0.0
	for _, tx := range r.txs {
		total += tx.PlatformCommission
	}
	return total, nil
}

type fakeLibraryRepo struct {
	mu      sync.Mutex
	entries map[[2]int64]bool
}

func newFakeLibraryRepo() *fakeLibraryRepo {
	return &fakeLibraryRepo{entries: make(map[[2]int64]bool)}
}

func (r *fakeLibraryRepo) Add(_ context.Context, entry *models.LibraryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[[2]int64{entry.UserID, entry.GameID}] = true
	return nil
}

func (r *fakeLibraryRepo) UserOwnsGame(_ context.Context, userID, gameID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[[2]int64{userID, gameID}], nil
}

// fakeFactory hands out bare entities with sequential ids.
type fakeFactory struct {
	mu       sync.Mutex
	nextUser int64
	nextDev  int64
	nextGame int64
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{nextUser: 1, nextDev: 1, nextGame: 1}
}

func (f *fakeFactory) CreateUsers(count int, date time.Time) []*models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		users = append(users, &models.User{
			ID:               f.nextUser,
			RegistrationDate: date,
			LastActive:       date,
		})
		f.nextUser++
	}
	return users
}

func (f *fakeFactory) CreateDevelopers(count int, date time.Time) []*models.Developer {
	f.mu.Lock()
	defer f.mu.Unlock()
	devs := make([]*models.Developer, 0, count)
	for i := 0; i < count; i++ {
		devs = append(devs, &models.Developer{
			ID:             f.nextDev,
			FoundationYear: date.Year(),
		})
		f.nextDev++
	}
	return devs
}

func (f *fakeFactory) CreateGame(date time.Time, developerID int64) *models.Game {
	f.mu.Lock()
	defer f.mu.Unlock()
	game := &models.Game{
		ID:           f.nextGame,
		DeveloperID:  developerID,
		ReleaseDate:  date,
		BasePrice:    20,
		CurrentPrice: 20,
		IsActive:     true,
	}
	f.nextGame++
	return game
}
