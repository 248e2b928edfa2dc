package generator

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/ByterGame/data-analytics-FEFU/platform/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	g := New(rand.New(rand.NewSource(1)))
	g.SeedIDs(1, 1, 1)
	return g
}

func TestGenerator_CreateUsers(t *testing.T) {
	g := newTestGenerator()
	date := time.Date(2026, time.February, 3, 11, 30, 0, 0, time.UTC)

	users := g.CreateUsers(500, date)
	require.Len(t, users, 500)

	usernames := make(map[string]bool, len(users))
	emails := make(map[string]bool, len(users))
	for i, user := range users {
		assert.Equal(t, int64(i+1), user.ID, "ids are sequential")
		assert.NotEmpty(t, user.Username)
		assert.False(t, usernames[user.Username], "duplicate username %q", user.Username)
		usernames[user.Username] = true

		assert.Contains(t, user.Email, "@")
		assert.False(t, emails[user.Email], "duplicate email %q", user.Email)
		emails[user.Email] = true

		assert.NotEmpty(t, user.CountryCode)
		assert.NotEmpty(t, user.Region)
		assert.Equal(t, date, user.RegistrationDate)
		assert.Equal(t, date, user.LastActive)
		assert.Zero(t, user.TotalSpent)
	}
}

func TestGenerator_CreateDevelopers(t *testing.T) {
	g := newTestGenerator()
	date := time.Date(2026, time.February, 3, 11, 30, 0, 0, time.UTC)

	developers := g.CreateDevelopers(200, date)
	require.Len(t, developers, 200)

	studios := make(map[string]bool, len(developers))
	for i, dev := range developers {
		assert.Equal(t, int64(i+1), dev.ID)
		assert.NotEmpty(t, dev.StudioName)
		assert.False(t, studios[dev.StudioName], "duplicate studio %q", dev.StudioName)
		studios[dev.StudioName] = true

		assert.Equal(t, date.Year(), dev.FoundationYear)
		assert.NotEmpty(t, dev.CountryCode)
		assert.True(t, strings.HasSuffix(dev.ContactEmail, "@gmail.com"))
		assert.Zero(t, dev.TotalRevenue)
	}
}

func TestGenerator_CreateGame(t *testing.T) {
	g := newTestGenerator()
	date := time.Date(2026, time.February, 3, 11, 30, 0, 0, time.UTC)

	titles := make(map[string]bool)
	for i := 0; i < 300; i++ {
		// fresh developer id per game so release cadence does not kick in
		game := g.CreateGame(date, int64(i+1))

		assert.Equal(t, int64(i+1), game.ID)
		assert.NotEmpty(t, game.Title)
		assert.False(t, titles[game.Title], "duplicate title %q", game.Title)
		titles[game.Title] = true

		switch game.MonetizationType {
		case models.MonetizationFree:
			assert.Zero(t, game.BasePrice)
		case models.MonetizationPaid:
			assert.GreaterOrEqual(t, game.BasePrice, 1.0)
		default:
			t.Fatalf("unexpected monetization type %q", game.MonetizationType)
		}
		assert.Equal(t, game.BasePrice, game.CurrentPrice)

		assert.NotEmpty(t, game.GenreMain)
		assert.GreaterOrEqual(t, len(game.GenreTags), 2)
		assert.LessOrEqual(t, len(game.GenreTags), 4)
		assert.NotEmpty(t, game.AgeRating)
		assert.True(t, game.IsActive)
		assert.Zero(t, game.TotalPurchases)
		assert.Equal(t, date, game.ReleaseDate, "a studio's first game ships immediately")
	}
}

func TestGenerator_ReleaseCadence(t *testing.T) {
	g := newTestGenerator()
	date := time.Date(2026, time.February, 3, 11, 30, 0, 0, time.UTC)

	first := g.CreateGame(date, 42)
	assert.Equal(t, date, first.ReleaseDate)

	// A follow-up planned ~two years out is pulled back to at most 180
	// days past the current simulated date.
	second := g.CreateGame(date, 42)
	assert.Equal(t, date.AddDate(0, 0, maxFutureRelease), second.ReleaseDate)

	// An unrelated studio is unaffected by 42's schedule.
	other := g.CreateGame(date, 43)
	assert.Equal(t, date, other.ReleaseDate)
}

func TestGenerator_SeedIDsContinuesSequences(t *testing.T) {
	g := New(rand.New(rand.NewSource(2)))
	g.SeedIDs(1001, 51, 9001)
	date := time.Now()

	assert.Equal(t, int64(1001), g.CreateUsers(1, date)[0].ID)
	assert.Equal(t, int64(51), g.CreateDevelopers(1, date)[0].ID)
	assert.Equal(t, int64(9001), g.CreateGame(date, 51).ID)
}
