package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/ByterGame/data-analytics-FEFU/platform/database/models"
	lru "github.com/hashicorp/golang-lru"
)

const (
	// dedupeCacheSize bounds the uniqueness caches; names older than the
	// cache window may repeat, which the unique DB constraints absorb.
	dedupeCacheSize = 100000

	// releaseScheduleSize bounds the per-developer release schedule.
	releaseScheduleSize = 10000

	releaseInterval   = 730 // days between a developer's releases
	releaseJitterDays = 90
	maxFutureRelease  = 180
	editionChance     = 0.1
	legalSuffixChance = 0.3
	singleWordChance  = 0.7
	meanGamePrice     = 15.0
	stdDevGamePrice   = 12.0
	minGamePrice      = 1.0
)

// Generator synthesizes plausible marketplace entities. It is the
// content factory for the simulation: the scheduler decides how many
// entities to create and when, the generator decides what they look
// like. Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand

	usernames *lru.Cache
	emails    *lru.Cache
	titles    *lru.Cache
	studios   *lru.Cache

	// developer ID -> last release date, to keep each studio on a
	// plausible multi-year release cadence
	lastReleases *lru.Cache

	nextUserID      int64
	nextDeveloperID int64
	nextGameID      int64
}

func New(rng *rand.Rand) *Generator {
	usernames, _ := lru.New(dedupeCacheSize)
	emails, _ := lru.New(dedupeCacheSize)
	titles, _ := lru.New(dedupeCacheSize)
	studios, _ := lru.New(dedupeCacheSize)
	lastReleases, _ := lru.New(releaseScheduleSize)

	return &Generator{
		rng:          rng,
		usernames:    usernames,
		emails:       emails,
		titles:       titles,
		studios:      studios,
		lastReleases: lastReleases,
	}
}

// SeedIDs sets the next primary keys to hand out, hydrated from the
// store's current maximums so restarts continue the sequence.
func (g *Generator) SeedIDs(nextUser, nextDeveloper, nextGame int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextUserID = nextUser
	g.nextDeveloperID = nextDeveloper
	g.nextGameID = nextGame
}

// CreateUsers synthesizes count users registered at the given simulated
// timestamp.
func (g *Generator) CreateUsers(count int, date time.Time) []*models.User {
	g.mu.Lock()
	defer g.mu.Unlock()

	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		username := g.generateUsername()
		country, region := g.randomCountryRegion()

		users = append(users, &models.User{
			ID:               g.nextUserID,
			Username:         username,
			Email:            g.generateEmail(username),
			CountryCode:      country,
			Region:           region,
			RegistrationDate: date,
			LastActive:       date,
			TotalSpent:       0,
		})
		g.nextUserID++
	}
	return users
}

// CreateDevelopers synthesizes count developer studios founded at the
// given simulated timestamp.
func (g *Generator) CreateDevelopers(count int, date time.Time) []*models.Developer {
	g.mu.Lock()
	defer g.mu.Unlock()

	developers := make([]*models.Developer, 0, count)
	for i := 0; i < count; i++ {
		studio := g.generateStudioName()

		developers = append(developers, &models.Developer{
			ID:             g.nextDeveloperID,
			StudioName:     studio,
			CountryCode:    pickWeighted(g.rng, developerCountryDistribution),
			FoundationYear: date.Year(),
			TotalRevenue:   0,
			ContactEmail:   studioEmail(studio),
		})
		g.nextDeveloperID++
	}
	return developers
}

// CreateGame synthesizes one game published by the given developer at
// the given simulated timestamp.
func (g *Generator) CreateGame(date time.Time, developerID int64) *models.Game {
	g.mu.Lock()
	defer g.mu.Unlock()

	monetization := pickWeighted(g.rng, monetizationDistribution)
	price := 0.0
	if monetization == models.MonetizationPaid {
		price = roundPrice(math.Max(g.rng.NormFloat64()*stdDevGamePrice+meanGamePrice, minGamePrice))
	}

	genre, tags := g.generateGenre()

	game := &models.Game{
		ID:               g.nextGameID,
		Title:            g.generateGameTitle(),
		DeveloperID:      developerID,
		ReleaseDate:      g.nextReleaseDate(date, developerID),
		BasePrice:        price,
		CurrentPrice:     price,
		MonetizationType: monetization,
		GenreMain:        genre,
		GenreTags:        tags,
		AgeRating:        pickWeighted(g.rng, ageRatingDistribution),
		TotalPurchases:   0,
		IsActive:         true,
	}
	g.nextGameID++
	return game
}

func (g *Generator) generateUsername() string {
	first := strings.ToLower(pick(g.rng, adjectives))
	username := first
	if g.rng.Float64() >= singleWordChance {
		username = first + "_" + strings.ToLower(pick(g.rng, nouns))
	}

	for g.usernames.Contains(username) {
		username += fmt.Sprintf("%d", g.rng.Intn(9)+1)
	}
	g.usernames.Add(username, struct{}{})
	return username
}

func (g *Generator) generateEmail(username string) string {
	email := fmt.Sprintf("%s%d@%s", username, g.rng.Intn(900)+100, pick(g.rng, emailDomains))
	for g.emails.Contains(email) {
		email = fmt.Sprintf("%s%d@%s", username, g.rng.Intn(9000)+1000, pick(g.rng, emailDomains))
	}
	g.emails.Add(email, struct{}{})
	return email
}

func (g *Generator) randomCountryRegion() (string, string) {
	country := pickWeighted(g.rng, countryDistribution)
	regions := countryRegions[country]
	if len(regions) == 0 {
		return country, "Central"
	}
	return country, pick(g.rng, regions)
}

func (g *Generator) generateStudioName() string {
	wordPools := [][]string{adjectives, nouns, prefixes, locations, colors}

	template := pick(g.rng, studioNameTemplates)
	name := template
	name = strings.Replace(name, "{word1}", pick(g.rng, wordPools[g.rng.Intn(len(wordPools))]), 1)
	name = strings.Replace(name, "{word2}", pick(g.rng, wordPools[g.rng.Intn(len(wordPools))]), 1)
	name = strings.Replace(name, "{suffix}", pick(g.rng, studioSuffixes), 1)

	if g.rng.Float64() < legalSuffixChance {
		name = name + " " + pick(g.rng, legalSuffixes)
	}

	for g.studios.Contains(name) {
		name += fmt.Sprintf("%d", g.rng.Intn(9)+1)
	}
	g.studios.Add(name, struct{}{})
	return name
}

func (g *Generator) generateGameTitle() string {
	template := pick(g.rng, gameTitleTemplates)

	replacements := [][2]string{
		{"{adjective}", pick(g.rng, adjectives)},
		{"{noun}", pick(g.rng, nouns)},
		{"{mythical}", pick(g.rng, mythicalCreatures)},
		{"{color}", pick(g.rng, colors)},
		{"{prefix}", pick(g.rng, prefixes)},
		{"{verb}", pick(g.rng, verbs)},
		{"{location}", pick(g.rng, locations)},
		{"{subtitle}", pick(g.rng, subtitles)},
		{"{roman_numeral}", pick(g.rng, romanNumerals)},
	}

	title := template
	for _, r := range replacements {
		title = strings.Replace(title, r[0], r[1], 1)
	}

	if g.rng.Float64() < editionChance {
		title = title + " - " + pick(g.rng, editionSuffixes)
	}

	for g.titles.Contains(title) {
		title += fmt.Sprintf("%d", g.rng.Intn(9)+1)
	}
	g.titles.Add(title, struct{}{})
	return title
}

func (g *Generator) generateGenre() (string, []string) {
	genre := pickWeighted(g.rng, genreDistribution)

	base := genreTags[genre]
	if len(base) == 0 {
		base = []string{"indie", "casual"}
	}

	numTags := g.rng.Intn(3) + 2
	if numTags > len(base) {
		numTags = len(base)
	}

	selected := make([]string, 0, numTags+1)
	for _, i := range g.rng.Perm(len(base))[:numTags] {
		selected = append(selected, base[i])
	}

	if g.rng.Float64() < 0.7 && len(selected) < 4 {
		extra := pick(g.rng, additionalTags)
		if !contains(selected, extra) {
			selected = append(selected, extra)
		}
	}
	return genre, selected
}

// nextReleaseDate keeps each developer on a roughly two-year release
// cadence: the first game ships at the current simulated date, later
// ones land around releaseInterval days after the previous, never more
// than maxFutureRelease days into the future.
func (g *Generator) nextReleaseDate(date time.Time, developerID int64) time.Time {
	release := date
	if last, ok := g.lastReleases.Get(developerID); ok {
		jitter := g.rng.Intn(2*releaseJitterDays+1) - releaseJitterDays
		release = last.(time.Time).AddDate(0, 0, releaseInterval+jitter)

		maxFuture := date.AddDate(0, 0, maxFutureRelease)
		if release.After(maxFuture) {
			release = maxFuture
		}
	}
	g.lastReleases.Add(developerID, release)
	return release
}

func studioEmail(studio string) string {
	var b strings.Builder
	for _, c := range studio {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		} else if c >= 'A' && c <= 'Z' {
			b.WriteRune(c + ('a' - 'A'))
		}
	}
	return b.String() + "@gmail.com"
}

func pick(rng *rand.Rand, items []string) string {
	return items[rng.Intn(len(items))]
}

func pickWeighted(rng *rand.Rand, items []weightedString) string {
	total := 0.0
	for _, item := range items {
		total += item.Weight
	}

	r := rng.Float64() * total
	for _, item := range items {
		r -= item.Weight
		if r <= 0 {
			return item.Value
		}
	}
	return items[len(items)-1].Value
}

func roundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
