package generator

// Word and template tables for synthesized usernames, studio names and
// game titles, plus the weighted distributions the marketplace content
// is drawn from. Distributions follow published Steam statistics.

var adjectives = []string{
	"Shadow", "Dark", "Epic", "Golden", "Mystic", "Silent", "Crimson",
	"Frozen", "Burning", "Ancient", "Savage", "Hidden", "Broken", "Iron",
	"Wild", "Lost", "Eternal", "Cursed", "Sacred", "Fallen",
}

var nouns = []string{
	"Realm", "Kingdom", "Dragon", "Phoenix", "Warrior", "Empire", "Blade",
	"Throne", "Legion", "Horizon", "Abyss", "Citadel", "Frontier", "Storm",
	"Crown", "Depths", "Odyssey", "Bastion", "Exile", "Covenant",
}

var mythicalCreatures = []string{
	"Dragon", "Phoenix", "Griffin", "Unicorn", "Kraken", "Hydra",
	"Chimera", "Basilisk", "Wyvern", "Leviathan",
}

var colors = []string{
	"Red", "Blue", "Black", "White", "Golden", "Silver", "Emerald",
	"Scarlet", "Obsidian", "Azure",
}

var prefixes = []string{
	"Shadow", "Dark", "Epic", "Golden", "Never", "Star", "Iron", "Storm",
}

var locations = []string{
	"Forest", "Mountain", "Castle", "Temple", "Wasteland", "Island",
	"Dungeon", "Valley", "Harbor", "Ruins",
}

var subtitles = []string{
	"Awakening", "Rebirth", "Origins", "Legacy", "Redemption", "Ascension",
	"Reckoning", "Genesis", "Aftermath", "Uprising",
}

var romanNumerals = []string{"II", "III", "IV", "V", "VI", "VII"}

var verbs = []string{
	"Rising", "Falling", "Awakening", "Hunting", "Burning", "Wandering",
}

var studioSuffixes = []string{
	"Games", "Studios", "Interactive", "Entertainment", "Works", "Forge",
	"Collective", "Labs",
}

var editionSuffixes = []string{
	"HD", "Remastered", "Definitive Edition", "Game of the Year Edition",
	"Enhanced Edition",
}

var gameTitleTemplates = []string{
	"{adjective} {noun}",
	"The {adjective} {noun}",
	"{noun} {roman_numeral}",
	"{mythical} {noun}",
	"{color} {noun}",
	"{noun}: {subtitle}",
	"{prefix}{noun}",
	"{noun} of the {location}",
	"{verb} {noun}",
}

var studioNameTemplates = []string{
	"{word1} {word2} {suffix}",
	"{word1} {suffix}",
}

var legalSuffixes = []string{"Inc.", "LLC", "Corp.", "Ltd."}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "proton.me",
}

type weightedString struct {
	Value  string
	Weight float64
}

// Share of the player base per country, top-20 only.
var countryDistribution = []weightedString{
	{"US", 0.142}, {"CN", 0.118}, {"RU", 0.096}, {"DE", 0.054},
	{"BR", 0.047}, {"GB", 0.037}, {"FR", 0.036}, {"TR", 0.035},
	{"PL", 0.034}, {"CA", 0.027}, {"JP", 0.024}, {"UA", 0.021},
	{"AU", 0.020}, {"TW", 0.019}, {"NL", 0.019}, {"KR", 0.018},
	{"SE", 0.017}, {"IT", 0.016}, {"CZ", 0.015}, {"RO", 0.014},
}

var developerCountryDistribution = []weightedString{
	{"US", 0.35}, {"JP", 0.15}, {"DE", 0.10}, {"GB", 0.08},
	{"CA", 0.07}, {"FR", 0.06}, {"PL", 0.05}, {"RU", 0.04},
	{"UA", 0.03}, {"KR", 0.03}, {"CN", 0.02}, {"AU", 0.02},
}

var countryRegions = map[string][]string{
	"US": {"California", "New York", "Texas", "Florida", "Washington"},
	"CN": {"Guangdong", "Beijing", "Shanghai", "Sichuan"},
	"RU": {"Moscow", "Saint Petersburg", "Novosibirsk", "Yekaterinburg"},
	"DE": {"Berlin", "Bavaria", "Hamburg", "Saxony"},
	"BR": {"São Paulo", "Rio de Janeiro", "Minas Gerais"},
	"GB": {"London", "Manchester", "Edinburgh"},
	"FR": {"Île-de-France", "Provence", "Brittany"},
	"TR": {"Istanbul", "Ankara", "Izmir"},
	"PL": {"Masovia", "Silesia", "Lesser Poland"},
	"CA": {"Ontario", "Quebec", "British Columbia"},
	"JP": {"Tokyo", "Osaka", "Hokkaido"},
	"UA": {"Kyiv", "Lviv", "Kharkiv"},
	"AU": {"New South Wales", "Victoria", "Queensland"},
	"TW": {"Taipei", "Kaohsiung"},
	"NL": {"North Holland", "South Holland"},
	"KR": {"Seoul", "Busan"},
	"SE": {"Stockholm", "Gothenburg"},
	"IT": {"Lombardy", "Lazio"},
	"CZ": {"Prague", "Moravia"},
	"RO": {"Bucharest", "Cluj"},
}

var genreDistribution = []weightedString{
	{"Action", 0.22},
	{"Role-Playing (RPG)", 0.18},
	{"Adventure", 0.15},
	{"Strategy", 0.12},
	{"Simulation", 0.10},
	{"Sports", 0.08},
	{"Shooter", 0.07},
	{"Racing", 0.04},
	{"Puzzle", 0.04},
}

var genreTags = map[string][]string{
	"Action":             {"action", "fast-paced", "combat", "adventure"},
	"Role-Playing (RPG)": {"rpg", "story-rich", "character-development", "quests"},
	"Adventure":          {"adventure", "exploration", "puzzle", "narrative"},
	"Strategy":           {"strategy", "tactical", "resource-management"},
	"Simulation":         {"simulation", "realistic", "management", "sandbox"},
	"Sports":             {"sports", "competitive", "realistic", "team-based"},
	"Shooter":            {"shooter", "fps", "multiplayer", "competitive"},
	"Racing":             {"racing", "driving", "simulation", "arcade"},
	"Puzzle":             {"puzzle", "casual", "brain-teaser", "logic"},
}

var additionalTags = []string{
	"multiplayer", "singleplayer", "co-op", "online",
	"offline", "vr", "controller-friendly", "moddable",
}

var ageRatingDistribution = []weightedString{
	{"3+", 0.05},
	{"7+", 0.15},
	{"12+", 0.40},
	{"16+", 0.30},
	{"18+", 0.10},
}

var monetizationDistribution = []weightedString{
	{"free", 0.25},
	{"paid", 0.75},
}
