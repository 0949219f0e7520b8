// Package fake provides word pools and simple composers for identity and
// filler text fields. All draws go through the caller's rng.Rand so output is
// reproducible for a given seed.
package fake

import (
	"fmt"
	"strings"

	"github.com/andriikh/ecomgen/internal/rng"
)

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
	"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "protonmail.com",
	"icloud.com", "aol.com", "mail.com",
}

var countries = []string{
	"United States", "Canada", "United Kingdom", "Germany", "France", "Spain",
	"Italy", "Netherlands", "Sweden", "Poland", "Ukraine", "Australia", "Japan",
	"Brazil", "Mexico", "India",
}

var cities = []string{
	"Springfield", "Riverton", "Fairview", "Lakeside", "Greenville", "Madison",
	"Clinton", "Georgetown", "Salem", "Ashland", "Burlington", "Milton",
	"Newport", "Oakdale", "Winchester", "Clayton", "Dayton", "Lexington",
	"Franklin", "Arlington", "Bristol", "Clarksville", "Hudson", "Kingston",
}

var streetNames = []string{
	"Oak", "Maple", "Cedar", "Pine", "Elm", "Walnut", "Willow", "Chestnut",
	"Main", "Park", "Lake", "Hill", "River", "Sunset", "Highland", "Meadow",
}

var streetSuffixes = []string{"St", "Ave", "Blvd", "Dr", "Ln", "Rd", "Way", "Ct"}

var colorNames = []string{
	"Black", "White", "Red", "Blue", "Green", "Navy", "Gray", "Silver",
	"Beige", "Teal", "Olive", "Maroon", "Coral", "Ivory", "Charcoal", "Burgundy",
}

var fillerWords = []string{
	"premium", "durable", "compact", "versatile", "reliable", "modern",
	"classic", "lightweight", "ergonomic", "sleek", "robust", "refined",
	"efficient", "seamless", "intuitive", "responsive", "balanced", "precise",
	"polished", "signature", "essential", "dynamic", "vivid", "crisp",
	"quiet", "powerful", "smart", "adaptive", "portable", "sturdy",
}

// Catch phrase composition in the three-part Faker manner.
var (
	phraseAdjectives = []string{
		"Ergonomic", "Seamless", "Adaptive", "Robust", "Intuitive", "Streamlined",
		"Versatile", "Balanced", "Polished", "Future-proofed", "Refined", "Dependable",
	}
	phraseNouns = []string{
		"performance", "craftsmanship", "comfort", "design", "quality",
		"engineering", "durability", "experience", "functionality", "style",
	}
	phraseTails = []string{
		"for everyday use", "built to last", "you can count on", "at a fair price",
		"for work and play", "that fits your life", "without compromise",
		"for the whole family", "wherever you go", "down to the last detail",
	}
)

func Name(r *rng.Rand) string {
	return rng.Choice(r, firstNames) + " " + rng.Choice(r, lastNames)
}

// Email derives an address from a full name plus a random suffix, so two
// customers with the same name still get distinct contact fields.
func Email(r *rng.Rand, name string) string {
	user := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s%d@%s", user, r.IntBetween(1, 999), rng.Choice(r, emailDomains))
}

func Phone(r *rng.Rand) string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", r.IntBetween(200, 999), r.IntBetween(100, 999), r.IntBetween(0, 9999))
}

func Country(r *rng.Rand) string { return rng.Choice(r, countries) }

func City(r *rng.Rand) string { return rng.Choice(r, cities) }

func StreetAddress(r *rng.Rand) string {
	return fmt.Sprintf("%d %s %s", r.IntBetween(1, 9999), rng.Choice(r, streetNames), rng.Choice(r, streetSuffixes))
}

func ColorName(r *rng.Rand) string { return rng.Choice(r, colorNames) }

// Word returns a lowercase filler word.
func Word(r *rng.Rand) string { return rng.Choice(r, fillerWords) }

// CapitalizedWord returns a filler word with the first letter upper-cased.
func CapitalizedWord(r *rng.Rand) string {
	w := Word(r)
	return strings.ToUpper(w[:1]) + w[1:]
}

// CatchPhrase composes a short marketing line, e.g. "Refined comfort built to last".
func CatchPhrase(r *rng.Rand) string {
	return rng.Choice(r, phraseAdjectives) + " " + rng.Choice(r, phraseNouns) + " " + rng.Choice(r, phraseTails)
}

// Sentence builds an n-word filler sentence ending with a period.
func Sentence(r *rng.Rand, n int) string {
	if n <= 0 {
		n = 1
	}
	words := make([]string, n)
	for i := range words {
		words[i] = Word(r)
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
