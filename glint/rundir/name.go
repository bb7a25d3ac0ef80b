package rundir

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"autumn", "hidden", "bitter", "misty", "silent", "empty", "dry", "dark",
		"summer", "icy", "delicate", "quiet", "white", "cool", "spring", "winter",
		"patient", "twilight", "dawn", "crimson", "wispy", "weathered", "blue",
		"bright", "burning", "clear", "dazzling", "golden", "hazy", "high",
		"long", "late", "lingering", "bold", "low", "morning", "noon", "pale",
		"red", "slanted", "still", "small", "sparkling", "glaring", "shy",
		"wandering", "warm", "wild", "amber", "young", "solitary", "gleaming",
	}

	nouns = []string{
		"glint", "hotspot", "sun", "zenith", "horizon", "shadow", "mirror",
		"lake", "sea", "river", "pond", "puddle", "field", "roof", "glass",
		"meadow", "cloud", "haze", "dawn", "dusk", "noon", "ray", "beam",
		"flare", "sparkle", "shimmer", "ripple", "wave", "dune", "snow",
		"ice", "frost", "dew", "lens", "prism", "pinhole", "aperture",
	}
)

// GenerateRunName creates a memorable run identifier
// in the format "adjective-noun"
func GenerateRunName() string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	adj := adjectives[r.Intn(len(adjectives))]
	noun := nouns[r.Intn(len(nouns))]

	return adj + "-" + noun
}

// GenerateRunID creates a unique run identifier by combining
// the memorable name with a timestamp
func GenerateRunID() string {
	timestamp := time.Now().UTC().Format("20060102-150405.000")
	return GenerateRunName() + "-" + timestamp
}
