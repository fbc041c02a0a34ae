package services

import (
	"strings"

	"github.com/google/uuid"
)

// MakeSlug turns a title into a URL slug with a short random suffix. The
// suffix only reduces the chance of collisions; the unique index on
// posts.slug is what actually guarantees uniqueness.
func MakeSlug(title string) string {
	return Slugify(title) + "-" + randomSuffix()
}

// Slugify lowercases the title, joins words with hyphens and strips
// everything outside [a-z0-9_-].
func Slugify(title string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(title)), "-")

	var b strings.Builder
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func randomSuffix() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return id[:5]
}
