package content

import (
	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-news-intake/internal/normalize"
)

// SlugNormalizer is the pluggable normalizer contract host applications can
// swap when their slug rules differ from the defaults.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the stock normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// NormalizeSlug runs a value through the stock normalizer, reporting inputs
// it cannot make a slug of.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether value already satisfies the slug rules, e.g.
// when checking a frontmatter slug: field before trusting it.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

// Slugify produces the lower-hyphen slug used in post filenames and asset
// names, falling back to a stable placeholder for inputs with no usable
// characters.
func Slugify(value string) string {
	return normalize.Slug(value)
}
