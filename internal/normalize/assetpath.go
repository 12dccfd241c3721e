package normalize

import (
	"regexp"
	"strings"
)

// UploadsRoot is the canonical web prefix every news asset path is rewritten
// under: /static/uploads/news/YYYY/MM/<file>.
const UploadsRoot = "/static/uploads/news/"

var (
	externalRef   = regexp.MustCompile(`^(https?:|blob:|data:)`)
	duplicateRoot = regexp.MustCompile(`(?:/static/uploads/news/)+`)
	spaceRun      = regexp.MustCompile(`\s+`)
)

// AssetPath rewrites a frontmatter image value or inline image target to the
// canonical uploads form. External and opaque references (http:, https:,
// blob:, data:) pass through untouched. Paths already under the uploads root
// have duplicate prefixes and stray whitespace collapsed; anything else is
// prefixed with the uploads root. Idempotent and total over strings.
func AssetPath(raw string) string {
	val := strings.TrimSpace(raw)
	val = strings.Trim(val, `"'`)
	if externalRef.MatchString(val) {
		return val
	}

	val = spaceRun.ReplaceAllString(val, " ")

	if strings.Contains(val, UploadsRoot) {
		// Accidental spaces around the prefix come from hand-edited
		// frontmatter; drop them before collapsing duplicates.
		val = strings.ReplaceAll(val, " "+UploadsRoot, UploadsRoot)
		val = strings.ReplaceAll(val, UploadsRoot+" ", UploadsRoot)
		val = duplicateRoot.ReplaceAllString(val, UploadsRoot)
		if !strings.HasPrefix(val, "/") {
			val = "/" + val
		}
		return val
	}

	return UploadsRoot + strings.TrimLeft(val, "/")
}
