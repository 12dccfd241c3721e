package normalize

import (
	"regexp"
	"strings"
)

var (
	frontmatterImageLine  = regexp.MustCompile(`(?m)^(image:[ \t]*)(.+)$`)
	frontmatterImageValue = regexp.MustCompile(`(?m)^image:[ \t]*"?([^"\n]+?)"?[ \t]*$`)
	frontmatterBlock      = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n`)
	heroLine              = regexp.MustCompile(`(?m)^hero:[ \t]*`)
	inlineImage           = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
)

// Document rewrites every embedded asset reference in a markdown document to
// the canonical uploads form: the whole-line frontmatter image: field
// (re-emitted quote-wrapped) and every inline ![alt](path) occurrence. When
// the document ends up with an image: under the uploads root and no hero:
// field, a hero: line carrying the same value is inserted directly below
// image:. All other lines are preserved verbatim. Title and body text are
// never touched.
func Document(text string) string {
	text = frontmatterImageLine.ReplaceAllStringFunc(text, func(match string) string {
		parts := frontmatterImageLine.FindStringSubmatch(match)
		value := parts[2]
		if externalRef.MatchString(strings.Trim(strings.TrimSpace(value), `"'`)) {
			return match
		}
		return parts[1] + `"` + AssetPath(value) + `"`
	})

	text = inlineImage.ReplaceAllStringFunc(text, func(match string) string {
		parts := inlineImage.FindStringSubmatch(match)
		target := strings.TrimSpace(parts[2])
		if externalRef.MatchString(target) {
			return match
		}
		return "![" + parts[1] + "](" + AssetPath(target) + ")"
	})

	return ensureHero(text)
}

// ensureHero synthesizes a hero: frontmatter field from the image: value.
// The value is copied verbatim; nothing cross-checks that the referenced
// asset actually shipped with the bundle.
func ensureHero(text string) string {
	block := frontmatterBlock.FindStringSubmatch(text)
	if block == nil {
		return text
	}
	fm := block[1]

	img := frontmatterImageValue.FindStringSubmatch(fm)
	if img == nil {
		return text
	}
	imageVal := strings.TrimSpace(img[1])
	if !strings.Contains(imageVal, UploadsRoot) {
		return text
	}
	if heroLine.MatchString(fm) {
		return text
	}

	lines := strings.Split(fm, "\n")
	rebuilt := make([]string, 0, len(lines)+1)
	inserted := false
	for _, line := range lines {
		rebuilt = append(rebuilt, line)
		if !inserted && strings.HasPrefix(strings.TrimSpace(line), "image:") {
			rebuilt = append(rebuilt, `hero: "`+imageVal+`"`)
			inserted = true
		}
	}
	return strings.Replace(text, fm, strings.Join(rebuilt, "\n"), 1)
}
