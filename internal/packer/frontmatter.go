package packer

import (
	"strings"
)

// yamlScalar writes a frontmatter value, double-quoting it only when the
// bare form would be ambiguous: when it contains any of `" : > # [ ] , { } |`,
// has leading or trailing whitespace, or spans lines. Backslashes and quotes
// are escaped inside the quoted form.
func yamlScalar(value string) string {
	if value != "" && !needsQuoting(value) {
		return value
	}
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

func needsQuoting(value string) bool {
	if strings.ContainsAny(value, "\":>#[],{}|\n") {
		return true
	}
	return strings.TrimSpace(value) != value
}

// Frontmatter renders the frontmatter block for a post, ending with the
// closing delimiter and a blank line so the body can be appended directly.
// imageWebPath is the already-canonical /static/uploads/news/... path, empty
// when the post has no image.
func Frontmatter(input PostInput, imageWebPath string) string {
	lines := []string{"---"}
	lines = append(lines, "title: "+yamlScalar(input.Title))
	lines = append(lines, "date: "+input.Date)
	lines = append(lines, "slug: "+yamlScalar(input.Slug))
	if input.Author != "" {
		lines = append(lines, "author: "+yamlScalar(input.Author))
	}
	if input.Summary != "" {
		lines = append(lines, "summary: "+yamlScalar(input.Summary))
	}
	if len(input.Tags) > 0 {
		items := make([]string, len(input.Tags))
		for i, tag := range input.Tags {
			items[i] = yamlScalar(tag)
		}
		lines = append(lines, "tags: ["+strings.Join(items, ", ")+"]")
	}
	if imageWebPath != "" {
		lines = append(lines, "image: "+yamlScalar(imageWebPath))
	}
	if input.ImageAlt != "" {
		lines = append(lines, "imageAlt: "+yamlScalar(input.ImageAlt))
	}
	if input.Draft {
		lines = append(lines, "draft: true")
	} else {
		lines = append(lines, "draft: false")
	}
	if input.Datetime != "" {
		lines = append(lines, "datetime: "+yamlScalar(input.Datetime))
	}
	lines = append(lines, "---")
	return strings.Join(lines, "\n") + "\n\n"
}
