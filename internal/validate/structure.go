package validate

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
)

const (
	contentPrefix = "content/news/"
	uploadsPrefix = "static/uploads/news/"
)

var markdownName = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-[a-z0-9]+(-[a-z0-9]+)*\.md$`)

// StructureReport carries the outcome of a structural bundle check. Fatal
// problems (path traversal, missing markdown) block import entirely; plain
// problems (filename or uploads-path shape) fail a strict validation run but
// are downgraded to warnings by the lenient importer.
type StructureReport struct {
	Fatal    []string
	Problems []string
}

// Valid reports whether the bundle passes the strict check.
func (r StructureReport) Valid() bool {
	return len(r.Fatal) == 0 && len(r.Problems) == 0
}

// Importable reports whether the lenient importer may proceed.
func (r StructureReport) Importable() bool {
	return len(r.Fatal) == 0
}

// All returns every recorded problem, fatal first.
func (r StructureReport) All() []string {
	out := make([]string, 0, len(r.Fatal)+len(r.Problems))
	out = append(out, r.Fatal...)
	return append(out, r.Problems...)
}

// Structure checks a bundle's member list before any extraction is trusted.
// Entries are archive-relative slash-separated paths of regular files.
func Structure(entries []string) StructureReport {
	report := StructureReport{}

	for _, entry := range entries {
		if isUnsafePath(entry) {
			report.Fatal = append(report.Fatal, fmt.Sprintf("unsafe entry path (traversal): %s", entry))
		}
	}

	mdCount := 0
	for _, entry := range entries {
		if !strings.HasPrefix(entry, contentPrefix) || !strings.HasSuffix(strings.ToLower(entry), ".md") {
			continue
		}
		mdCount++
		name := path.Base(entry)
		if !markdownName.MatchString(name) {
			report.Problems = append(report.Problems, fmt.Sprintf("markdown filename must be YYYY-MM-DD-slug.md: %s", name))
		}
	}
	if mdCount == 0 {
		report.Fatal = append(report.Fatal, "missing content/news/*.md")
	}

	for _, entry := range entries {
		if !strings.HasPrefix(entry, uploadsPrefix) {
			continue
		}
		segments := strings.Split(entry, "/")
		// Expect static/uploads/news/YYYY/MM/filename.
		if len(segments) < 6 {
			report.Problems = append(report.Problems, fmt.Sprintf("asset path should be static/uploads/news/YYYY/MM/...: %s", entry))
			continue
		}
		year, month := segments[3], segments[4]
		if len(year) != 4 || !isDigits(year) {
			report.Problems = append(report.Problems, fmt.Sprintf("year folder must be 4 digits: %s", entry))
		}
		if !validMonth(month) {
			report.Problems = append(report.Problems, fmt.Sprintf("month folder must be 01..12: %s", entry))
		}
	}

	return report
}

func isUnsafePath(entry string) bool {
	normalized := strings.ReplaceAll(entry, `\`, "/")
	if strings.HasPrefix(normalized, "/") {
		return true
	}
	for _, segment := range strings.Split(normalized, "/") {
		if segment == ".." {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validMonth(s string) bool {
	if len(s) != 2 || !isDigits(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 12
}
