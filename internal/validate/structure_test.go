package validate

import (
	"strings"
	"testing"
)

func TestStructureAcceptsWellFormedBundle(t *testing.T) {
	report := Structure([]string{
		"content/news/2024-05-01-my-post.md",
		"static/uploads/news/2024/05/2024-05-01-my-post-hero.jpg",
	})
	if !report.Valid() {
		t.Fatalf("expected valid report, got %v", report.All())
	}
	if !report.Importable() {
		t.Fatalf("expected importable report")
	}
}

func TestStructureRejectsTraversal(t *testing.T) {
	report := Structure([]string{
		"content/news/2024-05-01-my-post.md",
		"../../etc/passwd",
	})
	if report.Importable() {
		t.Fatalf("traversal entry must be fatal: %v", report.All())
	}
}

func TestStructureRejectsAbsolutePaths(t *testing.T) {
	report := Structure([]string{
		"/etc/passwd",
		"content/news/2024-05-01-my-post.md",
	})
	if report.Importable() {
		t.Fatalf("absolute entry must be fatal: %v", report.All())
	}
}

func TestStructureRejectsEmbeddedTraversalSegment(t *testing.T) {
	report := Structure([]string{
		"content/news/../../../etc/passwd",
		"content/news/2024-05-01-my-post.md",
	})
	if report.Importable() {
		t.Fatalf("embedded .. segment must be fatal: %v", report.All())
	}
}

func TestStructureRequiresMarkdown(t *testing.T) {
	report := Structure([]string{
		"static/uploads/news/2024/05/2024-05-01-a-hero.jpg",
	})
	if report.Importable() {
		t.Fatalf("bundle without markdown must be fatal: %v", report.All())
	}
	found := false
	for _, p := range report.Fatal {
		if strings.Contains(p, "content/news/*.md") {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing markdown problem not reported: %v", report.Fatal)
	}
}

func TestStructureFlagsBadFilenameAsNonFatal(t *testing.T) {
	report := Structure([]string{
		"content/news/My Post.md",
	})
	if !report.Importable() {
		t.Fatalf("filename mismatch must stay importable: %v", report.Fatal)
	}
	if report.Valid() {
		t.Fatalf("filename mismatch must fail the strict check")
	}
}

func TestStructureFlagsUploadShape(t *testing.T) {
	cases := []string{
		"static/uploads/news/a.jpg",
		"static/uploads/news/24/05/a.jpg",
		"static/uploads/news/2024/13/a.jpg",
		"static/uploads/news/2024/5/a.jpg",
	}
	for _, entry := range cases {
		report := Structure([]string{
			"content/news/2024-05-01-my-post.md",
			entry,
		})
		if report.Valid() {
			t.Fatalf("entry %q should fail the strict check", entry)
		}
		if !report.Importable() {
			t.Fatalf("entry %q should not be fatal", entry)
		}
	}
}

func TestStructureMonthBounds(t *testing.T) {
	for _, month := range []string{"01", "12"} {
		report := Structure([]string{
			"content/news/2024-05-01-my-post.md",
			"static/uploads/news/2024/" + month + "/a.jpg",
		})
		if !report.Valid() {
			t.Fatalf("month %s should be accepted: %v", month, report.All())
		}
	}
}
