package indexer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

// IndexFileName is the listing file written next to the markdown posts.
const IndexFileName = "index.json"

// IndexEntry is one post in the generated listing.
type IndexEntry struct {
	Title   string   `json:"title" yaml:"title"`
	Date    string   `json:"date" yaml:"date"`
	Slug    string   `json:"slug,omitempty" yaml:"slug"`
	Summary string   `json:"summary,omitempty" yaml:"summary"`
	Image   string   `json:"image,omitempty" yaml:"image"`
	Hero    string   `json:"hero,omitempty" yaml:"hero"`
	Tags    []string `json:"tags,omitempty" yaml:"tags"`
	Draft   bool     `json:"draft" yaml:"draft"`
	Path    string   `json:"path" yaml:"-"`
}

// Index is the on-disk shape of index.json.
type Index struct {
	Posts []IndexEntry `json:"posts"`
}

// WriteIndex scans contentDir for *.md posts, parses their frontmatter and
// writes index.json into the same directory with entries ordered newest
// first. Files whose frontmatter cannot be parsed are skipped rather than
// failing the whole rebuild.
func WriteIndex(contentDir string) error {
	dirEntries, err := os.ReadDir(contentDir)
	if err != nil {
		return fmt.Errorf("indexer: read content dir %s: %w", contentDir, err)
	}

	posts := []IndexEntry{}
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() || !strings.HasSuffix(strings.ToLower(dirEntry.Name()), ".md") {
			continue
		}
		entry, err := readEntry(contentDir, dirEntry.Name())
		if err != nil {
			continue
		}
		posts = append(posts, entry)
	}

	sort.Slice(posts, func(a, b int) bool {
		if posts[a].Date != posts[b].Date {
			return posts[a].Date > posts[b].Date
		}
		return posts[a].Path > posts[b].Path
	})

	data, err := json.MarshalIndent(Index{Posts: posts}, "", "  ")
	if err != nil {
		return fmt.Errorf("indexer: encode index: %w", err)
	}
	data = append(data, '\n')

	target := filepath.Join(contentDir, IndexFileName)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("indexer: write %s: %w", target, err)
	}
	return nil
}

func readEntry(contentDir, name string) (IndexEntry, error) {
	data, err := os.ReadFile(filepath.Join(contentDir, name))
	if err != nil {
		return IndexEntry{}, err
	}

	var entry IndexEntry
	if _, err := frontmatter.Parse(bytes.NewReader(data), &entry); err != nil {
		return IndexEntry{}, err
	}
	entry.Path = name
	if entry.Slug == "" {
		entry.Slug = slugFromFileName(name)
	}
	return entry, nil
}

// slugFromFileName recovers the slug part of a YYYY-MM-DD-slug.md name.
func slugFromFileName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.SplitN(base, "-", 4)
	if len(parts) == 4 {
		return parts[3]
	}
	return base
}
