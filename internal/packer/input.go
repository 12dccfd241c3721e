package packer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxImageBytes caps the size of a hero image accepted by the packer.
const MaxImageBytes = 10 << 20

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// PostInput carries everything needed to produce one post bundle. Slug is
// optional and derived from Title when empty; ImagePath points at a local
// source file to be copied into the uploads tree.
type PostInput struct {
	Title     string
	Date      string
	Slug      string
	Author    string
	Summary   string
	Tags      []string
	ImagePath string
	ImageAlt  string
	Draft     bool
	Datetime  string
	Body      string
}

// Validate checks the input before any file is produced.
func (p PostInput) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Date,
			validation.Required,
			validation.Match(dateShape).Error("must be in YYYY-MM-DD format"),
		),
		validation.Field(&p.Slug,
			validation.Match(slugShape).Error("must be lower-hyphen [a-z0-9-]"),
		),
		validation.Field(&p.ImagePath, validation.By(checkImageSource)),
		validation.Field(&p.Body, validation.Required),
	)
}

func checkImageSource(value any) error {
	path, _ := value.(string)
	if path == "" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !allowedImageExts[ext] {
		return fmt.Errorf("unsupported image extension %s", ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("image not found: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("image is a directory: %s", path)
	}
	if info.Size() > MaxImageBytes {
		return fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
	}
	return nil
}

// NormalizeTags merges a comma-separated string and a list into a single
// deduplicated tag slice, preserving first-seen order.
func NormalizeTags(tagsInput string, tagList []string) []string {
	combined := []string{}
	for _, part := range strings.Split(tagsInput, ",") {
		if value := strings.TrimSpace(part); value != "" {
			combined = append(combined, value)
		}
	}
	for _, part := range tagList {
		if value := strings.TrimSpace(part); value != "" {
			combined = append(combined, value)
		}
	}

	seen := map[string]bool{}
	unique := []string{}
	for _, value := range combined {
		if seen[value] {
			continue
		}
		seen[value] = true
		unique = append(unique, value)
	}
	return unique
}
