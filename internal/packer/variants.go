package packer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Variant describes one presentation of the post form as data: which fields
// it exposes, which of those are required beyond the base rules, and what it
// pre-fills. The historical per-persona form duplication collapses into this
// lookup.
type Variant struct {
	Name     string            `yaml:"name"`
	Fields   []string          `yaml:"fields"`
	Required []string          `yaml:"required"`
	Defaults map[string]string `yaml:"defaults"`
}

// BuiltinVariants are the recognized presentations, from the minimal
// headline-and-body form up to the full field set.
func BuiltinVariants() map[string]Variant {
	return map[string]Variant{
		"simple": {
			Name:   "simple",
			Fields: []string{"title", "date", "body"},
		},
		"standard": {
			Name:     "standard",
			Fields:   []string{"title", "date", "slug", "summary", "tags", "image", "imageAlt", "body"},
			Required: []string{"summary"},
		},
		"advanced": {
			Name:     "advanced",
			Fields:   []string{"title", "date", "slug", "author", "summary", "tags", "image", "imageAlt", "draft", "datetime", "body"},
			Defaults: map[string]string{"author": "newsroom"},
		},
	}
}

// LoadVariants reads additional variants from a YAML file, overlaying the
// built-ins. The file holds a list of Variant documents.
func LoadVariants(path string) (map[string]Variant, error) {
	variants := BuiltinVariants()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("packer: read variants file %s: %w", path, err)
	}

	var loaded []Variant
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("packer: parse variants file %s: %w", path, err)
	}
	for _, variant := range loaded {
		if variant.Name == "" {
			return nil, fmt.Errorf("packer: variants file %s contains an unnamed variant", path)
		}
		variants[variant.Name] = variant
	}
	return variants, nil
}

// Apply trims input down to the variant's field set and fills its defaults
// for fields left empty. Title, date and body always pass through.
func (v Variant) Apply(input PostInput) (PostInput, error) {
	allowed := map[string]bool{"title": true, "date": true, "body": true}
	for _, field := range v.Fields {
		allowed[field] = true
	}

	if !allowed["slug"] {
		input.Slug = ""
	}
	if !allowed["author"] {
		input.Author = ""
	}
	if !allowed["summary"] {
		input.Summary = ""
	}
	if !allowed["tags"] {
		input.Tags = nil
	}
	if !allowed["image"] {
		input.ImagePath = ""
	}
	if !allowed["imageAlt"] {
		input.ImageAlt = ""
	}
	if !allowed["draft"] {
		input.Draft = false
	}
	if !allowed["datetime"] {
		input.Datetime = ""
	}

	for field, value := range v.Defaults {
		switch field {
		case "author":
			if input.Author == "" {
				input.Author = value
			}
		case "summary":
			if input.Summary == "" {
				input.Summary = value
			}
		case "imageAlt":
			if input.ImageAlt == "" {
				input.ImageAlt = value
			}
		}
	}

	for _, field := range v.Required {
		if empty, known := fieldEmpty(input, field); known && empty {
			return input, fmt.Errorf("packer: variant %s requires field %s", v.Name, field)
		}
	}
	return input, nil
}

func fieldEmpty(input PostInput, field string) (empty, known bool) {
	switch field {
	case "title":
		return input.Title == "", true
	case "date":
		return input.Date == "", true
	case "slug":
		return input.Slug == "", true
	case "author":
		return input.Author == "", true
	case "summary":
		return input.Summary == "", true
	case "tags":
		return len(input.Tags) == 0, true
	case "image":
		return input.ImagePath == "", true
	case "imageAlt":
		return input.ImageAlt == "", true
	case "datetime":
		return input.Datetime == "", true
	case "body":
		return input.Body == "", true
	}
	return false, false
}
