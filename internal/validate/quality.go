package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	gtext "github.com/yuin/goldmark/text"
)

const (
	minTitleLength = 3
	minBodyLength  = 10
	minBodyWords   = 50
)

var (
	titlePlaceholders = []string{"test", "asdf", "lorem", "example"}
	bodyPlaceholders  = []string{"test", "lorem ipsum", "placeholder"}
	unbrokenLetters   = regexp.MustCompile(`^\p{L}{15,}$`)
)

var qualityParser = goldmark.New().Parser()

// Content runs advisory quality checks over a markdown document. The
// returned warnings never block an import; they exist to surface sloppy or
// placeholder submissions to an operator. A missing frontmatter delimiter
// short-circuits the remaining checks.
func Content(text string) []string {
	warnings := []string{}

	if !strings.HasPrefix(text, "---") {
		return append(warnings, "missing frontmatter delimiter (---) at top of document")
	}

	var meta struct {
		Title string `yaml:"title"`
	}
	body, err := frontmatter.Parse(strings.NewReader(text), &meta)
	if err != nil {
		return append(warnings, fmt.Sprintf("frontmatter could not be parsed: %v", err))
	}

	warnings = append(warnings, titleWarnings(meta.Title)...)
	warnings = append(warnings, bodyWarnings(body)...)
	return warnings
}

func titleWarnings(title string) []string {
	warnings := []string{}
	trimmed := strings.TrimSpace(title)

	if len([]rune(trimmed)) < minTitleLength {
		warnings = append(warnings, "title is under 3 characters")
	}

	lower := strings.ToLower(trimmed)
	for _, placeholder := range titlePlaceholders {
		if strings.HasPrefix(lower, placeholder) {
			warnings = append(warnings, fmt.Sprintf("title looks like placeholder text (%q)", placeholder))
			break
		}
	}

	if unbrokenLetters.MatchString(trimmed) {
		warnings = append(warnings, "title is an unbroken run of letters with no spaces")
	}

	return warnings
}

func bodyWarnings(body []byte) []string {
	warnings := []string{}
	trimmed := strings.TrimSpace(string(body))

	if len([]rune(trimmed)) < minBodyLength {
		warnings = append(warnings, "body is empty or under 10 characters")
	}
	if len(strings.Fields(trimmed)) < minBodyWords {
		warnings = append(warnings, "body is under 50 words")
	}

	lower := strings.ToLower(trimmed)
	for _, placeholder := range bodyPlaceholders {
		if strings.HasPrefix(lower, placeholder) {
			warnings = append(warnings, fmt.Sprintf("body starts with placeholder text (%q)", placeholder))
			break
		}
	}

	links, images := emptyTargets(body)
	if links > 0 {
		warnings = append(warnings, fmt.Sprintf("%d link(s) with an empty target", links))
	}
	if images > 0 {
		warnings = append(warnings, fmt.Sprintf("%d image(s) with an empty target", images))
	}

	return warnings
}

// emptyTargets walks the markdown AST counting links and images whose
// destination is empty, e.g. [text]() and ![alt]().
func emptyTargets(body []byte) (links, images int) {
	doc := qualityParser.Parse(gtext.NewReader(body), parser.WithContext(parser.NewContext()))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			if len(node.Destination) == 0 {
				links++
			}
		case *ast.Image:
			if len(node.Destination) == 0 {
				images++
			}
		}
		return ast.WalkContinue, nil
	})
	return links, images
}
