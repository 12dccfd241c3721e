package normalize

import (
	"strings"
	"testing"
)

const sampleDoc = `---
title: "My Post"
date: 2024-05-01
slug: my-post
image: "images/hero.jpg"
draft: false
---

Body with an inline image ![alt](images/inline.png) and a link.
`

func TestDocumentRewritesFrontmatterImage(t *testing.T) {
	out := Document(sampleDoc)

	if !strings.Contains(out, `image: "/static/uploads/news/images/hero.jpg"`) {
		t.Fatalf("frontmatter image not rewritten:\n%s", out)
	}
	if !strings.Contains(out, "![alt](/static/uploads/news/images/inline.png)") {
		t.Fatalf("inline image not rewritten:\n%s", out)
	}
}

func TestDocumentInjectsHeroBelowImage(t *testing.T) {
	out := Document(sampleDoc)

	idx := strings.Index(out, `image: "/static/uploads/news/images/hero.jpg"`)
	if idx < 0 {
		t.Fatalf("image line missing:\n%s", out)
	}
	rest := out[idx:]
	lines := strings.SplitN(rest, "\n", 3)
	if len(lines) < 2 || lines[1] != `hero: "/static/uploads/news/images/hero.jpg"` {
		t.Fatalf("hero not injected directly below image, got %q", lines[1])
	}
}

func TestDocumentKeepsExistingHero(t *testing.T) {
	doc := `---
title: T
image: "/static/uploads/news/2024/05/a.jpg"
hero: "/static/uploads/news/2024/05/b.jpg"
---

Body.
`
	out := Document(doc)
	if strings.Count(out, "hero:") != 1 {
		t.Fatalf("hero duplicated:\n%s", out)
	}
	if !strings.Contains(out, `hero: "/static/uploads/news/2024/05/b.jpg"`) {
		t.Fatalf("existing hero value changed:\n%s", out)
	}
}

func TestDocumentLeavesExternalReferences(t *testing.T) {
	doc := `---
title: T
image: "https://cdn.example.com/pic.jpg"
---

![remote](https://example.com/a.png) and ![data](data:image/png;base64,abc)
`
	out := Document(doc)
	if !strings.Contains(out, `image: "https://cdn.example.com/pic.jpg"`) {
		t.Fatalf("external frontmatter image mangled:\n%s", out)
	}
	if !strings.Contains(out, "![remote](https://example.com/a.png)") {
		t.Fatalf("external inline image mangled:\n%s", out)
	}
	if !strings.Contains(out, "![data](data:image/png;base64,abc)") {
		t.Fatalf("data URL mangled:\n%s", out)
	}
	if strings.Contains(out, "hero:") {
		t.Fatalf("hero should not be synthesized for external images:\n%s", out)
	}
}

func TestDocumentWithoutImageUnchanged(t *testing.T) {
	doc := `---
title: Plain
date: 2024-05-01
---

No images here.
`
	if out := Document(doc); out != doc {
		t.Fatalf("document without images should be unchanged:\n%s", out)
	}
}

func TestDocumentIdempotent(t *testing.T) {
	once := Document(sampleDoc)
	if twice := Document(once); twice != once {
		t.Fatalf("Document not idempotent:\n--- once ---\n%s\n--- twice ---\n%s", once, twice)
	}
}

func TestDocumentPreservesOtherLines(t *testing.T) {
	out := Document(sampleDoc)
	for _, line := range []string{`title: "My Post"`, "date: 2024-05-01", "slug: my-post", "draft: false"} {
		if !strings.Contains(out, line) {
			t.Fatalf("line %q not preserved:\n%s", line, out)
		}
	}
}
