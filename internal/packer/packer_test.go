package packer

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validInput() PostInput {
	return PostInput{
		Title: "Spring Festival Opens",
		Date:  "2024-05-01",
		Body:  "The festival opened today.",
	}
}

func fixedClock() func() time.Time {
	stamp := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	return func() time.Time { return stamp }
}

func TestPackProducesMarkdownOnlyBundle(t *testing.T) {
	root := t.TempDir()
	p := New(Config{
		Root:      root,
		IntakeDir: filepath.Join(root, "incoming"),
		Now:       fixedClock(),
	})

	result, err := p.Pack(validInput())
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	wantMd := filepath.Join(root, "content", "news", "2024-05-01-spring-festival-opens.md")
	if result.MarkdownPath != wantMd {
		t.Fatalf("markdown path = %q", result.MarkdownPath)
	}
	if filepath.Base(result.ZipPath) != "news-upload-20240501-123000.zip" {
		t.Fatalf("zip name = %q", filepath.Base(result.ZipPath))
	}

	reader, err := zip.OpenReader(result.ZipPath)
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	defer reader.Close()
	if len(reader.File) != 1 {
		t.Fatalf("expected single member, got %d", len(reader.File))
	}
	if reader.File[0].Name != "content/news/2024-05-01-spring-festival-opens.md" {
		t.Fatalf("member = %q", reader.File[0].Name)
	}
}

func TestPackCopiesImageAndWritesFrontmatterPath(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "photo.jpg")
	if err := os.WriteFile(source, []byte("jpegbytes"), 0o644); err != nil {
		t.Fatalf("write source image: %v", err)
	}

	input := validInput()
	input.ImagePath = source
	input.ImageAlt = "Main square"

	p := New(Config{
		Root:      root,
		IntakeDir: filepath.Join(root, "incoming"),
		Now:       fixedClock(),
	})
	result, err := p.Pack(input)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	wantImage := filepath.Join(root, "static", "uploads", "news", "2024", "05",
		"2024-05-01-spring-festival-opens-main-square.jpg")
	if result.ImagePath != wantImage {
		t.Fatalf("image path = %q", result.ImagePath)
	}

	data, err := os.ReadFile(result.MarkdownPath)
	if err != nil {
		t.Fatalf("read markdown: %v", err)
	}
	want := "image: /static/uploads/news/2024/05/2024-05-01-spring-festival-opens-main-square.jpg"
	if !strings.Contains(string(data), want) {
		t.Fatalf("image line missing:\n%s", data)
	}

	reader, err := zip.OpenReader(result.ZipPath)
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	defer reader.Close()
	if len(reader.File) != 2 {
		t.Fatalf("expected two members, got %d", len(reader.File))
	}
}

func TestPackRejectsInvalidInput(t *testing.T) {
	p := New(Config{Root: t.TempDir(), IntakeDir: t.TempDir()})

	cases := []func(*PostInput){
		func(in *PostInput) { in.Title = "" },
		func(in *PostInput) { in.Date = "01-05-2024" },
		func(in *PostInput) { in.Body = "" },
		func(in *PostInput) { in.Slug = "Not A Slug" },
	}
	for i, mutate := range cases {
		input := validInput()
		mutate(&input)
		if _, err := p.Pack(input); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestPackRejectsBadImage(t *testing.T) {
	root := t.TempDir()
	p := New(Config{Root: root, IntakeDir: filepath.Join(root, "incoming")})

	exe := filepath.Join(root, "tool.exe")
	if err := os.WriteFile(exe, []byte("MZ"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	input := validInput()
	input.ImagePath = exe
	if _, err := p.Pack(input); err == nil {
		t.Fatalf("expected extension rejection")
	}

	input.ImagePath = filepath.Join(root, "missing.jpg")
	if _, err := p.Pack(input); err == nil {
		t.Fatalf("expected missing-file rejection")
	}
}

func TestCopyImageSuffixesExistingNames(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "photo.jpg")
	if err := os.WriteFile(source, []byte("jpegbytes"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	uploads := filepath.Join(root, "uploads")

	web1, local1, err := CopyImage(source, uploads, "2024-05-01", "my-post", "hero")
	if err != nil {
		t.Fatalf("first copy: %v", err)
	}
	web2, local2, err := CopyImage(source, uploads, "2024-05-01", "my-post", "hero")
	if err != nil {
		t.Fatalf("second copy: %v", err)
	}

	if filepath.Base(local1) != "2024-05-01-my-post-hero.jpg" {
		t.Fatalf("first name = %q", filepath.Base(local1))
	}
	if filepath.Base(local2) != "2024-05-01-my-post-hero-2.jpg" {
		t.Fatalf("second name = %q", filepath.Base(local2))
	}
	if !strings.HasPrefix(web1, "/static/uploads/news/2024/05/") || !strings.HasPrefix(web2, "/static/uploads/news/2024/05/") {
		t.Fatalf("web paths = %q, %q", web1, web2)
	}
}

func TestFrontmatterQuoting(t *testing.T) {
	cases := map[string]string{
		"plain":            "plain",
		"with: colon":      `"with: colon"`,
		"has \"quotes\"":   `"has \"quotes\""`,
		" leading space":   `" leading space"`,
		"back\\slash: yes": `"back\\slash: yes"`,
		"a#b":              `"a#b"`,
		"a|b":              `"a|b"`,
	}
	for in, want := range cases {
		if got := yamlScalar(in); got != want {
			t.Fatalf("yamlScalar(%q) = %q, want %q", in, got, want)
		}
	}
	if got := yamlScalar(""); got != `""` {
		t.Fatalf("empty scalar = %q", got)
	}
}

func TestFrontmatterFieldOrder(t *testing.T) {
	input := PostInput{
		Title:    "A Title",
		Date:     "2024-05-01",
		Slug:     "a-title",
		Author:   "jane",
		Summary:  "Short summary",
		Tags:     []string{"festival", "music: live"},
		ImageAlt: "alt text",
		Draft:    true,
		Datetime: "2024-05-01T10:00:00Z",
	}
	text := Frontmatter(input, "/static/uploads/news/2024/05/a.jpg")

	wantLines := []string{
		"---",
		"title: A Title",
		"date: 2024-05-01",
		"slug: a-title",
		"author: jane",
		"summary: Short summary",
		`tags: [festival, "music: live"]`,
		"image: /static/uploads/news/2024/05/a.jpg",
		"imageAlt: alt text",
		"draft: true",
		`datetime: "2024-05-01T10:00:00Z"`,
		"---",
	}
	gotLines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(gotLines) != len(wantLines) {
		t.Fatalf("line count = %d, want %d:\n%s", len(gotLines), len(wantLines), text)
	}
	for i := range wantLines {
		if gotLines[i] != wantLines[i] {
			t.Fatalf("line %d = %q, want %q", i, gotLines[i], wantLines[i])
		}
	}
	if !strings.HasSuffix(text, "---\n\n") {
		t.Fatalf("frontmatter must end with a blank line")
	}
}

func TestNormalizeTags(t *testing.T) {
	tags := NormalizeTags("festival, music , festival", []string{"music", " outdoors "})
	want := []string{"festival", "music", "outdoors"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v", tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("tags = %v, want %v", tags, want)
		}
	}
}
