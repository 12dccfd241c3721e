package normalize

import "testing"

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Café Dance!! 2024", "cafe-dance-2024"},
		{"Hello, World", "hello-world"},
		{"  --Already--Sluggy--  ", "already-sluggy"},
		{"ÀÉÎÕÜ", "aeiou"},
		{"Встреча", "post"},
		{"", "post"},
		{"!!!", "post"},
		{"summer_fest 2025", "summer-fest-2025"},
	}
	for _, tc := range cases {
		if got := Slug(tc.in); got != tc.want {
			t.Fatalf("Slug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugIdempotent(t *testing.T) {
	inputs := []string{"Café Dance!! 2024", "Plain title", "", "x"}
	for _, in := range inputs {
		once := Slug(in)
		if twice := Slug(once); twice != once {
			t.Fatalf("Slug not idempotent on %q: %q != %q", in, once, twice)
		}
	}
}

func TestSlugNeverEmpty(t *testing.T) {
	for _, in := range []string{"", "-", "--", "!@#$%", "   "} {
		if got := Slug(in); got == "" {
			t.Fatalf("Slug(%q) returned empty string", in)
		}
	}
}
