package slug

import (
	"regexp"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Frontend Developer-Google", "frontend-developer-google"},
		{"  C++ / Go Engineer!  ", "c-go-engineer"},
		{"---already---slugged---", "already-slugged"},
		{"ALLCAPS", "allcaps"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMake_Format(t *testing.T) {
	got := Make("Frontend Developer", "Google")

	re := regexp.MustCompile(`^frontend-developer-google-[0-9a-z]{6}$`)
	if !re.MatchString(got) {
		t.Fatalf("unexpected slug format: %q", got)
	}
}

func TestMake_Unique(t *testing.T) {
	a := Make("Frontend Developer", "Google")
	b := Make("Frontend Developer", "Google")
	if a == b {
		t.Fatalf("expected distinct slugs, got %q twice", a)
	}
	if !strings.HasPrefix(a, "frontend-developer-google-") {
		t.Fatalf("unexpected prefix: %q", a)
	}
}

func TestMake_EmptyBase(t *testing.T) {
	got := Make("!!!", "???")
	if len(got) != 6 {
		t.Fatalf("expected bare suffix for empty base, got %q", got)
	}
}
