package portfolio

import (
	"reflect"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"v param not first", "https://www.youtube.com/watch?feature=shared&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"not a video url", "https://example.com/video", ""},
		{"id too short", "https://youtu.be/abc123", ""},
		{"ten char id rejected", "https://www.youtube.com/watch?v=dQw4w9WgXc", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractVideoID(tc.url); got != tc.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestSplitSkills(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "Go, React, SQL", []string{"Go", "React", "SQL"}},
		{"messy whitespace", "  Go ,, React ,  ", []string{"Go", "React"}},
		{"empty", "", nil},
		{"only commas", ",,,", nil},
		{"single", "Go", []string{"Go"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SplitSkills(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitSkills(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeWhatsApp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+1 (555) 000-1234", "15550001234"},
		{"555 123 4567", "5551234567"},
		{"no digits", ""},
	}
	for _, tc := range cases {
		if got := SanitizeWhatsApp(tc.in); got != tc.want {
			t.Errorf("SanitizeWhatsApp(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
