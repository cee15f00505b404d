package textutil

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Song Title", "my_song_title"},
		{"  Leading & trailing!  ", "leading_trailing"},
		{"already_a_slug", "already_a_slug"},
		{"UPPER-case", "upper_case"},
		{"...", ""},
		{"", ""},
		{"one---two___three", "one_two_three"},
		{"björk", "bj_rk"},
		{"déjà vu", "d_j_vu"},
		{"track٣", "track"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyAfterTransliterate(t *testing.T) {
	got := Slugify(Transliterate("  Über-Löw!! (Remix) "))
	if got != "uber_low_remix" {
		t.Fatalf("got %q, want %q", got, "uber_low_remix")
	}
}

func TestSlugifyCharset(t *testing.T) {
	got := Slugify("Weird!@#$%^&*() input 42 ÷ here")
	for _, r := range got {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
		if !valid {
			t.Fatalf("slug %q contains invalid rune %q", got, r)
		}
	}
	if strings.Contains(got, "__") {
		t.Fatalf("slug %q contains doubled underscore", got)
	}
	if strings.HasPrefix(got, "_") || strings.HasSuffix(got, "_") {
		t.Fatalf("slug %q has edge underscore", got)
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("ab ", 200)
	got := Slugify(long)
	if len([]rune(got)) > SlugMaxLen {
		t.Fatalf("slug length %d exceeds cap %d", len(got), SlugMaxLen)
	}
	if strings.HasSuffix(got, "_") {
		t.Fatalf("truncated slug %q ends with underscore", got)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"My Song Title",
		strings.Repeat("word ", 100),
		"mixed CASE and 123 numbers",
	}
	for _, s := range inputs {
		once := Slugify(s)
		if twice := Slugify(once); twice != once {
			t.Fatalf("Slugify not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestTitleFromPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/a/b/my_song_title.flac", "My Song Title"},
		{"plain.mp3", "Plain"},
		{"/deep/dir/already spaced.ogg", "Already Spaced"},
		{"no_extension", "No Extension"},
		{"/x/double_ext.tar.gz", "Double Ext.tar"},
		{"_leading.wav", "Leading"},
		{"_trailing_.wav", "Trailing"},
	}
	for _, tc := range cases {
		if got := TitleFromPath(tc.in); got != tc.want {
			t.Fatalf("TitleFromPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
