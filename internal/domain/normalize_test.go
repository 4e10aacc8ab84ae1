package domain

import (
	"strings"
	"testing"
)

func TestNormalizeFullName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"short is unchanged", "Jane Smith", "Jane Smith"},
		{"exactly fifty", strings.Repeat("a", 50), strings.Repeat("a", 50)},
		{"fifty one is truncated", strings.Repeat("a", 50) + "b", strings.Repeat("a", 50)},
		{"multibyte characters count once", strings.Repeat("ж", 55), strings.Repeat("ж", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeFullName(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeFullName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDescription(t *testing.T) {
	sixty := strings.Repeat("0123456789", 6)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty is all spaces", "", strings.Repeat(" ", 50)},
		{"short is padded", "colleague", "colleague" + strings.Repeat(" ", 41)},
		{"sixty is truncated", sixty, sixty[:50]},
		{"multibyte padded by characters", "друг", "друг" + strings.Repeat(" ", 46)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDescription(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeDescription(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if n := CharCount(got); n != MaxFieldLength {
				t.Errorf("NormalizeDescription(%q) has %d characters, want %d", tt.input, n, MaxFieldLength)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 0); got != "" {
		t.Errorf("Truncate(hello, 0) = %q, want empty", got)
	}
	if got := Truncate("hello", 3); got != "hel" {
		t.Errorf("Truncate(hello, 3) = %q, want hel", got)
	}
	if got := Truncate("héllo", 2); got != "hé" {
		t.Errorf("Truncate(héllo, 2) = %q, want hé", got)
	}
}
