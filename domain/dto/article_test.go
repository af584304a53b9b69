package dto

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"short content unchanged", "hello world", "hello world"},
		{"exactly at limit", strings.Repeat("a", 150), strings.Repeat("a", 150)},
		{"truncated with ellipsis", strings.Repeat("a", 151), strings.Repeat("a", 150) + "..."},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Excerpt(tt.content); got != tt.expected {
				t.Errorf("Excerpt length %d, want %d", len(got), len(tt.expected))
			}
		})
	}

	t.Run("counts runes not bytes", func(t *testing.T) {
		// ตัวอักษรไทยตัวละ 3 bytes ต้องไม่ตัดกลาง rune
		content := strings.Repeat("ก", 200)
		got := Excerpt(content)
		if !utf8.ValidString(got) {
			t.Fatal("excerpt must be valid UTF-8")
		}
		runes := []rune(strings.TrimSuffix(got, "..."))
		if len(runes) != 150 {
			t.Errorf("expected 150 runes got %d", len(runes))
		}
	})
}
