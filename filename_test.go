package pagemark_test

import (
	"strings"
	"testing"

	"github.com/pagemark/pagemark"
	"github.com/stretchr/testify/assert"
)

func TestSafeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "replaces punctuation and spaces",
			title: "Breaking News! 100% Real?",
			want:  "breaking_news__100__real_",
		},
		{
			name:  "lowercases",
			title: "Hello World",
			want:  "hello_world",
		},
		{
			name:  "keeps digits",
			title: "Top 10",
			want:  "top_10",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, pagemark.SafeFilename(tt.title))
		})
	}

	t.Run("truncates to 50 characters", func(t *testing.T) {
		t.Parallel()

		got := pagemark.SafeFilename(strings.Repeat("a", 80))
		assert.Len(t, got, 50)
	})
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{65, "01:05"},
		{599.9, "09:59"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7325.4, "02:02:05"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pagemark.FormatTimestamp(tt.seconds), "seconds=%v", tt.seconds)
	}
}
