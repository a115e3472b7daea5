package main_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pagemark/pagemark"
	main "github.com/pagemark/pagemark/cmd/pagemark"
	"github.com/pagemark/pagemark/convert"
	"github.com/pagemark/pagemark/markdown"
	"github.com/pagemark/pagemark/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConverter() *convert.Service {
	return &convert.Service{
		Documents: &mock.DocumentExtractor{
			ExtractDocumentFn: func(ctx context.Context, url string) (*pagemark.ArticleContent, error) {
				if url == "https://example.com/broken" {
					return nil, pagemark.Errorf(pagemark.EEXTRACTION, "no article content found")
				}
				return &pagemark.ArticleContent{Title: "An Article", MarkdownBody: "Body."}, nil
			},
		},
		Transcripts: &mock.TranscriptExtractor{
			ExtractTranscriptFn: func(ctx context.Context, videoID string) (*pagemark.Transcript, error) {
				return &pagemark.Transcript{
					Title: "A Talk",
					Items: []pagemark.TranscriptItem{{Text: "hello"}},
				}, nil
			},
		},
		Renderer: markdown.NewRenderer(),
	}
}

func TestConvertCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints one line per conversion", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(nil)
		deps.Converter = testConverter()
		cmd := &main.ConvertCmd{URLs: []string{
			"https://example.com/article",
			"https://youtu.be/abc12345678",
		}}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "completed  https://example.com/article")
		assert.Contains(t, output, `"An Article"`)
		assert.Contains(t, output, "completed  https://youtu.be/abc12345678")
		assert.Contains(t, output, `"A Talk"`)
	})

	t.Run("writes markdown files when output is set", func(t *testing.T) {
		t.Parallel()

		outDir := t.TempDir()
		deps, _, _ := newDeps(nil)
		deps.Converter = testConverter()
		cmd := &main.ConvertCmd{
			URLs:   []string{"https://example.com/article"},
			Output: outDir,
		}

		require.NoError(t, cmd.Run(deps))

		content, err := os.ReadFile(filepath.Join(outDir, "an_article.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), `title: "An Article"`)
	})

	t.Run("reports failures and returns an error", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(nil)
		deps.Converter = testConverter()
		cmd := &main.ConvertCmd{URLs: []string{
			"https://example.com/article",
			"https://example.com/broken",
		}}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 conversions failed")
		assert.Contains(t, stdout.String(), "no article content found")
	})

	t.Run("rejects combined without output", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(nil)
		deps.Converter = testConverter()
		cmd := &main.ConvertCmd{URLs: []string{"https://example.com"}, Combined: "all.md"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})
}
