package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporter_WriteResult(t *testing.T) {
	t.Parallel()

	t.Run("writes markdown under a sanitized name", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		e := fs.NewExporter(baseDir)

		result := &pagemark.ConversionResult{
			Markdown: "---\ntitle: \"Breaking News! 100% Real?\"\n---\n\n# Breaking News! 100% Real?\n",
			Title:    "Breaking News! 100% Real?",
		}

		path, err := e.WriteResult(result)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(baseDir, "breaking_news__100__real_.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, result.Markdown, string(content))
	})

	t.Run("creates the base directory", func(t *testing.T) {
		t.Parallel()

		baseDir := filepath.Join(t.TempDir(), "nested", "out")
		e := fs.NewExporter(baseDir)

		_, err := e.WriteResult(&pagemark.ConversionResult{Markdown: "x", Title: "a"})
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(baseDir, "a.md"))
		require.NoError(t, err)
	})

	t.Run("rejects empty results", func(t *testing.T) {
		t.Parallel()

		e := fs.NewExporter(t.TempDir())
		_, err := e.WriteResult(&pagemark.ConversionResult{Title: "empty"})
		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})
}

func TestExporter_WriteCombined(t *testing.T) {
	t.Parallel()

	t.Run("joins documents with a horizontal rule", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		e := fs.NewExporter(baseDir)

		results := []*pagemark.ConversionResult{
			{Markdown: "# One\n", Title: "One"},
			{Markdown: "# Two\n", Title: "Two"},
		}

		path, err := e.WriteCombined("export.md", results)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# One\n\n---\n\n# Two\n", string(content))
	})

	t.Run("skips results without markdown", func(t *testing.T) {
		t.Parallel()

		e := fs.NewExporter(t.TempDir())
		results := []*pagemark.ConversionResult{
			{Markdown: "# One\n", Title: "One"},
			{Title: "failed"},
			{Markdown: "# Three\n", Title: "Three"},
		}

		path, err := e.WriteCombined("export.md", results)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# One\n\n---\n\n# Three\n", string(content))
	})

	t.Run("rejects an empty batch", func(t *testing.T) {
		t.Parallel()

		e := fs.NewExporter(t.TempDir())
		_, err := e.WriteCombined("export.md", nil)
		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})
}
