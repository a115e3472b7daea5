package htmltomarkdown_test

import (
	"testing"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements pagemark.Converter at compile time.
var _ pagemark.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts headings to ATX style", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "### Section")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Visit <a href="https://example.com">Example</a> for more info.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("converts unordered lists with dash markers", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>First</li><li>Second</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
	})

	t.Run("converts horizontal rules to ---", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>above</p><hr><p>below</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "---")
	})

	t.Run("converts code blocks to fenced style", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<pre><code>func main() {}</code></pre>`)

		require.NoError(t, err)
		assert.Contains(t, md, "```")
		assert.Contains(t, md, "func main() {}")
	})

	t.Run("drops script style and noscript content", func(t *testing.T) {
		t.Parallel()

		html := `<p>keep</p><script>alert("drop me")</script><style>.x{color:red}</style><noscript>enable js</noscript>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "keep")
		assert.NotContains(t, md, "drop me")
		assert.NotContains(t, md, "color:red")
		assert.NotContains(t, md, "enable js")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})
}
