package etree_test

import (
	"testing"

	"github.com/pagemark/pagemark"
	pmetree "github.com/pagemark/pagemark/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	parser := pmetree.NewParser()

	t.Run("parses standard start/dur attributes", func(t *testing.T) {
		t.Parallel()

		xml := `<transcript>
<text start="0.5" dur="2.25">first segment</text>
<text start="2.75" dur="3">second segment</text>
</transcript>`

		items, err := parser.Parse(xml)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, pagemark.TranscriptItem{Text: "first segment", Start: 0.5, Duration: 2.25}, items[0])
		assert.Equal(t, pagemark.TranscriptItem{Text: "second segment", Start: 2.75, Duration: 3}, items[1])
	})

	t.Run("accepts alternate d duration attribute", func(t *testing.T) {
		t.Parallel()

		xml := `<transcript><text start="1" d="4.5">segment</text></transcript>`

		items, err := parser.Parse(xml)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 4.5, items[0].Duration)
	})

	t.Run("normalizes millisecond p variant to seconds", func(t *testing.T) {
		t.Parallel()

		xml := `<timedtext><body>
<p t="1500" d="2100">ms segment</p>
<p t="3600" d="400">next</p>
</body></timedtext>`

		items, err := parser.Parse(xml)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 1.5, items[0].Start)
		assert.Equal(t, 2.1, items[0].Duration)
		assert.Equal(t, 3.6, items[1].Start)
	})

	t.Run("decodes HTML entities in payload", func(t *testing.T) {
		t.Parallel()

		xml := `<transcript><text start="0" dur="1">it&amp;#39;s &amp;quot;quoted&amp;quot;</text></transcript>`

		items, err := parser.Parse(xml)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, `it's "quoted"`, items[0].Text)
	})

	t.Run("sorts items by start time keeping duplicate order", func(t *testing.T) {
		t.Parallel()

		xml := `<transcript>
<text start="5" dur="1">late</text>
<text start="1" dur="1">early first</text>
<text start="1" dur="1">early second</text>
</transcript>`

		items, err := parser.Parse(xml)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "early first", items[0].Text)
		assert.Equal(t, "early second", items[1].Text)
		assert.Equal(t, "late", items[2].Text)
	})

	t.Run("treats malformed time attributes as zero", func(t *testing.T) {
		t.Parallel()

		xml := `<transcript><text start="abc" dur="xyz">segment</text></transcript>`

		items, err := parser.Parse(xml)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Zero(t, items[0].Start)
		assert.Zero(t, items[0].Duration)
	})

	t.Run("fails with EEXTRACTION on empty payload", func(t *testing.T) {
		t.Parallel()

		_, err := parser.Parse("  ")
		require.Error(t, err)
		assert.Equal(t, pagemark.EEXTRACTION, pagemark.ErrorCode(err))
	})

	t.Run("fails with EEXTRACTION when no text elements exist", func(t *testing.T) {
		t.Parallel()

		_, err := parser.Parse(`<transcript></transcript>`)
		require.Error(t, err)
		assert.Equal(t, pagemark.EEXTRACTION, pagemark.ErrorCode(err))
	})

	t.Run("fails cleanly on truncated XML", func(t *testing.T) {
		t.Parallel()

		_, err := parser.Parse(`<transcript><text start="0" dur="1">cut off`)
		require.Error(t, err)
		assert.Equal(t, pagemark.EEXTRACTION, pagemark.ErrorCode(err))
	})
}
