package goldmark_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/pretty"
	"github.com/fwojciec/pretty/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gm "github.com/yuin/goldmark"
)

func render(src string, width int) string {
	return pretty.RenderToWidth(goldmark.FromMarkdown([]byte(src)), width)
}

func TestFromMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("empty input renders empty text", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", render("", 80))
	})

	t.Run("result is a valid document", func(t *testing.T) {
		t.Parallel()
		d := goldmark.FromMarkdown([]byte("# T\n\nSome text. More text.\n\n- a\n  - b\n\n```\ncode\n```\n"))
		require.NoError(t, pretty.Validate(d))
	})

	t.Run("paragraph that fits stays on one line", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "One two. Three four.", render("One two.\nThree four.", 80))
	})

	t.Run("paragraph breaks between sentences first", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "One two.\nThree four.", render("One two. Three four.", 12))
	})

	t.Run("sentences break between words when still too wide", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "One\ntwo.\nThree\nfour.", render("One two. Three four.", 6))
	})

	t.Run("hard line breaks are kept", func(t *testing.T) {
		t.Parallel()
		src := "line one  \nline two"
		assert.Equal(t, "line one\nline two", render(src, 80))
		assert.Equal(t, "line\none\nline\ntwo", render(src, 5))
	})

	t.Run("blocks are separated by a blank line", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "# Title\n\nBody text.", render("# Title\n\nBody text.", 80))
	})

	t.Run("headings never break", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "## A long heading", render("## A long heading", 4))
	})

	t.Run("inline markup is kept as text", func(t *testing.T) {
		t.Parallel()
		got := render("Use **bold** and `code`, see [docs](http://x).", 80)
		assert.Equal(t, "Use **bold** and `code`, see docs (http://x).", got)
	})

	t.Run("fenced code block is not reflowed", func(t *testing.T) {
		t.Parallel()
		src := "```go\nfmt.Println(1)\n```"
		assert.Equal(t, src, render(src, 5))
	})

	t.Run("indented code block", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "    code line", render("    code line\n", 80))
	})

	t.Run("tight bullet list", func(t *testing.T) {
		t.Parallel()
		src := "- alpha beta\n- gamma"
		assert.Equal(t, "- alpha beta\n- gamma", render(src, 80))
		assert.Equal(t, "- alpha\n  beta\n- gamma", render(src, 8))
	})

	t.Run("loose list keeps blank lines", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "- a\n\n- b", render("- a\n\n- b", 80))
	})

	t.Run("ordered list keeps its start number", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "3. x\n4. y", render("3. x\n4. y", 80))
	})

	t.Run("nested list indents to its marker", func(t *testing.T) {
		t.Parallel()
		src := "- a\n  - b c"
		assert.Equal(t, "- a\n  - b c", render(src, 80))
		assert.Equal(t, "- a\n  - b\n    c", render(src, 6))
	})

	t.Run("block quote", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "> quoted text", render("> quoted text", 80))
		assert.Equal(t, "> quoted\n  text", render("> quoted text", 9))
	})

	t.Run("every block of a quote is quoted", func(t *testing.T) {
		t.Parallel()
		src := "> first para\n>\n> second para"
		assert.Equal(t, src, render(src, 80))

		got := render(src, 8)
		assert.Equal(t, "> first\n  para\n>\n> second\n  para", got)

		var html bytes.Buffer
		require.NoError(t, gm.Convert([]byte(got), &html))
		assert.Equal(t, 1, strings.Count(html.String(), "<blockquote>"))
		assert.True(t, strings.HasSuffix(strings.TrimSpace(html.String()), "</blockquote>"))
	})

	t.Run("empty quote", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, ">", render(">", 80))
	})

	t.Run("thematic break", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\n\n---\n\nb", render("a\n\n---\n\nb", 80))
	})
}
