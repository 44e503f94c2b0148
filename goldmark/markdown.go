// Package goldmark builds pretty documents from markdown, using goldmark for
// parsing.
//
// Paragraphs reflow when rendered: a paragraph that does not fit breaks
// between sentences first and inside a sentence only when the sentence
// itself is too wide. Headings and code blocks never break. List items and
// block quotes indent their continuation lines. Every block inside a quote
// starts with "> ", but indented continuation lines stay in the quote only
// through lazy continuation, so a quoted code block does not survive a
// reparse.
package goldmark

import (
	"github.com/fwojciec/pretty"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// FromMarkdown parses markdown source and returns a document for
// pretty.RenderToWidth. Empty source yields an empty text document.
func FromMarkdown(source []byte) pretty.Doc {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	b := &builder{source: source}
	return b.blocks(root, 0, blankLine)
}
