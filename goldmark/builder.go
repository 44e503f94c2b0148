package goldmark

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fwojciec/pretty"
	"github.com/yuin/goldmark/ast"
)

type builder struct {
	source []byte
}

// blocks converts the block children of node, joined by sep. Indent is the
// absolute column continuation lines start at.
func (b *builder) blocks(node ast.Node, indent int, sep func() pretty.Doc) pretty.Doc {
	var docs []pretty.Doc
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if d := b.block(c, indent); d != nil {
			docs = append(docs, d)
		}
	}
	if len(docs) == 0 {
		return pretty.NewText("")
	}
	return join(docs, sep)
}

func (b *builder) block(node ast.Node, indent int) pretty.Doc {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return b.paragraph(n, indent)

	case *ast.Heading:
		words := strings.Fields(b.inline(n))
		return pretty.NewText(strings.Repeat("#", n.Level) + " " + strings.Join(words, " "))

	case *ast.FencedCodeBlock:
		lines := []pretty.Doc{pretty.NewText("```" + string(n.Language(b.source)))}
		lines = append(lines, b.lines(n, "")...)
		lines = append(lines, pretty.NewText("```"))
		return join(lines, hardLine)

	case *ast.CodeBlock, *ast.HTMLBlock:
		prefix := ""
		if _, ok := n.(*ast.CodeBlock); ok {
			prefix = "    "
		}
		lines := b.lines(n, prefix)
		if len(lines) == 0 {
			return nil
		}
		return join(lines, hardLine)

	case *ast.List:
		return b.list(n, indent)

	case *ast.Blockquote:
		return b.blockquote(n, indent)

	case *ast.ThematicBreak:
		return pretty.NewText("---")

	default:
		if !node.HasChildren() {
			return nil
		}
		return b.blocks(node, indent, blankLine)
	}
}

func (b *builder) list(node *ast.List, indent int) pretty.Doc {
	sep := hardLine
	if !node.IsTight {
		sep = blankLine
	}
	var items []pretty.Doc
	num := node.Start
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := "- "
		if node.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		inner := indent + len(marker)
		items = append(items, pretty.NewConcat(
			pretty.NewText(marker),
			pretty.NewIndent(inner, b.blocks(item, inner, sep)),
		))
	}
	if len(items) == 0 {
		return nil
	}
	return join(items, sep)
}

// blockquote prefixes every block of the quote with "> " and separates
// blocks with a ">" line, so the quote does not end between them.
// Continuation lines are indented, relying on lazy continuation.
func (b *builder) blockquote(node *ast.Blockquote, indent int) pretty.Doc {
	inner := indent + 2
	var docs []pretty.Doc
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if d := b.block(c, inner); d != nil {
			docs = append(docs, pretty.NewConcat(pretty.NewText("> "), pretty.NewIndent(inner, d)))
		}
	}
	if len(docs) == 0 {
		return pretty.NewText(">")
	}
	return join(docs, quoteLine)
}

// paragraph groups words into sentences and sentences into lines. Hard line
// breaks end a line.
func (b *builder) paragraph(node ast.Node, indent int) pretty.Doc {
	var lines []pretty.Doc
	for _, l := range strings.Split(b.inline(node), "\n") {
		var sentences []pretty.Doc
		for _, s := range splitSentences(strings.Fields(l)) {
			words := make([]pretty.Doc, len(s))
			for i, w := range s {
				words[i] = pretty.NewText(w)
			}
			sentences = append(sentences, group(indent, words))
		}
		if len(sentences) > 0 {
			lines = append(lines, group(indent, sentences))
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return join(lines, hardLine)
}

func (b *builder) lines(node ast.Node, prefix string) []pretty.Doc {
	segs := node.Lines()
	docs := make([]pretty.Doc, 0, segs.Len())
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		line := strings.TrimRight(string(seg.Value(b.source)), "\n")
		docs = append(docs, pretty.NewText(prefix+line))
	}
	return docs
}

// inline collects the plain text of node's inline children. Hard line
// breaks are kept as "\n".
func (b *builder) inline(node ast.Node) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		b.writeInline(c, &buf)
	}
	return buf.String()
}

func (b *builder) writeInline(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(b.source))
		if n.SoftLineBreak() {
			buf.WriteByte(' ')
		}
		if n.HardLineBreak() {
			buf.WriteByte('\n')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.Emphasis:
		marker := strings.Repeat("*", n.Level)
		buf.WriteString(marker + b.inline(n) + marker)

	case *ast.CodeSpan:
		buf.WriteString("`" + b.inline(n) + "`")

	case *ast.Link:
		buf.WriteString(b.inline(n) + " (" + string(n.Destination) + ")")

	case *ast.AutoLink:
		buf.Write(n.URL(b.source))

	case *ast.Image:
		buf.WriteString(b.inline(n) + " (" + string(n.Destination) + ")")

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(b.source))
		}

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			b.writeInline(c, buf)
		}
	}
}

// splitSentences ends a sentence after every word ending in '.', '!' or '?'.
func splitSentences(words []string) [][]string {
	var (
		sentences [][]string
		start     int
	)
	for i, w := range words {
		if strings.HasSuffix(w, ".") || strings.HasSuffix(w, "!") || strings.HasSuffix(w, "?") {
			sentences = append(sentences, words[start:i+1])
			start = i + 1
		}
	}
	if start < len(words) {
		sentences = append(sentences, words[start:])
	}
	return sentences
}

// group joins docs with flexible breaks in a group whose breaks indent to
// indent. A single doc is returned as is.
func group(indent int, docs []pretty.Doc) pretty.Doc {
	if len(docs) == 1 {
		return docs[0]
	}
	var d pretty.Doc = join(docs, lineBreak)
	if indent > 0 {
		d = pretty.NewIndent(indent, d)
	}
	return pretty.NewGroup(d)
}

func join(docs []pretty.Doc, sep func() pretty.Doc) pretty.Doc {
	acc := docs[0]
	for _, d := range docs[1:] {
		acc = pretty.Then(acc, sep(), d)
	}
	return acc
}

func lineBreak() pretty.Doc { return pretty.NewLine() }

func hardLine() pretty.Doc { return pretty.HardLine() }

func quoteLine() pretty.Doc {
	return pretty.Then(pretty.HardLine(), pretty.NewText(">"), pretty.HardLine())
}

// blankLine leaves the empty line unindented.
func blankLine() pretty.Doc {
	return pretty.NewConcat(pretty.NewText("\n"), pretty.HardLine())
}
