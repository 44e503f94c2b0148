// Package pretty builds structured text documents from a small algebra of
// combinators and renders them into text that fits a maximum line width.
//
// A document says what content exists and where a line may break:
//
//	doc := pretty.NewGroup(pretty.Then(
//		pretty.NewText("begin"),
//		pretty.NewIndent(4, pretty.Then(pretty.NewLine(), pretty.NewText("stmt;"))),
//		pretty.NewLine(),
//		pretty.NewText("end"),
//	))
//	fmt.Println(pretty.RenderToWidth(doc, 10))
//
// [RenderToWidth] decides which breaks become newlines. It breaks groups
// outside-in, one nesting layer per fitting pass, until the text fits or no
// group is left to break.
//
// Rendering mutates the document in place. Use [Pretty] or [Clone] to render
// one logical document at several widths.
package pretty

// Doc is a sealed interface representing a node of a document tree.
// The unexported marker method prevents external implementations.
// Each node exclusively owns its children.
type Doc interface {
	isDoc()
}

// Text is opaque content rendered verbatim.
type Text struct {
	Text string
}

func (*Text) isDoc() {}

// Break is a flexible line break. It renders as a single space in Space mode
// and as a newline followed by Indent spaces in Newline mode.
type Break struct {
	Mode Mode
	// Indent is assigned by the nearest enclosing Indent scope each time it
	// renders. It is never accumulated.
	Indent int
	// Hard breaks start in Newline mode and return to it on Reset.
	Hard bool
}

func (*Break) isDoc() {}

// Concat renders Left followed by Right.
type Concat struct {
	Left  Doc
	Right Doc
}

func (*Concat) isDoc() {}

// Indent sets the indentation of every newline produced by a Break inside
// Doc, not crossing into a nested Group.
type Indent struct {
	Level int
	Doc   Doc
}

func (*Indent) isDoc() {}

// Group is a scope the fitting driver may break as a unit.
type Group struct {
	Doc   Doc
	State GroupState
}

func (*Group) isDoc() {}

// NewText returns a Text leaf.
func NewText(s string) *Text {
	return &Text{Text: s}
}

// NewLine returns a Break in Space mode.
func NewLine() *Break {
	return &Break{Mode: Space}
}

// HardLine returns a Break that is already in Newline mode. It always renders
// as a newline, whether or not its enclosing group breaks.
func HardLine() *Break {
	return &Break{Mode: Newline, Hard: true}
}

// NewConcat returns a Concat owning a and b. It panics if either is nil.
func NewConcat(a, b Doc) *Concat {
	mustDoc("concat", a)
	mustDoc("concat", b)
	return &Concat{Left: a, Right: b}
}

// Then concatenates a, b and more from left to right. The result leans left,
// which renders identically to any other association of the same documents.
func Then(a, b Doc, more ...Doc) *Concat {
	c := NewConcat(a, b)
	for _, d := range more {
		c = NewConcat(c, d)
	}
	return c
}

// NewIndent returns an Indent scope. It panics if d is nil or level is
// negative.
func NewIndent(level int, d Doc) *Indent {
	if level < 0 {
		panic("pretty: indent: negative level")
	}
	mustDoc("indent", d)
	return &Indent{Level: level, Doc: d}
}

// NewGroup returns an Unbroken Group. It panics if d is nil.
func NewGroup(d Doc) *Group {
	mustDoc("group", d)
	return &Group{Doc: d, State: Unbroken}
}

// Children returns the direct children of d in traversal order.
func Children(d Doc) []Doc {
	switch n := d.(type) {
	case *Concat:
		return []Doc{n.Left, n.Right}
	case *Indent:
		return []Doc{n.Doc}
	case *Group:
		return []Doc{n.Doc}
	default:
		return nil
	}
}

func mustDoc(op string, d Doc) {
	if isNil(d) {
		panic("pretty: " + op + ": nil document")
	}
}

// isNil reports whether d is nil or a typed nil pointer.
func isNil(d Doc) bool {
	switch n := d.(type) {
	case nil:
		return true
	case *Text:
		return n == nil
	case *Break:
		return n == nil
	case *Concat:
		return n == nil
	case *Indent:
		return n == nil
	case *Group:
		return n == nil
	default:
		return false
	}
}
