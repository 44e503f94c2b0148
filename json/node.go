package json

import (
	"fmt"

	"github.com/fwojciec/pretty"
)

func marshalNode(d pretty.Doc) (*node, error) {
	switch n := d.(type) {
	case *pretty.Text:
		return &node{Type: "text", Text: &n.Text}, nil
	case *pretty.Break:
		mode := n.Mode.String()
		dto := &node{Type: "line", Mode: &mode}
		if n.Indent != 0 {
			dto.Indent = &n.Indent
		}
		if n.Hard {
			dto.Hard = &n.Hard
		}
		return dto, nil
	case *pretty.Concat:
		spine := concatSpine(n)
		docs := make([]*node, len(spine))
		for i, c := range spine {
			dto, err := marshalNode(c)
			if err != nil {
				return nil, fmt.Errorf("docs %d: %w", i, err)
			}
			docs[i] = dto
		}
		return &node{Type: "concat", Docs: docs}, nil
	case *pretty.Indent:
		child, err := marshalNode(n.Doc)
		if err != nil {
			return nil, fmt.Errorf("indent: %w", err)
		}
		return &node{Type: "indent", Level: &n.Level, Doc: child}, nil
	case *pretty.Group:
		child, err := marshalNode(n.Doc)
		if err != nil {
			return nil, fmt.Errorf("group: %w", err)
		}
		state := n.State.String()
		return &node{Type: "group", Doc: child, State: &state}, nil
	default:
		return nil, fmt.Errorf("unknown document type: %T", d)
	}
}

// concatSpine flattens the left spine of c into the operands a left fold
// rebuilds it from, so long Then chains encode without nesting.
func concatSpine(c *pretty.Concat) []pretty.Doc {
	var rights []pretty.Doc
	var cur pretty.Doc = c
	for {
		n, ok := cur.(*pretty.Concat)
		if !ok {
			break
		}
		rights = append(rights, n.Right)
		cur = n.Left
	}
	docs := make([]pretty.Doc, 0, len(rights)+1)
	docs = append(docs, cur)
	for i := len(rights) - 1; i >= 0; i-- {
		docs = append(docs, rights[i])
	}
	return docs
}

func unmarshalNode(dto *node) (pretty.Doc, error) {
	if dto == nil {
		return nil, pretty.ErrNilDoc
	}
	switch dto.Type {
	case "text":
		var text string
		if dto.Text != nil {
			text = *dto.Text
		}
		return pretty.NewText(text), nil
	case "line":
		b := pretty.NewLine()
		if dto.Hard != nil && *dto.Hard {
			b = pretty.HardLine()
		}
		if dto.Mode != nil {
			mode, err := parseMode(*dto.Mode)
			if err != nil {
				return nil, err
			}
			b.Mode = mode
		}
		if dto.Indent != nil {
			b.Indent = *dto.Indent
		}
		return b, nil
	case "concat":
		return unmarshalConcat(dto)
	case "indent":
		if dto.Level == nil {
			return nil, fmt.Errorf("indent: missing level")
		}
		if *dto.Level < 0 {
			return nil, fmt.Errorf("indent level %d: %w", *dto.Level, pretty.ErrNegativeIndent)
		}
		child, err := unmarshalNode(dto.Doc)
		if err != nil {
			return nil, fmt.Errorf("indent: %w", err)
		}
		return pretty.NewIndent(*dto.Level, child), nil
	case "group":
		child, err := unmarshalNode(dto.Doc)
		if err != nil {
			return nil, fmt.Errorf("group: %w", err)
		}
		g := pretty.NewGroup(child)
		if dto.State != nil {
			state, err := parseState(*dto.State)
			if err != nil {
				return nil, err
			}
			g.State = state
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown document type: %q", dto.Type)
	}
}

func unmarshalConcat(dto *node) (pretty.Doc, error) {
	if dto.Docs == nil {
		left, err := unmarshalNode(dto.Left)
		if err != nil {
			return nil, fmt.Errorf("left: %w", err)
		}
		right, err := unmarshalNode(dto.Right)
		if err != nil {
			return nil, fmt.Errorf("right: %w", err)
		}
		return pretty.NewConcat(left, right), nil
	}
	if dto.Left != nil || dto.Right != nil {
		return nil, fmt.Errorf("concat: both docs and left/right given")
	}
	if len(dto.Docs) == 0 {
		return nil, fmt.Errorf("concat: empty docs: %w", pretty.ErrNilDoc)
	}
	var acc pretty.Doc
	for i, c := range dto.Docs {
		d, err := unmarshalNode(c)
		if err != nil {
			return nil, fmt.Errorf("docs %d: %w", i, err)
		}
		if acc == nil {
			acc = d
			continue
		}
		acc = pretty.NewConcat(acc, d)
	}
	return acc, nil
}

func parseMode(s string) (pretty.Mode, error) {
	switch s {
	case "space":
		return pretty.Space, nil
	case "newline":
		return pretty.Newline, nil
	default:
		return 0, fmt.Errorf("unknown break mode: %q", s)
	}
}

func parseState(s string) (pretty.GroupState, error) {
	switch s {
	case "unbroken":
		return pretty.Unbroken, nil
	case "marked":
		return pretty.Marked, nil
	case "broken":
		return pretty.Broken, nil
	default:
		return 0, fmt.Errorf("unknown group state: %q", s)
	}
}
