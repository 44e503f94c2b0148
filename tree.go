package pretty

// Clone returns a deep copy of d, including every break mode, indentation
// and group state.
func Clone(d Doc) Doc {
	type slot struct {
		src Doc
		dst *Doc
	}
	var root Doc
	stack := []slot{{src: d, dst: &root}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if isNil(s.src) {
			continue
		}

		switch n := s.src.(type) {
		case *Text:
			*s.dst = &Text{Text: n.Text}
		case *Break:
			*s.dst = &Break{Mode: n.Mode, Indent: n.Indent, Hard: n.Hard}
		case *Concat:
			c := &Concat{}
			*s.dst = c
			stack = append(stack, slot{n.Right, &c.Right}, slot{n.Left, &c.Left})
		case *Indent:
			c := &Indent{Level: n.Level}
			*s.dst = c
			stack = append(stack, slot{n.Doc, &c.Doc})
		case *Group:
			c := &Group{State: n.State}
			*s.dst = c
			stack = append(stack, slot{n.Doc, &c.Doc})
		}
	}
	return root
}

// Reset returns every break in d to Space mode with no indentation and every
// group to Unbroken, undoing earlier fitting passes. Hard breaks go back to
// Newline mode.
func Reset(d Doc) {
	Visit(d, func(Doc) bool { return true }, func(n Doc) {
		switch n := n.(type) {
		case *Break:
			n.Mode = Space
			if n.Hard {
				n.Mode = Newline
			}
			n.Indent = 0
		case *Group:
			n.State = Unbroken
		}
	}, nil)
}
