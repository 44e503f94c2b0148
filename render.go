package pretty

import "strings"

// Render converts d to text using the current break decisions.
//
// Before an Indent renders its child, every Newline break in its scope (not
// inside a nested Group) has its indentation set to the scope's level.
// Rendering the same tree again yields the same text.
func Render(d Doc) string {
	var sb strings.Builder
	stack := []Doc{d}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if isNil(n) {
			continue
		}

		switch n := n.(type) {
		case *Text:
			sb.WriteString(n.Text)
		case *Break:
			if n.Mode == Newline {
				sb.WriteByte('\n')
				sb.WriteString(strings.Repeat(" ", n.Indent))
			} else {
				sb.WriteByte(' ')
			}
		case *Concat:
			stack = append(stack, n.Right, n.Left)
		case *Indent:
			Visit(n.Doc, IsBreak, indentTo(n.Level), IsGroup)
			stack = append(stack, n.Doc)
		case *Group:
			stack = append(stack, n.Doc)
		}
	}
	return sb.String()
}

func indentTo(level int) func(Doc) {
	return func(d Doc) {
		b := d.(*Break)
		if b.Mode == Newline {
			b.Indent = level
		}
	}
}
