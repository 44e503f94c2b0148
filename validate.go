package pretty

import "fmt"

// Validate checks that d is a tree the engine can render: every child is
// present, every node has exactly one parent and no indentation is negative.
// Trees built with the New* constructors satisfy the first and last
// conditions by construction.
func Validate(d Doc) error {
	if isNil(d) {
		return fmt.Errorf("root: %w", ErrNilDoc)
	}
	seen := make(map[Doc]bool)
	stack := []Doc{d}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen[n] {
			return fmt.Errorf("%T: %w", n, ErrSharedNode)
		}
		seen[n] = true

		switch n := n.(type) {
		case *Indent:
			if n.Level < 0 {
				return fmt.Errorf("indent level %d: %w", n.Level, ErrNegativeIndent)
			}
		case *Break:
			if n.Indent < 0 {
				return fmt.Errorf("break indent %d: %w", n.Indent, ErrNegativeIndent)
			}
		}

		for _, c := range Children(n) {
			if isNil(c) {
				return fmt.Errorf("child of %T: %w", n, ErrNilDoc)
			}
			stack = append(stack, c)
		}
	}
	return nil
}
