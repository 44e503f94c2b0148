package pretty

// Matcher selects nodes during a traversal.
type Matcher func(Doc) bool

// IsGroup matches *Group nodes.
func IsGroup(d Doc) bool {
	_, ok := d.(*Group)
	return ok
}

// IsBreak matches *Break nodes.
func IsBreak(d Doc) bool {
	_, ok := d.(*Break)
	return ok
}

// Visit walks d in pre-order. Every node satisfying match is passed to action
// before its children are visited. A node satisfying stopAt is not descended
// into, after its action has run. A nil stopAt never stops. Nil children are
// skipped.
//
// Children are visited left to right. The walk keeps its own stack, so deep
// documents do not grow the goroutine stack.
func Visit(d Doc, match Matcher, action func(Doc), stopAt Matcher) {
	stack := []Doc{d}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if isNil(n) {
			continue
		}

		if match(n) {
			action(n)
		}
		if stopAt != nil && stopAt(n) {
			continue
		}
		children := Children(n)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}
