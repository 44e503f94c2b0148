package main

import "github.com/fwojciec/pretty"

// demoDoc builds an arithmetic expression with nested groups and indented
// parentheses.
func demoDoc() pretty.Doc {
	binOp := func(op string) pretty.Doc {
		return pretty.NewConcat(pretty.NewLine(), pretty.NewText(op+" "))
	}
	text := pretty.NewText
	paren := func(inner pretty.Doc) pretty.Doc {
		return pretty.Then(text("("), pretty.NewIndent(4, pretty.NewConcat(pretty.NewLine(), inner)), pretty.NewLine(), text(")"))
	}

	return pretty.NewGroup(pretty.Then(
		text("hello"), binOp("+"),
		pretty.NewGroup(pretty.Then(text("world"), binOp("*"), text("total"))), binOp("+"),
		text("eclipse"), binOp("+"),
		pretty.NewGroup(pretty.Then(text("qwerty"), binOp("*"), text("asdf"), binOp("*"), text("aslasdf"))), binOp("+"),
		pretty.NewGroup(pretty.NewGroup(pretty.Then(
			paren(pretty.Then(
				text("foo"), binOp("*"),
				pretty.NewGroup(paren(pretty.Then(text("bar"), binOp("+"), text("baz")))),
			)),
			binOp("%"), text("qux"),
		))),
	))
}
