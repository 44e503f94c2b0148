package pretty

import (
	"log/slog"

	"github.com/rivo/uniseg"
)

// Option configures a single RenderToWidth invocation.
type Option func(*fitConfig)

type fitConfig struct {
	onPass  func(Pass)
	logger  *slog.Logger
	measure Measure
}

// WithPassHandler sets a callback that receives each fitting pass.
// If nil or not set, passes are not reported.
func WithPassHandler(h func(Pass)) Option {
	return func(c *fitConfig) {
		c.onPass = h
	}
}

// WithLogger logs every fitting pass at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *fitConfig) {
		c.logger = logger
	}
}

// WithMeasure sets the function used to measure the width of each rendered
// line. The default counts terminal columns per grapheme cluster.
func WithMeasure(m Measure) Option {
	return func(c *fitConfig) {
		if m != nil {
			c.measure = m
		}
	}
}

// RenderToWidth renders d, breaking groups until every line is at most limit
// columns wide.
//
// Each fitting pass renders the tree and, if it is too wide, advances the
// outermost groups on every branch by one state: Unbroken groups become
// Marked; Marked and Broken groups mark the groups directly nested in them,
// turn their own breaks into newlines and become Broken. When a pass changes
// nothing the tree cannot break further and the last text is returned even
// if it is too wide. A non-positive limit therefore breaks everything.
//
// The tree is mutated in place and keeps its state across calls.
func RenderToWidth(d Doc, limit int, opts ...Option) string {
	cfg := fitConfig{measure: uniseg.StringWidth}
	for _, opt := range opts {
		opt(&cfg)
	}
	for n := 1; ; n++ {
		text := Render(d)
		p := Pass{N: n, Limit: limit, Width: measureText(text, cfg.measure)}
		p.Fits = p.Width <= limit
		if !p.Fits {
			p.Advanced = breakOutermost(d)
		}
		cfg.report(p)
		if p.Fits || !p.Advanced {
			return text
		}
	}
}

// Pretty renders a copy of d to limit columns, leaving d untouched.
func Pretty(d Doc, limit int, opts ...Option) string {
	return RenderToWidth(Clone(d), limit, opts...)
}

func (c *fitConfig) report(p Pass) {
	if c.logger != nil {
		c.logger.Debug("fitting pass",
			"pass", p.N,
			"width", p.Width,
			"limit", p.Limit,
			"fits", p.Fits,
			"advanced", p.Advanced,
		)
	}
	if c.onPass != nil {
		c.onPass(p)
	}
}

// breakOutermost runs one breaking pass over d and reports whether any group
// or break changed state.
func breakOutermost(d Doc) bool {
	var (
		advanced bool
		pending  []*Group
	)
	advance := func(n Doc) {
		g := n.(*Group)
		if g.State == Unbroken {
			g.State = Marked
			advanced = true
			return
		}
		pending = append(pending, g)
	}
	toNewline := func(n Doc) {
		b := n.(*Break)
		if b.Mode != Newline {
			b.Mode = Newline
			advanced = true
		}
	}

	Visit(d, IsGroup, advance, IsGroup)
	for len(pending) > 0 {
		g := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		Visit(g.Doc, IsGroup, advance, IsGroup)
		Visit(g.Doc, IsBreak, toNewline, IsGroup)
		if g.State != Broken {
			g.State = Broken
			advanced = true
		}
	}
	return advanced
}
