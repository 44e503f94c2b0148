// Command pretty renders documents at one or more width limits.
//
// Usage:
//
//	pretty [flags] [pattern ...]
//
// Each pattern names document files and may use ** to match recursively.
// Files ending in .json are read as encoded documents, files ending in .md or
// .markdown are converted from markdown. With no patterns and no -demo flag,
// a JSON document is read from standard input.
//
// Flags:
//
//	-width string   Comma-separated width limits (default "80,60,24")
//	-east-asian     Measure ambiguous-width characters as two columns
//	-dump           Print the fitted document as JSON after each rendering
//	-demo           Render the built-in expression document
//	-v              Log every fitting pass to stderr
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/pretty"
	"github.com/fwojciec/pretty/fs"
	"github.com/fwojciec/pretty/goldmark"
	prettyjson "github.com/fwojciec/pretty/json"
)

const defaultWidths = "80,60,24"

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pretty: %v\n", err)
		os.Exit(1)
	}
}

type source struct {
	name string
	doc  pretty.Doc
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Parse flags.
	fset := flag.NewFlagSet("pretty", flag.ContinueOnError)
	fset.SetOutput(stderr)
	var (
		widths    = fset.String("width", defaultWidths, "Comma-separated width limits")
		eastAsian = fset.Bool("east-asian", false, "Measure ambiguous-width characters as two columns")
		dump      = fset.Bool("dump", false, "Print the fitted document as JSON after each rendering")
		demo      = fset.Bool("demo", false, "Render the built-in expression document")
		verbose   = fset.Bool("v", false, "Log every fitting pass to stderr")
	)
	if err := fset.Parse(args); err != nil {
		return err
	}

	limits, err := parseWidths(*widths)
	if err != nil {
		return err
	}

	var opts []pretty.Option
	if *eastAsian {
		opts = append(opts, pretty.WithMeasure(pretty.EastAsianWidth))
	}
	if *verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, pretty.WithLogger(logger))
	}

	sources, err := loadSources(fset.Args(), *demo, stdin)
	if err != nil {
		return err
	}

	for _, src := range sources {
		for _, limit := range limits {
			// Fitting mutates the tree; every width starts from the original.
			doc := pretty.Clone(src.doc)
			var last pretty.Pass
			passOpts := append([]pretty.Option{pretty.WithPassHandler(func(p pretty.Pass) {
				last = p
			})}, opts...)
			text := pretty.RenderToWidth(doc, limit, passOpts...)

			fmt.Fprintf(stdout, "== %s limit=%d width=%d passes=%d\n%s\n\n", src.name, limit, last.Width, last.N, text)
			if *dump {
				data, err := prettyjson.MarshalDoc(doc)
				if err != nil {
					return fmt.Errorf("dump %s: %w", src.name, err)
				}
				fmt.Fprintf(stdout, "%s\n\n", data)
			}
		}
	}
	return nil
}

// parseWidths parses a comma-separated list of width limits. Non-positive
// limits are accepted and break every group.
func parseWidths(s string) ([]int, error) {
	var limits []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid width %q: %w", field, err)
		}
		limits = append(limits, n)
	}
	if len(limits) == 0 {
		return nil, errors.New("no width given")
	}
	return limits, nil
}

func loadSources(patterns []string, demo bool, stdin io.Reader) ([]source, error) {
	var sources []source
	if demo {
		sources = append(sources, source{name: "demo", doc: demoDoc()})
	}
	if len(patterns) == 0 {
		if demo {
			return sources, nil
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		doc, err := prettyjson.UnmarshalDoc(data)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return append(sources, source{name: "-", doc: doc}), nil
	}

	paths, err := fs.Glob(patterns...)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		doc, err := loadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		sources = append(sources, source{name: path, doc: doc})
	}
	return sources, nil
}

func loadFile(path string) (pretty.Doc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return prettyjson.Load(path)
	case ".md", ".markdown":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return goldmark.FromMarkdown(data), nil
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}
