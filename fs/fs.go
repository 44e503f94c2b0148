// Package fs finds the document files a command should render.
package fs

import "errors"

// ErrNoMatch indicates a pattern matched no files.
var ErrNoMatch = errors.New("no matching files")
