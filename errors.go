package pretty

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed documents. Each wraps ErrInvalidDoc.
var (
	// ErrInvalidDoc indicates a document tree failed validation.
	ErrInvalidDoc = errors.New("invalid document")

	// ErrNilDoc indicates a missing child or root.
	ErrNilDoc = fmt.Errorf("nil document: %w", ErrInvalidDoc)

	// ErrSharedNode indicates a node reachable along more than one path,
	// which includes cycles.
	ErrSharedNode = fmt.Errorf("node reachable twice: %w", ErrInvalidDoc)

	// ErrNegativeIndent indicates a negative Indent level or Break indent.
	ErrNegativeIndent = fmt.Errorf("negative indentation: %w", ErrInvalidDoc)
)
