// Package json encodes and decodes pretty documents as JSON.
//
// A document is wrapped in a versioned envelope. Every node carries a type
// discriminator:
//
//	{"version": 1, "doc": {"type": "group", "doc": {
//		"type": "concat", "docs": [
//			{"type": "text", "text": "a"},
//			{"type": "line"},
//			{"type": "text", "text": "b"}
//		]
//	}}}
//
// A concat node holds either "left" and "right" or a "docs" list, which is
// folded from the left. Encoding always writes the left spine of a concat as
// a "docs" list, so nesting grows with groups and indents rather than with
// the length of a chain. Break modes and group states are optional on input
// and always written on output, so an encoded document carries its fitting
// state.
package json

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/pretty"
)

// envelope is the v1 wire format for a document.
type envelope struct {
	Version int   `json:"version"`
	Doc     *node `json:"doc"`
}

// node is the JSON representation of a pretty.Doc with a type discriminator.
type node struct {
	Type   string  `json:"type"`
	Text   *string `json:"text,omitempty"`
	Mode   *string `json:"mode,omitempty"`
	Indent *int    `json:"indent,omitempty"`
	Hard   *bool   `json:"hard,omitempty"`
	Left   *node   `json:"left,omitempty"`
	Right  *node   `json:"right,omitempty"`
	Docs   []*node `json:"docs,omitempty"`
	Level  *int    `json:"level,omitempty"`
	Doc    *node   `json:"doc,omitempty"`
	State  *string `json:"state,omitempty"`
}

// MarshalDoc serializes a document to JSON in v1 envelope format. Documents
// that fail pretty.Validate are rejected.
func MarshalDoc(d pretty.Doc) ([]byte, error) {
	if err := pretty.Validate(d); err != nil {
		return nil, err
	}
	n, err := marshalNode(d)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(envelope{Version: 1, Doc: n}, "", "  ")
}

// UnmarshalDoc deserializes a document from JSON in v1 envelope format.
// The decoded tree is checked with pretty.Validate.
func UnmarshalDoc(data []byte) (pretty.Doc, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	if env.Doc == nil {
		return nil, fmt.Errorf("doc: %w", pretty.ErrNilDoc)
	}
	d, err := unmarshalNode(env.Doc)
	if err != nil {
		return nil, fmt.Errorf("doc: %w", err)
	}
	if err := pretty.Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads a document from a JSON file.
func Load(path string) (pretty.Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalDoc(data)
}
