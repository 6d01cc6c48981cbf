// Copyright Media Intelligence Inc., 2026. All rights reserved.

// Package render converts the abstract document tree into concrete output
// files. Two renderers share the same traversal contract: Markdown emits
// plain text, Docx emits a styled OOXML document. A failed render leaves no
// file behind for that format.
package render

import (
	"errors"

	"github.com/mediaintel/whitepaper-engine/pkg/types"
)

// ErrUnavailable marks a rich-document renderer failure that the caller may
// recover from by falling back to Markdown output. Errors are wrapped so
// callers test with errors.Is.
var ErrUnavailable = errors.New("rich document renderer unavailable")

// Renderer writes a Document to a file at path, creating or overwriting it.
type Renderer interface {
	Render(doc *types.Document, path string) error

	// Ext is the filename extension including the dot, e.g. ".md".
	Ext() string
}
