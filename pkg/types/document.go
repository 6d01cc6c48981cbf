// Copyright Media Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// BlockKind discriminates the ContentBlock variant.
type BlockKind string

const (
	BlockHeading    BlockKind = "heading"
	BlockParagraph  BlockKind = "paragraph"
	BlockBulletList BlockKind = "bullet_list"
	BlockTable      BlockKind = "table"
	BlockMetric     BlockKind = "metric"
)

// ContentBlock is one semantic unit of document content. Kind selects which
// of the remaining fields are meaningful:
//
//	heading:     Level, Text
//	paragraph:   Text
//	bullet_list: Items
//	table:       Headers, Rows
//	metric:      Label, Value
//
// Blocks are immutable once built; renderers only traverse them.
type ContentBlock struct {
	Kind BlockKind `json:"kind" yaml:"kind"`

	// Level is the heading depth, 1 being the document title.
	Level int `json:"level,omitempty" yaml:"level,omitempty"`

	// Text carries heading and paragraph content.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Items carries bullet list entries in display order.
	Items []string `json:"items,omitempty" yaml:"items,omitempty"`

	// Headers and Rows carry table content. Every row has len(Headers) cells.
	Headers []string   `json:"headers,omitempty" yaml:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitempty" yaml:"rows,omitempty"`

	// Label and Value carry a single highlighted figure.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Heading builds a heading block.
func Heading(level int, text string) ContentBlock {
	return ContentBlock{Kind: BlockHeading, Level: level, Text: text}
}

// Paragraph builds a paragraph block.
func Paragraph(text string) ContentBlock {
	return ContentBlock{Kind: BlockParagraph, Text: text}
}

// BulletList builds a bullet list block.
func BulletList(items ...string) ContentBlock {
	return ContentBlock{Kind: BlockBulletList, Items: items}
}

// Table builds a table block.
func Table(headers []string, rows [][]string) ContentBlock {
	return ContentBlock{Kind: BlockTable, Headers: headers, Rows: rows}
}

// Metric builds a labeled figure block.
func Metric(label, value string) ContentBlock {
	return ContentBlock{Kind: BlockMetric, Label: label, Value: value}
}

// Document is the abstract document tree: an ordered block sequence plus
// metadata. It is built once per run and handed read-only to each renderer.
type Document struct {
	// Title is the document title, also used as the cover heading.
	Title string `json:"title" yaml:"title"`

	// GeneratedAt is the assembly timestamp, used for the publication
	// line and the output filename.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// Blocks is the ordered content sequence.
	Blocks []ContentBlock `json:"blocks" yaml:"blocks"`
}
