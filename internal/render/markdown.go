// Copyright Media Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/mediaintel/whitepaper-engine/pkg/types"
)

// Markdown renders a Document as UTF-8 Markdown text.
type Markdown struct{}

// Ext returns ".md".
func (Markdown) Ext() string { return ".md" }

// Render walks the block sequence in order and writes one Markdown line
// group per block.
func (Markdown) Render(doc *types.Document, path string) error {
	content := Emit(doc)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

// Emit returns the Markdown text for a Document without touching the
// filesystem. Split out so tests and callers can inspect the emission.
func Emit(doc *types.Document) string {
	var b strings.Builder
	for _, block := range doc.Blocks {
		switch block.Kind {
		case types.BlockHeading:
			fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", block.Level), block.Text)
		case types.BlockParagraph:
			fmt.Fprintf(&b, "%s\n\n", block.Text)
		case types.BlockBulletList:
			for _, item := range block.Items {
				fmt.Fprintf(&b, "- %s\n", item)
			}
			b.WriteString("\n")
		case types.BlockTable:
			writeTableRow(&b, block.Headers)
			separator := make([]string, len(block.Headers))
			for i := range separator {
				separator[i] = "---"
			}
			writeTableRow(&b, separator)
			for _, row := range block.Rows {
				writeTableRow(&b, row)
			}
			b.WriteString("\n")
		case types.BlockMetric:
			fmt.Fprintf(&b, "**%s:** %s\n\n", block.Label, block.Value)
		}
	}
	return b.String()
}

func writeTableRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, cell := range cells {
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
