// Copyright Media Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"os"

	docx "github.com/fumiama/go-docx"

	"github.com/mediaintel/whitepaper-engine/pkg/types"
)

// tableWidth is the total table width in twips (~5.6 inches).
const tableWidth = 8100

// Docx renders a Document as a styled Word document.
type Docx struct{}

// Ext returns ".docx".
func (Docx) Ext() string { return ".docx" }

// Render serializes the whole document in memory and only then writes the
// output file, so a library failure never leaves a partial file. Library
// panics and serialization failures are reported wrapped in ErrUnavailable;
// the caller decides whether to fall back to Markdown.
func (Docx) Render(doc *types.Document, path string) error {
	data, err := serialize(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// serialize builds the OOXML byte stream without touching the filesystem.
func serialize(doc *types.Document) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("%w: %v", ErrUnavailable, r)
		}
	}()

	w := docx.New().WithDefaultTheme()
	for _, block := range doc.Blocks {
		addBlock(w, block)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: writing document: %v", ErrUnavailable, err)
	}
	return buf.Bytes(), nil
}

func addBlock(w *docx.Docx, block types.ContentBlock) {
	switch block.Kind {
	case types.BlockHeading:
		addHeading(w, block.Level, block.Text)
	case types.BlockParagraph:
		w.AddParagraph().AddText(block.Text)
	case types.BlockBulletList:
		for _, item := range block.Items {
			w.AddParagraph().AddText("• " + item)
		}
	case types.BlockTable:
		addTable(w, block.Headers, block.Rows)
	case types.BlockMetric:
		p := w.AddParagraph()
		p.AddText(block.Label + ": ").Bold()
		p.AddText(block.Value)
	}
}

// addHeading emulates the Word heading styles with explicit run sizes
// (half-points). The document title is centered.
func addHeading(w *docx.Docx, level int, text string) {
	p := w.AddParagraph()
	size := "26"
	switch level {
	case 1:
		p.Justification("center")
		size = "40"
	case 2:
		size = "32"
	}
	p.AddText(text).Size(size).Bold()
}

func addTable(w *docx.Docx, headers []string, rows [][]string) {
	tbl := w.AddTable(len(rows)+1, len(headers), tableWidth, nil)
	for col, header := range headers {
		tbl.TableRows[0].TableCells[col].AddParagraph().AddText(header).Bold()
	}
	for i, row := range rows {
		for col, cell := range row {
			if col < len(headers) {
				tbl.TableRows[i+1].TableCells[col].AddParagraph().AddText(cell)
			}
		}
	}
}
