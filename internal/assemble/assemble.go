// Copyright Media Intelligence Inc., 2026. All rights reserved.

// Package assemble builds the abstract document tree for a generation run.
// It wraps the catalog's content blocks with the standard cover, patent and
// contact boilerplate, and copyright footer.
package assemble

import (
	"fmt"
	"strings"
	"time"

	"github.com/mediaintel/whitepaper-engine/internal/catalog"
	"github.com/mediaintel/whitepaper-engine/pkg/types"
)

// Build produces the Document for a spec. The only error path is an invalid
// industry or document type reported by the catalog. The format field plays
// no role here; one Document serves every renderer.
func Build(spec types.DocumentSpec, cat *catalog.Catalog) (*types.Document, error) {
	return buildAt(spec, cat, time.Now())
}

func buildAt(spec types.DocumentSpec, cat *catalog.Catalog, now time.Time) (*types.Document, error) {
	title, subtitle, err := cat.FrontMatter(spec.Industry, spec.DocType)
	if err != nil {
		return nil, err
	}
	body, err := cat.Lookup(spec.Industry, spec.DocType)
	if err != nil {
		return nil, err
	}

	blocks := cover(spec, cat, title, subtitle, now)
	blocks = append(blocks, body...)
	blocks = append(blocks,
		types.Heading(2, "Contact Information"),
		types.Paragraph(cat.Contact),
		types.Paragraph(cat.Footer),
	)

	return &types.Document{
		Title:       title,
		GeneratedAt: now,
		Blocks:      blocks,
	}, nil
}

// cover builds the title block, publication line, and patent notice.
// Business documents additionally carry the industry focus, target audience,
// and implementation timeline lines.
func cover(spec types.DocumentSpec, cat *catalog.Catalog, title, subtitle string, now time.Time) []types.ContentBlock {
	blocks := []types.ContentBlock{
		types.Heading(1, title),
		types.Heading(2, subtitle),
		types.Paragraph(fmt.Sprintf("Published: %s", now.Format("January 2006"))),
	}

	if spec.DocType == types.DocTypeBusiness {
		content := cat.Industries[spec.Industry]
		blocks = append(blocks,
			types.Paragraph(fmt.Sprintf("Industry Focus: %s", content.DisplayName)),
			types.Paragraph(fmt.Sprintf("Target Audience: %s", strings.Join(content.TargetAudience, ", "))),
			types.Paragraph(fmt.Sprintf("Implementation Timeline: %s", content.ImplementationTimeline)),
		)
	}

	if cat.PatentNotice != "" {
		blocks = append(blocks,
			types.Heading(3, "Patent Notice"),
			types.Paragraph(cat.PatentNotice),
		)
	}
	return blocks
}
