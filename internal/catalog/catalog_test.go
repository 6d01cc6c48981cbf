// Copyright Media Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mediaintel/whitepaper-engine/pkg/types"
)

func TestLoadDefault(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Product == "" {
		t.Error("Product is empty")
	}
	if cat.Footer == "" {
		t.Error("Footer is empty")
	}
	for _, ind := range types.Industries {
		if _, ok := cat.Industries[ind]; !ok {
			t.Errorf("missing industry %q", ind)
		}
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "invalid yaml",
			content: ":::bad\n",
			wantErr: true,
		},
		{
			name:    "valid yaml missing industries",
			content: "product: Test\nfooter: f\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "catalog.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFile(path)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("expected error for missing catalog file")
	}
}

func TestLookupDeterministic(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, ind := range types.Industries {
		for _, dt := range types.DocTypes {
			first, err := cat.Lookup(ind, dt)
			if err != nil {
				t.Fatalf("Lookup(%s, %s): %v", ind, dt, err)
			}
			if len(first) == 0 {
				t.Errorf("Lookup(%s, %s) returned no blocks", ind, dt)
			}
			second, err := cat.Lookup(ind, dt)
			if err != nil {
				t.Fatalf("Lookup(%s, %s) second call: %v", ind, dt, err)
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("Lookup(%s, %s) is not deterministic", ind, dt)
			}
		}
	}
}

func TestLookupUnknownSelection(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		industry  types.Industry
		docType   types.DocType
		wantField string
	}{
		{"unknown industry", "unknown_industry", types.DocTypeBusiness, "industry"},
		{"empty industry", "", types.DocTypePremium, "industry"},
		{"unknown doc type", types.IndustryHealthcare, "glossy", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cat.Lookup(tt.industry, tt.docType)
			var cfgErr *types.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *types.ConfigError, got %v", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestBusinessBlocksContent(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blocks, err := cat.Lookup(types.IndustryHealthcare, types.DocTypeBusiness)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kinds := map[types.BlockKind]int{}
	for _, b := range blocks {
		kinds[b.Kind]++
	}
	for _, kind := range []types.BlockKind{
		types.BlockHeading, types.BlockParagraph, types.BlockBulletList,
		types.BlockTable, types.BlockMetric,
	} {
		if kinds[kind] == 0 {
			t.Errorf("business blocks contain no %s block", kind)
		}
	}

	if blocks[0].Kind != types.BlockHeading || blocks[0].Text != "Executive Summary" {
		t.Errorf("first block = %+v, want Executive Summary heading", blocks[0])
	}
}

func TestStructuredDocBlocks(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, dt := range []types.DocType{types.DocTypePremium, types.DocTypeTechnical} {
		blocks, err := cat.Lookup(types.IndustryGeneralBusiness, dt)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", dt, err)
		}
		hasTable := false
		for _, b := range blocks {
			if b.Kind == types.BlockTable {
				hasTable = true
				for _, row := range b.Rows {
					if len(row) != len(b.Headers) {
						t.Errorf("%s: table row has %d cells, want %d", dt, len(row), len(b.Headers))
					}
				}
			}
		}
		if dt == types.DocTypePremium && !hasTable {
			t.Error("premium document has no table block")
		}
	}
}

func TestFrontMatter(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		industry types.Industry
		docType  types.DocType
		want     string
	}{
		{"healthcare business", types.IndustryHealthcare, types.DocTypeBusiness, cat.Industries[types.IndustryHealthcare].Title},
		{"premium ignores industry", types.IndustryHealthcare, types.DocTypePremium, cat.Premium.Title},
		{"technical ignores industry", types.IndustryMediaBuying, types.DocTypeTechnical, cat.Technical.Title},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, subtitle, err := cat.FrontMatter(tt.industry, tt.docType)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if title != tt.want {
				t.Errorf("title = %q, want %q", title, tt.want)
			}
			if subtitle == "" {
				t.Error("subtitle is empty")
			}
		})
	}
}

func TestSectionValidate(t *testing.T) {
	tests := []struct {
		name    string
		section Section
		wantErr bool
	}{
		{"heading only", Section{Heading: &HeadingSpec{Level: 2, Text: "x"}}, false},
		{"heading level negative", Section{Heading: &HeadingSpec{Level: -1, Text: "x"}}, true},
		{"heading level zero", Section{Heading: &HeadingSpec{Level: 0, Text: "x"}}, true},
		{"heading level too deep", Section{Heading: &HeadingSpec{Level: 7, Text: "x"}}, true},
		{"paragraph only", Section{Paragraph: "x"}, false},
		{"nothing set", Section{}, true},
		{"two fields set", Section{Paragraph: "x", Bullets: []string{"y"}}, true},
		{
			name:    "table with ragged row",
			section: Section{Table: &TableContent{Headers: []string{"a", "b"}, Rows: [][]string{{"1"}}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.section.validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
