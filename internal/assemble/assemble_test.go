// Copyright Media Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/mediaintel/whitepaper-engine/internal/catalog"
	"github.com/mediaintel/whitepaper-engine/pkg/types"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	return cat
}

func TestBuildBusiness(t *testing.T) {
	cat := loadCatalog(t)
	spec := types.DocumentSpec{
		Industry: types.IndustryHealthcare,
		DocType:  types.DocTypeBusiness,
		Format:   types.FormatMarkdown,
	}

	doc, err := Build(spec, cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != cat.Industries[types.IndustryHealthcare].Title {
		t.Errorf("Title = %q, want healthcare title", doc.Title)
	}
	if doc.GeneratedAt.IsZero() {
		t.Error("GeneratedAt is zero")
	}

	first := doc.Blocks[0]
	if first.Kind != types.BlockHeading || first.Level != 1 || first.Text != doc.Title {
		t.Errorf("first block = %+v, want level-1 title heading", first)
	}

	wantTexts := []string{"Patent Notice", "Industry Focus: Healthcare", "Contact Information"}
	for _, want := range wantTexts {
		if !containsText(doc.Blocks, want) {
			t.Errorf("document missing %q", want)
		}
	}

	last := doc.Blocks[len(doc.Blocks)-1]
	if last.Kind != types.BlockParagraph || !strings.Contains(last.Text, "All rights reserved") {
		t.Errorf("last block = %+v, want copyright footer", last)
	}
}

func TestBuildPremiumOmitsIndustryLines(t *testing.T) {
	cat := loadCatalog(t)
	spec := types.DocumentSpec{
		Industry: types.IndustryGeneralBusiness,
		DocType:  types.DocTypePremium,
		Format:   types.FormatWord,
	}

	doc, err := Build(spec, cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != cat.Premium.Title {
		t.Errorf("Title = %q, want premium title", doc.Title)
	}
	for _, b := range doc.Blocks {
		if strings.HasPrefix(b.Text, "Industry Focus:") {
			t.Error("premium document carries an industry focus line")
		}
	}
}

func TestBuildInvalidIndustry(t *testing.T) {
	cat := loadCatalog(t)
	spec := types.DocumentSpec{
		Industry: "unknown_industry",
		DocType:  types.DocTypeBusiness,
		Format:   types.FormatMarkdown,
	}

	_, err := Build(spec, cat)
	var cfgErr *types.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *types.ConfigError, got %v", err)
	}
	if cfgErr.Field != "industry" {
		t.Errorf("Field = %q, want %q", cfgErr.Field, "industry")
	}
}

func TestBuildDeterministic(t *testing.T) {
	cat := loadCatalog(t)
	now := time.Date(2025, 7, 11, 10, 30, 0, 0, time.UTC)

	for _, dt := range types.DocTypes {
		spec := types.DocumentSpec{
			Industry: types.IndustryMediaBuying,
			DocType:  dt,
			Format:   types.FormatBoth,
		}
		first, err := buildAt(spec, cat, now)
		if err != nil {
			t.Fatalf("buildAt(%s): %v", dt, err)
		}
		second, err := buildAt(spec, cat, now)
		if err != nil {
			t.Fatalf("buildAt(%s) second call: %v", dt, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("buildAt(%s) is not deterministic", dt)
		}
	}
}

func containsText(blocks []types.ContentBlock, text string) bool {
	for _, b := range blocks {
		if strings.Contains(b.Text, text) {
			return true
		}
	}
	return false
}
