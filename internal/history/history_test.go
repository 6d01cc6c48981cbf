// Copyright Media Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mediaintel/whitepaper-engine/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{HistoryDir: t.TempDir()})
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func recordRun(t *testing.T, s *Store, industry types.Industry, docType types.DocType, files ...string) {
	t.Helper()
	err := s.Record(context.Background(), Run{
		CreatedAt: time.Now().UTC(),
		Industry:  industry,
		DocType:   docType,
		Format:    types.FormatMarkdown,
		Files:     files,
	})
	if err != nil {
		t.Fatalf("recording run: %v", err)
	}
}

func TestRecordAndList(t *testing.T) {
	s := newTestStore(t)
	recordRun(t, s, types.IndustryHealthcare, types.DocTypeBusiness, "a.md")
	recordRun(t, s, types.IndustryMediaBuying, types.DocTypeBusiness, "b.md", "b.docx")

	runs, err := s.List(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	// Newest first.
	if runs[0].Industry != types.IndustryMediaBuying {
		t.Errorf("runs[0].Industry = %q, want media_buying", runs[0].Industry)
	}
	if len(runs[0].Files) != 2 {
		t.Errorf("len(runs[0].Files) = %d, want 2", len(runs[0].Files))
	}
	if runs[1].CreatedAt.IsZero() {
		t.Error("CreatedAt was not round-tripped")
	}
}

func TestListFilters(t *testing.T) {
	s := newTestStore(t)
	recordRun(t, s, types.IndustryHealthcare, types.DocTypeBusiness, "a.md")
	recordRun(t, s, types.IndustryHealthcare, types.DocTypeTechnical, "b.md")
	recordRun(t, s, types.IndustryGeneralBusiness, types.DocTypeBusiness, "c.md")

	tests := []struct {
		name string
		opts QueryOptions
		want int
	}{
		{"by industry", QueryOptions{Industry: types.IndustryHealthcare}, 2},
		{"by doc type", QueryOptions{DocType: types.DocTypeTechnical}, 1},
		{"by both", QueryOptions{Industry: types.IndustryHealthcare, DocType: types.DocTypeBusiness}, 1},
		{"no match", QueryOptions{Industry: types.IndustryMediaBuying}, 0},
		{"max results", QueryOptions{MaxResults: 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := s.List(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(runs) != tt.want {
				t.Errorf("len(runs) = %d, want %d", len(runs), tt.want)
			}
		})
	}
}

func TestExport(t *testing.T) {
	s := newTestStore(t)
	recordRun(t, s, types.IndustryHealthcare, types.DocTypeBusiness, "a.md")

	if err := s.ExportYAML(context.Background(), QueryOptions{}); err != nil {
		t.Fatalf("ExportYAML: %v", err)
	}
	if err := s.ExportJSON(context.Background(), QueryOptions{}); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	for _, name := range []string{"export.yaml", "export.json"} {
		path := filepath.Join(s.historyDir, indexDir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing export file %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("export file %s is empty", name)
		}
	}
}
