// Copyright Media Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes the run log to <historyDir>/index/export.yaml. It
// honors the same filters as List.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) error {
	runs, err := s.exportRuns(ctx, opts)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(runs)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.historyDir, indexDir, "export.yaml")
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the run log to <historyDir>/index/export.json.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) error {
	runs, err := s.exportRuns(ctx, opts)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.historyDir, indexDir, "export.json")
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportRuns(ctx context.Context, opts QueryOptions) ([]Run, error) {
	opts.MaxResults = exportLimit
	runs, err := s.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return runs, nil
}
