// Copyright Media Intelligence Inc., 2026. All rights reserved.

package types

// GeneratorConfig holds settings for a generation run.
type GeneratorConfig struct {
	// Workspace is the root directory for generated output and the run
	// history (default ".").
	Workspace string `json:"workspace" yaml:"workspace"`

	// OutputDir is the directory under Workspace that receives generated
	// documents (default "generated_whitepapers").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Product is the filename prefix for generated documents
	// (default "MIZ_OKI_3.0").
	Product string `json:"product" yaml:"product"`

	// CatalogPath optionally points at an external content catalog file.
	// Empty means the embedded catalog is used.
	CatalogPath string `json:"catalog_path,omitempty" yaml:"catalog_path,omitempty"`

	// DisableHistory turns off run-history recording.
	DisableHistory bool `json:"disable_history,omitempty" yaml:"disable_history,omitempty"`

	// LogLevel sets the logrus level ("debug", "info", "warn", "error").
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}

// HistoryConfig holds settings for the run-history store.
type HistoryConfig struct {
	// HistoryDir is the base directory for the run log
	// (default "<workspace>/.whitepaper_knowledge_graph").
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// MaxResults is the default maximum number of listed runs (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
