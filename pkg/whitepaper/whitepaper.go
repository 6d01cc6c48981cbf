// Copyright Media Intelligence Inc., 2026. All rights reserved.

// Package whitepaper orchestrates whitepaper generation: it resolves the
// document spec, assembles the abstract document, renders the requested
// formats, and records the run in the workspace history.
//
// The one resilience behavior lives here: when the rich-document renderer
// reports itself unavailable, the orchestrator logs a warning and falls
// back to Markdown output instead of failing the run.
package whitepaper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mediaintel/whitepaper-engine/internal/assemble"
	"github.com/mediaintel/whitepaper-engine/internal/catalog"
	"github.com/mediaintel/whitepaper-engine/internal/history"
	"github.com/mediaintel/whitepaper-engine/internal/render"
	"github.com/mediaintel/whitepaper-engine/pkg/types"
)

const (
	defaultOutputDir = "generated_whitepapers"
	defaultProduct   = "MIZ_OKI_3.0"
	historyDirName   = ".whitepaper_knowledge_graph"
	timestampLayout  = "20060102_150405"
)

// docTypeLabels maps document types to their filename segment.
var docTypeLabels = map[types.DocType]string{
	types.DocTypeBusiness:  "Whitepaper",
	types.DocTypeTechnical: "Technical_Whitepaper",
	types.DocTypePremium:   "Premium_Whitepaper",
}

// Generator produces whitepaper documents for one workspace. It holds no
// mutable per-run state; each Generate call builds a fresh document.
type Generator struct {
	cfg      types.GeneratorConfig
	catalog  *catalog.Catalog
	markdown render.Renderer
	rich     render.Renderer
	store    *history.Store
	log      *logrus.Logger
}

// NewGenerator builds a Generator from config, applying defaults for unset
// fields and loading the content catalog. The Generator owns its logger;
// cfg.LogLevel never touches the process-wide logrus state. A history store
// that cannot be opened is logged and skipped; it never blocks generation.
func NewGenerator(cfg types.GeneratorConfig) (*Generator, error) {
	if cfg.Workspace == "" {
		cfg.Workspace = "."
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}
	if cfg.Product == "" {
		cfg.Product = defaultProduct
	}

	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:      cfg,
		catalog:  cat,
		markdown: render.Markdown{},
		rich:     render.Docx{},
		log:      logrus.New(),
	}
	if cfg.LogLevel != "" {
		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			g.log.SetLevel(level)
		}
	}

	if !cfg.DisableHistory {
		store, err := history.NewStore(types.HistoryConfig{
			HistoryDir: filepath.Join(cfg.Workspace, historyDirName),
		})
		if err != nil {
			g.log.WithError(err).Warn("run history disabled")
		} else {
			g.store = store
		}
	}
	return g, nil
}

// WithRenderers replaces the renderers. Used by callers that need to
// substitute a renderer implementation.
func (g *Generator) WithRenderers(markdown, rich render.Renderer) *Generator {
	g.markdown = markdown
	g.rich = rich
	return g
}

// WithLogger replaces the logger.
func (g *Generator) WithLogger(log *logrus.Logger) *Generator {
	g.log = log
	return g
}

// Close releases the history store, if open.
func (g *Generator) Close() error {
	if g.store == nil {
		return nil
	}
	return g.store.Close()
}

// Generate runs one generation pass and returns the written file paths in
// render order. Invalid parameters surface as *types.ConfigError before any
// file is written. For format "both" each renderer is attempted
// independently; the returned list holds exactly the succeeders' files.
func (g *Generator) Generate(spec types.DocumentSpec) ([]string, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	doc, err := assemble.Build(spec, g.catalog)
	if err != nil {
		return nil, err
	}

	outDir := filepath.Join(g.cfg.Workspace, g.cfg.OutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := doc.GeneratedAt.Format(timestampLayout)
	wantMarkdown := spec.Format == types.FormatMarkdown || spec.Format == types.FormatBoth
	wantWord := spec.Format == types.FormatWord || spec.Format == types.FormatBoth

	var (
		files      []string
		renderErrs []error
	)

	if wantMarkdown {
		path := filepath.Join(outDir, g.filename(spec, timestamp, g.markdown.Ext()))
		if err := g.markdown.Render(doc, path); err != nil {
			renderErrs = append(renderErrs, err)
		} else {
			files = append(files, path)
			g.log.WithField("path", path).Info("wrote markdown document")
		}
	}

	if wantWord {
		path := filepath.Join(outDir, g.filename(spec, timestamp, g.rich.Ext()))
		switch err := g.rich.Render(doc, path); {
		case err == nil:
			files = append(files, path)
			g.log.WithField("path", path).Info("wrote rich document")
		case errors.Is(err, render.ErrUnavailable) && !wantMarkdown:
			// Fall back to Markdown output for this run.
			g.log.WithError(err).Warn("rich document renderer unavailable, falling back to markdown")
			fallback := filepath.Join(outDir, g.filename(spec, timestamp, g.markdown.Ext()))
			if mdErr := g.markdown.Render(doc, fallback); mdErr != nil {
				renderErrs = append(renderErrs, mdErr)
			} else {
				files = append(files, fallback)
				g.log.WithField("path", fallback).Info("wrote markdown document")
			}
		default:
			renderErrs = append(renderErrs, err)
			if errors.Is(err, render.ErrUnavailable) {
				g.log.WithError(err).Warn("rich document renderer unavailable")
			}
		}
	}

	if len(files) == 0 && len(renderErrs) > 0 {
		return nil, errors.Join(renderErrs...)
	}
	for _, err := range renderErrs {
		g.log.WithError(err).Warn("render failed for one format")
	}

	g.record(spec, doc.GeneratedAt, files)
	return files, nil
}

// record appends the run to the history store. Store failures are logged
// and otherwise ignored; the log is advisory.
func (g *Generator) record(spec types.DocumentSpec, generatedAt time.Time, files []string) {
	if g.store == nil || len(files) == 0 {
		return
	}
	run := history.Run{
		CreatedAt: generatedAt,
		Industry:  spec.Industry,
		DocType:   spec.DocType,
		Format:    spec.Format,
		Files:     files,
	}
	if err := g.store.Record(context.Background(), run); err != nil {
		g.log.WithError(err).Warn("recording run history")
	}
}

// filename follows <Product>_<TypeLabel>[_<industry>]_<timestamp><ext>.
// Only business whitepapers carry the industry segment; premium and
// technical documents are industry-independent.
func (g *Generator) filename(spec types.DocumentSpec, timestamp, ext string) string {
	name := g.cfg.Product + "_" + docTypeLabels[spec.DocType]
	if spec.DocType == types.DocTypeBusiness {
		name += "_" + string(spec.Industry)
	}
	return name + "_" + timestamp + ext
}
