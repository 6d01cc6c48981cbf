// Copyright Media Intelligence Inc., 2026. All rights reserved.

// Package catalog loads the whitepaper content catalog and selects content
// blocks by industry and document type. The catalog is a YAML data asset: a
// default is embedded in the binary, and an external file can override it so
// content edits need no code change. Selection is pure; the same inputs
// always produce the same block sequence.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/mediaintel/whitepaper-engine/pkg/types"
)

//go:embed assets/catalog.yaml
var defaultCatalog []byte

// UseCase pairs a use case title with its description.
type UseCase struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// HeadlineMetric is a single highlighted figure.
type HeadlineMetric struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// TableContent holds a header row and body rows.
type TableContent struct {
	Headers []string   `yaml:"headers"`
	Rows    [][]string `yaml:"rows"`
}

// IndustryContent is the per-industry content set for business whitepapers.
type IndustryContent struct {
	DisplayName            string           `yaml:"display_name"`
	Title                  string           `yaml:"title"`
	Subtitle               string           `yaml:"subtitle"`
	ExecutiveSummary       string           `yaml:"executive_summary"`
	KeyBenefits            []string         `yaml:"key_benefits"`
	ROIMetrics             []string         `yaml:"roi_metrics"`
	HeadlineMetrics        []HeadlineMetric `yaml:"headline_metrics"`
	UseCases               []UseCase        `yaml:"use_cases"`
	TechnologyFeatures     []string         `yaml:"technology_features"`
	CompetitiveAdvantages  []string         `yaml:"competitive_advantages"`
	ImplementationTimeline string           `yaml:"implementation_timeline"`
	TargetAudience         []string         `yaml:"target_audience"`
	Comparison             TableContent     `yaml:"comparison"`
}

// SharedContent holds content common to every business whitepaper.
type SharedContent struct {
	ChallengeIntro          string   `yaml:"challenge_intro"`
	DataExplosion           []string `yaml:"data_explosion"`
	ImplementationNightmare []string `yaml:"implementation_nightmare"`
	SolutionOverview        string   `yaml:"solution_overview"`
	ArchitectureOverview    []string `yaml:"architecture_overview"`
	SecurityCompliance      []string `yaml:"security_compliance"`
	NextSteps               []string `yaml:"next_steps"`
}

// HeadingSpec is the YAML form of a heading section entry.
type HeadingSpec struct {
	Level int    `yaml:"level"`
	Text  string `yaml:"text"`
}

// Section is one entry of a structured document. Exactly one field is set.
type Section struct {
	Heading   *HeadingSpec    `yaml:"heading,omitempty"`
	Paragraph string          `yaml:"paragraph,omitempty"`
	Bullets   []string        `yaml:"bullets,omitempty"`
	Table     *TableContent   `yaml:"table,omitempty"`
	Metric    *HeadlineMetric `yaml:"metric,omitempty"`
}

// StructuredDoc is an industry-independent document (premium, technical)
// stored as an explicit section sequence.
type StructuredDoc struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Sections []Section `yaml:"sections"`
}

// Catalog is the static store of whitepaper content.
type Catalog struct {
	Product      string                             `yaml:"product"`
	Company      string                             `yaml:"company"`
	PatentNotice string                             `yaml:"patent_notice"`
	Contact      string                             `yaml:"contact"`
	Footer       string                             `yaml:"footer"`
	Shared       SharedContent                      `yaml:"shared"`
	Industries   map[types.Industry]IndustryContent `yaml:"industries"`
	Premium      StructuredDoc                      `yaml:"premium"`
	Technical    StructuredDoc                      `yaml:"technical"`
}

// Load parses the embedded default catalog.
func Load() (*Catalog, error) {
	return parse(defaultCatalog)
}

// LoadFile parses an external catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the catalog carries everything document assembly
// needs. It runs once at load time so lookups cannot fail on content gaps.
func (c *Catalog) Validate() error {
	if c.Product == "" {
		return fmt.Errorf("catalog: product is required")
	}
	if c.Footer == "" {
		return fmt.Errorf("catalog: footer is required")
	}
	for _, ind := range types.Industries {
		content, ok := c.Industries[ind]
		if !ok {
			return fmt.Errorf("catalog: missing industry %q", ind)
		}
		if err := content.validate(); err != nil {
			return fmt.Errorf("catalog: industry %q: %w", ind, err)
		}
	}
	if err := c.Premium.validate(); err != nil {
		return fmt.Errorf("catalog: premium: %w", err)
	}
	if err := c.Technical.validate(); err != nil {
		return fmt.Errorf("catalog: technical: %w", err)
	}
	return nil
}

func (ic IndustryContent) validate() error {
	switch {
	case ic.Title == "":
		return fmt.Errorf("title is required")
	case ic.Subtitle == "":
		return fmt.Errorf("subtitle is required")
	case ic.ExecutiveSummary == "":
		return fmt.Errorf("executive_summary is required")
	case len(ic.KeyBenefits) == 0:
		return fmt.Errorf("key_benefits must not be empty")
	case len(ic.ROIMetrics) == 0:
		return fmt.Errorf("roi_metrics must not be empty")
	case ic.ImplementationTimeline == "":
		return fmt.Errorf("implementation_timeline is required")
	}
	return ic.Comparison.validate()
}

func (t TableContent) validate() error {
	if len(t.Headers) == 0 {
		return fmt.Errorf("table headers must not be empty")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return fmt.Errorf("table row %d has %d cells, want %d", i, len(row), len(t.Headers))
		}
	}
	return nil
}

func (d StructuredDoc) validate() error {
	if d.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(d.Sections) == 0 {
		return fmt.Errorf("sections must not be empty")
	}
	for i, s := range d.Sections {
		if err := s.validate(); err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
	}
	return nil
}

func (s Section) validate() error {
	set := 0
	if s.Heading != nil {
		set++
		if s.Heading.Level < 1 || s.Heading.Level > 6 {
			return fmt.Errorf("heading level %d out of range [1, 6]", s.Heading.Level)
		}
	}
	if s.Paragraph != "" {
		set++
	}
	if len(s.Bullets) > 0 {
		set++
	}
	if s.Table != nil {
		set++
		if err := s.Table.validate(); err != nil {
			return err
		}
	}
	if s.Metric != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("exactly one of heading, paragraph, bullets, table, metric must be set")
	}
	return nil
}

// FrontMatter returns the title and subtitle for a document selection.
func (c *Catalog) FrontMatter(industry types.Industry, docType types.DocType) (title, subtitle string, err error) {
	if err := validateSelection(industry, docType, c.Industries); err != nil {
		return "", "", err
	}
	switch docType {
	case types.DocTypePremium:
		return c.Premium.Title, c.Premium.Subtitle, nil
	case types.DocTypeTechnical:
		return c.Technical.Title, c.Technical.Subtitle, nil
	default:
		content := c.Industries[industry]
		return content.Title, content.Subtitle, nil
	}
}

// Lookup returns the ordered content blocks for an industry and document
// type. Premium and technical documents are industry-independent; the
// industry is still validated so an invalid value never silently succeeds.
func (c *Catalog) Lookup(industry types.Industry, docType types.DocType) ([]types.ContentBlock, error) {
	if err := validateSelection(industry, docType, c.Industries); err != nil {
		return nil, err
	}
	switch docType {
	case types.DocTypePremium:
		return c.Premium.blocks(), nil
	case types.DocTypeTechnical:
		return c.Technical.blocks(), nil
	default:
		return c.businessBlocks(c.Industries[industry]), nil
	}
}

func validateSelection(industry types.Industry, docType types.DocType, known map[types.Industry]IndustryContent) error {
	if _, ok := known[industry]; !ok {
		return &types.ConfigError{Field: "industry", Value: string(industry)}
	}
	switch docType {
	case types.DocTypeBusiness, types.DocTypeTechnical, types.DocTypePremium:
		return nil
	default:
		return &types.ConfigError{Field: "type", Value: string(docType)}
	}
}

func (d StructuredDoc) blocks() []types.ContentBlock {
	blocks := make([]types.ContentBlock, 0, len(d.Sections))
	for _, s := range d.Sections {
		switch {
		case s.Heading != nil:
			blocks = append(blocks, types.Heading(s.Heading.Level, s.Heading.Text))
		case s.Paragraph != "":
			blocks = append(blocks, types.Paragraph(s.Paragraph))
		case len(s.Bullets) > 0:
			blocks = append(blocks, types.BulletList(s.Bullets...))
		case s.Table != nil:
			blocks = append(blocks, types.Table(s.Table.Headers, s.Table.Rows))
		case s.Metric != nil:
			blocks = append(blocks, types.Metric(s.Metric.Label, s.Metric.Value))
		}
	}
	return blocks
}

// businessBlocks lays out the business whitepaper body: executive summary,
// challenge, solution, use cases, competitive comparison, implementation and
// ROI, technical specifications, next steps.
func (c *Catalog) businessBlocks(content IndustryContent) []types.ContentBlock {
	var blocks []types.ContentBlock

	blocks = append(blocks,
		types.Heading(2, "Executive Summary"),
		types.Paragraph(content.ExecutiveSummary),
		types.Heading(3, "Key Benefits"),
		types.BulletList(content.KeyBenefits...),
		types.Heading(3, "ROI Metrics"),
		types.BulletList(content.ROIMetrics...),
	)

	blocks = append(blocks,
		types.Heading(2, "The Business Challenge"),
		types.Paragraph(c.Shared.ChallengeIntro),
		types.Heading(3, "Data Explosion vs. Decision Paralysis"),
		types.BulletList(c.Shared.DataExplosion...),
		types.Heading(3, "AI Implementation Nightmare"),
		types.BulletList(c.Shared.ImplementationNightmare...),
	)

	blocks = append(blocks,
		types.Heading(2, fmt.Sprintf("The %s Solution", c.Product)),
		types.Paragraph(c.Shared.SolutionOverview),
		types.Heading(3, "Core Technology Components"),
		types.BulletList(content.TechnologyFeatures...),
	)

	blocks = append(blocks, types.Heading(2, "Use Cases & Applications"))
	for i, uc := range content.UseCases {
		blocks = append(blocks,
			types.Heading(3, fmt.Sprintf("%d. %s", i+1, uc.Title)),
			types.Paragraph(uc.Description),
		)
	}

	blocks = append(blocks,
		types.Heading(2, "Competitive Advantages"),
		types.BulletList(content.CompetitiveAdvantages...),
		types.Heading(3, fmt.Sprintf("Traditional AI vs. %s", c.Product)),
		types.Table(content.Comparison.Headers, content.Comparison.Rows),
	)

	blocks = append(blocks,
		types.Heading(2, "Implementation & ROI"),
		types.Paragraph(fmt.Sprintf("Rapid deployment in %s with zero infrastructure investment.", content.ImplementationTimeline)),
		types.Heading(3, "Financial Impact"),
	)
	for _, m := range content.HeadlineMetrics {
		blocks = append(blocks, types.Metric(m.Label, m.Value))
	}

	blocks = append(blocks,
		types.Heading(2, "Technical Specifications"),
		types.Heading(3, "Architecture Overview"),
		types.BulletList(c.Shared.ArchitectureOverview...),
		types.Heading(3, "Security & Compliance"),
		types.BulletList(c.Shared.SecurityCompliance...),
	)

	blocks = append(blocks,
		types.Heading(2, "Next Steps"),
		types.BulletList(c.Shared.NextSteps...),
	)

	return blocks
}
