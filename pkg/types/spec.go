// Copyright Media Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for whitepaper generation:
// the document specification enums, the content block variant, and the
// per-stage configuration structs.
package types

import "fmt"

// Industry selects the industry-specific content set.
type Industry string

const (
	IndustryHealthcare      Industry = "healthcare"
	IndustryMediaBuying     Industry = "media_buying"
	IndustryGeneralBusiness Industry = "general_business"
)

// Industries lists all valid industries in catalog order.
var Industries = []Industry{IndustryHealthcare, IndustryMediaBuying, IndustryGeneralBusiness}

// DocType selects the whitepaper variant.
type DocType string

const (
	DocTypeBusiness  DocType = "business"
	DocTypeTechnical DocType = "technical"
	DocTypePremium   DocType = "premium"
)

// DocTypes lists all valid document types.
var DocTypes = []DocType{DocTypeBusiness, DocTypeTechnical, DocTypePremium}

// Format selects the output format(s) for a generation run.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatWord     Format = "word"
	FormatBoth     Format = "both"
)

// DocumentSpec is the resolved set of parameters driving one generation run.
// It is built once from input parameters and never mutated.
type DocumentSpec struct {
	Industry Industry `json:"industry" yaml:"industry"`
	DocType  DocType  `json:"doc_type" yaml:"doc_type"`
	Format   Format   `json:"format" yaml:"format"`
}

// Validate checks every field against its known values. It returns a
// *ConfigError naming the first invalid field, or nil.
func (s DocumentSpec) Validate() error {
	switch s.Industry {
	case IndustryHealthcare, IndustryMediaBuying, IndustryGeneralBusiness:
	default:
		return &ConfigError{Field: "industry", Value: string(s.Industry)}
	}
	switch s.DocType {
	case DocTypeBusiness, DocTypeTechnical, DocTypePremium:
	default:
		return &ConfigError{Field: "type", Value: string(s.DocType)}
	}
	switch s.Format {
	case FormatMarkdown, FormatWord, FormatBoth:
	default:
		return &ConfigError{Field: "format", Value: string(s.Format)}
	}
	return nil
}

// ConfigError reports an invalid generation parameter. The Field name is
// part of the CLI contract: users see which flag carried the bad value.
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}
