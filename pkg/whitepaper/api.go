// Copyright Media Intelligence Inc., 2026. All rights reserved.

package whitepaper

import "github.com/mediaintel/whitepaper-engine/pkg/types"

// CreateWhitepaper generates a business whitepaper for an industry in the
// given format, using defaults for everything else. It returns the written
// file paths.
func CreateWhitepaper(industry types.Industry, format types.Format) ([]string, error) {
	return create(types.DocumentSpec{
		Industry: industry,
		DocType:  types.DocTypeBusiness,
		Format:   format,
	})
}

// CreatePremiumWhitepaper generates the premium whitepaper as a Word
// document, falling back to Markdown if the rich renderer is unavailable.
func CreatePremiumWhitepaper() ([]string, error) {
	return create(types.DocumentSpec{
		Industry: types.IndustryGeneralBusiness,
		DocType:  types.DocTypePremium,
		Format:   types.FormatWord,
	})
}

// CreateTechWhitepaper generates the technical whitepaper as a Word
// document, falling back to Markdown if the rich renderer is unavailable.
func CreateTechWhitepaper() ([]string, error) {
	return create(types.DocumentSpec{
		Industry: types.IndustryGeneralBusiness,
		DocType:  types.DocTypeTechnical,
		Format:   types.FormatWord,
	})
}

func create(spec types.DocumentSpec) ([]string, error) {
	g, err := NewGenerator(types.GeneratorConfig{})
	if err != nil {
		return nil, err
	}
	defer g.Close()
	return g.Generate(spec)
}
