package analyzer

import (
	"context"
	"fmt"

	"lexwatch-backend/internal/analyzer/prompts"
)

// structureConfidence is a fixed placeholder; the structure pipeline has no
// model-derived confidence to report yet.
const structureConfidence = 0.8

// ExtractDocumentStructure detects structural sections and, when the document
// is structured, extracts its articles.
func (a *Analyzer) ExtractDocumentStructure(ctx context.Context, documentText string) StructureResult {
	key := cacheKey(KindStructure, documentText)
	if val, ok := a.lookup(key); ok {
		if result, ok := val.(StructureResult); ok {
			return result
		}
	}

	var detected sectionDetectionResponse
	if err := a.step(ctx, prompts.SectionDetectionStep, prompts.SectionDetection(documentText), &detected); err != nil {
		return StructureResult{Sections: []Section{}, ConfidenceScore: 0.0, Error: err.Error()}
	}

	var articles articleExtractionResponse
	if detected.HasStructuredFormat {
		if err := a.step(ctx, prompts.ArticleExtractionStep, prompts.ArticleExtraction(documentText), &articles); err != nil {
			return StructureResult{Sections: []Section{}, ConfidenceScore: 0.0, Error: err.Error()}
		}
	}

	sections := make([]Section, 0, len(detected.SectionsFound))
	hasAnnexes := false
	for _, s := range detected.SectionsFound {
		sections = append(sections, Section{
			Type:    s.Type,
			Number:  s.Identifier,
			Heading: fmt.Sprintf("%s %s", s.Type, s.Identifier),
			Summary: "",
		})
		if s.Type == "Annex" {
			hasAnnexes = true
		}
	}

	result := StructureResult{
		Title:           "Document Structure Analysis",
		Sections:        sections,
		HasArticles:     articles.TotalArticles > 0,
		HasAnnexes:      hasAnnexes,
		TotalSections:   len(sections),
		ConfidenceScore: structureConfidence,
	}

	a.cache.Put(key, result)
	return result
}
