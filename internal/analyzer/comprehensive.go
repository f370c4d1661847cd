package analyzer

import (
	"context"
	"strings"

	"lexwatch-backend/internal/analyzer/prompts"
)

// minDocumentChars is the smallest trimmed document the comprehensive
// analysis accepts; anything shorter gets the fallback without a backend call.
const minDocumentChars = 50

// ComprehensiveDocumentAnalysis runs the single-call full analysis over the
// document text.
func (a *Analyzer) ComprehensiveDocumentAnalysis(ctx context.Context, documentText string) ComprehensiveResult {
	if len(strings.TrimSpace(documentText)) < minDocumentChars {
		return a.FallbackAnalysis("Document text too short or empty")
	}

	key := cacheKey(KindComprehensive, documentText)
	if val, ok := a.lookup(key); ok {
		if result, ok := val.(ComprehensiveResult); ok {
			return result
		}
	}

	var result ComprehensiveResult
	if err := a.step(ctx, prompts.ComprehensiveStep, prompts.Comprehensive(documentText), &result); err != nil {
		return a.FallbackAnalysis("AI analysis failed: " + err.Error())
	}

	result.DocumentMetadata.ConfidenceScore = clampScore(result.DocumentMetadata.ConfidenceScore)
	result.Summary.ConfidenceScore = clampScore(result.Summary.ConfidenceScore)
	result.LegalAnalysis.ConfidenceScore = clampScore(result.LegalAnalysis.ConfidenceScore)
	result.ComplianceRequirements.ConfidenceScore = clampScore(result.ComplianceRequirements.ConfidenceScore)
	result.RiskIndicators.ConfidenceScore = clampScore(result.RiskIndicators.ConfidenceScore)
	result.OverallConfidence = clampScore(result.OverallConfidence)

	a.cache.Put(key, result)
	return result
}

// FallbackAnalysis builds the deterministic zero-confidence result returned
// whenever the comprehensive analysis cannot proceed or fails.
func (a *Analyzer) FallbackAnalysis(message string) ComprehensiveResult {
	return ComprehensiveResult{
		DocumentMetadata: DocumentMetadata{
			Title:           "Analysis unavailable",
			DocumentType:    "Other",
			ReferenceNumber: NotSpecified,
			PublicationDate: NotSpecified,
			ConfidenceScore: 0.0,
		},
		Summary: SummarySection{
			ExecutiveSummary: message,
			KeyPoints:        []string{"Analysis failed"},
			ConfidenceScore:  0.0,
		},
		OverallConfidence: 0.0,
		Error:             message,
	}
}
