package analyzer

import (
	"context"

	"lexwatch-backend/internal/analyzer/prompts"
)

// summaryTopicsLimit caps how many legal domains the summary surfaces.
const summaryTopicsLimit = 2

// highImportanceThreshold promotes a summary to "High" importance when any
// key point's importance score exceeds it.
const highImportanceThreshold = 0.7

// GenerateAISummary builds a document summary from four independent calls:
// document type, main purpose, key points, and legal domains.
func (a *Analyzer) GenerateAISummary(ctx context.Context, documentText string) SummaryResult {
	key := cacheKey(KindSummary, documentText)
	if val, ok := a.lookup(key); ok {
		if result, ok := val.(SummaryResult); ok {
			return result
		}
	}

	var docType documentTypeResponse
	if err := a.step(ctx, prompts.DocumentTypeStep, prompts.DocumentType(documentText), &docType); err != nil {
		return summaryFailure(err)
	}
	docType.normalize()

	var purpose mainPurposeResponse
	if err := a.step(ctx, prompts.MainPurposeStep, prompts.MainPurpose(documentText), &purpose); err != nil {
		return summaryFailure(err)
	}
	purpose.normalize()

	var points keyPointsResponse
	if err := a.step(ctx, prompts.KeyPointsStep, prompts.KeyPoints(documentText), &points); err != nil {
		return summaryFailure(err)
	}
	points.normalize()

	var domains legalDomainsResponse
	if err := a.step(ctx, prompts.LegalDomainsStep, prompts.LegalDomains(documentText), &domains); err != nil {
		return summaryFailure(err)
	}

	keyPoints := make([]string, 0, len(points.KeyPoints))
	maxImportance := 0.0
	for _, p := range points.KeyPoints {
		keyPoints = append(keyPoints, p.Point)
		if p.Importance > maxImportance {
			maxImportance = p.Importance
		}
	}
	importance := "Medium"
	if maxImportance > highImportanceThreshold {
		importance = "High"
	}

	topics := domains.LegalDomains
	if len(topics) > summaryTopicsLimit {
		topics = topics[:summaryTopicsLimit]
	}

	result := SummaryResult{
		DocumentType:    docType.DocumentType,
		MainPurpose:     purpose.MainPurpose,
		KeyPoints:       keyPoints,
		Importance:      importance,
		Topics:          topics,
		ConfidenceScore: minScore(docType.TypeConfidence, purpose.PurposeClarity),
	}

	a.cache.Put(key, result)
	return result
}

func summaryFailure(err error) SummaryResult {
	return SummaryResult{
		MainPurpose:     "Summary generation failed",
		KeyPoints:       []string{"Unable to generate summary"},
		ConfidenceScore: 0.0,
		Error:           err.Error(),
	}
}

func minScore(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
