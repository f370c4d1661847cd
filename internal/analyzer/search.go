package analyzer

import (
	"context"
	"fmt"
	"strings"

	"lexwatch-backend/internal/analyzer/prompts"
)

// RelevanceThreshold is the score a document must exceed before the excerpt
// step runs and before it counts as relevant.
const RelevanceThreshold = 0.3

// searchKeyPrefixChars bounds the document prefix folded into query-scoped
// cache keys.
const searchKeyPrefixChars = 500

// AIPoweredSearch scores a document's relevance to a free-text query using a
// three-step pipeline: semantic matching, relevance scoring over the matched
// concepts, and excerpt extraction when the score clears the threshold.
func (a *Analyzer) AIPoweredSearch(ctx context.Context, documentText, searchQuery string) SearchResult {
	key := cacheKey(KindSearch, prompts.Truncate(documentText, searchKeyPrefixChars)+"_"+searchQuery)
	if val, ok := a.lookup(key); ok {
		if result, ok := val.(SearchResult); ok {
			return result
		}
	}

	var semantic semanticMatchResponse
	if err := a.step(ctx, prompts.SemanticMatchStep, prompts.SemanticMatch(searchQuery, documentText), &semantic); err != nil {
		return SearchResult{Error: err.Error()}
	}
	semantic.normalize()

	var relevance relevanceScoringResponse
	concepts := strings.Join(semantic.MatchedConcepts, ", ")
	if err := a.step(ctx, prompts.RelevanceScoringStep, prompts.RelevanceScoring(searchQuery, concepts), &relevance); err != nil {
		return SearchResult{Error: err.Error()}
	}
	relevance.normalize()

	var excerpts excerptExtractionResponse
	if relevance.RelevanceScore > RelevanceThreshold {
		if err := a.step(ctx, prompts.ExcerptExtractionStep, prompts.ExcerptExtraction(searchQuery, documentText), &excerpts); err != nil {
			return SearchResult{Error: err.Error()}
		}
		excerpts.normalize()
	}

	result := SearchResult{
		RelevanceScore:   relevance.RelevanceScore,
		IsRelevant:       relevance.RelevanceScore > RelevanceThreshold,
		MatchingConcepts: semantic.MatchedConcepts,
		RelevantExcerpts: excerpts.RelevantExcerpts,
		Explanation:      fmt.Sprintf("%s match for %s", relevance.RelevanceCategory, searchQuery),
		// Confidence tracks the semantic similarity from step 1, not the
		// scored relevance from step 2.
		ConfidenceScore: semantic.SemanticSimilarityScore,
	}

	a.cache.Put(key, result)
	return result
}
