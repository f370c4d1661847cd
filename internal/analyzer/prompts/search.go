package prompts

import "fmt"

// Search relevance steps: semantic match, relevance scoring, excerpt
// extraction. Excerpt extraction is only issued when the scored relevance
// clears the caller's threshold.

var (
	SemanticMatchStep = Step{
		System:    "You are a legal semantic analysis expert.",
		MaxTokens: 300,
		DocChars:  1500,
	}
	RelevanceScoringStep = Step{
		System:    "You are a legal relevance scoring expert.",
		MaxTokens: 200,
	}
	ExcerptExtractionStep = Step{
		System:    "You are a legal text extraction specialist.",
		MaxTokens: 400,
		DocChars:  2000,
	}
)

const semanticMatchTemplate = `Identify if this document contains concepts semantically related to: "%s"

DOCUMENT EXCERPT:
%s

Return JSON:
{
    "contains_related_concepts": true/false,
    "semantic_similarity_score": 0.0 to 1.0,
    "matched_concepts": ["list of matched concepts"]
}`

// SemanticMatch builds the semantic-match prompt for a query and document excerpt.
func SemanticMatch(searchQuery, documentText string) string {
	return fmt.Sprintf(semanticMatchTemplate, searchQuery, Truncate(documentText, SemanticMatchStep.DocChars))
}

const relevanceScoringTemplate = `Score the relevance of this document to the query: "%s"

CONCEPTS FOUND: %s

Return JSON:
{
    "relevance_score": 0.0 to 1.0,
    "relevance_category": "Direct Match|Related|Tangential|Not Relevant"
}`

// RelevanceScoring builds the relevance-scoring prompt from the concepts the
// semantic-match step found.
func RelevanceScoring(searchQuery, matchedConcepts string) string {
	return fmt.Sprintf(relevanceScoringTemplate, searchQuery, matchedConcepts)
}

const excerptExtractionTemplate = `Extract relevant quotes about "%s" from this text:

TEXT: %s

Return JSON:
{
    "relevant_excerpts": ["up to 3 quotes, max 50 words each"],
    "excerpt_relevance_scores": [0.0 to 1.0 for each]
}`

// ExcerptExtraction builds the excerpt-extraction prompt.
func ExcerptExtraction(searchQuery, documentText string) string {
	return fmt.Sprintf(excerptExtractionTemplate, searchQuery, Truncate(documentText, ExcerptExtractionStep.DocChars))
}
