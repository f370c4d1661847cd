package prompts

import "fmt"

// Structure steps: section detection, then article extraction when the
// document turned out to be structured.

var (
	SectionDetectionStep = Step{
		System:    "You are a document structure analyst.",
		MaxTokens: 400,
		DocChars:  2000,
	}
	ArticleExtractionStep = Step{
		System:    "You are an article extraction specialist.",
		MaxTokens: 600,
		DocChars:  3000,
	}
)

const sectionDetectionTemplate = `Identify structural sections in this document:

TEXT: %s

Return JSON:
{
    "sections_found": [
        {"type": "Article|Chapter|Section|Annex", "identifier": "number/name"}
    ],
    "has_structured_format": true/false
}`

// SectionDetection builds the section-detection prompt.
func SectionDetection(documentText string) string {
	return fmt.Sprintf(sectionDetectionTemplate, Truncate(documentText, SectionDetectionStep.DocChars))
}

const articleExtractionTemplate = `Extract article information if present:

TEXT: %s

Return JSON:
{
    "articles": [
        {"number": "Article X", "title": "if present", "preview": "first 30 words"}
    ],
    "total_articles": 0
}`

// ArticleExtraction builds the article-extraction prompt.
func ArticleExtraction(documentText string) string {
	return fmt.Sprintf(articleExtractionTemplate, Truncate(documentText, ArticleExtractionStep.DocChars))
}
