package prompts

import "fmt"

// Summarization steps: document type, main purpose, key points. The four
// summary calls (these three plus LegalDomains from topics.go) are
// independent of each other.

var (
	DocumentTypeStep = Step{
		System:    "You are a legal document classifier.",
		MaxTokens: 150,
		DocChars:  500,
	}
	MainPurposeStep = Step{
		System:    "You are a legal document purpose analyst.",
		MaxTokens: 150,
		DocChars:  1500,
	}
	KeyPointsStep = Step{
		System:    "You are a legal key points extractor.",
		MaxTokens: 300,
		DocChars:  2000,
	}
)

const documentTypeTemplate = `Identify the type of this legal document:

TEXT (first 500 chars): %s

Return JSON:
{
    "document_type": "Regulation|Directive|Decision|Communication|Recommendation|Opinion|Other",
    "type_confidence": 0.0 to 1.0
}`

// DocumentType builds the document-type classification prompt.
func DocumentType(documentText string) string {
	return fmt.Sprintf(documentTypeTemplate, Truncate(documentText, DocumentTypeStep.DocChars))
}

const mainPurposeTemplate = `Extract the main purpose of this document in one sentence:

TEXT: %s

Return JSON:
{
    "main_purpose": "One sentence, max 25 words",
    "purpose_clarity": 0.0 to 1.0
}`

// MainPurpose builds the main-purpose extraction prompt.
func MainPurpose(documentText string) string {
	return fmt.Sprintf(mainPurposeTemplate, Truncate(documentText, MainPurposeStep.DocChars))
}

const keyPointsTemplate = `Extract 3 key points from this document:

TEXT: %s

Return JSON:
{
    "key_points": [
        {"point": "max 15 words", "importance": 0.0 to 1.0},
        {"point": "max 15 words", "importance": 0.0 to 1.0},
        {"point": "max 15 words", "importance": 0.0 to 1.0}
    ]
}`

// KeyPoints builds the key-points extraction prompt.
func KeyPoints(documentText string) string {
	return fmt.Sprintf(keyPointsTemplate, Truncate(documentText, KeyPointsStep.DocChars))
}
