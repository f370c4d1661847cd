package prompts

import "fmt"

// Metadata steps: reference number, dates, issuing authority, geographic
// scope. Each is independent and never chained.

var (
	ReferenceNumberStep = Step{
		System:    "You are a legal document metadata extractor.",
		MaxTokens: 150,
		DocChars:  1000,
	}
	DateExtractionStep = Step{
		System:    "You are a legal document metadata extractor.",
		MaxTokens: 150,
		DocChars:  1500,
	}
	IssuingAuthorityStep = Step{
		System:    "You are a legal document metadata extractor.",
		MaxTokens: 150,
		DocChars:  1000,
	}
	GeographicScopeStep = Step{
		System:    "You are a legal document metadata extractor.",
		MaxTokens: 200,
		DocChars:  1500,
	}
)

const referenceNumberTemplate = `Extract document reference number if present:

TEXT (first 1000 chars): %s

Return JSON:
{
    "reference_number": "exact reference or null",
    "reference_format": "format type or null",
    "confidence": 0.0 to 1.0
}`

// ReferenceNumber builds the reference-number extraction prompt.
func ReferenceNumber(documentText string) string {
	return fmt.Sprintf(referenceNumberTemplate, Truncate(documentText, ReferenceNumberStep.DocChars))
}

const dateExtractionTemplate = `Extract publication or effective dates:

TEXT: %s

Return JSON:
{
    "publication_date": "YYYY-MM-DD or null",
    "effective_date": "YYYY-MM-DD or null",
    "date_confidence": 0.0 to 1.0
}`

// DateExtraction builds the date extraction prompt.
func DateExtraction(documentText string) string {
	return fmt.Sprintf(dateExtractionTemplate, Truncate(documentText, DateExtractionStep.DocChars))
}

const issuingAuthorityTemplate = `Identify the issuing authority:

TEXT (first 1000 chars): %s

Return JSON:
{
    "issuing_authority": "authority name or Unknown",
    "authority_type": "Commission|Parliament|Council|Other",
    "confidence": 0.0 to 1.0
}`

// IssuingAuthority builds the issuing-authority prompt.
func IssuingAuthority(documentText string) string {
	return fmt.Sprintf(issuingAuthorityTemplate, Truncate(documentText, IssuingAuthorityStep.DocChars))
}

const geographicScopeTemplate = `Determine geographic scope of this document:

TEXT: %s

Return JSON:
{
    "geographic_scope": "EU-wide|Specific Member States|Regional|Unknown",
    "specific_regions": ["if applicable"],
    "scope_confidence": 0.0 to 1.0
}`

// GeographicScope builds the geographic-scope prompt.
func GeographicScope(documentText string) string {
	return fmt.Sprintf(geographicScopeTemplate, Truncate(documentText, GeographicScopeStep.DocChars))
}
