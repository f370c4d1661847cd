package prompts

import "fmt"

// Topic analysis steps: legal domains and affected sectors.

var (
	LegalDomainsStep = Step{
		System:    "You are a legal domain identification expert.",
		MaxTokens: 300,
		DocChars:  1500,
	}
	AffectedSectorsStep = Step{
		System:    "You are a business sector impact analyst.",
		MaxTokens: 300,
		DocChars:  1500,
	}
)

const legalDomainsTemplate = `Identify primary legal domains covered:

TEXT: %s

Return JSON:
{
    "legal_domains": ["Data Protection", "Competition Law", "Financial Services", etc.],
    "domain_relevance_scores": {domain: 0.0 to 1.0},
    "primary_domain": "main domain"
}`

// LegalDomains builds the legal-domain identification prompt.
func LegalDomains(documentText string) string {
	return fmt.Sprintf(legalDomainsTemplate, Truncate(documentText, LegalDomainsStep.DocChars))
}

const affectedSectorsTemplate = `Identify business sectors affected by this document:

TEXT: %s

Return JSON:
{
    "affected_sectors": ["sector names"],
    "impact_level_per_sector": {sector: "High|Medium|Low"},
    "sector_confidence": 0.0 to 1.0
}`

// AffectedSectors builds the affected-sectors prompt.
func AffectedSectors(documentText string) string {
	return fmt.Sprintf(affectedSectorsTemplate, Truncate(documentText, AffectedSectorsStep.DocChars))
}
