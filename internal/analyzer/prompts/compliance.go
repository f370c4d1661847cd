package prompts

import "fmt"

// Compliance steps, escalated per sector: relevance, then requirements when
// relevant, then complexity when requirements were found.

var (
	SectorRelevanceStep = Step{
		System:    "You are a sector relevance analyst.",
		MaxTokens: 200,
		DocChars:  1500,
	}
	ComplianceRequirementsStep = Step{
		System:    "You are a compliance requirements extractor.",
		MaxTokens: 400,
		DocChars:  2000,
	}
	ImplementationComplexityStep = Step{
		System:    "You are an implementation complexity assessor.",
		MaxTokens: 200,
	}
)

const sectorRelevanceTemplate = `Is this document relevant to the %s sector?

TEXT: %s

Return JSON:
{
    "is_relevant": true/false,
    "relevance_indicators": ["specific indicators"],
    "relevance_score": 0.0 to 1.0
}`

// SectorRelevance builds the sector-relevance prompt.
func SectorRelevance(sector, documentText string) string {
	return fmt.Sprintf(sectorRelevanceTemplate, sector, Truncate(documentText, SectorRelevanceStep.DocChars))
}

const complianceRequirementsTemplate = `Extract compliance requirements for %s:

TEXT: %s

Return JSON:
{
    "requirements": ["specific requirements found"],
    "requirement_type": "Mandatory|Recommended|Optional",
    "has_deadlines": true/false
}`

// ComplianceRequirements builds the requirement-extraction prompt.
func ComplianceRequirements(sector, documentText string) string {
	return fmt.Sprintf(complianceRequirementsTemplate, sector, Truncate(documentText, ComplianceRequirementsStep.DocChars))
}

const implementationComplexityTemplate = `Assess implementation complexity for %s:

REQUIREMENTS: %s

Return JSON:
{
    "complexity_level": "High|Medium|Low",
    "complexity_factors": ["factors contributing to complexity"],
    "estimated_effort": "Major|Moderate|Minor"
}`

// ImplementationComplexity builds the complexity-assessment prompt from the
// extracted requirements.
func ImplementationComplexity(sector, requirements string) string {
	return fmt.Sprintf(implementationComplexityTemplate, sector, requirements)
}
