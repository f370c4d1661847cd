package prompts

import "fmt"

// ComprehensiveStep covers the single-call full analysis. Unlike the other
// kinds it is not decomposed into sub-steps.
var ComprehensiveStep = Step{
	System:    "You are a precise legal document analyzer. Extract only explicit information. Never hallucinate.",
	MaxTokens: 2000,
	DocChars:  4000,
}

const comprehensiveTemplate = `
You are a senior legal analyst specializing in European Union law. Analyze this document with extreme precision.

CRITICAL RULES:
1. Extract ONLY information that is EXPLICITLY stated in the text
2. If information is not found, use "Not specified"
3. Never infer or guess information
4. Provide confidence scores (0.0-1.0) for each section

DOCUMENT TEXT:
%s

Provide analysis in this exact JSON format:

{
    "document_metadata": {
        "title": "Extract the exact title if present, otherwise 'Not specified'",
        "document_type": "Regulation|Directive|Decision|Communication|Other",
        "reference_number": "Extract exact reference number if present",
        "publication_date": "Extract date if mentioned (YYYY-MM-DD) or 'Not specified'",
        "confidence_score": 0.0
    },
    "summary": {
        "executive_summary": "2-3 sentence summary of what this document does",
        "key_points": [
            "First key point (max 20 words)",
            "Second key point (max 20 words)",
            "Third key point (max 20 words)"
        ],
        "confidence_score": 0.0
    },
    "legal_analysis": {
        "primary_topics": ["List main legal topics covered"],
        "affected_sectors": ["List business sectors affected"],
        "geographic_scope": "EU-wide|Specific countries|Not specified",
        "confidence_score": 0.0
    },
    "compliance_requirements": {
        "key_obligations": ["List main compliance requirements found"],
        "deadlines": ["List any deadlines mentioned"],
        "penalties": "Describe penalties if mentioned or 'Not specified'",
        "confidence_score": 0.0
    },
    "risk_indicators": {
        "urgency": "High|Medium|Low|Not specified",
        "complexity": "High|Medium|Low|Not specified",
        "enforcement_risk": "High|Medium|Low|Not specified",
        "confidence_score": 0.0
    },
    "overall_confidence": 0.0
}

IMPORTANT: Only extract what is explicitly written. Never make assumptions.`

// Comprehensive builds the single-call full-analysis prompt.
func Comprehensive(documentText string) string {
	return fmt.Sprintf(comprehensiveTemplate, Truncate(documentText, ComprehensiveStep.DocChars))
}
