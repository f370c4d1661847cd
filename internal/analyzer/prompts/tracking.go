package prompts

import "fmt"

// Regulatory tracking steps: detection, relationship classification, temporal
// extraction, evolution indicators. Detection gates the other three.

var (
	RegulationDetectionStep = Step{
		System:    "You are a regulatory detection expert.",
		MaxTokens: 200,
		DocChars:  2000,
	}
	RelationshipClassificationStep = Step{
		System:    "You are a regulatory relationship classifier.",
		MaxTokens: 200,
		DocChars:  1500,
	}
	TemporalExtractionStep = Step{
		System:    "You are a temporal information extraction expert.",
		MaxTokens: 300,
		DocChars:  2000,
	}
	EvolutionIndicatorsStep = Step{
		System:    "You are a regulatory evolution analyst.",
		MaxTokens: 300,
		DocChars:  2000,
	}
)

const regulationDetectionTemplate = `Detect if this document mentions or relates to: "%s"

TEXT: %s

Return JSON:
{
    "mentions_regulation": true/false,
    "mention_type": "Explicit|Implicit|Related Area|None",
    "confidence": 0.0 to 1.0
}`

// RegulationDetection builds the regulation-detection prompt.
func RegulationDetection(regulationTopic, documentText string) string {
	return fmt.Sprintf(regulationDetectionTemplate, regulationTopic, Truncate(documentText, RegulationDetectionStep.DocChars))
}

const relationshipClassificationTemplate = `Classify how this document relates to "%s":

DOCUMENT CONTEXT: %s

Return JSON:
{
    "relationship_type": "Direct mention|Implementation|Amendment|Related topic|Reference|None",
    "relationship_strength": 0.0 to 1.0
}`

// RelationshipClassification builds the relationship-classification prompt.
func RelationshipClassification(regulationTopic, mentionContext string) string {
	return fmt.Sprintf(relationshipClassificationTemplate, regulationTopic, Truncate(mentionContext, RelationshipClassificationStep.DocChars))
}

const temporalExtractionTemplate = `Extract temporal information related to "%s":

TEXT: %s

Return JSON:
{
    "dates_mentioned": ["YYYY-MM-DD format if found"],
    "deadlines": ["deadline descriptions"],
    "time_references": ["any temporal language"]
}`

// TemporalExtraction builds the temporal-extraction prompt.
func TemporalExtraction(regulationTopic, documentText string) string {
	return fmt.Sprintf(temporalExtractionTemplate, regulationTopic, Truncate(documentText, TemporalExtractionStep.DocChars))
}

const evolutionIndicatorsTemplate = `Identify how this document shows evolution of "%s":

TEXT: %s

Return JSON:
{
    "evolution_type": "New Introduction|Amendment|Clarification|Extension|None",
    "evolution_indicators": ["specific indicators found"],
    "importance": "High|Medium|Low"
}`

// EvolutionIndicators builds the evolution-indicators prompt.
func EvolutionIndicators(regulationTopic, documentText string) string {
	return fmt.Sprintf(evolutionIndicatorsTemplate, regulationTopic, Truncate(documentText, EvolutionIndicatorsStep.DocChars))
}
