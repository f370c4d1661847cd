package analyzer

import (
	"context"
	"strings"

	"lexwatch-backend/internal/analyzer/prompts"
)

// AIRegulatoryTracking determines how a document relates to a regulation
// topic. Detection gates the pipeline: when the document does not mention the
// topic, the remaining three steps are skipped entirely.
func (a *Analyzer) AIRegulatoryTracking(ctx context.Context, documentText, regulationTopic string) TrackingResult {
	key := cacheKey(KindTracking, prompts.Truncate(documentText, searchKeyPrefixChars)+"_"+regulationTopic)
	if val, ok := a.lookup(key); ok {
		if result, ok := val.(TrackingResult); ok {
			return result
		}
	}

	var detection regulationDetectionResponse
	if err := a.step(ctx, prompts.RegulationDetectionStep, prompts.RegulationDetection(regulationTopic, documentText), &detection); err != nil {
		return TrackingResult{Error: err.Error()}
	}
	detection.normalize()

	if !detection.MentionsRegulation {
		return TrackingResult{
			RelevanceScore:   0.0,
			IsRelated:        false,
			RelationshipType: "None",
			ConfidenceScore:  detection.Confidence,
		}
	}

	var relationship relationshipClassificationResponse
	if err := a.step(ctx, prompts.RelationshipClassificationStep, prompts.RelationshipClassification(regulationTopic, documentText), &relationship); err != nil {
		return TrackingResult{Error: err.Error()}
	}
	relationship.normalize()

	var temporal temporalExtractionResponse
	if err := a.step(ctx, prompts.TemporalExtractionStep, prompts.TemporalExtraction(regulationTopic, documentText), &temporal); err != nil {
		return TrackingResult{Error: err.Error()}
	}

	var evolution evolutionIndicatorsResponse
	if err := a.step(ctx, prompts.EvolutionIndicatorsStep, prompts.EvolutionIndicators(regulationTopic, documentText), &evolution); err != nil {
		return TrackingResult{Error: err.Error()}
	}
	evolution.normalize()

	var relatedConcepts []string
	if detection.MentionType != "" {
		relatedConcepts = strings.Split(detection.MentionType, "|")
	}

	result := TrackingResult{
		RelevanceScore:      relationship.RelationshipStrength,
		IsRelated:           true,
		RelationshipType:    relationship.RelationshipType,
		SpecificMentions:    []string{},
		RelatedConcepts:     relatedConcepts,
		TemporalReferences:  append(append([]string{}, temporal.DatesMentioned...), temporal.Deadlines...),
		EvolutionIndicators: evolution.EvolutionIndicators,
		Importance:          evolution.Importance,
		// Confidence stays frozen at the detection step's value; the later
		// steps report their own numbers but they are not folded in.
		ConfidenceScore: detection.Confidence,
	}

	a.cache.Put(key, result)
	return result
}
