package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"lexwatch-backend/internal/analyzer/prompts"
	"lexwatch-backend/internal/llm"
)

// stubLLM scripts step responses keyed by the step's system message and
// counts every backend call.
type stubLLM struct {
	calls    int
	bySystem map[string]string
	fail     bool
}

func (s *stubLLM) Complete(ctx context.Context, req llm.Request) (json.RawMessage, error) {
	_ = ctx
	s.calls++
	if s.fail {
		return nil, errors.New("backend unavailable")
	}
	if resp, ok := s.bySystem[req.System]; ok {
		return json.RawMessage(resp), nil
	}
	return nil, fmt.Errorf("unexpected step: %s", req.System)
}

func searchStub() *stubLLM {
	return &stubLLM{bySystem: map[string]string{
		prompts.SemanticMatchStep.System:     `{"contains_related_concepts": true, "semantic_similarity_score": 0.9, "matched_concepts": ["privacy", "consent"]}`,
		prompts.RelevanceScoringStep.System:  `{"relevance_score": 0.8, "relevance_category": "Direct Match"}`,
		prompts.ExcerptExtractionStep.System: `{"relevant_excerpts": ["the controller shall obtain consent"], "excerpt_relevance_scores": [0.9]}`,
	}}
}

func summaryStub() *stubLLM {
	return &stubLLM{bySystem: map[string]string{
		prompts.DocumentTypeStep.System: `{"document_type": "Regulation", "type_confidence": 0.9}`,
		prompts.MainPurposeStep.System:  `{"main_purpose": "Harmonize data protection rules", "purpose_clarity": 0.8}`,
		prompts.KeyPointsStep.System:    `{"key_points": [{"point": "Applies to all controllers", "importance": 0.9}, {"point": "Introduces fines", "importance": 0.6}, {"point": "Creates supervisory boards", "importance": 0.4}]}`,
		prompts.LegalDomainsStep.System: `{"legal_domains": ["Data Protection", "Consumer Rights", "Competition Law"], "primary_domain": "Data Protection"}`,
	}}
}

const longDoc = "Regulation (EU) 2016/679 of the European Parliament lays down rules relating to the protection of natural persons with regard to the processing of personal data."

func TestComprehensiveShortInputSkipsBackend(t *testing.T) {
	stub := &stubLLM{bySystem: map[string]string{}}
	a := New(stub, NewCache())

	result := a.ComprehensiveDocumentAnalysis(context.Background(), "   too short   ")

	if stub.calls != 0 {
		t.Fatalf("backend called %d times for short input, want 0", stub.calls)
	}
	if result.OverallConfidence != 0.0 {
		t.Errorf("overall confidence = %v, want 0.0", result.OverallConfidence)
	}
	if result.Error == "" {
		t.Errorf("expected error message on fallback result")
	}
	if result.DocumentMetadata.Title != "Analysis unavailable" {
		t.Errorf("fallback title = %q", result.DocumentMetadata.Title)
	}
}

func TestComprehensiveEndToEndWithCacheHit(t *testing.T) {
	stub := &stubLLM{bySystem: map[string]string{
		prompts.ComprehensiveStep.System: `{
			"document_metadata": {"title": "Test Regulation", "document_type": "Regulation", "reference_number": "2016/679", "publication_date": "2016-04-27", "confidence_score": 0.95},
			"summary": {"executive_summary": "Sets out data protection rules.", "key_points": ["a", "b", "c"], "confidence_score": 0.9},
			"legal_analysis": {"primary_topics": ["Data Protection"], "affected_sectors": ["Technology"], "geographic_scope": "EU-wide", "confidence_score": 0.85},
			"compliance_requirements": {"key_obligations": ["appoint a DPO"], "deadlines": [], "penalties": "Not specified", "confidence_score": 0.8},
			"risk_indicators": {"urgency": "High", "complexity": "High", "enforcement_risk": "Medium", "confidence_score": 0.75},
			"overall_confidence": 0.88
		}`,
	}}
	a := New(stub, NewCache())
	doc := strings.Repeat("x", 4000)

	result := a.ComprehensiveDocumentAnalysis(context.Background(), doc)
	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if result.DocumentMetadata.ConfidenceScore != 0.95 {
		t.Errorf("metadata confidence = %v, want 0.95", result.DocumentMetadata.ConfidenceScore)
	}
	if result.OverallConfidence != 0.88 {
		t.Errorf("overall confidence = %v, want 0.88", result.OverallConfidence)
	}
	if stub.calls != 1 {
		t.Fatalf("calls = %d, want 1", stub.calls)
	}

	second := a.ComprehensiveDocumentAnalysis(context.Background(), doc)
	if stub.calls != 1 {
		t.Fatalf("cache miss on identical input: calls = %d, want 1", stub.calls)
	}
	if !reflect.DeepEqual(result, second) {
		t.Errorf("cached result differs from first result")
	}
}

func TestSearchIdempotentAfterBackendLost(t *testing.T) {
	stub := searchStub()
	a := New(stub, NewCache())

	first := a.AIPoweredSearch(context.Background(), longDoc, "data protection")
	if first.Error != "" {
		t.Fatalf("unexpected error: %s", first.Error)
	}

	callsAfterFirst := stub.calls
	stub.fail = true

	second := a.AIPoweredSearch(context.Background(), longDoc, "data protection")
	if stub.calls != callsAfterFirst {
		t.Fatalf("backend called again on cached input: %d calls, want %d", stub.calls, callsAfterFirst)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs from first result")
	}
}

func TestCacheKeyCollisionOnSharedPrefix(t *testing.T) {
	stub := summaryStub()
	a := New(stub, NewCache())

	prefix := strings.Repeat("a", 1000)
	docA := prefix + strings.Repeat("tail one ", 100)
	docB := prefix + strings.Repeat("different tail ", 100)

	a.GenerateAISummary(context.Background(), docA)
	callsAfterFirst := stub.calls

	// Identical first 1000 characters must hit the same entry; divergence
	// past the fingerprint window is intentionally ignored.
	a.GenerateAISummary(context.Background(), docB)
	if stub.calls != callsAfterFirst {
		t.Fatalf("expected cache hit for shared 1000-char prefix; calls went %d -> %d", callsAfterFirst, stub.calls)
	}
}

func TestSearchSkipsExcerptsBelowThreshold(t *testing.T) {
	stub := searchStub()
	stub.bySystem[prompts.RelevanceScoringStep.System] = `{"relevance_score": 0.2, "relevance_category": "Tangential"}`
	a := New(stub, NewCache())

	result := a.AIPoweredSearch(context.Background(), longDoc, "fisheries policy")

	if stub.calls != 2 {
		t.Fatalf("calls = %d, want 2 (excerpt step must be skipped)", stub.calls)
	}
	if result.IsRelevant {
		t.Errorf("is_relevant = true for score 0.2")
	}
	if result.RelevanceScore != 0.2 {
		t.Errorf("relevance score = %v, want 0.2", result.RelevanceScore)
	}
	if result.ConfidenceScore != 0.9 {
		t.Errorf("confidence = %v, want similarity 0.9 from step 1", result.ConfidenceScore)
	}
	if len(result.RelevantExcerpts) != 0 {
		t.Errorf("excerpts present despite skipped step: %v", result.RelevantExcerpts)
	}
}

func TestSearchMerge(t *testing.T) {
	stub := searchStub()
	a := New(stub, NewCache())

	result := a.AIPoweredSearch(context.Background(), longDoc, "data protection")

	if !result.IsRelevant || result.RelevanceScore != 0.8 {
		t.Errorf("relevance = (%v, %v), want (true, 0.8)", result.IsRelevant, result.RelevanceScore)
	}
	if !reflect.DeepEqual(result.MatchingConcepts, []string{"privacy", "consent"}) {
		t.Errorf("matching concepts = %v", result.MatchingConcepts)
	}
	if len(result.RelevantExcerpts) != 1 {
		t.Errorf("excerpts = %v", result.RelevantExcerpts)
	}
	if result.Explanation != "Direct Match match for data protection" {
		t.Errorf("explanation = %q", result.Explanation)
	}
	if stub.calls != 3 {
		t.Errorf("calls = %d, want 3", stub.calls)
	}
}

func TestTrackingNoMentionStopsAfterDetection(t *testing.T) {
	stub := &stubLLM{bySystem: map[string]string{
		prompts.RegulationDetectionStep.System: `{"mentions_regulation": false, "mention_type": "None", "confidence": 0.85}`,
	}}
	a := New(stub, NewCache())

	result := a.AIRegulatoryTracking(context.Background(), longDoc, "MiFID II")

	if stub.calls != 1 {
		t.Fatalf("calls = %d, want exactly 1", stub.calls)
	}
	if result.RelevanceScore != 0.0 || result.IsRelated || result.RelationshipType != "None" {
		t.Errorf("unexpected no-mention result: %+v", result)
	}
	if result.ConfidenceScore != 0.85 {
		t.Errorf("confidence = %v, want detection's 0.85", result.ConfidenceScore)
	}
}

func TestTrackingMergesPipeline(t *testing.T) {
	stub := &stubLLM{bySystem: map[string]string{
		prompts.RegulationDetectionStep.System:        `{"mentions_regulation": true, "mention_type": "Explicit|Related Area", "confidence": 0.7}`,
		prompts.RelationshipClassificationStep.System: `{"relationship_type": "Amendment", "relationship_strength": 0.9}`,
		prompts.TemporalExtractionStep.System:         `{"dates_mentioned": ["2024-01-01"], "deadlines": ["transposition by 2025"], "time_references": ["next year"]}`,
		prompts.EvolutionIndicatorsStep.System:        `{"evolution_type": "Amendment", "evolution_indicators": ["amends Article 5"], "importance": "High"}`,
	}}
	a := New(stub, NewCache())

	result := a.AIRegulatoryTracking(context.Background(), longDoc, "GDPR")

	if stub.calls != 4 {
		t.Fatalf("calls = %d, want 4", stub.calls)
	}
	if !result.IsRelated || result.RelevanceScore != 0.9 || result.RelationshipType != "Amendment" {
		t.Errorf("merge wrong: %+v", result)
	}
	if !reflect.DeepEqual(result.RelatedConcepts, []string{"Explicit", "Related Area"}) {
		t.Errorf("related concepts = %v", result.RelatedConcepts)
	}
	if !reflect.DeepEqual(result.TemporalReferences, []string{"2024-01-01", "transposition by 2025"}) {
		t.Errorf("temporal references = %v", result.TemporalReferences)
	}
	if result.Importance != "High" {
		t.Errorf("importance = %q", result.Importance)
	}
	// The later steps' own confidence-like numbers are not folded in.
	if result.ConfidenceScore != 0.7 {
		t.Errorf("confidence = %v, want detection's 0.7", result.ConfidenceScore)
	}
}

func TestSummaryMerge(t *testing.T) {
	stub := summaryStub()
	a := New(stub, NewCache())

	result := a.GenerateAISummary(context.Background(), longDoc)

	if stub.calls != 4 {
		t.Fatalf("calls = %d, want 4", stub.calls)
	}
	if result.DocumentType != "Regulation" {
		t.Errorf("document type = %q", result.DocumentType)
	}
	if len(result.KeyPoints) != 3 || result.KeyPoints[0] != "Applies to all controllers" {
		t.Errorf("key points = %v", result.KeyPoints)
	}
	if result.Importance != "High" {
		t.Errorf("importance = %q, want High (max key point importance 0.9)", result.Importance)
	}
	if !reflect.DeepEqual(result.Topics, []string{"Data Protection", "Consumer Rights"}) {
		t.Errorf("topics = %v, want first two domains", result.Topics)
	}
	if result.ConfidenceScore != 0.8 {
		t.Errorf("confidence = %v, want min(0.9, 0.8)", result.ConfidenceScore)
	}
}

func TestSummaryMediumImportance(t *testing.T) {
	stub := summaryStub()
	stub.bySystem[prompts.KeyPointsStep.System] = `{"key_points": [{"point": "minor note", "importance": 0.5}]}`
	a := New(stub, NewCache())

	result := a.GenerateAISummary(context.Background(), longDoc)
	if result.Importance != "Medium" {
		t.Errorf("importance = %q, want Medium", result.Importance)
	}
}

func TestStructureExtractsArticlesWhenStructured(t *testing.T) {
	stub := &stubLLM{bySystem: map[string]string{
		prompts.SectionDetectionStep.System: `{"sections_found": [{"type": "Article", "identifier": "1"}, {"type": "Annex", "identifier": "I"}], "has_structured_format": true}`,
		prompts.ArticleExtractionStep.System: `{"articles": [{"number": "Article 1", "title": "Subject matter", "preview": "This Regulation lays down"}], "total_articles": 1}`,
	}}
	a := New(stub, NewCache())

	result := a.ExtractDocumentStructure(context.Background(), longDoc)

	if stub.calls != 2 {
		t.Fatalf("calls = %d, want 2", stub.calls)
	}
	if result.TotalSections != 2 || !result.HasArticles || !result.HasAnnexes {
		t.Errorf("structure merge wrong: %+v", result)
	}
	if result.Sections[0].Heading != "Article 1" {
		t.Errorf("heading = %q", result.Sections[0].Heading)
	}
	if result.ConfidenceScore != 0.8 {
		t.Errorf("confidence = %v, want fixed 0.8", result.ConfidenceScore)
	}
}

func TestStructureSkipsArticlesWhenUnstructured(t *testing.T) {
	stub := &stubLLM{bySystem: map[string]string{
		prompts.SectionDetectionStep.System: `{"sections_found": [], "has_structured_format": false}`,
	}}
	a := New(stub, NewCache())

	result := a.ExtractDocumentStructure(context.Background(), longDoc)

	if stub.calls != 1 {
		t.Fatalf("calls = %d, want 1", stub.calls)
	}
	if result.HasArticles || result.TotalSections != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func complianceStub(complexityLevel string) *stubLLM {
	return &stubLLM{bySystem: map[string]string{
		prompts.SectorRelevanceStep.System:          `{"is_relevant": true, "relevance_indicators": ["sector named"], "relevance_score": 0.8}`,
		prompts.ComplianceRequirementsStep.System:   `{"requirements": ["annual reporting"], "requirement_type": "Mandatory", "has_deadlines": true}`,
		prompts.ImplementationComplexityStep.System: fmt.Sprintf(`{"complexity_level": %q, "complexity_factors": ["new tooling"], "estimated_effort": "Moderate"}`, complexityLevel),
	}}
}

func TestComplianceCapsSectorsAtThree(t *testing.T) {
	stub := complianceStub("High")
	a := New(stub, NewCache())
	sectors := []string{"Banking", "Insurance", "Technology", "Energy", "Healthcare"}

	result := a.AssessComplianceImpact(context.Background(), longDoc, sectors)

	if stub.calls != 9 {
		t.Fatalf("calls = %d, want 9 (3 sectors x 3 steps)", stub.calls)
	}
	if len(result.SectorImpacts) != 3 {
		t.Errorf("sector impacts = %d, want 3", len(result.SectorImpacts))
	}
	if result.OverallImpact != "High" {
		t.Errorf("overall impact = %q, want High", result.OverallImpact)
	}
	if result.ConfidenceScore != 0.7 {
		t.Errorf("confidence = %v, want fixed 0.7", result.ConfidenceScore)
	}
}

func TestComplianceSkipsIrrelevantSectors(t *testing.T) {
	stub := complianceStub("Medium")
	stub.bySystem[prompts.SectorRelevanceStep.System] = `{"is_relevant": false, "relevance_indicators": [], "relevance_score": 0.1}`
	a := New(stub, NewCache())

	result := a.AssessComplianceImpact(context.Background(), longDoc, []string{"Banking", "Energy"})

	if stub.calls != 2 {
		t.Fatalf("calls = %d, want 2 (one relevance check per sector)", stub.calls)
	}
	if len(result.SectorImpacts) != 0 {
		t.Errorf("sector impacts = %v, want none", result.SectorImpacts)
	}
	if result.OverallImpact != "Low" {
		t.Errorf("overall impact = %q, want Low", result.OverallImpact)
	}
}

func TestComplianceSkipsComplexityWithoutRequirements(t *testing.T) {
	stub := complianceStub("High")
	stub.bySystem[prompts.ComplianceRequirementsStep.System] = `{"requirements": [], "requirement_type": "Optional", "has_deadlines": false}`
	a := New(stub, NewCache())

	result := a.AssessComplianceImpact(context.Background(), longDoc, []string{"Banking"})

	if stub.calls != 2 {
		t.Fatalf("calls = %d, want 2 (complexity skipped)", stub.calls)
	}
	if impact := result.SectorImpacts["Banking"]; impact.ImpactLevel != "Low" {
		t.Errorf("impact level = %q, want Low", impact.ImpactLevel)
	}
}

func TestAllOperationsSurviveBackendFailure(t *testing.T) {
	stub := &stubLLM{fail: true}
	a := New(stub, NewCache())
	ctx := context.Background()
	doc := strings.Repeat("z", 200)

	t.Run("comprehensive", func(t *testing.T) {
		r := a.ComprehensiveDocumentAnalysis(ctx, doc)
		if r.Error == "" || r.OverallConfidence != 0.0 {
			t.Errorf("comprehensive: %+v", r)
		}
	})
	t.Run("search", func(t *testing.T) {
		r := a.AIPoweredSearch(ctx, doc, "q")
		if r.Error == "" || r.RelevanceScore != 0.0 || r.IsRelevant {
			t.Errorf("search: %+v", r)
		}
	})
	t.Run("tracking", func(t *testing.T) {
		r := a.AIRegulatoryTracking(ctx, doc, "q")
		if r.Error == "" || r.RelevanceScore != 0.0 || r.IsRelated {
			t.Errorf("tracking: %+v", r)
		}
	})
	t.Run("summary", func(t *testing.T) {
		r := a.GenerateAISummary(ctx, doc)
		if r.Error == "" || r.ConfidenceScore != 0.0 {
			t.Errorf("summary: %+v", r)
		}
	})
	t.Run("structure", func(t *testing.T) {
		r := a.ExtractDocumentStructure(ctx, doc)
		if r.Error == "" || r.ConfidenceScore != 0.0 {
			t.Errorf("structure: %+v", r)
		}
	})
	t.Run("compliance", func(t *testing.T) {
		r := a.AssessComplianceImpact(ctx, doc, []string{"Banking"})
		if r.Error == "" || r.ConfidenceScore != 0.0 {
			t.Errorf("compliance: %+v", r)
		}
	})
}

func TestMalformedStepResponseHandledAsBackendError(t *testing.T) {
	stub := &stubLLM{bySystem: map[string]string{
		prompts.SemanticMatchStep.System: `{"semantic_similarity_score": "not a number"}`,
	}}
	a := New(stub, NewCache())

	result := a.AIPoweredSearch(context.Background(), longDoc, "q")
	if result.Error == "" {
		t.Fatalf("expected error on malformed step response, got %+v", result)
	}
	if result.IsRelevant || result.RelevanceScore != 0.0 {
		t.Errorf("degraded result not zeroed: %+v", result)
	}
}

func TestFailedSearchIsNotCached(t *testing.T) {
	stub := &stubLLM{fail: true}
	cache := NewCache()
	a := New(stub, cache)

	a.AIPoweredSearch(context.Background(), longDoc, "q")
	if cache.Len() != 0 {
		t.Fatalf("failed result was cached; cache len = %d", cache.Len())
	}
}
