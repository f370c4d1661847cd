package prompts

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "shorter than budget", in: "abc", n: 10, want: "abc"},
		{name: "exact budget", in: "abcde", n: 5, want: "abcde"},
		{name: "over budget", in: "abcdef", n: 3, want: "abc"},
		{name: "zero budget keeps all", in: "abc", n: 0, want: "abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.in, tc.n); got != tc.want {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
			}
		})
	}
}

func TestQueryTemplatesEmbedInputs(t *testing.T) {
	doc := strings.Repeat("lorem ipsum ", 400)
	query := "data protection"

	cases := []struct {
		name   string
		prompt string
		budget int
	}{
		{"semantic match", SemanticMatch(query, doc), SemanticMatchStep.DocChars},
		{"excerpt extraction", ExcerptExtraction(query, doc), ExcerptExtractionStep.DocChars},
		{"regulation detection", RegulationDetection(query, doc), RegulationDetectionStep.DocChars},
		{"relationship classification", RelationshipClassification(query, doc), RelationshipClassificationStep.DocChars},
		{"temporal extraction", TemporalExtraction(query, doc), TemporalExtractionStep.DocChars},
		{"evolution indicators", EvolutionIndicators(query, doc), EvolutionIndicatorsStep.DocChars},
		{"sector relevance", SectorRelevance(query, doc), SectorRelevanceStep.DocChars},
		{"compliance requirements", ComplianceRequirements(query, doc), ComplianceRequirementsStep.DocChars},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !strings.Contains(tc.prompt, query) {
				t.Errorf("prompt does not embed the query")
			}
			if !strings.Contains(tc.prompt, doc[:tc.budget]) {
				t.Errorf("prompt does not embed the truncated document prefix")
			}
			if strings.Contains(tc.prompt, doc[:tc.budget+1]) {
				t.Errorf("prompt exceeds the %d-char document budget", tc.budget)
			}
			if !strings.Contains(tc.prompt, "Return JSON") {
				t.Errorf("prompt does not request a JSON response")
			}
		})
	}
}

func TestDocumentOnlyTemplatesEmbedPrefix(t *testing.T) {
	doc := strings.Repeat("x", 5000)

	cases := []struct {
		name   string
		prompt string
		budget int
	}{
		{"document type", DocumentType(doc), DocumentTypeStep.DocChars},
		{"main purpose", MainPurpose(doc), MainPurposeStep.DocChars},
		{"key points", KeyPoints(doc), KeyPointsStep.DocChars},
		{"section detection", SectionDetection(doc), SectionDetectionStep.DocChars},
		{"article extraction", ArticleExtraction(doc), ArticleExtractionStep.DocChars},
		{"reference number", ReferenceNumber(doc), ReferenceNumberStep.DocChars},
		{"date extraction", DateExtraction(doc), DateExtractionStep.DocChars},
		{"issuing authority", IssuingAuthority(doc), IssuingAuthorityStep.DocChars},
		{"geographic scope", GeographicScope(doc), GeographicScopeStep.DocChars},
		{"legal domains", LegalDomains(doc), LegalDomainsStep.DocChars},
		{"affected sectors", AffectedSectors(doc), AffectedSectorsStep.DocChars},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !strings.Contains(tc.prompt, strings.Repeat("x", tc.budget)) {
				t.Errorf("prompt does not embed the %d-char prefix", tc.budget)
			}
			if strings.Contains(tc.prompt, strings.Repeat("x", tc.budget+1)) {
				t.Errorf("prompt exceeds the %d-char document budget", tc.budget)
			}
		})
	}
}

func TestComprehensiveKeepsAntiHallucinationRules(t *testing.T) {
	prompt := Comprehensive(strings.Repeat("y", 6000))

	for _, want := range []string{
		"Extract ONLY information that is EXPLICITLY stated",
		`use "Not specified"`,
		"overall_confidence",
		"document_metadata",
		"risk_indicators",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("comprehensive prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, strings.Repeat("y", ComprehensiveStep.DocChars+1)) {
		t.Errorf("comprehensive prompt exceeds the %d-char budget", ComprehensiveStep.DocChars)
	}
}

func TestRelevanceScoringUsesConceptsNotDocument(t *testing.T) {
	prompt := RelevanceScoring("GDPR", "privacy, consent")
	if !strings.Contains(prompt, "CONCEPTS FOUND: privacy, consent") {
		t.Fatalf("relevance prompt missing concepts: %q", prompt)
	}
}

func TestImplementationComplexityUsesRequirements(t *testing.T) {
	prompt := ImplementationComplexity("Banking", "annual audit, DPO appointment")
	if !strings.Contains(prompt, "REQUIREMENTS: annual audit, DPO appointment") {
		t.Fatalf("complexity prompt missing requirements: %q", prompt)
	}
	if !strings.Contains(prompt, "Banking") {
		t.Fatalf("complexity prompt missing sector")
	}
}
