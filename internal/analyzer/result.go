package analyzer

// NotSpecified is the sentinel the prompts instruct the model to use for any
// field it cannot extract from the text. The analyzer reuses it when building
// degraded results.
const NotSpecified = "Not specified"

// ComprehensiveResult is the full multi-section analysis produced by the
// single-call comprehensive prompt.
type ComprehensiveResult struct {
	DocumentMetadata       DocumentMetadata   `json:"document_metadata"`
	Summary                SummarySection     `json:"summary"`
	LegalAnalysis          LegalAnalysis      `json:"legal_analysis"`
	ComplianceRequirements ComplianceSection  `json:"compliance_requirements"`
	RiskIndicators         RiskIndicators     `json:"risk_indicators"`
	OverallConfidence      float64            `json:"overall_confidence"`
	Error                  string             `json:"error,omitempty"`
}

// DocumentMetadata carries extracted document identity fields.
type DocumentMetadata struct {
	Title           string  `json:"title"`
	DocumentType    string  `json:"document_type"`
	ReferenceNumber string  `json:"reference_number"`
	PublicationDate string  `json:"publication_date"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// SummarySection carries the executive summary and key points.
type SummarySection struct {
	ExecutiveSummary string   `json:"executive_summary"`
	KeyPoints        []string `json:"key_points"`
	ConfidenceScore  float64  `json:"confidence_score"`
}

// LegalAnalysis carries topic and scope findings.
type LegalAnalysis struct {
	PrimaryTopics   []string `json:"primary_topics"`
	AffectedSectors []string `json:"affected_sectors"`
	GeographicScope string   `json:"geographic_scope"`
	ConfidenceScore float64  `json:"confidence_score"`
}

// ComplianceSection carries extracted obligations and deadlines.
type ComplianceSection struct {
	KeyObligations  []string `json:"key_obligations"`
	Deadlines       []string `json:"deadlines"`
	Penalties       string   `json:"penalties"`
	ConfidenceScore float64  `json:"confidence_score"`
}

// RiskIndicators carries coarse risk labels.
type RiskIndicators struct {
	Urgency         string  `json:"urgency"`
	Complexity      string  `json:"complexity"`
	EnforcementRisk string  `json:"enforcement_risk"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// SearchResult merges the three search sub-steps.
type SearchResult struct {
	RelevanceScore   float64  `json:"relevance_score"`
	IsRelevant       bool     `json:"is_relevant"`
	MatchingConcepts []string `json:"matching_concepts"`
	RelevantExcerpts []string `json:"relevant_excerpts"`
	Explanation      string   `json:"explanation"`
	ConfidenceScore  float64  `json:"confidence_score"`
	Error            string   `json:"error,omitempty"`
}

// TrackingResult merges the regulatory-tracking sub-steps.
type TrackingResult struct {
	RelevanceScore      float64  `json:"relevance_score"`
	IsRelated           bool     `json:"is_related"`
	RelationshipType    string   `json:"relationship_type"`
	SpecificMentions    []string `json:"specific_mentions"`
	RelatedConcepts     []string `json:"related_concepts"`
	TemporalReferences  []string `json:"temporal_references"`
	EvolutionIndicators []string `json:"evolution_indicators"`
	Importance          string   `json:"importance"`
	ConfidenceScore     float64  `json:"confidence_score"`
	Error               string   `json:"error,omitempty"`
}

// SummaryResult merges the four independent summary sub-steps.
type SummaryResult struct {
	DocumentType    string   `json:"document_type"`
	MainPurpose     string   `json:"main_purpose"`
	KeyPoints       []string `json:"key_points"`
	Importance      string   `json:"importance"`
	Topics          []string `json:"topics"`
	ConfidenceScore float64  `json:"confidence_score"`
	Error           string   `json:"error,omitempty"`
}

// Section is one detected structural unit of a document.
type Section struct {
	Type    string `json:"type"`
	Number  string `json:"number"`
	Heading string `json:"heading"`
	Summary string `json:"summary"`
}

// StructureResult merges section detection and article extraction.
type StructureResult struct {
	Title           string    `json:"title"`
	Sections        []Section `json:"sections"`
	HasArticles     bool      `json:"has_articles"`
	HasAnnexes      bool      `json:"has_annexes"`
	TotalSections   int       `json:"total_sections"`
	ConfidenceScore float64   `json:"confidence_score"`
	Error           string    `json:"error,omitempty"`
}

// SectorImpact is the per-sector slice of a compliance assessment.
type SectorImpact struct {
	ImpactLevel          string   `json:"impact_level"`
	SpecificRequirements []string `json:"specific_requirements"`
	Deadlines            []string `json:"deadlines"`
	ActionsRequired      []string `json:"actions_required"`
}

// ComplianceResult aggregates per-sector impacts.
type ComplianceResult struct {
	OverallImpact            string                  `json:"overall_impact"`
	SectorImpacts            map[string]SectorImpact `json:"sector_impacts"`
	CrossSectorRequirements  []string                `json:"cross_sector_requirements"`
	ImplementationComplexity string                  `json:"implementation_complexity"`
	ConfidenceScore          float64                 `json:"confidence_score"`
	Error                    string                  `json:"error,omitempty"`
}

// clampScore coerces a model-reported score into [0.0, 1.0].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// orDefault returns fallback when s is empty.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
