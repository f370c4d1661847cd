package analyzer

// Decoded shapes of the individual sub-step responses. Each struct mirrors
// the JSON schema its prompt requests and owns a normalize method that clamps
// scores and fills documented defaults right after parsing, so the pipelines
// never touch an unvalidated value.

type semanticMatchResponse struct {
	ContainsRelatedConcepts bool     `json:"contains_related_concepts"`
	SemanticSimilarityScore float64  `json:"semantic_similarity_score"`
	MatchedConcepts         []string `json:"matched_concepts"`
}

func (r *semanticMatchResponse) normalize() {
	r.SemanticSimilarityScore = clampScore(r.SemanticSimilarityScore)
}

type relevanceScoringResponse struct {
	RelevanceScore    float64 `json:"relevance_score"`
	RelevanceCategory string  `json:"relevance_category"`
}

func (r *relevanceScoringResponse) normalize() {
	r.RelevanceScore = clampScore(r.RelevanceScore)
	r.RelevanceCategory = orDefault(r.RelevanceCategory, "Not Relevant")
}

type excerptExtractionResponse struct {
	RelevantExcerpts       []string  `json:"relevant_excerpts"`
	ExcerptRelevanceScores []float64 `json:"excerpt_relevance_scores"`
}

func (r *excerptExtractionResponse) normalize() {
	for i, s := range r.ExcerptRelevanceScores {
		r.ExcerptRelevanceScores[i] = clampScore(s)
	}
}

type regulationDetectionResponse struct {
	MentionsRegulation bool    `json:"mentions_regulation"`
	MentionType        string  `json:"mention_type"`
	Confidence         float64 `json:"confidence"`
}

func (r *regulationDetectionResponse) normalize() {
	r.Confidence = clampScore(r.Confidence)
}

type relationshipClassificationResponse struct {
	RelationshipType     string  `json:"relationship_type"`
	RelationshipStrength float64 `json:"relationship_strength"`
}

func (r *relationshipClassificationResponse) normalize() {
	r.RelationshipStrength = clampScore(r.RelationshipStrength)
	r.RelationshipType = orDefault(r.RelationshipType, "Related topic")
}

type temporalExtractionResponse struct {
	DatesMentioned []string `json:"dates_mentioned"`
	Deadlines      []string `json:"deadlines"`
	TimeReferences []string `json:"time_references"`
}

type evolutionIndicatorsResponse struct {
	EvolutionType       string   `json:"evolution_type"`
	EvolutionIndicators []string `json:"evolution_indicators"`
	Importance          string   `json:"importance"`
}

func (r *evolutionIndicatorsResponse) normalize() {
	r.Importance = orDefault(r.Importance, "Medium")
}

type documentTypeResponse struct {
	DocumentType   string  `json:"document_type"`
	TypeConfidence float64 `json:"type_confidence"`
}

func (r *documentTypeResponse) normalize() {
	r.DocumentType = orDefault(r.DocumentType, "Other")
	r.TypeConfidence = clampScore(r.TypeConfidence)
}

type mainPurposeResponse struct {
	MainPurpose    string  `json:"main_purpose"`
	PurposeClarity float64 `json:"purpose_clarity"`
}

func (r *mainPurposeResponse) normalize() {
	r.MainPurpose = orDefault(r.MainPurpose, NotSpecified)
	r.PurposeClarity = clampScore(r.PurposeClarity)
}

type keyPoint struct {
	Point      string  `json:"point"`
	Importance float64 `json:"importance"`
}

type keyPointsResponse struct {
	KeyPoints []keyPoint `json:"key_points"`
}

func (r *keyPointsResponse) normalize() {
	for i := range r.KeyPoints {
		r.KeyPoints[i].Importance = clampScore(r.KeyPoints[i].Importance)
	}
}

type legalDomainsResponse struct {
	LegalDomains          []string           `json:"legal_domains"`
	DomainRelevanceScores map[string]float64 `json:"domain_relevance_scores"`
	PrimaryDomain         string             `json:"primary_domain"`
}

type detectedSection struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type sectionDetectionResponse struct {
	SectionsFound       []detectedSection `json:"sections_found"`
	HasStructuredFormat bool              `json:"has_structured_format"`
}

type extractedArticle struct {
	Number  string `json:"number"`
	Title   string `json:"title"`
	Preview string `json:"preview"`
}

type articleExtractionResponse struct {
	Articles      []extractedArticle `json:"articles"`
	TotalArticles int                `json:"total_articles"`
}

type sectorRelevanceResponse struct {
	IsRelevant          bool     `json:"is_relevant"`
	RelevanceIndicators []string `json:"relevance_indicators"`
	RelevanceScore      float64  `json:"relevance_score"`
}

func (r *sectorRelevanceResponse) normalize() {
	r.RelevanceScore = clampScore(r.RelevanceScore)
}

type complianceRequirementsResponse struct {
	Requirements    []string `json:"requirements"`
	RequirementType string   `json:"requirement_type"`
	HasDeadlines    bool     `json:"has_deadlines"`
}

type implementationComplexityResponse struct {
	ComplexityLevel   string   `json:"complexity_level"`
	ComplexityFactors []string `json:"complexity_factors"`
	EstimatedEffort   string   `json:"estimated_effort"`
}

func (r *implementationComplexityResponse) normalize() {
	r.ComplexityLevel = orDefault(r.ComplexityLevel, "Medium")
}
