package analyzer

import (
	"context"
	"strings"

	"lexwatch-backend/internal/analyzer/prompts"
)

const (
	// maxSectorsPerAssessment caps how many sectors a single assessment
	// processes. Each sector can cost up to three backend calls.
	maxSectorsPerAssessment = 3

	// complianceConfidence is a fixed placeholder like structureConfidence.
	complianceConfidence = 0.7
)

// AssessComplianceImpact evaluates the document's compliance impact per
// sector. Each sector escalates conditionally: relevance first, requirements
// only when relevant, complexity only when requirements were found.
func (a *Analyzer) AssessComplianceImpact(ctx context.Context, documentText string, sectors []string) ComplianceResult {
	key := cacheKey(KindCompliance, prompts.Truncate(documentText, searchKeyPrefixChars)+"_"+strings.Join(sectors, ","))
	if val, ok := a.lookup(key); ok {
		if result, ok := val.(ComplianceResult); ok {
			return result
		}
	}

	if len(sectors) > maxSectorsPerAssessment {
		sectors = sectors[:maxSectorsPerAssessment]
	}

	sectorImpacts := make(map[string]SectorImpact)
	for _, sector := range sectors {
		var relevance sectorRelevanceResponse
		if err := a.step(ctx, prompts.SectorRelevanceStep, prompts.SectorRelevance(sector, documentText), &relevance); err != nil {
			return complianceFailure(err)
		}
		relevance.normalize()
		if !relevance.IsRelevant {
			continue
		}

		var requirements complianceRequirementsResponse
		if err := a.step(ctx, prompts.ComplianceRequirementsStep, prompts.ComplianceRequirements(sector, documentText), &requirements); err != nil {
			return complianceFailure(err)
		}
		if len(requirements.Requirements) == 0 {
			sectorImpacts[sector] = SectorImpact{
				ImpactLevel:          "Low",
				SpecificRequirements: []string{},
				Deadlines:            []string{},
				ActionsRequired:      []string{},
			}
			continue
		}

		var complexity implementationComplexityResponse
		if err := a.step(ctx, prompts.ImplementationComplexityStep, prompts.ImplementationComplexity(sector, strings.Join(requirements.Requirements, ", ")), &complexity); err != nil {
			return complianceFailure(err)
		}
		complexity.normalize()

		sectorImpacts[sector] = SectorImpact{
			ImpactLevel:          complexity.ComplexityLevel,
			SpecificRequirements: requirements.Requirements,
			Deadlines:            []string{},
			ActionsRequired:      []string{},
		}
	}

	overall := "Low"
	for _, impact := range sectorImpacts {
		if impact.ImpactLevel == "High" {
			overall = "High"
			break
		}
		if impact.ImpactLevel == "Medium" {
			overall = "Medium"
		}
	}

	result := ComplianceResult{
		OverallImpact:            overall,
		SectorImpacts:            sectorImpacts,
		CrossSectorRequirements:  []string{},
		ImplementationComplexity: overall,
		ConfidenceScore:          complianceConfidence,
	}

	a.cache.Put(key, result)
	return result
}

func complianceFailure(err error) ComplianceResult {
	return ComplianceResult{
		OverallImpact:   "Error",
		ConfidenceScore: 0.0,
		Error:           err.Error(),
	}
}
