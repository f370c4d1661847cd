package main

// Exercise analysis prompts against a document from the command line:
//   go run ./cmd/prompttest -doc decree.pdf -op summary
//   go run ./cmd/prompttest -doc decree.pdf -op search -query "data protection"
//   go run ./cmd/prompttest -doc decree.pdf -op compliance -sectors "Energy,Banking" -render

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lexwatch-backend/internal/analyzer"
	"lexwatch-backend/internal/analyzer/prompts"
	"lexwatch-backend/internal/extract"
	"lexwatch-backend/internal/llm"
	azureclient "lexwatch-backend/internal/llm/azure"
	openaiclient "lexwatch-backend/internal/llm/openai"
	"lexwatch-backend/internal/shared/config"
)

type renderedStep struct {
	Step   prompts.Step
	Prompt string
}

func main() {
	cfg := config.Load()

	docPath := flag.String("doc", "", "Path to document file (pdf, docx or txt)")
	op := flag.String("op", "summary", "Operation: comprehensive|search|tracking|summary|structure|compliance|metadata|topics")
	query := flag.String("query", "", "Search query (op=search)")
	topic := flag.String("topic", "", "Regulation topic (op=tracking)")
	sectors := flag.String("sectors", "", "Comma-separated sectors (op=compliance)")
	render := flag.Bool("render", false, "Print filled prompts instead of calling the backend")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	outPath := flag.String("out", "", "Path to write JSON output (optional)")
	flag.Parse()

	if strings.TrimSpace(*docPath) == "" {
		exitErr("document path is required")
	}

	data, err := os.ReadFile(*docPath)
	if err != nil {
		exitErr(fmt.Sprintf("read document: %v", err))
	}
	fileName := filepath.Base(*docPath)
	mimeType, err := mimeFromExt(*docPath)
	if err != nil {
		exitErr(err.Error())
	}

	text, err := extract.ExtractTextFromBytes(context.Background(), data, mimeType, fileName)
	if err != nil {
		exitErr(fmt.Sprintf("extract document text: %v", err))
	}

	sectorList := splitSectors(*sectors)

	if *render {
		steps, err := renderSteps(*op, text, *query, *topic, sectorList)
		if err != nil {
			exitErr(err.Error())
		}
		for _, s := range steps {
			fmt.Printf("--- system (max_tokens=%d) ---\n%s\n--- prompt ---\n%s\n\n", s.Step.MaxTokens, s.Step.System, s.Prompt)
		}
		return
	}

	client, err := buildClient(cfg, *provider, *model)
	if err != nil {
		exitErr(err.Error())
	}
	an := analyzer.New(client, analyzer.NewCache())

	result, err := runOperation(an, *op, text, *query, *topic, sectorList)
	if err != nil {
		exitErr(err.Error())
	}

	pretty, err := prettyJSON(result)
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	if _, err := os.Stdout.Write(pretty); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
	if len(pretty) == 0 || pretty[len(pretty)-1] != '\n' {
		_, _ = os.Stdout.Write([]byte("\n"))
	}
}

func runOperation(an *analyzer.Analyzer, op, text, query, topic string, sectors []string) (any, error) {
	ctx := context.Background()
	switch strings.ToLower(strings.TrimSpace(op)) {
	case "comprehensive":
		return an.ComprehensiveDocumentAnalysis(ctx, text), nil
	case "search":
		if query == "" {
			return nil, fmt.Errorf("op=search requires -query")
		}
		return an.AIPoweredSearch(ctx, text, query), nil
	case "tracking":
		if topic == "" {
			return nil, fmt.Errorf("op=tracking requires -topic")
		}
		return an.AIRegulatoryTracking(ctx, text, topic), nil
	case "summary":
		return an.GenerateAISummary(ctx, text), nil
	case "structure":
		return an.ExtractDocumentStructure(ctx, text), nil
	case "compliance":
		if len(sectors) == 0 {
			return nil, fmt.Errorf("op=compliance requires -sectors")
		}
		return an.AssessComplianceImpact(ctx, text, sectors), nil
	default:
		return nil, fmt.Errorf("unsupported operation for live run: %s", op)
	}
}

func renderSteps(op, text, query, topic string, sectors []string) ([]renderedStep, error) {
	sector := "Energy"
	if len(sectors) > 0 {
		sector = sectors[0]
	}
	if query == "" {
		query = "data protection"
	}
	if topic == "" {
		topic = "GDPR"
	}

	switch strings.ToLower(strings.TrimSpace(op)) {
	case "comprehensive":
		return []renderedStep{
			{prompts.ComprehensiveStep, prompts.Comprehensive(text)},
		}, nil
	case "search":
		return []renderedStep{
			{prompts.SemanticMatchStep, prompts.SemanticMatch(query, text)},
			{prompts.RelevanceScoringStep, prompts.RelevanceScoring(query, "<matched concepts>")},
			{prompts.ExcerptExtractionStep, prompts.ExcerptExtraction(query, text)},
		}, nil
	case "tracking":
		return []renderedStep{
			{prompts.RegulationDetectionStep, prompts.RegulationDetection(topic, text)},
			{prompts.RelationshipClassificationStep, prompts.RelationshipClassification(topic, text)},
			{prompts.TemporalExtractionStep, prompts.TemporalExtraction(topic, text)},
			{prompts.EvolutionIndicatorsStep, prompts.EvolutionIndicators(topic, text)},
		}, nil
	case "summary":
		return []renderedStep{
			{prompts.DocumentTypeStep, prompts.DocumentType(text)},
			{prompts.MainPurposeStep, prompts.MainPurpose(text)},
			{prompts.KeyPointsStep, prompts.KeyPoints(text)},
			{prompts.LegalDomainsStep, prompts.LegalDomains(text)},
		}, nil
	case "structure":
		return []renderedStep{
			{prompts.SectionDetectionStep, prompts.SectionDetection(text)},
			{prompts.ArticleExtractionStep, prompts.ArticleExtraction(text)},
		}, nil
	case "compliance":
		return []renderedStep{
			{prompts.SectorRelevanceStep, prompts.SectorRelevance(sector, text)},
			{prompts.ComplianceRequirementsStep, prompts.ComplianceRequirements(sector, text)},
			{prompts.ImplementationComplexityStep, prompts.ImplementationComplexity(sector, "<requirements>")},
		}, nil
	case "metadata":
		return []renderedStep{
			{prompts.ReferenceNumberStep, prompts.ReferenceNumber(text)},
			{prompts.DateExtractionStep, prompts.DateExtraction(text)},
			{prompts.IssuingAuthorityStep, prompts.IssuingAuthority(text)},
			{prompts.GeographicScopeStep, prompts.GeographicScope(text)},
		}, nil
	case "topics":
		return []renderedStep{
			{prompts.LegalDomainsStep, prompts.LegalDomains(text)},
			{prompts.AffectedSectorsStep, prompts.AffectedSectors(text)},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported operation: %s", op)
	}
}

func buildClient(cfg config.Config, provider, model string) (llm.Client, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "azure":
		return azureclient.NewClient(cfg.AzureEndpoint, cfg.AzureDeployment, cfg.AzureAPIKey)
	case "", "openai":
		return openaiclient.NewClient(cfg.OpenAIAPIKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func splitSectors(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func mimeFromExt(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf", nil
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil
	case ".txt", ".md":
		return "text/plain", nil
	default:
		return "", fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}
}

func prettyJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(1)
}
