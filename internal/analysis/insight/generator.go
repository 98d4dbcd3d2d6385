package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/rag/llm"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/pkg/logger_i"
)

var logger = logger_i.NewLogger("InsightGenerator")

// Generate runs the structured-extraction call. The bool reports whether the
// insights are model-backed; on any upstream or parse failure the fallback
// set is returned instead so the pipeline never aborts.
func Generate(ctx context.Context, provider llm.Provider, doc brdModel.Document) (brdModel.Insights, bool) {
	log := logger.WithTrace(ctx)

	raw, err := provider.Generate(ctx, ExtractionPrompt(doc))
	if err != nil {
		log.Error("Insight generation call failed, using fallback", "error", err)
		return Fallback(), false
	}

	insights, err := Parse(raw)
	if err != nil {
		log.Error("Insight response unparseable, using fallback", "error", err)
		return Fallback(), false
	}
	return insights, true
}

// Parse strips any markdown code fences, unmarshals the model response and
// repairs the shape where possible. A response missing the requirement lists
// entirely counts as a parse failure.
func Parse(raw string) (brdModel.Insights, error) {
	var insights brdModel.Insights

	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	if err := json.Unmarshal([]byte(cleaned), &insights); err != nil {
		return insights, fmt.Errorf("insights parse: %w", err)
	}
	if len(insights.FunctionalRequirements) == 0 && len(insights.NonFunctionalRequirements) == 0 {
		return insights, fmt.Errorf("insights parse: no requirements extracted")
	}

	// model occasionally omits or inflates the score
	if insights.ConfidenceScore <= 0 {
		insights.ConfidenceScore = config.ProgressConfidenceCeiling
	}
	if insights.ConfidenceScore > 100 {
		insights.ConfidenceScore = 100
	}
	return insights, nil
}

// GenerateNarrative renders the insights into prose BRD text. The failure
// path is a deterministic template, so no second model dependency exists
// when the provider is down.
func GenerateNarrative(ctx context.Context, provider llm.Provider, insights brdModel.Insights) string {
	text, err := provider.Generate(ctx, NarrativePrompt(insights))
	if err != nil {
		logger.WithTrace(ctx).Error("Narrative generation failed, rendering template", "error", err)
		return RenderFallbackBRD(insights)
	}
	return text
}

// RenderFallbackBRD builds the BRD text directly from the Insights fields.
func RenderFallbackBRD(insights brdModel.Insights) string {
	var b strings.Builder

	projectName := insights.ProjectName
	if projectName == "" {
		projectName = "Project Alpha"
	}
	summary := insights.ExecutiveSummary
	if summary == "" {
		summary = "This document outlines the business requirements for the project."
	}

	fmt.Fprintf(&b, "# Business Requirements Document: %s\n\n", projectName)
	fmt.Fprintf(&b, "## 1. Executive Summary\n%s\n\n", summary)

	b.WriteString("## 2. Business Objectives\n")
	for _, o := range insights.BusinessObjectives {
		fmt.Fprintf(&b, "- %s\n", o)
	}

	b.WriteString("\n## 3. Functional Requirements\n")
	for _, r := range insights.FunctionalRequirements {
		fmt.Fprintf(&b, "- **%s**: %s (Priority: %s)\n", r.Id, r.Requirement, r.Priority)
	}

	b.WriteString("\n## 4. Non-Functional Requirements\n")
	for _, r := range insights.NonFunctionalRequirements {
		fmt.Fprintf(&b, "- **%s**: %s\n", r.Id, r.Requirement)
	}

	b.WriteString("\n## 5. Stakeholders\n")
	for _, s := range insights.Stakeholders {
		fmt.Fprintf(&b, "- **%s** (%s): %s interest\n", s.Name, s.Role, s.Interest)
	}

	return b.String()
}
