package insight

import (
	"encoding/json"
	"fmt"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

// ExtractionPrompt instructs the model to return the fixed Insights JSON
// schema. The id prefixes (FR-, NFR-, KD-) and key names must match the
// brdModel.Insights json tags exactly - the raw response is unmarshalled
// straight into that struct.
func ExtractionPrompt(doc brdModel.Document) string {
	content := doc.Content
	if content == "" {
		content = "Sample communication about project requirements"
	}

	return fmt.Sprintf(`You are a Business Requirements Document expert. Analyze the following communication and extract structured requirements.

Communication Source: %s
File: %s
Content: %s

Generate a JSON response with exactly this structure:
{
  "functionalRequirements": [
    {"id": "FR-01", "requirement": "...", "priority": "High|Medium|Low", "source": "..."},
    ... (generate 8-10 items)
  ],
  "nonFunctionalRequirements": [
    {"id": "NFR-01", "requirement": "...", "priority": "High|Medium|Low", "source": "..."},
    ... (generate 5 items)
  ],
  "keyDecisions": [
    {"id": "KD-01", "decision": "...", "madeBy": "...", "date": "..."},
    ... (generate 4 items)
  ],
  "stakeholders": [
    {"name": "...", "role": "...", "interest": "High|Medium|Low"},
    ... (generate 4 items)
  ],
  "timeline": [
    {"milestone": "...", "date": "...", "status": "Completed|In Progress|Planned"},
    ... (generate 4 items)
  ],
  "confidenceScore": 92,
  "projectName": "Project Alpha",
  "executiveSummary": "...",
  "businessObjectives": ["...", "...", "..."]
}

Return ONLY the JSON, no markdown.`, doc.Channel, doc.FileName, content)
}

// NarrativePrompt renders Insights into a prose BRD via a second model call.
func NarrativePrompt(insights brdModel.Insights) string {
	serialized, _ := json.MarshalIndent(insights, "", "  ")
	return fmt.Sprintf(`Create a professional Business Requirements Document based on:
%s

Format as a clean, professional document with sections:
1. Executive Summary
2. Business Objectives
3. Functional Requirements
4. Non-Functional Requirements
5. Stakeholder Map
6. Timeline
7. Risk Assessment

Keep it professional and concise.`, serialized)
}

// ChatPrompt assembles the grounded question-answering prompt. contextText is
// either retrieved chunks ahead of the serialized Insights, or the Insights
// alone when retrieval was not possible.
func ChatPrompt(contextText string, question string) string {
	return fmt.Sprintf(`You are a BRD expert assistant. Here is the context of the document and specific most relevant chunks:
%s

User question: %s

Answer concisely and helpfully based primarily on the context provided above. If the context doesn't mention something, state that.`, contextText, question)
}
