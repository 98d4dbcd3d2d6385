package brdModel

// Insights is the structured extraction produced by the model (or the
// fallback constructor). Field names mirror the JSON schema the model is
// instructed to return, so the raw response unmarshals directly into it.
type Insights struct {
	FunctionalRequirements    []Requirement   `json:"functionalRequirements"`
	NonFunctionalRequirements []Requirement   `json:"nonFunctionalRequirements"`
	KeyDecisions              []KeyDecision   `json:"keyDecisions"`
	Stakeholders              []Stakeholder   `json:"stakeholders"`
	Timeline                  []TimelineEntry `json:"timeline"`
	ConfidenceScore           int             `json:"confidenceScore"`
	ProjectName               string          `json:"projectName"`
	ExecutiveSummary          string          `json:"executiveSummary"`
	BusinessObjectives        []string        `json:"businessObjectives"`
}

// Requirement covers both FR-xx and NFR-xx entries.
type Requirement struct {
	Id          string `json:"id"`
	Requirement string `json:"requirement"`
	Priority    string `json:"priority"`
	Source      string `json:"source"`
}

type KeyDecision struct {
	Id       string `json:"id"`
	Decision string `json:"decision"`
	MadeBy   string `json:"madeBy"`
	Date     string `json:"date"`
}

type Stakeholder struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Interest string `json:"interest"`
}

type TimelineEntry struct {
	Milestone string `json:"milestone"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}
