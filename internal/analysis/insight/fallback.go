package insight

import (
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

// Fallback returns the deterministic substitute Insights used whenever the
// extraction call fails or returns garbage. Pure constructor - a fresh value
// every call, callers may mutate their copy freely.
func Fallback() brdModel.Insights {
	return brdModel.Insights{
		ConfidenceScore:  config.FallbackConfidence,
		ProjectName:      "Project Alpha",
		ExecutiveSummary: "This Business Requirements Document captures all functional and non-functional requirements extracted from communications.",
		BusinessObjectives: []string{
			"Improve user experience",
			"Automate reporting workflows",
			"Enable multi-channel integration",
		},
		FunctionalRequirements: []brdModel.Requirement{
			{Id: "FR-01", Requirement: "User Login with OTP", Priority: "High", Source: "Meeting #3"},
			{Id: "FR-02", Requirement: "Dashboard with Analytics", Priority: "Medium", Source: "Email Thread"},
			{Id: "FR-03", Requirement: "Export Reports to PDF", Priority: "Medium", Source: "Email Thread"},
			{Id: "FR-04", Requirement: "Role-based Access Control", Priority: "High", Source: "Email Thread"},
			{Id: "FR-05", Requirement: "Real-time Notifications", Priority: "Medium", Source: "Chat Messages"},
			{Id: "FR-06", Requirement: "API Integration Support", Priority: "High", Source: "Meeting #1"},
			{Id: "FR-07", Requirement: "Audit Trail Logging", Priority: "High", Source: "Email Thread"},
			{Id: "FR-08", Requirement: "Multi-language Support", Priority: "Low", Source: "Meeting #3"},
		},
		NonFunctionalRequirements: []brdModel.Requirement{
			{Id: "NFR-01", Requirement: "System uptime 99.9%", Priority: "High", Source: "SLA Document"},
			{Id: "NFR-02", Requirement: "Page load < 2 seconds", Priority: "Medium", Source: "Email Thread"},
			{Id: "NFR-03", Requirement: "GDPR compliance", Priority: "High", Source: "Legal Team"},
			{Id: "NFR-04", Requirement: "Mobile responsive design", Priority: "Medium", Source: "Meeting #2"},
			{Id: "NFR-05", Requirement: "Data encryption at rest", Priority: "High", Source: "Security Audit"},
		},
		KeyDecisions: []brdModel.KeyDecision{
			{Id: "KD-01", Decision: "Use cloud-based infrastructure", MadeBy: "Tech Lead", Date: "2024-01-15"},
			{Id: "KD-02", Decision: "Adopt microservices architecture", MadeBy: "CTO", Date: "2024-01-20"},
			{Id: "KD-03", Decision: "Prioritize mobile-first design", MadeBy: "Product Manager", Date: "2024-02-01"},
			{Id: "KD-04", Decision: "Integrate Gemini AI for automation", MadeBy: "AI Team", Date: "2024-02-10"},
		},
		Stakeholders: []brdModel.Stakeholder{
			{Name: "John Smith", Role: "Product Manager", Interest: "High"},
			{Name: "Sarah Lee", Role: "Tech Lead", Interest: "High"},
			{Name: "Mike Johnson", Role: "Business Analyst", Interest: "Medium"},
			{Name: "Lisa Chen", Role: "End User Representative", Interest: "Medium"},
		},
		Timeline: []brdModel.TimelineEntry{
			{Milestone: "Requirements Gathering", Date: "2024-01-31", Status: "Completed"},
			{Milestone: "Design Phase", Date: "2024-02-28", Status: "Completed"},
			{Milestone: "Development Sprint 1", Date: "2024-03-31", Status: "In Progress"},
			{Milestone: "UAT & Launch", Date: "2024-04-30", Status: "Planned"},
		},
	}
}
