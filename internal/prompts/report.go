package prompts

// reportFile is the embedded prompt file for company report generation.
const reportFile = "report.json"

// ReportPrompts returns the system and user instructions for a company
// report query. The query must be non-empty and trimmed; that is enforced
// by the HTTP handler.
func ReportPrompts(query string) (system, user string) {
	system = MustGet(reportFile, "report.system")
	user = Format(MustGet(reportFile, "report.user"), map[string]string{"Query": query})
	return system, user
}
