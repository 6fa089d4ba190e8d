package report

import "strings"

// Required key sets, in the order they are reported.
var (
	requiredTopLevel   = []string{"companyName", "identity", "operations", "culture", "recent", "interview", "cheatSheet"}
	requiredIdentity   = []string{"pronunciation", "structure", "industry", "history", "hq", "scale"}
	requiredOperations = []string{"products", "customers", "competitors", "swot"}
	requiredSWOT       = []string{"strengths", "weaknesses", "valueProp"}
)

// ValidationError reports every required path missing from a report
// candidate. Paths are dotted, ordered, and never repeated.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "AI response missing fields: " + strings.Join(e.Missing, ", ")
}

// Validate checks that a (possibly normalized) report candidate has every
// required key. Validation is shape-only: it enforces key presence, not value
// types or content quality, so empty strings and empty sequences are
// acceptable. Nested subfields are only checked when their parent is present
// and is an object, mirroring the top-level report.
func Validate(candidate map[string]any) error {
	collector := &missingPaths{}

	for _, key := range requiredTopLevel {
		if candidate == nil {
			collector.add(key)
			continue
		}
		if _, ok := candidate[key]; !ok {
			collector.add(key)
		}
	}

	if identity, ok := candidate["identity"].(map[string]any); ok {
		for _, key := range requiredIdentity {
			if _, present := identity[key]; !present {
				collector.add("identity." + key)
			}
		}
	}

	if operations, ok := candidate["operations"].(map[string]any); ok {
		for _, key := range requiredOperations {
			if _, present := operations[key]; !present {
				collector.add("operations." + key)
			}
		}
		if swot, ok := operations["swot"].(map[string]any); ok {
			for _, key := range requiredSWOT {
				if _, present := swot[key]; !present {
					collector.add("operations.swot." + key)
				}
			}
		}
	}

	if len(collector.paths) > 0 {
		return &ValidationError{Missing: collector.paths}
	}
	return nil
}

// missingPaths accumulates paths in first-seen order without duplicates.
type missingPaths struct {
	paths []string
	seen  map[string]bool
}

func (m *missingPaths) add(path string) {
	if m.seen == nil {
		m.seen = make(map[string]bool)
	}
	if m.seen[path] {
		return
	}
	m.seen[path] = true
	m.paths = append(m.paths, path)
}
