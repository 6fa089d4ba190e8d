package report

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizePath identifies which branch the normalizer took, for observability.
type NormalizePath string

// Normalizer decision paths.
const (
	// PathPassthrough means the raw output already carried a companyName key
	// and was accepted as canonical without modification.
	PathPassthrough NormalizePath = "passthrough"
	// PathNormalized means a recognized alternate schema was mapped onto the
	// canonical shape.
	PathNormalized NormalizePath = "normalized"
	// PathUnrecognized means neither condition held; the value passes through
	// unchanged and the validator is the safety net.
	PathUnrecognized NormalizePath = "unrecognized"
)

// alternateMarkers are the keys whose presence identifies the known
// alternate model-output schema (snake_case research dump).
var alternateMarkers = []string{"company_name", "industry", "key_products_and_services"}

// Normalize maps raw model output onto the canonical report shape.
//
// Decision rule: output that already has a companyName key is treated as
// canonical and passed through unchanged. Output exhibiting an alternate
// schema marker gets a field-by-field mapping; fields with no equivalent in
// the alternate schema default to empty strings or empty sequences. Anything
// else passes through for the validator to reject.
func Normalize(raw map[string]any) (map[string]any, NormalizePath) {
	if raw == nil {
		return nil, PathUnrecognized
	}
	if _, ok := raw["companyName"]; ok {
		return raw, PathPassthrough
	}
	if !hasAlternateMarker(raw) {
		return raw, PathUnrecognized
	}

	r := emptyReport()

	name := stringValue(raw["company_name"])
	r.CompanyName = name
	r.Identity.Pronunciation = name
	r.Identity.Structure = structureFrom(raw)
	r.Identity.Industry = joinOrString(raw["industry"])
	r.Identity.History = historyFrom(raw)
	r.Identity.HQ = headquartersFrom(raw)
	r.Identity.Scale = scaleFrom(raw)

	r.Operations.Products = joinOrString(raw["key_products_and_services"])
	r.Operations.Competitors = competitorsFrom(raw["major_competitors"])

	r.Culture.Mission = stringValue(raw["mission_statement"])

	r.Recent.News = newsFrom(raw["recent_news_and_major_developments"])

	return asMap(r), PathNormalized
}

func hasAlternateMarker(raw map[string]any) bool {
	for _, marker := range alternateMarkers {
		if _, ok := raw[marker]; ok {
			return true
		}
	}
	return false
}

// structureFrom reports corporate structure: a named parent makes the company
// a subsidiary, otherwise it is assumed independent.
func structureFrom(raw map[string]any) string {
	if parent := stringValue(raw["parent_company"]); parent != "" {
		return fmt.Sprintf("Subsidiary of %s", parent)
	}
	return "Independent"
}

// historyFrom synthesizes a founding sentence, but only when a founding date
// is known; founders alone are not enough to anchor it.
func historyFrom(raw map[string]any) string {
	date := stringValue(raw["founding_date"])
	if date == "" {
		return ""
	}
	return fmt.Sprintf("Founded %s by %s", date, joinOrString(raw["founders"]))
}

// headquartersFrom flattens a nested headquarters object into one line,
// stripping the separators left by absent leading/trailing parts.
func headquartersFrom(raw map[string]any) string {
	hq, ok := raw["headquarters"].(map[string]any)
	if !ok {
		return ""
	}
	joined := strings.Join([]string{
		stringValue(hq["address"]),
		stringValue(hq["city"]),
		stringValue(hq["state"]),
		stringValue(hq["country"]),
	}, ", ")
	return strings.Trim(joined, ", ")
}

func scaleFrom(raw map[string]any) string {
	fin, ok := raw["financials"].(map[string]any)
	if !ok {
		return ""
	}
	count := stringValue(fin["number_of_employees"])
	if count == "" {
		return ""
	}
	return fmt.Sprintf("%s employees", count)
}

func competitorsFrom(v any) []Competitor {
	list, ok := v.([]any)
	if !ok {
		return []Competitor{}
	}
	competitors := make([]Competitor, 0, len(list))
	for _, entry := range list {
		name := stringValue(entry)
		if name == "" {
			// Entries may come as {"name": ...} objects.
			if m, ok := entry.(map[string]any); ok {
				name = stringValue(m["name"])
			}
		}
		if name == "" {
			continue
		}
		// The alternate schema never carries differentiation detail.
		competitors = append(competitors, Competitor{Name: name, Differentiation: ""})
	}
	return competitors
}

// newsFrom renders a news/developments list to strings. Object entries become
// "{date}: {description}" when dated, bare descriptions otherwise; string
// entries pass through.
func newsFrom(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return []string{}
	}
	news := make([]string, 0, len(list))
	for _, entry := range list {
		switch e := entry.(type) {
		case string:
			news = append(news, e)
		case map[string]any:
			desc := stringValue(e["description"])
			if date := stringValue(e["date"]); date != "" {
				news = append(news, fmt.Sprintf("%s: %s", date, desc))
			} else {
				news = append(news, desc)
			}
		}
	}
	return news
}

// joinOrString joins a list value with ", ", passes strings through, and
// falls back to empty for anything else.
func joinOrString(v any) string {
	if list, ok := v.([]any); ok {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			parts = append(parts, stringValue(item))
		}
		return strings.Join(parts, ", ")
	}
	return stringValue(v)
}

// stringValue renders scalar JSON values as strings; objects, arrays, and
// null render empty. Whole numbers print without a decimal point.
func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
