// Package report implements the company report pipeline: prompt construction,
// response normalization, shape validation, and grounding source extraction.
package report

import "encoding/json"

// Competitor is one named competitor with an optional differentiation note.
type Competitor struct {
	Name            string `json:"name"`
	Differentiation string `json:"differentiation"`
}

// SWOT is the strengths/weaknesses/value-proposition block.
type SWOT struct {
	Strengths  string `json:"strengths"`
	Weaknesses string `json:"weaknesses"`
	ValueProp  string `json:"valueProp"`
}

// Identity covers company fundamentals.
type Identity struct {
	Pronunciation string `json:"pronunciation"`
	Structure     string `json:"structure"`
	Industry      string `json:"industry"`
	History       string `json:"history"`
	HQ            string `json:"hq"`
	Scale         string `json:"scale"`
}

// Operations covers products, customers, and the competitive landscape.
type Operations struct {
	Products    string       `json:"products"`
	Customers   string       `json:"customers"`
	Competitors []Competitor `json:"competitors"`
	SWOT        SWOT         `json:"swot"`
}

// Culture covers mission and reputation.
type Culture struct {
	Mission     string `json:"mission"`
	Reputation  string `json:"reputation"`
	InsiderView string `json:"insiderView"`
}

// Recent covers news and current developments.
type Recent struct {
	News          []string `json:"news"`
	Growth        string   `json:"growth"`
	Announcements string   `json:"announcements"`
	Awareness     string   `json:"awareness"`
}

// Interview covers interview-specific intelligence.
type Interview struct {
	Persona string   `json:"persona"`
	Themes  []string `json:"themes"`
	Skills  []string `json:"skills"`
	Edge    []string `json:"edge"`
}

// CheatSheet is the condensed pre-interview summary.
type CheatSheet struct {
	Bullets         []string `json:"bullets"`
	FastFacts       []string `json:"fastFacts"`
	ImpressStrategy string   `json:"impressStrategy"`
}

// CompanyReport is the canonical, validated report shape the clients render.
// Every field is guaranteed present after validation; strings may be empty
// and sequences may be empty but never absent.
type CompanyReport struct {
	CompanyName string     `json:"companyName"`
	Identity    Identity   `json:"identity"`
	Operations  Operations `json:"operations"`
	Culture     Culture    `json:"culture"`
	Recent      Recent     `json:"recent"`
	Interview   Interview  `json:"interview"`
	CheatSheet  CheatSheet `json:"cheatSheet"`
}

// GroundingSource is a citation (title + URI) the model used to support its
// answer. Extraction keeps only entries where both are present.
type GroundingSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Result is a complete pipeline outcome. Report holds the candidate as it was
// validated: a normalized report round-trips through CompanyReport, a
// passthrough report stays exactly as the model produced it.
type Result struct {
	Report  map[string]any    `json:"report"`
	Sources []GroundingSource `json:"sources"`
}

// emptyReport returns a CompanyReport with all sequences initialized, so the
// JSON form always carries [] rather than null.
func emptyReport() *CompanyReport {
	return &CompanyReport{
		Operations: Operations{Competitors: []Competitor{}},
		Recent:     Recent{News: []string{}},
		Interview:  Interview{Themes: []string{}, Skills: []string{}, Edge: []string{}},
		CheatSheet: CheatSheet{Bullets: []string{}, FastFacts: []string{}},
	}
}

// asMap converts a typed report to the generic map form the validator and
// HTTP layer operate on.
func asMap(r *CompanyReport) map[string]any {
	data, err := json.Marshal(r)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]any{}
	}
	return m
}
