package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePassthrough(t *testing.T) {
	raw := map[string]any{
		"companyName": "Acme",
		"identity":    map[string]any{"hq": "Berlin"},
		"extraField":  "kept",
	}

	got, path := Normalize(raw)

	assert.Equal(t, PathPassthrough, path)
	// Passthrough must return the identical value, unknown keys included.
	assert.Equal(t, raw, got)
}

func TestNormalizeAlternateSchema(t *testing.T) {
	raw := map[string]any{
		"company_name":   "Acme Robotics",
		"industry":       []any{"Robotics", "Automation"},
		"founding_date":  "1998",
		"founders":       []any{"A. Smith", "B. Jones"},
		"parent_company": "Acme Holdings",
		"headquarters": map[string]any{
			"city":    "Munich",
			"country": "Germany",
		},
		"financials": map[string]any{
			"number_of_employees": float64(1200),
		},
		"key_products_and_services": []any{"Arms", "Grippers"},
		"major_competitors":         []any{"RoboCo", map[string]any{"name": "Mechanix"}},
		"mission_statement":         "Automate everything.",
		"recent_news_and_major_developments": []any{
			map[string]any{"date": "2025-01-02", "description": "Opened new plant"},
			map[string]any{"description": "Raised Series C"},
			"Acquired a startup",
		},
	}

	got, path := Normalize(raw)
	require.Equal(t, PathNormalized, path)

	assert.Equal(t, "Acme Robotics", got["companyName"])

	identity, ok := got["identity"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Acme Robotics", identity["pronunciation"])
	assert.Equal(t, "Subsidiary of Acme Holdings", identity["structure"])
	assert.Equal(t, "Robotics, Automation", identity["industry"])
	assert.Equal(t, "Founded 1998 by A. Smith, B. Jones", identity["history"])
	assert.Equal(t, "Munich, Germany", identity["hq"])
	assert.Equal(t, "1200 employees", identity["scale"])

	operations, ok := got["operations"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Arms, Grippers", operations["products"])
	assert.Equal(t, []any{
		map[string]any{"name": "RoboCo", "differentiation": ""},
		map[string]any{"name": "Mechanix", "differentiation": ""},
	}, operations["competitors"])

	culture, ok := got["culture"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Automate everything.", culture["mission"])

	recent, ok := got["recent"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{
		"2025-01-02: Opened new plant",
		"Raised Series C",
		"Acquired a startup",
	}, recent["news"])
}

func TestNormalizeAlternateSchemaDefaults(t *testing.T) {
	// A single marker is enough; everything unmapped defaults to empty.
	got, path := Normalize(map[string]any{"industry": "Retail"})
	require.Equal(t, PathNormalized, path)

	identity := got["identity"].(map[string]any)
	assert.Equal(t, "Independent", identity["structure"])
	assert.Equal(t, "", identity["history"], "no founding date means no history line")
	assert.Equal(t, "", identity["hq"])
	assert.Equal(t, "", identity["scale"])

	// Normalized output always carries sequences, never null.
	operations := got["operations"].(map[string]any)
	assert.Equal(t, []any{}, operations["competitors"])
	recent := got["recent"].(map[string]any)
	assert.Equal(t, []any{}, recent["news"])
	interview := got["interview"].(map[string]any)
	assert.Equal(t, []any{}, interview["themes"])
	cheatSheet := got["cheatSheet"].(map[string]any)
	assert.Equal(t, []any{}, cheatSheet["bullets"])
}

func TestNormalizeUnrecognized(t *testing.T) {
	raw := map[string]any{"something": "else"}
	got, path := Normalize(raw)
	assert.Equal(t, PathUnrecognized, path)
	assert.Equal(t, raw, got)
}

func TestNormalizeNil(t *testing.T) {
	got, path := Normalize(nil)
	assert.Equal(t, PathUnrecognized, path)
	assert.Nil(t, got)
}

func TestNormalizeValidatesClean(t *testing.T) {
	// Every normalized report must pass shape validation, even a minimal one.
	got, path := Normalize(map[string]any{"company_name": "Acme"})
	require.Equal(t, PathNormalized, path)
	assert.NoError(t, Validate(got))
}

func TestHeadquartersPartialFields(t *testing.T) {
	tests := []struct {
		name string
		hq   map[string]any
		want string
	}{
		{"all fields", map[string]any{"address": "1 Main St", "city": "Austin", "state": "TX", "country": "USA"}, "1 Main St, Austin, TX, USA"},
		{"city and country", map[string]any{"city": "Paris", "country": "France"}, "Paris, France"},
		{"country only", map[string]any{"country": "Japan"}, "Japan"},
		{"empty object", map[string]any{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := headquartersFrom(map[string]any{"headquarters": tt.hq})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"string", "hello", "hello"},
		{"whole float", float64(5000), "5000"},
		{"fractional float", 3.5, "3.5"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"object", map[string]any{"a": 1}, ""},
		{"array", []any{"a"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stringValue(tt.input))
		})
	}
}
