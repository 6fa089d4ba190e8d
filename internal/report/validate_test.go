package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() map[string]any {
	return map[string]any{
		"companyName": "Acme",
		"identity": map[string]any{
			"pronunciation": "", "structure": "", "industry": "",
			"history": "", "hq": "", "scale": "",
		},
		"operations": map[string]any{
			"products": "", "customers": "", "competitors": []any{},
			"swot": map[string]any{"strengths": "", "weaknesses": "", "valueProp": ""},
		},
		"culture":    map[string]any{},
		"recent":     map[string]any{},
		"interview":  map[string]any{},
		"cheatSheet": map[string]any{},
	}
}

func TestValidateAccepts(t *testing.T) {
	assert.NoError(t, Validate(validCandidate()))
}

func TestValidateEmptyValuesAccepted(t *testing.T) {
	// Shape-only: empty strings and empty sequences satisfy the check.
	candidate := validCandidate()
	candidate["companyName"] = ""
	assert.NoError(t, Validate(candidate))
}

func TestValidateMissingTopLevel(t *testing.T) {
	candidate := validCandidate()
	delete(candidate, "recent")
	delete(candidate, "cheatSheet")

	err := Validate(candidate)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"recent", "cheatSheet"}, ve.Missing)
	assert.Equal(t, "AI response missing fields: recent, cheatSheet", err.Error())
}

func TestValidateMissingNested(t *testing.T) {
	candidate := validCandidate()
	identity := candidate["identity"].(map[string]any)
	delete(identity, "hq")
	swot := candidate["operations"].(map[string]any)["swot"].(map[string]any)
	delete(swot, "valueProp")

	var ve *ValidationError
	require.ErrorAs(t, Validate(candidate), &ve)
	assert.Equal(t, []string{"identity.hq", "operations.swot.valueProp"}, ve.Missing)
}

func TestValidateNonObjectParentSkipsChildren(t *testing.T) {
	// A wrong-typed parent is reported once, not expanded into child paths.
	candidate := validCandidate()
	candidate["identity"] = "not an object"

	err := Validate(candidate)
	assert.NoError(t, err, "identity key is present; its type is not checked")

	delete(candidate, "identity")
	var ve *ValidationError
	require.ErrorAs(t, Validate(candidate), &ve)
	assert.Equal(t, []string{"identity"}, ve.Missing)
}

func TestValidateNilCandidate(t *testing.T) {
	var ve *ValidationError
	require.ErrorAs(t, Validate(nil), &ve)
	assert.Equal(t, requiredTopLevel, ve.Missing)
}

func TestValidateReportsStableOrder(t *testing.T) {
	// Missing paths follow the declared key order, regardless of map iteration.
	for i := 0; i < 20; i++ {
		var ve *ValidationError
		require.ErrorAs(t, Validate(map[string]any{}), &ve)
		assert.Equal(t, requiredTopLevel, ve.Missing)
	}
}
