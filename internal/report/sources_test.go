package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/company-briefing/internal/llm"
)

func TestExtractSources(t *testing.T) {
	chunks := []llm.GroundingChunk{
		{Web: &llm.WebSource{Title: "Acme - About", URI: "https://acme.example/about"}},
		{Web: nil},
		{Web: &llm.WebSource{Title: "", URI: "https://no-title.example"}},
		{Web: &llm.WebSource{Title: "No URI", URI: ""}},
		{Web: &llm.WebSource{Title: "Acme News", URI: "https://news.example/acme"}},
		// Duplicates survive; dedup is a client concern.
		{Web: &llm.WebSource{Title: "Acme - About", URI: "https://acme.example/about"}},
	}

	got := ExtractSources(chunks)

	assert.Equal(t, []GroundingSource{
		{Title: "Acme - About", URI: "https://acme.example/about"},
		{Title: "Acme News", URI: "https://news.example/acme"},
		{Title: "Acme - About", URI: "https://acme.example/about"},
	}, got)
}

func TestExtractSourcesEmpty(t *testing.T) {
	// Always a non-nil slice, so the JSON envelope carries [] rather than null.
	assert.NotNil(t, ExtractSources(nil))
	assert.Empty(t, ExtractSources(nil))
	assert.Empty(t, ExtractSources([]llm.GroundingChunk{{Web: nil}}))
}
