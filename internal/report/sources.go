package report

import "github.com/jonathan/company-briefing/internal/llm"

// ExtractSources pulls grounding citations out of the generation metadata.
// Only chunks whose web reference carries both a non-empty title and a
// non-empty URI survive; relative order is preserved and duplicates are kept.
func ExtractSources(chunks []llm.GroundingChunk) []GroundingSource {
	sources := make([]GroundingSource, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.Web == nil {
			continue
		}
		if chunk.Web.Title == "" || chunk.Web.URI == "" {
			continue
		}
		sources = append(sources, GroundingSource{
			Title: chunk.Web.Title,
			URI:   chunk.Web.URI,
		})
	}
	return sources
}
