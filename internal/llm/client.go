// Package llm provides the generation client abstraction over LLM providers.
package llm

import (
	"context"
	"fmt"
	"time"

	genai "google.golang.org/genai"
)

// WebSource is a web page the model cited while grounding its answer.
// Either field may be missing; filtering is the caller's concern.
type WebSource struct {
	Title string
	URI   string
}

// GroundingChunk is one citation entry from the provider's grounding metadata.
type GroundingChunk struct {
	Web *WebSource
}

// Generation is the raw outcome of one grounded generation call: free-form
// text (expected to be JSON, possibly fenced) plus citation chunks.
type Generation struct {
	Text   string
	Chunks []GroundingChunk
}

// Client is an abstraction over LLM providers.
type Client interface {
	// GenerateGrounded generates content with web-search grounding enabled
	// and returns the raw text plus grounding citations.
	GenerateGrounded(ctx context.Context, system, user string) (*Generation, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client using an API key.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// retryBaseDelay is the pause before the single transport retry.
const retryBaseDelay = 500 * time.Millisecond

// GenerateGrounded generates content with the Google Search tool enabled.
// Transport failures get exactly one retry; content-level problems (empty
// candidates, unparsable output) never do, since retrying cannot fix them.
func (c *GeminiClient) GenerateGrounded(ctx context.Context, system, user string) (*Generation, error) {
	modelName := c.config.GetModel(TierStandard)
	if modelName == "" {
		return nil, fmt.Errorf("no model configured")
	}

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		Temperature:       genai.Ptr[float32](0.2),
	}

	var resp *genai.GenerateContentResponse
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		resp, err = c.client.Models.GenerateContent(ctx, modelName,
			[]*genai.Content{{Parts: []*genai.Part{{Text: user}}}},
			genConfig,
		)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("generation canceled: %w", ctx.Err())
		}
		time.Sleep(retryBaseDelay)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return &Generation{
		Text:   resp.Text(),
		Chunks: extractGroundingChunks(resp),
	}, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	// The genai client holds no resources that need explicit release.
	return nil
}

// extractGroundingChunks pulls citation chunks out of the first candidate's
// grounding metadata. Responses without grounding yield nil.
func extractGroundingChunks(resp *genai.GenerateContentResponse) []GroundingChunk {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}

	chunks := make([]GroundingChunk, 0, len(meta.GroundingChunks))
	for _, gc := range meta.GroundingChunks {
		if gc == nil {
			continue
		}
		chunk := GroundingChunk{}
		if gc.Web != nil {
			chunk.Web = &WebSource{
				Title: gc.Web.Title,
				URI:   gc.Web.URI,
			}
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}
