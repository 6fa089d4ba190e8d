package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/company-briefing/internal/cache/memory"
	"github.com/jonathan/company-briefing/internal/llm"
	"github.com/jonathan/company-briefing/internal/prompts"
)

// ErrParse indicates the model returned text that is not valid JSON.
// Never retried: it stems from content, not transport.
var ErrParse = errors.New("failed to parse generator response")

// UpstreamError wraps a provider failure (network, auth, quota).
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// QueryResolver turns a raw query into a better research subject, e.g. a
// company display name resolved from a URL. Best effort: implementations
// return the input unchanged when resolution fails.
type QueryResolver interface {
	Resolve(ctx context.Context, query string) string
}

// Options configures a Service.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
	DevMode   bool
	Resolver  QueryResolver
}

// Service runs the report pipeline: prompt construction, grounded
// generation, unwrapping, normalization, validation, source extraction.
// It holds no per-request state; the cache and flight group are the only
// shared structures and both are safe for concurrent use.
type Service struct {
	client   llm.Client
	resolver QueryResolver
	cache    *memory.Cache[string, *Result]
	group    singleflight.Group
	devMode  bool
}

// NewService creates a report service around a generation client.
func NewService(client llm.Client, opts Options) *Service {
	return &Service{
		client:   client,
		resolver: opts.Resolver,
		cache:    memory.New[string, *Result](opts.CacheSize, opts.CacheTTL),
		devMode:  opts.DevMode,
	}
}

// Generate produces a validated report for a company name or URL.
// Identical concurrent queries share one upstream call, and recent results
// are served from the in-memory cache without touching the provider.
func (s *Service) Generate(ctx context.Context, query string) (*Result, error) {
	key := strings.ToLower(strings.TrimSpace(query))

	if result, ok := s.cache.Get(key); ok {
		log.Printf("[report] cache hit for %q", key)
		return result, nil
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.generate(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Printf("[report] coalesced duplicate in-flight query %q", key)
	}

	result := v.(*Result)
	s.cache.Set(key, result)
	return result, nil
}

func (s *Service) generate(ctx context.Context, query string) (*Result, error) {
	subject := query
	if s.resolver != nil {
		subject = s.resolver.Resolve(ctx, query)
	}

	system, user := prompts.ReportPrompts(subject)

	generation, err := s.client.GenerateGrounded(ctx, system, user)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	jsonString := llm.CleanJSONBlock(generation.Text)

	var parsed any
	if err := json.Unmarshal([]byte(jsonString), &parsed); err != nil {
		if s.devMode {
			log.Printf("[report] unparsable model output: %s", generation.Text)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	// Non-object JSON (arrays, scalars) is not a parse failure; it is an
	// unrecognized shape for the validator to reject field by field.
	candidate, _ := parsed.(map[string]any)

	candidate, path := Normalize(candidate)
	log.Printf("[report] normalization path for %q: %s", query, path)

	if err := Validate(candidate); err != nil {
		return nil, err
	}

	CleanCandidate(candidate)

	return &Result{
		Report:  candidate,
		Sources: ExtractSources(generation.Chunks),
	}, nil
}
