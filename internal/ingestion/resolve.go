// Package ingestion resolves report queries. A query is either a company
// name, used as-is, or a URL, in which case the page is fetched and a company
// display name extracted from its metadata.
package ingestion

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/jonathan/company-briefing/internal/fetch"
)

// Resolver resolves URL queries to company names. The zero value is usable.
type Resolver struct {
	// FetchOptions overrides the fetch defaults; nil uses them.
	FetchOptions *fetch.Options
}

// IsURL reports whether a query should be treated as a web address.
// Bare domains like "stripe.com" count; plain names do not.
func IsURL(query string) bool {
	query = strings.TrimSpace(query)
	if strings.HasPrefix(query, "http://") || strings.HasPrefix(query, "https://") {
		u, err := url.Parse(query)
		return err == nil && u.Host != ""
	}
	// Bare domain heuristic: one token containing a dot, no spaces.
	if strings.ContainsAny(query, " \t") {
		return false
	}
	host, _, _ := strings.Cut(query, "/")
	return strings.Contains(host, ".") && !strings.HasPrefix(host, ".") && !strings.HasSuffix(host, ".")
}

// Resolve returns the best research subject for a query. URL queries resolve
// to the page's site name; everything else, and every failure, returns the
// query unchanged.
func (r *Resolver) Resolve(ctx context.Context, query string) string {
	query = strings.TrimSpace(query)
	if !IsURL(query) {
		return query
	}

	target := query
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = "https://" + target
	}

	result, err := fetch.URL(ctx, target, r.FetchOptions)
	if err != nil {
		log.Printf("[ingestion] could not resolve %q: %v", query, err)
		return query
	}

	if name := fetch.SiteName(result.HTML); name != "" {
		log.Printf("[ingestion] resolved %q to %q", query, name)
		return name
	}
	return query
}
