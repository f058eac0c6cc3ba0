package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/findlab/everfind/internal/core/domain"
)

// Query-string parameters of the engine's HTTP server.
const (
	paramSearch        = "search"
	paramJSON          = "json"
	paramMatchCase     = "case"
	paramWholeWord     = "wholeword"
	paramRegex         = "regex"
	paramMatchPath     = "path"
	paramCount         = "count"
	paramOffset        = "offset"
	paramSort          = "sort"
	paramAscending     = "ascending"
	paramPathColumn    = "path_column"
	paramSizeColumn    = "size_column"
	paramDateModColumn = "date_modified_column"
	paramDateCrColumn  = "date_created_column"
)

// buildQuery translates canonical search options into the server's
// query-string vocabulary. The hidden/system/folder toggles have no
// parameter and are dropped silently.
func buildQuery(query string, opts domain.SearchOptions) url.Values {
	params := url.Values{}
	params.Set(paramSearch, query)
	params.Set(paramJSON, "1")
	params.Set(paramPathColumn, "1")
	params.Set(paramSizeColumn, "1")
	params.Set(paramDateModColumn, "1")
	params.Set(paramDateCrColumn, "1")

	if opts.MatchCase {
		params.Set(paramMatchCase, "1")
	}
	if opts.MatchWholeWord {
		params.Set(paramWholeWord, "1")
	}
	if opts.Regex {
		params.Set(paramRegex, "1")
	}
	if opts.MatchPath {
		params.Set(paramMatchPath, "1")
	}
	if opts.MaxResults > 0 {
		params.Set(paramCount, strconv.Itoa(opts.MaxResults))
	}
	if opts.Offset > 0 {
		params.Set(paramOffset, strconv.Itoa(opts.Offset))
	}
	if opts.SortBy != "" {
		params.Set(paramSort, sortParam(opts.SortBy))
		if opts.SortAscending {
			params.Set(paramAscending, "1")
		} else {
			params.Set(paramAscending, "0")
		}
	}
	return params
}

// sortParam maps the shared sort vocabulary onto the server's sort
// names. Unknown fields fall back to name order.
func sortParam(field domain.SortField) string {
	switch field {
	case domain.SortByPath:
		return "path"
	case domain.SortBySize:
		return "size"
	case domain.SortByDateModified:
		return "date_modified"
	default:
		return "name"
	}
}

// get issues one request and decodes the JSON body. It honours the
// optional rate limiter and Basic Auth credentials.
func (p *Provider) get(ctx context.Context, params url.Values) (*searchResponse, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	u, err := url.Parse(p.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if p.cfg.Username != "" || p.cfg.Password != "" {
		req.SetBasicAuth(p.cfg.Username, p.cfg.Password)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &parsed, nil
}
