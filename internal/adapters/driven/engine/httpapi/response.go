package httpapi

import (
	"strconv"
	"strings"

	"github.com/findlab/everfind/internal/core/domain"
)

// searchResponse mirrors the server's JSON body.
type searchResponse struct {
	TotalResults int64       `json:"totalResults"`
	Results      []rawResult `json:"results"`
}

// rawResult is one wire-format hit. The server emits numeric fields
// as strings and leaves them empty for columns it did not index.
type rawResult struct {
	Type         string `json:"type"`
	Name         string `json:"name"`
	Path         string `json:"path"`
	Size         string `json:"size"`
	DateModified string `json:"date_modified"`
	DateCreated  string `json:"date_created"`
	DateAccessed string `json:"date_accessed"`
	Attributes   string `json:"attributes"`
}

// normalize maps one wire result into the canonical shape. Empty or
// malformed numeric strings become 0, never an error; dates are raw
// FILETIME tick counts and go through the shared epoch shift.
func (r rawResult) normalize() domain.SearchResult {
	res := domain.SearchResult{
		Name:         r.Name,
		Path:         r.Path,
		Size:         parseSize(r.Size),
		DateModified: domain.FiletimeToUnixMilli(parseTicks(r.DateModified)),
		DateCreated:  domain.FiletimeToUnixMilli(parseTicks(r.DateCreated)),
		DateAccessed: domain.FiletimeToUnixMilli(parseTicks(r.DateAccessed)),
		IsDirectory:  r.Type == "folder",
	}
	if r.Attributes != "" {
		if attrs, err := strconv.ParseUint(strings.TrimSpace(r.Attributes), 10, 32); err == nil {
			res.ApplyAttributes(uint32(attrs))
		}
	}
	return res
}

func parseSize(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseTicks(s string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
