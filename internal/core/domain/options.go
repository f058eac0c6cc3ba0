package domain

// SortField selects the engine-side sort column. Each transport maps
// these onto its own sort vocabulary; the result order is always the
// transport's, never re-sorted by this layer.
type SortField string

// Sort fields understood by at least one transport.
const (
	SortByName         SortField = "name"
	SortByPath         SortField = "path"
	SortBySize         SortField = "size"
	SortByDateModified SortField = "date_modified"
)

// SearchOptions configures a search query.
//
// Feature coverage varies by transport. An adapter that cannot express
// an option silently ignores it rather than failing; this is a
// deliberate compatibility contract, not an oversight.
type SearchOptions struct {
	// MatchCase makes the query case sensitive.
	MatchCase bool

	// MatchWholeWord matches whole words only.
	MatchWholeWord bool

	// Regex treats the query as a regular expression.
	Regex bool

	// MatchPath matches against the full path instead of the name.
	MatchPath bool

	// MaxResults caps the result window. 0 means transport default.
	MaxResults int

	// Offset skips results within the window.
	Offset int

	// SortBy and SortAscending select the engine-side sort order.
	SortBy        SortField
	SortAscending bool

	// Inclusion toggles. Transports without a matching filter
	// ignore them.
	IncludeHidden  bool
	IncludeSystem  bool
	IncludeFolders bool
	IncludeFiles   bool
}

// DefaultSearchOptions returns the options applied when a caller
// supplies none.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MaxResults:     100,
		SortBy:         SortByName,
		SortAscending:  true,
		IncludeHidden:  true,
		IncludeSystem:  true,
		IncludeFolders: true,
		IncludeFiles:   true,
	}
}
