package cliexec

import (
	"strconv"

	"github.com/findlab/everfind/internal/core/domain"
)

// Flags of the engine's command-line client.
const (
	flagRegex       = "-r"
	flagMatchCase   = "-case"
	flagWholeWord   = "-ww"
	flagMaxResults  = "-n"
	flagOffset      = "-o"
	flagSort        = "-sort"
	flagFoldersOnly = "/ad"
	flagFilesOnly   = "/a-d"
	flagVersion     = "-get-everything-version"
	flagResultCount = "-get-result-count"
	flagReindex     = "-reindex"
)

// buildArgs translates canonical search options into client flags.
// Options the client cannot express (path matching, hidden/system
// filters) are dropped: unsupported options are ignored, never
// rejected.
func buildArgs(query string, opts domain.SearchOptions) []string {
	var args []string
	if opts.Regex {
		args = append(args, flagRegex)
	}
	if opts.MatchCase {
		args = append(args, flagMatchCase)
	}
	if opts.MatchWholeWord {
		args = append(args, flagWholeWord)
	}
	if opts.MaxResults > 0 {
		args = append(args, flagMaxResults, strconv.Itoa(opts.MaxResults))
	}
	if opts.Offset > 0 {
		args = append(args, flagOffset, strconv.Itoa(opts.Offset))
	}
	if opts.SortBy != "" {
		args = append(args, flagSort, sortArg(opts.SortBy, opts.SortAscending))
	}
	if opts.IncludeFolders && !opts.IncludeFiles {
		args = append(args, flagFoldersOnly)
	}
	if opts.IncludeFiles && !opts.IncludeFolders {
		args = append(args, flagFilesOnly)
	}
	return append(args, query)
}

// sortArg maps the shared sort vocabulary onto the client's
// "<field>-<direction>" form. Unknown fields fall back to name order.
func sortArg(field domain.SortField, ascending bool) string {
	name := "name"
	switch field {
	case domain.SortByPath:
		name = "path"
	case domain.SortBySize:
		name = "size"
	case domain.SortByDateModified:
		name = "date-modified"
	}
	if ascending {
		return name + "-ascending"
	}
	return name + "-descending"
}
