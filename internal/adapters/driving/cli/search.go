package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/findlab/everfind/internal/core/domain"
)

var (
	searchLimit     int
	searchOffset    int
	searchCase      bool
	searchWholeWord bool
	searchRegex     bool
	searchMatchPath bool
	searchSort      string
	searchDesc      bool
	searchFolders   bool
	searchFiles     bool
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the Everything index",
	Long: `Runs a query against the Everything index through the active transport.
Options a transport cannot express are silently ignored; the result
shape is identical either way.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 100, "maximum number of results")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "skip the first N results")
	searchCmd.Flags().BoolVar(&searchCase, "case", false, "match case")
	searchCmd.Flags().BoolVarP(&searchWholeWord, "whole-word", "w", false, "match whole words only")
	searchCmd.Flags().BoolVarP(&searchRegex, "regex", "r", false, "treat the query as a regular expression")
	searchCmd.Flags().BoolVarP(&searchMatchPath, "match-path", "p", false, "match against the full path")
	searchCmd.Flags().StringVar(&searchSort, "sort", "name", "sort field: name, path, size or date_modified")
	searchCmd.Flags().BoolVar(&searchDesc, "desc", false, "sort descending")
	searchCmd.Flags().BoolVar(&searchFolders, "folders", false, "folders only")
	searchCmd.Flags().BoolVar(&searchFiles, "files", false, "files only")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if engineService == nil {
		return errors.New("engine not configured")
	}

	opts, err := searchOptions()
	if err != nil {
		return err
	}

	results, err := engineService.Search(context.Background(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func searchOptions() (domain.SearchOptions, error) {
	opts := domain.DefaultSearchOptions()
	opts.MatchCase = searchCase
	opts.MatchWholeWord = searchWholeWord
	opts.Regex = searchRegex
	opts.MatchPath = searchMatchPath
	opts.MaxResults = searchLimit
	opts.Offset = searchOffset
	opts.SortAscending = !searchDesc

	switch searchSort {
	case "name":
		opts.SortBy = domain.SortByName
	case "path":
		opts.SortBy = domain.SortByPath
	case "size":
		opts.SortBy = domain.SortBySize
	case "date_modified", "date":
		opts.SortBy = domain.SortByDateModified
	default:
		return opts, fmt.Errorf("unknown sort field %q", searchSort)
	}

	if searchFolders && searchFiles {
		return opts, errors.New("--folders and --files are mutually exclusive")
	}
	if searchFolders {
		opts.IncludeFiles = false
	}
	if searchFiles {
		opts.IncludeFolders = false
	}
	return opts, nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for i := range results {
		marker := " "
		if results[i].IsDirectory {
			marker = "d"
		}
		cmd.Printf("%s %12d  %s\n", marker, results[i].Size, results[i].FullPath())
	}
	cmd.Printf("\n%d result(s)\n", len(results))
	return nil
}
