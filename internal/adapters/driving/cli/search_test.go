package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findlab/everfind/internal/core/domain"
)

func resetSearchFlags() {
	searchLimit = 100
	searchOffset = 0
	searchCase = false
	searchWholeWord = false
	searchRegex = false
	searchMatchPath = false
	searchSort = "name"
	searchDesc = false
	searchFolders = false
	searchFiles = false
	searchJSON = false
}

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_HasLimitFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "100", flag.DefValue)
}

func TestSearchCmd_TableOutput(t *testing.T) {
	mock, cleanup := setupTestEngine()
	defer cleanup()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "report"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "report", mock.lastQuery)
	assert.Contains(t, buf.String(), `C:\Docs\report.pdf`)
	assert.Contains(t, buf.String(), `C:\Projects`)
	assert.Contains(t, buf.String(), "2 result(s)")
}

func TestSearchCmd_FlagsMapToOptions(t *testing.T) {
	mock, cleanup := setupTestEngine()
	defer cleanup()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"search", "-r", "--case", "-w", "-p",
		"-n", "25", "--offset", "5",
		"--sort", "size", "--desc",
		"\\.pdf$",
	})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.True(t, mock.lastOpts.Regex)
	assert.True(t, mock.lastOpts.MatchCase)
	assert.True(t, mock.lastOpts.MatchWholeWord)
	assert.True(t, mock.lastOpts.MatchPath)
	assert.Equal(t, 25, mock.lastOpts.MaxResults)
	assert.Equal(t, 5, mock.lastOpts.Offset)
	assert.Equal(t, domain.SortBySize, mock.lastOpts.SortBy)
	assert.False(t, mock.lastOpts.SortAscending)
}

func TestSearchCmd_FoldersOnly(t *testing.T) {
	mock, cleanup := setupTestEngine()
	defer cleanup()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--folders", "proj"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.True(t, mock.lastOpts.IncludeFolders)
	assert.False(t, mock.lastOpts.IncludeFiles)
}

func TestSearchCmd_FoldersAndFilesConflict(t *testing.T) {
	_, cleanup := setupTestEngine()
	defer cleanup()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "--folders", "--files", "x"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestSearchCmd_UnknownSortField(t *testing.T) {
	_, cleanup := setupTestEngine()
	defer cleanup()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "--sort", "colour", "x"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort field")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	_, cleanup := setupTestEngine()
	defer cleanup()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--json", "report"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"Name\"")
	assert.Contains(t, buf.String(), "report.pdf")
}

func TestSearchCmd_ServiceNotConfigured(t *testing.T) {
	oldService := engineService
	engineService = nil
	defer func() {
		engineService = oldService
	}()
	defer resetSearchFlags()

	err := runSearch(searchCmd, []string{"test"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "engine not configured")
}

func TestSearchCmd_ServiceError(t *testing.T) {
	mock, cleanup := setupTestEngine()
	defer cleanup()
	defer resetSearchFlags()
	mock.searchErr = errMockSearch

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "test"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search failed")
}

func TestOutputSearchTable_EmptyResults(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputSearchTable(rootCmd, []domain.SearchResult{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No results found")
}

func TestOutputSearchJSON_EmptyResults(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputSearchJSON(rootCmd, []domain.SearchResult{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "[]")
}
