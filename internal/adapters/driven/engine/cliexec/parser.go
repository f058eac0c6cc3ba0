package cliexec

import (
	"strings"

	"github.com/findlab/everfind/internal/core/domain"
)

// parseLines converts the client's one-path-per-line output into
// canonical results, preserving line order. Blank lines are skipped.
func parseLines(out []byte) []domain.SearchResult {
	normalised := strings.ReplaceAll(string(out), "\r\n", "\n")
	lines := strings.Split(normalised, "\n")

	results := make([]domain.SearchResult, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		results = append(results, resultFromPath(line))
	}
	return results
}

// resultFromPath splits a full path into containing directory and
// leaf name. The line carries nothing beyond the path itself: size,
// timestamps and attributes stay zero, and a trailing separator is
// the only directory signal.
func resultFromPath(full string) domain.SearchResult {
	isDir := false
	trimmed := full
	if strings.HasSuffix(trimmed, `\`) || strings.HasSuffix(trimmed, "/") {
		isDir = true
		trimmed = strings.TrimRight(trimmed, `\/`)
	}

	sep := lastSeparator(trimmed)
	res := domain.SearchResult{IsDirectory: isDir}
	if sep < 0 {
		res.Name = trimmed
	} else {
		res.Path = trimmed[:sep]
		res.Name = trimmed[sep+1:]
	}
	return res
}

func lastSeparator(s string) int {
	back := strings.LastIndexByte(s, '\\')
	fwd := strings.LastIndexByte(s, '/')
	if back > fwd {
		return back
	}
	return fwd
}
