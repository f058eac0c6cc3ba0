package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchResult_FullPath(t *testing.T) {
	tests := []struct {
		name   string
		result SearchResult
		want   string
	}{
		{
			name:   "windows path",
			result: SearchResult{Path: `C:\Users\docs`, Name: "report.pdf"},
			want:   `C:\Users\docs\report.pdf`,
		},
		{
			name:   "empty path",
			result: SearchResult{Name: "report.pdf"},
			want:   "report.pdf",
		},
		{
			name:   "path with trailing separator",
			result: SearchResult{Path: `C:\`, Name: "pagefile.sys"},
			want:   `C:\pagefile.sys`,
		},
		{
			name:   "forward slash path",
			result: SearchResult{Path: "/home/user", Name: "notes.md"},
			want:   "/home/user/notes.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.FullPath())
		})
	}
}

func TestSearchResult_ApplyAttributes(t *testing.T) {
	var r SearchResult
	r.ApplyAttributes(AttrReadOnly | AttrHidden | AttrSystem)

	assert.True(t, r.AttributesKnown)
	assert.True(t, r.IsReadOnly)
	assert.True(t, r.IsHidden)
	assert.True(t, r.IsSystem)
	assert.False(t, r.IsDirectory)
}

func TestSearchResult_ApplyAttributesDirectoryBit(t *testing.T) {
	var r SearchResult
	r.ApplyAttributes(AttrDirectory)
	assert.True(t, r.IsDirectory)
}

func TestSearchResult_ApplyAttributesKeepsExplicitFolderSignal(t *testing.T) {
	// A transport may flag a folder explicitly while reporting an
	// attribute mask without the directory bit; the explicit signal
	// is not cleared.
	r := SearchResult{IsDirectory: true}
	r.ApplyAttributes(AttrReadOnly)

	assert.True(t, r.IsDirectory)
	assert.True(t, r.IsReadOnly)
}
