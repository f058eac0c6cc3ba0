package domain

import "strings"

// File attribute bits consumed from the engine's raw bitmask.
// They follow the Win32 FILE_ATTRIBUTE_* constants, which every
// transport ultimately derives its metadata from.
const (
	AttrReadOnly  uint32 = 0x1
	AttrHidden    uint32 = 0x2
	AttrSystem    uint32 = 0x4
	AttrDirectory uint32 = 0x10
)

// SearchResult is the canonical representation of one engine hit.
// Every transport normalises its native response into this type.
type SearchResult struct {
	// Name is the leaf file or directory name. Never empty unless
	// the result represents a filesystem root.
	Name string

	// Path is the containing directory. Empty for root-level entries.
	Path string

	// Size is the byte count. 0 when the transport cannot report it.
	Size int64

	// DateModified, DateCreated and DateAccessed are Unix
	// milliseconds. 0 when the transport cannot report them.
	DateModified int64
	DateCreated  int64
	DateAccessed int64

	// Attributes is the raw bitmask from the transport, 0 when
	// unavailable.
	Attributes uint32

	// AttributesKnown records whether Attributes came from the
	// transport. When true the bitmask is authoritative and the
	// flag fields below are derived from it.
	AttributesKnown bool

	// IsDirectory, IsHidden, IsSystem and IsReadOnly are derived
	// flags. When the bitmask is authoritative they are recomputed
	// from it; otherwise they carry a transport-specific signal
	// (explicit folder flag or path heuristic).
	IsDirectory bool
	IsHidden    bool
	IsSystem    bool
	IsReadOnly  bool
}

// FullPath joins Path and Name with the path's native separator.
// It is the identity key for change detection: no two results in one
// snapshot share a FullPath.
func (r SearchResult) FullPath() string {
	if r.Path == "" {
		return r.Name
	}
	sep := separatorFor(r.Path)
	if strings.HasSuffix(r.Path, sep) {
		return r.Path + r.Name
	}
	return r.Path + sep + r.Name
}

// ApplyAttributes records the raw bitmask and recomputes the derived
// flags from it. A set directory bit marks the result as a directory;
// an unset bit does not clear an explicit folder signal the transport
// already provided.
func (r *SearchResult) ApplyAttributes(attrs uint32) {
	r.Attributes = attrs
	r.AttributesKnown = true
	r.IsReadOnly = attrs&AttrReadOnly != 0
	r.IsHidden = attrs&AttrHidden != 0
	r.IsSystem = attrs&AttrSystem != 0
	if attrs&AttrDirectory != 0 {
		r.IsDirectory = true
	}
}

// separatorFor picks the separator already used by the path, so that
// joined identities stay byte-stable across snapshots. The engine is
// Windows-native, so backslash is the default.
func separatorFor(path string) string {
	if strings.ContainsRune(path, '/') && !strings.ContainsRune(path, '\\') {
		return "/"
	}
	return "\\"
}
