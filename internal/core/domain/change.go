package domain

// ChangeType classifies one difference between two snapshots.
type ChangeType string

// Change types produced by DetectChanges.
const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeDeleted  ChangeType = "deleted"
)

// ChangeRecord describes one path that differs between two snapshots.
// Records are produced by DetectChanges and never persisted.
type ChangeRecord struct {
	// Path is the FullPath identity of the affected entry.
	Path string

	// Type is the kind of change observed.
	Type ChangeType
}

// DetectChanges diffs two ordered snapshots of canonical results.
//
// A path present only in previous is deleted, only in current is
// added, and present in both is modified iff DateModified differs
// (millisecond comparison). Emission order follows map iteration and
// is unspecified; callers must rely on set membership and type per
// path, never on ordering.
func DetectChanges(previous, current []SearchResult) []ChangeRecord {
	prev := make(map[string]SearchResult, len(previous))
	for _, r := range previous {
		prev[r.FullPath()] = r
	}
	curr := make(map[string]SearchResult, len(current))
	for _, r := range current {
		curr[r.FullPath()] = r
	}

	var changes []ChangeRecord
	for path, p := range prev {
		c, ok := curr[path]
		if !ok {
			changes = append(changes, ChangeRecord{Path: path, Type: ChangeDeleted})
			continue
		}
		if c.DateModified != p.DateModified {
			changes = append(changes, ChangeRecord{Path: path, Type: ChangeModified})
		}
	}
	for path := range curr {
		if _, ok := prev[path]; !ok {
			changes = append(changes, ChangeRecord{Path: path, Type: ChangeAdded})
		}
	}
	return changes
}
