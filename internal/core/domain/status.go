package domain

// SearchStatus reports the engine's index state.
//
// Status is best effort: transports that cannot observe live indexing
// progress report sentinel percentages (100 when the index is loaded,
// a fixed estimate otherwise) instead of failing, because "unknown" is
// an expected answer and must not break composition.
type SearchStatus struct {
	// TotalResults is the number of entries the index currently
	// answers for a wildcard query.
	TotalResults int

	// IndexingComplete is true when the engine reports its index as
	// fully loaded.
	IndexingComplete bool

	// PercentComplete is the indexing progress, 0-100.
	PercentComplete int
}
