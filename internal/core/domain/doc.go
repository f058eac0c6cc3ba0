// Package domain defines the core business entities for everfind.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchResult: The canonical, transport-independent result shape
//   - SearchOptions: Query modifiers shared by every transport
//   - ChangeRecord: One difference between two result snapshots
//   - SearchStatus: Best-effort index state reported by the engine
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
