// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and the transport adapters
// implement them.
//
// # Required Interfaces
//
//   - Provider: One engine transport (spawned CLI process, native
//     shared library, or HTTP API) satisfying the shared capability
//     contract. The three implementations are independent peers; a
//     new transport is added solely by implementing this interface
//     plus the canonical result normalisation, with zero changes
//     elsewhere.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
