// Package kernel provides the shared domain primitives of the back office core.
//
// The package includes:
//   - UUID: a value object for system identifiers
//   - PrincipalID, Owner and Ownable: who an entity belongs to, resolved per entity
//   - EntityRef: a typed, possibly composite, reference used by the ownership gate
//   - EntryPoint: the carrier hub code shipments are injected at
//
// Values here are immutable and safe for concurrent use.
package kernel
