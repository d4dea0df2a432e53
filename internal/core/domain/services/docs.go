// Package services provides domain services that coordinate several aggregates:
//   - OwnershipGate: decides whether a principal may act on an entity
//   - ManifestFinalizer: validates and links a batch of overpacks into a manifest
package services
