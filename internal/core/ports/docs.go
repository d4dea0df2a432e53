// Package ports defines the persistence and messaging contracts the core depends on.
// Adapters under internal/adapters/out implement them; command handlers and domain
// services consume them.
package ports
