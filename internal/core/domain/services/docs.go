// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the tendering system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - TierResolver: groups a broker's carrier network into ordered, deduplicated
//     tiers and applies per-tier carrier filters
//   - CascadePlanner: builds the tender chain of a cascade from resolved tiers,
//     wiring parent links and applying the activation mode
//
// Domain services stay pure: they operate on the values handed to them and
// leave persistence and collaborator calls to the application layer.
package services
