// Package rebac implements an in-process Zanzibar-style relationship-based
// access-control evaluator.
//
// It provides:
//   - A typed object graph store with copy-on-write snapshots
//   - A tuple materializer producing (user, relation, object) triples in the
//     wire shape expected by external Zanzibar-style authorization stores
//   - A declarative rule table mapping (object type, permission) pairs to
//     ordered predicate lists
//   - A permission checker that resolves allow/deny by combining direct
//     relation membership with hierarchical delegation
//   - Bulk helpers for visibility filtering and redacted content reads
//
// Checks are pure and total: malformed references, dangling edges, unmodeled
// permissions, and recursion-cap hits all resolve to deny. The distinction
// between those cases survives only in the advisory Decision.Reason field,
// which callers must never branch on.
package rebac
