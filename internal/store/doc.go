// Package store implements the client-side entity caches.
//
// A [Store] holds one entity collection: the full ordered record list,
// a derived filtered view, the per-operation busy flags, and a
// single-slot failure state. The canonical actions (fetch, fetch by
// semester, create, batch import, update, delete, toggle) share one
// mutation algorithm; entities differ only in their service bindings
// and search matcher, supplied at construction. Every mutation that
// changes the base collection re-runs the filter, so the derived view
// is never stale relative to the data it is computed from.
//
// Stores are owned by the [Stores] aggregate, which is created
// explicitly at startup and reset on logout. Collections are never
// mutated from outside their store; cross-entity consistency is
// achieved by each interested store refetching.
package store
