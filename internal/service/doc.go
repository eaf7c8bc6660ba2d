// Package service exposes the remote API as typed operations. Each
// entity service wraps the shared REST core with its collection path;
// entities with extra endpoints (per-semester listing, status toggles)
// add them on top. Services hold no state beyond the adapter reference,
// so they are safe for concurrent use.
package service
