package service

import (
	"context"

	"github.com/hdngo/thesisdesk/internal/adapter"
)

// restService is the shared CRUD core. Every entity service embeds it
// with its own collection path; the envelope decoding and error mapping
// live in the adapter, so a method here is one line of routing.
type restService[T any] struct {
	adapter *adapter.Adapter
	base    string
}

// List fetches the full collection.
func (s *restService[T]) List(ctx context.Context) ([]T, error) {
	return adapter.Get[[]T](ctx, s.adapter, s.base)
}

// Get fetches a single record by id.
func (s *restService[T]) Get(ctx context.Context, id string) (T, error) {
	return adapter.Get[T](ctx, s.adapter, s.base+"/"+id)
}

// Create posts a new record and returns the server's version of it.
func (s *restService[T]) Create(ctx context.Context, payload T) (T, error) {
	return adapter.Post[T](ctx, s.adapter, s.base, payload)
}

// CreateMany batch-imports records. The server returns the created
// records in the order it persisted them.
func (s *restService[T]) CreateMany(ctx context.Context, payload []T) ([]T, error) {
	return adapter.Post[[]T](ctx, s.adapter, s.base+"/import", payload)
}

// Update replaces the record matching id and returns the stored result.
func (s *restService[T]) Update(ctx context.Context, id string, patch T) (T, error) {
	return adapter.Put[T](ctx, s.adapter, s.base+"/"+id, patch)
}

// Delete removes the record matching id.
func (s *restService[T]) Delete(ctx context.Context, id string) error {
	return adapter.Delete(ctx, s.adapter, s.base+"/"+id)
}

// listBySemester fetches the records scoped to one semester.
func listBySemester[T any](ctx context.Context, a *adapter.Adapter, base, semesterID string) ([]T, error) {
	return adapter.Get[[]T](ctx, a, base+"/semester/"+semesterID)
}

// togglePayload is the body of a status toggle PATCH.
type togglePayload struct {
	Enabled bool `json:"enabled"`
}

// toggleStatus flips the entity's boolean status field via the
// /{id}/status endpoint and returns the updated record.
func toggleStatus[T any](ctx context.Context, a *adapter.Adapter, base, id string, enabled bool) (T, error) {
	return adapter.Patch[T](ctx, a, base+"/"+id+"/status", togglePayload{Enabled: enabled})
}
