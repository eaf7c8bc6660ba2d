package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdngo/thesisdesk/internal/adapter"
	"github.com/hdngo/thesisdesk/internal/logger"
	"github.com/hdngo/thesisdesk/internal/notify"
	"github.com/hdngo/thesisdesk/internal/service"
	"github.com/hdngo/thesisdesk/internal/session"
	"github.com/hdngo/thesisdesk/models"
)

func newTestStores(t *testing.T, handler http.HandlerFunc) *Stores {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := adapter.New(adapter.Config{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
		TokenLeeway:    30 * time.Second,
	}, session.NewMemoryStore(), logger.Nop())
	require.NoError(t, err)

	return NewStores(service.NewServices(a, logger.Nop()), notify.Nop(), logger.Nop())
}

func TestNewStores_WiresEntityEndpoints(t *testing.T) {
	var paths []string
	stores := newTestStores(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		var data json.RawMessage
		switch r.URL.Path {
		case "/api/students":
			data, _ = json.Marshal([]models.Student{{ID: "s1", FullName: "An Tran"}})
		case "/api/groups/semester/sem-1":
			data, _ = json.Marshal([]models.Group{{ID: "g1", Name: "Team Rocket", SemesterID: "sem-1"}})
		default:
			data, _ = json.Marshal([]struct{}{})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Envelope{Success: true, Data: data})
	})

	require.NoError(t, stores.Students.FetchAll(context.Background()))
	require.NoError(t, stores.Groups.FetchBySemester(context.Background(), "sem-1", false))

	assert.Equal(t, []string{"/api/students", "/api/groups/semester/sem-1"}, paths)
	assert.Equal(t, "An Tran", stores.Students.Items()[0].FullName)
	assert.Equal(t, "Team Rocket", stores.Groups.Items()[0].Name)
}

func TestGroups_HaveNoFullListing(t *testing.T) {
	stores := newTestStores(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	assert.ErrorIs(t, stores.Groups.FetchAll(context.Background()), ErrActionUnsupported)
}

func TestStores_ResetClearsEveryCollection(t *testing.T) {
	stores := newTestStores(t, func(w http.ResponseWriter, _ *http.Request) {
		data, _ := json.Marshal([]models.Student{{ID: "s1"}})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Envelope{Success: true, Data: data})
	})

	require.NoError(t, stores.Students.FetchAll(context.Background()))
	require.NotEmpty(t, stores.Students.Items())

	stores.Reset()

	assert.Empty(t, stores.Students.Items())
	assert.Empty(t, stores.Students.Filtered())
}
