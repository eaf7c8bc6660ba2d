package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdngo/thesisdesk/internal/adapter"
	"github.com/hdngo/thesisdesk/internal/logger"
	"github.com/hdngo/thesisdesk/internal/session"
	"github.com/hdngo/thesisdesk/models"
)

type recordedCall struct {
	method string
	path   string
	body   []byte
}

// newTestServices starts a stub backend that records every call and
// answers with the envelope produced by respond.
func newTestServices(t *testing.T, respond func(w http.ResponseWriter, r *http.Request)) (*Services, *[]recordedCall) {
	t.Helper()

	var calls []recordedCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, recordedCall{method: r.Method, path: r.URL.Path, body: body})
		respond(w, r)
	}))
	t.Cleanup(srv.Close)

	a, err := adapter.New(adapter.Config{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
		TokenLeeway:    30 * time.Second,
	}, session.NewMemoryStore(), logger.Nop())
	require.NoError(t, err)

	return NewServices(a, logger.Nop()), &calls
}

func respondData(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(models.Envelope{Success: true, Data: raw})
}

func TestStudentService_ListRoutesToCollection(t *testing.T) {
	svcs, calls := newTestServices(t, func(w http.ResponseWriter, _ *http.Request) {
		respondData(t, w, []models.Student{{ID: "s1", FullName: "An Tran"}})
	})

	students, err := svcs.Students.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "s1", students[0].ID)

	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodGet, (*calls)[0].method)
	assert.Equal(t, "/api/students", (*calls)[0].path)
}

func TestStudentService_ToggleHitsStatusEndpoint(t *testing.T) {
	svcs, calls := newTestServices(t, func(w http.ResponseWriter, _ *http.Request) {
		respondData(t, w, models.Student{ID: "s1", Active: false})
	})

	got, err := svcs.Students.Toggle(context.Background(), "s1", false)
	require.NoError(t, err)
	assert.False(t, got.Active)

	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodPatch, (*calls)[0].method)
	assert.Equal(t, "/api/students/s1/status", (*calls)[0].path)
	assert.JSONEq(t, `{"enabled":false}`, string((*calls)[0].body))
}

func TestGroupService_ListBySemesterPath(t *testing.T) {
	svcs, calls := newTestServices(t, func(w http.ResponseWriter, _ *http.Request) {
		respondData(t, w, []models.Group{{ID: "g1", SemesterID: "sem-1"}})
	})

	groups, err := svcs.Groups.ListBySemester(context.Background(), "sem-1")
	require.NoError(t, err)
	require.Len(t, groups, 1)

	assert.Equal(t, "/api/groups/semester/sem-1", (*calls)[0].path)
	assert.Equal(t, http.MethodGet, (*calls)[0].method)
}

func TestStudentService_CreateManyUsesImportEndpoint(t *testing.T) {
	svcs, calls := newTestServices(t, func(w http.ResponseWriter, _ *http.Request) {
		respondData(t, w, []models.Student{{ID: "s1"}, {ID: "s2"}})
	})

	created, err := svcs.Students.CreateMany(context.Background(), []models.Student{
		{StudentCode: "SE150001"},
		{StudentCode: "SE150002"},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)

	assert.Equal(t, http.MethodPost, (*calls)[0].method)
	assert.Equal(t, "/api/students/import", (*calls)[0].path)
}

func TestThesisService_UpdateAndDeleteRouting(t *testing.T) {
	svcs, calls := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			respondData(t, w, struct{}{})
			return
		}
		respondData(t, w, models.Thesis{ID: "t1", Title: "Edge caching"})
	})

	_, err := svcs.Theses.Update(context.Background(), "t1", models.Thesis{Title: "Edge caching"})
	require.NoError(t, err)
	require.NoError(t, svcs.Theses.Delete(context.Background(), "t1"))

	assert.Equal(t, http.MethodPut, (*calls)[0].method)
	assert.Equal(t, "/api/theses/t1", (*calls)[0].path)
	assert.Equal(t, http.MethodDelete, (*calls)[1].method)
	assert.Equal(t, "/api/theses/t1", (*calls)[1].path)
}

func TestAuthService_LoginStoresSessionAndLogoutClearsIt(t *testing.T) {
	access := signedTestToken(t, time.Now().Add(time.Hour))
	svcs, calls := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			respondData(t, w, models.TokenPair{AccessToken: access, RefreshToken: "refresh-1"})
		default:
			respondData(t, w, struct{}{})
		}
	})

	err := svcs.Auth.Login(context.Background(), models.Credentials{Username: "admin", Password: "secret"}, false)
	require.NoError(t, err)
	assert.True(t, svcs.Auth.Authenticated())

	require.NoError(t, svcs.Auth.Logout(context.Background()))
	assert.False(t, svcs.Auth.Authenticated())

	assert.Equal(t, "/api/auth/login", (*calls)[0].path)
	assert.Equal(t, "/api/auth/logout", (*calls)[1].path)
	// the revocation request must carry the refresh token: the auth path
	// gets no bearer header, so the body is the only session identifier
	assert.JSONEq(t, `{"refresh_token":"refresh-1"}`, string((*calls)[1].body))
}

func TestAuthService_LogoutWithoutSessionSkipsRevocation(t *testing.T) {
	svcs, calls := newTestServices(t, func(w http.ResponseWriter, _ *http.Request) {
		respondData(t, w, struct{}{})
	})

	require.NoError(t, svcs.Auth.Logout(context.Background()))
	assert.Empty(t, *calls, "nothing to revoke, no request issued")
}

func TestAuthService_LoginSurfacesUnauthorized(t *testing.T) {
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.Envelope{
			Success: false,
			Error:   &models.RemoteError{Message: "bad credentials", StatusCode: http.StatusUnauthorized},
		})
	})

	err := svcs.Auth.Login(context.Background(), models.Credentials{Username: "admin", Password: "nope"}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.False(t, svcs.Auth.Authenticated())
}

func signedTestToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}
