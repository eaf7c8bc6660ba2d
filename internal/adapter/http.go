package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/hdngo/thesisdesk/internal/logger"
	"github.com/hdngo/thesisdesk/internal/session"
	"github.com/hdngo/thesisdesk/models"
)

// authPathPrefix marks the endpoints that bypass credential attachment
// and the 401 retry: login and refresh must never trigger a refresh of
// their own.
const authPathPrefix = "/api/auth/"

// Config carries the settings the adapter needs from the merged
// application config.
type Config struct {
	// BaseURL is the backend base URL.
	BaseURL string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
	// TokenLeeway is subtracted from the access-token expiry when
	// deciding whether a proactive refresh is due.
	TokenLeeway time.Duration
}

// Adapter is the configured HTTP client for the thesisdesk backend. All
// service modules issue their calls through it; it transparently
// attaches and refreshes credentials and normalizes every response.
type Adapter struct {
	client *resty.Client
	creds  *CredentialManager
	log    *logger.Logger

	onSessionExpired func()
	sessionExpired   atomic.Bool
}

// Option customises the Adapter at construction time.
type Option func(*Adapter)

// WithSessionExpiredHandler installs fn to be invoked when a credential
// refresh is rejected and the session must be re-established. The
// handler fires at most once per failed refresh; a subsequent successful
// login re-arms it.
func WithSessionExpiredHandler(fn func()) Option {
	return func(a *Adapter) { a.onSessionExpired = fn }
}

// New constructs an Adapter backed by the given credential store.
//
// It normalises and validates cfg.BaseURL, configures the resty client
// with the base URL and request timeout, and installs the two
// interceptors: the outgoing hook that attaches a bearer token to every
// non-auth request, and the retry condition that replays a request at
// most once after a 401 by forcing a credential refresh.
func New(cfg Config, store session.Store, log *logger.Logger, opts ...Option) (*Adapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	a := &Adapter{client: cli, log: log}
	a.creds = newCredentialManager(store, a.refreshTokens, cfg.TokenLeeway, log)

	for _, opt := range opts {
		opt(a)
	}

	cli.OnBeforeRequest(a.attachCredentials)
	cli.SetRetryCount(1)
	cli.AddRetryCondition(a.retryAfterRefresh)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Credentials exposes the credential manager for the auth service and
// the command layer.
func (a *Adapter) Credentials() *CredentialManager {
	return a.creds
}

// attachCredentials is the outgoing request hook. Auth endpoints pass
// through unmodified; every other request gets a trace ID and, when
// obtainable, a bearer token. An unauthenticated request is forwarded
// without credentials and left for the server to reject.
func (a *Adapter) attachCredentials(_ *resty.Client, req *resty.Request) error {
	req.SetHeader("X-Request-ID", uuid.NewString())

	if isAuthEndpoint(req.URL) {
		return nil
	}

	token, err := a.creds.AccessToken(req.Context())
	if err != nil {
		a.log.Debug().Err(err).Str("url", req.URL).Msg("proceeding without credentials")
		return nil
	}

	req.SetHeader("Authorization", "Bearer "+token)
	return nil
}

// retryAfterRefresh decides whether a failed request is replayed. Only a
// first 401 from a non-auth endpoint qualifies, and only when a forced
// refresh succeeds; the new token is attached by attachCredentials on
// the replay. A failed refresh clears all stored credentials and fires
// the session-expired handler.
func (a *Adapter) retryAfterRefresh(resp *resty.Response, err error) bool {
	if err != nil || resp == nil {
		return false
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		return false
	}
	if isAuthEndpoint(resp.Request.URL) {
		return false
	}
	if resp.Request.Attempt > 1 {
		// already replayed once; propagate the second 401
		return false
	}

	ctx := resp.Request.Context()
	if _, refreshErr := a.creds.ForceRefresh(ctx); refreshErr != nil {
		a.log.Warn().Err(refreshErr).Msg("credential refresh rejected, resetting session")
		if clearErr := a.creds.Clear(ctx); clearErr != nil {
			a.log.Err(clearErr).Msg("failed to clear credentials")
		}
		a.fireSessionExpired()
		return false
	}

	return true
}

// fireSessionExpired invokes the handler at most once per failed
// refresh. Safe to call concurrently.
func (a *Adapter) fireSessionExpired() {
	if a.onSessionExpired == nil {
		return
	}
	if a.sessionExpired.CompareAndSwap(false, true) {
		a.onSessionExpired()
	}
}

// ResetSessionExpired re-arms the session-expired handler after a new
// login.
func (a *Adapter) ResetSessionExpired() {
	a.sessionExpired.Store(false)
}

func isAuthEndpoint(rawURL string) bool {
	return strings.Contains(rawURL, authPathPrefix)
}

// refreshTokens is the refreshFunc handed to the credential manager. It
// posts to the refresh endpoint, which bypasses the interceptors by
// virtue of its path.
func (a *Adapter) refreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	body := map[string]string{"refresh_token": refreshToken}
	return Post[models.TokenPair](ctx, a, "/api/auth/refresh", body)
}

// Get issues a GET to path and decodes the envelope data into T.
func Get[T any](ctx context.Context, a *Adapter, path string) (T, error) {
	resp, err := a.client.R().SetContext(ctx).Get(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("get %s: %w", path, err)
	}
	return decodeEnvelope[T](resp)
}

// Post issues a POST with a JSON body and decodes the envelope data.
func Post[T any](ctx context.Context, a *Adapter, path string, body any) (T, error) {
	resp, err := a.client.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("post %s: %w", path, err)
	}
	return decodeEnvelope[T](resp)
}

// Put issues a PUT with a JSON body and decodes the envelope data.
func Put[T any](ctx context.Context, a *Adapter, path string, body any) (T, error) {
	resp, err := a.client.R().SetContext(ctx).SetBody(body).Put(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("put %s: %w", path, err)
	}
	return decodeEnvelope[T](resp)
}

// Patch issues a PATCH with a JSON body and decodes the envelope data.
func Patch[T any](ctx context.Context, a *Adapter, path string, body any) (T, error) {
	resp, err := a.client.R().SetContext(ctx).SetBody(body).Patch(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("patch %s: %w", path, err)
	}
	return decodeEnvelope[T](resp)
}

// Delete issues a DELETE to path. The envelope data, if any, is
// discarded.
func Delete(ctx context.Context, a *Adapter, path string) error {
	resp, err := a.client.R().SetContext(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	_, err = decodeEnvelope[json.RawMessage](resp)
	return err
}

// decodeEnvelope normalizes a raw response into either typed data or an
// error. Business failures embedded in 2xx envelopes and non-2xx
// responses both surface as *APIError.
func decodeEnvelope[T any](resp *resty.Response) (T, error) {
	var zero T

	if err := mapResponseError(resp); err != nil {
		return zero, err
	}

	if len(bytes.TrimSpace(resp.Body())) == 0 {
		return zero, nil
	}

	var env models.Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return zero, fmt.Errorf("decode response envelope: %w", err)
	}
	if len(env.Data) == 0 {
		return zero, nil
	}

	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return zero, fmt.Errorf("decode envelope data: %w", err)
	}
	return out, nil
}
