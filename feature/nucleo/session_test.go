package nucleo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "catalog-bridge/core/errors"
	"catalog-bridge/core/soap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testToken = "8fe3a353-b0a8-4a24-be73-b61016f44bb6"

func authServer(t *testing.T, calls *int32, result string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		_, _ = w.Write([]byte(`<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope">
  <soap:Body>
    <AuthenticateUserResponse xmlns="http://microsoft.com/webservices/">
      <AuthenticateUserResult>` + result + `</AuthenticateUserResult>
    </AuthenticateUserResponse>
  </soap:Body>
</soap:Envelope>`))
	}))
}

func newTestAuthenticator(srvURL string) *Authenticator {
	client := soap.NewClient(soap.Config{BaseURL: srvURL}, zap.NewNop())
	return NewAuthenticator(client, nil, zap.NewNop())
}

func TestAuthenticator_TokenLifecycle(t *testing.T) {
	var calls int32
	srv := authServer(t, &calls, testToken)
	defer srv.Close()

	auth := newTestAuthenticator(srv.URL)

	issued := time.Now()
	clock := issued
	auth.now = func() time.Time { return clock }

	// First call logs in.
	token, err := auth.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testToken, token)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// 60s later the cached token is reused with zero network calls.
	clock = issued.Add(60 * time.Second)
	token, err = auth.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testToken, token)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// 130s later the 2-minute TTL has lapsed: exactly one more login.
	clock = issued.Add(130 * time.Second)
	token, err = auth.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testToken, token)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestAuthenticator_SessionReplacedWhole(t *testing.T) {
	var calls int32
	srv := authServer(t, &calls, testToken)
	defer srv.Close()

	auth := newTestAuthenticator(srv.URL)

	_, err := auth.Token(context.Background())
	require.NoError(t, err)

	auth.mu.RLock()
	first := auth.session
	auth.mu.RUnlock()
	require.NotNil(t, first)
	assert.Equal(t, first.IssuedAt.Add(2*time.Minute), first.ExpiresAt)

	// Force expiry and refresh; a new Session value must be installed.
	auth.now = func() time.Time { return first.ExpiresAt.Add(time.Second) }
	_, err = auth.Token(context.Background())
	require.NoError(t, err)

	auth.mu.RLock()
	second := auth.session
	auth.mu.RUnlock()
	assert.NotSame(t, first, second)
}

func TestAuthenticator_ConcurrentRefreshSingleLogin(t *testing.T) {
	var calls int32
	srv := authServer(t, &calls, testToken)
	defer srv.Close()

	auth := newTestAuthenticator(srv.URL)

	var wg sync.WaitGroup
	errs := make([]error, 16)
	tokens := make([]string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = auth.Token(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < 16; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, testToken, tokens[i])
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestAuthenticator_UpstreamErrorText(t *testing.T) {
	var calls int32
	srv := authServer(t, &calls, "User or password is incorrect.")
	defer srv.Close()

	auth := newTestAuthenticator(srv.URL)

	_, err := auth.Token(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAuthentication)

	// A failed login must not install a session.
	auth.mu.RLock()
	assert.Nil(t, auth.session)
	auth.mu.RUnlock()
}

func TestSession_Valid(t *testing.T) {
	now := time.Now()
	s := &Session{Token: testToken, IssuedAt: now, ExpiresAt: now.Add(2 * time.Minute)}

	assert.True(t, s.Valid(now))
	assert.True(t, s.Valid(now.Add(time.Minute)))
	assert.False(t, s.Valid(now.Add(2*time.Minute)))
	assert.False(t, s.Valid(now.Add(3*time.Minute)))

	var nilSession *Session
	assert.False(t, nilSession.Valid(now))
}
