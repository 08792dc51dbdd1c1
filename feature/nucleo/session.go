package nucleo

import (
	"context"
	"sync"
	"time"

	"catalog-bridge/core/soap"
	"catalog-bridge/feature/nucleo/normalize"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// sessionTTL matches the upstream's own token lifetime.
const sessionTTL = 2 * time.Minute

// Session is an immutable snapshot of one authenticated upstream session.
// Refreshing installs a whole new Session; one is never mutated in place.
type Session struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Valid reports whether the session token is still usable at the given time.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && now.Before(s.ExpiresAt)
}

// Authenticator owns the process-wide session. Concurrent callers racing
// past an expired token collapse into a single upstream authentication call
// (singleflight), and everyone observes the same installed session.
type Authenticator struct {
	client *soap.Client
	policy soap.Backoff
	logger *zap.Logger
	now    func() time.Time

	mu      sync.RWMutex
	session *Session
	group   singleflight.Group
}

// NewAuthenticator creates an authenticator with no live session; the first
// Token call triggers the initial login.
func NewAuthenticator(client *soap.Client, policy soap.Backoff, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		client: client,
		policy: policy,
		logger: logger,
		now:    time.Now,
	}
}

// Token returns the cached session token, refreshing it first when none is
// installed or the installed one has expired. A valid cached token is
// returned without any network call.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	a.mu.RLock()
	s := a.session
	a.mu.RUnlock()

	if s.Valid(a.now()) {
		return s.Token, nil
	}

	v, err, _ := a.group.Do("login", func() (any, error) {
		// A racer may have installed a fresh session while we queued.
		a.mu.RLock()
		s := a.session
		a.mu.RUnlock()
		if s.Valid(a.now()) {
			return s.Token, nil
		}

		token, err := a.login(ctx)
		if err != nil {
			return nil, err
		}

		issued := a.now()
		a.mu.Lock()
		a.session = &Session{
			Token:     token,
			IssuedAt:  issued,
			ExpiresAt: issued.Add(sessionTTL),
		}
		a.mu.Unlock()

		a.logger.Debug("installed new upstream session",
			zap.Time("expires_at", issued.Add(sessionTTL)))

		return token, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

// login performs the AuthenticateUser call. The header carries the
// configured seed token, not a session token.
func (a *Authenticator) login(ctx context.Context) (string, error) {
	cfg := a.client.Config()
	envelope := soap.Envelope(cfg, cfg.AuthenticatedToken, normalize.ActionAuthenticate)

	resp, err := a.client.Call(ctx, normalize.ActionAuthenticate, envelope, a.policy)
	if err != nil {
		return "", err
	}

	return normalize.Token(resp)
}
