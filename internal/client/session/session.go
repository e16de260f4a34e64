// Package session is the single source of truth for "is a user logged in,
// and who are they". It keeps the in-memory Session and mirrors it into the
// persisted record (metadata keys "token" and "user") so state survives
// restarts. Only login/register/logout and the 401 teardown mutate it.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
	"github.com/dmitrijs2005/jobtrackr/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobtrackr/internal/common"
	"github.com/dmitrijs2005/jobtrackr/internal/dbx"
	"github.com/dmitrijs2005/jobtrackr/internal/logging"
)

// Persisted record keys, mirroring the browser client's localStorage entries.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Session is the current authentication state. It is authenticated only
// when both fields are set; partial state is never published.
type Session struct {
	User  *models.UserProfile
	Token string
}

// Authenticated reports whether both credential and user are present.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Store owns the Session and its persistence. All methods are safe for
// concurrent use.
type Store struct {
	db   *sql.DB
	meta metadata.Repository
	log  logging.Logger

	mu       sync.RWMutex
	sess     Session
	restored bool

	onForcedLogout func()
}

// NewStore returns an empty, not-yet-restored Store over the given local
// database.
func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, meta: metadata.NewSQLiteRepository(db), log: log}
}

// OnForcedLogout registers the redirect hook invoked after a 401 teardown.
// It is set once at composition time by the UI layer.
func (s *Store) OnForcedLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onForcedLogout = fn
}

// Loading reports whether Restore has not completed yet. Consumers defer
// rendering decisions while it is true.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.restored
}

// Current returns a copy of the session.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess
}

// Authenticated reports whether a full session is present.
func (s *Store) Authenticated() bool {
	return s.Current().Authenticated()
}

// Token yields the bearer credential for outbound requests ("" when logged
// out). It satisfies api.TokenSource.
func (s *Store) Token() string {
	return s.Current().Token
}

// Restore hydrates the session from the persisted record. It runs at most
// once; later calls are no-ops. A missing, malformed, or expired record
// degrades to logged-out rather than failing.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	if s.restored {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	sess, err := s.readRecord(ctx)

	s.mu.Lock()
	s.sess = sess
	s.restored = true
	s.mu.Unlock()

	if s.log != nil {
		s.log.Info(ctx, "session restored", "authenticated", sess.Authenticated())
	}
	return err
}

// readRecord loads and validates the persisted session. Any defect in the
// record yields an empty session and no error.
func (s *Store) readRecord(ctx context.Context) (Session, error) {
	tokenBytes, err := s.meta.Get(ctx, keyToken)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return Session{}, nil
		}
		return Session{}, err
	}
	userBytes, err := s.meta.Get(ctx, keyUser)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return Session{}, nil
		}
		return Session{}, err
	}

	token := string(tokenBytes)
	if token == "" || tokenExpired(token) {
		if s.log != nil {
			s.log.Warn(ctx, "persisted token missing or expired, starting logged out")
		}
		return Session{}, nil
	}

	var user models.UserProfile
	if err := json.Unmarshal(userBytes, &user); err != nil || user.Username == "" {
		if s.log != nil {
			s.log.Warn(ctx, "persisted user record malformed, starting logged out")
		}
		return Session{}, nil
	}

	return Session{Token: token, User: &user}, nil
}

// Save persists the credential and user atomically and then publishes the
// in-memory session. On persistence failure nothing is published.
func (s *Store) Save(ctx context.Context, token string, user models.UserProfile) error {
	userBytes, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Both keys are written in one transaction: a credential without a user
	// (or vice versa) must never be persisted.
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, userBytes)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sess = Session{Token: token, User: &user}
	s.restored = true
	s.mu.Unlock()
	return nil
}

// Clear erases the persisted record and empties the session. Safe to call
// when already logged out.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.meta.Clear(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.sess = Session{}
	s.mu.Unlock()
	return nil
}

// ForceLogout is the 401 teardown hook registered on the gateway client.
// It clears state exactly once per authenticated session and then fires the
// redirect hook; when already logged out it does nothing.
func (s *Store) ForceLogout() {
	s.mu.Lock()
	if !s.sess.Authenticated() {
		s.mu.Unlock()
		return
	}
	s.sess = Session{}
	hook := s.onForcedLogout
	s.mu.Unlock()

	ctx := context.Background()
	if err := s.meta.Clear(ctx); err != nil && s.log != nil {
		s.log.Error(ctx, "failed to erase persisted session", "error", err)
	}
	if hook != nil {
		hook()
	}
}

// tokenExpired inspects the token's exp claim without verifying the
// signature (the client holds no signing key). Unparseable tokens count as
// expired.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	if exp == nil {
		return false // tokens without exp never expire client-side
	}
	return exp.Before(time.Now())
}
