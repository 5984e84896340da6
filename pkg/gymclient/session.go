// Package gymclient is a Go client for the GymFlow API. It carries the
// caller's session, attaches the bearer token to every request, and reports
// in-flight request activity through pkg/activity.
package gymclient

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// SessionState is the lifecycle of a client session.
type SessionState int

const (
	// Uninitialized means Init has not run; nothing is known about the user.
	Uninitialized SessionState = iota
	// Anonymous means no valid token is held.
	Anonymous
	// Authenticated means a decodable token is held and a Principal is set.
	Authenticated
)

func (s SessionState) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	}
	return "uninitialized"
}

// Principal identifies who the held token says the user is. The token is
// decoded without signature verification: the client has no signing secret,
// and the server re-verifies on every request anyway.
type Principal struct {
	Subject string
	Role    string
	Claims  map[string]any
}

// TokenStore persists the single session token between runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a file with owner-only permissions.
type FileTokenStore struct {
	Path string
}

func (f *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *FileTokenStore) Save(token string) error {
	return os.WriteFile(f.Path, []byte(token), 0o600)
}

func (f *FileTokenStore) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryTokenStore holds the token in memory. Intended for tests.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryTokenStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryTokenStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryTokenStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// Session tracks the authentication state of the client. It starts
// Uninitialized; Init settles it into Authenticated or Anonymous and every
// later transition moves between those two. All methods are safe for
// concurrent use.
type Session struct {
	mu        sync.Mutex
	store     TokenStore
	state     SessionState
	token     string
	principal *Principal
}

// NewSession returns an Uninitialized session over store.
func NewSession(store TokenStore) *Session {
	return &Session{store: store}
}

// Init loads the persisted token, if any, and settles the session state.
// A missing token or one that fails to decode yields Anonymous; a stale or
// malformed store entry is never an error. Calling Init again is a no-op.
func (s *Session) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Uninitialized {
		return nil
	}

	token, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("session init: %w", err)
	}

	p, derr := decodePrincipal(token)
	if token == "" || derr != nil {
		s.state = Anonymous
		return nil
	}

	s.token = token
	s.principal = p
	s.state = Authenticated
	return nil
}

// Login stores token, decodes the principal, and moves to Authenticated.
// An undecodable token is rejected and the session is left unchanged.
func (s *Session) Login(token string) error {
	p, err := decodePrincipal(token)
	if err != nil {
		return fmt.Errorf("session login: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(token); err != nil {
		return fmt.Errorf("session login: %w", err)
	}
	s.token = token
	s.principal = p
	s.state = Authenticated
	return nil
}

// Logout clears the token and moves to Anonymous. Logging out while already
// Anonymous is a no-op.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("session logout: %w", err)
	}
	s.token = ""
	s.principal = nil
	s.state = Anonymous
	return nil
}

// UpdatePrincipal swaps in a reissued token without a logout/login cycle,
// e.g. after an email change.
func (s *Session) UpdatePrincipal(newToken string) error {
	return s.Login(newToken)
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the held token, or "" when not authenticated.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Principal returns a copy of the current principal, or nil when not
// authenticated.
func (s *Session) Principal() *Principal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return nil
	}
	p := *s.principal
	return &p
}

// decodePrincipal extracts the subject and role claims from a JWT without
// verifying its signature.
func decodePrincipal(token string) (*Principal, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errors.New("not a JWT")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}

	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("parse claims: %w", err)
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	return &Principal{Subject: sub, Role: role, Claims: claims}, nil
}
