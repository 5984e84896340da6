package gymclient

import (
	"encoding/base64"
	"encoding/json"
	"testing"
)

// testToken builds an unsigned JWT carrying claims. The session never checks
// the signature, so a dummy one is enough.
func testToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func TestSession_InitWithoutToken(t *testing.T) {
	s := NewSession(&MemoryTokenStore{})

	if got := s.State(); got != Uninitialized {
		t.Fatalf("state before Init = %v", got)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if got := s.State(); got != Anonymous {
		t.Fatalf("state = %v, want anonymous", got)
	}
	if s.Principal() != nil {
		t.Fatalf("anonymous session must not carry a principal")
	}
}

func TestSession_InitRestoresPersistedToken(t *testing.T) {
	store := &MemoryTokenStore{}
	token := testToken(t, map[string]any{"sub": "owner@gym.test", "role": "OWNER"})
	if err := store.Save(token); err != nil {
		t.Fatalf("save: %v", err)
	}

	s := NewSession(store)
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	if got := s.State(); got != Authenticated {
		t.Fatalf("state = %v, want authenticated", got)
	}
	p := s.Principal()
	if p == nil || p.Subject != "owner@gym.test" || p.Role != "OWNER" {
		t.Fatalf("principal = %+v", p)
	}
	if s.Token() != token {
		t.Fatalf("token not restored")
	}
}

func TestSession_InitWithGarbageTokenIsAnonymous(t *testing.T) {
	store := &MemoryTokenStore{}
	if err := store.Save("not-a-jwt"); err != nil {
		t.Fatalf("save: %v", err)
	}

	s := NewSession(store)
	if err := s.Init(); err != nil {
		t.Fatalf("a stale store entry must not fail Init: %v", err)
	}
	if got := s.State(); got != Anonymous {
		t.Fatalf("state = %v, want anonymous", got)
	}
}

func TestSession_InitIsIdempotent(t *testing.T) {
	store := &MemoryTokenStore{}
	s := NewSession(store)
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	// A token saved after the first Init must not resurrect the session.
	if err := store.Save(testToken(t, map[string]any{"sub": "x"})); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("second init: %v", err)
	}
	if got := s.State(); got != Anonymous {
		t.Fatalf("second Init changed a settled session: %v", got)
	}
}

func TestSession_LoginLogout(t *testing.T) {
	store := &MemoryTokenStore{}
	s := NewSession(store)
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	token := testToken(t, map[string]any{"sub": "desk@gym.test", "role": "RECEPTIONIST"})
	if err := s.Login(token); err != nil {
		t.Fatalf("login: %v", err)
	}
	if got := s.State(); got != Authenticated {
		t.Fatalf("state after login = %v", got)
	}
	if saved, _ := store.Load(); saved != token {
		t.Fatalf("login must persist the token")
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if got := s.State(); got != Anonymous {
		t.Fatalf("state after logout = %v", got)
	}
	if saved, _ := store.Load(); saved != "" {
		t.Fatalf("logout must clear the stored token")
	}
	if s.Token() != "" || s.Principal() != nil {
		t.Fatalf("logout left credentials behind")
	}

	// Logging out again is a no-op.
	if err := s.Logout(); err != nil {
		t.Fatalf("repeated logout: %v", err)
	}
}

func TestSession_LoginRejectsUndecodableToken(t *testing.T) {
	s := NewSession(&MemoryTokenStore{})
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	good := testToken(t, map[string]any{"sub": "a@gym.test"})
	if err := s.Login(good); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := s.Login("garbage"); err == nil {
		t.Fatalf("undecodable token must be rejected")
	}
	// The previous credentials are untouched.
	if got := s.State(); got != Authenticated {
		t.Fatalf("failed login changed state to %v", got)
	}
	if s.Token() != good {
		t.Fatalf("failed login replaced the token")
	}
}

func TestSession_UpdatePrincipal(t *testing.T) {
	s := NewSession(&MemoryTokenStore{})
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := s.Login(testToken(t, map[string]any{"sub": "old@gym.test", "role": "OWNER"})); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := s.UpdatePrincipal(testToken(t, map[string]any{"sub": "new@gym.test", "role": "OWNER"})); err != nil {
		t.Fatalf("update principal: %v", err)
	}
	if p := s.Principal(); p == nil || p.Subject != "new@gym.test" {
		t.Fatalf("principal = %+v, want new subject", s.Principal())
	}
}

func TestSession_PrincipalIsACopy(t *testing.T) {
	s := NewSession(&MemoryTokenStore{})
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := s.Login(testToken(t, map[string]any{"sub": "a@gym.test", "role": "MEMBER"})); err != nil {
		t.Fatalf("login: %v", err)
	}

	p := s.Principal()
	p.Subject = "mutated"
	if s.Principal().Subject != "a@gym.test" {
		t.Fatalf("Principal must return an independent copy")
	}
}

func TestFileTokenStore_MissingFileIsEmpty(t *testing.T) {
	store := &FileTokenStore{Path: t.TempDir() + "/token"}

	token, err := store.Load()
	if err != nil || token != "" {
		t.Fatalf("load missing file: token=%q err=%v", token, err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clearing a missing file must be a no-op: %v", err)
	}

	if err := store.Save("abc"); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, err = store.Load()
	if err != nil || token != "abc" {
		t.Fatalf("round trip: token=%q err=%v", token, err)
	}
}

func TestDecodePrincipal_Errors(t *testing.T) {
	for _, token := range []string{"", "one.two", "a.!!!.c", "a." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".c"} {
		if _, err := decodePrincipal(token); err == nil {
			t.Fatalf("token %q should not decode", token)
		}
	}
}
