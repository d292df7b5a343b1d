// package session owns authentication state: whether a user is signed in,
// and under which credential scheme.
//
// Credentials are persisted through the storage adapter under scheme-specific
// keys, matching the layout the web front-end left in browser local storage.
// Storage is the authoritative source of truth; CheckAuth reconciles the
// in-memory state against it and is cheap enough to call on every navigation.
package session

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/storage"
)

// Storage keys for each credential scheme.
const (
	KeyAPIKey       = "TMDb-Key"
	KeyEmail        = "userEmail"
	KeyKakaoToken   = "kakaoToken"
	KeyKakaoProfile = "kakaoProfile"
)

// Scheme tags the credential variant a session is authenticated under.
type Scheme int

const (
	SchemeNone Scheme = iota
	SchemeAPIKey
	SchemeEmail
	SchemeKakao
)

func (s Scheme) String() string {
	switch s {
	case SchemeAPIKey:
		return "api_key"
	case SchemeEmail:
		return "email"
	case SchemeKakao:
		return "kakao"
	default:
		return "none"
	}
}

// Credential is the tagged union of authentication material.
//
// Only the fields matching Scheme are meaningful; the rest are zero.
type Credential struct {
	Scheme  Scheme
	APIKey  string
	Email   string
	Token   string
	Profile map[string]any
}

// Authenticated reports whether the credential is anything other than SchemeNone.
func (c Credential) Authenticated() bool {
	return c.Scheme != SchemeNone
}

// Listener receives the new credential after every session state transition.
type Listener func(Credential)

// Store owns the session credential and mirrors it into persistent storage.
type Store struct {
	storage   storage.Store
	logger    *log.Logger
	mu        sync.Mutex
	cred      Credential
	listeners []Listener
}

// NewStore creates a session store and derives its initial state from
// persisted storage.
func NewStore(st storage.Store, logger *log.Logger) *Store {
	s := &Store{storage: st, logger: logger}
	s.CheckAuth()
	return s
}

// Credential returns the current credential.
func (s *Store) Credential() Credential {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred
}

// IsAuthenticated reports whether a credential is currently held.
//
// Derived from the credential variant; there is no separately tracked flag.
func (s *Store) IsAuthenticated() bool {
	return s.Credential().Authenticated()
}

// Subscribe registers a listener invoked after every state transition.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Login authenticates with an opaque API key or an email address.
//
// Material containing '@' is treated as an email; anything else as a
// catalog API key. The credential is persisted before the in-memory state
// changes so read-your-writes holds for the caller.
func (s *Store) Login(material string) {
	var cred Credential
	var key string

	if strings.Contains(material, "@") {
		cred = Credential{Scheme: SchemeEmail, Email: material}
		key = KeyEmail
	} else {
		cred = Credential{Scheme: SchemeAPIKey, APIKey: material}
		key = KeyAPIKey
	}

	if err := s.storage.Set(key, material); err != nil {
		s.logger.Warn("failed to persist credential", "scheme", cred.Scheme, "error", err)
	}

	s.transition(cred)
	s.logger.Info("logged in", "scheme", cred.Scheme)
}

// LoginKakao authenticates with a Kakao OAuth access token and profile record.
//
// Token and profile persist under separate keys; a profile that cannot be
// serialized is skipped rather than blocking the login.
func (s *Store) LoginKakao(token string, profile map[string]any) {
	if err := s.storage.Set(KeyKakaoToken, token); err != nil {
		s.logger.Warn("failed to persist kakao token", "error", err)
	}

	if profile != nil {
		if data, err := json.Marshal(profile); err != nil {
			s.logger.Warn("failed to serialize kakao profile", "error", err)
		} else if err := s.storage.Set(KeyKakaoProfile, string(data)); err != nil {
			s.logger.Warn("failed to persist kakao profile", "error", err)
		}
	}

	s.transition(Credential{Scheme: SchemeKakao, Token: token, Profile: profile})
	s.logger.Info("logged in", "scheme", SchemeKakao)
}

// Logout clears all credential keys and resets to SchemeNone. Idempotent.
func (s *Store) Logout() {
	for _, key := range []string{KeyAPIKey, KeyEmail, KeyKakaoToken, KeyKakaoProfile} {
		if err := s.storage.Remove(key); err != nil {
			s.logger.Warn("failed to remove credential key", "key", key, "error", err)
		}
	}

	s.transition(Credential{Scheme: SchemeNone})
	s.logger.Info("logged out")
}

// CheckAuth re-derives the session state from persistent storage and
// returns whether a credential is present.
//
// Precedence when multiple keys exist: email first, Kakao token second,
// API key third. Any stale in-memory credential is discarded.
func (s *Store) CheckAuth() bool {
	cred := Credential{Scheme: SchemeNone}

	if email, err := s.storage.Get(KeyEmail); err == nil && email != "" {
		cred = Credential{Scheme: SchemeEmail, Email: email}
	} else if token, err := s.storage.Get(KeyKakaoToken); err == nil && token != "" {
		cred = Credential{Scheme: SchemeKakao, Token: token, Profile: s.loadProfile()}
	} else if apiKey, err := s.storage.Get(KeyAPIKey); err == nil && apiKey != "" {
		cred = Credential{Scheme: SchemeAPIKey, APIKey: apiKey}
	}

	s.transition(cred)
	return cred.Authenticated()
}

// loadProfile reads the persisted Kakao profile; malformed or missing data
// degrades to a nil profile.
func (s *Store) loadProfile() map[string]any {
	raw, err := s.storage.Get(KeyKakaoProfile)
	if err != nil {
		return nil
	}

	var profile map[string]any
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		s.logger.Warn("discarding malformed kakao profile", "error", err)
		return nil
	}
	return profile
}

// transition swaps the credential and notifies listeners outside the lock.
func (s *Store) transition(cred Credential) {
	s.mu.Lock()
	s.cred = cred
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(cred)
	}
}
