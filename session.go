package jobly

import (
	"context"
	"sync"
)

// Session holds the signed-in user and the token that proves it. Forms get
// its setter injected instead of looking it up.
type Session struct {
	api    CurrentUserAPI
	tokens TokenStore

	mu        sync.RWMutex
	token     string
	user      *User
	listeners []func(*User)
}

func NewSession(api CurrentUserAPI, tokens TokenStore) *Session {
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}
	return &Session{api: api, tokens: tokens}
}

// CurrentUser returns a copy of the signed-in user, if any.
func (s *Session) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// SetCurrentUser replaces the user record and notifies subscribers.
func (s *Session) SetCurrentUser(u User) {
	s.publish(&u)
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Subscribe registers fn to run after every change of the current user.
// fn receives nil when the user signs out.
func (s *Session) Subscribe(fn func(*User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Start stores token, loads the user it belongs to and publishes it. On
// failure the session is left without a current user.
func (s *Session) Start(ctx context.Context, token string) error {
	if err := s.tokens.Save(token); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.api.SetToken(token)

	username, err := usernameFromToken(token)
	if err != nil {
		logger.Warn().Err(err).Msg("session_token_rejected")
		s.publish(nil)
		return err
	}

	u, err := s.api.GetCurrentUser(ctx, username)
	if err != nil {
		logger.Warn().Err(err).Str("username", username).Msg("session_user_load_failed")
		s.publish(nil)
		return err
	}

	logger.Debug().Str("username", username).Msg("session_started")
	s.publish(&u)
	return nil
}

// Restore resumes the session from a previously saved token.
func (s *Session) Restore(ctx context.Context) error {
	token, err := s.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNoSession
	}
	return s.Start(ctx, token)
}

// End signs out: the user and the token are both dropped.
func (s *Session) End() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	s.api.SetToken("")
	s.publish(nil)
	return s.tokens.Clear()
}

func (s *Session) publish(u *User) {
	s.mu.Lock()
	s.user = u
	listeners := append(([]func(*User))(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		if u == nil {
			fn(nil)
			continue
		}
		c := *u
		fn(&c)
	}
}
