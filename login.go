package jobly

import (
	"context"
	"sync"
)

// StartFunc opens a session for a freshly issued token; Session.Start fits.
type StartFunc func(ctx context.Context, token string) error

type LoginState struct {
	Data   LoginData
	Errors []string
	Phase  Phase
}

func (s LoginState) Change(field, value string) (LoginState, error) {
	switch field {
	case FieldUsername:
		s.Data.Username = value
	case FieldPassword:
		s.Data.Password = value
	default:
		return s, ErrUnknownField
	}
	s.Errors = nil
	if s.Phase != PhaseSubmitting {
		s.Phase = PhaseIdle
	}
	return s, nil
}

func (s LoginState) Submitting() LoginState {
	s.Phase = PhaseSubmitting
	return s
}

// Succeeded drops the password; the username stays for display.
func (s LoginState) Succeeded() LoginState {
	s.Data.Password = ""
	s.Errors = nil
	s.Phase = PhaseSucceeded
	return s
}

func (s LoginState) Failed(errs []string) LoginState {
	s.Errors = append([]string(nil), errs...)
	s.Phase = PhaseFailed
	return s
}

// LoginForm exchanges credentials for a token and starts a session with it.
type LoginForm struct {
	api   Authenticator
	start StartFunc

	mu    sync.Mutex
	state LoginState
}

func NewLoginForm(api Authenticator, start StartFunc) *LoginForm {
	return &LoginForm{api: api, start: start}
}

func (f *LoginForm) State() LoginState {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state
	s.Errors = append([]string(nil), s.Errors...)
	return s
}

func (f *LoginForm) HandleChange(field, value string) (LoginState, error) {
	f.mu.Lock()
	next, err := f.state.Change(field, value)
	if err == nil {
		f.state = next
	}
	f.mu.Unlock()
	return f.State(), err
}

// HandleSubmit reports API and session failures through the state's Errors.
func (f *LoginForm) HandleSubmit(ctx context.Context) (LoginState, error) {
	f.mu.Lock()
	if f.state.Phase == PhaseSubmitting {
		f.mu.Unlock()
		return f.State(), ErrSubmitInFlight
	}
	f.state = f.state.Submitting()
	data := f.state.Data
	f.mu.Unlock()

	err := submitToken(ctx, f.start, func(ctx context.Context) (string, error) {
		return f.api.Login(ctx, data)
	})

	f.mu.Lock()
	if err != nil {
		f.state = f.state.Failed(Messages(err))
	} else {
		f.state = f.state.Succeeded()
	}
	f.mu.Unlock()

	logger.Debug().
		Str("form", "login").
		Str("username", data.Username).
		AnErr("error", err).
		Msg("login_submitted")
	return f.State(), nil
}

// submitToken runs issue and hands the token to start.
func submitToken(ctx context.Context, start StartFunc, issue func(context.Context) (string, error)) error {
	token, err := issue(ctx)
	if err != nil {
		return err
	}
	if start == nil {
		return nil
	}
	return start(ctx, token)
}
