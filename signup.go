package jobly

import (
	"context"
	"sync"
)

type SignupState struct {
	Data   SignupData
	Errors []string
	Phase  Phase
}

func (s SignupState) Change(field, value string) (SignupState, error) {
	switch field {
	case FieldUsername:
		s.Data.Username = value
	case FieldPassword:
		s.Data.Password = value
	case FieldFirstName:
		s.Data.FirstName = value
	case FieldLastName:
		s.Data.LastName = value
	case FieldEmail:
		s.Data.Email = value
	default:
		return s, ErrUnknownField
	}
	s.Errors = nil
	if s.Phase != PhaseSubmitting {
		s.Phase = PhaseIdle
	}
	return s, nil
}

func (s SignupState) Submitting() SignupState {
	s.Phase = PhaseSubmitting
	return s
}

func (s SignupState) Succeeded() SignupState {
	s.Data.Password = ""
	s.Errors = nil
	s.Phase = PhaseSucceeded
	return s
}

func (s SignupState) Failed(errs []string) SignupState {
	s.Errors = append([]string(nil), errs...)
	s.Phase = PhaseFailed
	return s
}

// SignupForm registers an account and starts a session with the new token.
type SignupForm struct {
	api   Authenticator
	start StartFunc

	mu    sync.Mutex
	state SignupState
}

func NewSignupForm(api Authenticator, start StartFunc) *SignupForm {
	return &SignupForm{api: api, start: start}
}

func (f *SignupForm) State() SignupState {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state
	s.Errors = append([]string(nil), s.Errors...)
	return s
}

func (f *SignupForm) HandleChange(field, value string) (SignupState, error) {
	f.mu.Lock()
	next, err := f.state.Change(field, value)
	if err == nil {
		f.state = next
	}
	f.mu.Unlock()
	return f.State(), err
}

func (f *SignupForm) HandleSubmit(ctx context.Context) (SignupState, error) {
	f.mu.Lock()
	if f.state.Phase == PhaseSubmitting {
		f.mu.Unlock()
		return f.State(), ErrSubmitInFlight
	}
	f.state = f.state.Submitting()
	data := f.state.Data
	f.mu.Unlock()

	err := submitToken(ctx, f.start, func(ctx context.Context) (string, error) {
		return f.api.Signup(ctx, data)
	})

	f.mu.Lock()
	if err != nil {
		f.state = f.state.Failed(Messages(err))
	} else {
		f.state = f.state.Succeeded()
	}
	f.mu.Unlock()

	logger.Debug().
		Str("form", "signup").
		Str("username", data.Username).
		AnErr("error", err).
		Msg("signup_submitted")
	return f.State(), nil
}
