package jobly

import (
	"context"
	"sync"
)

// Phase is where a form sits in its submit cycle.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ProfileState is one snapshot of the profile form. Its methods never modify
// the receiver; each returns the next snapshot.
type ProfileState struct {
	Username string
	Data     ProfileData
	Errors   []string
	// Saved stays true after a successful save until the form is rebuilt;
	// edits do not reset it.
	Saved bool
	Phase Phase
}

// NewProfileState copies u into a fresh form with an empty password.
func NewProfileState(u User) ProfileState {
	return ProfileState{
		Username: u.Username,
		Data: ProfileData{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
		},
	}
}

// Change sets one input and clears the error list.
func (s ProfileState) Change(field, value string) (ProfileState, error) {
	switch field {
	case FieldFirstName:
		s.Data.FirstName = value
	case FieldLastName:
		s.Data.LastName = value
	case FieldEmail:
		s.Data.Email = value
	case FieldPassword:
		s.Data.Password = value
	case FieldUsername:
		return s, ErrReadOnlyField
	default:
		return s, ErrUnknownField
	}
	s.Errors = nil
	if s.Phase != PhaseSubmitting {
		s.Phase = PhaseIdle
	}
	return s, nil
}

// Payload returns the request key and body of a profile update.
func (s ProfileState) Payload() (string, ProfileData) {
	return s.Username, s.Data
}

func (s ProfileState) Submitting() ProfileState {
	s.Phase = PhaseSubmitting
	return s
}

// Succeeded clears the password and errors and marks the save confirmed.
// Fields edited while the request was in flight are kept.
func (s ProfileState) Succeeded() ProfileState {
	s.Data.Password = ""
	s.Errors = nil
	s.Saved = true
	s.Phase = PhaseSucceeded
	return s
}

// Failed replaces the error list and leaves everything else alone.
func (s ProfileState) Failed(errs []string) ProfileState {
	s.Errors = append([]string(nil), errs...)
	s.Phase = PhaseFailed
	return s
}

// ProfileForm drives a ProfileState through edits and saves.
type ProfileForm struct {
	api     ProfileSaver
	setUser func(User)

	mu    sync.Mutex
	state ProfileState
}

// NewProfileForm starts from current. Later changes to the session are not
// picked up; build a new form for that.
func NewProfileForm(current User, api ProfileSaver, setUser func(User)) *ProfileForm {
	f := &ProfileForm{
		api:     api,
		setUser: setUser,
		state:   NewProfileState(current),
	}
	f.trace("mount")
	return f
}

func (f *ProfileForm) State() ProfileState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.clone()
}

func (f *ProfileForm) HandleChange(field, value string) (ProfileState, error) {
	f.mu.Lock()
	next, err := f.state.Change(field, value)
	if err == nil {
		f.state = next
	}
	s := f.state.clone()
	f.mu.Unlock()

	if err != nil {
		return s, err
	}
	f.trace("change")
	return s, nil
}

// HandleSubmit saves the profile. API failures land in the returned state's
// Errors and are not returned as an error; only ErrSubmitInFlight is.
func (f *ProfileForm) HandleSubmit(ctx context.Context) (ProfileState, error) {
	f.mu.Lock()
	if f.state.Phase == PhaseSubmitting {
		s := f.state.clone()
		f.mu.Unlock()
		return s, ErrSubmitInFlight
	}
	f.state = f.state.Submitting()
	username, payload := f.state.Payload()
	f.mu.Unlock()
	f.trace("submit")

	updated, err := f.api.SaveProfile(ctx, username, payload)

	f.mu.Lock()
	if err != nil {
		f.state = f.state.Failed(Messages(err))
	} else {
		f.state = f.state.Succeeded()
	}
	s := f.state.clone()
	f.mu.Unlock()

	if err != nil {
		logger.Debug().Err(err).Str("username", username).Msg("profile_save_failed")
		return s, nil
	}
	f.trace("saved")
	if f.setUser != nil {
		f.setUser(updated)
	}
	return s, nil
}

func (f *ProfileForm) trace(event string) {
	s := f.State()
	logger.Debug().
		Str("form", "profile").
		Str("event", event).
		Str("username", s.Username).
		Str("first_name", s.Data.FirstName).
		Str("last_name", s.Data.LastName).
		Str("email", s.Data.Email).
		Strs("errors", s.Errors).
		Bool("saved", s.Saved).
		Stringer("phase", s.Phase).
		Send()
}

func (s ProfileState) clone() ProfileState {
	s.Errors = append([]string(nil), s.Errors...)
	return s
}
