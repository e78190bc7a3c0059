package jobly_test

import (
	"strings"
	"testing"

	"github.com/tinywasm/jobly"
)

func TestAlert(t *testing.T) {
	out := jobly.Alert{Messages: []string{"first", "<b>second</b>"}}.RenderHTML()

	if !strings.Contains(out, `class="alert alert-danger"`) {
		t.Errorf("expected danger alert by default, got %s", out)
	}
	if strings.Count(out, `<p class="mb-0 small">`) != 2 {
		t.Errorf("expected one paragraph per message, got %s", out)
	}
	if strings.Contains(out, "<b>") || !strings.Contains(out, "&lt;b&gt;second&lt;/b&gt;") {
		t.Errorf("expected messages escaped, got %s", out)
	}

	out = jobly.Alert{Type: jobly.AlertSuccess, Messages: []string{"ok"}}.RenderHTML()
	if !strings.Contains(out, "alert-success") {
		t.Errorf("expected success alert, got %s", out)
	}
}

func TestRenderProfile(t *testing.T) {
	s := jobly.NewProfileState(jane)
	s, _ = s.Change(jobly.FieldPassword, "hunter22")

	out := jobly.RenderProfile(s)
	for _, want := range []string{
		`<p class="form-control-plaintext">jdoe</p>`,
		`name="firstName" class="form-control" value="Jane"`,
		`name="lastName" class="form-control" value="Doe"`,
		`name="email" class="form-control" value="j@x.com"`,
		`type="password" name="password"`,
		"Save Changes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %s", want, out)
		}
	}
	if strings.Contains(out, "hunter22") {
		t.Errorf("password must not be rendered")
	}
	if strings.Contains(out, "alert") {
		t.Errorf("expected no alerts on a fresh form")
	}

	failed := s.Failed([]string{"Invalid password"})
	if out := jobly.RenderProfile(failed); !strings.Contains(out, "alert-danger") || !strings.Contains(out, "Invalid password") {
		t.Errorf("expected error alert, got %s", out)
	}

	saved := s.Succeeded()
	if out := jobly.RenderProfile(saved); !strings.Contains(out, "alert-success") || !strings.Contains(out, "updated successfully.") {
		t.Errorf("expected success alert, got %s", out)
	}
}

func TestRenderLoginAndSignup(t *testing.T) {
	var login jobly.LoginState
	login, _ = login.Change(jobly.FieldUsername, `"><script>`)
	login = login.Failed([]string{"Invalid username/password"})

	out := jobly.RenderLogin(login)
	if strings.Contains(out, "<script>") {
		t.Errorf("expected username escaped, got %s", out)
	}
	if !strings.Contains(out, "Invalid username/password") || !strings.Contains(out, "Log In") {
		t.Errorf("unexpected login markup %s", out)
	}

	var signup jobly.SignupState
	signup, _ = signup.Change(jobly.FieldEmail, "a@b.com")
	out = jobly.RenderSignup(signup)
	if !strings.Contains(out, `value="a@b.com"`) || !strings.Contains(out, "Sign Up") {
		t.Errorf("unexpected signup markup %s", out)
	}
}
