package jobly

import "strings"

// profileSaved is the success message shown after a profile save.
const profileSaved = "updated successfully."

type formView struct {
	State      any
	ErrorAlert *Alert
	SavedAlert *Alert
}

func errorAlert(errs []string) *Alert {
	if len(errs) == 0 {
		return nil
	}
	return &Alert{Type: AlertDanger, Messages: errs}
}

// RenderProfile renders the profile form for s. The password is never
// written back into the page.
func RenderProfile(s ProfileState) string {
	v := formView{State: s, ErrorAlert: errorAlert(s.Errors)}
	if s.Saved {
		v.SavedAlert = &Alert{Type: AlertSuccess, Messages: []string{profileSaved}}
	}
	return render("profile", v)
}

func RenderLogin(s LoginState) string {
	return render("login", formView{State: s, ErrorAlert: errorAlert(s.Errors)})
}

func RenderSignup(s SignupState) string {
	return render("signup", formView{State: s, ErrorAlert: errorAlert(s.Errors)})
}

func render(name string, v formView) string {
	var b strings.Builder
	if err := views.ExecuteTemplate(&b, name, v); err != nil {
		logger.Error().Err(err).Str("view", name).Msg("view_render_failed")
		return ""
	}
	return b.String()
}

const viewTemplates = `
{{define "alert"}}<div class="alert alert-{{.Type}}" role="alert">{{range .Messages}}<p class="mb-0 small">{{.}}</p>{{end}}</div>{{end}}

{{define "alerts"}}{{with .ErrorAlert}}{{template "alert" .}}{{end}}{{with .SavedAlert}}{{template "alert" .}}{{end}}{{end}}

{{define "input"}}<div class="form-group"><label>{{index . 1}}</label><input name="{{index . 0}}" class="form-control" value="{{index . 2}}"></div>{{end}}

{{define "password"}}<div class="form-group"><label>{{.}}</label><input type="password" name="password" class="form-control" autocomplete="current-password"></div>{{end}}

{{define "profile"}}<div class="col-md-6 col-lg-4 offset-md-3 offset-lg-4"><h3>Profile</h3><div class="card"><div class="card-body"><form>
<div class="form-group"><label>Username</label><p class="form-control-plaintext">{{.State.Username}}</p></div>
{{template "input" (fields "firstName" "First Name" .State.Data.FirstName)}}
{{template "input" (fields "lastName" "Last Name" .State.Data.LastName)}}
{{template "input" (fields "email" "Email" .State.Data.Email)}}
{{template "password" "Confirm password to make changes:"}}
{{template "alerts" .}}
<button class="btn btn-primary btn-block mt-4">Save Changes</button>
</form></div></div></div>{{end}}

{{define "login"}}<div class="col-md-6 col-lg-4 offset-md-3 offset-lg-4"><h3 class="mb-3">Log In</h3><div class="card"><div class="card-body"><form>
{{template "input" (fields "username" "Username" .State.Data.Username)}}
{{template "password" "Password"}}
{{template "alerts" .}}
<button class="btn btn-primary float-right">Submit</button>
</form></div></div></div>{{end}}

{{define "signup"}}<div class="col-md-6 col-lg-4 offset-md-3 offset-lg-4"><h2 class="mb-3">Sign Up</h2><div class="card"><div class="card-body"><form>
{{template "input" (fields "username" "Username" .State.Data.Username)}}
{{template "password" "Password"}}
{{template "input" (fields "firstName" "First name" .State.Data.FirstName)}}
{{template "input" (fields "lastName" "Last name" .State.Data.LastName)}}
{{template "input" (fields "email" "Email" .State.Data.Email)}}
{{template "alerts" .}}
<button class="btn btn-primary float-right">Submit</button>
</form></div></div></div>{{end}}
`
