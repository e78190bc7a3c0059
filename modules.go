package jobly

import (
	_ "github.com/tinywasm/fmt/dictionary"
	"github.com/tinywasm/form"
	"github.com/tinywasm/form/input"
)

var (
	LoginModule   *loginModule
	SignupModule  *signupModule
	ProfileModule *profileModule
)

func init() {
	form.RegisterInput(
		input.Text("", "username"),
		input.Text("", "firstname"),
		input.Text("", "lastname"),
	)

	LoginModule = &loginModule{form: mustForm("login", &LoginData{})}
	SignupModule = &signupModule{form: mustForm("signup", &SignupData{})}
	ProfileModule = &profileModule{form: mustForm("profile", &ProfileData{})}
}

func mustForm(parentID string, s any) *form.Form {
	f, err := form.New(parentID, s)
	if err != nil {
		panic("jobly: mustForm: " + err.Error())
	}
	return f
}
