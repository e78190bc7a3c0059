package jobly

import "github.com/tinywasm/form"

type signupModule struct {
	form *form.Form
}

func (m *signupModule) HandlerName() string { return "signup" }
func (m *signupModule) ModuleTitle() string { return "Sign Up" }

func (m *signupModule) ValidateData(action byte, data ...any) error {
	return m.form.ValidateData(action, data...)
}
