package jobly

import "github.com/tinywasm/form"

type profileModule struct {
	form *form.Form
}

func (m *profileModule) HandlerName() string { return "profile" }
func (m *profileModule) ModuleTitle() string { return "Profile" }

func (m *profileModule) ValidateData(action byte, data ...any) error {
	if len(data) == 0 {
		return nil
	}
	if _, ok := data[0].(*ProfileData); !ok {
		return nil
	}
	return m.form.ValidateData(action, data...)
}
