//go:build !wasm

package jobly

func (m *signupModule) RenderHTML() string {
	m.form.SetSSR(true)
	return `<h3>` + m.ModuleTitle() + `</h3>` + m.form.RenderHTML()
}
