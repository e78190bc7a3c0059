//go:build !wasm

package jobly

// RenderHTML returns the server-rendered login form, ready for the wasm
// front end to take over.
func (m *loginModule) RenderHTML() string {
	m.form.SetSSR(true)
	return `<h3>` + m.ModuleTitle() + `</h3>` + m.form.RenderHTML()
}
