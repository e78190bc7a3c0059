//go:build !wasm

package jobly

// RenderHTML renders the empty profile form. Pre-populated markup for a signed
// in user comes from RenderProfile.
func (m *profileModule) RenderHTML() string {
	m.form.SetSSR(true)
	return `<h3>` + m.ModuleTitle() + `</h3>` + m.form.RenderHTML()
}
