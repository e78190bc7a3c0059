package jobly

import (
	"html/template"
	"strings"
)

const (
	AlertDanger  = "danger"
	AlertSuccess = "success"
)

// Alert shows a list of messages in a bootstrap alert box.
type Alert struct {
	Type     string // default: "danger"
	Messages []string
}

func (a Alert) RenderHTML() string {
	if a.Type == "" {
		a.Type = AlertDanger
	}
	var b strings.Builder
	if err := views.ExecuteTemplate(&b, "alert", a); err != nil {
		logger.Error().Err(err).Msg("alert_render_failed")
		return ""
	}
	return b.String()
}

var views = template.Must(template.New("views").Funcs(template.FuncMap{
	"fields": func(v ...string) []string { return v },
}).Parse(viewTemplates))
