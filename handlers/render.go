package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"adminpanel/auth"
	"adminpanel/config"
	"adminpanel/i18n"

	"github.com/gorilla/csrf"
)

// Templates are embedded so handlers render the same regardless of the
// working directory (keeps httptest-driven tests honest).
//
//go:embed templates/*.html
var templateFS embed.FS

func renderTemplate(w http.ResponseWriter, r *http.Request, name string, status int, data map[string]any) {
	lang := i18n.DetectLanguage(r)

	funcMap := template.FuncMap{
		"T": func(key string) string {
			return i18n.T(lang, key)
		},
	}

	tmpl, err := template.New(name).Funcs(funcMap).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = map[string]any{}
	}
	if _, exists := data["AppName"]; !exists {
		data["AppName"] = config.AppConfig.AppName
	}
	data["Lang"] = lang
	data["csrfField"] = csrf.TemplateField(r)
	data["LoggedIn"] = auth.IsLoggedIn(r)
	data["Username"] = auth.Username(r)
	data["Flashes"] = auth.Flashes(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	tmpl.ExecuteTemplate(w, "layout", data)
}
