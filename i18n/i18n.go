package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

//go:embed translations/*.json
var translationFS embed.FS

var translations = make(map[string]map[string]string)
var DefaultLang = "en"

func LoadTranslations() error {
	files := []string{"en", "fr"}
	for _, lang := range files {
		data, err := translationFS.ReadFile(fmt.Sprintf("translations/%s.json", lang))
		if err != nil {
			return err
		}
		var t map[string]string
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		translations[lang] = t
	}
	return nil
}

func T(lang, key string) string {
	if t, ok := translations[lang]; ok {
		if val, ok := t[key]; ok {
			return val
		}
	}
	// Fallback to English
	if lang != DefaultLang {
		return T(DefaultLang, key)
	}
	return key
}

// Tf looks up a format string and applies the arguments.
func Tf(lang, key string, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}

func DetectLanguage(r *http.Request) string {
	// Example: fr-CH, fr;q=0.9, en;q=0.8, de;q=0.7, *;q=0.5
	accept := r.Header.Get("Accept-Language")
	if accept != "" {
		parts := strings.Split(accept, ",")
		for _, part := range parts {
			lang := strings.TrimSpace(strings.Split(part, ";")[0])
			if len(lang) >= 2 {
				lang = lang[:2] // e.g., "en-US" -> "en"
				if _, ok := translations[lang]; ok {
					return lang
				}
			}
		}
	}

	return DefaultLang
}
