package main

import (
	"fmt"
	"net/http"

	"adminpanel/auth"
	"adminpanel/config"
	"adminpanel/handlers"
	"adminpanel/i18n"
	"adminpanel/logging"
	"adminpanel/store"
	"adminpanel/store/memory"
	"adminpanel/store/sqlite"

	"github.com/gorilla/csrf"
	"github.com/rs/zerolog/log"
)

func buildStore() (store.Store, error) {
	switch config.AppConfig.StoreBackend {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		return sqlite.Open(config.AppConfig.StoreDSN)
	default:
		return nil, fmt.Errorf("unknown store backend: %q", config.AppConfig.StoreBackend)
	}
}

func main() {
	if err := config.LoadConfig("config.json"); err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	logging.Setup(config.AppConfig.LogLevel, config.AppConfig.LogFormat)

	if err := i18n.LoadTranslations(); err != nil {
		log.Fatal().Err(err).Msg("error loading translations")
	}

	auth.InitStore()

	st, err := buildStore()
	if err != nil {
		log.Fatal().Err(err).Msg("error building store")
	}
	if closer, ok := st.(*sqlite.Store); ok {
		defer closer.Close()
	}

	mux := http.NewServeMux()

	// Static files
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	handlers.RegisterHandlers(mux, st)

	// CSRF protection around every form route. The key is derived from the
	// session secret so operators configure a single value.
	csrfMiddleware := csrf.Protect(
		auth.DeriveKey(config.AppConfig.SessionKey, "csrf"),
		csrf.Secure(false), // Set to true in production with HTTPS
		csrf.Path("/"),
	)

	handler := handlers.SecurityHeadersMiddleware(
		handlers.RequestLogger(
			handlers.PanicRecovery(
				csrfMiddleware(mux))))

	addr := fmt.Sprintf("%s:%d", config.AppConfig.ListenIP, config.AppConfig.ListenPort)
	log.Info().
		Str("addr", addr).
		Str("app", config.AppConfig.AppName).
		Str("store", config.AppConfig.StoreBackend).
		Msg("server starting")

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
