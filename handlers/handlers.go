package handlers

import (
	"net/http"
	"strconv"

	"adminpanel/auth"
	"adminpanel/i18n"
	"adminpanel/logging"
	"adminpanel/store"

	"github.com/rs/zerolog"
)

// Admin serves the panel pages against a record store.
type Admin struct {
	store store.Store
	log   zerolog.Logger
}

func RegisterHandlers(mux *http.ServeMux, st store.Store) {
	h := &Admin{store: st, log: logging.NewLogger("handlers")}

	mux.HandleFunc("GET /admin/login", h.LoginForm)
	mux.HandleFunc("POST /admin/login", h.Login)
	mux.HandleFunc("GET /admin/logout", auth.RequireAdmin(h.Logout))
	mux.HandleFunc("GET /admin", auth.RequireAdmin(h.Home))
	mux.HandleFunc("GET /admin/home", auth.RequireAdmin(h.Home))
	mux.HandleFunc("GET /admin/users", auth.RequireAdmin(h.Users))
	mux.HandleFunc("GET /admin/users/{id}/edit", auth.RequireAdmin(h.EditUser))
	mux.HandleFunc("POST /admin/users/{id}/delete", auth.RequireAdmin(h.DeleteUser))
	mux.HandleFunc("GET /admin/trash", auth.RequireAdmin(h.Trash))

	// Everything else gets the not-found page.
	mux.HandleFunc("/", h.NotFound)
}

func (h *Admin) LoginForm(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "login.html", http.StatusOK, nil)
}

func (h *Admin) Login(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	username := r.FormValue("username")
	password := r.FormValue("password")

	ok, err := h.store.CheckCredentials(username, password)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	if !ok {
		// Same message for unknown user and wrong password.
		auth.AddFlash(w, r, "error", i18n.T(lang, "InvalidCredentials"))
		renderTemplate(w, r, "login.html", http.StatusOK, nil)
		return
	}

	auth.SetSession(w, r, username)
	auth.AddFlash(w, r, "success", i18n.T(lang, "LoginSuccessful"))
	h.log.Info().Str("username", username).Msg("admin logged in")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Admin) Logout(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	auth.ClearSession(w, r)
	auth.AddFlash(w, r, "success", i18n.T(lang, "LoggedOut"))
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

func (h *Admin) Home(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "home.html", http.StatusOK, map[string]any{
		"Stats": h.store.Stats(),
	})
}

func (h *Admin) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers()
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	renderTemplate(w, r, "users.html", http.StatusOK, map[string]any{
		"Users": users,
	})
}

// EditUser is a placeholder: it performs no lookup and no mutation.
func (h *Admin) EditUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	lang := i18n.DetectLanguage(r)
	auth.AddFlash(w, r, "info", i18n.Tf(lang, "EditUserStub", id))
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *Admin) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	// Unknown ids are a silent no-op; the trash list and the stats snapshot
	// stay untouched either way.
	if err := h.store.DeleteUser(id); err != nil {
		h.serverError(w, r, err)
		return
	}

	lang := i18n.DetectLanguage(r)
	auth.AddFlash(w, r, "success", i18n.Tf(lang, "UserDeleted", id))
	h.log.Info().Int("user_id", id).Str("admin", auth.Username(r)).Msg("user deleted")
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *Admin) Trash(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store.ListDeleted()
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	renderTemplate(w, r, "trash.html", http.StatusOK, map[string]any{
		"DeletedUsers": deleted,
	})
}

func (h *Admin) NotFound(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "404.html", http.StatusNotFound, nil)
}

func (h *Admin) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error().Err(err).Str("path", r.URL.Path).Msg("handler failed")
	renderTemplate(w, r, "500.html", http.StatusInternalServerError, nil)
}
