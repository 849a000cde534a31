package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"adminpanel/auth"
	"adminpanel/config"
	"adminpanel/i18n"
	"adminpanel/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.AppConfig.AppName = "Admin Panel"
	config.AppConfig.SessionKey = "test-secret-key-12345678901234567890123456789012"
	if err := i18n.LoadTranslations(); err != nil {
		panic(err)
	}
	auth.InitStore()
	os.Exit(m.Run())
}

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	RegisterHandlers(mux, memory.New())
	return mux
}

// do performs one request against the mux, carrying an optional session cookie
// and form values.
func do(mux *http.ServeMux, method, target string, cookie *http.Cookie, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

// sessionCookie returns the freshest session cookie set on the response.
// Handlers may save the session more than once per request; the last
// Set-Cookie wins, as it would in a browser.
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionName {
			cookie = c
		}
	}
	return cookie
}

// login authenticates and drains the login flash so later assertions only see
// their own messages.
func login(t *testing.T, mux *http.ServeMux) *http.Cookie {
	t.Helper()
	w := do(mux, "POST", "/admin/login", nil, url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)

	drained := do(mux, "GET", "/admin", cookie, nil)
	require.Equal(t, http.StatusOK, drained.Code)
	if c := sessionCookie(drained); c != nil {
		cookie = c
	}
	return cookie
}

func TestProtectedRoutesRedirectAnonymous(t *testing.T) {
	mux := newTestMux()

	routes := []struct {
		method, path string
	}{
		{"GET", "/admin"},
		{"GET", "/admin/home"},
		{"GET", "/admin/logout"},
		{"GET", "/admin/users"},
		{"GET", "/admin/users/1/edit"},
		{"POST", "/admin/users/1/delete"},
		{"GET", "/admin/trash"},
	}

	for _, route := range routes {
		w := do(mux, route.method, route.path, nil, nil)
		assert.Equal(t, http.StatusSeeOther, w.Code, "%s %s", route.method, route.path)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"), "%s %s", route.method, route.path)
		assert.NotContains(t, w.Body.String(), "john_doe", "protected content must never leak")
	}
}

func TestLoginFormRenders(t *testing.T) {
	mux := newTestMux()

	w := do(mux, "GET", "/admin/login", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin Login")
	assert.Contains(t, w.Body.String(), `name="username"`)
	assert.Contains(t, w.Body.String(), `name="password"`)
}

func TestLoginSuccess(t *testing.T) {
	mux := newTestMux()

	w := do(mux, "POST", "/admin/login", nil, url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)

	dashboard := do(mux, "GET", "/admin", cookie, nil)
	assert.Equal(t, http.StatusOK, dashboard.Code)
	assert.Contains(t, dashboard.Body.String(), "Login successful!")
	assert.Contains(t, dashboard.Body.String(), "Dashboard")
}

func TestLoginSecondAccount(t *testing.T) {
	mux := newTestMux()

	w := do(mux, "POST", "/admin/login", nil, url.Values{
		"username": {"superadmin"},
		"password": {"super456"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)

	page := do(mux, "GET", "/admin/users", sessionCookie(w), nil)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "superadmin")
}

func TestLoginFailure(t *testing.T) {
	mux := newTestMux()

	cases := []struct{ username, password string }{
		{"admin", "wrong"},
		{"admin", "ADMIN123"},
		{"Admin", "admin123"},
		{"nobody", "whatever"},
		{"", ""},
	}
	for _, tc := range cases {
		w := do(mux, "POST", "/admin/login", nil, url.Values{
			"username": {tc.username},
			"password": {tc.password},
		})

		assert.Equal(t, http.StatusOK, w.Code, "%s/%s re-renders the form", tc.username, tc.password)
		assert.Contains(t, w.Body.String(), "Invalid username or password")

		// The session set on the response must still be anonymous.
		if cookie := sessionCookie(w); cookie != nil {
			probe := do(mux, "GET", "/admin/users", cookie, nil)
			assert.Equal(t, http.StatusSeeOther, probe.Code)
			assert.Equal(t, "/admin/login", probe.Header().Get("Location"))
		}
	}
}

func TestDashboardStats(t *testing.T) {
	mux := newTestMux()
	cookie := login(t, mux)

	w := do(mux, "GET", "/admin/home", cookie, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<span class="stat-value">3</span>`)
	assert.Contains(t, body, `<span class="stat-value">25</span>`)
	assert.Contains(t, body, `<span class="stat-value">12</span>`)
	assert.Contains(t, body, `<span class="stat-value">1</span>`)
}

func TestUsersList(t *testing.T) {
	mux := newTestMux()
	cookie := login(t, mux)

	w := do(mux, "GET", "/admin/users", cookie, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "john_doe")
	assert.Contains(t, body, "jane_smith")
	assert.Contains(t, body, "bob_wilson")
	assert.Contains(t, body, "Inactive") // bob_wilson is inactive
}

func TestDeleteUser(t *testing.T) {
	mux := newTestMux()
	cookie := login(t, mux)

	w := do(mux, "POST", "/admin/users/2/delete", cookie, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/users", w.Header().Get("Location"))
	cookie = sessionCookie(w)

	list := do(mux, "GET", "/admin/users", cookie, nil)
	body := list.Body.String()
	assert.Contains(t, body, "User 2 has been deleted")
	assert.Contains(t, body, "john_doe")
	assert.NotContains(t, body, "jane_smith")
	assert.Contains(t, body, "bob_wilson")
}

func TestDeleteIsIdempotent(t *testing.T) {
	mux := newTestMux()
	cookie := login(t, mux)

	for i := 0; i < 2; i++ {
		w := do(mux, "POST", "/admin/users/2/delete", cookie, nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)
	}
	// Unknown id is also a benign no-op.
	w := do(mux, "POST", "/admin/users/999/delete", cookie, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	list := do(mux, "GET", "/admin/users", cookie, nil)
	assert.Contains(t, list.Body.String(), "john_doe")
	assert.NotContains(t, list.Body.String(), "jane_smith")
	assert.Contains(t, list.Body.String(), "bob_wilson")
}

func TestDeleteLeavesTrashAndStatsAlone(t *testing.T) {
	mux := newTestMux()
	cookie := login(t, mux)

	w := do(mux, "POST", "/admin/users/1/delete", cookie, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	cookie = sessionCookie(w)

	// Trash still holds only the seeded record.
	trash := do(mux, "GET", "/admin/trash", cookie, nil)
	assert.Contains(t, trash.Body.String(), "deleted_user")
	assert.NotContains(t, trash.Body.String(), "john_doe")

	// Dashboard counters are the startup snapshot, not live counts.
	home := do(mux, "GET", "/admin", cookie, nil)
	assert.Contains(t, home.Body.String(), `<span class="stat-value">3</span>`)
}

func TestEditUserIsAStub(t *testing.T) {
	mux := newTestMux()
	cookie := login(t, mux)

	w := do(mux, "GET", "/admin/users/2/edit", cookie, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/users", w.Header().Get("Location"))
	cookie = sessionCookie(w)

	list := do(mux, "GET", "/admin/users", cookie, nil)
	assert.Contains(t, list.Body.String(), "Edit user 2 functionality would go here")
	assert.Contains(t, list.Body.String(), "jane_smith", "edit must not mutate anything")
}

func TestNonIntegerIDRendersNotFound(t *testing.T) {
	mux := newTestMux()
	cookie := login(t, mux)

	for _, route := range []struct{ method, path string }{
		{"GET", "/admin/users/abc/edit"},
		{"POST", "/admin/users/abc/delete"},
	} {
		w := do(mux, route.method, route.path, cookie, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", route.method, route.path)
		assert.Contains(t, w.Body.String(), "Page not found")
	}
}

func TestTrashView(t *testing.T) {
	mux := newTestMux()
	cookie := login(t, mux)

	w := do(mux, "GET", "/admin/trash", cookie, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "deleted_user")
	assert.Contains(t, body, "deleted@example.com")
	assert.Contains(t, body, "admin") // the deletion reason
}

func TestLogout(t *testing.T) {
	mux := newTestMux()
	cookie := login(t, mux)

	w := do(mux, "GET", "/admin/logout", cookie, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	// The session handed back is anonymous again.
	cookie = sessionCookie(w)
	probe := do(mux, "GET", "/admin/users", cookie, nil)
	assert.Equal(t, http.StatusSeeOther, probe.Code)
	assert.Equal(t, "/admin/login", probe.Header().Get("Location"))

	// The logout notice survives the redirect.
	form := do(mux, "GET", "/admin/login", cookie, nil)
	assert.Contains(t, form.Body.String(), "You have been logged out")
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	mux := newTestMux()

	w := do(mux, "GET", "/nope", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}
