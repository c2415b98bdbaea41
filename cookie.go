package lireddit

import "net/http"

// SessionCookie bakes a session id into the cookie the transport layer
// attaches to the response. Attributes follow the deployment contract:
// httpOnly always, secure and apex-domain-scoped in production, SameSite
// from config (lax by default).
func (c Config) SessionCookie(sessionID string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     c.Cookie.Name,
		Value:    sessionID,
		Path:     c.Cookie.Path,
		MaxAge:   int(c.Cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Production,
		SameSite: c.Cookie.SameSite,
	}
	if c.Production {
		cookie.Domain = c.Cookie.Domain
	}
	return cookie
}

// ClearSessionCookie expires the session cookie client-side. Callers clear
// the cookie even when the store-side destroy failed: a stale cookie
// referencing a dead session resolves to absent forever and is harmless.
func (c Config) ClearSessionCookie() *http.Cookie {
	cookie := &http.Cookie{
		Name:     c.Cookie.Name,
		Value:    "",
		Path:     c.Cookie.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Production,
		SameSite: c.Cookie.SameSite,
	}
	if c.Production {
		cookie.Domain = c.Cookie.Domain
	}
	return cookie
}
