package session

// Session is the server-side record a cookie-held session id resolves to.
// It intentionally carries only the owning user id and a creation stamp;
// authorization data stays in the relational store and is looked up per
// request.
type Session struct {
	SessionID string
	UserID    int64
	CreatedAt int64
}
