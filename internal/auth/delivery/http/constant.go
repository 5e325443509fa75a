package http

// SessionCookieName is the HttpOnly cookie carrying the session id.
const SessionCookieName = "auth_session"
