package globals

// Context keys
type ContextKey string

const SessionIDKey ContextKey = "sessionId"

// SessionCookie names the cookie that carries the cart session id.
const SessionCookie = "sid"
