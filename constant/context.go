package constant

type contextKey string

// SessionIDKey carries the guest session id through request contexts.
const SessionIDKey contextKey = "session_id"
