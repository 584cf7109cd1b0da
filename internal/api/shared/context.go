package shared

// ContextKey is the key type for request-scoped context values.
type ContextKey string

// Context keys for request-scoped values.
const (
	// UserIDContextKey is the context key for the authenticated principal's
	// user ID. It is set by the auth middleware and read by handlers; it
	// never outlives the request.
	UserIDContextKey ContextKey = "userID"
)
