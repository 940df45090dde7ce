package global

const (
	AppVersion = "1.0.0" // project version shown in logs and the health endpoint

	// Gin context key for the per-request id set by middlewares.RequestID.
	CtxRequestIDKey = "request_id"

	// Header echoed back to clients and accepted from upstream proxies.
	HeaderRequestID = "X-Request-ID"
)
