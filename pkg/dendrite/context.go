package dendrite

import (
	"context"
)

// RequestContext is the framework-agnostic view of an HTTP request that
// the binders consume. Adapters in pkg/dendrite/adapters implement it for
// Echo, Gin and Fiber.
type RequestContext interface {
	// Request data
	Method() string
	Path() string

	// Route parameters
	Param(name string) string
	ParamNames() []string

	// Query parameters
	QueryParam(key string) string
	QueryParams() map[string][]string

	// Headers
	Header(key string) string

	// Form data
	FormValue(name string) string

	// Bind deserializes the request body into i using the framework's
	// own decoder
	Bind(i any) error

	// Context data
	Get(key string) any
	Set(key string, val any)
}

// HandlerFunc defines the signature for HTTP handlers
type HandlerFunc func(RequestContext) error

// MiddlewareFunc defines the signature for middleware
type MiddlewareFunc func(HandlerFunc) HandlerFunc

// WebServer defines the contract for web server implementations
type WebServer interface {
	// RegisterRoute registers a route using dendrite path syntax
	RegisterRoute(method string, path RoutePath, handler HandlerFunc, middlewares ...MiddlewareFunc)

	// Use adds global middleware
	Use(middleware MiddlewareFunc)

	// Server lifecycle
	Start(addr string) error
	Stop(ctx context.Context) error

	// Name returns the adapter name
	Name() string
}
