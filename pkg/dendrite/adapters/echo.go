package adapters

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/toyz/dendrite/pkg/dendrite"
)

// EchoAdapter implements dendrite.WebServer for Echo v4
type EchoAdapter struct {
	engine *echo.Echo
}

// NewEchoAdapter creates a new Echo adapter
func NewEchoAdapter(e *echo.Echo) *EchoAdapter {
	return &EchoAdapter{engine: e}
}

// NewDefaultEchoAdapter creates a new Echo adapter with a default Echo instance
func NewDefaultEchoAdapter() *EchoAdapter {
	e := echo.New()
	e.HideBanner = true
	return &EchoAdapter{engine: e}
}

// RegisterRoute registers a route with the Echo server
func (ea *EchoAdapter) RegisterRoute(method string, path dendrite.RoutePath, handler dendrite.HandlerFunc, middlewares ...dendrite.MiddlewareFunc) {
	echoPath := convertPathToEcho(path)
	echoHandler := ea.convertHandler(handler)

	echoMiddlewares := make([]echo.MiddlewareFunc, len(middlewares))
	for i, mw := range middlewares {
		echoMiddlewares[i] = ea.convertMiddleware(mw)
	}

	ea.engine.Add(method, echoPath, echoHandler, echoMiddlewares...)
}

// Use adds global middleware
func (ea *EchoAdapter) Use(middleware dendrite.MiddlewareFunc) {
	ea.engine.Use(ea.convertMiddleware(middleware))
}

// Start starts the server
func (ea *EchoAdapter) Start(addr string) error {
	return ea.engine.Start(addr)
}

// Stop stops the server
func (ea *EchoAdapter) Stop(ctx context.Context) error {
	return ea.engine.Shutdown(ctx)
}

// Name returns the adapter name
func (ea *EchoAdapter) Name() string {
	return "Echo"
}

// GetEngine returns the underlying Echo instance
func (ea *EchoAdapter) GetEngine() *echo.Echo {
	return ea.engine
}

func convertPathToEcho(path dendrite.RoutePath) string {
	echoPath := ""
	for _, part := range path.Parts() {
		switch part.Type {
		case dendrite.ParameterPart:
			echoPath += ":" + part.Value
		case dendrite.WildcardPart:
			echoPath += "*"
		default:
			echoPath += part.Value
		}
	}
	return echoPath
}

func (ea *EchoAdapter) convertHandler(handler dendrite.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := handler(&EchoRequestContext{context: c}); err != nil {
			if httpErr, ok := err.(*dendrite.HttpError); ok {
				return c.JSON(httpErr.StatusCode, httpErr)
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return nil
	}
}

func (ea *EchoAdapter) convertMiddleware(middleware dendrite.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			wrapped := middleware(func(ctx dendrite.RequestContext) error {
				return next(c)
			})
			return wrapped(&EchoRequestContext{context: c})
		}
	}
}

// EchoRequestContext implements dendrite.RequestContext for Echo
type EchoRequestContext struct {
	context echo.Context
}

// NewEchoRequestContext wraps an Echo context for use with the binders
func NewEchoRequestContext(c echo.Context) *EchoRequestContext {
	return &EchoRequestContext{context: c}
}

// Method returns the HTTP method
func (erc *EchoRequestContext) Method() string {
	return erc.context.Request().Method
}

// Path returns the request path
func (erc *EchoRequestContext) Path() string {
	return erc.context.Request().URL.Path
}

// Param returns a route parameter by name
func (erc *EchoRequestContext) Param(name string) string {
	return erc.context.Param(name)
}

// ParamNames returns route parameter names
func (erc *EchoRequestContext) ParamNames() []string {
	return erc.context.ParamNames()
}

// QueryParam returns a query parameter by key
func (erc *EchoRequestContext) QueryParam(key string) string {
	return erc.context.QueryParam(key)
}

// QueryParams returns all query parameters
func (erc *EchoRequestContext) QueryParams() map[string][]string {
	return erc.context.QueryParams()
}

// Header returns a request header value
func (erc *EchoRequestContext) Header(key string) string {
	return erc.context.Request().Header.Get(key)
}

// FormValue returns a form value by name
func (erc *EchoRequestContext) FormValue(name string) string {
	return erc.context.FormValue(name)
}

// Bind deserializes the request body using Echo's binder
func (erc *EchoRequestContext) Bind(i any) error {
	return erc.context.Bind(i)
}

// Get retrieves data from the context
func (erc *EchoRequestContext) Get(key string) any {
	return erc.context.Get(key)
}

// Set stores data in the context
func (erc *EchoRequestContext) Set(key string, val any) {
	erc.context.Set(key, val)
}
