package adapters

import (
	"context"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/toyz/dendrite/pkg/dendrite"
)

// FiberAdapter implements dendrite.WebServer for Fiber v2
type FiberAdapter struct {
	app *fiber.App
}

// NewFiberAdapter creates a new Fiber adapter
func NewFiberAdapter() *FiberAdapter {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	return &FiberAdapter{app: app}
}

func convertPathToFiber(path dendrite.RoutePath) string {
	fiberPath := ""
	for _, part := range path.Parts() {
		switch part.Type {
		case dendrite.ParameterPart:
			fiberPath += ":" + part.Value
		case dendrite.WildcardPart:
			fiberPath += "*"
		default:
			fiberPath += part.Value
		}
	}
	return fiberPath
}

// RegisterRoute registers a route with the Fiber app
func (fa *FiberAdapter) RegisterRoute(method string, path dendrite.RoutePath, handler dendrite.HandlerFunc, middlewares ...dendrite.MiddlewareFunc) {
	fiberPath := convertPathToFiber(path)

	var handlers []fiber.Handler
	for _, mw := range middlewares {
		handlers = append(handlers, convertMiddlewareToFiber(mw))
	}
	handlers = append(handlers, convertHandlerToFiber(handler))

	fa.app.Add(strings.ToUpper(method), fiberPath, handlers...)
}

// Use adds middleware to the Fiber app
func (fa *FiberAdapter) Use(middleware dendrite.MiddlewareFunc) {
	fa.app.Use(convertMiddlewareToFiber(middleware))
}

// Start starts the Fiber server
func (fa *FiberAdapter) Start(addr string) error {
	return fa.app.Listen(addr)
}

// Stop stops the Fiber server
func (fa *FiberAdapter) Stop(ctx context.Context) error {
	return fa.app.Shutdown()
}

// Name returns the adapter name
func (fa *FiberAdapter) Name() string {
	return "Fiber"
}

// GetApp returns the underlying Fiber app
func (fa *FiberAdapter) GetApp() *fiber.App {
	return fa.app
}

func convertHandlerToFiber(handler dendrite.HandlerFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := handler(&FiberRequestContext{ctx: c}); err != nil {
			if httpErr, ok := err.(*dendrite.HttpError); ok {
				return c.Status(httpErr.StatusCode).JSON(httpErr)
			}
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return nil
	}
}

func convertMiddlewareToFiber(middleware dendrite.MiddlewareFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		wrapped := middleware(func(ctx dendrite.RequestContext) error {
			return c.Next()
		})
		if err := wrapped(&FiberRequestContext{ctx: c}); err != nil {
			if httpErr, ok := err.(*dendrite.HttpError); ok {
				return c.Status(httpErr.StatusCode).JSON(httpErr)
			}
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return nil
	}
}

// FiberRequestContext implements dendrite.RequestContext for Fiber
type FiberRequestContext struct {
	ctx *fiber.Ctx
}

// NewFiberRequestContext wraps a Fiber context for use with the binders
func NewFiberRequestContext(c *fiber.Ctx) *FiberRequestContext {
	return &FiberRequestContext{ctx: c}
}

// Method returns the HTTP method
func (frc *FiberRequestContext) Method() string {
	return frc.ctx.Method()
}

// Path returns the request path
func (frc *FiberRequestContext) Path() string {
	return frc.ctx.Path()
}

// Param returns a route parameter by name
func (frc *FiberRequestContext) Param(name string) string {
	return frc.ctx.Params(name)
}

// ParamNames returns route parameter names
func (frc *FiberRequestContext) ParamNames() []string {
	route := frc.ctx.Route()
	if route == nil {
		return nil
	}
	return route.Params
}

// QueryParam returns a query parameter by key
func (frc *FiberRequestContext) QueryParam(key string) string {
	return frc.ctx.Query(key)
}

// QueryParams returns all query parameters
func (frc *FiberRequestContext) QueryParams() map[string][]string {
	result := make(map[string][]string)
	frc.ctx.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		result[string(key)] = append(result[string(key)], string(value))
	})
	return result
}

// Header returns a request header value
func (frc *FiberRequestContext) Header(key string) string {
	return frc.ctx.Get(key)
}

// FormValue returns a form value by name
func (frc *FiberRequestContext) FormValue(name string) string {
	return frc.ctx.FormValue(name)
}

// Bind deserializes the request body using Fiber's body parser
func (frc *FiberRequestContext) Bind(i any) error {
	return frc.ctx.BodyParser(i)
}

// Get retrieves data from the context
func (frc *FiberRequestContext) Get(key string) any {
	return frc.ctx.Locals(key)
}

// Set stores data in the context
func (frc *FiberRequestContext) Set(key string, val any) {
	frc.ctx.Locals(key, val)
}
