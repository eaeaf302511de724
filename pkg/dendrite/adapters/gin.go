package adapters

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/toyz/dendrite/pkg/dendrite"
)

// GinAdapter implements dendrite.WebServer for the Gin framework
type GinAdapter struct {
	engine *gin.Engine
	server *http.Server
}

// NewGinAdapter creates a new Gin adapter
func NewGinAdapter(g *gin.Engine) *GinAdapter {
	return &GinAdapter{engine: g}
}

// NewDefaultGinAdapter creates a new Gin adapter with a default Gin instance
func NewDefaultGinAdapter() *GinAdapter {
	return &GinAdapter{engine: gin.Default()}
}

func convertPathToGin(path dendrite.RoutePath) string {
	ginPath := ""
	for _, part := range path.Parts() {
		switch part.Type {
		case dendrite.ParameterPart:
			ginPath += ":" + part.Value
		case dendrite.WildcardPart:
			ginPath += "/*path"
		default:
			ginPath += part.Value
		}
	}
	return ginPath
}

// RegisterRoute registers a route with the Gin server
func (ga *GinAdapter) RegisterRoute(method string, path dendrite.RoutePath, handler dendrite.HandlerFunc, middlewares ...dendrite.MiddlewareFunc) {
	ginHandler := ga.convertHandler(handler)

	var ginMiddlewares []gin.HandlerFunc
	for _, middleware := range middlewares {
		ginMiddlewares = append(ginMiddlewares, ga.convertMiddleware(middleware))
	}

	handlers := append(ginMiddlewares, ginHandler)
	ga.engine.Handle(method, convertPathToGin(path), handlers...)
}

// Use registers a global middleware with the Gin server
func (ga *GinAdapter) Use(middleware dendrite.MiddlewareFunc) {
	ga.engine.Use(ga.convertMiddleware(middleware))
}

// Start starts the Gin server
func (ga *GinAdapter) Start(addr string) error {
	ga.server = &http.Server{Addr: addr, Handler: ga.engine}
	return ga.server.ListenAndServe()
}

// Stop stops the Gin server
func (ga *GinAdapter) Stop(ctx context.Context) error {
	if ga.server == nil {
		return nil
	}
	return ga.server.Shutdown(ctx)
}

// Name returns the adapter name
func (ga *GinAdapter) Name() string {
	return "Gin"
}

// GetEngine returns the underlying Gin engine
func (ga *GinAdapter) GetEngine() *gin.Engine {
	return ga.engine
}

func (ga *GinAdapter) convertHandler(handler dendrite.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := handler(&GinRequestContext{ctx: c}); err != nil {
			if httpErr, ok := err.(*dendrite.HttpError); ok {
				c.JSON(httpErr.StatusCode, httpErr)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

func (ga *GinAdapter) convertMiddleware(middleware dendrite.MiddlewareFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		wrapped := middleware(func(ctx dendrite.RequestContext) error {
			c.Next()
			return nil
		})
		if err := wrapped(&GinRequestContext{ctx: c}); err != nil {
			if httpErr, ok := err.(*dendrite.HttpError); ok {
				c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

// GinRequestContext implements dendrite.RequestContext for Gin
type GinRequestContext struct {
	ctx *gin.Context
}

// NewGinRequestContext wraps a Gin context for use with the binders
func NewGinRequestContext(c *gin.Context) *GinRequestContext {
	return &GinRequestContext{ctx: c}
}

// Method returns the HTTP method
func (grc *GinRequestContext) Method() string {
	return grc.ctx.Request.Method
}

// Path returns the request path
func (grc *GinRequestContext) Path() string {
	return grc.ctx.Request.URL.Path
}

// Param returns a route parameter by name
func (grc *GinRequestContext) Param(name string) string {
	return grc.ctx.Param(name)
}

// ParamNames returns route parameter names
func (grc *GinRequestContext) ParamNames() []string {
	names := make([]string, 0, len(grc.ctx.Params))
	for _, p := range grc.ctx.Params {
		names = append(names, p.Key)
	}
	return names
}

// QueryParam returns a query parameter by key
func (grc *GinRequestContext) QueryParam(key string) string {
	return grc.ctx.Query(key)
}

// QueryParams returns all query parameters
func (grc *GinRequestContext) QueryParams() map[string][]string {
	return grc.ctx.Request.URL.Query()
}

// Header returns a request header value
func (grc *GinRequestContext) Header(key string) string {
	return grc.ctx.GetHeader(key)
}

// FormValue returns a form value by name
func (grc *GinRequestContext) FormValue(name string) string {
	return grc.ctx.PostForm(name)
}

// Bind deserializes the request body using Gin's binder
func (grc *GinRequestContext) Bind(i any) error {
	return grc.ctx.ShouldBind(i)
}

// Get retrieves data from the context
func (grc *GinRequestContext) Get(key string) any {
	value, _ := grc.ctx.Get(key)
	return value
}

// Set stores data in the context
func (grc *GinRequestContext) Set(key string, val any) {
	grc.ctx.Set(key, val)
}
