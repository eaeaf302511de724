package adapters

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/dendrite/pkg/dendrite"
)

func TestFiberAdapter_BasicFunctionality(t *testing.T) {
	adapter := NewFiberAdapter()
	assert.Equal(t, "Fiber", adapter.Name())

	adapter.RegisterRoute("GET", dendrite.NewRoutePath("/ping"), func(ctx dendrite.RequestContext) error {
		return nil
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	resp, err := adapter.GetApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFiberAdapter_RouteParameters(t *testing.T) {
	adapter := NewFiberAdapter()

	var captured string
	adapter.RegisterRoute("GET", dendrite.NewRoutePath("/users/{id:int}"), func(ctx dendrite.RequestContext) error {
		captured = ctx.Param("id")
		return nil
	})

	req := httptest.NewRequest("GET", "/users/42", nil)
	_, err := adapter.GetApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "42", captured)
}

func TestFiberAdapter_HttpErrorMapping(t *testing.T) {
	adapter := NewFiberAdapter()
	adapter.RegisterRoute("GET", dendrite.NewRoutePath("/bad"), func(ctx dendrite.RequestContext) error {
		return dendrite.ErrBadRequest("bad input")
	})

	req := httptest.NewRequest("GET", "/bad", nil)
	resp, err := adapter.GetApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "bad input")
}

func TestFiberAdapter_BindModelEndToEnd(t *testing.T) {
	type fetchRequest struct {
		Greeter greeter `bind:"services"`
		Limit   int     `bind:"query,name=limit"`
		ID      int     `bind:"route,name=id"`
		Trace   string  `bind:"header,name=X-Trace-Id"`
	}

	services := dendrite.NewServiceRegistry()
	dendrite.Register[greeter](services, englishGreeter{})
	binder := dendrite.NewDefaultModelBinder(services)

	adapter := NewFiberAdapter()

	var bound fetchRequest
	adapter.RegisterRoute("GET", dendrite.NewRoutePath("/fetch/{id:int}"), func(ctx dendrite.RequestContext) error {
		_, err := binder.BindModel(context.Background(), ctx, &bound)
		return err
	})

	req := httptest.NewRequest("GET", "/fetch/11?limit=25", nil)
	req.Header.Set("X-Trace-Id", "t-1")
	resp, err := adapter.GetApp().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 11, bound.ID)
	assert.Equal(t, 25, bound.Limit)
	assert.Equal(t, "t-1", bound.Trace)
	require.NotNil(t, bound.Greeter)
}

func TestFiberAdapter_BodyBinding(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	type createRequest struct {
		Body payload `bind:"body"`
	}

	binder := dendrite.NewDefaultModelBinder(dendrite.NewServiceRegistry())
	adapter := NewFiberAdapter()

	var bound createRequest
	adapter.RegisterRoute("POST", dendrite.NewRoutePath("/items"), func(ctx dendrite.RequestContext) error {
		_, err := binder.BindModel(context.Background(), ctx, &bound)
		return err
	})

	req := httptest.NewRequest("POST", "/items", strings.NewReader(`{"name":"sprocket"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := adapter.GetApp().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sprocket", bound.Body.Name)
}
