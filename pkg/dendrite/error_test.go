package dendrite

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceNotRegisteredError_Message(t *testing.T) {
	err := &ServiceNotRegisteredError{Type: TypeOf[repository]()}

	assert.Contains(t, err.Error(), "no service registered")
	assert.Contains(t, err.Error(), "github.com/toyz/dendrite/pkg/dendrite.repository")
}

func TestHttpError(t *testing.T) {
	err := NewHttpError(http.StatusBadRequest, "invalid request")
	assert.Equal(t, "HTTP 400: invalid request", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)

	withDetails := ErrUnprocessableEntityWithDetails("validation failed", map[string]string{"page": "must be a number"})
	assert.Equal(t, http.StatusUnprocessableEntity, withDetails.StatusCode)
	assert.NotNil(t, withDetails.Details)

	assert.Equal(t, http.StatusBadRequest, ErrBadRequest("x").StatusCode)
	assert.Equal(t, http.StatusInternalServerError, ErrInternalServerError("x").StatusCode)
}
