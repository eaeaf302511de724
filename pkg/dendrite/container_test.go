package dendrite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repository interface {
	Find(id int) any
}

type memoryRepository struct{ name string }

func (memoryRepository) Find(id int) any { return nil }

func TestServiceRegistry_LookupAllOrder(t *testing.T) {
	registry := NewServiceRegistry()
	Register[repository](registry, memoryRepository{name: "users"})
	Register[repository](registry, memoryRepository{name: "posts"})
	Register[repository](registry, memoryRepository{name: "tags"})

	instances, err := registry.LookupAll(context.Background(), TypeOf[repository]())
	require.NoError(t, err)
	require.Len(t, instances, 3)
	assert.Equal(t, "users", instances[0].(memoryRepository).name)
	assert.Equal(t, "posts", instances[1].(memoryRepository).name)
	assert.Equal(t, "tags", instances[2].(memoryRepository).name)
}

func TestServiceRegistry_LookupAllEmpty(t *testing.T) {
	registry := NewServiceRegistry()

	instances, err := registry.LookupAll(context.Background(), TypeOf[repository]())
	require.NoError(t, err)
	assert.Empty(t, instances)
}

func TestServiceRegistry_LookupOne(t *testing.T) {
	registry := NewServiceRegistry()
	Register[repository](registry, memoryRepository{name: "old"})
	Register[repository](registry, memoryRepository{name: "new"})

	instance, found, err := registry.LookupOne(context.Background(), TypeOf[repository]())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "new", instance.(memoryRepository).name)
}

func TestServiceRegistry_LookupOneMiss(t *testing.T) {
	registry := NewServiceRegistry()

	instance, found, err := registry.LookupOne(context.Background(), TypeOf[repository]())
	require.NoError(t, err, "a miss is not an error at the lookup layer")
	assert.False(t, found)
	assert.Nil(t, instance)
}

func TestServiceRegistry_InterfaceAssignability(t *testing.T) {
	registry := NewServiceRegistry()

	// Registered under the concrete type, still visible through the interface
	registry.RegisterInstance(memoryRepository{name: "users"})

	instances, err := registry.LookupAll(context.Background(), TypeOf[repository]())
	require.NoError(t, err)
	require.Len(t, instances, 1)

	instance, found, err := registry.LookupOne(context.Background(), TypeOf[repository]())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "users", instance.(memoryRepository).name)
}

func TestServiceRegistry_ConcreteLookupIsExact(t *testing.T) {
	registry := NewServiceRegistry()
	registry.RegisterInstance(memoryRepository{name: "users"})

	_, found, err := registry.LookupOne(context.Background(), TypeOf[tcpPingChecker]())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestServiceRegistry_RegisterAsRejectsMismatch(t *testing.T) {
	registry := NewServiceRegistry()

	assert.Panics(t, func() {
		registry.RegisterAs(TypeOf[pingChecker](), memoryRepository{})
	})
	assert.Panics(t, func() {
		registry.RegisterInstance(nil)
	})
}

func TestServiceRegistry_ContextCancellation(t *testing.T) {
	registry := NewServiceRegistry()
	Register[repository](registry, memoryRepository{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := registry.LookupAll(ctx, TypeOf[repository]())
	assert.ErrorIs(t, err, context.Canceled)

	_, _, err = registry.LookupOne(ctx, TypeOf[repository]())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServiceRegistry_Flush(t *testing.T) {
	registry := NewServiceRegistry()
	Register[repository](registry, memoryRepository{})
	require.Equal(t, 1, registry.Len())

	registry.Flush()
	assert.Equal(t, 0, registry.Len())
}
