package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/pkg/termtypes"
)

type mockService struct {
	name            string
	initializeCalls int
	initializeError error
	initialized     *[]string
}

func (m *mockService) Name() string { return m.name }

func (m *mockService) Initialize() error {
	m.initializeCalls++
	if m.initialized != nil {
		*m.initialized = append(*m.initialized, m.name)
	}
	return m.initializeError
}

func TestRegistry_RegisterService(t *testing.T) {
	tests := []struct {
		name     string
		services []termtypes.Service
		wantErr  bool
	}{
		{
			name:     "register new service",
			services: []termtypes.Service{&mockService{name: "one"}},
		},
		{
			name:     "register two services",
			services: []termtypes.Service{&mockService{name: "one"}, &mockService{name: "two"}},
		},
		{
			name:     "duplicate name",
			services: []termtypes.Service{&mockService{name: "one"}, &mockService{name: "one"}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry()
			var err error
			for _, s := range tt.services {
				if err = registry.RegisterService(s); err != nil {
					break
				}
			}
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "already registered")
			} else {
				assert.NoError(t, err)
				assert.Len(t, registry.GetAllServices(), len(tt.services))
			}
		})
	}
}

func TestRegistry_GetService(t *testing.T) {
	registry := NewRegistry()
	svc := &mockService{name: "one"}
	require.NoError(t, registry.RegisterService(svc))

	got, err := registry.GetService("one")
	require.NoError(t, err)
	assert.Same(t, svc, got)

	_, err = registry.GetService("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "service missing not found")
}

func TestRegistry_InitializeAllInOrder(t *testing.T) {
	var order []string
	registry := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, registry.RegisterService(&mockService{name: name, initialized: &order}))
	}

	require.NoError(t, registry.InitializeAll())
	assert.Equal(t, []string{"c", "a", "b"}, order)
}

func TestRegistry_InitializeAllStopsOnError(t *testing.T) {
	registry := NewRegistry()
	failing := &mockService{name: "failing", initializeError: errors.New("boom")}
	after := &mockService{name: "after"}
	require.NoError(t, registry.RegisterService(failing))
	require.NoError(t, registry.RegisterService(after))

	err := registry.InitializeAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize service failing: boom")
	assert.Equal(t, 0, after.initializeCalls)
}

func TestLookup(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.RegisterService(&mockService{name: "mock"}))
	require.NoError(t, registry.RegisterService(NewFlagStore("")))

	mock, err := Lookup[*mockService](registry, "mock")
	require.NoError(t, err)
	assert.Equal(t, "mock", mock.Name())

	_, err = Lookup[*FlagStore](registry, "mock")
	assert.Error(t, err)

	_, err = Lookup[*FlagStore](registry, "nope")
	assert.Error(t, err)
}
