package routing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultTable(t *testing.T) RouteTable {
	t.Helper()

	table, err := NewRouteTable(DefaultRoutes()...)
	require.NoError(t, err)
	return table
}

func TestDefaultRoutesOrder(t *testing.T) {
	table := newDefaultTable(t)
	routes := table.Routes()

	require.Len(t, routes, 3)
	assert.Equal(t, Route{Path: "/", Name: NameInicio, Page: "pages/home"}, routes[0])
	assert.Equal(t, "/residencias", routes[1].Path)
	assert.Equal(t, "/contacto", routes[2].Path)
}

func TestResolve(t *testing.T) {
	table := newDefaultTable(t)

	tests := []struct {
		path     string
		wantName string
		wantOK   bool
	}{
		{path: "/", wantName: NameInicio, wantOK: true},
		{path: "", wantName: NameInicio, wantOK: true},
		{path: "/residencias", wantName: NameResidencias, wantOK: true},
		{path: "/residencias/", wantName: NameResidencias, wantOK: true},
		{path: "/residencias?residencia=x", wantName: NameResidencias, wantOK: true},
		{path: "/contacto", wantName: NameContacto, wantOK: true},
		{path: "/Residencias", wantOK: false},
		{path: "/residencias//", wantOK: false},
		{path: "/residencias/1", wantOK: false},
		{path: "/nosotros", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			route, ok := table.Resolve(tt.path)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, route.Name)
		})
	}
}

func TestByName(t *testing.T) {
	table := newDefaultTable(t)

	route, ok := table.ByName(NameContacto)
	assert.True(t, ok)
	assert.Equal(t, "pages/contacto", route.Page)

	_, ok = table.ByName("missing")
	assert.False(t, ok)
}

func TestRoutesReturnsCopy(t *testing.T) {
	table := newDefaultTable(t)

	routes := table.Routes()
	routes[1].Path = "/changed"

	route, ok := table.Resolve("/residencias")
	assert.True(t, ok)
	assert.Equal(t, "/residencias", route.Path)
	assert.Equal(t, "/residencias", table.Routes()[1].Path)
}

func TestNewRouteTableCopiesInput(t *testing.T) {
	routes := DefaultRoutes()
	table, err := NewRouteTable(routes...)
	require.NoError(t, err)

	routes[0].Page = "pages/other"
	assert.Equal(t, "pages/home", table.Routes()[0].Page)
}

func TestNewRouteTableRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		routes []Route
	}{
		{name: "empty name", routes: []Route{{Path: "/", Page: "pages/home"}}},
		{name: "relative path", routes: []Route{{Path: "residencias", Name: "r", Page: "p"}}},
		{name: "parameterised", routes: []Route{{Path: "/residencias/{id}", Name: "r", Page: "p"}}},
		{name: "duplicate path", routes: []Route{{Path: "/a", Name: "a", Page: "p"}, {Path: "/a/", Name: "b", Page: "p"}}},
		{name: "duplicate name", routes: []Route{{Path: "/a", Name: "a", Page: "p"}, {Path: "/b", Name: "a", Page: "p"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRouteTable(tt.routes...)
			assert.True(t, errors.Is(err, ErrInvalidRoute))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "/", Normalize("/"))
	assert.Equal(t, "/", Normalize(""))
	assert.Equal(t, "/contacto", Normalize("/contacto/"))
	assert.Equal(t, "/contacto", Normalize("/contacto#form"))
}
