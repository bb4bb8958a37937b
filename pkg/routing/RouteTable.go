package routing

import (
	"fmt"
	"strings"
)

const (
	NameInicio      = "inicio"
	NameResidencias = "residencias"
	NameContacto    = "contacto"
)

var (
	ErrInvalidRoute = fmt.Errorf("invalid route")
)

/*
Route maps a URL path to a named page. Page is the template the
website renders for it.
*/
type Route struct {
	Path string
	Name string
	Page string
}

/*
RouteTable is an ordered, immutable set of routes. Build it once at
startup with NewRouteTable and hand it to the HTTP router.
*/
type RouteTable struct {
	routes []Route
	byPath map[string]int
	byName map[string]int
}

func DefaultRoutes() []Route {
	return []Route{
		{Path: "/", Name: NameInicio, Page: "pages/home"},
		{Path: "/residencias", Name: NameResidencias, Page: "pages/residencias"},
		{Path: "/contacto", Name: NameContacto, Page: "pages/contacto"},
	}
}

func NewRouteTable(routes ...Route) (RouteTable, error) {
	result := RouteTable{
		routes: make([]Route, 0, len(routes)),
		byPath: map[string]int{},
		byName: map[string]int{},
	}

	for _, route := range routes {
		if route.Path == "" || route.Name == "" || route.Page == "" {
			return RouteTable{}, fmt.Errorf("%w: path, name and page are required: %+v", ErrInvalidRoute, route)
		}

		if !strings.HasPrefix(route.Path, "/") {
			return RouteTable{}, fmt.Errorf("%w: path '%s' must start with '/'", ErrInvalidRoute, route.Path)
		}

		if strings.ContainsAny(route.Path, "{}?#") {
			return RouteTable{}, fmt.Errorf("%w: path '%s' must be a literal path", ErrInvalidRoute, route.Path)
		}

		path := Normalize(route.Path)
		route.Path = path

		if _, ok := result.byPath[path]; ok {
			return RouteTable{}, fmt.Errorf("%w: duplicate path '%s'", ErrInvalidRoute, path)
		}

		if _, ok := result.byName[route.Name]; ok {
			return RouteTable{}, fmt.Errorf("%w: duplicate name '%s'", ErrInvalidRoute, route.Name)
		}

		result.byPath[path] = len(result.routes)
		result.byName[route.Name] = len(result.routes)
		result.routes = append(result.routes, route)
	}

	return result, nil
}

// Routes returns a copy of the routes in declaration order.
func (t RouteTable) Routes() []Route {
	result := make([]Route, len(t.routes))
	copy(result, t.routes)
	return result
}

/*
Resolve finds the route for a request path. A single trailing slash is
ignored, except for the root path. Matching is otherwise exact and
case-sensitive.
*/
func (t RouteTable) Resolve(path string) (Route, bool) {
	index, ok := t.byPath[Normalize(path)]

	if !ok {
		return Route{}, false
	}

	return t.routes[index], true
}

func (t RouteTable) ByName(name string) (Route, bool) {
	index, ok := t.byName[name]

	if !ok {
		return Route{}, false
	}

	return t.routes[index], true
}

// Normalize drops a query string and a single trailing slash.
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	if path == "" {
		return "/"
	}

	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}

	return path
}
