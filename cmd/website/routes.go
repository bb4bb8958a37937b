package main

import (
	"fmt"
	"net/http"

	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/residencias/pkg/routing"
)

/*
pageRoutes turns the route table into router entries. The root path
matches exactly. Every other path is also registered with a trailing
slash, which is how the table resolves "/residencias/".
*/
func pageRoutes(table routing.RouteTable, handlers map[string]http.HandlerFunc) ([]mux.Route, error) {
	result := []mux.Route{}

	for _, route := range table.Routes() {
		handler, ok := handlers[route.Name]

		if !ok {
			return nil, fmt.Errorf("no handler registered for route '%s' (%s)", route.Name, route.Path)
		}

		if route.Path == "/" {
			result = append(result, mux.Route{Path: "GET /{$}", HandlerFunc: handler})
			continue
		}

		result = append(result,
			mux.Route{Path: "GET " + route.Path, HandlerFunc: handler},
			mux.Route{Path: "GET " + route.Path + "/", HandlerFunc: handler},
		)
	}

	return result, nil
}
