package navroute

import "fmt"

// RouteNotFoundError is returned when a requested route name is absent from
// the materialized route table. It is fatal to the single navigation attempt
// that raised it, never to the process.
type RouteNotFoundError struct {
	Name string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("navroute: route %q not found", e.Name)
}

// MalformedRouteDefinitionError is returned when a definition thunk yields a
// value that is neither a render function nor a record with a render function.
type MalformedRouteDefinitionError struct {
	Name string
	Got  any
}

func (e *MalformedRouteDefinitionError) Error() string {
	return fmt.Sprintf(
		"navroute: route %q: a route definition must be a render function or a record with a render function, got %T",
		e.Name, e.Got)
}
