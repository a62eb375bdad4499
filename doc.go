// Package navroute provides a route registry and route-instance factory for
// view-rendering hosts. A route table maps symbolic names to lazily-invoked
// route definitions; the factory resolves a name plus parameters into a
// fully-configured Route carrying a unique key, a private event emitter and a
// deterministically merged configuration record. The package renders nothing
// itself: the produced Route is handed to an external view host (see the
// httphost subpackage for an HTTP-based one) which owns mounting, focus and
// disposal.
package navroute
