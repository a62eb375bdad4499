package navroute

import (
	"context"
	"io"
)

// Renderable is the value a route's render step produces. It is structurally
// compatible with templ.Component, so templ templates can be returned from
// render functions directly.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// RenderFunc maps a Route's runtime state to a renderable value. The route it
// receives carries the effective parameters for this render pass: declared
// defaults overridden by the caller's explicit params.
type RenderFunc func(route *Route) Renderable

// ConfigFunc derives configuration overrides from the base configuration and
// the route's parameters. Returned keys win over base keys.
type ConfigFunc func(base Config, params Params) Config

// RouteDef is the declarative definition shape: a render function plus
// optional configuration, either static or computed. If both Config and
// ConfigFunc are set, ConfigFunc wins.
type RouteDef struct {
	Render     RenderFunc
	Config     Config
	ConfigFunc ConfigFunc
}

// Thunk lazily produces a route definition. The value it returns must be a
// RenderFunc (or any func(*Route) Renderable) or a RouteDef.
type Thunk func() any

// CreatorFunc supplies the full route table. It is invoked at most once, on
// the first resolution.
type CreatorFunc func() map[string]Thunk

// SelfConfigured is the self-declared configuration capability: a renderable
// (or the component behind it) may expose routing metadata of its own, which
// the factory deep-merges over the route's configuration after the first
// render. The declared block takes precedence over definition-level config.
type SelfConfigured interface {
	RouteConfig() Config
}

// resolvedDef is a definition with its shape decided. The two definition
// shapes collapse here once, at construction time, so nothing downstream
// probes types again.
type resolvedDef struct {
	render   RenderFunc
	static   Config
	configFn ConfigFunc
}

func resolveDefinition(name string, v any) (resolvedDef, error) {
	switch d := v.(type) {
	case RenderFunc:
		return resolvedDef{render: d}, nil
	case func(route *Route) Renderable:
		return resolvedDef{render: d}, nil
	case RouteDef:
		if d.Render == nil {
			return resolvedDef{}, &MalformedRouteDefinitionError{Name: name, Got: v}
		}
		return resolvedDef{render: d.Render, static: d.Config, configFn: d.ConfigFunc}, nil
	case *RouteDef:
		if d == nil {
			return resolvedDef{}, &MalformedRouteDefinitionError{Name: name, Got: v}
		}
		return resolveDefinition(name, *d)
	default:
		return resolvedDef{}, &MalformedRouteDefinitionError{Name: name, Got: v}
	}
}
