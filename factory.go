package navroute

import (
	"log/slog"

	"github.com/google/uuid"
)

// Factory turns (name, params) into fully configured Routes using a Table's
// definitions. It is the only place Routes are constructed, so the identity,
// emitter-isolation and config-merge invariants all live here.
type Factory struct {
	table  *Table
	dev    bool
	logger *slog.Logger
}

// Option configures a Factory.
type Option func(*Factory)

// WithDevMode enables development-only checks, currently the advisory
// serializability check on route params. Production factories skip the check
// entirely.
func WithDevMode() Option {
	return func(f *Factory) {
		f.dev = true
	}
}

// WithLogger sets the logger used for advisory warnings. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		f.logger = logger
	}
}

// New creates a route factory over table.
func New(table *Table, opts ...Option) *Factory {
	f := &Factory{table: table, logger: slog.Default()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GetRoute resolves name, runs the configuration pipeline and returns a new
// Route. A name absent from the table surfaces as RouteNotFoundError; a
// definition of the wrong shape as MalformedRouteDefinitionError. In dev mode
// non-serializable params are reported through the logger and construction
// proceeds regardless.
func (f *Factory) GetRoute(name string, params Params) (*Route, error) {
	thunk, err := f.table.Resolve(name)
	if err != nil {
		return nil, err
	}
	if f.dev && !IsSerializable(map[string]any(params)) {
		f.logger.Warn("route params are not serializable", "route", name)
	}
	return f.construct(name, thunk, params)
}

// UpdateRouteWithParams derives a new Route from route with newParams laid
// over its params. An update is a fresh construction, not a mutation: the
// configuration pipeline re-runs against the merged params and the result
// carries a new key and a new event emitter.
func (f *Factory) UpdateRouteWithParams(route *Route, newParams Params) (*Route, error) {
	return f.GetRoute(route.Name, route.Params.merged(newParams))
}

func (f *Factory) construct(name string, thunk Thunk, params Params) (*Route, error) {
	def, err := resolveDefinition(name, thunk())
	if err != nil {
		return nil, err
	}

	emitter := newEmitter()
	config := Config{"eventEmitter": emitter}
	switch {
	case def.configFn != nil:
		config = shallowMerge(config, def.configFn(config.clone(), params))
	case def.static != nil:
		config = shallowMerge(config, def.static)
	}

	route := &Route{
		Key:     uuid.NewString(),
		Name:    name,
		Params:  params.clone(),
		Config:  config,
		render:  def.render,
		emitter: emitter,
	}

	// One render pass to pick up self-declared routing metadata. The declared
	// block wins over definition-level config and merges recursively.
	if rendered := route.Render(); rendered != nil {
		if sc, ok := rendered.(SelfConfigured); ok {
			if declared := sc.RouteConfig(); declared != nil {
				route.Config = deepMerge(route.Config, declared)
			}
		}
	}
	return route, nil
}
