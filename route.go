package navroute

// Route is a fully resolved navigation target: a unique key, the symbolic
// name it was resolved from, caller-supplied params, the merged configuration
// record and the render step bound at construction. Routes are built by a
// Factory; the zero value is not usable.
//
// A Route is immutable after construction apart from the factory's one-time
// post-render config amendment. Params and Config are owned by the Route and
// never alias caller structures.
type Route struct {
	// Key uniquely identifies this instance for the process lifetime. Updates
	// mint a new one; Clone deliberately preserves it.
	Key string

	// Name is the symbolic route name, stable across clones and updates.
	Name string

	Params Params
	Config Config

	render  RenderFunc
	emitter *Emitter
}

// EventEmitter returns the route's private event channel.
func (r *Route) EventEmitter() *Emitter {
	return r.emitter
}

// Title resolves the navigation bar title from the configuration. A
// function-valued title is invoked with the route's params and config; a
// plain string is returned as is; anything else yields the empty string.
// Title never fails.
func (r *Route) Title() string {
	bar := r.Config.section("navigationBar")
	if bar == nil {
		return ""
	}
	switch t := bar["title"].(type) {
	case string:
		return t
	case func(Params, Config) string:
		return t(r.Params, r.Config)
	default:
		return ""
	}
}

// Clone returns a field-for-field copy of the route, identity included: the
// copy shares the original's Key and event emitter. This is distinct from
// Factory.UpdateRouteWithParams, which always mints a new key and re-runs the
// configuration pipeline.
func (r *Route) Clone() *Route {
	return &Route{
		Key:     r.Key,
		Name:    r.Name,
		Params:  r.Params.clone(),
		Config:  r.Config.clone(),
		render:  r.render,
		emitter: r.emitter,
	}
}

// Render invokes the bound render step and returns its renderable value. The
// render step sees the route's effective params: defaultParams declared in
// the configuration, overridden by the explicit params. The merge is
// recomputed on every call, so repeated renders of an unchanged route are
// idempotent in output.
func (r *Route) Render() Renderable {
	return r.render(r.withEffectiveParams())
}

// withEffectiveParams returns the route the render step sees. When the config
// declares no defaults this is the route itself; otherwise a shallow copy
// with the merged params.
func (r *Route) withEffectiveParams() *Route {
	defaults, ok := asRecord(r.Config["defaultParams"])
	if !ok || len(defaults) == 0 {
		return r
	}
	view := *r
	view.Params = Params(defaults).merged(r.Params)
	return &view
}
