// Package httphost is an HTTP view host for navroute: it mounts named routes
// onto a chi router, builds route params from URL pattern and query values,
// renders the produced Route to the response and supplies the rendered
// component with navigation-context and focus awareness through the request
// context.
package httphost

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/angelofallars/htmx-go"
	"github.com/go-chi/chi/v5"

	"github.com/navroute/navroute"
)

// Host mounts navroute routes onto an HTTP router.
type Host struct {
	factory *navroute.Factory
	router  chi.Router
	logger  *slog.Logger
	onError func(http.ResponseWriter, *http.Request, error)
}

// Option configures a Host.
type Option func(*Host)

// WithErrorHandler replaces the default error response (500 with a generic
// body) for render and construction failures other than unknown routes.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) Option {
	return func(h *Host) {
		h.onError = onError
	}
}

// WithLogger sets the logger for request-level errors. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Host) {
		h.logger = logger
	}
}

// New creates a host serving routes from factory on router.
func New(factory *navroute.Factory, router chi.Router, opts ...Option) *Host {
	h := &Host{
		factory: factory,
		router:  router,
		logger:  slog.Default(),
	}
	h.onError = func(w http.ResponseWriter, r *http.Request, err error) {
		h.logger.Error("route render failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Mount registers the named route at pattern for GET requests. URL pattern
// parameters and query values become the route's params; explicit pattern
// parameters win over query values of the same name.
func (h *Host) Mount(pattern, name string) {
	h.router.Get(pattern, h.handle(name))
}

func (h *Host) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Host) handle(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route, err := h.factory.GetRoute(name, requestParams(r))
		if err != nil {
			var notFound *navroute.RouteNotFoundError
			if errors.As(err, &notFound) {
				http.NotFound(w, r)
				return
			}
			h.onError(w, r, err)
			return
		}
		// the host owns the route's lifetime for the duration of the request
		defer route.EventEmitter().Dispose()

		ctx := routeCtx.WithValue(r.Context(), route)
		ctx = focusCtx.WithValue(ctx, true)

		if htmx.IsHTMX(r) {
			if err := htmx.NewResponse().PushURL(r.URL.RequestURI()).Write(w); err != nil {
				h.onError(w, r, err)
				return
			}
		}
		rendered := route.Render()
		if rendered == nil {
			h.onError(w, r, errors.New("httphost: route rendered nil"))
			return
		}
		if err := rendered.Render(ctx, w); err != nil {
			h.onError(w, r, err)
			return
		}
		route.EventEmitter().Emit("focus", nil)
	}
}

func requestParams(r *http.Request) navroute.Params {
	params := navroute.Params{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == "*" {
				continue
			}
			params[key] = rctx.URLParams.Values[i]
		}
	}
	return params
}
