package httphost

import (
	"context"

	"github.com/jackielii/ctxkey"

	"github.com/navroute/navroute"
)

var (
	routeCtx = ctxkey.New[*navroute.Route]("httphost.route", nil)
	focusCtx = ctxkey.New[bool]("httphost.focus", false)
)

// RouteFrom returns the Route being rendered for this request, or nil outside
// a host render.
func RouteFrom(ctx context.Context) *navroute.Route {
	return routeCtx.Value(ctx)
}

// HasFocus reports whether the component rendered in this request currently
// holds navigation focus. The HTTP host renders one route per request, so the
// active route always has focus.
func HasFocus(ctx context.Context) bool {
	return focusCtx.Value(ctx)
}
