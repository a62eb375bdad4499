package navroute

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type textComponent struct {
	content string
}

func (c textComponent) Render(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, c.content)
	return err
}

func renderToString(t *testing.T, r Renderable) string {
	t.Helper()
	var sb strings.Builder
	if err := r.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return sb.String()
}

func TestRouteTitle(t *testing.T) {
	{
		// plain title
		r := &Route{Config: Config{"navigationBar": map[string]any{"title": "Home"}}}
		if got := r.Title(); got != "Home" {
			t.Errorf("expected %q, got %q", "Home", got)
		}
	}
	{
		// function-valued title sees params and config
		r := &Route{
			Params: Params{"name": "Ann"},
			Config: Config{"navigationBar": Config{
				"title": func(p Params, _ Config) string { return p["name"].(string) + "!" },
			}},
		}
		if got := r.Title(); got != "Ann!" {
			t.Errorf("expected %q, got %q", "Ann!", got)
		}
	}
	{
		// absent or malformed titles never fail
		for _, r := range []*Route{
			{Config: Config{}},
			{Config: Config{"navigationBar": Config{}}},
			{Config: Config{"navigationBar": Config{"title": 42}}},
			{Config: Config{"navigationBar": "nope"}},
		} {
			if got := r.Title(); got != "" {
				t.Errorf("expected empty title, got %q", got)
			}
		}
	}
}

func TestRouteClone(t *testing.T) {
	r := &Route{
		Key:     "key-1",
		Name:    "home",
		Params:  Params{"a": 1},
		Config:  Config{"x": 1},
		render:  func(*Route) Renderable { return textComponent{"home"} },
		emitter: newEmitter(),
	}
	c := r.Clone()
	if c == r {
		t.Fatal("clone must be a distinct instance")
	}
	if c.Key != r.Key {
		t.Errorf("clone must preserve the key, got %q want %q", c.Key, r.Key)
	}
	if c.Name != r.Name {
		t.Errorf("clone must preserve the name, got %q want %q", c.Name, r.Name)
	}
	if diff := cmp.Diff(r.Params, c.Params); diff != "" {
		t.Errorf("params mismatch (-orig +clone):\n%s", diff)
	}
	if diff := cmp.Diff(r.Config, c.Config); diff != "" {
		t.Errorf("config mismatch (-orig +clone):\n%s", diff)
	}
	if c.EventEmitter() != r.EventEmitter() {
		t.Error("clone shares the original's event emitter")
	}
	// copies do not alias the original's records
	c.Params["a"] = 2
	if r.Params["a"] != 1 {
		t.Error("clone params must not alias the original")
	}
}

func TestRouteRenderEffectiveParams(t *testing.T) {
	var seen Params
	r := &Route{
		Params: Params{"user": "zed"},
		Config: Config{"defaultParams": map[string]any{"user": "anon", "page": 1}},
		render: func(route *Route) Renderable {
			seen = route.Params
			return textComponent{"ok"}
		},
	}
	if got := renderToString(t, r.Render()); got != "ok" {
		t.Errorf("expected body %q, got %q", "ok", got)
	}
	want := Params{"user": "zed", "page": 1}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("effective params mismatch (-want +got):\n%s", diff)
	}
	// the route's own params are untouched by the render-time merge
	if diff := cmp.Diff(Params{"user": "zed"}, r.Params); diff != "" {
		t.Errorf("route params mutated (-want +got):\n%s", diff)
	}
}

func TestRouteRenderIdempotent(t *testing.T) {
	r := &Route{
		Params: Params{"n": "x"},
		Config: Config{},
		render: func(route *Route) Renderable {
			return textComponent{route.Params["n"].(string)}
		},
	}
	first := renderToString(t, r.Render())
	second := renderToString(t, r.Render())
	if first != second {
		t.Errorf("repeated renders differ: %q vs %q", first, second)
	}
}
