package shapes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/drawdeck/drawdeck/pkg/cache"
	derrors "github.com/drawdeck/drawdeck/pkg/errors"
)

func newReady(t *testing.T) *Catalog {
	t.Helper()
	c := New(nil)
	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return c
}

func TestCatalogNotReady(t *testing.T) {
	c := New(nil)
	if c.Ready() {
		t.Error("fresh catalog reports ready")
	}
	if _, err := c.Get("rectangle"); !derrors.Is(err, derrors.ErrCodeCatalogNotReady) {
		t.Errorf("got %v, want CATALOG_NOT_READY", err)
	}
	if _, err := c.Search("rect", 5); !derrors.Is(err, derrors.ErrCodeCatalogNotReady) {
		t.Errorf("got %v, want CATALOG_NOT_READY", err)
	}
}

func TestCatalogGet(t *testing.T) {
	c := newReady(t)

	s, err := c.Get("rectangle")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.Style == "" {
		t.Error("shape has no style")
	}

	// Aliases and case both resolve.
	if _, err := c.Get("DB"); err != nil {
		t.Errorf("alias lookup: %v", err)
	}
	if _, err := c.Get("Rounded-Rectangle"); err != nil {
		t.Errorf("case-insensitive lookup: %v", err)
	}

	if _, err := c.Get("no-such-shape"); !derrors.Is(err, derrors.ErrCodeShapeNotFound) {
		t.Errorf("got %v, want SHAPE_NOT_FOUND", err)
	}
}

func TestCatalogStyleFor(t *testing.T) {
	c := newReady(t)
	style, err := c.StyleFor("ellipse")
	if err != nil {
		t.Fatalf("StyleFor: %v", err)
	}
	if style != "ellipse;whiteSpace=wrap;html=1;" {
		t.Errorf("style = %q", style)
	}
}

func TestCatalogCategoriesAndList(t *testing.T) {
	c := newReady(t)

	cats, err := c.Categories()
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) == 0 {
		t.Fatal("no categories")
	}
	for i := 1; i < len(cats); i++ {
		if cats[i-1] >= cats[i] {
			t.Errorf("categories not sorted: %v", cats)
		}
	}

	flow, err := c.List("flowchart")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, s := range flow {
		if s.Category != "flowchart" {
			t.Errorf("List(flowchart) returned %q from %q", s.Name, s.Category)
		}
	}

	all, _ := c.List("")
	if len(all) <= len(flow) {
		t.Error("unfiltered list should cover every category")
	}
}

func TestCatalogSearch(t *testing.T) {
	c := newReady(t)

	results, err := c.Search("rect", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	found := false
	for _, s := range results {
		if s.Name == "rectangle" {
			found = true
		}
	}
	if !found {
		t.Errorf("Search(rect) = %v, want rectangle among results", results)
	}

	limited, _ := c.Search("a", 2)
	if len(limited) > 2 {
		t.Errorf("limit ignored: %d results", len(limited))
	}
}

func TestCatalogReset(t *testing.T) {
	c := newReady(t)
	c.Reset()
	if c.Ready() {
		t.Error("catalog ready after Reset")
	}
	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("re-Initialize: %v", err)
	}
	if _, err := c.Get("rectangle"); err != nil {
		t.Errorf("Get after re-Initialize: %v", err)
	}
}

func TestFetcherMergesRemoteIndex(t *testing.T) {
	remote := []Shape{
		{Name: "turbine", Category: "energy", Style: "shape=turbine;html=1;"},
		// Overrides the builtin by name.
		{Name: "cloud", Category: "infrastructure", Style: "shape=cloud;html=1;fillColor=#dae8fc;"},
		// Invalid records are skipped.
		{Name: "", Style: "x"},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(remote)
	}))
	defer srv.Close()

	c := New(NewFetcher(srv.URL, cache.NewNullCache()))
	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if _, err := c.Get("turbine"); err != nil {
		t.Errorf("remote shape missing: %v", err)
	}
	s, _ := c.Get("cloud")
	if s.Style != "shape=cloud;html=1;fillColor=#dae8fc;" {
		t.Errorf("remote override lost: %q", s.Style)
	}
	if _, err := c.Get("rectangle"); err != nil {
		t.Errorf("builtin shape lost in merge: %v", err)
	}
}

func TestFetcherUsesCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode([]Shape{{Name: "solo", Style: "html=1;"}})
	}))
	defer srv.Close()

	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	f := NewFetcher(srv.URL, backend)

	for range 3 {
		if _, err := f.Fetch(context.Background()); err != nil {
			t.Fatalf("Fetch: %v", err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1", got)
	}
}

func TestFetcherPropagatesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(NewFetcher(srv.URL, cache.NewNullCache()))
	if err := c.Initialize(context.Background()); err == nil {
		t.Fatal("Initialize succeeded against a failing index")
	}
	if c.Ready() {
		t.Error("catalog ready after failed Initialize")
	}
}
