package resolver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/picobox/mysh-llm/internal/catalog"
	"github.com/picobox/mysh-llm/internal/config"
	"github.com/picobox/mysh-llm/internal/heuristic"
	"github.com/picobox/mysh-llm/internal/llm"
)

type fakeClient struct {
	name       string
	suggestion string
	err        error
	calls      int
}

func (f *fakeClient) Name() string { return f.name }

func (f *fakeClient) Suggest(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.suggestion, nil
}

const catalogJSON = `{"commands":[
	{"name":"ls","summary":"list directory contents"},
	{"name":"grep","summary":"search for patterns"},
	{"name":"mediaplayer","summary":"play media"}
]}`

func fileSource(t *testing.T, body string) catalog.Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commands.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return catalog.Source{File: path}
}

func TestResolve_LLMSuccess(t *testing.T) {
	r := &Resolver{
		Catalog: fileSource(t, catalogJSON),
		Clients: []llm.Client{&fakeClient{name: "native", suggestion: "ls -la | grep go"}},
	}
	got := r.Resolve(context.Background(), "find my go files")
	if got != "ls -la | grep go" {
		t.Fatalf("got %q", got)
	}
}

func TestResolve_CarrierLadder(t *testing.T) {
	first := &fakeClient{name: "native", err: errors.New("boom")}
	second := &fakeClient{name: "rest", suggestion: "wc -l notes.txt"}
	r := &Resolver{
		Catalog: fileSource(t, catalogJSON),
		Clients: []llm.Client{first, second},
	}

	got := r.Resolve(context.Background(), "how long is notes.txt")
	if got != "wc -l notes.txt" {
		t.Fatalf("got %q", got)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Fatalf("ladder not walked in order: first=%d second=%d", first.calls, second.calls)
	}
}

func TestResolve_FallbackEqualsHeuristic(t *testing.T) {
	src := fileSource(t, catalogJSON)
	entries := src.Load(context.Background())

	queries := []string{
		"show me all files",
		"open my music player",
		"search for error",
		"",
	}
	for _, q := range queries {
		r := &Resolver{
			Catalog: src,
			Clients: []llm.Client{&fakeClient{name: "native", err: errors.New("unreachable")}},
		}
		got := r.Resolve(context.Background(), q)
		want := heuristic.Suggest(q, entries)
		if got != want {
			t.Fatalf("query %q: resolver %q != heuristic %q", q, got, want)
		}
	}
}

func TestResolve_NoLLMConfigured(t *testing.T) {
	r := &Resolver{Catalog: fileSource(t, catalogJSON)}
	if got := r.Resolve(context.Background(), "show me all files"); got != "ls -la" {
		t.Fatalf("got %q", got)
	}
}

func TestResolve_MissingCatalogNeverFatal(t *testing.T) {
	r := &Resolver{
		Catalog: catalog.Source{
			Command: "/nonexistent/picobox --commands-json",
			File:    filepath.Join(t.TempDir(), "missing.json"),
		},
	}
	got := r.Resolve(context.Background(), "do something")
	if got != "echo 'No commands available'" {
		t.Fatalf("got %q", got)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	r := &Resolver{
		Catalog: fileSource(t, catalogJSON),
		Clients: []llm.Client{&fakeClient{name: "native", err: errors.New("down")}},
	}
	first := r.Resolve(context.Background(), "open my music player")
	for i := 0; i < 5; i++ {
		if got := r.Resolve(context.Background(), "open my music player"); got != first {
			t.Fatalf("run %d: %q != %q", i, got, first)
		}
	}
	if first != "mediaplayer" {
		t.Fatalf("expected top-ranked entry name, got %q", first)
	}
}

func TestNew_WithoutCredential(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	r := New(&config.Config{
		CatalogCommand: "/nonexistent/picobox --commands-json",
		CatalogFile:    filepath.Join(t.TempDir(), "missing.json"),
	}, nil)
	if len(r.Clients) != 0 {
		t.Fatal("LLM tier must be empty without a credential")
	}
	if got := r.Resolve(context.Background(), "list files"); got == "" {
		t.Fatal("Resolve must still return a suggestion")
	}
}

func TestNew_WithCredential(t *testing.T) {
	r := New(&config.Config{
		APIKey:  "key",
		Model:   "gpt-4o-mini",
		BaseURL: "http://127.0.0.1:1",
	}, nil)
	if len(r.Clients) != 2 {
		t.Fatalf("expected native+rest ladder, got %d clients", len(r.Clients))
	}
}
