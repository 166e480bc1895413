// Package resolver orchestrates the tiered suggestion strategy: retrieve
// catalog context, try the LLM carriers, and fall back to keyword heuristics.
// Every tier degrades silently into the next; Resolve always returns a
// command.
package resolver

import (
	"context"

	"github.com/picobox/mysh-llm/internal/catalog"
	"github.com/picobox/mysh-llm/internal/config"
	"github.com/picobox/mysh-llm/internal/heuristic"
	"github.com/picobox/mysh-llm/internal/llm"
	"github.com/picobox/mysh-llm/internal/prompt"
)

// state enumerates the resolution steps. Transitions are linear except for
// the LLM tier, which forks to done on success and to the heuristic tier on
// any failure.
type state int

const (
	stateAcquireCatalog state = iota
	stateSynthesizePrompt
	stateTryLLM
	stateHeuristic
	stateDone
)

// Resolver turns one query into exactly one command suggestion.
type Resolver struct {
	Catalog catalog.Source
	Clients []llm.Client // empty when the LLM tier is unconfigured
	Debugf  func(format string, args ...any)
}

// New wires a resolver from the process configuration. A missing credential
// or unknown transport leaves the LLM tier empty; that is not an error, the
// heuristic tier covers it.
func New(cfg *config.Config, debugf func(format string, args ...any)) *Resolver {
	r := &Resolver{
		Catalog: catalog.Source{
			Command: cfg.CatalogCommand,
			File:    cfg.CatalogFile,
			Debugf:  debugf,
		},
		Debugf: debugf,
	}

	clients, err := llm.New(llm.Config{
		APIKey:    cfg.APIKey,
		Model:     cfg.Model,
		BaseURL:   cfg.BaseURL,
		Transport: cfg.Transport,
	})
	if err != nil {
		r.debugf("LLM tier disabled: %v", err)
		return r
	}
	r.Clients = clients
	return r
}

// Resolve runs the state machine to completion and returns the suggestion.
// It is total: for any query it produces a non-empty command, and with no
// LLM reachable the output is deterministic for a fixed catalog.
func (r *Resolver) Resolve(ctx context.Context, query string) string {
	var (
		entries    []catalog.CommandEntry
		promptText string
		suggestion string
	)

	for st := stateAcquireCatalog; st != stateDone; {
		switch st {
		case stateAcquireCatalog:
			entries = r.Catalog.Load(ctx)
			st = stateSynthesizePrompt
		case stateSynthesizePrompt:
			promptText = prompt.Build(query, entries)
			st = stateTryLLM
		case stateTryLLM:
			if s, ok := r.tryLLM(ctx, promptText); ok {
				suggestion = s
				st = stateDone
				break
			}
			st = stateHeuristic
		case stateHeuristic:
			r.debugf("using heuristic fallback")
			suggestion = heuristic.Suggest(query, entries)
			st = stateDone
		}
	}
	return suggestion
}

// tryLLM walks the carrier ladder. Any failure (unconfigured tier, network,
// provider error, unusable response) reports "no suggestion"; failures are
// visible only on the debug channel.
func (r *Resolver) tryLLM(ctx context.Context, promptText string) (string, bool) {
	if len(r.Clients) == 0 {
		return "", false
	}
	for _, c := range r.Clients {
		s, err := c.Suggest(ctx, promptText)
		if err != nil {
			r.debugf("%s carrier failed: %v", c.Name(), err)
			continue
		}
		r.debugf("LLM suggestion: %s", s)
		return s, true
	}
	return "", false
}

func (r *Resolver) debugf(format string, args ...any) {
	if r.Debugf != nil {
		r.Debugf(format, args...)
	}
}
