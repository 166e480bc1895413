// Package llm sends the synthesized prompt to an OpenAI-compatible
// chat-completion endpoint and returns the suggested command.
//
// Two interchangeable carriers exist: a typed client on net/http and a
// generic REST carrier on resty. Which to use is decided once from
// configuration; the default ladder tries the typed client first and the
// REST carrier second, so a quirk in one carrier never costs the LLM tier.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sampling settings for command suggestion. Low temperature keeps the model
// on the documented catalog; suggestions are one line, so the output budget
// stays small.
const (
	temperature    = 0.3
	maxTokens      = 100
	requestTimeout = 30 * time.Second
)

// Transport names accepted in configuration.
const (
	TransportNative = "native"
	TransportREST   = "rest"
)

// ErrNotConfigured reports that no API credential is available. The resolver
// treats it like any other failure: silently, by falling through.
var ErrNotConfigured = errors.New("llm: no API key configured")

// Client produces one command suggestion for a fully rendered prompt.
type Client interface {
	Name() string
	Suggest(ctx context.Context, prompt string) (string, error)
}

// Config is the subset of process configuration the LLM tier needs.
type Config struct {
	APIKey    string
	Model     string
	BaseURL   string
	Transport string
}

// New returns the carriers to try, in order, for the configured transport.
// An empty transport means the default ladder: native first, REST second.
func New(cfg Config) ([]Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	switch cfg.Transport {
	case "", TransportNative:
		return []Client{newNativeClient(cfg), newRESTClient(cfg)}, nil
	case TransportREST:
		return []Client{newRESTClient(cfg)}, nil
	default:
		return nil, fmt.Errorf("llm: unsupported transport %q", cfg.Transport)
	}
}
