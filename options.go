package attachpipe

import (
	"log/slog"
	"net/http"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes all engine and registry logging through logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegistry supplies an explicit registry instead of a fresh one, so
// several engines can share plugin state deliberately.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithoutBuiltins skips registration of the built-in plugins, leaving the
// registry empty for the caller to populate.
func WithoutBuiltins() Option {
	return func(e *Engine) {
		e.noBuiltins = true
	}
}

// WithHTTPClient sets the client used by the URL loader.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Engine) {
		e.httpClient = c
	}
}

// WithKeepDataURIs configures whether the HTML loader keeps full data URIs
// in output (default: false, which truncates them).
func WithKeepDataURIs(keep bool) Option {
	return func(e *Engine) {
		e.keepDataURIs = keep
	}
}
