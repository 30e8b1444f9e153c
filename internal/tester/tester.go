// Package tester dispatches connectivity probes against backend categories.
// Probes are pure network calls: they never touch the provider or model
// registries, so concurrent tests require no locking and an abandoned test
// needs no cleanup.
package tester

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/techlens/provider-lab/internal/templates"
)

// System defines the interface for connectivity probing.
type System interface {
	// Test probes the backend described by the template using the supplied
	// config, which need not be persisted. The probe is bounded by the
	// configured timeout and always returns a Result, never an error, for
	// expected network failure modes.
	Test(ctx context.Context, t *templates.Template, config map[string]any, testModel string) Result
}

type tester struct {
	client  *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a connection tester. Every probe is cut off after timeout and
// reported as a transport failure.
func New(timeout time.Duration, logger *slog.Logger) System {
	return &tester{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
		logger:  logger.With("system", "tester"),
	}
}

func (t *tester) Test(ctx context.Context, tmpl *templates.Template, config map[string]any, testModel string) Result {
	probe, ok := probes[tmpl.Category]
	if !ok {
		return failure(CodeTestNotSupported,
			"connection testing is not supported for this category",
			map[string]any{"category": tmpl.Category},
		)
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	start := time.Now()
	result := probe(ctx, t.client, config, testModel)

	t.logger.Info("probe complete",
		"category", tmpl.Category,
		"success", result.Success,
		"code", result.MessageCode,
		"duration", time.Since(start),
	)
	return result
}
